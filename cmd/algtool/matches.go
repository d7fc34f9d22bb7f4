package main

import (
	"context"

	fs "cloud.google.com/go/firestore"

	"github.com/angoleague/algtool/internal/tools/matches"
)

type addMatchCmd struct {
	DryRun bool `help:"Print database writes to log and exit without writing."`

	Type     string `help:"Match type (Oficial or Amistoso); anything else schedules a friendly."`
	TeamA    string `help:"Team A ID or display name."`
	TeamB    string `help:"Team B ID or display name."`
	Date     string `help:"Match date (display string)."`
	Location string `help:"Match location."`
	Status   string `help:"Match status (SCHEDULED, FINISHED, CANCELLED)."`
	ScoreA   *int   `help:"Team A goals (finished matches only)."`
	ScoreB   *int   `help:"Team B goals (finished matches only)."`
}

func (a *addMatchCmd) Run(g *globalCmd) error {
	ctx := matches.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	ctx.Type = a.Type
	ctx.TeamA = a.TeamA
	ctx.TeamB = a.TeamB
	ctx.Date = a.Date
	ctx.Location = a.Location
	ctx.Status = a.Status
	ctx.ScoreA = a.ScoreA
	ctx.ScoreB = a.ScoreB
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	return matches.AddMatch(ctx)
}

type lsMatchesCmd struct{}

func (a *lsMatchesCmd) Run(g *globalCmd) error {
	ctx := matches.NewContext(context.Background())
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	return matches.LsMatches(ctx)
}

type exportMatchesCmd struct {
	DryRun bool   `help:"Print the rows to console instead of writing the workbook."`
	Output string `help:"Output location (local path or gs:// object). Empty prints to console."`
}

func (a *exportMatchesCmd) Run(g *globalCmd) error {
	ctx := matches.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	ctx.Output = a.Output
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	return matches.ExportMatches(ctx)
}
