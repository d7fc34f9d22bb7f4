package main

import (
	"context"

	fs "cloud.google.com/go/firestore"

	"github.com/angoleague/algtool/internal/tools/recruit"
)

type postRecruitCmd struct {
	DryRun bool `help:"Print database writes to log and exit without writing."`

	TeamID      string `help:"Recruiting team's ID."`
	TeamName    string `help:"Recruiting team's display name."`
	Position    string `help:"Position needed; unrecognized values recruit a Médio."`
	Description string `help:"Post description."`
	Date        string `help:"Post date (display string)."`
}

func (a *postRecruitCmd) Run(g *globalCmd) error {
	ctx := recruit.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	ctx.TeamID = a.TeamID
	ctx.TeamName = a.TeamName
	ctx.PositionNeeded = a.Position
	ctx.Description = a.Description
	ctx.Date = a.Date
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	return recruit.Post(ctx)
}

type lsRecruitCmd struct{}

func (a *lsRecruitCmd) Run(g *globalCmd) error {
	ctx := recruit.NewContext(context.Background())
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	return recruit.Ls(ctx)
}
