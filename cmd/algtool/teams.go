package main

import (
	"context"

	fs "cloud.google.com/go/firestore"

	"github.com/angoleague/algtool/internal/tools/teams"
)

type createTeamCmd struct {
	DryRun bool `help:"Print database writes to log and exit without writing."`

	Name      string   `arg:"" help:"Team name." required:""`
	Locality  string   `help:"Team locality."`
	CaptainID string   `help:"Captain's profile ID."`
	Member    []string `help:"Member profile ID."`
}

func (a *createTeamCmd) Run(g *globalCmd) error {
	ctx := teams.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	ctx.Name = a.Name
	ctx.Locality = a.Locality
	ctx.CaptainID = a.CaptainID
	ctx.Members = a.Member
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	return teams.CreateTeam(ctx)
}

type lsTeamsCmd struct {
	Locality string `help:"Only show teams from this locality."`
}

func (a *lsTeamsCmd) Run(g *globalCmd) error {
	ctx := teams.NewContext(context.Background())
	ctx.Locality = a.Locality
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	return teams.LsTeams(ctx)
}

type standingsCmd struct {
	Locality string `help:"Only rank teams from this locality."`
}

func (a *standingsCmd) Run(g *globalCmd) error {
	ctx := teams.NewContext(context.Background())
	ctx.Locality = a.Locality
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	return teams.Standings(ctx)
}

type importTeamsCmd struct {
	DryRun bool   `help:"Print database writes to log and exit without writing."`
	Roster string `arg:"" help:"Roster workbook (local path or gs:// object)." required:""`
}

func (a *importTeamsCmd) Run(g *globalCmd) error {
	ctx := teams.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	ctx.Roster = a.Roster
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	return teams.ImportTeams(ctx)
}
