package main

import (
	"context"

	fs "cloud.google.com/go/firestore"

	"github.com/angoleague/algtool/internal/tools/setupleague"
)

type setupLeagueCmd struct {
	DryRun     bool `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`
	Force      bool `help:"Overwrite province documents that already exist." xor:"Force,DryRun"`
	NoProgress bool `help:"Do not display the progress bar."`
}

func (a *setupLeagueCmd) Run(g *globalCmd) error {
	ctx := setupleague.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	ctx.Force = a.Force
	ctx.NoProgress = a.NoProgress
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	return setupleague.SetupLeague(ctx)
}
