package main

import (
	"context"

	fs "cloud.google.com/go/firestore"

	"github.com/angoleague/algtool/internal/tools/users"
)

type getUserCmd struct {
	UID string `arg:"" help:"Profile ID to show." required:""`
}

func (a *getUserCmd) Run(g *globalCmd) error {
	ctx := users.NewContext(context.Background())
	ctx.UID = a.UID
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	return users.Get(ctx)
}
