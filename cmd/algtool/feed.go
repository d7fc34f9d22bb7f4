package main

import (
	"context"

	fs "cloud.google.com/go/firestore"

	"github.com/angoleague/algtool/internal/ai"
	"github.com/angoleague/algtool/internal/tools/advice"
)

type adviceCmd struct {
	APIKey string `help:"Generative Language API key." env:"GEMINI_API_KEY" required:""`
	UID    string `arg:"" help:"Profile ID to advise." required:""`
}

func (a *adviceCmd) Run(g *globalCmd) error {
	ctx := advice.NewContext(context.Background())
	ctx.UID = a.UID
	ctx.AIClient = ai.NewClient(a.APIKey)
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	return advice.Advice(ctx)
}

type feedPostCmd struct {
	APIKey   string `help:"Generative Language API key." env:"GEMINI_API_KEY" required:""`
	Locality string `arg:"" help:"Locality to write about." required:""`
}

func (a *feedPostCmd) Run(g *globalCmd) error {
	ctx := advice.NewContext(context.Background())
	ctx.Locality = a.Locality
	ctx.AIClient = ai.NewClient(a.APIKey)
	return advice.Feed(ctx)
}
