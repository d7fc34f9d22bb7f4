package main

import (
	"context"

	fs "cloud.google.com/go/firestore"

	"github.com/angoleague/algtool/internal/auth"
	"github.com/angoleague/algtool/internal/tools/onboard"
)

type onboardCmd struct {
	DryRun bool `help:"Print database writes to log and exit without writing."`

	Email    string `help:"Identity provider email. With a password, onboarding signs in first and keys the profile by the identity." env:"ALG_EMAIL"`
	Password string `help:"Identity provider password." env:"ALG_PASSWORD"`
	APIKey   string `help:"Identity provider API key." env:"FIREBASE_API_KEY"`

	Name         string `help:"Player name. When set, runs non-interactively."`
	Modality     string `help:"Preferred modality."`
	Position     string `help:"Field position."`
	Province     string `help:"Province."`
	Municipality string `help:"Municipality or neighborhood."`
}

func (a *onboardCmd) Run(g *globalCmd) error {
	ctx := onboard.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	ctx.Name = a.Name
	ctx.Modality = a.Modality
	ctx.Position = a.Position
	ctx.Province = a.Province
	ctx.Municipality = a.Municipality

	// Identity resolution must finish before the profile write starts.
	if a.Email != "" && a.Password != "" {
		provider, err := auth.NewGoogleProvider(ctx.Context, a.APIKey)
		if err != nil {
			return err
		}
		session := auth.NewSession(provider)
		if err := session.SignIn(ctx.Context, a.Email, a.Password); err != nil {
			return err
		}
		if ident, ok := session.Identity(); ok {
			ctx.Identity = &ident
		}
	}

	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	return onboard.Onboard(ctx)
}
