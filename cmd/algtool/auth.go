package main

import (
	"context"
	"log"

	"github.com/angoleague/algtool/internal/auth"
)

type signupCmd struct {
	APIKey   string `help:"Identity provider API key." env:"FIREBASE_API_KEY" required:""`
	Email    string `arg:"" help:"Account email." required:""`
	Password string `help:"Account password." env:"ALG_PASSWORD" required:""`
}

func (a *signupCmd) Run(g *globalCmd) error {
	ctx := context.Background()
	provider, err := auth.NewGoogleProvider(ctx, a.APIKey)
	if err != nil {
		return err
	}
	session := auth.NewSession(provider)
	if err := session.SignUp(ctx, a.Email, a.Password); err != nil {
		return err
	}
	ident, _ := session.Identity()
	log.Printf("Created account %s (%s)", ident.UID, ident.Email)
	return nil
}

type resetPasswordCmd struct {
	APIKey string `help:"Identity provider API key." env:"FIREBASE_API_KEY" required:""`
	Email  string `arg:"" help:"Account email." required:""`
}

func (a *resetPasswordCmd) Run(g *globalCmd) error {
	ctx := context.Background()
	provider, err := auth.NewGoogleProvider(ctx, a.APIKey)
	if err != nil {
		return err
	}
	session := auth.NewSession(provider)
	if err := session.SendPasswordReset(ctx, a.Email); err != nil {
		return err
	}
	log.Printf("Password reset email sent to %s", a.Email)
	return nil
}
