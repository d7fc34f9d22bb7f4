package onboard

import (
	"fmt"
	"log"

	"github.com/AlecAivazis/survey/v2"

	"github.com/angoleague/algtool/internal/firestore"
	"github.com/angoleague/algtool/internal/league"
)

// Onboard assembles a profile in the same three steps as the web client
// (name, then style, then locality) and persists it exactly once. The name
// must be non-empty before the flow can progress; with an authenticated
// identity the profile is written at the identity's UID.
func Onboard(ctx *Context) error {
	profile := league.UserProfile{
		Name:         ctx.Name,
		Modality:     league.CoerceModality(ctx.Modality),
		Position:     league.CoercePosition(ctx.Position),
		Province:     ctx.Province,
		Municipality: ctx.Municipality,
	}

	if ctx.Name == "" {
		var err error
		profile, err = surveyProfile(ctx)
		if err != nil {
			return fmt.Errorf("Onboard: %w", err)
		}
	}

	if !profile.Complete() {
		return fmt.Errorf("Onboard: a non-empty name is required to complete onboarding")
	}

	if ctx.DryRun {
		log.Print("DRY RUN: would write the following user document:")
		log.Printf("%s", firestore.NewUserDocument(profile, ctx.Identity))
		return nil
	}

	id, err := firestore.CreateUserProfile(ctx, ctx.FirestoreClient, ctx.Identity, profile)
	if err != nil {
		return fmt.Errorf("Onboard: failed to create user profile: %w", err)
	}
	log.Printf("Created profile %s for %s", id, profile.Name)
	return nil
}

func surveyProfile(ctx *Context) (league.UserProfile, error) {
	var profile league.UserProfile

	// Step 1: who are you?
	var name string
	if err := survey.AskOne(&survey.Input{Message: "Nome Completo:"}, &name, survey.WithValidator(survey.Required)); err != nil {
		return profile, err
	}

	// Step 2: what is your style?
	modalities := make([]string, 0)
	for _, m := range league.Modalities() {
		modalities = append(modalities, string(m))
	}
	var modality string
	if err := survey.AskOne(&survey.Select{Message: "Modalidade Preferida:", Options: modalities}, &modality); err != nil {
		return profile, err
	}

	positions := make([]string, 0)
	for _, p := range league.Positions() {
		positions = append(positions, string(p))
	}
	var position string
	if err := survey.AskOne(&survey.Select{Message: "Sua Posição:", Options: positions, Default: string(league.PositionMidfielder)}, &position); err != nil {
		return profile, err
	}

	// Step 3: where do you play? Provinces come from the store; a fresh
	// deployment without a seed falls back to free text.
	provinces, err := firestore.GetProvinces(ctx, ctx.FirestoreClient)
	if err != nil {
		return profile, err
	}
	var province string
	if len(provinces) > 0 {
		if err := survey.AskOne(&survey.Select{Message: "Província:", Options: provinces}, &province); err != nil {
			return profile, err
		}
	} else {
		if err := survey.AskOne(&survey.Input{Message: "Província:"}, &province); err != nil {
			return profile, err
		}
	}
	var municipality string
	if err := survey.AskOne(&survey.Input{Message: "Município/Bairro:"}, &municipality); err != nil {
		return profile, err
	}

	profile.Name = name
	profile.Modality = league.CoerceModality(modality)
	profile.Position = league.CoercePosition(position)
	profile.Province = province
	profile.Municipality = municipality
	return profile, nil
}
