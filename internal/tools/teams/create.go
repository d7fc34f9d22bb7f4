package teams

import (
	"fmt"
	"log"

	"github.com/angoleague/algtool/internal/firestore"
	"github.com/angoleague/algtool/internal/league"
)

// CreateTeam registers one team with a zeroed aggregate record.
func CreateTeam(ctx *Context) error {
	if ctx.Name == "" {
		return fmt.Errorf("CreateTeam: a team name is required")
	}
	t := league.Team{
		Name:      ctx.Name,
		Locality:  ctx.Locality,
		CaptainID: ctx.CaptainID,
		Members:   ctx.Members,
	}

	if ctx.DryRun {
		log.Print("DRY RUN: would write the following team document:")
		log.Printf("%s", firestore.NewTeamDocument(t))
		return nil
	}

	id, err := firestore.CreateTeam(ctx, ctx.FirestoreClient, t)
	if err != nil {
		return fmt.Errorf("CreateTeam: failed to create team: %w", err)
	}
	log.Printf("Created team %s (%s)", id, t.Name)
	return nil
}
