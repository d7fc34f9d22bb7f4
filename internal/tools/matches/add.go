package matches

import (
	"fmt"
	"log"

	"github.com/angoleague/algtool/internal/firestore"
	"github.com/angoleague/algtool/internal/league"
)

// AddMatch creates one match document. Unset fields get the normalizer's
// defaults, so a bare invocation schedules a friendly between the two
// provisional sides.
func AddMatch(ctx *Context) error {
	raw := map[string]any{}
	if ctx.Type != "" {
		raw["type"] = ctx.Type
	}
	if ctx.TeamA != "" {
		raw["teamA"] = ctx.TeamA
	}
	if ctx.TeamB != "" {
		raw["teamB"] = ctx.TeamB
	}
	raw["date"] = ctx.Date
	raw["location"] = ctx.Location
	if ctx.Status != "" {
		raw["status"] = ctx.Status
	}
	if ctx.ScoreA != nil {
		raw["scoreA"] = *ctx.ScoreA
	}
	if ctx.ScoreB != nil {
		raw["scoreB"] = *ctx.ScoreB
	}
	m := league.NormalizeMatch("", raw)

	if ctx.DryRun {
		log.Print("DRY RUN: would write the following match document:")
		log.Printf("%s", firestore.NewMatchDocument(m))
		return nil
	}

	id, err := firestore.CreateMatch(ctx, ctx.FirestoreClient, m)
	if err != nil {
		return fmt.Errorf("AddMatch: failed to create match: %w", err)
	}
	log.Printf("Created match %s (%s vs %s)", id, m.TeamA, m.TeamB)
	return nil
}
