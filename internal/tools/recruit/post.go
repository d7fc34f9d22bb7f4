package recruit

import (
	"fmt"
	"log"

	"github.com/angoleague/algtool/internal/firestore"
	"github.com/angoleague/algtool/internal/league"
)

// Post publishes one recruitment post. The position is coerced onto the
// closed position set, so a typo recruits a midfielder rather than failing.
func Post(ctx *Context) error {
	raw := map[string]any{
		"positionNeeded": ctx.PositionNeeded,
		"description":    ctx.Description,
		"date":           ctx.Date,
	}
	if ctx.TeamID != "" {
		raw["teamId"] = ctx.TeamID
	}
	if ctx.TeamName != "" {
		raw["teamName"] = ctx.TeamName
	}
	p := league.NormalizeRecruitmentPost("", raw)

	if ctx.DryRun {
		log.Print("DRY RUN: would write the following recruitment post:")
		log.Printf("%s", firestore.NewRecruitmentPostDocument(p))
		return nil
	}

	id, err := firestore.CreateRecruitmentPost(ctx, ctx.FirestoreClient, p)
	if err != nil {
		return fmt.Errorf("Post: failed to create recruitment post: %w", err)
	}
	log.Printf("Created recruitment post %s for %s (%s)", id, p.TeamName, p.PositionNeeded)
	return nil
}
