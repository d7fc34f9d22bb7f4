package advice

import (
	"fmt"

	"github.com/angoleague/algtool/internal/firestore"
)

// Advice prints matchmaking recommendations for one player: the profile is
// fetched, local teams are matched on the player's locality, and the text
// comes from the AI client (or its fallback, never an error).
func Advice(ctx *Context) error {
	profile, found, err := firestore.GetUserProfile(ctx, ctx.FirestoreClient, ctx.UID)
	if err != nil {
		return fmt.Errorf("Advice: failed to get profile %s: %w", ctx.UID, err)
	}
	if !found {
		return fmt.Errorf("Advice: no profile with ID '%s': complete onboarding first", ctx.UID)
	}

	teams, err := firestore.GetTeams(ctx, ctx.FirestoreClient)
	if err != nil {
		return fmt.Errorf("Advice: failed to get teams: %w", err)
	}
	local := firestore.TeamsByLocality(teams, profile.Municipality)
	if len(local) == 0 {
		local = teams
	}

	fmt.Println(ctx.AIClient.MatchmakingAdvice(ctx, profile, local))
	return nil
}

// Feed prints a generated local feed post for a locality.
func Feed(ctx *Context) error {
	fmt.Println(ctx.AIClient.LocalFeedPost(ctx, ctx.Locality))
	return nil
}
