package users

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/angoleague/algtool/internal/firestore"
	"github.com/angoleague/algtool/internal/league"
)

// Get prints one profile. A missing profile is reported as such, distinct
// from a store failure.
func Get(ctx *Context) error {
	profile, found, err := firestore.GetUserProfile(ctx, ctx.FirestoreClient, ctx.UID)
	if err != nil {
		return fmt.Errorf("Get: failed to get profile %s: %w", ctx.UID, err)
	}
	if !found {
		fmt.Printf("No profile with ID '%s'\n", ctx.UID)
		return nil
	}
	printProfile(profile)
	return nil
}

func printProfile(u league.UserProfile) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendRow(table.Row{"ID", u.ID})
	t.AppendRow(table.Row{"Name", u.Name})
	t.AppendRow(table.Row{"Email", u.Email})
	t.AppendRow(table.Row{"Avatar", u.AvatarURL()})
	t.AppendRow(table.Row{"Modality", u.Modality})
	t.AppendRow(table.Row{"Position", u.Position})
	t.AppendRow(table.Row{"Province", u.Province})
	t.AppendRow(table.Row{"Municipality", u.Municipality})
	team := u.TeamID
	if u.FreeAgent() {
		team = "(free agent)"
	}
	t.AppendRow(table.Row{"Team", team})
	t.SetStyle(table.StyleLight)
	t.Render()
}
