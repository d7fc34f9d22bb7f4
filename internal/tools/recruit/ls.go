package recruit

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/angoleague/algtool/internal/firestore"
)

// Ls prints every recruitment post as a table.
func Ls(ctx *Context) error {
	ps, err := firestore.GetRecruitmentPosts(ctx, ctx.FirestoreClient)
	if err != nil {
		return fmt.Errorf("Ls: failed to get recruitment posts: %w", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Team", "Position", "Description", "Date"})
	for _, p := range ps {
		t.AppendRow(table.Row{p.ID, p.TeamName, p.PositionNeeded, p.Description, p.Date})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}
