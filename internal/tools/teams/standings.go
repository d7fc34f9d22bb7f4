package teams

import (
	"fmt"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"gonum.org/v1/gonum/stat"

	"github.com/angoleague/algtool/internal/firestore"
	"github.com/angoleague/algtool/internal/league"
)

// points scores a record three-one-zero.
func points(r league.TeamRecord) int {
	return 3*r.Wins + r.Draws
}

// Standings prints the league table sorted by points, with goal difference
// as the tiebreak, followed by a summary of the goal distribution.
func Standings(ctx *Context) error {
	ts, err := firestore.GetTeams(ctx, ctx.FirestoreClient)
	if err != nil {
		return fmt.Errorf("Standings: failed to get teams: %w", err)
	}
	if ctx.Locality != "" {
		ts = firestore.TeamsByLocality(ts, ctx.Locality)
	}

	sort.SliceStable(ts, func(i, j int) bool {
		pi, pj := points(ts[i].Record), points(ts[j].Record)
		if pi != pj {
			return pi > pj
		}
		di := ts[i].Record.GoalsFor - ts[i].Record.GoalsAgainst
		dj := ts[j].Record.GoalsFor - ts[j].Record.GoalsAgainst
		return di > dj
	})

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Team", "P", "W", "D", "L", "GF", "GA", "GD", "Pts"})
	goalsFor := make([]float64, 0, len(ts))
	for i, team := range ts {
		r := team.Record
		t.AppendRow(table.Row{i + 1, team.Name, r.Played(), r.Wins, r.Draws, r.Losses, r.GoalsFor, r.GoalsAgainst, r.GoalsFor - r.GoalsAgainst, points(r)})
		goalsFor = append(goalsFor, float64(r.GoalsFor))
	}
	t.SetStyle(table.StyleLight)
	t.Render()

	if len(goalsFor) > 0 {
		mean, std := stat.MeanStdDev(goalsFor, nil)
		fmt.Printf("Goals for: mean %.2f, stddev %.2f across %d teams\n", mean, std, len(goalsFor))
	}
	return nil
}
