package teams

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/tealeg/xlsx"

	"github.com/angoleague/algtool/internal/firestore"
	"github.com/angoleague/algtool/internal/league"
)

// ImportTeams reads a roster workbook (local path or gs:// object) and
// creates one team per row. The first sheet is read; the first row is a
// header. Columns: name, locality, captain ID.
func ImportTeams(ctx *Context) error {
	reader, err := getFileOrGSReader(ctx, ctx.Roster)
	if err != nil {
		return fmt.Errorf("ImportTeams: failed to open '%s': %w", ctx.Roster, err)
	}
	defer reader.Close()

	slurp, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("ImportTeams: failed to read '%s': %w", ctx.Roster, err)
	}

	parsed, err := parseRoster(slurp)
	if err != nil {
		return fmt.Errorf("ImportTeams: failed to parse roster: %w", err)
	}
	log.Printf("Parsed %d teams from roster", len(parsed))

	if ctx.DryRun {
		log.Print("DRY RUN: would write the following team documents:")
		for _, t := range parsed {
			log.Printf("%s", firestore.NewTeamDocument(t))
		}
		return nil
	}

	for _, t := range parsed {
		id, err := firestore.CreateTeam(ctx, ctx.FirestoreClient, t)
		if err != nil {
			return fmt.Errorf("ImportTeams: failed to create team '%s': %w", t.Name, err)
		}
		log.Printf("Created team %s (%s)", id, t.Name)
	}
	return nil
}

func parseRoster(slurp []byte) ([]league.Team, error) {
	xl, err := xlsx.OpenBinary(slurp)
	if err != nil {
		return nil, err
	}
	if len(xl.Sheets) == 0 {
		return nil, fmt.Errorf("roster workbook has no sheets")
	}
	sheet := xl.Sheets[0]
	log.Printf("Reading sheet name: %s", sheet.Name)

	teams := make([]league.Team, 0)
	for irow, row := range sheet.Rows {
		if irow == 0 {
			continue // header
		}
		cell := func(i int) string {
			if i < len(row.Cells) {
				return strings.TrimSpace(row.Cells[i].Value)
			}
			return ""
		}
		name := cell(0)
		if name == "" {
			continue
		}
		teams = append(teams, league.Team{
			Name:      name,
			Locality:  cell(1),
			CaptainID: cell(2),
		})
	}
	return teams, nil
}

func getFileOrGSReader(ctx context.Context, f string) (io.ReadCloser, error) {
	u, err := url.Parse(f)
	if err != nil {
		return nil, err
	}
	var r io.ReadCloser
	switch u.Scheme {
	case "gs":
		gsClient, err := storage.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		bucket := gsClient.Bucket(u.Host)
		obj := bucket.Object(strings.Trim(u.Path, "/"))
		r, err = obj.NewReader(ctx)
		if err != nil {
			return nil, err
		}

	case "file":
		fallthrough
	case "":
		r, err = os.Open(u.Path)
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unable to determine how to open '%s'", f)
	}

	return r, nil
}
