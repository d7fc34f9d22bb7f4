package matches

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	excelize "github.com/xuri/excelize/v2"

	"github.com/angoleague/algtool/internal/firestore"
	"github.com/angoleague/algtool/internal/league"
)

// ExportMatches writes every match to an Excel workbook at Output, which
// may be a local path or a gs:// object. With no output (or under DryRun)
// the rows print to the console instead.
func ExportMatches(ctx *Context) error {
	ms, err := firestore.GetMatches(ctx, ctx.FirestoreClient)
	if err != nil {
		return fmt.Errorf("ExportMatches: failed to get matches: %w", err)
	}

	xl, err := makeMatchesExcelFile(ms)
	if err != nil {
		return fmt.Errorf("ExportMatches: failed to make match rows: %w", err)
	}

	if ctx.Output == "" || ctx.DryRun {
		sheetName := xl.GetSheetName(xl.GetActiveSheetIndex())
		rows, err := xl.Rows(sheetName)
		if err != nil {
			return fmt.Errorf("ExportMatches: failed to get Excel row iterator: %w", err)
		}
		for rows.Next() {
			row, err := rows.Columns()
			if err != nil {
				return fmt.Errorf("ExportMatches: failed to get Excel cells from row iterator: %w", err)
			}
			fmt.Println(strings.Join(row, ", "))
		}
		return nil
	}

	writer, err := openFileOrGSWriter(ctx, ctx.Output)
	if err != nil {
		return fmt.Errorf("ExportMatches: failed to open '%s': %w", ctx.Output, err)
	}
	defer writer.Close()

	if _, err := xl.WriteTo(writer); err != nil {
		return fmt.Errorf("ExportMatches: failed to write Excel file: %w", err)
	}
	return nil
}

func makeMatchesExcelFile(ms []league.Match) (*excelize.File, error) {
	xl := excelize.NewFile()
	sheetName := xl.GetSheetName(xl.GetActiveSheetIndex())

	header := []string{"ID", "Tipo", "Equipa A", "Equipa B", "Data", "Local", "Estado", "Golos A", "Golos B"}
	for col, str := range header {
		index, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		xl.SetCellStr(sheetName, index, str)
	}

	for i, m := range ms {
		row := []string{m.ID, string(m.Type), m.TeamA, m.TeamB, m.Date, m.Location, string(m.Status), intPtrString(m.ScoreA), intPtrString(m.ScoreB)}
		for col, str := range row {
			index, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			xl.SetCellStr(sheetName, index, str)
		}
	}
	return xl, nil
}

func intPtrString(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

func openFileOrGSWriter(ctx context.Context, f string) (io.WriteCloser, error) {
	u, err := url.Parse(f)
	if err != nil {
		return nil, err
	}
	var w io.WriteCloser
	switch u.Scheme {
	case "gs":
		gsClient, err := storage.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		bucket := gsClient.Bucket(u.Host)
		// URL path has leading slash, but GS expects path relative to bucket.
		path := strings.TrimPrefix(u.Path, "/")
		obj := bucket.Object(path)
		w = obj.NewWriter(ctx)

	case "file":
		fallthrough
	case "":
		w, err = os.Create(u.Path)
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unable to determine how to open '%s'", f)
	}

	return w, nil
}
