package setupleague

import (
	"fmt"
	"log"

	progressbar "github.com/schollz/progressbar/v3"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/angoleague/algtool/internal/firestore"
	"github.com/angoleague/algtool/internal/league"
)

// SetupLeague seeds the provinces collection with the 18 Angolan provinces.
// Province documents are keyed by name, so the seed is idempotent: extant
// documents are skipped unless Force is set.
func SetupLeague(ctx *Context) error {
	col := ctx.FirestoreClient.Collection(firestore.PROVINCES_COLLECTION)

	if ctx.DryRun {
		log.Print("DRY RUN: would write the following province documents:")
		for _, name := range league.DefaultProvinces {
			log.Printf("%s -> %s", col.Doc(name).Path, name)
		}
		return nil
	}

	bar := progressbar.NewOptions(len(league.DefaultProvinces), progressbar.OptionSetVisibility(!ctx.NoProgress))
	written := 0
	for _, name := range league.DefaultProvinces {
		ref := col.Doc(name)
		_, err := ref.Get(ctx)
		if err == nil && !ctx.Force {
			bar.Add(1)
			continue
		}
		if err != nil && status.Code(err) != codes.NotFound {
			return fmt.Errorf("SetupLeague: error checking province '%s': %w", name, err)
		}
		if _, err := ref.Set(ctx, firestore.Province{Name: name}); err != nil {
			return fmt.Errorf("SetupLeague: error writing province '%s': %w", name, err)
		}
		written++
		bar.Add(1)
	}
	log.Printf("Seeded %d of %d provinces (%d already present)", written, len(league.DefaultProvinces), len(league.DefaultProvinces)-written)
	return nil
}
