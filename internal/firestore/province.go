package firestore

import (
	"context"
	"fmt"
	"strings"

	fs "cloud.google.com/go/firestore"

	"github.com/angoleague/algtool/internal/league"
)

// Province is a province document. The document ID carries no meaning; only
// the name is read.
type Province struct {
	Name string `firestore:"name"`
}

func (p Province) String() string {
	var sb strings.Builder
	sb.WriteString("Province\n")
	sb.WriteString(treeString("Name", 0, true, p.Name))
	return sb.String()
}

// GetProvinces returns the sorted province names, dropping malformed
// entries. An empty collection yields an empty list.
func GetProvinces(ctx context.Context, client *fs.Client) ([]string, error) {
	_, raws, err := rawDocuments(ctx, client.Collection(PROVINCES_COLLECTION))
	if err != nil {
		return nil, fmt.Errorf("GetProvinces: error getting province snapshots: %w", err)
	}
	return league.NormalizeProvinceList(raws), nil
}
