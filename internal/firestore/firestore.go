// Package firestore reads and writes AngoLeague documents in Cloud
// Firestore. Reads hand every raw snapshot through the league normalizer so
// callers only ever see fully-defaulted domain values; writes use the typed
// document shapes defined here.
package firestore

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// PROVINCES_COLLECTION is the path to the provinces collection in Firestore.
const PROVINCES_COLLECTION = "provinces"

// MATCHES_COLLECTION is the path to the matches collection in Firestore.
const MATCHES_COLLECTION = "matches"

// RECRUITMENT_COLLECTION is the path to the recruitment posts collection in Firestore.
const RECRUITMENT_COLLECTION = "recruitmentPosts"

// USERS_COLLECTION is the path to the users collection in Firestore.
const USERS_COLLECTION = "users"

// TEAMS_COLLECTION is the path to the teams collection in Firestore.
const TEAMS_COLLECTION = "teams"

// rawDocuments drains a collection into document IDs and raw field maps.
// The maps go straight to the normalizer; no decoding happens here.
func rawDocuments(ctx context.Context, col *fs.CollectionRef) ([]string, []map[string]any, error) {
	iter := col.Documents(ctx)
	ids := make([]string, 0)
	raws := make([]map[string]any, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		ids = append(ids, snap.Ref.ID)
		raws = append(raws, snap.Data())
	}
	return ids, raws, nil
}
