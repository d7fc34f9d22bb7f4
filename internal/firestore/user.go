package firestore

import (
	"context"
	"fmt"
	"strings"
	"time"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/angoleague/algtool/internal/auth"
	"github.com/angoleague/algtool/internal/league"
)

// UserDocument is the persisted shape of a profile.
type UserDocument struct {
	// ID duplicates the document key when the record is keyed by an
	// authenticated identity, matching what the web client writes.
	ID string `firestore:"id,omitempty"`

	Name         string `firestore:"name"`
	Email        string `firestore:"email"`
	Avatar       string `firestore:"avatar,omitempty"`
	Modality     string `firestore:"modality"`
	Position     string `firestore:"position"`
	Province     string `firestore:"province"`
	Municipality string `firestore:"municipality"`
	TeamID       string `firestore:"teamId,omitempty"`

	// CreatedAt is stamped at write time (RFC 3339); caller-supplied
	// values are ignored.
	CreatedAt string `firestore:"createdAt"`
}

func (u UserDocument) String() string {
	var sb strings.Builder
	sb.WriteString("User\n")
	ss := make([]string, 0)
	ss = append(ss, treeString("ID", 0, false, u.ID))
	ss = append(ss, treeString("Name", 0, false, u.Name))
	ss = append(ss, treeString("Email", 0, false, u.Email))
	ss = append(ss, treeString("Avatar", 0, false, u.Avatar))
	ss = append(ss, treeString("Modality", 0, false, u.Modality))
	ss = append(ss, treeString("Position", 0, false, u.Position))
	ss = append(ss, treeString("Province", 0, false, u.Province))
	ss = append(ss, treeString("Municipality", 0, false, u.Municipality))
	ss = append(ss, treeString("TeamID", 0, false, u.TeamID))
	ss = append(ss, treeString("CreatedAt", 0, true, u.CreatedAt))
	sb.WriteString(strings.Join(ss, "\n"))
	return sb.String()
}

// NewUserDocument converts a partial profile plus an optional identity into
// the record to persist. The email fallback chain is: explicit profile
// value, then the identity's email, then empty.
func NewUserDocument(profile league.UserProfile, ident *auth.Identity) UserDocument {
	email := profile.Email
	if email == "" && ident != nil {
		email = ident.Email
	}
	doc := UserDocument{
		Name:         profile.Name,
		Email:        email,
		Avatar:       profile.Avatar,
		Modality:     string(league.CoerceModality(string(profile.Modality))),
		Position:     string(league.CoercePosition(string(profile.Position))),
		Province:     profile.Province,
		Municipality: profile.Municipality,
		TeamID:       profile.TeamID,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if ident != nil {
		doc.ID = ident.UID
	}
	return doc
}

// GetUserProfile fetches one profile by ID. A missing document is reported
// as found == false with a nil error; store failures are returned as
// errors. (The web client coalesced the two; here they are deliberately
// distinct signals.)
func GetUserProfile(ctx context.Context, client *fs.Client, uid string) (league.UserProfile, bool, error) {
	snap, err := client.Collection(USERS_COLLECTION).Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return league.UserProfile{}, false, nil
	}
	if err != nil {
		return league.UserProfile{}, false, fmt.Errorf("GetUserProfile: error getting user snapshot %s: %w", uid, err)
	}
	return league.NormalizeUserProfile(uid, snap.Data()), true, nil
}

// CreateUserProfile persists a newly-assembled profile and returns the
// persisted ID. With an authenticated identity the record is written at the
// identity's UID, overwriting any previous record at that key; otherwise a
// store-generated ID is used. Exactly one write per call; store errors
// propagate unchanged.
func CreateUserProfile(ctx context.Context, client *fs.Client, ident *auth.Identity, profile league.UserProfile) (string, error) {
	doc := NewUserDocument(profile, ident)
	if ident != nil {
		if _, err := client.Collection(USERS_COLLECTION).Doc(ident.UID).Set(ctx, doc); err != nil {
			return "", fmt.Errorf("CreateUserProfile: error setting user document %s: %w", ident.UID, err)
		}
		return ident.UID, nil
	}
	ref, _, err := client.Collection(USERS_COLLECTION).Add(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("CreateUserProfile: error adding user document: %w", err)
	}
	return ref.ID, nil
}
