package firestore

import (
	"context"
	"fmt"
	"strings"

	fs "cloud.google.com/go/firestore"

	"github.com/angoleague/algtool/internal/league"
)

// RecruitmentPostDocument is the persisted shape of a recruitment post.
type RecruitmentPostDocument struct {
	TeamID         string `firestore:"teamId"`
	TeamName       string `firestore:"teamName"`
	PositionNeeded string `firestore:"positionNeeded"`
	Description    string `firestore:"description"`
	Date           string `firestore:"date"`
}

func (p RecruitmentPostDocument) String() string {
	var sb strings.Builder
	sb.WriteString("RecruitmentPost\n")
	ss := make([]string, 0)
	ss = append(ss, treeString("TeamID", 0, false, p.TeamID))
	ss = append(ss, treeString("TeamName", 0, false, p.TeamName))
	ss = append(ss, treeString("PositionNeeded", 0, false, p.PositionNeeded))
	ss = append(ss, treeString("Description", 0, false, p.Description))
	ss = append(ss, treeString("Date", 0, true, p.Date))
	sb.WriteString(strings.Join(ss, "\n"))
	return sb.String()
}

// NewRecruitmentPostDocument converts a domain post into its persisted shape.
func NewRecruitmentPostDocument(p league.RecruitmentPost) RecruitmentPostDocument {
	return RecruitmentPostDocument{
		TeamID:         p.TeamID,
		TeamName:       p.TeamName,
		PositionNeeded: string(p.PositionNeeded),
		Description:    p.Description,
		Date:           p.Date,
	}
}

// GetRecruitmentPosts returns every recruitment post, normalized.
func GetRecruitmentPosts(ctx context.Context, client *fs.Client) ([]league.RecruitmentPost, error) {
	ids, raws, err := rawDocuments(ctx, client.Collection(RECRUITMENT_COLLECTION))
	if err != nil {
		return nil, fmt.Errorf("GetRecruitmentPosts: error getting post snapshots: %w", err)
	}
	posts := make([]league.RecruitmentPost, len(ids))
	for i := range ids {
		posts[i] = league.NormalizeRecruitmentPost(ids[i], raws[i])
	}
	return posts, nil
}

// CreateRecruitmentPost writes a new post with a store-generated ID and
// returns that ID.
func CreateRecruitmentPost(ctx context.Context, client *fs.Client, p league.RecruitmentPost) (string, error) {
	ref, _, err := client.Collection(RECRUITMENT_COLLECTION).Add(ctx, NewRecruitmentPostDocument(p))
	if err != nil {
		return "", fmt.Errorf("CreateRecruitmentPost: error adding post document: %w", err)
	}
	return ref.ID, nil
}
