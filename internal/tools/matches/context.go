package matches

import (
	"context"

	fs "cloud.google.com/go/firestore"
)

type Context struct {
	context.Context

	Force  bool
	DryRun bool

	FirestoreClient *fs.Client

	Type     string
	TeamA    string
	TeamB    string
	Date     string
	Location string
	Status   string
	ScoreA   *int
	ScoreB   *int

	Output string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
