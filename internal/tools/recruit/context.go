package recruit

import (
	"context"

	fs "cloud.google.com/go/firestore"
)

type Context struct {
	context.Context

	DryRun bool

	FirestoreClient *fs.Client

	TeamID         string
	TeamName       string
	PositionNeeded string
	Description    string
	Date           string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
