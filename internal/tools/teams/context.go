package teams

import (
	"context"

	fs "cloud.google.com/go/firestore"
)

type Context struct {
	context.Context

	Force  bool
	DryRun bool

	FirestoreClient *fs.Client

	Name      string
	Locality  string
	CaptainID string
	Members   []string

	Roster string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
