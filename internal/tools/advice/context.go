package advice

import (
	"context"

	fs "cloud.google.com/go/firestore"

	"github.com/angoleague/algtool/internal/ai"
)

type Context struct {
	context.Context

	FirestoreClient *fs.Client
	AIClient        *ai.Client

	UID      string
	Locality string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
