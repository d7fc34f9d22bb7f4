package onboard

import (
	"context"

	fs "cloud.google.com/go/firestore"

	"github.com/angoleague/algtool/internal/auth"
)

type Context struct {
	context.Context

	DryRun bool

	FirestoreClient *fs.Client

	// Identity is nil when onboarding runs without a signed-in user; the
	// profile then gets a store-generated ID.
	Identity *auth.Identity

	// Name, when set, skips the interactive prompts and onboards
	// non-interactively with defaults for the rest.
	Name         string
	Modality     string
	Position     string
	Province     string
	Municipality string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
