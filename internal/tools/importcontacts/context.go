package importcontacts

import (
	"context"

	"github.com/angoleague/algtool/internal/contacts"
)

type Context struct {
	context.Context

	Source contacts.Source
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
