package main

import (
	"context"

	"github.com/angoleague/algtool/internal/contacts"
	"github.com/angoleague/algtool/internal/tools/importcontacts"
)

type lsContactsCmd struct {
	File  string `help:"Exported address-book JSON file." env:"ALG_CONTACTS_FILE" required:""`
	Allow bool   `help:"Grant contact access; without it the command fails with the authorization error."`
}

func (a *lsContactsCmd) Run(g *globalCmd) error {
	ctx := importcontacts.NewContext(context.Background())
	ctx.Source = contacts.FileSource{Path: a.File, Granted: a.Allow}
	return importcontacts.ImportContacts(ctx)
}
