package importcontacts

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
)

// ImportContacts lists the address-book contacts a player could invite to a
// match. Authorization errors from the source propagate to the caller.
func ImportContacts(ctx *Context) error {
	cs, err := ctx.Source.GetAll()
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Name", "Phone", "Email"})
	for _, c := range cs {
		t.AppendRow(table.Row{c.ID, c.Name, c.Phone, c.Email})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	fmt.Printf("%d contacts\n", len(cs))
	return nil
}
