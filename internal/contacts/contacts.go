// Package contacts maps the host platform's address book into the app's
// lightweight contact shape. Access requires an explicit grant; denial
// surfaces the same fixed authorization error the mobile wrapper throws.
package contacts

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// ErrNotAuthorized is returned when contact access has not been granted.
var ErrNotAuthorized = errors.New("Você não está autorizado!")

// Contact is the app's view of an address-book entry: the given name plus
// the first phone number and first email on record.
type Contact struct {
	ID    string
	Name  string
	Phone string
	Email string
}

// Source yields address-book entries.
type Source interface {
	GetAll() ([]Contact, error)
}

// platform contact record as exported to the contacts file
type record struct {
	ID        string   `json:"id"`
	GivenName string   `json:"givenName"`
	Phones    []string `json:"phones"`
	Emails    []string `json:"emails"`
}

// FileSource reads an exported address book from a JSON file. Granted plays
// the role of the platform permission prompt's answer.
type FileSource struct {
	Path    string
	Granted bool
}

// GetAll returns every contact, mapped 1:1 from the platform records.
// Records without an ID get a generated one.
func (s FileSource) GetAll() ([]Contact, error) {
	if !s.Granted {
		return nil, ErrNotAuthorized
	}
	f, err := os.Open(s.Path)
	if os.IsPermission(err) {
		return nil, ErrNotAuthorized
	}
	if err != nil {
		return nil, fmt.Errorf("GetAll: error opening contacts file: %w", err)
	}
	defer f.Close()

	var records []record
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("GetAll: error decoding contacts file: %w", err)
	}

	out := make([]Contact, len(records))
	for i, r := range records {
		c := Contact{ID: r.ID, Name: r.GivenName}
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if len(r.Phones) > 0 {
			c.Phone = r.Phones[0]
		}
		if len(r.Emails) > 0 {
			c.Email = r.Emails[0]
		}
		out[i] = c
	}
	return out, nil
}
