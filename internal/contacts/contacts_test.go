package contacts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeContactsFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contacts.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write contacts file: %v", err)
	}
	return path
}

func TestFileSourceGetAll(t *testing.T) {
	path := writeContactsFile(t, `[
		{"id": "c1", "givenName": "Mário", "phones": ["+244 923 000 111", "+244 912 222 333"], "emails": ["mario@x.com"]},
		{"givenName": "Joana", "phones": [], "emails": []}
	]`)
	got, err := FileSource{Path: path, Granted: true}.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GetAll returned %d contacts, want 2", len(got))
	}
	first := got[0]
	if first.ID != "c1" || first.Name != "Mário" || first.Phone != "+244 923 000 111" || first.Email != "mario@x.com" {
		t.Errorf("first contact = %+v", first)
	}
	if got[1].ID == "" {
		t.Error("contact without an ID should get a generated one")
	}
	if got[1].Phone != "" || got[1].Email != "" {
		t.Errorf("contact without phones/emails should stay empty: %+v", got[1])
	}
}

func TestFileSourceDenied(t *testing.T) {
	path := writeContactsFile(t, `[]`)
	_, err := FileSource{Path: path, Granted: false}.GetAll()
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if err.Error() != "Você não está autorizado!" {
		t.Errorf("authorization message changed: %q", err.Error())
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := FileSource{Path: filepath.Join(t.TempDir(), "nope.json"), Granted: true}.GetAll()
	if err == nil || errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("missing file should be a plain error, got %v", err)
	}
}
