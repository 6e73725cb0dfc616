package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

func openTestBolt(t *testing.T) *Bolt {
	t.Helper()
	s, err := OpenBolt(filepath.Join(t.TempDir(), "forms.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBoltRoundTrip(t *testing.T) {
	s := openTestBolt(t)

	var doc model.FormDocument
	doc.InsertField(model.FieldTypeEmail)
	doc.InsertField(model.FieldTypeRadio)

	id, err := s.Save("Contact Us", doc)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id != "contact-us" {
		t.Fatalf("id = %q", id)
	}

	loaded, ok, err := s.Get(id)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	want := doc.Clone()
	want.Name = "Contact Us"
	// Options slices survive the JSON round trip; nil/empty is normalised.
	if diff := cmp.Diff(want, loaded, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestBoltUpsertBySlug(t *testing.T) {
	s := openTestBolt(t)

	if _, err := s.Save("My Form", model.FormDocument{}); err != nil {
		t.Fatalf("save: %v", err)
	}
	var second model.FormDocument
	second.InsertField(model.FieldTypeButton)
	if _, err := s.Save("my   form", second); err != nil {
		t.Fatalf("save: %v", err)
	}

	forms, err := s.ListAll()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(forms) != 1 {
		t.Fatalf("expected upsert to keep one entry, got %d", len(forms))
	}
	if len(forms["my-form"].Fields) != 1 {
		t.Fatalf("second save did not win: %+v", forms["my-form"])
	}
}

func TestBoltDeleteMissingIsNoOp(t *testing.T) {
	s := openTestBolt(t)
	if err := s.Delete("never-saved"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestBoltEmptyNameRejected(t *testing.T) {
	s := openTestBolt(t)
	if _, err := s.Save("  ", model.FormDocument{}); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("err = %v, want ErrEmptyName", err)
	}
}

func TestBoltPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forms.db")

	s, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	var doc model.FormDocument
	doc.InsertField(model.FieldTypeText)
	if _, err := s.Save("Intake", doc); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	_, ok, err := reopened.Get("intake")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("saved form lost across reopen")
	}
}
