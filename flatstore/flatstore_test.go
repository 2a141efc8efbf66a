package flatstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.cfg")
	content := "SERVER_NAME='admin'\nSECRET_KEY=\"abc\"\n# comment\nSECURITY_PASSWORD_SALT=None\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	values, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := map[string]string{
		"SERVER_NAME":            "admin",
		"SECRET_KEY":             "abc",
		"SECURITY_PASSWORD_SALT": "None",
	}
	for k, v := range want {
		if values[k] != v {
			t.Errorf("%s = %q, want %q", k, values[k], v)
		}
	}
	if len(values) != len(want) {
		t.Errorf("got %d keys, want %d", len(values), len(want))
	}
}

func TestRead_NotFound(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.cfg"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestRead_Directory(t *testing.T) {
	_, err := Read(t.TempDir())
	if err == nil {
		t.Fatal("expected error reading a directory")
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("directory should not be reported as not found: %v", err)
	}
}

func TestParse_MalformedLineFailsWholeFile(t *testing.T) {
	_, err := Parse(strings.NewReader("bad-line\nSERVER_NAME=admin\n"))
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("error = %v, want ErrMalformed", err)
	}
}

func TestParse_Empty(t *testing.T) {
	values, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if values == nil || len(values) != 0 {
		t.Errorf("Parse(\"\") = %v, want empty map", values)
	}
}

func TestReadOptional(t *testing.T) {
	values, err := ReadOptional(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("ReadOptional() error = %v", err)
	}
	if len(values) != 0 {
		t.Errorf("got %v, want empty", values)
	}
}
