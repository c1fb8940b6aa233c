package zip

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
)

func TestArchiveRoundTrip(t *testing.T) {
	data, err := Archive([]Entry{
		{Name: "profile.json", Data: []byte(`{"name":"Ana"}`)},
		{Name: "meals.json", Data: []byte(`[]`)},
	})
	if err != nil {
		t.Fatalf("Archive returned error: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("reading archive back: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("archive holds %d files, want 2", len(zr.File))
	}
	rc, err := zr.File[0].Open()
	if err != nil {
		t.Fatalf("opening first entry: %v", err)
	}
	defer rc.Close()
	content, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("reading first entry: %v", err)
	}
	if string(content) != `{"name":"Ana"}` {
		t.Fatalf("first entry = %q", content)
	}
}

func TestArchiveRejectsUnnamedEntry(t *testing.T) {
	if _, err := Archive([]Entry{{Data: []byte("x")}}); err == nil {
		t.Fatal("expected error for unnamed entry")
	}
}
