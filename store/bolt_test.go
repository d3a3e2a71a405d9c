package store_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/ayoisaiah/chronos/store"
)

func TestBoltClient(t *testing.T) {
	client, err := store.NewClient(filepath.Join(t.TempDir(), "chronos.db"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	defer client.Close()

	v, err := client.Get("missing")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if v != nil {
		t.Errorf("Expected nil for a missing key, but got: %q", v)
	}

	var observed []store.Change

	_, cancel := client.Watch(func(ch store.Change) {
		observed = append(observed, ch)
	})
	defer cancel()

	writerToken, cancelWriter := client.Watch(func(store.Change) {
		t.Error("The writer must not observe its own changes")
	})
	defer cancelWriter()

	if err := client.Set("k", []byte("v"), writerToken); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	v, err = client.Get("k")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !bytes.Equal(v, []byte("v")) {
		t.Errorf("Expected value %q, but got: %q", "v", v)
	}

	if err := client.Delete("k", writerToken); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	v, _ = client.Get("k")
	if v != nil {
		t.Errorf("Expected nil after delete, but got: %q", v)
	}

	if len(observed) != 2 {
		t.Fatalf("Expected 2 observed changes, but got: %d", len(observed))
	}

	if observed[0].Key != "k" || !bytes.Equal(observed[0].Value, []byte("v")) {
		t.Errorf("Unexpected first change: %+v", observed[0])
	}

	if observed[1].Value != nil {
		t.Errorf("Expected a nil value for the delete change: %+v", observed[1])
	}
}
