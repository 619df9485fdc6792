package fieldindex

import (
	"testing"

	"github.com/hupe1980/vaultindex/value"
)

func TestPresenceIndex_AddDelete(t *testing.T) {
	ix := NewPresence(NewDictionary())

	ix.Add("a", value.Int(1))
	ix.Add("b", value.String("x"))
	ix.Add("a", value.Int(2)) // re-add keeps a single entry

	if ix.All().Len() != 2 {
		t.Fatalf("expected 2 present, got %d", ix.All().Len())
	}

	ix.Delete("a", value.Int(2))
	ix.Delete("a", value.Int(2)) // no-op
	ix.Delete("never-added", value.Null())

	if ix.All().Len() != 1 || !ix.All().Contains("b") {
		t.Fatalf("expected only b present, got %v", ix.All().Slice())
	}
}

func TestPresenceIndex_Capabilities(t *testing.T) {
	ix := NewPresence(NewDictionary())
	ix.Add("a", value.Int(1))

	if _, ok := ix.Equals(value.Int(1)); ok {
		t.Fatalf("expected equals to be unsupported")
	}
	if _, ok := ix.Ascending(); ok {
		t.Fatalf("expected ascending to be unsupported")
	}
	if _, ok := ix.Descending(); ok {
		t.Fatalf("expected descending to be unsupported")
	}
}
