package subtitles

import (
	"testing"
	"time"
)

func TestDocumentAddAssignsSequentialIndices(t *testing.T) {
	doc := NewDocument(3)
	for i, text := range []string{"a", "", "c"} {
		cue := doc.Add(time.Duration(i)*time.Second, time.Duration(i+1)*time.Second, text)
		if cue.Index != i+1 {
			t.Fatalf("cue %d index = %d", i, cue.Index)
		}
	}
	if doc.Len() != 3 {
		t.Fatalf("Len = %d, want 3", doc.Len())
	}
	cues := doc.Cues()
	if cues[1].Text != "" {
		t.Fatalf("expected empty text to be kept, got %q", cues[1].Text)
	}
}

func TestDocumentAddRoundsToMillisecond(t *testing.T) {
	var doc Document
	cue := doc.Add(1500*time.Microsecond+111*time.Nanosecond, 2*time.Millisecond+499*time.Microsecond, "x")
	if cue.Start != 2*time.Millisecond {
		t.Fatalf("Start = %v", cue.Start)
	}
	if cue.End != 2*time.Millisecond {
		t.Fatalf("End = %v", cue.End)
	}
}

func TestDocumentCuesReturnsCopy(t *testing.T) {
	var doc Document
	doc.Add(0, time.Second, "original")
	cues := doc.Cues()
	cues[0].Text = "mutated"
	if doc.Cues()[0].Text != "original" {
		t.Fatal("Cues must not expose internal storage")
	}
}

func TestNilDocument(t *testing.T) {
	var doc *Document
	if doc.Len() != 0 || doc.Cues() != nil {
		t.Fatal("nil document should be empty")
	}
}
