package subtitles

import "time"

// Cue is one numbered, timed text unit.
type Cue struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

// Document is an ordered, append-only collection of cues. The zero value is
// an empty document ready for use.
type Document struct {
	cues []Cue
}

// NewDocument returns an empty document with room for capacity cues.
func NewDocument(capacity int) *Document {
	if capacity < 0 {
		capacity = 0
	}
	return &Document{cues: make([]Cue, 0, capacity)}
}

// Add appends a cue and returns it with its assigned 1-based index.
// Times are stored at millisecond precision.
func (d *Document) Add(start, end time.Duration, text string) Cue {
	cue := Cue{
		Index: len(d.cues) + 1,
		Start: start.Round(time.Millisecond),
		End:   end.Round(time.Millisecond),
		Text:  text,
	}
	d.cues = append(d.cues, cue)
	return cue
}

// Len reports the number of cues.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.cues)
}

// Cues returns a copy of the cues in insertion order.
func (d *Document) Cues() []Cue {
	if d == nil {
		return nil
	}
	out := make([]Cue, len(d.cues))
	copy(out, d.cues)
	return out
}
