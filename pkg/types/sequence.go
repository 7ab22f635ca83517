package types

// Item is an encoded item identifier. Raw domain tokens are mapped to Items
// by the encoder before mining; the mapping is not part of the core.
type Item uint32

// Sequence is an ordered run of items. It serves both as a transaction (the
// unit being searched) and as a candidate pattern (the unit being searched
// for). Order is significant and items may repeat.
type Sequence []Item

// Equal reports whether two sequences have the same items in the same order.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the sequence.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Pattern pairs a candidate sequence with its support count: the number of
// transactions that contain the sequence as a contiguous run, counted at most
// once per transaction.
type Pattern struct {
	Items   Sequence `json:"items"`
	Support int      `json:"support"`
}

// Level holds the frequent patterns discovered at one k-sequence level,
// in the order their candidates were generated.
type Level []Pattern

// Sequences returns the pattern sequences of the level, preserving order.
// Used to seed candidate generation for the next level.
func (l Level) Sequences() []Sequence {
	out := make([]Sequence, len(l))
	for i, p := range l {
		out[i] = p.Items
	}
	return out
}
