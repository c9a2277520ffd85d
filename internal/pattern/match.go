package pattern

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// MatchSegment is one contiguous matched span of input positions.
type MatchSegment struct {
	Start int `json:"start"`
	Len   int `json:"len"`
}

func (s MatchSegment) End() int { return s.Start + s.Len }

// Match is the result of evaluating a pattern. Segments are ordered by
// position; a nil list means the pattern did not match.
type Match struct {
	Segments []MatchSegment `json:"segments"`
}

// NoMatch returns the canonical unmatched value.
func NoMatch() Match { return Match{} }

func single(start, length int) Match {
	return Match{Segments: []MatchSegment{{Start: start, Len: length}}}
}

// MarshalJSON writes an unmatched value as an empty segment list rather
// than null.
func (m Match) MarshalJSON() ([]byte, error) {
	type plain Match
	if m.Segments == nil {
		m.Segments = []MatchSegment{}
	}
	return json.Marshal(plain(m))
}

func (m Match) Matched() bool   { return len(m.Segments) > 0 }
func (m Match) Unmatched() bool { return len(m.Segments) == 0 }

// GeneralStart is the start of the first segment, or 0 when unmatched.
func (m Match) GeneralStart() int {
	if m.Unmatched() {
		return 0
	}
	return m.Segments[0].Start
}

// GeneralEnd is the end of the last segment, or 0 when unmatched.
func (m Match) GeneralEnd() int {
	if m.Unmatched() {
		return 0
	}
	return m.Segments[len(m.Segments)-1].End()
}

func (m Match) GeneralLen() int {
	return m.GeneralEnd() - m.GeneralStart()
}

// AddOffset shifts every segment by offset. The segments are copied first,
// so matches sharing them with m are left alone.
func (m *Match) AddOffset(offset int) {
	m.Segments = slices.Clone(m.Segments)
	for i := range m.Segments {
		m.Segments[i].Start += offset
	}
}

// Append concatenates the match produced by right onto m.
//
// right is called only when m matched, and receives m. If right does not
// match, or does not start exactly where m ends, m becomes unmatched.
// Otherwise the last segment of m absorbs the first segment of right and
// the rest of right's segments follow.
func (m *Match) Append(right func(left Match) Match) {
	if m.Unmatched() {
		return
	}

	other := right(*m)
	if other.Unmatched() || other.GeneralStart() != m.GeneralEnd() {
		*m = NoMatch()
		return
	}

	merged := make([]MatchSegment, 0, len(m.Segments)+len(other.Segments)-1)
	merged = append(merged, m.Segments...)
	merged[len(merged)-1].Len += other.Segments[0].Len
	merged = append(merged, other.Segments[1:]...)
	m.Segments = merged
}

func (m Match) Equal(other Match) bool {
	return slices.Equal(m.Segments, other.Segments)
}

func (m Match) String() string {
	if m.Unmatched() {
		return "unmatched"
	}
	parts := make([]string, len(m.Segments))
	for i, s := range m.Segments {
		parts[i] = fmt.Sprintf("{%d %d}", s.Start, s.Len)
	}
	return strings.Join(parts, " ")
}
