package diff

import (
	"fmt"
	"strings"
)

// Kind classifies a change, line or fragment.
type Kind int

const (
	Unchanged Kind = iota
	Added
	Removed
	Modified // Only produced in Lines mode, for a Removed/Added pair that was recognized as an edit of the same line.
)

var kindNames = [...]string{
	Unchanged: "unchanged",
	Added:     "added",
	Removed:   "removed",
	Modified:  "modified",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("diff: invalid kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("diff: unknown kind %q", string(text))
}

// Mode is the token granularity of a comparison.
type Mode int

const (
	Characters Mode = iota
	Words
	Lines
)

var modeNames = [...]string{
	Characters: "characters",
	Words:      "words",
	Lines:      "lines",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(modeNames) {
		return nil, fmt.Errorf("diff: invalid mode %d", int(m))
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the same spellings as ParseMode.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMode parses a mode name: "characters", "words" or "lines" (case-insensitive), or one of the aliases "chars", "char", "word", "line".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "characters", "chars", "char":
		return Characters, nil
	case "words", "word":
		return Words, nil
	case "lines", "line":
		return Lines, nil
	}
	return 0, fmt.Errorf("%w: %q (want characters, words or lines)", ErrUnknownMode, s)
}

// Change is an atomic unit of a diff: a maximal run of tokens with the same Kind (Added, Removed or Unchanged).
type Change struct {
	Value string `json:"value" yaml:"value"`
	Kind  Kind   `json:"kind" yaml:"kind"`
}

// Line is one entry of the Left or Right side of a Result. In Lines mode it is a whole line; in Characters and Words mode it is a fragment of a line.
type Line struct {
	Content    string `json:"content" yaml:"content"`
	Kind       Kind   `json:"kind" yaml:"kind"`
	LineNumber int    `json:"lineNumber" yaml:"lineNumber"` // 1-based, per side. 0 only for placeholders.

	// IntraChanges is the character-level diff against the paired line, restricted to this side (Unchanged+Removed on the left, Unchanged+Added on the right).
	// Non-nil iff Kind == Modified.
	IntraChanges []Change `json:"intraChanges,omitempty" yaml:"intraChanges,omitempty"`

	// Placeholder marks padding inserted so that Left and Right have equal length. Placeholders are empty Unchanged lines.
	Placeholder bool `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// UnifiedLine is one entry of the interleaved view. Exactly one of OldLineNumber and NewLineNumber is nil for Added and Removed; both are set for Unchanged.
type UnifiedLine struct {
	Content       string `json:"content" yaml:"content"`
	Kind          Kind   `json:"kind" yaml:"kind"`
	OldLineNumber *int   `json:"oldLineNumber" yaml:"oldLineNumber"`
	NewLineNumber *int   `json:"newLineNumber" yaml:"newLineNumber"`
}

// Stats counts entries by kind. See the package doc for what is counted in each mode.
type Stats struct {
	Additions     int `json:"additions" yaml:"additions"`
	Deletions     int `json:"deletions" yaml:"deletions"`
	Modifications int `json:"modifications" yaml:"modifications"`
	Unchanged     int `json:"unchanged" yaml:"unchanged"`
}

// Result is the outcome of Compute.
type Result struct {
	Mode    Mode          `json:"mode" yaml:"mode"`
	Left    []Line        `json:"left" yaml:"left"`
	Right   []Line        `json:"right" yaml:"right"`
	Unified []UnifiedLine `json:"unified" yaml:"unified"`
	Stats   Stats         `json:"stats" yaml:"stats"`
}

// HasChanges reports whether the two compared texts differ.
func (r Result) HasChanges() bool {
	return r.Stats.Additions+r.Stats.Deletions+r.Stats.Modifications > 0
}

// Tuning of the Modified-line post-pass in Lines mode. These are compatibility constants: changing them changes which lines are reported as Modified.
const (
	// ModifiedWindow is the maximum distance between the left index of a Removed line and the right index of an Added line for them to be paired.
	ModifiedWindow = 3

	// SimilarityThreshold is the exclusive lower bound on Similarity for a pairing.
	SimilarityThreshold = 0.5
)

// defaultEOL is the line separator ('\n').
//
// This constant exists because the design may change to allow configurable EOLs (maybe Windows needs "\r\n"), and this provides a nice hook to find callsites.
const defaultEOL = "\n"

func intPtr(n int) *int {
	return &n
}
