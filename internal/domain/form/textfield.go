package form

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	multiSpace = regexp.MustCompile("  +")
	spaceRun   = regexp.MustCompile(" +")
	nonAlpha   = regexp.MustCompile(`[^a-zA-Z0-9\- ]`)
)

// Requirements configures the constraints of a validated text field.
// Zero values mean "no constraint".
type Requirements struct {
	MinChar       int
	MaxChar       int
	MinWords      int
	MaxWords      int
	DisableSpaces bool // replace spaces with dashes
	OnlyAlpha     bool
}

// WordCount counts words the way the max-words limit does: runs of spaces
// are collapsed before splitting, so "a  b" counts as two words but a
// trailing space still counts as an extra (empty) word.
func WordCount(s string) int {
	return len(strings.Split(multiSpace.ReplaceAllString(s, " "), " "))
}

// minWordCount counts words for the min-words check. It trims but does NOT
// collapse space runs, so it over-counts on doubled spaces. Documented as
// incompatible with OnlyAlpha.
func minWordCount(s string) int {
	return len(strings.Split(strings.TrimSpace(s), " "))
}

// Exceeded reports whether a proposed value breaks the max-char or max-words
// limit. The check runs on the pre-transform text: a value under the limit
// before transformation is accepted even if a transform would expand it.
// Character limits count runes, not bytes, so multibyte input is not
// penalized.
// INVARIANT: Requirements are not mutated
func (r Requirements) Exceeded(value string) bool {
	if r.MaxChar > 0 && utf8.RuneCountInString(value) > r.MaxChar {
		return true
	}
	if r.MaxWords > 0 && WordCount(value) > r.MaxWords {
		return true
	}
	return false
}

// Transform applies the space/alpha rewrites to a proposed value. The second
// return is false when the input must be suppressed entirely (a space typed
// directly after a dash, to avoid duplicate separators).
// PRE: value has already passed Exceeded
// POST: returned string contains no space runs when DisableSpaces is set
func (r Requirements) Transform(value string) (string, bool) {
	if r.DisableSpaces && strings.HasSuffix(value, " ") {
		if len(value) == 1 {
			return "", true
		}
		if value[len(value)-2] == '-' {
			return "", false
		}
		return spaceRun.ReplaceAllString(value, "-"), true
	}
	if r.OnlyAlpha {
		return nonAlpha.ReplaceAllString(value, ""), true
	}
	return value, true
}

// MetBy reports whether a value satisfies the minimum constraints.
// INVARIANT: Requirements are not mutated
func (r Requirements) MetBy(value string) bool {
	if r.MinChar > 0 && utf8.RuneCountInString(value) < r.MinChar {
		return false
	}
	if r.MinWords > 0 && minWordCount(value) < r.MinWords {
		return false
	}
	return true
}

// Conforms reports whether a complete value satisfies every constraint. This
// is the server-side acceptance check for submitted values; unlike the
// per-keystroke path it also rejects interior spaces and stripped characters
// rather than rewriting them.
// INVARIANT: Requirements are not mutated
func (r Requirements) Conforms(value string) bool {
	if r.Exceeded(value) {
		return false
	}
	if !r.MetBy(value) {
		return false
	}
	if r.DisableSpaces && strings.Contains(value, " ") {
		return false
	}
	if r.OnlyAlpha && nonAlpha.MatchString(value) {
		return false
	}
	return true
}

// TextField is a controlled text input with length/word-count/character-set
// constraints. Each Input call carries the full proposed value, as a change
// event would. The transformed value is reported through OnChange and the
// validity status through ChangeStatus; neither callback is required.
type TextField struct {
	Field        string
	Required     bool
	Requirements *Requirements

	value        string
	onChange     func(field, value string)
	changeStatus func(valid bool)
}

// NewTextField constructs a text field and computes the initial validation
// status from the externally supplied value, so initial state is never left
// unvalidated.
func NewTextField(field string, required bool, reqs *Requirements, value string,
	onChange func(field, value string), changeStatus func(valid bool)) *TextField {
	f := &TextField{
		Field:        field,
		Required:     required,
		Requirements: reqs,
		value:        value,
		onChange:     onChange,
		changeStatus: changeStatus,
	}
	f.validate(f.value)
	return f
}

// Value returns the field's current (transformed) value.
func (f *TextField) Value() string {
	return f.value
}

// SetRequired updates the required flag and re-runs validation against the
// current value.
func (f *TextField) SetRequired(required bool) {
	f.Required = required
	f.validate(f.value)
}

// Input processes a change event carrying the full proposed value.
// Order matters: the max limits are checked against the untransformed input,
// then the space/alpha transforms run, then OnChange fires with the
// transformed value, then validation re-runs.
// POST: a rejected input leaves value, callbacks and status untouched
func (f *TextField) Input(proposed string) {
	if f.Requirements != nil && f.Requirements.Exceeded(proposed) {
		return
	}

	value := proposed
	if f.Requirements != nil {
		transformed, ok := f.Requirements.Transform(proposed)
		if !ok {
			return
		}
		value = transformed
	}

	f.value = value
	if f.onChange != nil {
		f.onChange(f.Field, value)
	}
	f.validate(value)
}

// validate recomputes the validity status and reports it upward. Never calls
// the status callback if none is supplied. Without Requirements the status
// only changes when the field is required.
func (f *TextField) validate(value string) {
	if f.changeStatus == nil {
		return
	}

	if f.Requirements != nil {
		f.changeStatus(f.Requirements.MetBy(value))
		return
	}
	if f.Required {
		f.changeStatus(len(value) > 0)
	}
}
