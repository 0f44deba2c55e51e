package form_test

import (
	"testing"

	"clubdesk/internal/domain/form"
)

// fieldRecorder captures the callbacks a text field fires.
type fieldRecorder struct {
	values   []string
	statuses []bool
}

func (r *fieldRecorder) onChange(_, value string) { r.values = append(r.values, value) }
func (r *fieldRecorder) changeStatus(ok bool)     { r.statuses = append(r.statuses, ok) }

func (r *fieldRecorder) lastValue(t *testing.T) string {
	t.Helper()
	if len(r.values) == 0 {
		t.Fatal("expected at least one onChange call")
	}
	return r.values[len(r.values)-1]
}

func (r *fieldRecorder) lastStatus(t *testing.T) bool {
	t.Helper()
	if len(r.statuses) == 0 {
		t.Fatal("expected at least one changeStatus call")
	}
	return r.statuses[len(r.statuses)-1]
}

// typeString feeds a string into the field one keystroke at a time, the way
// a change event stream would deliver it.
func typeString(f *form.TextField, s string) {
	for i := 1; i <= len(s); i++ {
		f.Input(f.Value() + s[i-1:i])
	}
}

// TestTextField_MaxCharRejectsKeystroke tests that input past maxChar never
// updates external state.
func TestTextField_MaxCharRejectsKeystroke(t *testing.T) {
	rec := &fieldRecorder{}
	f := form.NewTextField("name", false, &form.Requirements{MaxChar: 5}, "", rec.onChange, nil)

	typeString(f, "abcdef")

	if f.Value() != "abcde" {
		t.Errorf("Value() = %q, want abcde", f.Value())
	}
	if rec.lastValue(t) != "abcde" {
		t.Errorf("last onChange value = %q, want abcde", rec.lastValue(t))
	}
	// A paste over the limit is rejected wholesale too.
	f.Input("abcdefgh")
	if f.Value() != "abcde" {
		t.Errorf("Value() after oversize paste = %q, want abcde", f.Value())
	}
}

// TestTextField_MaxWords tests the collapsed-space word-count limit.
func TestTextField_MaxWords(t *testing.T) {
	rec := &fieldRecorder{}
	f := form.NewTextField("mission", false, &form.Requirements{MaxWords: 2}, "", rec.onChange, nil)

	f.Input("one two")
	if f.Value() != "one two" {
		t.Errorf("Value() = %q, want 'one two'", f.Value())
	}
	// Third word would exceed the limit: keystroke stream stops at the space.
	f.Input("one two ")
	if f.Value() != "one two" {
		t.Errorf("Value() after trailing space = %q, want 'one two'", f.Value())
	}
}

// TestTextField_DisableSpaces tests the dash-separator rewrites.
func TestTextField_DisableSpaces(t *testing.T) {
	t.Run("space becomes dash", func(t *testing.T) {
		rec := &fieldRecorder{}
		f := form.NewTextField("url", false, &form.Requirements{DisableSpaces: true}, "", rec.onChange, nil)
		typeString(f, "a b")
		if f.Value() != "a-b" {
			t.Errorf("Value() = %q, want a-b", f.Value())
		}
	})

	t.Run("duplicate separator suppressed", func(t *testing.T) {
		rec := &fieldRecorder{}
		f := form.NewTextField("url", false, &form.Requirements{DisableSpaces: true}, "", rec.onChange, nil)
		typeString(f, "a-")
		changes := len(rec.values)
		f.Input("a- ")
		if f.Value() != "a-" {
			t.Errorf("Value() = %q, want a- (unchanged)", f.Value())
		}
		if len(rec.values) != changes {
			t.Error("expected suppressed keystroke to fire no onChange")
		}
	})

	t.Run("single leading space deleted", func(t *testing.T) {
		rec := &fieldRecorder{}
		f := form.NewTextField("url", false, &form.Requirements{DisableSpaces: true}, "", rec.onChange, nil)
		f.Input(" ")
		if f.Value() != "" {
			t.Errorf("Value() = %q, want empty", f.Value())
		}
	})
}

// TestTextField_OnlyAlpha tests the character-set filter.
func TestTextField_OnlyAlpha(t *testing.T) {
	rec := &fieldRecorder{}
	f := form.NewTextField("keywords", false, &form.Requirements{OnlyAlpha: true}, "", rec.onChange, nil)

	f.Input("a!b@1")
	if f.Value() != "ab1" {
		t.Errorf("Value() = %q, want ab1", f.Value())
	}
	if rec.lastValue(t) != "ab1" {
		t.Errorf("onChange value = %q, want ab1", rec.lastValue(t))
	}

	f.Input("ab1- c")
	if f.Value() != "ab1- c" {
		t.Errorf("Value() = %q, dashes and spaces should pass", f.Value())
	}
}

// TestTextField_PreTransformLimitQuirk documents that the max checks run
// against the untransformed input, so a transform may expand past the limit.
func TestTextField_PreTransformLimitQuirk(t *testing.T) {
	// " a" is two chars and under MaxChar=3; typing a space after "a b"
	// would exceed, but "a b" (3 chars) passes and the space-to-dash
	// rewrite happens only on the trailing-space keystroke.
	rec := &fieldRecorder{}
	f := form.NewTextField("url", false, &form.Requirements{MaxChar: 3, DisableSpaces: true}, "", rec.onChange, nil)
	f.Input("ab ")
	if f.Value() != "ab-" {
		t.Errorf("Value() = %q, want ab-", f.Value())
	}
}

// TestTextField_ValidationStatus tests the status callback rules.
func TestTextField_ValidationStatus(t *testing.T) {
	t.Run("initial status computed on construction", func(t *testing.T) {
		rec := &fieldRecorder{}
		form.NewTextField("name", false, &form.Requirements{MinChar: 3}, "ab", nil, rec.changeStatus)
		if rec.lastStatus(t) {
			t.Error("expected initial status=false for value under MinChar")
		}
	})

	t.Run("minChar and minWords", func(t *testing.T) {
		rec := &fieldRecorder{}
		f := form.NewTextField("purpose", false, &form.Requirements{MinChar: 5, MinWords: 2}, "", nil, rec.changeStatus)
		f.Input("hello")
		if rec.lastStatus(t) {
			t.Error("expected status=false: one word")
		}
		f.Input("hello there")
		if !rec.lastStatus(t) {
			t.Error("expected status=true")
		}
	})

	t.Run("no requirements, required", func(t *testing.T) {
		rec := &fieldRecorder{}
		f := form.NewTextField("name", true, nil, "", nil, rec.changeStatus)
		if rec.lastStatus(t) {
			t.Error("expected initial status=false for empty required field")
		}
		f.Input("x")
		if !rec.lastStatus(t) {
			t.Error("expected status=true after input")
		}
	})

	t.Run("no requirements, not required: status unchanged", func(t *testing.T) {
		rec := &fieldRecorder{}
		f := form.NewTextField("description", false, nil, "", nil, rec.changeStatus)
		f.Input("anything")
		if len(rec.statuses) != 0 {
			t.Errorf("expected no status callbacks, got %d", len(rec.statuses))
		}
	})

	t.Run("required flag change re-validates", func(t *testing.T) {
		rec := &fieldRecorder{}
		f := form.NewTextField("name", false, nil, "", nil, rec.changeStatus)
		f.SetRequired(true)
		if rec.lastStatus(t) {
			t.Error("expected status=false once field becomes required")
		}
	})

	t.Run("no status callback supplied", func(t *testing.T) {
		f := form.NewTextField("name", true, &form.Requirements{MinChar: 2}, "", nil, nil)
		f.Input("ok") // must not panic
	})
}

// TestWordCount tests the collapsed-space word counter.
func TestWordCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 1},
		{"one", 1},
		{"one two", 2},
		{"one  two", 2},
		{"one two ", 3}, // trailing space counts as an empty extra word
	}
	for _, tt := range tests {
		if got := form.WordCount(tt.in); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// TestRequirements_Conforms tests the whole-value acceptance check.
func TestRequirements_Conforms(t *testing.T) {
	tests := []struct {
		name  string
		reqs  form.Requirements
		value string
		want  bool
	}{
		{"no constraints", form.Requirements{}, "anything goes!", true},
		{"under max char", form.Requirements{MaxChar: 10}, "short", true},
		{"over max char", form.Requirements{MaxChar: 3}, "long", false},
		{"under min char", form.Requirements{MinChar: 5}, "abc", false},
		{"interior space with disable", form.Requirements{DisableSpaces: true}, "a b", false},
		{"dashed with disable", form.Requirements{DisableSpaces: true}, "a-b", true},
		{"symbol with only alpha", form.Requirements{OnlyAlpha: true}, "chess!", false},
		{"clean with only alpha", form.Requirements{OnlyAlpha: true}, "chess club", true},
		{"too few words", form.Requirements{MinWords: 3}, "two words", false},
		{"enough words", form.Requirements{MinWords: 3}, "three whole words", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.reqs.Conforms(tt.value); got != tt.want {
				t.Errorf("Conforms(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

// TestRequirements_CharLimitsCountRunes tests that multibyte characters
// count once against the char limits, not per byte.
func TestRequirements_CharLimitsCountRunes(t *testing.T) {
	max := form.Requirements{MaxChar: 4}
	if max.Exceeded("café") {
		t.Error(`Exceeded("café") with MaxChar 4 = true, want false`)
	}
	if !max.Exceeded("cafés") {
		t.Error(`Exceeded("cafés") with MaxChar 4 = false, want true`)
	}

	min := form.Requirements{MinChar: 4}
	if !min.MetBy("café") {
		t.Error(`MetBy("café") with MinChar 4 = false, want true`)
	}
	if min.MetBy("cfé") {
		t.Error(`MetBy("cfé") with MinChar 4 = true, want false`)
	}
}
