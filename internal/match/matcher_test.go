package match

import "testing"

func labels(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label
	}
	return out
}

func TestMatch_EmptyQueryReturnsAll(t *testing.T) {
	entries := NewIndex([]string{"Math", "Physics", "Chemistry"})
	m := New(0)

	got := m.Match("", "", entries)
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
}

func TestMatch_EmptyQueryPinsSelected(t *testing.T) {
	entries := NewIndex([]string{"Math", "Physics", "Chemistry"})
	m := New(0)

	got := m.Match("", "Physics", entries)
	if got[0].Value != "Physics" {
		t.Errorf("first = %q, want selected pinned", got[0].Value)
	}
	if len(got) != 3 {
		t.Errorf("got %d entries, want 3 (no duplicates)", len(got))
	}
}

func TestMatch_StrictWinsOverFuzzy(t *testing.T) {
	entries := NewIndex([]string{"Ahmed Hassan", "Ahmad Hossam", "Mona Samir"})
	m := New(0)

	// "ahmad" is literally contained in "Ahmad Hossam" tokens, so the
	// strict list is non-empty and must be returned alone.
	got := m.Match("ahmad", "", entries)
	if len(got) != 1 || got[0].Label != "Ahmad Hossam" {
		t.Fatalf("got %v, want strict-only [Ahmad Hossam]", labels(got))
	}
}

func TestMatch_FuzzyFallback(t *testing.T) {
	entries := NewIndex([]string{"Ahmed Hassan", "Mona Samir"})
	m := New(0)

	// No token contains "ahmad" literally: strict filter is empty and
	// the fuzzy candidates are returned instead of nothing.
	got := m.Match("ahmad", "", entries)
	if len(got) == 0 {
		t.Fatal("fuzzy fallback returned nothing")
	}
	if got[0].Label != "Ahmed Hassan" {
		t.Errorf("top match = %q, want Ahmed Hassan", got[0].Label)
	}
	for _, e := range got {
		if e.Label == "Mona Samir" {
			t.Error("unrelated entry matched")
		}
	}
}

func TestMatch_ArabicVariants(t *testing.T) {
	entries := NewIndex([]string{"اللغة العربية", "الرياضيات"})
	m := New(0)

	// Different hamza/taa-marbuta spelling still matches via
	// normalization.
	got := m.Match("لغه", "", entries)
	if len(got) == 0 || got[0].Label != "اللغة العربية" {
		t.Fatalf("got %v, want اللغة العربية first", labels(got))
	}
}

func TestMatch_NoEntries(t *testing.T) {
	m := New(0)
	if got := m.Match("anything", "", nil); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestMatch_Deterministic(t *testing.T) {
	entries := NewIndex([]string{"alpha", "alphabet", "alpine", "beta"})
	m := New(0)
	first := labels(m.Match("alp", "", entries))
	for i := 0; i < 10; i++ {
		again := labels(m.Match("alp", "", entries))
		if len(again) != len(first) {
			t.Fatalf("run %d: length changed: %v vs %v", i, again, first)
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("run %d: order changed: %v vs %v", i, again, first)
			}
		}
	}
}

func TestMatch_SelectedPinnedOnFiltered(t *testing.T) {
	entries := NewIndex([]string{"Math", "Physics"})
	m := New(0)

	// Selected value absent from the match list is re-pinned in front.
	got := m.Match("math", "Physics", entries)
	if len(got) < 2 || got[0].Value != "Physics" || got[1].Value != "Math" {
		t.Errorf("got %v, want [Physics Math]", labels(got))
	}
}
