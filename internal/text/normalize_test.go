package text

import "testing"

func TestNormalize_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"latin lowercase", "Ahmed Hassan", "ahmed hassan"},
		{"latin accents", "José", "jose"},
		{"tashkeel stripped", "مُحَمَّد", "محمد"},
		{"tatweel stripped", "محـــمد", "محمد"},
		{"alef hamza above", "أحمد", "احمد"},
		{"alef hamza below", "إسلام", "اسلام"},
		{"alef madda", "آمنة", "امنه"},
		{"alef wasla", "ٱلله", "الله"},
		{"waw hamza", "مؤمن", "مومن"},
		{"yaa hamza", "فئة", "فيه"},
		{"alef maqsura", "مصطفى", "مصطفي"},
		{"taa marbuta", "مدرسة", "مدرسه"},
		{"punctuation collapsed", "math - (grade 9)!", "math grade 9"},
		{"whitespace trimmed", "  عربي  ", "عربي"},
		{"mixed scripts", "Mr. أحمد / Physics", "mr احمد physics"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Ahmed Hassan",
		"مُدَرِّسَة اللُّغَة الْعَرَبِيَّة",
		"أستاذ الفيزياء - ثانوية عامّة",
		"a  b\t\nc",
		"!!!",
		"Café Ñoño İstanbul",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestTokens_Variants(t *testing.T) {
	set := Tokens(Normalize("والرياضة مدرسة في"))
	// "في" is too short to index.
	if _, ok := set["في"]; ok {
		t.Error("short token was indexed")
	}
	for _, want := range []string{
		"والرياضه", // original (after normalization)
		"الرياضه",  // conjunction stripped
		"والرياض",  // feminine marker stripped
		"مدرسه",
		"مدرس",
	} {
		if _, ok := set[want]; !ok {
			t.Errorf("missing token variant %q in %v", want, set)
		}
	}
}

func TestTokens_Empty(t *testing.T) {
	if got := Tokens(""); len(got) != 0 {
		t.Errorf("Tokens(\"\") = %v, want empty", got)
	}
}

func TestSortedKey(t *testing.T) {
	set := map[string]struct{}{"b": {}, "a": {}, "c": {}}
	if got := SortedKey(set); got != "a b c" {
		t.Errorf("SortedKey = %q, want %q", got, "a b c")
	}
}
