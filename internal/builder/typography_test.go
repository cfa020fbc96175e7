package builder

import (
	"testing"
)

func TestRemapTypographyName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"display.l.bold", "dsplLBold"},
		{"display.m", "dsplM"},
		{"body.s.medium", "bodySMedium"},
		{"body.m.regular", "bodyM"},
		{"text.l.normal", "textL"},
		{"dsplL", "dsplL"},
		{"custom.x.heavy", "customXHeavy"},
	}
	for _, tc := range cases {
		if got := remapTypographyName(tc.in); got != tc.want {
			t.Errorf("remapTypographyName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLookupStaticTypography(t *testing.T) {
	tv, ok := lookupStaticTypography("body.m.bold")
	if !ok {
		t.Fatal("body.m.bold not found")
	}
	if tv.FontWeight != "700" || tv.FontSize != "0.875rem" {
		t.Errorf("body.m.bold = %+v", tv)
	}

	if _, ok := lookupStaticTypography("marquee.xxl"); ok {
		t.Error("unknown name resolved")
	}
}

func TestTypographyField(t *testing.T) {
	tv := TypographyValue{
		FontFamily:    "fam",
		FontSize:      "size",
		FontStyle:     "style",
		FontWeight:    "weight",
		LetterSpacing: "spacing",
		LineHeight:    "height",
	}
	cases := []struct {
		name    string
		want    string
		matched bool
	}{
		{"linkFontFamily", "fam", true},
		{"buttonFontSize", "size", true},
		{"xFontStyle", "style", true},
		{"xFontWeight", "weight", true},
		{"xLetterSpacing", "spacing", true},
		{"xLineHeight", "height", true},
		{"color", "", false},
	}
	for _, tc := range cases {
		got, matched := typographyField(tc.name, tv)
		if matched != tc.matched || got != tc.want {
			t.Errorf("typographyField(%q) = (%q, %v), want (%q, %v)", tc.name, got, matched, tc.want, tc.matched)
		}
	}
}
