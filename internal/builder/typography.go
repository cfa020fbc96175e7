package builder

import (
	"strings"
)

// TypographyValue is the composite value of a typography token. The six
// fields line up with the six web sub-tokens a typography token fans out to.
type TypographyValue struct {
	FontFamily    string `json:"fontFamily"`
	FontSize      string `json:"fontSize"`
	FontStyle     string `json:"fontStyle"`
	FontWeight    string `json:"fontWeight"`
	LetterSpacing string `json:"letterSpacing"`
	LineHeight    string `json:"lineHeight"`
}

// typographyFamilyRemap maps the editor-facing family names onto the short
// keys the static typography table is published under.
var typographyFamilyRemap = map[string]string{
	"display": "dspl",
	"text":    "text",
	"body":    "body",
}

// typographyWeightRemap normalizes weight segments; regular weight has no
// suffix in the table keys.
var typographyWeightRemap = map[string]string{
	"bold":    "Bold",
	"medium":  "Medium",
	"regular": "",
	"normal":  "",
	"":        "",
}

const (
	defaultFontFamily = "'SB Sans Text', sans-serif"
	displayFontFamily = "'SB Sans Display', sans-serif"
)

// staticTypography is the fallback typography scale used when no live theme
// is attached.
var staticTypography = map[string]TypographyValue{
	"dsplL":      {FontFamily: displayFontFamily, FontSize: "4rem", FontStyle: "normal", FontWeight: "700", LetterSpacing: "-0.019em", LineHeight: "4.5rem"},
	"dsplM":      {FontFamily: displayFontFamily, FontSize: "3rem", FontStyle: "normal", FontWeight: "600", LetterSpacing: "-0.022em", LineHeight: "3.25rem"},
	"dsplS":      {FontFamily: displayFontFamily, FontSize: "2rem", FontStyle: "normal", FontWeight: "600", LetterSpacing: "-0.022em", LineHeight: "2.25rem"},
	"textL":      {FontFamily: defaultFontFamily, FontSize: "1.75rem", FontStyle: "normal", FontWeight: "400", LetterSpacing: "-0.022em", LineHeight: "2.25rem"},
	"textLBold":  {FontFamily: defaultFontFamily, FontSize: "1.75rem", FontStyle: "normal", FontWeight: "700", LetterSpacing: "-0.022em", LineHeight: "2.25rem"},
	"textM":      {FontFamily: defaultFontFamily, FontSize: "1.25rem", FontStyle: "normal", FontWeight: "400", LetterSpacing: "-0.019em", LineHeight: "1.75rem"},
	"textMBold":  {FontFamily: defaultFontFamily, FontSize: "1.25rem", FontStyle: "normal", FontWeight: "700", LetterSpacing: "-0.019em", LineHeight: "1.75rem"},
	"textS":      {FontFamily: defaultFontFamily, FontSize: "1rem", FontStyle: "normal", FontWeight: "400", LetterSpacing: "-0.011em", LineHeight: "1.5rem"},
	"textSBold":  {FontFamily: defaultFontFamily, FontSize: "1rem", FontStyle: "normal", FontWeight: "700", LetterSpacing: "-0.011em", LineHeight: "1.5rem"},
	"bodyL":      {FontFamily: defaultFontFamily, FontSize: "1.125rem", FontStyle: "normal", FontWeight: "400", LetterSpacing: "-0.017em", LineHeight: "1.5rem"},
	"bodyLBold":  {FontFamily: defaultFontFamily, FontSize: "1.125rem", FontStyle: "normal", FontWeight: "700", LetterSpacing: "-0.017em", LineHeight: "1.5rem"},
	"bodyM":      {FontFamily: defaultFontFamily, FontSize: "0.875rem", FontStyle: "normal", FontWeight: "400", LetterSpacing: "-0.006em", LineHeight: "1.25rem"},
	"bodyMBold":  {FontFamily: defaultFontFamily, FontSize: "0.875rem", FontStyle: "normal", FontWeight: "700", LetterSpacing: "-0.006em", LineHeight: "1.25rem"},
	"bodyS":      {FontFamily: defaultFontFamily, FontSize: "0.75rem", FontStyle: "normal", FontWeight: "400", LetterSpacing: "0em", LineHeight: "1rem"},
	"bodySBold":  {FontFamily: defaultFontFamily, FontSize: "0.75rem", FontStyle: "normal", FontWeight: "700", LetterSpacing: "0em", LineHeight: "1rem"},
	"bodySMedium": {FontFamily: defaultFontFamily, FontSize: "0.75rem", FontStyle: "normal", FontWeight: "500", LetterSpacing: "0em", LineHeight: "1rem"},
}

// remapTypographyName converts an editor value like "display.l.bold" into the
// static-table key "dsplLBold". Unknown segments pass through capitalized so
// a theme published under the raw name still resolves.
func remapTypographyName(value string) string {
	parts := strings.Split(value, ".")
	if len(parts) == 0 {
		return value
	}
	family := parts[0]
	if short, ok := typographyFamilyRemap[strings.ToLower(family)]; ok {
		family = short
	}
	key := family
	if len(parts) > 1 {
		key += capitalize(parts[1])
	}
	if len(parts) > 2 {
		weight := strings.ToLower(parts[2])
		if mapped, ok := typographyWeightRemap[weight]; ok {
			key += mapped
		} else {
			key += capitalize(parts[2])
		}
	}
	return key
}

// lookupStaticTypography resolves a typography value against the static
// scale. The bool is false when the remapped key is unknown.
func lookupStaticTypography(value string) (TypographyValue, bool) {
	tv, ok := staticTypography[remapTypographyName(value)]
	return tv, ok
}

// typographyField picks the composite field matching a web sub-token name by
// case-insensitive suffix containment (linkFontSize -> FontSize).
func typographyField(subTokenName string, tv TypographyValue) (string, bool) {
	lower := strings.ToLower(subTokenName)
	switch {
	case strings.Contains(lower, "fontfamily"):
		return tv.FontFamily, true
	case strings.Contains(lower, "fontsize"):
		return tv.FontSize, true
	case strings.Contains(lower, "fontstyle"):
		return tv.FontStyle, true
	case strings.Contains(lower, "fontweight"):
		return tv.FontWeight, true
	case strings.Contains(lower, "letterspacing"):
		return tv.LetterSpacing, true
	case strings.Contains(lower, "lineheight"):
		return tv.LineHeight, true
	}
	return "", false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
