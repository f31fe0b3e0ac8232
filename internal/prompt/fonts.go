package prompt

import "strings"

// Font is a typeface the public site can load, with the hint shown to
// the model when it picks one.
type Font struct {
	Name string
	Hint string
}

// Fonts lists the typefaces offered in the design prompt.
var Fonts = []Font{
	{"Inter", "modern, neutral, tech-friendly"},
	{"Roboto", "clean, Google standard"},
	{"Poppins", "geometric, friendly"},
	{"Playfair Display", "elegant, editorial"},
	{"Lora", "classic, readable serif"},
	{"Merriweather", "traditional, trustworthy"},
	{"Open Sans", "humanist, approachable"},
	{"Montserrat", "urban, contemporary"},
	{"DM Sans", "geometric, balanced"},
	{"Source Sans Pro", "professional, versatile"},
}

// KnownFont reports whether name is one of the offered fonts.
func KnownFont(name string) bool {
	for _, f := range Fonts {
		if strings.EqualFold(f.Name, name) {
			return true
		}
	}
	return false
}

func fontList() string {
	var sb strings.Builder
	for _, f := range Fonts {
		sb.WriteString("- ")
		sb.WriteString(f.Name)
		sb.WriteString(" (")
		sb.WriteString(f.Hint)
		sb.WriteString(")\n")
	}
	return sb.String()
}
