package language

import (
	"strings"

	xlanguage "golang.org/x/text/language"
)

type entry struct {
	code2   string   // ISO 639-1 (2-letter)
	model   string   // Tesseract model name
	alt3    []string // other ISO 639-2 forms (e.g. "fre" vs "fra")
	display string   // Human-readable name
	words   []string // Full word forms (e.g. "english")
}

var languages = []entry{
	{"en", "eng", nil, "English", []string{"english"}},
	{"es", "spa", nil, "Spanish", []string{"spanish"}},
	{"fr", "fra", []string{"fre"}, "French", []string{"french"}},
	{"de", "deu", []string{"ger"}, "German", []string{"german"}},
	{"it", "ita", nil, "Italian", []string{"italian"}},
	{"pt", "por", nil, "Portuguese", []string{"portuguese"}},
	{"ja", "jpn", nil, "Japanese", []string{"japanese"}},
	{"ko", "kor", nil, "Korean", []string{"korean"}},
	{"zh", "chi_sim", []string{"zho", "chi"}, "Chinese (Simplified)", []string{"chinese"}},
	{"", "chi_tra", nil, "Chinese (Traditional)", nil},
	{"ru", "rus", nil, "Russian", []string{"russian"}},
	{"ar", "ara", nil, "Arabic", []string{"arabic"}},
	{"hi", "hin", nil, "Hindi", []string{"hindi"}},
	{"nl", "nld", []string{"dut"}, "Dutch", []string{"dutch"}},
	{"pl", "pol", nil, "Polish", []string{"polish"}},
	{"sv", "swe", nil, "Swedish", []string{"swedish"}},
	{"da", "dan", nil, "Danish", []string{"danish"}},
	{"no", "nor", nil, "Norwegian", []string{"norwegian"}},
	{"fi", "fin", nil, "Finnish", []string{"finnish"}},
	{"", "osd", nil, "Orientation and script detection", nil},
	{"", "equ", nil, "Math equations", nil},
}

// Index maps built at init time.
var (
	byCode2 map[string]*entry
	byModel map[string]*entry
	byWord  map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byModel = make(map[string]*entry, len(languages)*2)
	byWord = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		if e.code2 != "" {
			byCode2[e.code2] = e
		}
		byModel[e.model] = e
		for _, alt := range e.alt3 {
			byModel[alt] = e
		}
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := byModel[code]; ok {
		return e
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byWord[code]; ok {
		return e
	}
	return nil
}

// IsSpecialModel reports whether model is a Tesseract model that is not
// named after a language.
func IsSpecialModel(model string) bool {
	model = strings.TrimSpace(model)
	return model == "osd" || model == "equ" || strings.HasPrefix(model, "script/")
}

// ToModel converts a language code or word to the Tesseract model name.
// Codes outside the built-in table fall back to the ISO 639-2 form known to
// golang.org/x/text. Returns empty string for unrecognized input.
func ToModel(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if e := lookup(code); e != nil {
		return e.model
	}
	if len(code) == 2 {
		if base, err := xlanguage.ParseBase(code); err == nil {
			return base.ISO3()
		}
	}
	return ""
}

// SuggestSpec rewrites every part of a "+"-joined language specification to
// its Tesseract model name. Parts that cannot be mapped are kept as typed.
func SuggestSpec(spec string) string {
	parts := strings.Split(strings.TrimSpace(spec), "+")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if IsSpecialModel(part) {
			parts[i] = part
			continue
		}
		if model := ToModel(part); model != "" {
			parts[i] = model
			continue
		}
		parts[i] = part
	}
	return strings.Join(parts, "+")
}

// DisplayName returns a human-readable name for a model or language code.
// Returns "Unknown" for empty input, or the code as given for unrecognized input.
func DisplayName(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "Unknown"
	}
	if e := lookup(trimmed); e != nil {
		return e.display
	}
	if strings.HasPrefix(trimmed, "script/") {
		return strings.TrimPrefix(trimmed, "script/") + " script"
	}
	return trimmed
}

// DisplaySpec renders a "+"-joined specification as display names, e.g.
// "eng+deu" becomes "English, German".
func DisplaySpec(spec string) string {
	parts := strings.Split(strings.TrimSpace(spec), "+")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		names = append(names, DisplayName(part))
	}
	if len(names) == 0 {
		return "Unknown"
	}
	return strings.Join(names, ", ")
}
