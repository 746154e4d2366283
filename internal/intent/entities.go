package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// Entities are the structured values found in an utterance.
type Entities struct {
	SchemeName string `json:"schemeName,omitempty"`
	Category   string `json:"category,omitempty"`
	Numbers    []int  `json:"numbers,omitempty"`
	Query      string `json:"query,omitempty"`
}

type alias struct {
	pattern  *regexp.Regexp
	schemeID string
}

// Scanned in order; the first alias that matches anywhere in the text wins.
var schemeAliases = []alias{
	{regexp.MustCompile(`(?i)pm[- ]?kisan|किसान सम्मान`), "pm-kisan"},
	{regexp.MustCompile(`(?i)ayushman|आयुष्मान`), "ayushman"},
	{regexp.MustCompile(`(?i)ujjwala|उज्ज्वला`), "ujjwala"},
	{regexp.MustCompile(`(?i)mudra|मुद्रा`), "mudra"},
	{regexp.MustCompile(`(?i)jan[- ]?dhan|जन धन`), "jan-dhan"},
	{regexp.MustCompile(`(?i)fasal bima|फसल बीमा`), "fasal-bima"},
	{regexp.MustCompile(`(?i)awas|आवास योजना`), "awas"},
	{regexp.MustCompile(`(?i)sukanya|सुकन्या`), "sukanya"},
	{regexp.MustCompile(`(?i)atal pension|अटल पेंशन`), "atal-pension"},
	{regexp.MustCompile(`(?i)kaushal|pmkvy|कौशल`), "pmkvy"},
	{regexp.MustCompile(`(?i)mgnrega|nrega|manrega|मनरेगा`), "mgnrega"},
	{regexp.MustCompile(`(?i)scholarship|छात्रवृत्ति`), "post-matric-scholarship-sc"},
}

type keyword struct {
	word     string
	category string
}

// Matched against the lowercased text in order.
var categoryKeywords = []keyword{
	{"farmer", "agriculture"},
	{"किसान", "agriculture"},
	{"कृषि", "agriculture"},
	{"agriculture", "agriculture"},
	{"health", "healthcare"},
	{"स्वास्थ्य", "healthcare"},
	{"education", "education"},
	{"शिक्षा", "education"},
	{"housing", "housing"},
	{"आवास", "housing"},
	{"women", "women-child"},
	{"महिला", "women-child"},
	{"employment", "employment"},
	{"job", "employment"},
	{"रोजगार", "employment"},
	{"pension", "social-security"},
	{"पेंशन", "social-security"},
	{"bank", "financial"},
	{"financial", "financial"},
	{"बैंक", "financial"},
}

var digitRun = regexp.MustCompile(`\d+`)

// Extract pulls a scheme id, a category and every number out of text. For
// search and detail intents it also records the free-text query captured by
// the classifying rule.
func Extract(text string, in Intent) Entities {
	var e Entities

	for _, a := range schemeAliases {
		if a.pattern.MatchString(text) {
			e.SchemeName = a.schemeID
			break
		}
	}

	lower := strings.ToLower(text)
	for _, k := range categoryKeywords {
		if strings.Contains(lower, k.word) {
			e.Category = k.category
			break
		}
	}

	for _, run := range digitRun.FindAllString(text, -1) {
		n, err := strconv.Atoi(run)
		if err != nil {
			continue
		}
		e.Numbers = append(e.Numbers, n)
	}

	if in == SearchScheme || in == SchemeDetails {
		e.Query = query(text, in)
	}
	return e
}

func query(text string, in Intent) string {
	m := Find(text)
	if m.Intent != in {
		return ""
	}
	for i := len(m.Captures) - 1; i >= 0; i-- {
		if q := strings.TrimSpace(m.Captures[i]); q != "" {
			return q
		}
	}
	return ""
}
