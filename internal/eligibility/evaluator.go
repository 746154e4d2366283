// Package eligibility scores a user profile against the eligibility criteria
// of every scheme in a catalog.
package eligibility

import (
	"fmt"
	"strconv"
	"strings"

	"himaya-assistant/internal/catalog"
)

// StatusEligible tags every returned result.
const StatusEligible = "eligible"

// Decision is the outcome of checking one scheme.
type Decision struct {
	Eligible    bool     `json:"eligible"`
	Reasons     []string `json:"reasons"`
	MissingInfo []string `json:"missingInfo"`
}

// Result is an eligible scheme as returned to callers.
type Result struct {
	catalog.View
	EligibilityStatus string   `json:"eligibilityStatus"`
	MissingInfo       []string `json:"missingInfo"`
}

// Explanation pairs a scheme with its decision, eligible or not.
type Explanation struct {
	SchemeID string   `json:"schemeId"`
	Name     string   `json:"name"`
	Decision Decision `json:"decision"`
}

// Evaluator checks profiles against a catalog. It holds no mutable state.
type Evaluator struct {
	catalog *catalog.Catalog
}

func NewEvaluator(c *catalog.Catalog) *Evaluator {
	return &Evaluator{catalog: c}
}

// Evaluate returns the schemes p is not known to be ineligible for, in
// catalog order. Unknown profile fields never exclude a scheme; they are
// listed in MissingInfo instead.
func (e *Evaluator) Evaluate(p Profile, lang string) []Result {
	results := make([]Result, 0)
	for _, s := range e.catalog.Schemes() {
		d := Decide(s, p)
		if !d.Eligible {
			continue
		}
		results = append(results, Result{
			View:              s.View(lang, false),
			EligibilityStatus: StatusEligible,
			MissingInfo:       d.MissingInfo,
		})
	}
	return results
}

// Explain returns the decision for every scheme, including the rejected ones.
func (e *Evaluator) Explain(p Profile, lang string) []Explanation {
	schemes := e.catalog.Schemes()
	out := make([]Explanation, 0, len(schemes))
	for _, s := range schemes {
		out = append(out, Explanation{
			SchemeID: s.ID,
			Name:     s.Translation(lang).Name,
			Decision: Decide(s, p),
		})
	}
	return out
}

// Decide applies the criteria of s to p in a fixed order: age bounds,
// income, occupation, gender, BPL, land, social category.
func Decide(s catalog.Scheme, p Profile) Decision {
	c := s.Eligibility
	d := Decision{Reasons: []string{}, MissingInfo: []string{}}

	missing := func(field string) {
		for _, f := range d.MissingInfo {
			if f == field {
				return
			}
		}
		d.MissingInfo = append(d.MissingInfo, field)
	}
	reject := func(format string, args ...interface{}) {
		d.Reasons = append(d.Reasons, fmt.Sprintf(format, args...))
	}

	if c.MinAge != nil {
		if p.Age == nil {
			missing(FieldAge)
		} else if *p.Age < *c.MinAge {
			reject("Minimum age is %d", *c.MinAge)
		}
	}

	if c.MaxAge != nil {
		if p.Age == nil {
			missing(FieldAge)
		} else if *p.Age > *c.MaxAge {
			reject("Maximum age is %d", *c.MaxAge)
		}
	}

	if c.MaxIncome != nil {
		if p.Income == nil {
			missing(FieldIncome)
		} else if *p.Income > *c.MaxIncome {
			reject("Income must be below ₹%s", formatAmount(*c.MaxIncome))
		}
	}

	if len(c.Occupation) > 0 {
		if p.Occupation == "" {
			missing(FieldOccupation)
		} else if !containsFold(c.Occupation, p.Occupation) {
			reject("Must be: %s", strings.Join(c.Occupation, " or "))
		}
	}

	if c.Gender != "" {
		if p.Gender == "" {
			missing(FieldGender)
		} else if !strings.EqualFold(p.Gender, c.Gender) {
			reject("Only for %s", c.Gender)
		}
	}

	if c.BPL != nil && *c.BPL {
		if p.BPL == nil {
			missing(FieldBPL)
		} else if !*p.BPL {
			reject("Must have BPL card")
		}
	}

	if c.HasLand != nil && *c.HasLand {
		if p.HasLand == nil {
			missing(FieldHasLand)
		} else if !*p.HasLand {
			reject("Must own agricultural land")
		}
	}

	if c.Category != "" {
		if p.Category == "" {
			missing(FieldCategory)
		} else if strings.ToUpper(p.Category) != strings.ToUpper(c.Category) {
			reject("Only for %s category", c.Category)
		}
	}

	d.Eligible = len(d.Reasons) == 0
	return d
}

func containsFold(values []string, v string) bool {
	v = strings.ToLower(v)
	for _, allowed := range values {
		if strings.ToLower(allowed) == v {
			return true
		}
	}
	return false
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
