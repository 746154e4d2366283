package catalog

import "himaya-assistant/internal/i18n"

// Criteria are the optional eligibility constraints of a scheme. A nil
// pointer, nil slice or empty string means the dimension is unconstrained.
type Criteria struct {
	MinAge     *int     `json:"minAge"`
	MaxAge     *int     `json:"maxAge"`
	MaxIncome  *float64 `json:"maxIncome"`
	Occupation []string `json:"occupation"`
	Gender     string   `json:"gender,omitempty"`
	BPL        *bool    `json:"bpl"`
	HasLand    *bool    `json:"hasLand"`
	Category   string   `json:"category,omitempty"`
}

// Translation is the per-language text of a scheme.
type Translation struct {
	Name               string `json:"name"`
	ShortDescription   string `json:"shortDescription"`
	Description        string `json:"description"`
	EligibilityText    string `json:"eligibilityText"`
	HowToApply         string `json:"howToApply"`
	HelplineNumber     string `json:"helplineNumber"`
	BenefitDescription string `json:"benefitDescription,omitempty"`
}

// Scheme is an immutable catalog record.
type Scheme struct {
	ID                 string                 `json:"id"`
	Name               string                 `json:"name"`
	Category           string                 `json:"category"`
	Ministry           string                 `json:"ministry"`
	BenefitAmount      float64                `json:"benefitAmount"`
	BenefitFrequency   string                 `json:"benefitFrequency"`
	BenefitDescription string                 `json:"benefitDescription"`
	Eligibility        Criteria               `json:"eligibility"`
	Translations       map[string]Translation `json:"translations"`
	IsActive           bool                   `json:"isActive"`
	LaunchYear         int                    `json:"launchYear"`
	Documents          []string               `json:"documents"`
	Website            string                 `json:"website"`
}

// View is the localized projection of a scheme returned to callers.
// Detail fields are only set by detail lookups.
type View struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	CategoryName       string  `json:"categoryName,omitempty"`
	CategoryIcon       string  `json:"categoryIcon,omitempty"`
	Ministry           string  `json:"ministry"`
	BenefitAmount      float64 `json:"benefitAmount"`
	BenefitFrequency   string  `json:"benefitFrequency"`
	BenefitDescription string  `json:"benefitDescription"`
	ShortDescription   string  `json:"shortDescription"`
	Website            string  `json:"website"`
	Helpline           string  `json:"helpline"`
	IsActive           bool    `json:"isActive"`

	Description         string    `json:"description,omitempty"`
	EligibilityText     string    `json:"eligibilityText,omitempty"`
	HowToApply          string    `json:"howToApply,omitempty"`
	Documents           []string  `json:"documents,omitempty"`
	EligibilityCriteria *Criteria `json:"eligibilityCriteria,omitempty"`
	LaunchYear          int       `json:"launchYear,omitempty"`
}

// Translation resolves the text for lang with English fallback.
func (s Scheme) Translation(lang string) Translation {
	return i18n.Localized(s.Translations, lang)
}

// View projects s into lang. includeDetails adds the long-form fields.
func (s Scheme) View(lang string, includeDetails bool) View {
	t := s.Translation(lang)

	v := View{
		ID:                 s.ID,
		Name:               t.Name,
		Category:           s.Category,
		Ministry:           s.Ministry,
		BenefitAmount:      s.BenefitAmount,
		BenefitFrequency:   s.BenefitFrequency,
		BenefitDescription: i18n.Resolve(t.BenefitDescription, s.BenefitDescription),
		ShortDescription:   t.ShortDescription,
		Website:            s.Website,
		Helpline:           t.HelplineNumber,
		IsActive:           s.IsActive,
	}
	if c, ok := categoryByID(s.Category); ok {
		v.CategoryName = c.LocalizedName(lang)
		v.CategoryIcon = c.Icon
	}

	if includeDetails {
		criteria := s.Eligibility
		v.Description = t.Description
		v.EligibilityText = t.EligibilityText
		v.HowToApply = t.HowToApply
		v.Documents = append([]string(nil), s.Documents...)
		v.EligibilityCriteria = &criteria
		v.LaunchYear = s.LaunchYear
	}
	return v
}

// Spoken returns the fields read aloud on a detail turn.
func (v View) Spoken() i18n.SpokenDetails {
	return i18n.SpokenDetails{
		Name:               v.Name,
		ShortDescription:   v.ShortDescription,
		BenefitDescription: v.BenefitDescription,
		Helpline:           v.Helpline,
	}
}
