package catalog

import "himaya-assistant/internal/i18n"

// Category is a scheme grouping shown in browse menus.
type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameHi string `json:"nameHi"`
	Icon   string `json:"icon"`
}

// CategorySummary is a Category with the number of schemes filed under it.
type CategorySummary struct {
	Category
	SchemeCount int `json:"schemeCount"`
}

const (
	CategoryAgriculture    = "agriculture"
	CategoryHealthcare     = "healthcare"
	CategoryEducation      = "education"
	CategoryHousing        = "housing"
	CategoryWomenChild     = "women-child"
	CategoryEmployment     = "employment"
	CategorySocialSecurity = "social-security"
	CategoryFinancial      = "financial"
)

var categories = []Category{
	{ID: CategoryAgriculture, Name: "Agriculture", NameHi: "कृषि", Icon: "🌾"},
	{ID: CategoryHealthcare, Name: "Healthcare", NameHi: "स्वास्थ्य", Icon: "🏥"},
	{ID: CategoryEducation, Name: "Education", NameHi: "शिक्षा", Icon: "📚"},
	{ID: CategoryHousing, Name: "Housing", NameHi: "आवास", Icon: "🏠"},
	{ID: CategoryWomenChild, Name: "Women & Child", NameHi: "महिला एवं बाल", Icon: "👩‍👧"},
	{ID: CategoryEmployment, Name: "Employment", NameHi: "रोजगार", Icon: "💼"},
	{ID: CategorySocialSecurity, Name: "Social Security", NameHi: "सामाजिक सुरक्षा", Icon: "🛡️"},
	{ID: CategoryFinancial, Name: "Financial Inclusion", NameHi: "वित्तीय समावेशन", Icon: "💰"},
}

// LocalizedName returns the Hindi name for hi and the English one otherwise.
func (c Category) LocalizedName(lang string) string {
	if lang == i18n.Hindi {
		return i18n.Resolve(c.NameHi, c.Name)
	}
	return c.Name
}

func categoryByID(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryName returns the display name of a category id, or the id itself
// when it is not a known category.
func CategoryName(id, lang string) string {
	if c, ok := categoryByID(id); ok {
		return c.LocalizedName(lang)
	}
	return id
}
