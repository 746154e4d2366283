package eligibility

// Profile field names as reported in missing-info lists and required-field errors.
const (
	FieldAge        = "age"
	FieldIncome     = "income"
	FieldOccupation = "occupation"
	FieldGender     = "gender"
	FieldBPL        = "bpl"
	FieldHasLand    = "hasLand"
	FieldCategory   = "category"
)

// RequiredFields is the set of fields a caller is told to send when a check
// arrives with an empty profile.
var RequiredFields = []string{FieldAge, FieldIncome, FieldOccupation, FieldGender, FieldBPL, FieldHasLand}

// Profile is the evaluation input. Nil pointers and empty strings mean the
// value is unknown.
type Profile struct {
	Age        *int     `json:"age,omitempty"`
	Income     *float64 `json:"income,omitempty"`
	Occupation string   `json:"occupation,omitempty"`
	Gender     string   `json:"gender,omitempty"`
	BPL        *bool    `json:"bpl,omitempty"`
	HasLand    *bool    `json:"hasLand,omitempty"`
	LandAcres  *float64 `json:"landAcres,omitempty"`
	Category   string   `json:"category,omitempty"`
}

// IsEmpty reports whether no field is set.
func (p Profile) IsEmpty() bool {
	return p.Age == nil &&
		p.Income == nil &&
		p.Occupation == "" &&
		p.Gender == "" &&
		p.BPL == nil &&
		p.HasLand == nil &&
		p.LandAcres == nil &&
		p.Category == ""
}

// Merge returns p with every field that is set on update overwritten.
func (p Profile) Merge(update Profile) Profile {
	if update.Age != nil {
		p.Age = update.Age
	}
	if update.Income != nil {
		p.Income = update.Income
	}
	if update.Occupation != "" {
		p.Occupation = update.Occupation
	}
	if update.Gender != "" {
		p.Gender = update.Gender
	}
	if update.BPL != nil {
		p.BPL = update.BPL
	}
	if update.HasLand != nil {
		p.HasLand = update.HasLand
	}
	if update.LandAcres != nil {
		p.LandAcres = update.LandAcres
	}
	if update.Category != "" {
		p.Category = update.Category
	}
	return p
}
