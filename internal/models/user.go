// internal/models/user.go
package models

import (
	"time"

	"himaya-assistant/internal/eligibility"
)

// User is a registered profile keyed by phone number. The embedded profile
// is what eligibility checks run against.
type User struct {
	ID       string `json:"id"`
	Phone    string `json:"phone"`
	Name     string `json:"name,omitempty"`
	Language string `json:"language"`
	State    string `json:"state,omitempty"`
	District string `json:"district,omitempty"`
	eligibility.Profile
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Registration is the body of a register call.
type Registration struct {
	Phone    string `json:"phone"`
	Name     string `json:"name,omitempty"`
	Language string `json:"language,omitempty"`
	State    string `json:"state,omitempty"`
	District string `json:"district,omitempty"`
	eligibility.Profile
}

// UserUpdate is a partial profile update. Unset fields keep their value;
// id and phone never change.
type UserUpdate struct {
	Name     *string `json:"name,omitempty"`
	Language *string `json:"language,omitempty"`
	State    *string `json:"state,omitempty"`
	District *string `json:"district,omitempty"`
	eligibility.Profile
}

// UserSummary identifies a user in eligibility responses.
type UserSummary struct {
	Phone string `json:"phone"`
	Name  string `json:"name,omitempty"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{Phone: u.Phone, Name: u.Name}
}

// Apply merges update into u and stamps UpdatedAt.
func (u *User) Apply(update UserUpdate, now time.Time) {
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Language != nil {
		u.Language = *update.Language
	}
	if update.State != nil {
		u.State = *update.State
	}
	if update.District != nil {
		u.District = *update.District
	}
	u.Profile = u.Profile.Merge(update.Profile)
	u.UpdatedAt = &now
}
