package domain

import (
	"strings"
	"time"
)

const (
	RoleReviewer = "reviewer"
	RoleCasual   = "casual"
)

// ValidRole reports whether role is one of the supported account roles.
func ValidRole(role string) bool {
	return role == RoleReviewer || role == RoleCasual
}

// User models a registered member of the network.
type User struct {
	ID             string    `json:"_id"`
	Username       string    `json:"username"`
	Email          string    `json:"email,omitempty"`
	PasswordHash   string    `json:"-"`
	Role           string    `json:"role"`
	Bio            string    `json:"bio"`
	Expertise      []string  `json:"expertise"`
	FavoriteGenre  string    `json:"favoriteGenre"`
	ProfilePicture string    `json:"profilePicture"`
	EmailPublic    bool      `json:"emailPublic"`
	JoinedDate     time.Time `json:"joinedDate"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NormalizeEmail trims and lowercases an email address the way it is stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate checks the invariants every persisted user must hold.
func (u *User) Validate() error {
	switch {
	case u.Username == "":
		return Validation("Username is required")
	case u.Email == "":
		return Validation("Email is required")
	case u.PasswordHash == "":
		return Validation("Password is required")
	case !ValidRole(u.Role):
		return Validation("Role must be one of: reviewer, casual")
	}
	return nil
}

// VisibleTo returns a copy of u with the email removed unless the owner made
// it public or viewer is the owner.
func (u *User) VisibleTo(viewer *Identity) *User {
	out := *u
	if !u.EmailPublic && (viewer == nil || viewer.UserID != u.ID) {
		out.Email = ""
	}
	return &out
}

// ProfilePatch holds the user-editable profile fields. Nil means unchanged.
// Username and password are deliberately absent: they never change after
// registration.
type ProfilePatch struct {
	Email          *string
	Role           *string
	Bio            *string
	Expertise      *[]string
	FavoriteGenre  *string
	ProfilePicture *string
	EmailPublic    *bool
}

// Empty reports whether the patch changes nothing.
func (p ProfilePatch) Empty() bool {
	return p.Email == nil && p.Role == nil && p.Bio == nil && p.Expertise == nil &&
		p.FavoriteGenre == nil && p.ProfilePicture == nil && p.EmailPublic == nil
}

// Normalize lowercases the email in place.
func (p *ProfilePatch) Normalize() {
	if p.Email != nil {
		e := NormalizeEmail(*p.Email)
		p.Email = &e
	}
}

// Validate enforces the same field constraints the user document carries.
func (p ProfilePatch) Validate() error {
	if p.Email != nil && *p.Email == "" {
		return Validation("Email cannot be empty")
	}
	if p.Role != nil && !ValidRole(*p.Role) {
		return Validation("Role must be one of: reviewer, casual")
	}
	return nil
}
