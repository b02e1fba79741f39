package domain

// Identity is the authenticated principal carried by a session.
type Identity struct {
	UserID   string
	Username string
	Role     string
}

// IdentityOf builds the session identity for u.
func IdentityOf(u *User) Identity {
	return Identity{UserID: u.ID, Username: u.Username, Role: u.Role}
}
