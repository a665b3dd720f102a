package domain

// User models an account that can sign in to the back office.
type User struct {
	ID           string `json:"id"`
	Login        string `json:"login"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"is_admin"`
}

// Principal is the identity projected into the session at login time.
// It is a fixed copy: changes to the underlying user (including the admin
// flag) take effect only at the next login.
type Principal struct {
	ID      string `json:"id"`
	Login   string `json:"login"`
	IsAdmin bool   `json:"is_admin"`
}

// PrincipalOf projects a user into its session representation.
func PrincipalOf(u *User) Principal {
	return Principal{ID: u.ID, Login: u.Login, IsAdmin: u.IsAdmin}
}
