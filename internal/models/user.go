package models

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleFranchisee Role = "franchisee"
	RoleDiner      Role = "diner"
)

// UserRole wraps a single role so the wire shape stays
// `"roles": [{"role": "admin"}]`, matching the real backend.
type UserRole struct {
	Role Role `json:"role"`
}

type User struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Roles    []UserRole `json:"roles"`
}

// UserView is a sanitized user: same shape minus the password.
type UserView struct {
	ID    int        `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Roles []UserRole `json:"roles"`
}

func (u *User) View() UserView {
	return UserView{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Roles: u.Roles,
	}
}

func (u *User) IsAdmin() bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r.Role == RoleAdmin {
			return true
		}
	}
	return false
}
