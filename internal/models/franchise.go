package models

// FranchiseAdmin is a snapshot of a user at the time the franchise was
// created. Renaming the user later does not rewrite these entries.
type FranchiseAdmin struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Store struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type Franchise struct {
	ID     int              `json:"id"`
	Name   string           `json:"name"`
	Admins []FranchiseAdmin `json:"admins"`
	Stores []Store          `json:"stores"`
}

// HasAdmin reports whether the user id appears in the franchise's admin list.
func (f *Franchise) HasAdmin(userID int) bool {
	for _, a := range f.Admins {
		if a.ID == userID {
			return true
		}
	}
	return false
}
