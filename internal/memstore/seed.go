package memstore

import "github.com/jwtpizza/pizza-mock/internal/models"

// Seed data mirrors the fixtures the e2e suite expects: two known users,
// three franchises with ids 2-4, stores 4-7. Counters start just past the
// seeded ranges.
func (s *Store) seed() {
	admin := &models.User{
		ID:       1,
		Name:     "cooper johnston",
		Email:    "a@jwt.com",
		Password: "admin",
		Roles:    []models.UserRole{{Role: models.RoleAdmin}},
	}
	franchisee := &models.User{
		ID:       2,
		Name:     "test",
		Email:    "t@jwt.com",
		Password: "test",
		Roles:    []models.UserRole{{Role: models.RoleFranchisee}},
	}
	for _, u := range []*models.User{admin, franchisee} {
		s.users[u.ID] = u
		s.emailIndex[u.Email] = u.ID
	}

	s.franchises = []*models.Franchise{
		{
			ID:   2,
			Name: "LotaPizza",
			Admins: []models.FranchiseAdmin{
				{ID: admin.ID, Name: admin.Name, Email: admin.Email},
			},
			Stores: []models.Store{
				{ID: 4, Name: "Lehi"},
				{ID: 5, Name: "Springville"},
				{ID: 6, Name: "American Fork"},
			},
		},
		{
			ID:   3,
			Name: "PizzaCorp",
			Admins: []models.FranchiseAdmin{
				{ID: franchisee.ID, Name: franchisee.Name, Email: franchisee.Email},
			},
			Stores: []models.Store{
				{ID: 7, Name: "Spanish Fork"},
			},
		},
		{
			ID:     4,
			Name:   "topSpot",
			Admins: []models.FranchiseAdmin{},
			Stores: []models.Store{},
		},
	}

	s.nextUserID = 3
	s.nextFranchiseID = 5
	s.nextStoreID = 8
	s.nextPlaceholderID = 1000

	s.menu = []models.MenuItem{
		{ID: 1, Title: "Veggie", Image: "pizza1.png", Price: 0.0038, Description: "A garden of delight"},
		{ID: 2, Title: "Pepperoni", Image: "pizza2.png", Price: 0.0042, Description: "Spicy treat"},
	}
}
