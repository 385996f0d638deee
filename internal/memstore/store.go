package memstore

import (
	"errors"
	"strings"
	"sync"

	"github.com/jwtpizza/pizza-mock/internal/models"
)

var (
	ErrDuplicateEmail    = errors.New("email already in use")
	ErrUserNotFound      = errors.New("user not found")
	ErrFranchiseNotFound = errors.New("franchise not found")
	ErrStoreNotFound     = errors.New("store not found")
)

// Store holds the whole simulated backend state: the user directory,
// franchises with their nested stores, the single logical session and the
// id counters. Users are keyed by id with a secondary unique index on
// email; both are updated together so a rename can never leave the old
// email resolving. The mutex keeps the internal structures and counters
// consistent when the HTTP listener interleaves requests, but lookups
// hand out live records that callers read (and marshal) after the lock
// is released. Full isolation relies on the harness issuing one request
// at a time, per the simulated contract.
type Store struct {
	mu sync.Mutex

	users      map[int]*models.User
	emailIndex map[string]int
	franchises []*models.Franchise

	session *models.User

	nextUserID        int
	nextFranchiseID   int
	nextStoreID       int
	nextPlaceholderID int

	menu []models.MenuItem
}

func New() *Store {
	s := &Store{
		users:      make(map[int]*models.User),
		emailIndex: make(map[string]int),
	}
	s.seed()
	return s
}

// --------- Users ---------

func (s *Store) CreateUser(name, email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.emailIndex[email]; taken {
		return nil, ErrDuplicateEmail
	}

	u := &models.User{
		ID:       s.nextUserID,
		Name:     name,
		Email:    email,
		Password: password,
		Roles:    []models.UserRole{{Role: models.RoleDiner}},
	}
	s.nextUserID++
	s.users[u.ID] = u
	s.emailIndex[u.Email] = u.ID
	return u, nil
}

func (s *Store) UserByEmail(email string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.emailIndex[email]
	if !ok {
		return nil
	}
	return s.users[id]
}

func (s *Store) UserByID(id int) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[id]
}

// UpdateUser applies a partial update; empty fields are left unchanged.
// An email change moves the email index entry in the same critical
// section, so the old address stops resolving the moment the new one
// starts. The session stays coherent for free because it points at the
// same record.
func (s *Store) UpdateUser(id int, name, email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	if email != "" && email != u.Email {
		if _, taken := s.emailIndex[email]; taken {
			return nil, ErrDuplicateEmail
		}
		delete(s.emailIndex, u.Email)
		u.Email = email
		s.emailIndex[u.Email] = id
	}
	if name != "" {
		u.Name = name
	}
	if password != "" {
		u.Password = password
	}
	return u, nil
}

// --------- Session ---------

func (s *Store) SetSession(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = u
}

func (s *Store) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
}

func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// --------- Franchises ---------

// ListFranchises filters by case-insensitive substring (empty or the
// literal "*" means no filter) and pages over the result in insertion
// order. The second return value reports whether records exist beyond
// the returned page.
func (s *Store) ListFranchises(name string, page, limit int) ([]*models.Franchise, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nameQ := strings.ToLower(name)
	filtered := make([]*models.Franchise, 0, len(s.franchises))
	for _, f := range s.franchises {
		if nameQ != "" && nameQ != "*" && !strings.Contains(strings.ToLower(f.Name), nameQ) {
			continue
		}
		filtered = append(filtered, f)
	}

	start := page * limit
	if start >= len(filtered) {
		return []*models.Franchise{}, false
	}
	end := start + limit
	more := end < len(filtered)
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], more
}

func (s *Store) FranchiseByID(id int) *models.Franchise {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.franchiseByID(id)
}

func (s *Store) franchiseByID(id int) *models.Franchise {
	for _, f := range s.franchises {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// FranchisesAdministeredBy returns every franchise listing the user id
// among its admins. Always non-nil so it marshals as a JSON array.
func (s *Store) FranchisesAdministeredBy(userID int) []*models.Franchise {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*models.Franchise{}
	for _, f := range s.franchises {
		if f.HasAdmin(userID) {
			out = append(out, f)
		}
	}
	return out
}

// CreateFranchise resolves each admin email against the user directory.
// Known emails become an {id, name, email} snapshot of the real user;
// unknown ones get a placeholder id from the reserved 1000+ range with
// the email standing in for the name.
func (s *Store) CreateFranchise(name string, adminEmails []string) *models.Franchise {
	s.mu.Lock()
	defer s.mu.Unlock()

	admins := make([]models.FranchiseAdmin, 0, len(adminEmails))
	for _, email := range adminEmails {
		if id, ok := s.emailIndex[email]; ok {
			u := s.users[id]
			admins = append(admins, models.FranchiseAdmin{ID: u.ID, Name: u.Name, Email: u.Email})
			continue
		}
		admins = append(admins, models.FranchiseAdmin{ID: s.nextPlaceholderID, Name: email, Email: email})
		s.nextPlaceholderID++
	}

	f := &models.Franchise{
		ID:     s.nextFranchiseID,
		Name:   name,
		Admins: admins,
		Stores: []models.Store{},
	}
	s.nextFranchiseID++
	s.franchises = append(s.franchises, f)
	return f
}

// DeleteFranchise removes the franchise and, with it, every nested store.
func (s *Store) DeleteFranchise(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.franchises {
		if f.ID == id {
			s.franchises = append(s.franchises[:i], s.franchises[i+1:]...)
			return nil
		}
	}
	return ErrFranchiseNotFound
}

// --------- Stores ---------

func (s *Store) CreateStore(franchiseID int, name string) (*models.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.franchiseByID(franchiseID)
	if f == nil {
		return nil, ErrFranchiseNotFound
	}

	st := models.Store{ID: s.nextStoreID, Name: name, TotalRevenue: 0}
	s.nextStoreID++
	f.Stores = append(f.Stores, st)
	return &st, nil
}

func (s *Store) DeleteStore(franchiseID, storeID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.franchiseByID(franchiseID)
	if f == nil {
		return ErrFranchiseNotFound
	}
	for i, st := range f.Stores {
		if st.ID == storeID {
			f.Stores = append(f.Stores[:i], f.Stores[i+1:]...)
			return nil
		}
	}
	return ErrStoreNotFound
}

// --------- Menu ---------

func (s *Store) Menu() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.MenuItem, len(s.menu))
	copy(out, s.menu)
	return out
}
