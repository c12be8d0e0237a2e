package repositories

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"railticket/internal/domain"
	"railticket/internal/domain/models"
)

const usersFile = "users.csv"

var userHeader = []string{"user_id", "name", "email", "password_hash", "role"}

// UserStore persists auth accounts in the same flat-file fashion as
// the booking ledger.
type UserStore struct {
	path string
	mu   sync.Mutex
}

func NewUserStore(dir string) *UserStore {
	if dir == "" {
		dir = "."
	}
	return &UserStore{path: filepath.Join(dir, usersFile)}
}

// FindByEmail is case-insensitive on the email.
func (s *UserStore) FindByEmail(email string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	users, err := s.listAll()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if strings.ToLower(u.Email) == email {
			return u, nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "user " + email}
}

// Create appends a user row; a duplicate email is rejected.
func (s *UserStore) Create(u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.FindByEmail(u.Email); err == nil {
		return domain.ValidationError{Field: "email", Msg: "already registered"}
	} else if !domain.IsNotFound(err) {
		return err
	}

	if err := s.ensureFile(); err != nil {
		return domain.InternalError{Msg: "cannot create users store", Err: err}
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return domain.InternalError{Msg: "cannot open users store", Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{u.ID, u.Name, u.Email, u.PasswordHash, u.Role}); err != nil {
		return domain.InternalError{Msg: "cannot append user", Err: err}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return domain.InternalError{Msg: "cannot append user", Err: err}
	}
	return f.Sync()
}

func (s *UserStore) listAll() ([]models.User, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.User{}, nil
		}
		return nil, domain.InternalError{Msg: "cannot read users store", Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, domain.InternalError{Msg: "cannot parse users store", Err: err}
	}

	out := []models.User{}
	for i, rec := range records {
		if i == 0 && len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "user_id") {
			continue
		}
		if len(rec) < len(userHeader) {
			continue
		}
		out = append(out, models.User{
			ID:           strings.TrimSpace(rec[0]),
			Name:         strings.TrimSpace(rec[1]),
			Email:        strings.TrimSpace(rec[2]),
			PasswordHash: rec[3],
			Role:         strings.TrimSpace(rec[4]),
		})
	}
	return out, nil
}

func (s *UserStore) ensureFile() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(userHeader); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
