package store

import (
	"errors"
	"strings"

	"github.com/daryan97/bobatea/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Store is the credential store: a thin wrapper over the users relation.
type Store struct {
	db *gorm.DB
}

// New returns a Store backed by db
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a new user. The unique index on username is what
// serializes concurrent registrations for the same name: exactly one insert
// wins and the loser surfaces as ErrDuplicateUsername. There is no
// read-then-write pre-check.
func (s *Store) Create(user *domain.User) error {
	if err := s.db.Create(user).Error; err != nil {
		if isDuplicate(err) {
			return domain.ErrDuplicateUsername
		}
		return err
	}
	return nil
}

// FindByUsername returns the user record, or nil when no such user exists
func (s *Store) FindByUsername(username string) (*domain.User, error) {
	var user domain.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Verify checks credentials with an exact, case-sensitive comparison
// against the stored password. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *Store) Verify(username, password string) (*domain.User, error) {
	user, err := s.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != password {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// isDuplicate recognizes a unique-constraint violation. TranslateError
// covers the common case; the message check catches older driver builds.
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
