package service

import (
	"context"
	"errors"
	"strings"

	"club-portal/internal/model"
	"club-portal/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is accepted for accounts that have no password set.
const DefaultPassword = "123456"

var (
	ErrUnknownEmail  = errors.New("email is not registered")
	ErrNoRole        = errors.New("account has no role assigned")
	ErrWrongPassword = errors.New("wrong password")
)

// Directory is the remote lookup the login path prefers; it reports not-found
// on any miss or failure so the snapshot can take over.
type Directory interface {
	FindSupervisorByEmail(ctx context.Context, email string) (*model.Supervisor, bool)
}

type AuthService struct {
	dir  Directory
	snap *store.Snapshot
}

func NewAuthService(dir Directory, snap *store.Snapshot) *AuthService {
	return &AuthService{dir: dir, snap: snap}
}

// Login resolves the account remotely first (freshest password and role),
// falls back to the loaded snapshot when the store cannot answer, and then
// verifies role and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Supervisor, error) {
	email = strings.TrimSpace(email)

	found, ok := s.dir.FindSupervisorByEmail(ctx, email)
	if !ok {
		for _, u := range s.snap.Supervisors() {
			if strings.EqualFold(u.Email, email) {
				found = u
				break
			}
		}
	}
	if found == nil {
		return nil, ErrUnknownEmail
	}
	if found.Role == "" {
		return nil, ErrNoRole
	}
	if !passwordMatches(found.Password, password) {
		return nil, ErrWrongPassword
	}
	return found, nil
}

// passwordMatches accepts bcrypt-hashed stored passwords as well as plain
// ones (seed accounts, pre-hashing records). An empty stored password means
// the fixed default.
func passwordMatches(stored, supplied string) bool {
	if stored == "" {
		stored = DefaultPassword
	}
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return stored == supplied
}
