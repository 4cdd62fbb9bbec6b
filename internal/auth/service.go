package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/in-nis/studytrack/internal/config"
	"github.com/in-nis/studytrack/internal/db"
	"github.com/in-nis/studytrack/internal/models"
)

var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoSession          = errors.New("no active session")
)

const (
	MinPasswordLength = 6
	MinUsernameLength = 3
	MaxUsernameLength = 64
)

var validate = validator.New()

// SessionToken is what a successful login hands back to the HTTP layer.
type SessionToken struct {
	Value      string
	ExpiresAt  time.Time
	Persistent bool
	User       *models.User
}

type Service struct {
	store       *db.Store
	secret      []byte
	sessionTTL  time.Duration
	rememberTTL time.Duration
	now         func() time.Time
}

func NewService(store *db.Store, cfg *config.Config) *Service {
	return &Service{
		store:       store,
		secret:      []byte(cfg.SecretKey),
		sessionTTL:  cfg.SessionTTL,
		rememberTTL: cfg.RememberTTL,
		now:         time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validCredentials applies the registration rules to normalized input.
func validCredentials(username, email, password string) bool {
	n := utf8.RuneCountInString(username)
	if n < MinUsernameLength || n > MaxUsernameLength {
		return false
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return false
	}
	return validate.Var(email, "required,email,max=120") == nil
}

// Register creates a user holding only a bcrypt hash of password. Input
// breaking the username, email or password rules yields ErrValidation.
func (s *Service) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)
	if !validCredentials(username, email, password) {
		return nil, ErrValidation
	}

	if taken, err := s.store.UsernameTaken(ctx, username); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateUsername
	}
	if taken, err := s.store.EmailTaken(ctx, email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateEmail
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{Username: username, Email: email, PasswordHash: hash}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			// Lost a race with a concurrent registration.
			return nil, s.duplicateCause(ctx, email)
		}
		return nil, err
	}
	return user, nil
}

// duplicateCause tells which unique field a failed insert collided on.
func (s *Service) duplicateCause(ctx context.Context, email string) error {
	taken, err := s.store.EmailTaken(ctx, email)
	if err != nil {
		return fmt.Errorf("recheck email: %w", err)
	}
	if taken {
		return ErrDuplicateEmail
	}
	return ErrDuplicateUsername
}

// Login verifies credentials and opens a new session.
func (s *Service) Login(ctx context.Context, email, password string, remember bool) (*SessionToken, error) {
	user, err := s.store.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return s.StartSession(ctx, user, remember)
}

// StartSession persists a session row for user and signs a token for it.
func (s *Service) StartSession(ctx context.Context, user *models.User, remember bool) (*SessionToken, error) {
	ttl := s.sessionTTL
	if remember {
		ttl = s.rememberTTL
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("session id: %w", err)
	}
	sess := &models.Session{
		ID:        id,
		UserID:    user.ID,
		Remember:  remember,
		ExpiresAt: s.now().Add(ttl).UTC(),
	}
	if err := s.store.CreateSession(ctx, sess); err != nil {
		return nil, err
	}

	value, err := signToken(s.secret, sess.ID, user.ID, sess.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}
	return &SessionToken{Value: value, ExpiresAt: sess.ExpiresAt, Persistent: remember, User: user}, nil
}

// Identify resolves the user behind a session token. Any failure yields
// ErrNoSession or a store error.
func (s *Service) Identify(ctx context.Context, token string) (*models.User, string, error) {
	if token == "" {
		return nil, "", ErrNoSession
	}
	now := s.now()
	claims, err := parseToken(s.secret, token, now)
	if err != nil {
		return nil, "", ErrNoSession
	}

	sess, err := s.store.GetSession(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, "", ErrNoSession
		}
		return nil, "", err
	}
	if !sess.Active(now) || sess.UserID != claims.UserID {
		return nil, "", ErrNoSession
	}

	user, err := s.store.GetUserByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, "", ErrNoSession
		}
		return nil, "", err
	}
	return user, sess.ID, nil
}

// Logout revokes the session behind token. Unknown or invalid tokens are
// not an error: the identity context is cleared either way.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := parseToken(s.secret, token, s.now())
	if err != nil {
		return nil
	}
	return s.store.RevokeSession(ctx, claims.SessionID)
}

const usernameAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// FindOrCreateByEmail returns the user registered with email, creating one
// for externally verified identities. Created users get a random password
// nobody knows, so only the external sign-in can log them in.
func (s *Service) FindOrCreateByEmail(ctx context.Context, email string) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, ErrValidation
	}
	user, err := s.store.GetUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, err
	}

	username, err := s.freeUsername(ctx, email)
	if err != nil {
		return nil, err
	}
	secret, err := gonanoid.New(32)
	if err != nil {
		return nil, err
	}
	hash, err := HashPassword(secret)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user = &models.User{Username: username, Email: email, PasswordHash: hash}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) freeUsername(ctx context.Context, email string) (string, error) {
	base := email
	if i := strings.IndexByte(email, '@'); i > 0 {
		base = email[:i]
	}
	if len(base) < MinUsernameLength {
		base += "user"
	}
	if len(base) > 56 {
		base = base[:56]
	}

	candidate := base
	for i := 0; i < 5; i++ {
		taken, err := s.store.UsernameTaken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		suffix, err := gonanoid.Generate(usernameAlphabet, 6)
		if err != nil {
			return "", err
		}
		candidate = base + "-" + suffix
	}
	return "", fmt.Errorf("no free username for %q", email)
}
