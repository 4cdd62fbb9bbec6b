package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/in-nis/studytrack/internal/auth"
	"github.com/in-nis/studytrack/internal/db"
	"github.com/in-nis/studytrack/internal/testutil"
)

func newService(t *testing.T) (*auth.Service, *db.Store, *testutil.Clock) {
	t.Helper()
	store := testutil.NewStore(t)
	clock := testutil.NewClock(time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC))
	svc := auth.NewService(store, testutil.Config()).WithClock(clock.Now)
	return svc, store, clock
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newService(t)

	user, err := svc.Register(ctx, "alice", "Alice@Example.com", "secret1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.ID == 0 {
		t.Error("Register() did not assign an id")
	}
	if user.Email != "alice@example.com" {
		t.Errorf("Email = %q, want normalized alice@example.com", user.Email)
	}
	if user.PasswordHash == "secret1" || !auth.CheckPassword(user.PasswordHash, "secret1") {
		t.Error("stored credential is not a hash of the password")
	}

	tests := map[string]struct {
		username, email, password string
		wantErr                   error
	}{
		"duplicate username": {username: "alice", email: "other@example.com", password: "secret1", wantErr: auth.ErrDuplicateUsername},
		"duplicate email":    {username: "alice2", email: "alice@example.com", password: "secret1", wantErr: auth.ErrDuplicateEmail},
		"email case":         {username: "alice3", email: "ALICE@example.com", password: "secret1", wantErr: auth.ErrDuplicateEmail},
		"short password":     {username: "bob", email: "bob@example.com", password: "123", wantErr: auth.ErrValidation},
		"blank username":     {username: "  ", email: "bob@example.com", password: "secret1", wantErr: auth.ErrValidation},
		"short username":     {username: " bo ", email: "bob@example.com", password: "secret1", wantErr: auth.ErrValidation},
		"long username":      {username: strings.Repeat("b", 65), email: "bob@example.com", password: "secret1", wantErr: auth.ErrValidation},
		"malformed email":    {username: "bob", email: "bob.example.com", password: "secret1", wantErr: auth.ErrValidation},
		"long email":         {username: "bob", email: strings.Repeat("b", 110) + "@example.com", password: "secret1", wantErr: auth.ErrValidation},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.username, tc.email, tc.password)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tc.wantErr)
			}
		})
	}

	n, err := store.CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers() error = %v", err)
	}
	if n != 1 {
		t.Errorf("CountUsers() = %d, want 1 after rejected registrations", n)
	}
}

func TestLoginAndIdentify(t *testing.T) {
	ctx := context.Background()
	svc, _, clock := newService(t)

	alice, err := svc.Register(ctx, "alice", "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, err := svc.Login(ctx, "alice@example.com", "wrong-password", false); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("Login(wrong password) error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "secret1", false); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("Login(unknown email) error = %v, want ErrInvalidCredentials", err)
	}

	tok, err := svc.Login(ctx, "alice@example.com", "secret1", false)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if tok.Persistent {
		t.Error("Persistent = true without remember")
	}
	if want := clock.Now().Add(time.Hour); !tok.ExpiresAt.Equal(want) {
		t.Errorf("ExpiresAt = %v, want %v", tok.ExpiresAt, want)
	}

	user, sid, err := svc.Identify(ctx, tok.Value)
	if err != nil {
		t.Fatalf("Identify() error = %v", err)
	}
	if user.ID != alice.ID || sid == "" {
		t.Errorf("Identify() = (%d, %q), want (%d, non-empty)", user.ID, sid, alice.ID)
	}

	if _, _, err := svc.Identify(ctx, tok.Value+"x"); !errors.Is(err, auth.ErrNoSession) {
		t.Errorf("Identify(tampered) error = %v, want ErrNoSession", err)
	}
	if _, _, err := svc.Identify(ctx, ""); !errors.Is(err, auth.ErrNoSession) {
		t.Errorf("Identify(empty) error = %v, want ErrNoSession", err)
	}

	clock.Advance(2 * time.Hour)
	if _, _, err := svc.Identify(ctx, tok.Value); !errors.Is(err, auth.ErrNoSession) {
		t.Errorf("Identify(expired) error = %v, want ErrNoSession", err)
	}
}

func TestRememberAndLogout(t *testing.T) {
	ctx := context.Background()
	svc, _, clock := newService(t)

	if _, err := svc.Register(ctx, "alice", "alice@example.com", "secret1"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	tok, err := svc.Login(ctx, "alice@example.com", "secret1", true)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !tok.Persistent {
		t.Error("Persistent = false with remember")
	}

	clock.Advance(7 * 24 * time.Hour)
	if _, _, err := svc.Identify(ctx, tok.Value); err != nil {
		t.Fatalf("Identify() after a week error = %v, want remembered session", err)
	}

	if err := svc.Logout(ctx, tok.Value); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, _, err := svc.Identify(ctx, tok.Value); !errors.Is(err, auth.ErrNoSession) {
		t.Errorf("Identify() after logout error = %v, want ErrNoSession", err)
	}

	if err := svc.Logout(ctx, "garbage"); err != nil {
		t.Errorf("Logout(garbage) error = %v, want nil", err)
	}
}

func TestFindOrCreateByEmail(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newService(t)

	alice, err := svc.Register(ctx, "alice", "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	got, err := svc.FindOrCreateByEmail(ctx, "ALICE@example.com")
	if err != nil {
		t.Fatalf("FindOrCreateByEmail(existing) error = %v", err)
	}
	if got.ID != alice.ID {
		t.Errorf("FindOrCreateByEmail(existing) id = %d, want %d", got.ID, alice.ID)
	}

	// Username "alice" is taken, so the new account gets a suffix.
	created, err := svc.FindOrCreateByEmail(ctx, "alice@other.org")
	if err != nil {
		t.Fatalf("FindOrCreateByEmail(new) error = %v", err)
	}
	if created.ID == alice.ID || created.Username == "alice" {
		t.Errorf("FindOrCreateByEmail(new) = %+v, want a distinct user", created)
	}
	if auth.CheckPassword(created.PasswordHash, "") {
		t.Error("provisioned user accepts an empty password")
	}

	n, err := store.CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers() error = %v", err)
	}
	if n != 2 {
		t.Errorf("CountUsers() = %d, want 2", n)
	}
}
