package service

import (
	"context"
	"errors"
	"event_passport_backend/internal/testutil"
	"event_passport_backend/internal/util"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	auth, err := NewAuthService(testutil.NewTestConfig(t), NewMemorySessionStore())
	if err != nil {
		t.Fatal(err)
	}
	return auth
}

func TestLogin(t *testing.T) {
	auth := newAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"valid", testutil.AdminUsername, testutil.AdminPassword, nil},
		{"wrong password", testutil.AdminUsername, "nope", util.ErrInvalidCredential},
		{"wrong username", "root", testutil.AdminPassword, util.ErrInvalidCredential},
		{"empty", "", "", util.ErrInvalidCredential},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := auth.Login(ctx, tt.username, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if result.Token == "" || result.Username != testutil.AdminUsername {
				t.Errorf("result = %+v", result)
			}
			if !result.ExpiresAt.After(time.Now()) {
				t.Errorf("expiresAt = %v", result.ExpiresAt)
			}
		})
	}
}

func TestLoginWithConfiguredHash(t *testing.T) {
	cfg := testutil.NewTestConfig(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("from-hash"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Admin.PasswordHash = string(hash)

	auth, err := NewAuthService(cfg, NewMemorySessionStore())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := auth.Login(context.Background(), testutil.AdminUsername, "from-hash"); err != nil {
		t.Errorf("login with hashed password: %v", err)
	}
	if _, err := auth.Login(context.Background(), testutil.AdminUsername, testutil.AdminPassword); err == nil {
		t.Error("plain password must be ignored when a hash is configured")
	}
}

func TestNewAuthServiceRequiresPassword(t *testing.T) {
	cfg := testutil.NewTestConfig(t)
	cfg.Admin.Password = ""

	if _, err := NewAuthService(cfg, NewMemorySessionStore()); err == nil {
		t.Error("expected error without admin password")
	}
}

func TestAuthenticateAndLogout(t *testing.T) {
	auth := newAuthService(t)
	ctx := context.Background()

	result, err := auth.Login(ctx, testutil.AdminUsername, testutil.AdminPassword)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := auth.Authenticate(ctx, result.Token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Username != testutil.AdminUsername || claims.Role != util.RoleAdmin {
		t.Errorf("claims = %+v", claims)
	}

	if err := auth.Logout(ctx, claims); err != nil {
		t.Fatal(err)
	}
	if _, err := auth.Authenticate(ctx, result.Token); !errors.Is(err, util.ErrSessionExpired) {
		t.Errorf("after logout: err = %v, want ErrSessionExpired", err)
	}
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	auth := newAuthService(t)
	ctx := context.Background()

	expired, _, err := util.GenerateJWT(testutil.AdminUsername, "sid", auth.Cfg.JWT.Secret, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	foreign, _, err := util.GenerateJWT(testutil.AdminUsername, "sid", "another-secret-that-is-long-enough", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	unknownSession, _, err := util.GenerateJWT(testutil.AdminUsername, "never-issued", auth.Cfg.JWT.Secret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"garbage", "not-a-jwt", util.ErrInvalidCredential},
		{"wrong secret", foreign, util.ErrInvalidCredential},
		{"expired", expired, util.ErrSessionExpired},
		{"unknown session", unknownSession, util.ErrSessionExpired},
	}
	for _, tt := range tests {
		if _, err := auth.Authenticate(ctx, tt.token); !errors.Is(err, tt.want) {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.want)
		}
	}
}
