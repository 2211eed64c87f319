package util

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

func TestGenerateAndParseJWT(t *testing.T) {
	token, expiresAt, err := GenerateJWT("admin", "sid-1", testSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if time.Until(expiresAt) <= 59*time.Minute {
		t.Errorf("expiresAt = %v", expiresAt)
	}

	claims, err := ParseJWT(token, testSecret)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Username != "admin" || claims.SessionID != "sid-1" || claims.Role != RoleAdmin {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseJWTErrors(t *testing.T) {
	expired, _, err := GenerateJWT("admin", "sid-1", testSecret, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseJWT(expired, testSecret); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expired: err = %v", err)
	}

	valid, _, err := GenerateJWT("admin", "sid-1", testSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseJWT(valid, "some-other-secret"); err == nil {
		t.Error("token signed with another secret was accepted")
	}

	// 拒绝 alg=none
	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Username: "admin", Role: RoleAdmin})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseJWT(unsigned, testSecret); err == nil {
		t.Error("unsigned token was accepted")
	}
}
