package auth

import (
	"testing"
	"time"

	"github.com/spec-kit/churn-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 5)

	token, exp, err := tm.GenerateToken("operator", domain.RoleOperator)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if time.Until(exp) > 5*time.Minute || time.Until(exp) < 4*time.Minute {
		t.Errorf("expiry = %v", exp)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != "operator" || claims.Role != domain.RoleOperator {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseTokenRejects(t *testing.T) {
	tm := NewTokenManager("secret", 5)
	other := NewTokenManager("other-secret", 5)

	foreign, _, err := other.GenerateToken("operator", domain.RoleOperator)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tm.ParseToken(foreign); err == nil {
		t.Error("token signed with another secret was accepted")
	}

	tm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := tm.GenerateToken("operator", domain.RoleOperator)
	if err != nil {
		t.Fatal(err)
	}
	tm.now = time.Now
	if _, err := tm.ParseToken(expired); err == nil {
		t.Error("expired token was accepted")
	}

	if _, err := tm.ParseToken("not-a-jwt"); err == nil {
		t.Error("garbage token was accepted")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := ComparePassword(hash, "s3cret"); err != nil {
		t.Errorf("ComparePassword(correct) = %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Error("ComparePassword(wrong) succeeded")
	}
}
