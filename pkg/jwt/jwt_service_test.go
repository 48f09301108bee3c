package jwt

import (
	"testing"

	"sustainable-bao-backend/domain"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	service := NewJWTService()

	token := service.GenerateTokenUser("user-123", domain.RoleUser)
	if token == "" {
		t.Fatal("expected a signed token")
	}

	userID, role, err := service.GetUserIDByToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("expected user-123, got %s", userID)
	}
	if role != domain.RoleUser {
		t.Errorf("expected role %s, got %s", domain.RoleUser, role)
	}
}

func TestValidateTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	service := NewJWTService()

	token := service.GenerateTokenUser("user-123", domain.RoleUser)

	_, _, err := service.GetUserIDByToken(token + "x")
	if err == nil {
		t.Fatal("expected error for tampered token")
	}
}

func TestValidateTokenSignedWithOtherSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token := NewJWTService().GenerateTokenUser("user-123", domain.RoleUser)

	t.Setenv("JWT_SECRET", "other-secret")
	_, _, err := NewJWTService().GetUserIDByToken(token)
	if err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}
