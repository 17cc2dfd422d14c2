package utils

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := primitive.NewObjectID()
	pair, err := GenerateTokenPair(userID, "driver", "d@example.com", "secret")
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if pair.TokenType != "Bearer" {
		t.Errorf("token type = %q, want Bearer", pair.TokenType)
	}

	claims, err := ValidateToken(pair.AccessToken, "secret")
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID.Hex() {
		t.Errorf("user id = %q, want %q", claims.UserID, userID.Hex())
	}
	if claims.Role != "driver" || claims.Email != "d@example.com" {
		t.Errorf("claims = (%q, %q), want (driver, d@example.com)", claims.Role, claims.Email)
	}
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	pair, err := GenerateTokenPair(primitive.NewObjectID(), "driver", "d@example.com", "secret")
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if _, err := ValidateToken(pair.AccessToken, "other-secret"); err == nil {
		t.Error("token signed with a different key validated")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token", "secret"); err == nil {
		t.Error("garbage token validated")
	}
}
