package services

import (
	"context"
	"errors"
	"testing"

	"carpool/internal/utils"
	"carpool/internal/validators"
)

const testSecret = "test-secret"

func registerReq(email string) *validators.RegisterRequest {
	return &validators.RegisterRequest{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     email,
		Password:  "correct-horse",
		Phone:     "+911234567890",
		Role:      "passenger",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, testSecret, newTestLogger())

	user, tokens, err := svc.Register(context.Background(), registerReq("asha@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Password != "" {
		t.Error("password hash leaked in response")
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatal("expected a token pair")
	}

	claims, err := utils.ValidateToken(tokens.AccessToken, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != user.ID.Hex() {
		t.Errorf("token user id = %q, want %q", claims.UserID, user.ID.Hex())
	}
	if claims.Role != "passenger" {
		t.Errorf("token role = %q, want passenger", claims.Role)
	}

	logged, _, err := svc.Login(context.Background(), &validators.LoginRequest{
		Email:    "asha@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if logged.ID != user.ID {
		t.Errorf("logged in as %v, want %v", logged.ID, user.ID)
	}

	stored, _ := userRepo.GetByID(context.Background(), user.ID)
	if stored.Password == "correct-horse" {
		t.Error("password stored in plaintext")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, testSecret, newTestLogger())

	if _, _, err := svc.Register(context.Background(), registerReq("asha@example.com")); err != nil {
		t.Fatalf("Register: %v", err)
	}

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), &validators.LoginRequest{Email: "asha@example.com", Password: "nope"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), &validators.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, testSecret, newTestLogger())

	if _, _, err := svc.Register(context.Background(), registerReq("asha@example.com")); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, _, err := svc.Register(context.Background(), registerReq("asha@example.com"))
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}
