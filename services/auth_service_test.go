package services

import (
	"errors"
	"testing"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	user, err := RegisterUser("jo@example.com", "hunter2hunter2", "Jo Smith")
	if err != nil {
		t.Fatal(err)
	}
	if user.Password == "hunter2hunter2" {
		t.Error("password stored in plaintext")
	}

	token, authed, err := AuthenticateUser("jo@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatal(err)
	}
	if token == "" {
		t.Error("empty token")
	}
	if authed.ID != user.ID {
		t.Errorf("authenticated user %d, want %d", authed.ID, user.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupTestDB(t)

	if _, err := RegisterUser("dup@example.com", "password123", "First"); err != nil {
		t.Fatal(err)
	}
	_, err := RegisterUser("dup@example.com", "password456", "Second")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestAuthenticateBadCredentials(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := RegisterUser("jo@example.com", "correct-horse", "Jo"); err != nil {
		t.Fatal(err)
	}

	if _, _, err := AuthenticateUser("jo@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := AuthenticateUser("nobody@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}
