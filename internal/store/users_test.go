package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"kalemci/internal/models"
)

func TestCheckPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("gizli-parola"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	user := &models.User{Email: "ben@ornek.dev", PasswordHash: string(hash)}

	s := &UserStore{}
	if !s.CheckPassword(user, "gizli-parola") {
		t.Error("correct password rejected")
	}
	if s.CheckPassword(user, "yanlış") {
		t.Error("wrong password accepted")
	}
	if s.CheckPassword(&models.User{}, "anything") {
		t.Error("empty hash accepted a password")
	}
}

func TestUserStoreAuthenticate(t *testing.T) {
	s := NewUserStore(testDB(t))
	ctx := context.Background()

	email := "test-" + uuid.NewString()[:8] + "@ornek.dev"
	user, err := s.Create(ctx, email, "parola123", "Test Yazar")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() {
		_, _ = s.col.DeleteOne(context.Background(), bson.M{"email": email})
	})

	t.Run("valid credentials", func(t *testing.T) {
		got, err := s.Authenticate(ctx, email, "parola123")
		if err != nil {
			t.Fatalf("Authenticate: %v", err)
		}
		if got.ID != user.ID || got.DisplayName != "Test Yazar" {
			t.Errorf("unexpected user: %+v", got)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		if _, err := s.Authenticate(ctx, email, "yanlış"); err == nil {
			t.Error("expected error for wrong password")
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		if _, err := s.Authenticate(ctx, "yok@ornek.dev", "parola123"); err == nil {
			t.Error("expected error for unknown email")
		}
	})
}
