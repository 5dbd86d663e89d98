// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"kalemci/internal/models"
)

// UserStore handles admin-account lookups for the credential exchange.
type UserStore struct {
	col *mongo.Collection
}

// NewUserStore creates a UserStore over the "users" collection.
func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{col: db.Collection("users")}
}

// FindByEmail retrieves a user by email address. Returns nil, nil when no
// such user exists.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

// CheckPassword verifies a plaintext password against the user's bcrypt hash.
func (s *UserStore) CheckPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// Create inserts a new user with a bcrypt-hashed password. Used by the
// account-provisioning command, not the login flow.
func (s *UserStore) Create(ctx context.Context, email, password, displayName string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	id := primitive.NewObjectID()
	update := bson.M{
		"$set": bson.M{
			"email":        email,
			"passwordHash": string(hash),
			"displayName":  displayName,
		},
		"$currentDate": bson.M{fieldCreatedAt: true},
	}
	if _, err := s.col.UpdateByID(ctx, id, update, options.Update().SetUpsert(true)); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &models.User{
		ID:           id,
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
	}, nil
}

// Authenticate performs the credential exchange: it looks up the user by
// email and verifies the password. On success it returns the user; on bad
// credentials it returns the backend's message as an error.
func (s *UserStore) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.CheckPassword(user, password) {
		return nil, errors.New("invalid email or password")
	}
	return user, nil
}
