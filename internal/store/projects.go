// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kalemci/internal/models"
)

// ProjectStore handles all project-related collection operations.
type ProjectStore struct {
	col *mongo.Collection
}

// NewProjectStore creates a ProjectStore over the "projects" collection.
func NewProjectStore(db *mongo.Database) *ProjectStore {
	return &ProjectStore{col: db.Collection("projects")}
}

// All returns every project, newest first. Returns an empty list on read
// failure.
func (s *ProjectStore) All(ctx context.Context) []models.Project {
	opts := options.Find().SetSort(bson.D{{Key: fieldCreatedAt, Value: -1}})
	return s.find(ctx, "list projects", bson.M{}, opts)
}

// Featured returns the projects flagged as featured, newest first.
func (s *ProjectStore) Featured(ctx context.Context) []models.Project {
	opts := options.Find().SetSort(bson.D{{Key: fieldCreatedAt, Value: -1}})
	return s.find(ctx, "list featured projects", bson.M{"featured": true}, opts)
}

// ByCategory returns the projects in the given category, newest first.
func (s *ProjectStore) ByCategory(ctx context.Context, category string) []models.Project {
	opts := options.Find().SetSort(bson.D{{Key: fieldCreatedAt, Value: -1}})
	return s.find(ctx, "list projects by category", bson.M{"category": category}, opts)
}

// ByID retrieves a project by its hex id. Returns nil when the project does
// not exist; transport failures also yield nil and are only visible in the
// logs.
func (s *ProjectStore) ByID(ctx context.Context, id string) *models.Project {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	var p models.Project
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	if err != nil {
		slog.Error("find project by id", "id", id, "error", err)
		return nil
	}
	return &p
}

// Create persists a new project and returns its id. The creation timestamp
// comes from the store's clock; Featured defaults to false when the caller
// left it unset.
func (s *ProjectStore) Create(ctx context.Context, in models.NewProject) (string, error) {
	id := primitive.NewObjectID()
	doc := bson.M{
		"title":        in.Title,
		"description":  in.Description,
		"category":     in.Category,
		"technologies": in.Technologies,
		"imageUrl":     in.ImageURL,
		"repoUrl":      in.RepoURL,
		"liveUrl":      in.LiveURL,
		"featured":     in.Featured,
	}
	update := bson.M{
		"$set":         doc,
		"$currentDate": bson.M{fieldCreatedAt: true},
	}

	_, err := s.col.UpdateByID(ctx, id, update, options.Update().SetUpsert(true))
	if err != nil {
		return "", fmt.Errorf("create project: %w", err)
	}
	return id.Hex(), nil
}

// Update applies a partial update to the project with the given id. Only
// the provided fields are written; createdAt is never touched.
func (s *ProjectStore) Update(ctx context.Context, id string, in models.ProjectUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("update project: bad id %q: %w", id, err)
	}

	set := projectSetFields(in)
	if len(set) == 0 {
		return nil
	}

	res, err := s.col.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update project: %s not found", id)
	}
	return nil
}

// Delete removes the project with the given id. Deleting a nonexistent id
// is not an error.
func (s *ProjectStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("delete project: bad id %q: %w", id, err)
	}
	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func (s *ProjectStore) find(ctx context.Context, op string, filter bson.M, opts *options.FindOptions) []models.Project {
	cur, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		slog.Error(op, "error", err)
		return nil
	}
	defer cur.Close(ctx)

	var projects []models.Project
	if err := cur.All(ctx, &projects); err != nil {
		slog.Error(op, "error", err)
		return nil
	}
	return projects
}

// projectSetFields builds the $set document from the non-nil fields of a
// partial update.
func projectSetFields(in models.ProjectUpdate) bson.M {
	set := bson.M{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.Category != nil {
		set["category"] = *in.Category
	}
	if in.Technologies != nil {
		set["technologies"] = *in.Technologies
	}
	if in.ImageURL != nil {
		set["imageUrl"] = *in.ImageURL
	}
	if in.RepoURL != nil {
		set["repoUrl"] = *in.RepoURL
	}
	if in.LiveURL != nil {
		set["liveUrl"] = *in.LiveURL
	}
	if in.Featured != nil {
		set["featured"] = *in.Featured
	}
	return set
}
