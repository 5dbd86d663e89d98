// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a portfolio project document in the "projects" collection.
// CreatedAt is assigned by the store at creation and never changes.
type Project struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Category     string             `bson:"category" json:"category"`
	Technologies []string           `bson:"technologies,omitempty" json:"technologies,omitempty"`
	ImageURL     string             `bson:"imageUrl,omitempty" json:"image_url,omitempty"`
	RepoURL      string             `bson:"repoUrl,omitempty" json:"repo_url,omitempty"`
	LiveURL      string             `bson:"liveUrl,omitempty" json:"live_url,omitempty"`
	Featured     bool               `bson:"featured" json:"featured"`
	CreatedAt    time.Time          `bson:"createdAt" json:"created_at"`
}

// NewProject carries the caller-supplied fields for creating a project.
// Featured defaults to false when not set.
type NewProject struct {
	Title        string
	Description  string
	Category     string
	Technologies []string
	ImageURL     string
	RepoURL      string
	LiveURL      string
	Featured     bool
}

// ProjectUpdate is a partial update: only non-nil fields are written.
type ProjectUpdate struct {
	Title        *string
	Description  *string
	Category     *string
	Technologies *[]string
	ImageURL     *string
	RepoURL      *string
	LiveURL      *string
	Featured     *bool
}

// Empty reports whether the update carries no fields at all.
func (u ProjectUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Category == nil &&
		u.Technologies == nil && u.ImageURL == nil && u.RepoURL == nil &&
		u.LiveURL == nil && u.Featured == nil
}
