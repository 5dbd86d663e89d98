// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the documents stored in the backend collections
// and the explicit input structs used to create and partially update them.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a blog post document in the "posts" collection.
//
// Slug is unique by convention only; the store does not enforce it.
// Views never decreases. ReadingTime is derived from Content and recomputed
// whenever Content changes. CreatedAt is immutable after creation; UpdatedAt
// is refreshed by the store on every mutation.
type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Content     string             `bson:"content" json:"content"`
	Excerpt     string             `bson:"excerpt" json:"excerpt"`
	Category    string             `bson:"category" json:"category"`
	Tags        []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Published   bool               `bson:"published" json:"published"`
	Views       int64              `bson:"views" json:"views"`
	ReadingTime string             `bson:"readingTime" json:"reading_time"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updated_at"`
}

// NewPost carries the caller-supplied fields for creating a post. Derived
// fields (slug from title, reading time, the views counter, timestamps) are
// filled in by the store.
type NewPost struct {
	Title     string
	Slug      string // optional; derived from Title when empty
	Content   string
	Excerpt   string
	Category  string
	Tags      []string
	Published bool
}

// PostUpdate is a partial update: only non-nil fields are written. Fields
// left nil are untouched by the store's partial-update semantics.
type PostUpdate struct {
	Title     *string
	Slug      *string
	Content   *string
	Excerpt   *string
	Category  *string
	Tags      *[]string
	Published *bool
}

// Empty reports whether the update carries no fields at all.
func (u PostUpdate) Empty() bool {
	return u.Title == nil && u.Slug == nil && u.Content == nil &&
		u.Excerpt == nil && u.Category == nil && u.Tags == nil && u.Published == nil
}
