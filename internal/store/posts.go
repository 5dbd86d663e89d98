// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides document-collection access for all kalemci
// entities. Each store wraps one backend collection and exposes typed
// query and mutation methods.
//
// Error policy: read methods log failures and return empty results so
// callers can always render what they got; mutation methods return the
// error for the caller to surface; the view counter is fire-and-forget.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kalemci/internal/models"
	"kalemci/internal/slug"
	"kalemci/internal/textutil"
)

// Field names shared by the post and project collections.
const (
	fieldCreatedAt = "createdAt"
	fieldUpdatedAt = "updatedAt"
)

// PostStore handles all post-related collection operations.
type PostStore struct {
	col *mongo.Collection
}

// NewPostStore creates a PostStore over the "posts" collection.
func NewPostStore(db *mongo.Database) *PostStore {
	return &PostStore{col: db.Collection("posts")}
}

// All returns every post sorted by the given field, descending unless desc
// is false. Returns an empty list on read failure.
func (s *PostStore) All(ctx context.Context, orderField string, desc bool) []models.Post {
	dir := -1
	if !desc {
		dir = 1
	}
	opts := options.Find().SetSort(bson.D{{Key: orderField, Value: dir}})
	return s.find(ctx, "list posts", bson.M{}, opts)
}

// Published returns all published posts, newest first.
func (s *PostStore) Published(ctx context.Context) []models.Post {
	opts := options.Find().SetSort(bson.D{{Key: fieldCreatedAt, Value: -1}})
	return s.find(ctx, "list published posts", bson.M{"published": true}, opts)
}

// ByCategory returns published posts in the given category, newest first.
func (s *PostStore) ByCategory(ctx context.Context, category string) []models.Post {
	opts := options.Find().SetSort(bson.D{{Key: fieldCreatedAt, Value: -1}})
	filter := bson.M{"published": true, "category": category}
	return s.find(ctx, "list posts by category", filter, opts)
}

// ByTag returns published posts carrying the given tag, newest first.
// Matching a scalar against the tags array is the store's membership test.
func (s *PostStore) ByTag(ctx context.Context, tag string) []models.Post {
	opts := options.Find().SetSort(bson.D{{Key: fieldCreatedAt, Value: -1}})
	filter := bson.M{"published": true, "tags": tag}
	return s.find(ctx, "list posts by tag", filter, opts)
}

// ByID retrieves a post by its hex id. Returns nil when the post does not
// exist; transport failures also yield nil and are only visible in the logs.
func (s *PostStore) ByID(ctx context.Context, id string) *models.Post {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	var p models.Post
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	if err != nil {
		slog.Error("find post by id", "id", id, "error", err)
		return nil
	}
	return &p
}

// BySlug retrieves the first post whose slug equals the argument. Slugs are
// unique by convention only, so "first" is whatever the store returns.
func (s *PostStore) BySlug(ctx context.Context, sl string) *models.Post {
	var p models.Post
	err := s.col.FindOne(ctx, bson.M{"slug": sl}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	if err != nil {
		slog.Error("find post by slug", "slug", sl, "error", err)
		return nil
	}
	return &p
}

// Create persists a new post and returns its id. Derived fields are
// assigned here: the slug defaults from the title, the reading time comes
// from the content, views start at zero, and both timestamps come from the
// store's clock.
func (s *PostStore) Create(ctx context.Context, in models.NewPost) (string, error) {
	sl := in.Slug
	if sl == "" {
		sl = slug.Generate(in.Title)
	}

	id := primitive.NewObjectID()
	doc := bson.M{
		"title":       in.Title,
		"slug":        sl,
		"content":     in.Content,
		"excerpt":     in.Excerpt,
		"category":    in.Category,
		"tags":        in.Tags,
		"published":   in.Published,
		"views":       int64(0),
		"readingTime": textutil.ReadingTime(in.Content),
	}
	update := bson.M{
		"$set":         doc,
		"$currentDate": bson.M{fieldCreatedAt: true, fieldUpdatedAt: true},
	}

	// Upsert against a fresh id so the timestamps are server-assigned in the
	// same round trip as the insert.
	_, err := s.col.UpdateByID(ctx, id, update, options.Update().SetUpsert(true))
	if err != nil {
		return "", fmt.Errorf("create post: %w", err)
	}
	return id.Hex(), nil
}

// Update applies a partial update to the post with the given id. Only the
// provided fields are written; updatedAt is always refreshed, and a content
// change recomputes the reading time.
func (s *PostStore) Update(ctx context.Context, id string, in models.PostUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("update post: bad id %q: %w", id, err)
	}

	update := bson.M{"$currentDate": bson.M{fieldUpdatedAt: true}}
	if set := postSetFields(in); len(set) > 0 {
		update["$set"] = set
	}

	res, err := s.col.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update post: %s not found", id)
	}
	return nil
}

// Delete removes the post with the given id. Deleting a nonexistent id is
// not an error: the store reports none for that case.
func (s *PostStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("delete post: bad id %q: %w", id, err)
	}
	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// Related returns up to limit published posts in the same category,
// newest first, excluding the given post. It over-fetches by one so the
// result can still reach limit entries when the excluded post is in the
// fetched page; it can under-return when the excluded post falls outside
// that page. Documented approximation, kept as is.
func (s *PostStore) Related(ctx context.Context, excludeID, category string, limit int) []models.Post {
	if limit <= 0 {
		return nil
	}
	opts := options.Find().
		SetSort(bson.D{{Key: fieldCreatedAt, Value: -1}}).
		SetLimit(int64(limit + 1))
	filter := bson.M{"published": true, "category": category}
	posts := s.find(ctx, "list related posts", filter, opts)
	return withoutPost(posts, excludeID, limit)
}

// Search returns published posts whose title, excerpt, tags, or category
// contain the term, case-insensitively. The whole published listing is
// fetched eagerly and matched client side; fine at personal-blog sizes,
// not beyond.
func (s *PostStore) Search(ctx context.Context, term string) []models.Post {
	term = strings.ToLower(term)
	var matched []models.Post
	for _, p := range s.Published(ctx) {
		if postMatches(p, term) {
			matched = append(matched, p)
		}
	}
	return matched
}

// IncrementViews bumps the view counter by one, atomically on the store
// side. Failures are logged and swallowed: view counting must never block
// or break rendering.
func (s *PostStore) IncrementViews(ctx context.Context, id string) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		slog.Error("increment views", "id", id, "error", err)
		return
	}
	if _, err := s.col.UpdateByID(ctx, oid, bson.M{"$inc": bson.M{"views": 1}}); err != nil {
		slog.Error("increment views", "id", id, "error", err)
	}
}

// find runs a query and decodes the cursor, logging and returning an empty
// list on any failure.
func (s *PostStore) find(ctx context.Context, op string, filter bson.M, opts *options.FindOptions) []models.Post {
	cur, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		slog.Error(op, "error", err)
		return nil
	}
	defer cur.Close(ctx)

	var posts []models.Post
	if err := cur.All(ctx, &posts); err != nil {
		slog.Error(op, "error", err)
		return nil
	}
	return posts
}

// postSetFields builds the $set document from the non-nil fields of a
// partial update. A content change carries a recomputed reading time with it.
func postSetFields(in models.PostUpdate) bson.M {
	set := bson.M{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Slug != nil {
		set["slug"] = *in.Slug
	}
	if in.Content != nil {
		set["content"] = *in.Content
		set["readingTime"] = textutil.ReadingTime(*in.Content)
	}
	if in.Excerpt != nil {
		set["excerpt"] = *in.Excerpt
	}
	if in.Category != nil {
		set["category"] = *in.Category
	}
	if in.Tags != nil {
		set["tags"] = *in.Tags
	}
	if in.Published != nil {
		set["published"] = *in.Published
	}
	return set
}

// withoutPost drops the excluded post from the list and truncates it to
// limit entries.
func withoutPost(posts []models.Post, excludeID string, limit int) []models.Post {
	var out []models.Post
	for _, p := range posts {
		if p.ID.Hex() == excludeID {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

// postMatches reports whether the post matches the lowercased search term.
func postMatches(p models.Post, term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Excerpt), term) ||
		strings.Contains(strings.ToLower(p.Category), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
