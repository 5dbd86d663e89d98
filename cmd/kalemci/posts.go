// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"kalemci/internal/models"
	"kalemci/internal/storage"
	"kalemci/internal/textutil"
)

func (a *app) runPost(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: kalemci post <list|get|create|update|delete|search|related|view|upload> [flags]")
	}

	switch args[0] {
	case "list":
		return a.postList(ctx, args[1:])
	case "get":
		return a.postGet(ctx, args[1:])
	case "create":
		return a.postCreate(ctx, args[1:])
	case "update":
		return a.postUpdate(ctx, args[1:])
	case "delete":
		return a.postDelete(ctx, args[1:])
	case "search":
		return a.postSearch(ctx, args[1:])
	case "related":
		return a.postRelated(ctx, args[1:])
	case "view":
		return a.postView(ctx, args[1:])
	case "upload":
		return a.uploadImage(ctx, storage.BlogImagePrefix, args[1:])
	default:
		return fmt.Errorf("unknown post subcommand %q", args[0])
	}
}

func (a *app) postList(ctx context.Context, args []string) error {
	fs := newFlagSet("post list")
	order := fs.String("order", "createdAt", "sort field")
	asc := fs.Bool("asc", false, "sort ascending instead of descending")
	published := fs.Bool("published", false, "only published posts")
	category := fs.String("category", "", "filter by category")
	tag := fs.String("tag", "", "filter by tag")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var posts []models.Post
	switch {
	case *category != "":
		posts = a.posts.ByCategory(ctx, *category)
	case *tag != "":
		posts = a.posts.ByTag(ctx, *tag)
	case *published:
		posts = a.posts.Published(ctx)
	default:
		posts = a.posts.All(ctx, *order, !*asc)
	}

	if len(posts) == 0 {
		a.out.Info("no posts")
		return nil
	}
	for _, p := range posts {
		a.printPostLine(p)
	}
	return nil
}

func (a *app) postGet(ctx context.Context, args []string) error {
	fs := newFlagSet("post get")
	id := fs.String("id", "", "post id")
	sl := fs.String("slug", "", "post slug")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var p *models.Post
	switch {
	case *id != "":
		p = a.posts.ByID(ctx, *id)
	case *sl != "":
		p = a.posts.BySlug(ctx, *sl)
	default:
		return fmt.Errorf("post get requires -id or -slug")
	}

	if p == nil {
		a.out.Info("post not found")
		return nil
	}
	a.printPost(*p)
	return nil
}

// postView is the public read path: it fetches a published post by slug
// and records the view. The counter update is fire-and-forget.
func (a *app) postView(ctx context.Context, args []string) error {
	fs := newFlagSet("post view")
	sl := fs.String("slug", "", "post slug")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *sl == "" {
		return fmt.Errorf("post view requires -slug")
	}

	p := a.posts.BySlug(ctx, *sl)
	if p == nil || !p.Published {
		a.out.Info("post not found")
		return nil
	}
	a.posts.IncrementViews(ctx, p.ID.Hex())
	a.printPost(*p)
	return nil
}

func (a *app) postCreate(ctx context.Context, args []string) error {
	fs := newFlagSet("post create")
	title := fs.String("title", "", "post title")
	sl := fs.String("slug", "", "explicit slug (derived from title when empty)")
	content := fs.String("content", "", "post body")
	contentFile := fs.String("content-file", "", "read post body from file")
	excerpt := fs.String("excerpt", "", "short summary")
	category := fs.String("category", "", "category")
	tags := fs.String("tags", "", "comma-separated tags")
	published := fs.Bool("published", false, "publish immediately")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *title == "" {
		return fmt.Errorf("post create requires -title")
	}
	if err := a.requireAuth(ctx); err != nil {
		return err
	}

	body := *content
	if *contentFile != "" {
		data, err := os.ReadFile(*contentFile)
		if err != nil {
			return fmt.Errorf("read content file: %w", err)
		}
		body = string(data)
	}

	id, err := a.posts.Create(ctx, models.NewPost{
		Title:     *title,
		Slug:      *sl,
		Content:   body,
		Excerpt:   *excerpt,
		Category:  *category,
		Tags:      splitTags(*tags),
		Published: *published,
	})
	if err != nil {
		return err
	}
	a.out.Success("post created: %s", id)
	return nil
}

func (a *app) postUpdate(ctx context.Context, args []string) error {
	fs := newFlagSet("post update")
	id := fs.String("id", "", "post id")
	title := fs.String("title", "", "new title")
	sl := fs.String("slug", "", "new slug")
	content := fs.String("content", "", "new body")
	contentFile := fs.String("content-file", "", "read new body from file")
	excerpt := fs.String("excerpt", "", "new summary")
	category := fs.String("category", "", "new category")
	tags := fs.String("tags", "", "comma-separated tags")
	published := fs.Bool("published", false, "published state")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("post update requires -id")
	}
	if err := a.requireAuth(ctx); err != nil {
		return err
	}

	// Only flags explicitly passed become part of the partial update.
	var in models.PostUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			in.Title = title
		case "slug":
			in.Slug = sl
		case "content":
			in.Content = content
		case "excerpt":
			in.Excerpt = excerpt
		case "category":
			in.Category = category
		case "tags":
			t := splitTags(*tags)
			in.Tags = &t
		case "published":
			in.Published = published
		}
	})
	if *contentFile != "" {
		data, err := os.ReadFile(*contentFile)
		if err != nil {
			return fmt.Errorf("read content file: %w", err)
		}
		body := string(data)
		in.Content = &body
	}

	if err := a.posts.Update(ctx, *id, in); err != nil {
		return err
	}
	a.out.Success("post %s updated", *id)
	return nil
}

func (a *app) postDelete(ctx context.Context, args []string) error {
	fs := newFlagSet("post delete")
	id := fs.String("id", "", "post id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("post delete requires -id")
	}
	if err := a.requireAuth(ctx); err != nil {
		return err
	}

	if err := a.posts.Delete(ctx, *id); err != nil {
		return err
	}
	a.out.Success("post %s deleted", *id)
	return nil
}

func (a *app) postSearch(ctx context.Context, args []string) error {
	fs := newFlagSet("post search")
	if err := fs.Parse(args); err != nil {
		return err
	}
	term := strings.Join(fs.Args(), " ")
	if term == "" {
		return fmt.Errorf("usage: kalemci post search <term>")
	}

	posts := a.posts.Search(ctx, term)
	if len(posts) == 0 {
		a.out.Info("no posts matching %q", term)
		return nil
	}
	for _, p := range posts {
		a.printPostLine(p)
	}
	return nil
}

func (a *app) postRelated(ctx context.Context, args []string) error {
	fs := newFlagSet("post related")
	id := fs.String("id", "", "post id to exclude")
	category := fs.String("category", "", "category to match")
	limit := fs.Int("limit", 3, "maximum results")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *category == "" {
		return fmt.Errorf("post related requires -category")
	}

	posts := a.posts.Related(ctx, *id, *category, *limit)
	if len(posts) == 0 {
		a.out.Info("no related posts")
		return nil
	}
	for _, p := range posts {
		a.printPostLine(p)
	}
	return nil
}

// uploadImage sends a local file to the blob store under the given prefix
// and prints the public URL. Shared by post upload and project upload.
func (a *app) uploadImage(ctx context.Context, prefix string, args []string) error {
	fs := newFlagSet("upload")
	file := fs.String("file", "", "path to the image file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("upload requires -file")
	}
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	if a.clients.Blob == nil {
		return fmt.Errorf("object storage not configured, set S3_ENDPOINT and credentials")
	}

	f, err := os.Open(*file)
	if err != nil {
		return fmt.Errorf("open %s: %w", *file, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", *file, err)
	}

	name := filepath.Base(*file)
	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := a.clients.Blob.UploadImage(ctx, prefix, name, contentType, f, info.Size())
	if err != nil {
		return err
	}
	a.out.Success("uploaded: %s", url)
	return nil
}

func (a *app) printPostLine(p models.Post) {
	state := "draft"
	if p.Published {
		state = "published"
	}
	a.out.Info("%s  %-9s %s  %s (%s goruntulenme)",
		p.ID.Hex(), state, textutil.FormatDateShort(p.CreatedAt), p.Title,
		textutil.FormatNumber(p.Views))
}

func (a *app) printPost(p models.Post) {
	a.out.Info("%s", p.Title)
	a.out.Info("slug: %s  kategori: %s  %s", p.Slug, p.Category, p.ReadingTime)
	if len(p.Tags) > 0 {
		a.out.Info("etiketler: %s", strings.Join(p.Tags, ", "))
	}
	a.out.Info("%s  %s goruntulenme", textutil.FormatDate(p.CreatedAt), textutil.FormatNumber(p.Views))
	if p.Excerpt != "" {
		a.out.Info("%s", p.Excerpt)
	}
	if p.Content != "" {
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, p.Content)
	}
}

// splitTags parses a comma-separated tag list, dropping empty entries.
func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
