// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"kalemci/internal/models"
	"kalemci/internal/storage"
	"kalemci/internal/textutil"
)

func (a *app) runProject(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: kalemci project <list|get|create|update|delete|upload> [flags]")
	}

	switch args[0] {
	case "list":
		return a.projectList(ctx, args[1:])
	case "get":
		return a.projectGet(ctx, args[1:])
	case "create":
		return a.projectCreate(ctx, args[1:])
	case "update":
		return a.projectUpdate(ctx, args[1:])
	case "delete":
		return a.projectDelete(ctx, args[1:])
	case "upload":
		return a.uploadImage(ctx, storage.ProjectImagePrefix, args[1:])
	default:
		return fmt.Errorf("unknown project subcommand %q", args[0])
	}
}

func (a *app) projectList(ctx context.Context, args []string) error {
	fs := newFlagSet("project list")
	featured := fs.Bool("featured", false, "only featured projects")
	category := fs.String("category", "", "filter by category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var projects []models.Project
	switch {
	case *category != "":
		projects = a.projects.ByCategory(ctx, *category)
	case *featured:
		projects = a.projects.Featured(ctx)
	default:
		projects = a.projects.All(ctx)
	}

	if len(projects) == 0 {
		a.out.Info("no projects")
		return nil
	}
	for _, p := range projects {
		a.printProjectLine(p)
	}
	return nil
}

func (a *app) projectGet(ctx context.Context, args []string) error {
	fs := newFlagSet("project get")
	id := fs.String("id", "", "project id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("project get requires -id")
	}

	p := a.projects.ByID(ctx, *id)
	if p == nil {
		a.out.Info("project not found")
		return nil
	}
	a.printProject(*p)
	return nil
}

func (a *app) projectCreate(ctx context.Context, args []string) error {
	fs := newFlagSet("project create")
	title := fs.String("title", "", "project title")
	description := fs.String("description", "", "project description")
	category := fs.String("category", "", "category")
	tech := fs.String("tech", "", "comma-separated technologies")
	imageURL := fs.String("image-url", "", "cover image URL")
	repoURL := fs.String("repo-url", "", "source repository URL")
	liveURL := fs.String("live-url", "", "live site URL")
	featured := fs.Bool("featured", false, "show on the front page")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *title == "" {
		return fmt.Errorf("project create requires -title")
	}
	if err := a.requireAuth(ctx); err != nil {
		return err
	}

	id, err := a.projects.Create(ctx, models.NewProject{
		Title:        *title,
		Description:  *description,
		Category:     *category,
		Technologies: splitTags(*tech),
		ImageURL:     *imageURL,
		RepoURL:      *repoURL,
		LiveURL:      *liveURL,
		Featured:     *featured,
	})
	if err != nil {
		return err
	}
	a.out.Success("project created: %s", id)
	return nil
}

func (a *app) projectUpdate(ctx context.Context, args []string) error {
	fs := newFlagSet("project update")
	id := fs.String("id", "", "project id")
	title := fs.String("title", "", "new title")
	description := fs.String("description", "", "new description")
	category := fs.String("category", "", "new category")
	tech := fs.String("tech", "", "comma-separated technologies")
	imageURL := fs.String("image-url", "", "new cover image URL")
	repoURL := fs.String("repo-url", "", "new repository URL")
	liveURL := fs.String("live-url", "", "new live site URL")
	featured := fs.Bool("featured", false, "featured state")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("project update requires -id")
	}
	if err := a.requireAuth(ctx); err != nil {
		return err
	}

	// Only flags explicitly passed become part of the partial update.
	var in models.ProjectUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			in.Title = title
		case "description":
			in.Description = description
		case "category":
			in.Category = category
		case "tech":
			t := splitTags(*tech)
			in.Technologies = &t
		case "image-url":
			in.ImageURL = imageURL
		case "repo-url":
			in.RepoURL = repoURL
		case "live-url":
			in.LiveURL = liveURL
		case "featured":
			in.Featured = featured
		}
	})

	if err := a.projects.Update(ctx, *id, in); err != nil {
		return err
	}
	a.out.Success("project %s updated", *id)
	return nil
}

func (a *app) projectDelete(ctx context.Context, args []string) error {
	fs := newFlagSet("project delete")
	id := fs.String("id", "", "project id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("project delete requires -id")
	}
	if err := a.requireAuth(ctx); err != nil {
		return err
	}

	if err := a.projects.Delete(ctx, *id); err != nil {
		return err
	}
	a.out.Success("project %s deleted", *id)
	return nil
}

func (a *app) printProjectLine(p models.Project) {
	mark := " "
	if p.Featured {
		mark = "*"
	}
	a.out.Info("%s %s %s  %s", p.ID.Hex(), mark, textutil.FormatDateShort(p.CreatedAt), p.Title)
}

func (a *app) printProject(p models.Project) {
	a.out.Info("%s", p.Title)
	if p.Category != "" {
		a.out.Info("kategori: %s", p.Category)
	}
	if len(p.Technologies) > 0 {
		a.out.Info("teknolojiler: %s", strings.Join(p.Technologies, ", "))
	}
	if p.RepoURL != "" {
		a.out.Info("repo: %s", p.RepoURL)
	}
	if p.LiveURL != "" {
		a.out.Info("site: %s", p.LiveURL)
	}
	if p.ImageURL != "" {
		a.out.Info("gorsel: %s", p.ImageURL)
	}
	a.out.Info("%s", textutil.FormatDate(p.CreatedAt))
	if p.Description != "" {
		a.out.Info("%s", p.Description)
	}
}
