// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the kalemci admin CLI. It manages blog posts, projects
// and image uploads for the site, with session-backed authentication for
// all mutating commands.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"kalemci/internal/auth"
	"kalemci/internal/backend"
	"kalemci/internal/config"
	"kalemci/internal/notify"
	"kalemci/internal/prefs"
	"kalemci/internal/session"
	"kalemci/internal/store"
	"kalemci/internal/theme"
)

const usage = `kalemci - blog and portfolio admin

Usage:
  kalemci login -email <email> -password <password>
  kalemci logout
  kalemci whoami
  kalemci user add -email <email> -password <password> -name <name>
  kalemci post <list|get|create|update|delete|search|related|view|upload> [flags]
  kalemci project <list|get|create|update|delete|upload> [flags]
  kalemci theme [light|dark|toggle]
`

// app carries the shared dependencies for all subcommands.
type app struct {
	cfg      *config.Config
	prefs    *prefs.Store
	out      *notify.Notifier
	clients  *backend.Clients
	posts    *store.PostStore
	projects *store.ProjectStore
	users    *store.UserStore
	gateway  *auth.Gateway
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	p, err := prefs.Open()
	if err != nil {
		slog.Error("failed to open preferences", "error", err)
		os.Exit(1)
	}

	out := notify.New(os.Stdout, theme.Current(p))

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	// Theme switching needs no backend at all.
	if os.Args[1] == "theme" {
		if err := runTheme(p, out, os.Args[2:]); err != nil {
			out.Error("%v", err)
			os.Exit(1)
		}
		return
	}

	clients, err := backend.Connect(cfg)
	if err != nil {
		slog.Error("failed to initialize backend clients", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		clients.Close(ctx)
	}()

	users := store.NewUserStore(clients.DB)
	sessions := session.NewStore(clients.Sessions)
	gw := auth.NewGateway(users, sessions, auth.NewPrefTokens(p))

	a := &app{
		cfg:      cfg,
		prefs:    p,
		out:      out,
		clients:  clients,
		posts:    store.NewPostStore(clients.DB),
		projects: store.NewProjectStore(clients.DB),
		users:    users,
		gateway:  gw,
	}

	if err := a.run(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		out.Error("%v", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.runLogin(ctx, args)
	case "logout":
		return a.runLogout(ctx)
	case "whoami":
		return a.runWhoami(ctx)
	case "user":
		return a.runUser(ctx, args)
	case "post":
		return a.runPost(ctx, args)
	case "project":
		return a.runProject(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// newFlagSet builds a flag set that reports parse errors instead of
// exiting, so the notifier gets a chance to render them.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

// requireAuth resumes the stored session and fails the command if no one
// is signed in. Mutating commands call this before touching any store.
func (a *app) requireAuth(ctx context.Context) error {
	a.gateway.Resume(ctx)
	if !a.gateway.IsAuthenticated() {
		return fmt.Errorf("not signed in, run 'kalemci login' first")
	}
	return nil
}

func (a *app) runLogin(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}

	if _, err := a.gateway.Login(ctx, *email, *password); err != nil {
		return err
	}
	a.out.Success("signed in as %s", a.gateway.SessionLabel())
	return nil
}

func (a *app) runLogout(ctx context.Context) error {
	a.gateway.Resume(ctx)
	if err := a.gateway.Logout(ctx); err != nil {
		return err
	}
	a.out.Success("signed out")
	return nil
}

func (a *app) runWhoami(ctx context.Context) error {
	a.gateway.Resume(ctx)
	a.out.Info("%s", a.gateway.SessionLabel())
	return nil
}

func (a *app) runUser(ctx context.Context, args []string) error {
	if len(args) < 1 || args[0] != "add" {
		return fmt.Errorf("usage: kalemci user add -email <email> -password <password> -name <name>")
	}

	fs := newFlagSet("user add")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "display name")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("user add requires -email and -password")
	}

	if _, err := a.users.Create(ctx, *email, *password, *name); err != nil {
		return err
	}
	a.out.Success("user %s created", *email)
	return nil
}

func runTheme(p *prefs.Store, out *notify.Notifier, args []string) error {
	if len(args) == 0 {
		out.Info("current theme: %s", theme.Current(p).Name)
		return nil
	}

	var th theme.Theme
	var err error
	switch args[0] {
	case "toggle":
		th, err = theme.Toggle(p)
	default:
		th, err = theme.Set(p, args[0])
	}
	if err != nil {
		return err
	}
	out.Success("theme set to %s", th.Name)
	return nil
}
