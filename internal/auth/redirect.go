// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package auth

import "strings"

// Page paths the redirect policy is written against. The protected prefix
// is a string-prefix match; the login page is an exact match.
const (
	ProtectedPrefix = "/admin/"
	LoginPath       = "/admin/login.html"
	DashboardPath   = "/admin/dashboard.html"
)

// Target evaluates the redirect policy for the given page path and
// authentication state. It returns the path to navigate to and true when a
// redirect is required:
//
//   - a protected page other than the login page, without a session,
//     redirects to the login page;
//   - the login page, with a session, redirects to the dashboard;
//   - anything else stays put.
//
// Pure function of its inputs so the policy is testable without any
// navigation side effect. It must be re-evaluated on every session change:
// the session can expire or be revoked while a page stays open.
func Target(path string, authenticated bool) (string, bool) {
	onLogin := path == LoginPath
	switch {
	case strings.HasPrefix(path, ProtectedPrefix) && !onLogin && !authenticated:
		return LoginPath, true
	case onLogin && authenticated:
		return DashboardPath, true
	}
	return "", false
}
