package slug

import "testing"

// TestGenerate exercises the slug generator with a broad range of inputs
// covering typical titles, Turkish characters, special characters, and
// boundary conditions.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// --- Normal titles ---
		{
			name:  "simple two words",
			input: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "title with year",
			input: "Hello World 2026",
			want:  "hello-world-2026",
		},
		{
			name:  "already lowercase",
			input: "already lowercase",
			want:  "already-lowercase",
		},
		{
			name:  "single word",
			input: "GoLang",
			want:  "golang",
		},

		// --- Turkish characters ---
		{
			name:  "dotted capital I and umlauts",
			input: "İstanbul Günlüğü",
			want:  "istanbul-gunlugu",
		},
		{
			name:  "all lowercase turkish letters",
			input: "çğışöü",
			want:  "cgisou",
		},
		{
			name:  "all uppercase turkish letters",
			input: "ÇĞİŞÖÜ",
			want:  "cgisou",
		},
		{
			name:  "dotless lowercase i",
			input: "Kayıt Defteri",
			want:  "kayit-defteri",
		},
		{
			name:  "mixed turkish sentence",
			input: "Yazılım Geliştirme Üzerine Düşünceler",
			want:  "yazilim-gelistirme-uzerine-dusunceler",
		},

		// --- Special characters ---
		{
			name:  "punctuation marks",
			input: "Hello, World! How's it going?",
			want:  "hello-world-hows-it-going",
		},
		{
			name:  "ampersand and at sign",
			input: "Rock & Roll @ the Arena",
			want:  "rock-roll-the-arena",
		},
		{
			name:  "parentheses and brackets",
			input: "Version (2.0) [Beta]",
			want:  "version-20-beta",
		},
		{
			name:  "hash and dollar",
			input: "Issue #42 costs $100",
			want:  "issue-42-costs-100",
		},
		{
			name:  "non-turkish accents stripped",
			input: "Café Résumé",
			want:  "caf-rsum",
		},

		// --- Whitespace handling ---
		{
			name:  "leading and trailing spaces",
			input: "  hello world  ",
			want:  "hello-world",
		},
		{
			name:  "multiple consecutive spaces collapsed",
			input: "hello    world",
			want:  "hello-world",
		},
		{
			name:  "tabs collapse to hyphen",
			input: "hello\tworld",
			want:  "hello-world",
		},
		{
			name:  "newlines collapse to hyphen",
			input: "hello\n\nworld",
			want:  "hello-world",
		},

		// --- Hyphen handling ---
		{
			name:  "leading hyphens trimmed",
			input: "---hello world",
			want:  "hello-world",
		},
		{
			name:  "trailing hyphens trimmed",
			input: "hello world---",
			want:  "hello-world",
		},
		{
			name:  "multiple hyphens between words",
			input: "hello---world",
			want:  "hello-world",
		},
		{
			name:  "single hyphen preserved",
			input: "well-known fact",
			want:  "well-known-fact",
		},

		// --- Edge cases ---
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only spaces",
			input: "     ",
			want:  "",
		},
		{
			name:  "only special characters",
			input: "!@#$%^&*()",
			want:  "",
		},
		{
			name:  "single character",
			input: "A",
			want:  "a",
		},
		{
			name:  "all numbers",
			input: "123456",
			want:  "123456",
		},
		{
			name:  "date-like string",
			input: "2026-02-25",
			want:  "2026-02-25",
		},

		// --- Realistic blog titles ---
		{
			name:  "tech blog title",
			input: "How to Deploy Go Apps on Kubernetes (2026 Edition)",
			want:  "how-to-deploy-go-apps-on-kubernetes-2026-edition",
		},
		{
			name:  "turkish blog title with punctuation",
			input: "Web Tasarımında Renk Seçimi: Kapsamlı Bir Rehber",
			want:  "web-tasariminda-renk-secimi-kapsamli-bir-rehber",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.input)
			if got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestGenerate_Idempotent verifies that generating a slug from an already
// valid slug produces the same result.
func TestGenerate_Idempotent(t *testing.T) {
	slugs := []string{
		"hello-world",
		"istanbul-gunlugu",
		"my-blog-post-2026",
		"a",
		"123",
		"",
	}

	for _, s := range slugs {
		t.Run(s, func(t *testing.T) {
			got := Generate(s)
			if got != s {
				t.Errorf("Generate(%q) = %q, want idempotent result %q", s, got, s)
			}
		})
	}
}

// TestGenerate_DoubleApplication verifies slug(slug(x)) == slug(x) for
// inputs that are not yet slugs.
func TestGenerate_DoubleApplication(t *testing.T) {
	inputs := []string{
		"İstanbul Günlüğü",
		"Hello, World!",
		"  --spaced -- out--  ",
		"Çok Güzel Bir Gün",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once := Generate(input)
			twice := Generate(once)
			if twice != once {
				t.Errorf("Generate(Generate(%q)): got %q, want %q", input, twice, once)
			}
		})
	}
}
