package storage

import (
	"strings"
	"testing"
	"time"
)

func TestObjectKey(t *testing.T) {
	at := time.UnixMilli(1756700000000)

	tests := []struct {
		name     string
		prefix   string
		filename string
		want     string
	}{
		{"blog image", BlogImagePrefix, "kapak.png", "blog-images/1756700000000_kapak.png"},
		{"project image", ProjectImagePrefix, "ekran.jpg", "project-images/1756700000000_ekran.jpg"},
		{"filename with spaces kept as-is", BlogImagePrefix, "yeni resim.png", "blog-images/1756700000000_yeni resim.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := objectKey(tt.prefix, tt.filename, at)
			if got != tt.want {
				t.Errorf("objectKey(%q, %q) = %q, want %q", tt.prefix, tt.filename, got, tt.want)
			}
		})
	}
}

func TestObjectKeyUnique(t *testing.T) {
	a := objectKey(BlogImagePrefix, "a.png", time.UnixMilli(1))
	b := objectKey(BlogImagePrefix, "a.png", time.UnixMilli(2))
	if a == b {
		t.Errorf("keys for different timestamps should differ, both %q", a)
	}
}

func TestFileURL(t *testing.T) {
	tests := []struct {
		name   string
		client *Client
		key    string
		want   string
	}{
		{
			"path-style from endpoint",
			&Client{bucket: "kalemci", endpoint: "https://s3.example.com"},
			"blog-images/1_a.png",
			"https://s3.example.com/kalemci/blog-images/1_a.png",
		},
		{
			"public URL preferred",
			&Client{bucket: "kalemci", endpoint: "https://s3.example.com", publicURL: "https://cdn.example.com"},
			"blog-images/1_a.png",
			"https://cdn.example.com/blog-images/1_a.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.client.FileURL(tt.key)
			if got != tt.want {
				t.Errorf("FileURL(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestNewUnconfigured(t *testing.T) {
	c, err := New("", "auto", "", "", "kalemci", "")
	if err != nil {
		t.Fatalf("New with empty config: %v", err)
	}
	if c != nil {
		t.Errorf("expected nil client when storage is unconfigured, got %+v", c)
	}
}

func TestNewTrimsTrailingSlashes(t *testing.T) {
	c, err := New("https://s3.example.com/", "auto", "key", "secret", "kalemci", "https://cdn.example.com/")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.endpoint != "https://s3.example.com" {
		t.Errorf("endpoint = %q, want trailing slash removed", c.endpoint)
	}
	if c.publicURL != "https://cdn.example.com" {
		t.Errorf("publicURL = %q, want trailing slash removed", c.publicURL)
	}
	if got := c.FileURL("k"); strings.Contains(got, "//k") {
		t.Errorf("FileURL produced double slash: %q", got)
	}
}
