package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/faizmokh/stint/internal/files"
)

func TestParseExampleYAML(t *testing.T) {
	cfg, err := Parse([]byte(ExampleYAML()))
	if err != nil {
		t.Fatalf("Parse(ExampleYAML) error = %v", err)
	}

	if got, want := cfg.CategoryNames(), []string{"MEETING", "MISC", "WORK"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("CategoryNames() = %v, want %v", got, want)
	}
	if got := cfg.Category(); got != "MISC" {
		t.Fatalf("Category() = %q, want MISC", got)
	}
}

func TestResolveCategoryMatchesNameAndAlias(t *testing.T) {
	cfg, err := Parse([]byte(`categories:
  work:
    alias: ["w", "Job"]
  admin:
    alias: []
`))
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}

	cases := map[string]string{
		"work":  "WORK",
		" WORK": "WORK",
		"w":     "WORK",
		"JOB":   "WORK",
		"admin": "ADMIN",
	}
	for token, want := range cases {
		got, ok := cfg.ResolveCategory(token)
		if !ok || got != want {
			t.Fatalf("ResolveCategory(%q) = (%q, %v), want (%q, true)", token, got, ok, want)
		}
	}

	if _, ok := cfg.ResolveCategory("sleep"); ok {
		t.Fatalf("ResolveCategory(sleep) ok = true, want false")
	}
	if _, ok := cfg.ResolveCategory(""); ok {
		t.Fatalf("ResolveCategory(\"\") ok = true, want false")
	}
}

func TestParseRejectsLunchOutOfRange(t *testing.T) {
	_, err := Parse([]byte("lunch_minutes: -5\n"))
	if err == nil {
		t.Fatalf("expected validation error for negative lunch_minutes")
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseRejectsDuplicateAlias(t *testing.T) {
	_, err := Parse([]byte(`categories:
  work:
    alias: ["x"]
  admin:
    alias: ["x"]
`))
	if err == nil {
		t.Fatalf("expected validation error for duplicate alias")
	}
	if !strings.Contains(err.Error(), "already used") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDefaultCategoryFallsBack(t *testing.T) {
	if got := Default().Category(); got != FallbackCategory {
		t.Fatalf("Default().Category() = %q, want %q", got, FallbackCategory)
	}

	cfg := &Config{
		DefaultCategory: "w",
		Categories:      map[string]Category{"work": {Alias: []string{"w"}}},
	}
	if got := cfg.Category(); got != "WORK" {
		t.Fatalf("Category() = %q, want WORK", got)
	}
}

func TestEditorSelection(t *testing.T) {
	t.Setenv("EDITOR", "nano")

	if got := (&Config{OpenCommand: "code -w"}).Editor(); got != "code -w" {
		t.Fatalf("Editor() = %q, want %q", got, "code -w")
	}
	if got := Default().Editor(); got != "nano" {
		t.Fatalf("Editor() = %q, want nano", got)
	}

	t.Setenv("EDITOR", "")
	if got := Default().Editor(); got != "vi" {
		t.Fatalf("Editor() = %q, want vi", got)
	}
}

func TestLoadDiscoversConfigUnderBase(t *testing.T) {
	base := t.TempDir()
	t.Setenv(files.HomeEnv, base)
	t.Setenv("HOME", t.TempDir())
	if wd, err := os.Getwd(); err == nil {
		t.Cleanup(func() { _ = os.Chdir(wd) })
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	cfg, used, err := Load("")
	if err != nil {
		t.Fatalf("Load without file error = %v", err)
	}
	if used != "" || len(cfg.Categories) != 0 {
		t.Fatalf("Load without file = (%+v, %q), want defaults", cfg, used)
	}

	path := filepath.Join(base, FileName)
	if err := os.WriteFile(path, []byte("lunch_minutes: 30\ncategories:\n  work: {}\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, used, err = Load("")
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if used != path {
		t.Fatalf("Load used %q, want %q", used, path)
	}
	if cfg.LunchMinutes != 30 {
		t.Fatalf("LunchMinutes = %d, want 30", cfg.LunchMinutes)
	}
	if _, ok := cfg.ResolveCategory("work"); !ok {
		t.Fatalf("ResolveCategory(work) ok = false after Load")
	}
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}
