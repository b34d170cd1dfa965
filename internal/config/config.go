package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/faizmokh/stint/internal/files"
)

const (
	KeyFile            = "file"
	KeyBackupDir       = "backup_dir"
	KeyDefaultCategory = "default_category"
	KeyLunchMinutes    = "lunch_minutes"
	KeyOpenCommand     = "open_command"
	KeyCategories      = "categories"

	// FallbackCategory is used when no default category is configured.
	FallbackCategory = "MISC"
	// FileName is the config file looked up inside the stint base directory.
	FileName = "config.yaml"
	// HomeFileName is the config file looked up in the home and working directories.
	HomeFileName = ".stint.yaml"
)

// Config is built once per invocation and handed to every command.
type Config struct {
	File            string              `mapstructure:"file"`
	BackupDir       string              `mapstructure:"backup_dir"`
	DefaultCategory string              `mapstructure:"default_category"`
	LunchMinutes    int                 `mapstructure:"lunch_minutes" validate:"gte=0,lte=1440"`
	OpenCommand     string              `mapstructure:"open_command"`
	Categories      map[string]Category `mapstructure:"categories"`
}

// Category lists the alternative spellings accepted for a category name.
type Category struct {
	Alias []string `mapstructure:"alias"`
}

// ExampleYAML returns the template written by "config create".
func ExampleYAML() string {
	return `# stint configuration
# file: "~/.stint/stint.log"
# backup_dir: "~/.stint/backups"

default_category: "misc"
lunch_minutes: 0
open_command: ""

categories:
  work:
    alias: ["w"]
  meeting:
    alias: ["m", "mtg"]
  misc:
    alias: []
`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{Categories: map[string]Category{}}
}

// Parse validates configuration from raw YAML content.
func Parse(content []byte) (*Config, error) {
	local := newViper()
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidate(local)
}

// Load reads the config at path. An empty path searches the default locations
// and falls back to Default when none exists. It returns the file actually used,
// which is empty when defaults apply.
func Load(path string) (*Config, string, error) {
	if strings.TrimSpace(path) == "" {
		found, err := Discover()
		if err != nil {
			return nil, "", err
		}
		if found == "" {
			return Default(), "", nil
		}
		path = found
	}

	expanded, err := files.ExpandHome(path)
	if err != nil {
		return nil, "", err
	}

	local := newViper()
	local.SetConfigFile(expanded)
	local.SetConfigType("yaml")
	if err := local.ReadInConfig(); err != nil {
		return nil, "", fmt.Errorf("read config %s: %w", expanded, err)
	}

	cfg, err := loadAndValidate(local)
	if err != nil {
		return nil, "", fmt.Errorf("config %s: %w", expanded, err)
	}
	return cfg, expanded, nil
}

// SearchPaths lists the config locations in lookup order.
func SearchPaths() ([]string, error) {
	base, err := files.ResolveBasePath()
	if err != nil {
		return nil, err
	}
	paths := []string{filepath.Join(base, FileName)}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, HomeFileName))
	}
	return append(paths, HomeFileName), nil
}

// DefaultPath is where "config create" writes when no config is in use.
func DefaultPath() (string, error) {
	paths, err := SearchPaths()
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

// Discover returns the first existing config file, or "" when there is none.
func Discover() (string, error) {
	paths, err := SearchPaths()
	if err != nil {
		return "", err
	}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("checking config file failed: %w", err)
		}
	}
	return "", nil
}

// ResolveCategory matches token against the configured names and aliases,
// ignoring case. It returns the canonical upper-case name.
func (c *Config) ResolveCategory(token string) (string, bool) {
	want := normalize(token)
	if want == "" || c == nil {
		return "", false
	}
	for name, category := range c.Categories {
		if normalize(name) == want {
			return normalize(name), true
		}
		for _, alias := range category.Alias {
			if normalize(alias) == want {
				return normalize(name), true
			}
		}
	}
	return "", false
}

// CategoryNames returns the canonical category names in alphabetical order.
func (c *Config) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories))
	for name := range c.Categories {
		names = append(names, normalize(name))
	}
	sort.Strings(names)
	return names
}

// Category returns the category pauses are booked on when none is given.
func (c *Config) Category() string {
	if name := normalize(c.DefaultCategory); name != "" {
		if resolved, ok := c.ResolveCategory(name); ok {
			return resolved
		}
		return name
	}
	return FallbackCategory
}

// Editor returns the command used to open files: open_command, then $EDITOR, then vi.
func (c *Config) Editor() string {
	if strings.TrimSpace(c.OpenCommand) != "" {
		return c.OpenCommand
	}
	if editor := strings.TrimSpace(os.Getenv("EDITOR")); editor != "" {
		return editor
	}
	return "vi"
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyFile, "")
	v.SetDefault(KeyBackupDir, "")
	v.SetDefault(KeyDefaultCategory, "")
	v.SetDefault(KeyLunchMinutes, 0)
	v.SetDefault(KeyOpenCommand, "")
	v.SetDefault(KeyCategories, map[string]any{})
	return v
}

func loadAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if cfg.Categories == nil {
		cfg.Categories = map[string]Category{}
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateCategories(cfg.Categories); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateCategories(categories map[string]Category) error {
	owners := make(map[string]string)
	for name := range categories {
		key := normalize(name)
		if strings.ContainsAny(key, "; \t") {
			return fmt.Errorf("validation failed: category %q must be a single word without ';'", name)
		}
		owners[key] = key
	}
	for name, category := range categories {
		for _, alias := range category.Alias {
			key := normalize(alias)
			if key == "" {
				return fmt.Errorf("validation failed: categories.%s has an empty alias", name)
			}
			if owner, exists := owners[key]; exists && owner != normalize(name) {
				return fmt.Errorf("validation failed: alias %q of %s already used by %s", alias, normalize(name), owner)
			}
			owners[key] = normalize(name)
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
