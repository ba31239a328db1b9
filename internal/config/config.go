package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/chris-lally/lally/internal/errors"
)

const (
	// ConfigFileName is the name of the consumer configuration file.
	ConfigFileName = "components.json"

	// DefaultComponentsAlias is the default import alias for components.
	DefaultComponentsAlias = "@/components"

	// DefaultUIAlias is the default import alias for ui subcomponents.
	DefaultUIAlias = "@/components/ui"

	// DefaultUtilsAlias is the default import alias for shared utilities.
	DefaultUtilsAlias = "@/lib/utils"

	// RegistryNamespace is the registry namespace served by this tool.
	RegistryNamespace = "@chris-lally"

	// DefaultRegistryURL is the default item URL template for connect.
	// The {name} placeholder is replaced by consumers of the config.
	DefaultRegistryURL = "https://registry.chrislally.dev/r/{name}.json"

	// aliasShorthand marks an alias that maps into the src directory.
	aliasShorthand = "@/"
)

// Config represents the consumer's components.json configuration.
type Config struct {
	// Schema is the optional $schema URL carried by shadcn-style configs.
	Schema string `json:"$schema,omitempty"`

	// Aliases holds the consumer's import alias preferences.
	Aliases AliasConfig `json:"aliases,omitempty"`

	// Registries maps registry namespaces to item URL templates
	// containing a {name} placeholder.
	Registries map[string]string `json:"registries,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// AliasConfig contains the consumer's import alias preferences.
type AliasConfig struct {
	// Components is the alias for component files.
	Components string `json:"components,omitempty"`

	// UI is the alias for ui subcomponent files.
	UI string `json:"ui,omitempty"`

	// Utils is the alias for shared utility files.
	Utils string `json:"utils,omitempty"`
}

// AliasContext holds the three resolved alias strings for one invocation.
// It is derived once from the consumer configuration and never mutated.
type AliasContext struct {
	Components string
	UI         string
	Utils      string
}

// DefaultAliases returns the alias context used when no consumer exists,
// e.g. during registry export.
func DefaultAliases() AliasContext {
	return AliasContext{
		Components: DefaultComponentsAlias,
		UI:         DefaultUIAlias,
		Utils:      DefaultUtilsAlias,
	}
}

// Resolution is the result of resolving a consumer project's aliases.
type Resolution struct {
	// Aliases are the resolved alias strings.
	Aliases AliasContext

	// ComponentsRoot is the absolute path the components alias maps to.
	ComponentsRoot string

	// SourceRoot is the absolute path registry file targets are written
	// under. When the components alias uses the @/ shorthand this is
	// <dir>/src, otherwise the working directory itself.
	SourceRoot string
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Aliases: AliasConfig{
			Components: DefaultComponentsAlias,
			UI:         DefaultUIAlias,
			Utils:      DefaultUtilsAlias,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for components.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E101").
				WithDetail("No components.json found in " + filepath.Dir(path)).
				WithSuggestion("Run 'lally init' to set up this project")
		}
		return nil, errors.New("E102").Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E102").
			WithDetail("Failed to parse components.json: " + err.Error()).
			WithSuggestion("Check that components.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E103").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E103").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
// Each alias defaults independently.
func (c *Config) applyDefaults() {
	if c.Aliases.Components == "" {
		c.Aliases.Components = DefaultComponentsAlias
	}
	if c.Aliases.UI == "" {
		c.Aliases.UI = DefaultUIAlias
	}
	if c.Aliases.Utils == "" {
		c.Aliases.Utils = DefaultUtilsAlias
	}
}

// AliasContext returns the resolved alias strings for this config.
func (c *Config) AliasContext() AliasContext {
	return AliasContext{
		Components: c.Aliases.Components,
		UI:         c.Aliases.UI,
		Utils:      c.Aliases.Utils,
	}
}

// SetRegistry records a registry namespace → URL template mapping,
// preserving any unrelated entries.
func (c *Config) SetRegistry(namespace, url string) {
	if c.Registries == nil {
		c.Registries = make(map[string]string)
	}
	c.Registries[namespace] = url
}

// Resolve loads the consumer configuration from dir and resolves the
// alias context plus filesystem roots for materialization.
func Resolve(dir string) (*Resolution, error) {
	cfg, err := Load(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(dir)
}

// Resolve computes the resolution for an already loaded config.
func (c *Config) Resolve(dir string) (*Resolution, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	ctx := c.AliasContext()

	res := &Resolution{
		Aliases:        ctx,
		ComponentsRoot: ResolveAlias(abs, ctx.Components),
		SourceRoot:     abs,
	}
	if strings.HasPrefix(ctx.Components, aliasShorthand) {
		res.SourceRoot = filepath.Join(abs, "src")
	}

	return res, nil
}

// ResolveAlias maps an alias string to an absolute filesystem path.
// An alias beginning with the @/ shorthand maps into <dir>/src; any
// other alias is treated as a path relative to dir (absolute paths are
// kept as-is).
func ResolveAlias(dir, alias string) string {
	if rest, ok := strings.CutPrefix(alias, aliasShorthand); ok {
		return filepath.Join(dir, "src", filepath.FromSlash(rest))
	}
	if filepath.IsAbs(alias) {
		return alias
	}
	return filepath.Join(dir, alias)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}
