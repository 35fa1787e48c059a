// Package classification holds the static lookup tables that map raw character codes to
// display names and tags, plus the name- and id-based special cases.
package classification

import (
	_ "embed"
	"os"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/operator-codex/internal/errors"
)

//go:embed default.yaml
var defaultDocument []byte

// Profession maps a raw profession code to its display name
type Profession struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Hidden is a tag appended only for a fixed set of identities
type Hidden struct {
	Tag string   `yaml:"tag"`
	IDs []string `yaml:"ids"`
}

// Override replaces the names of an identity that shares a raw record shape with another
type Override struct {
	Name        string `yaml:"name"`
	Appellation string `yaml:"appellation"`
	WikiName    string `yaml:"wiki_name"`
}

// Config is the classification document
type Config struct {
	Professions []Profession        `yaml:"professions"`
	Types       map[string]string   `yaml:"types"`
	HighRarity  map[int]string      `yaml:"high_rarity"`
	Limited     []string            `yaml:"limited"`
	Unavailable []string            `yaml:"unavailable"`
	Hidden      Hidden              `yaml:"hidden"`
	Overrides   map[string]Override `yaml:"overrides"`
}

// Default returns the embedded classification document
func Default() (*Config, error) {
	return Parse(defaultDocument)
}

// Load reads a classification document from path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("classification file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read classification file %s", path)
	}

	return Parse(data)
}

// Parse decodes and validates a classification document
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse classification document")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the tables the aggregator cannot work without are present
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("classification config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateNotEmpty("professions", len(c.Professions), vb)
	errors.ValidateNotEmpty("types", len(c.Types), vb)

	codes := make([]string, 0, len(c.Professions))
	for i, p := range c.Professions {
		errors.ValidateRequired("professions["+strconv.Itoa(i)+"].code", p.Code, vb)
		errors.ValidateRequired("professions["+strconv.Itoa(i)+"].name", p.Name, vb)
		codes = append(codes, p.Code)
	}
	errors.ValidateUnique("professions", codes, vb)

	if len(c.Hidden.IDs) > 0 {
		errors.ValidateRequired("hidden.tag", c.Hidden.Tag, vb)
	}

	for id, o := range c.Overrides {
		if id == "" {
			vb.Field("overrides", "id cannot be empty")
		}
		errors.ValidateRequired("overrides."+id+".name", o.Name, vb)
	}

	return vb.Build()
}

// Profession returns the display name and 1-based rank of a profession code
func (c *Config) Profession(code string) (string, int, bool) {
	for i, p := range c.Professions {
		if p.Code == code {
			return p.Name, i + 1, true
		}
	}
	return "", 0, false
}

// IsOperatorProfession reports whether code is one of the playable professions.
// Tokens, traps and other summoned units use codes outside the table.
func (c *Config) IsOperatorProfession(code string) bool {
	_, _, ok := c.Profession(code)
	return ok
}

// Type returns the display name of a deployment position code
func (c *Config) Type(code string) (string, bool) {
	name, ok := c.Types[code]
	return name, ok
}

// RarityTag returns the extra tag for a high rarity tier
func (c *Config) RarityTag(rarity int) (string, bool) {
	tag, ok := c.HighRarity[rarity]
	return tag, ok
}

// IsLimited reports whether the operator name is limited-banner only
func (c *Config) IsLimited(name string) bool {
	return slices.Contains(c.Limited, name)
}

// IsUnavailable reports whether the operator name cannot be obtained
func (c *Config) IsUnavailable(name string) bool {
	return slices.Contains(c.Unavailable, name)
}

// HiddenTag returns the hidden category tag if id belongs to the hidden set
func (c *Config) HiddenTag(id string) (string, bool) {
	if slices.Contains(c.Hidden.IDs, id) {
		return c.Hidden.Tag, true
	}
	return "", false
}

// Override returns the identity override for id
func (c *Config) Override(id string) (Override, bool) {
	o, ok := c.Overrides[id]
	return o, ok
}
