// Package operator assembles display-ready projections of one operator by joining its
// raw character record against the auxiliary game tables.
//
// An Operator is built once per raw record and never changes afterwards. Every accessor
// recomputes its projection from the raw record on each call and never mutates it.
package operator

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/operator-codex/internal/classification"
	"github.com/KirkDiggler/operator-codex/internal/entities/gamedata"
	"github.com/KirkDiggler/operator-codex/internal/errors"
)

// EntityType is the rpg-toolkit entity type of an operator
const EntityType = "operator"

// Compile-time check that Operator can be handed to toolkit code as an entity
var _ core.Entity = (*Operator)(nil)

// Config holds everything needed to build one operator
type Config struct {
	// ID is the character_table key, e.g. char_002_amiya
	ID string
	// Data is the raw character_table record
	Data *gamedata.Character
	// Voices and Skins are this operator's slices of charword_table and skin_table
	Voices []gamedata.Voice
	Skins  []gamedata.Skin
	// Recruitable marks operators obtainable through recruitment
	Recruitable bool

	Tables         *gamedata.Tables
	Classification *classification.Config
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ID", c.ID, vb)
	if c.Data == nil {
		vb.RequiredField("Data")
	}
	if c.Tables == nil {
		vb.RequiredField("Tables")
	}
	if c.Classification == nil {
		vb.RequiredField("Classification")
	}

	return vb.Build()
}

// Operator is one playable character with its classification resolved
type Operator struct {
	ID          string
	Name        string
	Appellation string
	WikiName    string
	Rarity      int

	Class     string
	ClassSub  string
	ClassCode int
	Type      string
	Tags      []string

	Limited     bool
	Unavailable bool
	Recruitable bool

	data   *gamedata.Character
	voices []gamedata.Voice
	skins  []gamedata.Skin
	tables *gamedata.Tables
}

// New resolves classification and tags for a raw record.
// A record without phases, or with a profession, sub-profession or position the
// classification tables do not know, breaks the data contract and is rejected.
func New(cfg *Config) (*Operator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	data := cfg.Data
	if len(data.Phases) == 0 {
		return nil, errors.FailedPreconditionf("operator %s has no phases", cfg.ID).WithOperator(cfg.ID)
	}

	className, classCode, ok := cfg.Classification.Profession(data.Profession)
	if !ok {
		return nil, errors.FailedPreconditionf("unknown profession %q", data.Profession).WithOperator(cfg.ID)
	}

	subProfession, ok := cfg.Tables.SubProfession(data.SubProfessionID)
	if !ok {
		return nil, errors.FailedPreconditionf("unknown sub-profession %q", data.SubProfessionID).WithOperator(cfg.ID)
	}

	typeName, ok := cfg.Classification.Type(data.Position)
	if !ok {
		return nil, errors.FailedPreconditionf("unknown position %q", data.Position).WithOperator(cfg.ID)
	}

	op := &Operator{
		ID:          cfg.ID,
		Name:        data.Name,
		Appellation: data.Appellation,
		WikiName:    data.Name,
		Rarity:      int(data.Rarity),
		Class:       className,
		ClassSub:    subProfession.SubProfessionName,
		ClassCode:   classCode,
		Type:        typeName,
		Limited:     cfg.Classification.IsLimited(data.Name),
		Unavailable: cfg.Classification.IsUnavailable(data.Name),
		Recruitable: cfg.Recruitable,
		data:        data,
		voices:      cfg.Voices,
		skins:       cfg.Skins,
		tables:      cfg.Tables,
	}

	op.Tags = buildTags(cfg.ID, data, className, typeName, cfg.Classification)

	if override, ok := cfg.Classification.Override(cfg.ID); ok {
		op.applyOverride(override)
	}

	return op, nil
}

func (o *Operator) applyOverride(override classification.Override) {
	o.Name = override.Name
	if override.Appellation != "" {
		o.Appellation = override.Appellation
	}
	if override.WikiName != "" {
		o.WikiName = override.WikiName
	}
}

// GetID returns the character id
func (o *Operator) GetID() string {
	return o.ID
}

// GetType returns the entity type for rpg-toolkit
func (o *Operator) GetType() string {
	return EntityType
}
