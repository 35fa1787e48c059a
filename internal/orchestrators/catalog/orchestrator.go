// Package catalog implements the catalog orchestrator: it loads the raw tables
// from a source bank and builds operators from them
package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/operator-codex/internal/classification"
	"github.com/KirkDiggler/operator-codex/internal/entities/gamedata"
	"github.com/KirkDiggler/operator-codex/internal/errors"
	"github.com/KirkDiggler/operator-codex/internal/operator"
	"github.com/KirkDiggler/operator-codex/internal/services/catalog"
	"github.com/KirkDiggler/operator-codex/internal/sourcebank"
)

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	Bank           sourcebank.Bank
	Classification *classification.Config
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Bank == nil {
		vb.RequiredField("Bank")
	}
	if c.Classification == nil {
		vb.RequiredField("Classification")
	}

	return vb.Build()
}

// Orchestrator implements the catalog.Service interface
type Orchestrator struct {
	bank           sourcebank.Bank
	classification *classification.Config

	mu      sync.Mutex
	dataset *dataset
}

// dataset is everything decoded from the bank
type dataset struct {
	characters map[string]json.RawMessage
	voices     map[string][]gamedata.Voice
	skins      map[string][]gamedata.Skin
	tables     *gamedata.Tables
	missing    []string
}

// New creates a new catalog orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		bank:           cfg.Bank,
		classification: cfg.Classification,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ catalog.Service = (*Orchestrator)(nil)

// LoadTables decodes every table on first use
func (o *Orchestrator) LoadTables(ctx context.Context) (*catalog.LoadTablesOutput, error) {
	data, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	return &catalog.LoadTablesOutput{
		Tables:     data.tables,
		Characters: len(data.characters),
		Missing:    slices.Clone(data.missing),
	}, nil
}

// GetOperator builds one operator
func (o *Orchestrator) GetOperator(ctx context.Context, input *catalog.GetOperatorInput) (*catalog.GetOperatorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.ID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	data, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	raw, ok := data.characters[input.ID]
	if !ok {
		return nil, errors.NotFoundf("operator %s not found", input.ID).WithOperator(input.ID)
	}

	op, err := o.build(data, input.ID, raw, input.Recruitable)
	if err != nil {
		return nil, err
	}

	return &catalog.GetOperatorOutput{Operator: op}, nil
}

// ListOperators builds every operator record, in id order
func (o *Orchestrator) ListOperators(ctx context.Context, input *catalog.ListOperatorsInput) (*catalog.ListOperatorsOutput, error) {
	if input == nil {
		input = &catalog.ListOperatorsInput{}
	}

	data, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	recruitable := make(map[string]bool, len(input.RecruitableIDs))
	for _, id := range input.RecruitableIDs {
		recruitable[id] = true
	}

	ids := make([]string, 0, len(data.characters))
	for id := range data.characters {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	output := &catalog.ListOperatorsOutput{
		Operators: make([]*operator.Operator, 0, len(ids)),
	}

	for _, id := range ids {
		raw := data.characters[id]

		// Tokens, traps and other non-playable records share character_table
		profession := gjson.GetBytes(raw, "profession").String()
		if !o.classification.IsOperatorProfession(profession) {
			continue
		}

		op, err := o.build(data, id, raw, recruitable[id])
		if err != nil {
			slog.WarnContext(ctx, "skipping operator",
				"operator_id", id,
				"error", err)
			output.Skipped++
			continue
		}

		if op.Unavailable && !input.IncludeUnavailable {
			continue
		}

		output.Operators = append(output.Operators, op)
	}

	slog.InfoContext(ctx, "built operators",
		"count", len(output.Operators),
		"skipped", output.Skipped)

	return output, nil
}

func (o *Orchestrator) build(data *dataset, id string, raw json.RawMessage, recruitable bool) (*operator.Operator, error) {
	var record gamedata.Character
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to decode character %s", id).
			WithOperator(id).
			WithTable(sourcebank.CharacterTable)
	}

	return operator.New(&operator.Config{
		ID:             id,
		Data:           &record,
		Voices:         data.voices[id],
		Skins:          data.skins[id],
		Recruitable:    recruitable,
		Tables:         data.tables,
		Classification: o.classification,
	})
}
