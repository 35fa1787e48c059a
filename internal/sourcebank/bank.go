// Package sourcebank supplies raw game-data tables by name
package sourcebank

//go:generate mockgen -destination=mock/mock_bank.go -package=sourcebankmock github.com/KirkDiggler/operator-codex/internal/sourcebank Bank

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/operator-codex/internal/errors"
)

// Table names as they appear in the game-data dump
const (
	CharacterTable    = "character_table"
	SkillTable        = "skill_table"
	ItemTable         = "item_table"
	BuildingData      = "building_data"
	HandbookInfoTable = "handbook_info_table"
	UniequipTable     = "uniequip_table"
	BattleEquipTable  = "battle_equip_table"
	CharwordTable     = "charword_table"
	SkinTable         = "skin_table"
)

const (
	errTableNameEmpty  = "table name cannot be empty"
	errTableNameFormat = "table name %q must not contain path separators"
)

// Names lists every table the catalog reads, required ones first
var Names = []string{
	CharacterTable,
	UniequipTable,
	SkillTable,
	ItemTable,
	BuildingData,
	HandbookInfoTable,
	BattleEquipTable,
	CharwordTable,
	SkinTable,
}

// Bank returns the raw JSON bytes of a table
type Bank interface {
	// Table returns the raw document for name
	// Returns errors.InvalidArgument for empty or malformed names
	// Returns errors.NotFound if the table does not exist
	// Returns errors.Unavailable if the backing store cannot be reached
	Table(ctx context.Context, name string) ([]byte, error)
}

// Decode fetches a table and unmarshals it into v
func Decode(ctx context.Context, bank Bank, name string, v any) error {
	raw, err := bank.Table(ctx, name)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to decode table %s", name).WithTable(name)
	}

	return nil
}

func validateName(name string) error {
	if name == "" {
		return errors.InvalidArgument(errTableNameEmpty)
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return errors.InvalidArgumentf(errTableNameFormat, name)
	}
	return nil
}
