package catalog

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/operator-codex/internal/entities/gamedata"
	"github.com/KirkDiggler/operator-codex/internal/errors"
	"github.com/KirkDiggler/operator-codex/internal/sourcebank"
)

// load decodes the dataset once; a failed load is retried on the next call
func (o *Orchestrator) load(ctx context.Context) (*dataset, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.dataset != nil {
		return o.dataset, nil
	}

	data := &dataset{tables: &gamedata.Tables{}}

	if err := o.required(ctx, sourcebank.CharacterTable, &data.characters); err != nil {
		return nil, err
	}
	if err := o.required(ctx, sourcebank.UniequipTable, &data.tables.Uniequip); err != nil {
		return nil, err
	}

	var items gamedata.ItemTable
	var handbook gamedata.HandbookInfoTable
	optional := []struct {
		name string
		v    any
	}{
		{sourcebank.SkillTable, &data.tables.Skills},
		{sourcebank.ItemTable, &items},
		{sourcebank.BuildingData, &data.tables.Building},
		{sourcebank.HandbookInfoTable, &handbook},
		{sourcebank.BattleEquipTable, &data.tables.BattleEquip},
	}
	for _, table := range optional {
		found, err := o.optional(ctx, table.name, table.v)
		if err != nil {
			return nil, err
		}
		if !found {
			data.missing = append(data.missing, table.name)
		}
	}
	data.tables.Items = items.Items
	data.tables.Handbook = handbook.HandbookDict

	voices, found, err := groupByChar[gamedata.Voice](ctx, o.bank, sourcebank.CharwordTable, "charWords")
	if err != nil {
		return nil, err
	}
	if !found {
		data.missing = append(data.missing, sourcebank.CharwordTable)
	}
	data.voices = voices

	skins, found, err := groupByChar[gamedata.Skin](ctx, o.bank, sourcebank.SkinTable, "charSkins")
	if err != nil {
		return nil, err
	}
	if !found {
		data.missing = append(data.missing, sourcebank.SkinTable)
	}
	data.skins = skins

	slog.DebugContext(ctx, "loaded tables",
		"characters", len(data.characters),
		"skills", len(data.tables.Skills),
		"missing", data.missing)

	o.dataset = data
	return data, nil
}

func (o *Orchestrator) required(ctx context.Context, name string, v any) error {
	err := sourcebank.Decode(ctx, o.bank, name, v)
	if errors.IsNotFound(err) {
		return errors.WrapWithCodef(err, errors.CodeFailedPrecondition, "required table %s is missing", name).WithTable(name)
	}
	return err
}

// optional reports whether the table existed; absent tables leave v untouched
func (o *Orchestrator) optional(ctx context.Context, name string, v any) (bool, error) {
	err := sourcebank.Decode(ctx, o.bank, name, v)
	switch {
	case err == nil:
		return true, nil
	case errors.IsNotFound(err):
		slog.WarnContext(ctx, "optional table missing, treating as empty", "table", name)
		return false, nil
	default:
		return false, err
	}
}

// groupByChar buckets the entries under path by their charId, keeping document
// order. Entries are decoded one at a time straight off the raw bytes, so the
// rest of the table is never unmarshalled.
func groupByChar[T any](ctx context.Context, bank sourcebank.Bank, name, path string) (map[string][]T, bool, error) {
	groups := make(map[string][]T)

	raw, err := bank.Table(ctx, name)
	if errors.IsNotFound(err) {
		slog.WarnContext(ctx, "optional table missing, treating as empty", "table", name)
		return groups, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if !gjson.ValidBytes(raw) {
		return nil, false, errors.DataLossf("table %s is not valid JSON", name).WithTable(name)
	}

	var decodeErr error
	gjson.GetBytes(raw, path).ForEach(func(key, value gjson.Result) bool {
		var entry T
		if err := json.Unmarshal([]byte(value.Raw), &entry); err != nil {
			decodeErr = errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to decode %s entry %s", name, key.String()).WithTable(name)
			return false
		}

		charID := value.Get("charId").String()
		groups[charID] = append(groups[charID], entry)
		return true
	})
	if decodeErr != nil {
		return nil, false, decodeErr
	}

	return groups, true, nil
}
