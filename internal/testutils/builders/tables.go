package builders

import (
	"encoding/json"

	"github.com/KirkDiggler/operator-codex/internal/entities/gamedata"
)

// TablesBuilder provides a fluent interface for building auxiliary tables
type TablesBuilder struct {
	tables *gamedata.Tables
}

// NewTablesBuilder creates tables holding the sub-professions used by the default
// character builder and nothing else
func NewTablesBuilder() *TablesBuilder {
	return &TablesBuilder{
		tables: &gamedata.Tables{
			Items:       map[string]gamedata.Item{},
			Skills:      map[string]gamedata.Skill{},
			Handbook:    map[string]gamedata.Handbook{},
			BattleEquip: gamedata.BattleEquipTable{},
			Building: gamedata.BuildingData{
				Chars: map[string]gamedata.BuildingChar{},
				Buffs: map[string]gamedata.Buff{},
			},
			Uniequip: gamedata.UniequipTable{
				EquipDict:   map[string]gamedata.Equip{},
				MissionList: map[string]gamedata.Mission{},
				CharEquip:   map[string][]string{},
				SubProfDict: map[string]gamedata.SubProfession{
					"lord":       {SubProfessionID: "lord", SubProfessionName: "领主"},
					"corecaster": {SubProfessionID: "corecaster", SubProfessionName: "中坚术师"},
				},
			},
		},
	}
}

// WithSubProfession registers a sub-profession
func (b *TablesBuilder) WithSubProfession(id, name string) *TablesBuilder {
	b.tables.Uniequip.SubProfDict[id] = gamedata.SubProfession{SubProfessionID: id, SubProfessionName: name}
	return b
}

// WithItem registers an item
func (b *TablesBuilder) WithItem(id, description string) *TablesBuilder {
	b.tables.Items[id] = gamedata.Item{ItemID: id, Description: description}
	return b
}

// WithSkill registers a skill_table record
func (b *TablesBuilder) WithSkill(skill gamedata.Skill) *TablesBuilder {
	b.tables.Skills[skill.SkillID] = skill
	return b
}

// WithRawSkill registers a record under id, even if it is empty
func (b *TablesBuilder) WithRawSkill(id string, skill gamedata.Skill) *TablesBuilder {
	b.tables.Skills[id] = skill
	return b
}

// WithBuff registers a global infrastructure buff
func (b *TablesBuilder) WithBuff(buff gamedata.Buff) *TablesBuilder {
	b.tables.Building.Buffs[buff.BuffID] = buff
	return b
}

// WithBuffGrants registers the buff slots a character grants
func (b *TablesBuilder) WithBuffGrants(charID string, slots ...gamedata.BuffChar) *TablesBuilder {
	b.tables.Building.Chars[charID] = gamedata.BuildingChar{CharID: charID, BuffChar: slots}
	return b
}

// WithHandbook registers a handbook entry
func (b *TablesBuilder) WithHandbook(charID string, sections ...gamedata.StorySection) *TablesBuilder {
	b.tables.Handbook[charID] = gamedata.Handbook{CharID: charID, StoryTextAudio: sections}
	return b
}

// WithEquip registers an equip definition
func (b *TablesBuilder) WithEquip(equip gamedata.Equip) *TablesBuilder {
	b.tables.Uniequip.EquipDict[equip.UniEquipID] = equip
	return b
}

// WithMission registers a module mission
func (b *TablesBuilder) WithMission(mission gamedata.Mission) *TablesBuilder {
	b.tables.Uniequip.MissionList[mission.UniEquipMissionID] = mission
	return b
}

// WithCharEquip assigns equip ids to a character
func (b *TablesBuilder) WithCharEquip(charID string, equipIDs ...string) *TablesBuilder {
	b.tables.Uniequip.CharEquip[charID] = equipIDs
	return b
}

// WithBattleEquip registers a battle payload for an equip
func (b *TablesBuilder) WithBattleEquip(equipID string, payload string) *TablesBuilder {
	b.tables.BattleEquip[equipID] = json.RawMessage(payload)
	return b
}

// Build returns the built tables
func (b *TablesBuilder) Build() *gamedata.Tables {
	return b.tables
}
