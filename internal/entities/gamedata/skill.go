package gamedata

import "github.com/KirkDiggler/operator-codex/internal/blackboard"

// Skill is one record of skill_table
type Skill struct {
	SkillID string       `json:"skillId"`
	IconID  string       `json:"iconId"`
	Hidden  bool         `json:"hidden"`
	Levels  []SkillLevel `json:"levels"`
}

// IsEmpty reports whether the record carries nothing (an "{}" entry upstream)
func (s Skill) IsEmpty() bool {
	return s.SkillID == "" && s.IconID == "" && len(s.Levels) == 0
}

// SkillLevel is one proficiency level of a skill
type SkillLevel struct {
	Name         string                `json:"name"`
	RangeID      string                `json:"rangeId"`
	Description  string                `json:"description"`
	SkillType    Enum                  `json:"skillType"`
	DurationType Enum                  `json:"durationType"`
	SPData       SPData                `json:"spData"`
	PrefabID     string                `json:"prefabId"`
	Duration     float64               `json:"duration"`
	Blackboard   blackboard.Blackboard `json:"blackboard"`
}

// SPData is the skill point configuration of a level
type SPData struct {
	SPType        Enum    `json:"spType"`
	MaxChargeTime int     `json:"maxChargeTime"`
	SPCost        int     `json:"spCost"`
	InitSP        int     `json:"initSp"`
	Increment     float64 `json:"increment"`
}
