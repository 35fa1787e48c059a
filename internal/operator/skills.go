package operator

import (
	"github.com/KirkDiggler/operator-codex/internal/blackboard"
	"github.com/KirkDiggler/operator-codex/internal/entities/gamedata"
	"github.com/KirkDiggler/operator-codex/internal/markup"
)

const skillIconPrefix = "skill_icon_"

// SkillSummary identifies one skill slot
type SkillSummary struct {
	SkillID string `json:"skill_no"`
	Index   int    `json:"skill_index"`
	Name    string `json:"skill_name"`
	Icon    string `json:"skill_icon"`
}

// SkillLevel is one proficiency level of a skill with its description resolved
type SkillLevel struct {
	Level       int           `json:"skill_level"`
	SkillType   gamedata.Enum `json:"skill_type"`
	SPType      gamedata.Enum `json:"sp_type"`
	SPInit      int           `json:"sp_init"`
	SPCost      int           `json:"sp_cost"`
	Duration    float64       `json:"duration"`
	Description string        `json:"description"`
	MaxCharge   int           `json:"max_charge"`
}

// SkillCost is one material of a mastery tier
type SkillCost struct {
	MasteryLevel int    `json:"mastery_level"`
	MaterialID   string `json:"use_material_id"`
	Count        int    `json:"use_number"`
}

// Skills groups the four skill projections. A slot whose skill is missing from
// skill_table appears in none of them.
type Skills struct {
	Summary      []SkillSummary          `json:"skills"`
	IDs          []string                `json:"skills_id"`
	Costs        map[string][]SkillCost  `json:"skills_cost"`
	Descriptions map[string][]SkillLevel `json:"skills_desc"`
}

// Skills joins the skill slots against skill_table
func (o *Operator) Skills() Skills {
	out := Skills{
		Summary:      []SkillSummary{},
		IDs:          []string{},
		Costs:        make(map[string][]SkillCost),
		Descriptions: make(map[string][]SkillLevel),
	}

	for i, slot := range o.data.Skills {
		skill, ok := o.tables.Skills[slot.SkillID]
		if !ok || skill.IsEmpty() {
			continue
		}

		code := slot.SkillID
		out.IDs = append(out.IDs, code)

		if _, ok := out.Descriptions[code]; !ok {
			out.Descriptions[code] = []SkillLevel{}
		}
		if _, ok := out.Costs[code]; !ok {
			out.Costs[code] = []SkillCost{}
		}

		for lv, level := range skill.Levels {
			out.Descriptions[code] = append(out.Descriptions[code], SkillLevel{
				Level:       lv + 1,
				SkillType:   level.SkillType,
				SPType:      level.SPData.SPType,
				SPInit:      level.SPData.InitSP,
				SPCost:      level.SPData.SPCost,
				Duration:    level.Duration,
				Description: markup.Unescape(blackboard.Resolve(level.Blackboard, level.Description)),
				MaxCharge:   level.SPData.MaxChargeTime,
			})
		}

		for mastery, cond := range slot.LevelUpCostCond {
			for _, cost := range cond.LevelUpCost {
				out.Costs[code] = append(out.Costs[code], SkillCost{
					MasteryLevel: mastery + 1,
					MaterialID:   cost.ID,
					Count:        cost.Count,
				})
			}
		}

		out.Summary = append(out.Summary, SkillSummary{
			SkillID: code,
			Index:   i + 1,
			Name:    skillName(skill),
			Icon:    skillIcon(skill),
		})
	}

	return out
}

func skillName(skill gamedata.Skill) string {
	if len(skill.Levels) == 0 {
		return ""
	}
	return skill.Levels[0].Name
}

func skillIcon(skill gamedata.Skill) string {
	if skill.IconID != "" {
		return skillIconPrefix + skill.IconID
	}
	return skillIconPrefix + skill.SkillID
}
