package operator

import "github.com/KirkDiggler/operator-codex/internal/markup"

// BuildingSkill is one infrastructure buff the operator grants
type BuildingSkill struct {
	Unlocked    int    `json:"bs_unlocked"`
	Name        string `json:"bs_name"`
	Description string `json:"bs_desc"`
}

// BuildingSkills joins the operator's buff grants against the global buff table.
// Grants pointing at unknown buffs are dropped.
func (o *Operator) BuildingSkills() []BuildingSkill {
	skills := []BuildingSkill{}

	char, ok := o.tables.Building.Chars[o.ID]
	if !ok {
		return skills
	}

	for _, slot := range char.BuffChar {
		for _, grant := range slot.BuffData {
			buff, ok := o.tables.Building.Buffs[grant.BuffID]
			if !ok {
				continue
			}

			skills = append(skills, BuildingSkill{
				Unlocked:    int(grant.Cond.Phase),
				Name:        buff.BuffName,
				Description: markup.Strip(buff.Description),
			})
		}
	}

	return skills
}
