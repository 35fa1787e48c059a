// Package builders provides test data builders for raw game records
package builders

import (
	"github.com/KirkDiggler/operator-codex/internal/blackboard"
	"github.com/KirkDiggler/operator-codex/internal/entities/gamedata"
)

// CharacterBuilder provides a fluent interface for building raw character records
type CharacterBuilder struct {
	data *gamedata.Character
}

// NewCharacterBuilder creates a four-star guard with two phases and no extras
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		data: &gamedata.Character{
			Name:            "测试干员",
			Appellation:     "Tester",
			Description:     "Blocks <@ba.kw>2</> enemies",
			Position:        "MELEE",
			TagList:         []string{"输出"},
			Rarity:          4,
			Profession:      "WARRIOR",
			SubProfessionID: "lord",
			Phases: []gamedata.Phase{
				{
					MaxLevel: 50,
					AttributesKeyFrames: []gamedata.KeyFrame{
						{Level: 1, Data: gamedata.Attributes{MaxHP: 800, Atk: 200}},
						{Level: 50, Data: gamedata.Attributes{MaxHP: 1200, Atk: 300}},
					},
				},
				{
					MaxLevel: 70,
					AttributesKeyFrames: []gamedata.KeyFrame{
						{Level: 1, Data: gamedata.Attributes{MaxHP: 1200, Atk: 300}},
						{Level: 70, Data: gamedata.Attributes{MaxHP: 1800, Atk: 450, BlockCnt: 2}},
					},
					EvolveCost: []gamedata.ItemCost{
						{ID: "4001", Count: 20000},
						{ID: "31013", Count: 4},
					},
				},
			},
		},
	}
}

// WithName sets the raw name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.data.Name = name
	return b
}

// WithRarity sets the star count (1-based)
func (b *CharacterBuilder) WithRarity(stars int) *CharacterBuilder {
	b.data.Rarity = gamedata.Rarity(stars)
	return b
}

// WithProfession sets profession and sub-profession codes
func (b *CharacterBuilder) WithProfession(profession, subProfession string) *CharacterBuilder {
	b.data.Profession = profession
	b.data.SubProfessionID = subProfession
	return b
}

// WithPosition sets the deployment position code
func (b *CharacterBuilder) WithPosition(position string) *CharacterBuilder {
	b.data.Position = position
	return b
}

// WithTags replaces the raw tag list
func (b *CharacterBuilder) WithTags(tags ...string) *CharacterBuilder {
	b.data.TagList = tags
	return b
}

// WithDescription sets the base trait description
func (b *CharacterBuilder) WithDescription(desc string) *CharacterBuilder {
	b.data.Description = desc
	return b
}

// WithItemText sets the usage and flavor text
func (b *CharacterBuilder) WithItemText(usage, quote string) *CharacterBuilder {
	b.data.ItemUsage = usage
	b.data.ItemDesc = quote
	return b
}

// WithTraitCandidate appends a trait tier
func (b *CharacterBuilder) WithTraitCandidate(override string, bb blackboard.Blackboard) *CharacterBuilder {
	if b.data.Trait == nil {
		b.data.Trait = &gamedata.Trait{}
	}
	b.data.Trait.Candidates = append(b.data.Trait.Candidates, gamedata.TraitCandidate{
		Blackboard:          bb,
		OverrideDescription: override,
	})
	return b
}

// WithPhases replaces the phase list
func (b *CharacterBuilder) WithPhases(phases ...gamedata.Phase) *CharacterBuilder {
	b.data.Phases = phases
	return b
}

// WithSkill appends a skill slot with one cost list per mastery tier
func (b *CharacterBuilder) WithSkill(skillID string, masteryCosts ...[]gamedata.ItemCost) *CharacterBuilder {
	slot := gamedata.CharacterSkill{SkillID: skillID}
	for _, costs := range masteryCosts {
		slot.LevelUpCostCond = append(slot.LevelUpCostCond, gamedata.LevelUpCostCond{LevelUpCost: costs})
	}
	b.data.Skills = append(b.data.Skills, slot)
	return b
}

// WithTalent appends a talent slot whose candidates are given lowest tier first
func (b *CharacterBuilder) WithTalent(candidates ...gamedata.TalentCandidate) *CharacterBuilder {
	b.data.Talents = append(b.data.Talents, gamedata.Talent{Candidates: candidates})
	return b
}

// WithPotential appends potential rank descriptions
func (b *CharacterBuilder) WithPotential(descriptions ...string) *CharacterBuilder {
	for _, desc := range descriptions {
		b.data.PotentialRanks = append(b.data.PotentialRanks, gamedata.PotentialRank{Description: desc})
	}
	return b
}

// WithFavor appends a trust keyframe
func (b *CharacterBuilder) WithFavor(level int, attrs gamedata.Attributes) *CharacterBuilder {
	b.data.FavorKeyFrames = append(b.data.FavorKeyFrames, gamedata.KeyFrame{Level: level, Data: attrs})
	return b
}

// Build returns the built record
func (b *CharacterBuilder) Build() *gamedata.Character {
	return b.data
}
