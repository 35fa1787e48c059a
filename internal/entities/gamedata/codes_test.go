package gamedata_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/operator-codex/internal/entities/gamedata"
)

type CodesTestSuite struct {
	suite.Suite
}

func TestCodesSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) TestEvolvePhase() {
	testCases := []struct {
		name     string
		raw      string
		expected gamedata.EvolvePhase
		wantErr  bool
	}{
		{name: "number", raw: `2`, expected: 2},
		{name: "symbolic", raw: `"PHASE_1"`, expected: 1},
		{name: "null", raw: `null`, expected: 0},
		{name: "garbage", raw: `"PHASE_X"`, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			var p gamedata.EvolvePhase
			err := json.Unmarshal([]byte(tc.raw), &p)
			if tc.wantErr {
				s.Error(err)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.expected, p)
		})
	}
}

func (s *CodesTestSuite) TestRarity() {
	var zeroBased gamedata.Rarity
	s.Require().NoError(json.Unmarshal([]byte(`5`), &zeroBased))
	s.Equal(gamedata.Rarity(6), zeroBased)

	var tier gamedata.Rarity
	s.Require().NoError(json.Unmarshal([]byte(`"TIER_4"`), &tier))
	s.Equal(gamedata.Rarity(4), tier)

	var bad gamedata.Rarity
	s.Error(json.Unmarshal([]byte(`"TIER_"`), &bad))
}

func (s *CodesTestSuite) TestEnum() {
	var level gamedata.SkillLevel
	s.Require().NoError(json.Unmarshal(
		[]byte(`{"skillType":1,"spData":{"spType":"INCREASE_WITH_TIME"},"durationType":null}`),
		&level,
	))

	s.Equal(gamedata.Enum("1"), level.SkillType)
	s.Equal(gamedata.Enum("INCREASE_WITH_TIME"), level.SPData.SPType)
	s.Equal(gamedata.Enum(""), level.DurationType)
}

func (s *CodesTestSuite) TestSkillIsEmpty() {
	var skill gamedata.Skill
	s.Require().NoError(json.Unmarshal([]byte(`{}`), &skill))
	s.True(skill.IsEmpty())

	s.False(gamedata.Skill{SkillID: "skchr_amiya_1"}.IsEmpty())
}

func (s *CodesTestSuite) TestDisplaySkinDrawer() {
	var skin gamedata.Skin
	raw := `{"skinId":"char_002_amiya@test#1","displaySkin":{"skinName":null,"drawerName":null,"drawerList":["A","B"]}}`
	s.Require().NoError(json.Unmarshal([]byte(raw), &skin))

	s.Equal("", skin.DisplaySkin.SkinName)
	s.Equal("A, B", skin.DisplaySkin.Drawer())

	skin.DisplaySkin.DrawerName = "C"
	s.Equal("C", skin.DisplaySkin.Drawer())
}

func (s *CodesTestSuite) TestCharacterDecode() {
	raw := `{
		"name": "阿米娅",
		"appellation": "Amiya",
		"rarity": "TIER_5",
		"profession": "CASTER",
		"subProfessionId": "corecaster",
		"position": "RANGED",
		"tagList": ["输出"],
		"trait": {"candidates": [{"blackboard": [{"key": "atk", "value": 0.1}], "overrideDescripton": null}]},
		"phases": [{"maxLevel": 50, "attributesKeyFrames": [{"level": 1, "data": {"maxHp": 600, "atk": 200}}], "evolveCost": null}]
	}`

	var c gamedata.Character
	s.Require().NoError(json.Unmarshal([]byte(raw), &c))

	s.Equal(gamedata.Rarity(5), c.Rarity)
	s.Require().NotNil(c.Trait)
	s.Equal("", c.Trait.Candidates[0].OverrideDescription)
	s.Require().Len(c.Phases, 1)
	s.Equal(600, c.Phases[0].AttributesKeyFrames[0].Data.MaxHP)
	s.Nil(c.Phases[0].EvolveCost)
}
