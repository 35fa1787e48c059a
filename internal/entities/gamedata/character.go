package gamedata

import "github.com/KirkDiggler/operator-codex/internal/blackboard"

// Character is one record of character_table
type Character struct {
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Appellation     string           `json:"appellation"`
	Position        string           `json:"position"`
	TagList         []string         `json:"tagList"`
	ItemUsage       string           `json:"itemUsage"`
	ItemDesc        string           `json:"itemDesc"`
	Rarity          Rarity           `json:"rarity"`
	Profession      string           `json:"profession"`
	SubProfessionID string           `json:"subProfessionId"`
	Trait           *Trait           `json:"trait"`
	Phases          []Phase          `json:"phases"`
	Skills          []CharacterSkill `json:"skills"`
	Talents         []Talent         `json:"talents"`
	PotentialRanks  []PotentialRank  `json:"potentialRanks"`
	FavorKeyFrames  []KeyFrame       `json:"favorKeyFrames"`
}

// Condition gates an unlock on promotion phase and level
type Condition struct {
	Phase EvolvePhase `json:"phase"`
	Level int         `json:"level"`
}

// Trait is the class trait with per-tier overrides
type Trait struct {
	Candidates []TraitCandidate `json:"candidates"`
}

// TraitCandidate is one tier of a trait.
// The upstream key is misspelled "overrideDescripton".
type TraitCandidate struct {
	UnlockCondition       Condition             `json:"unlockCondition"`
	RequiredPotentialRank int                   `json:"requiredPotentialRank"`
	Blackboard            blackboard.Blackboard `json:"blackboard"`
	OverrideDescription   string                `json:"overrideDescripton"`
}

// Phase is one promotion tier
type Phase struct {
	CharacterPrefabKey  string     `json:"characterPrefabKey"`
	RangeID             string     `json:"rangeId"`
	MaxLevel            int        `json:"maxLevel"`
	AttributesKeyFrames []KeyFrame `json:"attributesKeyFrames"`
	EvolveCost          []ItemCost `json:"evolveCost"`
}

// KeyFrame is an attribute snapshot at a level
type KeyFrame struct {
	Level int        `json:"level"`
	Data  Attributes `json:"data"`
}

// Attributes are the combat stats of one keyframe
type Attributes struct {
	MaxHP            int     `json:"maxHp"`
	Atk              int     `json:"atk"`
	Def              int     `json:"def"`
	MagicResistance  float64 `json:"magicResistance"`
	Cost             int     `json:"cost"`
	BlockCnt         int     `json:"blockCnt"`
	MoveSpeed        float64 `json:"moveSpeed"`
	AttackSpeed      float64 `json:"attackSpeed"`
	BaseAttackTime   float64 `json:"baseAttackTime"`
	RespawnTime      int     `json:"respawnTime"`
	HPRecoveryPerSec float64 `json:"hpRecoveryPerSec"`
	SPRecoveryPerSec float64 `json:"spRecoveryPerSec"`
	MaxDeployCount   int     `json:"maxDeployCount"`
	MaxDeckStackCnt  int     `json:"maxDeckStackCnt"`
	TauntLevel       int     `json:"tauntLevel"`
	MassLevel        int     `json:"massLevel"`
	BaseForceLevel   int     `json:"baseForceLevel"`
	StunImmune       bool    `json:"stunImmune"`
	SilenceImmune    bool    `json:"silenceImmune"`
	SleepImmune      bool    `json:"sleepImmune"`
	FrozenImmune     bool    `json:"frozenImmune"`
	LevitateImmune   bool    `json:"levitateImmune"`
}

// ItemCost is a material requirement
type ItemCost struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
	Type  string `json:"type"`
}

// CharacterSkill is a skill slot on a character
type CharacterSkill struct {
	SkillID         string            `json:"skillId"`
	UnlockCond      Condition         `json:"unlockCond"`
	LevelUpCostCond []LevelUpCostCond `json:"levelUpCostCond"`
}

// LevelUpCostCond is one mastery tier of a skill slot
type LevelUpCostCond struct {
	UnlockCond  Condition  `json:"unlockCond"`
	LvlUpTime   int        `json:"lvlUpTime"`
	LevelUpCost []ItemCost `json:"levelUpCost"`
}

// Talent is a talent slot; candidates are ordered by tier
type Talent struct {
	Candidates []TalentCandidate `json:"candidates"`
}

// TalentCandidate is one tier of a talent
type TalentCandidate struct {
	UnlockCondition       Condition             `json:"unlockCondition"`
	RequiredPotentialRank int                   `json:"requiredPotentialRank"`
	Name                  string                `json:"name"`
	Description           string                `json:"description"`
	Blackboard            blackboard.Blackboard `json:"blackboard"`
}

// PotentialRank is one potential bonus
type PotentialRank struct {
	Type        Enum   `json:"type"`
	Description string `json:"description"`
}
