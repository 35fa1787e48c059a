package gamedata

import "encoding/json"

// UniequipTable is uniequip_table
type UniequipTable struct {
	EquipDict   map[string]Equip         `json:"equipDict"`
	MissionList map[string]Mission       `json:"missionList"`
	SubProfDict map[string]SubProfession `json:"subProfDict"`
	CharEquip   map[string][]string      `json:"charEquip"`
}

// SubProfession is a branch within a profession
type SubProfession struct {
	SubProfessionID       string `json:"subProfessionId"`
	SubProfessionName     string `json:"subProfessionName"`
	SubProfessionCatagory int    `json:"subProfessionCatagory"`
}

// Equip is one module definition
type Equip struct {
	UniEquipID        string          `json:"uniEquipId"`
	UniEquipName      string          `json:"uniEquipName"`
	UniEquipIcon      string          `json:"uniEquipIcon"`
	UniEquipDesc      string          `json:"uniEquipDesc"`
	TypeIcon          string          `json:"typeIcon"`
	TypeName1         string          `json:"typeName1"`
	TypeName2         string          `json:"typeName2"`
	EquipShiningColor string          `json:"equipShiningColor"`
	ShowEvolvePhase   EvolvePhase     `json:"showEvolvePhase"`
	UnlockEvolvePhase EvolvePhase     `json:"unlockEvolvePhase"`
	CharID            string          `json:"charId"`
	TmplID            string          `json:"tmplId"`
	ShowLevel         int             `json:"showLevel"`
	UnlockLevel       int             `json:"unlockLevel"`
	UnlockFavorPoint  int             `json:"unlockFavorPoint"`
	MissionList       []string        `json:"missionList"`
	ItemCost          json.RawMessage `json:"itemCost,omitempty"`
	Type              string          `json:"type"`
	UniEquipGetTime   int64           `json:"uniEquipGetTime"`
	CharEquipOrder    int             `json:"charEquipOrder"`
}

// Mission is one module unlock mission
type Mission struct {
	Template            string   `json:"template"`
	Desc                string   `json:"desc"`
	ParamList           []string `json:"paramList"`
	UniEquipMissionID   string   `json:"uniEquipMissionId"`
	UniEquipMissionSort int      `json:"uniEquipMissionSort"`
	UniEquipID          string   `json:"uniEquipId"`
}

// BattleEquipTable maps equip ids to their battle effect payload.
// The payload is passed through untouched.
type BattleEquipTable map[string]json.RawMessage
