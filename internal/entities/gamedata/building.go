package gamedata

// BuildingData is the part of building_data describing infrastructure buffs
type BuildingData struct {
	Chars map[string]BuildingChar `json:"chars"`
	Buffs map[string]Buff         `json:"buffs"`
}

// BuildingChar lists the buffs a character can grant
type BuildingChar struct {
	CharID   string     `json:"charId"`
	BuffChar []BuffChar `json:"buffChar"`
}

// BuffChar is one buff slot; its entries are upgrades unlocked over time
type BuffChar struct {
	BuffData []BuffGrant `json:"buffData"`
}

// BuffGrant links a buff to its unlock condition
type BuffGrant struct {
	BuffID string    `json:"buffId"`
	Cond   Condition `json:"cond"`
}

// Buff is one infrastructure buff definition
type Buff struct {
	BuffID      string `json:"buffId"`
	BuffName    string `json:"buffName"`
	RoomType    string `json:"roomType"`
	Description string `json:"description"`
}
