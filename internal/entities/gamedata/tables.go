package gamedata

// Tables bundles the auxiliary tables the aggregator joins against.
// Every field may be empty; lookups on nil maps simply miss.
type Tables struct {
	Items       map[string]Item
	Skills      map[string]Skill
	Building    BuildingData
	Handbook    map[string]Handbook
	Uniequip    UniequipTable
	BattleEquip BattleEquipTable
}

// SubProfession looks up a sub-profession by id
func (t *Tables) SubProfession(id string) (SubProfession, bool) {
	sp, ok := t.Uniequip.SubProfDict[id]
	return sp, ok
}
