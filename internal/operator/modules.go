package operator

import (
	"encoding/json"
	"slices"

	"github.com/KirkDiggler/operator-codex/internal/entities/gamedata"
)

// Module is an equip definition with its unlock missions and battle payload attached
type Module struct {
	gamedata.Equip
	Missions []gamedata.Mission `json:"missions"`
	Detail   json.RawMessage    `json:"detail"`
}

// Modules joins the operator's equip ids against equipDict, battle_equip_table and
// missionList. Unknown equips and missions are skipped; order is preserved.
func (o *Operator) Modules() []Module {
	modules := []Module{}

	equipIDs, ok := o.tables.Uniequip.CharEquip[o.ID]
	if !ok {
		return modules
	}

	for _, id := range equipIDs {
		equip, ok := o.tables.Uniequip.EquipDict[id]
		if !ok {
			continue
		}

		module := Module{
			Equip:    equip,
			Missions: make([]gamedata.Mission, 0, len(equip.MissionList)),
		}
		module.MissionList = slices.Clone(equip.MissionList)

		if detail, ok := o.tables.BattleEquip[id]; ok {
			module.Detail = detail
		}

		for _, missionID := range equip.MissionList {
			if mission, ok := o.tables.Uniequip.MissionList[missionID]; ok {
				module.Missions = append(module.Missions, mission)
			}
		}

		modules = append(modules, module)
	}

	return modules
}
