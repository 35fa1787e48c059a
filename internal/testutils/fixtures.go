package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Fixture character ids
const (
	FixtureAmiyaID      = "char_002_amiya"
	FixtureAmiyaGuardID = "char_1001_amiya2"
	FixtureLancetID     = "char_285_medic2"
	FixtureReserveID    = "char_504_rguard"
	FixtureBrokenID     = "char_999_broken"
	FixtureTokenID      = "token_10000_silent_healrb"
	FixtureTrapID       = "trap_001_crate"
)

// FixtureTables is a small game-data dump keyed by table name. It covers the
// required tables plus one operator per interesting case: a fully populated
// caster, an overridden identity, a hidden support unit, an unavailable reserve
// operator, a record with an unknown sub-profession, and two non-operators.
func FixtureTables() map[string]string {
	return map[string]string{
		"character_table":     fixtureCharacterTable,
		"uniequip_table":      fixtureUniequipTable,
		"skill_table":         fixtureSkillTable,
		"item_table":          fixtureItemTable,
		"building_data":       fixtureBuildingData,
		"handbook_info_table": fixtureHandbookInfoTable,
		"battle_equip_table":  fixtureBattleEquipTable,
		"charword_table":      fixtureCharwordTable,
		"skin_table":          fixtureSkinTable,
	}
}

// WriteFixtureTables writes the named fixture tables (all of them when none are
// named) as <name>.json into a fresh temp directory and returns it
func WriteFixtureTables(t *testing.T, names ...string) string {
	t.Helper()

	tables := FixtureTables()
	if len(names) == 0 {
		for name := range tables {
			names = append(names, name)
		}
	}

	dir := t.TempDir()
	for _, name := range names {
		body, ok := tables[name]
		require.True(t, ok, "unknown fixture table %s", name)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), []byte(body), 0o600))
	}

	return dir
}

const fixtureCharacterTable = `{
  "char_002_amiya": {
    "name": "阿米娅",
    "description": "造成<@ba.kw>法术伤害</>",
    "appellation": "Amiya",
    "position": "RANGED",
    "tagList": ["输出", "控场"],
    "itemUsage": "罗德岛的公开领导人。",
    "itemDesc": "我们还有很长的路要走。",
    "rarity": "TIER_5",
    "profession": "CASTER",
    "subProfessionId": "corecaster",
    "trait": {
      "candidates": [
        {
          "unlockCondition": {"phase": "PHASE_0", "level": 1},
          "requiredPotentialRank": 0,
          "blackboard": [],
          "overrideDescripton": null
        }
      ]
    },
    "phases": [
      {
        "maxLevel": 50,
        "attributesKeyFrames": [
          {"level": 1, "data": {"maxHp": 612, "atk": 276, "def": 48, "magicResistance": 10.0, "cost": 18, "blockCnt": 1}},
          {"level": 50, "data": {"maxHp": 918, "atk": 413, "def": 72, "magicResistance": 10.0, "cost": 18, "blockCnt": 1}}
        ],
        "evolveCost": null
      },
      {
        "maxLevel": 70,
        "attributesKeyFrames": [
          {"level": 1, "data": {"maxHp": 918, "atk": 413, "def": 72, "magicResistance": 15.0, "cost": 20, "blockCnt": 1}},
          {"level": 70, "data": {"maxHp": 1152, "atk": 532, "def": 90, "magicResistance": 15.0, "cost": 20, "blockCnt": 1}}
        ],
        "evolveCost": [{"id": "3261", "count": 4, "type": "MATERIAL"}]
      },
      {
        "maxLevel": 80,
        "attributesKeyFrames": [
          {"level": 1, "data": {"maxHp": 1152, "atk": 532, "def": 90, "magicResistance": 20.0, "cost": 20, "blockCnt": 1}},
          {"level": 80, "data": {"maxHp": 1480, "atk": 612, "def": 121, "magicResistance": 20.0, "cost": 20, "blockCnt": 1}}
        ],
        "evolveCost": [{"id": "3263", "count": 3, "type": "MATERIAL"}, {"id": "30073", "count": 7, "type": "MATERIAL"}]
      }
    ],
    "skills": [
      {
        "skillId": "skchr_amiya_1",
        "levelUpCostCond": [
          {"unlockCond": {"phase": 2, "level": 1}, "lvlUpTime": 28800, "levelUpCost": [{"id": "3303", "count": 4, "type": "MATERIAL"}]}
        ]
      },
      {"skillId": "skchr_amiya_missing", "levelUpCostCond": []}
    ],
    "talents": [
      {
        "candidates": [
          {"name": "情绪吸收", "description": "攻击敌人时额外回复<@ba.vup>1</>点技力"},
          {"name": "情绪吸收", "description": "攻击敌人时额外回复<@ba.vup>2</>点技力"}
        ]
      }
    ],
    "potentialRanks": [
      {"type": 1, "description": "部署费用-1"},
      {"type": "BUFF", "description": "攻击力+25"}
    ],
    "favorKeyFrames": [
      {"level": 0, "data": {"maxHp": 0, "atk": 0}},
      {"level": 50, "data": {"maxHp": 0, "atk": 90}}
    ]
  },
  "char_1001_amiya2": {
    "name": "阿米娅",
    "description": "可以进行远程攻击",
    "appellation": "Amiya",
    "position": "MELEE",
    "tagList": ["输出", "生存"],
    "rarity": 4,
    "profession": "WARRIOR",
    "subProfessionId": "sword",
    "trait": null,
    "phases": [{"maxLevel": 50, "attributesKeyFrames": [{"level": 50, "data": {"maxHp": 1500, "atk": 520}}]}],
    "skills": [],
    "talents": null,
    "potentialRanks": [],
    "favorKeyFrames": null
  },
  "char_285_medic2": {
    "name": "Lancet-2",
    "description": "恢复友方单位生命",
    "appellation": "Lancet-2",
    "position": "RANGED",
    "tagList": ["治疗"],
    "rarity": 0,
    "profession": "MEDIC",
    "subProfessionId": "physician",
    "phases": [{"maxLevel": 30, "attributesKeyFrames": [{"level": 30, "data": {"maxHp": 660}}]}],
    "skills": []
  },
  "char_504_rguard": {
    "name": "预备干员-近战",
    "description": "",
    "appellation": "Reserve Operator - Melee",
    "position": "MELEE",
    "tagList": null,
    "rarity": 0,
    "profession": "WARRIOR",
    "subProfessionId": "sword",
    "phases": [{"maxLevel": 30, "attributesKeyFrames": []}],
    "skills": []
  },
  "char_999_broken": {
    "name": "坏数据",
    "position": "MELEE",
    "rarity": 2,
    "profession": "WARRIOR",
    "subProfessionId": "nosuchsub",
    "phases": [{"maxLevel": 40, "attributesKeyFrames": []}]
  },
  "token_10000_silent_healrb": {
    "name": "医疗无人机",
    "position": "RANGED",
    "rarity": 0,
    "profession": "TOKEN",
    "subProfessionId": "notchar1",
    "phases": [{"maxLevel": 1, "attributesKeyFrames": []}]
  },
  "trap_001_crate": {
    "name": "障碍物",
    "position": "MELEE",
    "rarity": 0,
    "profession": "TRAP",
    "subProfessionId": "notchar2",
    "phases": [{"maxLevel": 1, "attributesKeyFrames": []}]
  }
}`

const fixtureUniequipTable = `{
  "equipDict": {
    "uniequip_001_amiya": {
      "uniEquipId": "uniequip_001_amiya",
      "uniEquipName": "阿米娅的制服",
      "typeIcon": "original",
      "charId": "char_002_amiya",
      "missionList": [],
      "itemCost": null
    },
    "uniequip_002_amiya": {
      "uniEquipId": "uniequip_002_amiya",
      "uniEquipName": "阿米娅的徽章",
      "typeIcon": "cca-x",
      "charId": "char_002_amiya",
      "showEvolvePhase": "PHASE_2",
      "unlockEvolvePhase": 2,
      "missionList": ["uniequip_002_amiya_1", "uniequip_002_amiya_2"],
      "itemCost": {"1": [{"id": "mod_unlock_token", "count": 1, "type": "MATERIAL"}]}
    }
  },
  "missionList": {
    "uniequip_002_amiya_1": {"desc": "精英2级", "uniEquipMissionId": "uniequip_002_amiya_1", "uniEquipMissionSort": 1, "uniEquipId": "uniequip_002_amiya"},
    "uniequip_002_amiya_2": {"desc": "完成关卡", "uniEquipMissionId": "uniequip_002_amiya_2", "uniEquipMissionSort": 2, "uniEquipId": "uniequip_002_amiya"}
  },
  "subProfDict": {
    "corecaster": {"subProfessionId": "corecaster", "subProfessionName": "中坚术师", "subProfessionCatagory": 1},
    "sword": {"subProfessionId": "sword", "subProfessionName": "剑豪", "subProfessionCatagory": 1},
    "physician": {"subProfessionId": "physician", "subProfessionName": "医师", "subProfessionCatagory": 1},
    "notchar1": {"subProfessionId": "notchar1", "subProfessionName": "不是干员", "subProfessionCatagory": 1},
    "notchar2": {"subProfessionId": "notchar2", "subProfessionName": "不是干员", "subProfessionCatagory": 1}
  },
  "charEquip": {
    "char_002_amiya": ["uniequip_001_amiya", "uniequip_002_amiya"]
  }
}`

const fixtureSkillTable = `{
  "skchr_amiya_1": {
    "skillId": "skchr_amiya_1",
    "iconId": null,
    "hidden": false,
    "levels": [
      {
        "name": "战术咏唱·γ型",
        "description": "攻击速度<@ba.vup>+{attack_speed}</>\\n持续{duration}秒",
        "skillType": 1,
        "durationType": 0,
        "spData": {"spType": 1, "maxChargeTime": 1, "spCost": 40, "initSp": 10, "increment": 1.0},
        "duration": 30.0,
        "blackboard": [{"key": "attack_speed", "value": 35.0}, {"key": "duration", "value": 30.0}]
      },
      {
        "name": "战术咏唱·γ型",
        "description": "攻击速度<@ba.vup>+{attack_speed}</>\\n持续{duration}秒",
        "skillType": "AUTO",
        "durationType": "NONE",
        "spData": {"spType": "INCREASE_WITH_TIME", "maxChargeTime": 1, "spCost": 38, "initSp": 12, "increment": 1.0},
        "duration": 30.0,
        "blackboard": [{"key": "attack_speed", "value": 40.0}, {"key": "duration", "value": 30.0}]
      }
    ]
  },
  "skchr_amiya_missing": {}
}`

const fixtureItemTable = `{
  "items": {
    "p_char_002_amiya": {"itemId": "p_char_002_amiya", "name": "阿米娅的信物", "description": "用于提升阿米娅的潜能。"}
  }
}`

const fixtureBuildingData = `{
  "chars": {
    "char_002_amiya": {
      "charId": "char_002_amiya",
      "buffChar": [
        {"buffData": [{"buffId": "control_amiya[000]", "cond": {"phase": "PHASE_0", "level": 1}}]},
        {"buffData": [{"buffId": "control_amiya[010]", "cond": {"phase": 2, "level": 1}}]}
      ]
    }
  },
  "buffs": {
    "control_amiya[000]": {"buffId": "control_amiya[000]", "buffName": "合作协议", "roomType": "CONTROL", "description": "进驻控制中枢时，所有干员心情<@cc.vup>+0.05</>"},
    "control_amiya[010]": {"buffId": "control_amiya[010]", "buffName": "小提琴独奏", "roomType": "CONTROL", "description": "进驻控制中枢时，心情恢复"}
  }
}`

const fixtureHandbookInfoTable = `{
  "handbookDict": {
    "char_002_amiya": {
      "charID": "char_002_amiya",
      "storyTextAudio": [
        {"storyTitle": "基础档案", "stories": [{"storyText": "【代号】阿米娅"}]},
        {"storyTitle": "综合体检测试", "stories": [{"storyText": "【物理强度】普通"}]}
      ]
    }
  }
}`

const fixtureBattleEquipTable = `{
  "uniequip_002_amiya": {"phases": [{"equipLevel": 1, "parts": []}]}
}`

const fixtureCharwordTable = `{
  "charWords": {
    "char_002_amiya_CN_001": {"charWordId": "char_002_amiya_CN_001", "charId": "char_002_amiya", "voiceTitle": "任命助理", "voiceText": "博士，您工作辛苦了。", "voiceIndex": 1, "voiceAsset": "char_002_amiya/CN_001"},
    "char_285_medic2_CN_001": {"charWordId": "char_285_medic2_CN_001", "charId": "char_285_medic2", "voiceTitle": "任命助理", "voiceText": "哔哔。", "voiceIndex": 1, "voiceAsset": "char_285_medic2/CN_001"},
    "char_002_amiya_CN_002": {"charWordId": "char_002_amiya_CN_002", "charId": "char_002_amiya", "voiceTitle": "交谈1", "voiceText": "我们还有很长的路要走。", "voiceIndex": 2, "voiceAsset": "char_002_amiya/CN_002"}
  },
  "voiceLangDict": {}
}`

const fixtureSkinTable = `{
  "charSkins": {
    "char_002_amiya#1": {"skinId": "char_002_amiya#1", "charId": "char_002_amiya", "avatarId": "char_002_amiya", "displaySkin": {"skinName": null, "drawerName": "唯@W"}},
    "char_002_amiya@winter#1": {
      "skinId": "char_002_amiya@winter#1",
      "charId": "char_002_amiya",
      "avatarId": "char_002_amiya@winter#1",
      "displaySkin": {
        "skinName": "寒冬信使",
        "drawerName": null,
        "drawerList": ["KuroBlood"],
        "skinGroupName": "忒斯特收藏系列",
        "dialog": "冬天到了。",
        "usage": "罗德岛制服",
        "description": "冬装",
        "obtainApproach": "采购中心"
      }
    },
    "char_1001_amiya2#1": {"skinId": "char_1001_amiya2#1", "charId": "char_1001_amiya2", "avatarId": "char_1001_amiya2", "displaySkin": {}}
  }
}`
