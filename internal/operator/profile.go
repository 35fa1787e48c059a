package operator

import "github.com/KirkDiggler/operator-codex/internal/entities/gamedata"

// Profile is every projection of an operator in one document
type Profile struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Appellation string   `json:"en_name"`
	WikiName    string   `json:"wiki_name"`
	Rarity      int      `json:"rarity"`
	Class       string   `json:"classes"`
	ClassSub    string   `json:"classes_sub"`
	ClassCode   int      `json:"classes_code"`
	Type        string   `json:"type"`
	Tags        []string `json:"tags"`
	Limited     bool     `json:"limit"`
	Unavailable bool     `json:"unavailable"`
	Recruitable bool     `json:"is_recruit"`

	Detail         Detail              `json:"detail"`
	Favor          gamedata.Attributes `json:"favor"`
	Talents        []Talent            `json:"talents"`
	Potential      []Potential         `json:"potential"`
	EvolveCosts    []EvolveCost        `json:"evolve_costs"`
	Skills         Skills              `json:"skills"`
	BuildingSkills []BuildingSkill     `json:"building_skills"`
	Voices         []Voice             `json:"voices"`
	Stories        []Story             `json:"stories"`
	Skins          []Skin              `json:"skins"`
	Modules        []Module            `json:"modules"`
}

// Profile runs every accessor
func (o *Operator) Profile() Profile {
	detail, favor := o.Detail()

	return Profile{
		ID:             o.ID,
		Name:           o.Name,
		Appellation:    o.Appellation,
		WikiName:       o.WikiName,
		Rarity:         o.Rarity,
		Class:          o.Class,
		ClassSub:       o.ClassSub,
		ClassCode:      o.ClassCode,
		Type:           o.Type,
		Tags:           o.Tags,
		Limited:        o.Limited,
		Unavailable:    o.Unavailable,
		Recruitable:    o.Recruitable,
		Detail:         detail,
		Favor:          favor,
		Talents:        o.Talents(),
		Potential:      o.Potential(),
		EvolveCosts:    o.EvolveCosts(),
		Skills:         o.Skills(),
		BuildingSkills: o.BuildingSkills(),
		Voices:         o.Voices(),
		Stories:        o.Stories(),
		Skins:          o.Skins(),
		Modules:        o.Modules(),
	}
}
