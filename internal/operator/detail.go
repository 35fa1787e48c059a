package operator

import (
	"fmt"

	"github.com/KirkDiggler/operator-codex/internal/blackboard"
	"github.com/KirkDiggler/operator-codex/internal/entities/gamedata"
	"github.com/KirkDiggler/operator-codex/internal/markup"
)

// Detail is the stat page of an operator at max promotion and level
type Detail struct {
	Trait    string `json:"operator_trait"`
	Usage    string `json:"operator_usage"`
	Quote    string `json:"operator_quote"`
	Token    string `json:"operator_token"`
	MaxLevel string `json:"max_level"`
	gamedata.Attributes
}

// Talent is the highest tier of one talent slot
type Talent struct {
	Name        string `json:"talents_name"`
	Description string `json:"talents_desc"`
}

// Potential is one potential bonus with its 1-based rank
type Potential struct {
	Description string `json:"potential_desc"`
	Rank        int    `json:"potential_rank"`
}

// EvolveCost is one material needed to promote into Level
type EvolveCost struct {
	Level      int    `json:"evolve_level"`
	MaterialID string `json:"use_material_id"`
	Count      int    `json:"use_number"`
}

// Detail returns the max-level stat page and, separately, the max trust bonus
func (o *Operator) Detail() (Detail, gamedata.Attributes) {
	maxPhase := o.data.Phases[len(o.data.Phases)-1]

	var maxAttributes gamedata.Attributes
	if frames := maxPhase.AttributesKeyFrames; len(frames) > 0 {
		maxAttributes = frames[len(frames)-1].Data
	}

	detail := Detail{
		Trait:      markup.Unescape(o.trait()),
		Usage:      o.data.ItemUsage,
		Quote:      o.data.ItemDesc,
		Token:      o.token(),
		MaxLevel:   fmt.Sprintf("%d-%d", len(o.data.Phases)-1, maxPhase.MaxLevel),
		Attributes: maxAttributes,
	}

	var favor gamedata.Attributes
	if frames := o.data.FavorKeyFrames; len(frames) > 0 {
		favor = frames[len(frames)-1].Data
	}

	return detail, favor
}

// trait resolves the highest trait tier, falling back to the base description
func (o *Operator) trait() string {
	trait := markup.Strip(o.data.Description)

	if o.data.Trait == nil || len(o.data.Trait.Candidates) == 0 {
		return trait
	}

	top := o.data.Trait.Candidates[len(o.data.Trait.Candidates)-1]
	template := top.OverrideDescription
	if template == "" {
		template = trait
	}

	return blackboard.Resolve(top.Blackboard, template)
}

func (o *Operator) token() string {
	item, ok := o.tables.Items[gamedata.TokenItemID(o.ID)]
	if !ok {
		return ""
	}
	return item.Description
}

// Talents returns the final candidate of every talent slot
func (o *Operator) Talents() []Talent {
	talents := make([]Talent, 0, len(o.data.Talents))
	for _, talent := range o.data.Talents {
		if len(talent.Candidates) == 0 {
			continue
		}

		top := talent.Candidates[len(talent.Candidates)-1]
		talents = append(talents, Talent{
			Name:        top.Name,
			Description: markup.Strip(top.Description),
		})
	}

	return talents
}

// Potential lists the potential bonuses in rank order
func (o *Operator) Potential() []Potential {
	potential := make([]Potential, 0, len(o.data.PotentialRanks))
	for i, rank := range o.data.PotentialRanks {
		potential = append(potential, Potential{
			Description: rank.Description,
			Rank:        i + 1,
		})
	}

	return potential
}

// EvolveCosts flattens the promotion materials, phase by phase
func (o *Operator) EvolveCosts() []EvolveCost {
	var costs []EvolveCost
	for phase, p := range o.data.Phases {
		for _, cost := range p.EvolveCost {
			costs = append(costs, EvolveCost{
				Level:      phase,
				MaterialID: cost.ID,
				Count:      cost.Count,
			})
		}
	}

	if costs == nil {
		return []EvolveCost{}
	}
	return costs
}
