package operator

import (
	"slices"

	"github.com/KirkDiggler/operator-codex/internal/classification"
	"github.com/KirkDiggler/operator-codex/internal/entities/gamedata"
)

// tagBuilder produces the recruitment tag list in a fixed order:
// raw tags, class, type, rarity tag (high tiers only), hidden tag (listed ids only).
type tagBuilder struct {
	tags []string
}

func newTagBuilder(raw []string) *tagBuilder {
	return &tagBuilder{tags: slices.Clone(raw)}
}

func (b *tagBuilder) add(tag string) *tagBuilder {
	b.tags = append(b.tags, tag)
	return b
}

// addOnce appends tag unless the list already holds it
func (b *tagBuilder) addOnce(tag string) *tagBuilder {
	if !slices.Contains(b.tags, tag) {
		b.tags = append(b.tags, tag)
	}
	return b
}

func (b *tagBuilder) build() []string {
	if b.tags == nil {
		return []string{}
	}
	return b.tags
}

func buildTags(id string, data *gamedata.Character, className, typeName string, cfg *classification.Config) []string {
	b := newTagBuilder(data.TagList).
		add(className).
		add(typeName)

	if tag, ok := cfg.RarityTag(int(data.Rarity)); ok {
		b.add(tag)
	}

	if tag, ok := cfg.HiddenTag(id); ok {
		b.addOnce(tag)
	}

	return b.build()
}
