package operator

import "strings"

const (
	// skinMarker separates the character id from the brand in collectible skin ids
	skinMarker = "@"
	// avatarSeparator splits avatar ids; it is percent-encoded in image references
	avatarSeparator = "#"
	// skinTypeOutfit is the only skin type this projection emits
	skinTypeOutfit = 1
)

// Voice is one voice line
type Voice struct {
	Title string `json:"voice_title"`
	Text  string `json:"voice_text"`
	Asset string `json:"voice_no"`
}

// Story is one archive entry
type Story struct {
	Title string `json:"story_title"`
	Text  string `json:"story_text"`
}

// Skin is one purchasable or reward outfit
type Skin struct {
	Image       string `json:"skin_image"`
	Type        int    `json:"skin_type"`
	Name        string `json:"skin_name"`
	Drawer      string `json:"skin_drawer"`
	Group       string `json:"skin_group"`
	Content     string `json:"skin_content"`
	Usage       string `json:"skin_usage"`
	Description string `json:"skin_desc"`
	Source      string `json:"skin_source"`
}

// Voices flattens the supplied voice lines, order preserved
func (o *Operator) Voices() []Voice {
	voices := make([]Voice, 0, len(o.voices))
	for _, v := range o.voices {
		voices = append(voices, Voice{
			Title: v.VoiceTitle,
			Text:  v.VoiceText,
			Asset: v.VoiceAsset,
		})
	}

	return voices
}

// Stories returns the archive entries from handbook_info_table
func (o *Operator) Stories() []Story {
	stories := []Story{}

	handbook, ok := o.tables.Handbook[o.ID]
	if !ok {
		return stories
	}

	for _, section := range handbook.StoryTextAudio {
		var text string
		if len(section.Stories) > 0 {
			text = section.Stories[0].StoryText
		}

		stories = append(stories, Story{
			Title: section.StoryTitle,
			Text:  text,
		})
	}

	return stories
}

// Skins keeps only the collectible outfits (ids containing "@"); promotion
// artwork is excluded.
func (o *Operator) Skins() []Skin {
	skins := []Skin{}
	for _, item := range o.skins {
		if !strings.Contains(item.SkinID, skinMarker) {
			continue
		}

		display := item.DisplaySkin
		name := display.SkinName
		if name == "" {
			name = o.Name
		}

		skins = append(skins, Skin{
			Image:       skinImage(item.AvatarID),
			Type:        skinTypeOutfit,
			Name:        name,
			Drawer:      display.Drawer(),
			Group:       display.SkinGroupName,
			Content:     display.Dialog,
			Usage:       display.Usage,
			Description: display.Description,
			Source:      display.ObtainApproach,
		})
	}

	return skins
}

// skinImage turns "char_002_amiya#1" into "char_002_amiya%231".
// Only the first two segments are kept; ids without a separator pass through.
func skinImage(avatarID string) string {
	parts := strings.Split(avatarID, avatarSeparator)
	if len(parts) < 2 {
		return avatarID
	}
	return parts[0] + "%23" + parts[1]
}
