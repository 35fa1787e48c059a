package gamedata

import "strings"

// Skin is one entry of skin_table.charSkins
type Skin struct {
	SkinID      string      `json:"skinId"`
	CharID      string      `json:"charId"`
	IllustID    string      `json:"illustId"`
	AvatarID    string      `json:"avatarId"`
	PortraitID  string      `json:"portraitId"`
	DisplaySkin DisplaySkin `json:"displaySkin"`
}

// DisplaySkin is the presentation block of a skin. Null strings decode as empty.
type DisplaySkin struct {
	SkinName       string   `json:"skinName"`
	DrawerName     string   `json:"drawerName"`
	DrawerList     []string `json:"drawerList"`
	SkinGroupName  string   `json:"skinGroupName"`
	Dialog         string   `json:"dialog"`
	Usage          string   `json:"usage"`
	Description    string   `json:"description"`
	ObtainApproach string   `json:"obtainApproach"`
}

// Drawer returns the illustrator credit; newer dumps list several names
func (d DisplaySkin) Drawer() string {
	if d.DrawerName != "" {
		return d.DrawerName
	}
	return strings.Join(d.DrawerList, ", ")
}
