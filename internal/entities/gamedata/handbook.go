package gamedata

// HandbookInfoTable is handbook_info_table
type HandbookInfoTable struct {
	HandbookDict map[string]Handbook `json:"handbookDict"`
}

// Handbook is the archive file of one character
type Handbook struct {
	CharID         string         `json:"charID"`
	StoryTextAudio []StorySection `json:"storyTextAudio"`
}

// StorySection is one titled archive entry
type StorySection struct {
	StoryTitle string      `json:"storyTitle"`
	Stories    []StoryText `json:"stories"`
}

// StoryText is the text of an archive entry
type StoryText struct {
	StoryText string `json:"storyText"`
}
