package gamedata

// Voice is one entry of charword_table.charWords
type Voice struct {
	CharWordID string `json:"charWordId"`
	WordKey    string `json:"wordKey"`
	CharID     string `json:"charId"`
	VoiceID    string `json:"voiceId"`
	VoiceText  string `json:"voiceText"`
	VoiceTitle string `json:"voiceTitle"`
	VoiceIndex int    `json:"voiceIndex"`
	VoiceAsset string `json:"voiceAsset"`
}
