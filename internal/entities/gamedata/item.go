package gamedata

// ItemTable is item_table
type ItemTable struct {
	Items map[string]Item `json:"items"`
}

// Item is one item record
type Item struct {
	ItemID         string `json:"itemId"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Usage          string `json:"usage"`
	ObtainApproach string `json:"obtainApproach"`
	ClassifyType   string `json:"classifyType"`
	ItemType       string `json:"itemType"`
}

// TokenItemID is the id of the potential token item of a character
func TokenItemID(charID string) string {
	return "p_" + charID
}
