package models

// TarotCard is one card of the Major Arcana subset (ID 1-22).
type TarotCard struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	NameThai string `json:"nameThai"`
	Image    string `json:"image"`
}

// CardNumbers is the fixed lucky-number mapping for one Major Arcana
// index (zero-based, ID-1).
type CardNumbers struct {
	Two   []string `json:"two"`
	Three []string `json:"three"`
}
