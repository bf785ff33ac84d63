package models

// DreamEntry is one record of the dream-symbol dictionary. Entries are
// immutable static data; the lucky numbers are precomputed per the
// traditional interpretation tables.
type DreamEntry struct {
	Keyword    string   `json:"keyword"`
	Meaning    string   `json:"meaning"`
	Category   string   `json:"category"`
	TwoDigit   []string `json:"twoDigit"`
	ThreeDigit []string `json:"threeDigit"`
}

// DreamCategory is a UI suggestion grouping, not part of the matching
// contract.
type DreamCategory struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}
