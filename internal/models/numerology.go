package models

// NumerologyResult holds the digit-derived numbers for one birthdate.
// TwoDigit and ThreeDigit keep insertion order; the first element of each
// is the primary pick the UI renders with emphasis.
type NumerologyResult struct {
	LifePath   int      `json:"lifePath"`
	TwoDigit   []string `json:"twoDigit"`
	ThreeDigit []string `json:"threeDigit"`
}

// ZodiacSign is one of the twelve Thai zodiac signs with its fixed bonus
// numbers.
type ZodiacSign struct {
	Name    string   `json:"name"`
	Icon    string   `json:"icon"`
	Element string   `json:"element"`
	Lucky   []string `json:"lucky"`
}

// BirthdateReading is the full result of a birthdate derivation: the
// numerology proper plus the zodiac and day-of-week table lookups.
type BirthdateReading struct {
	Zodiac          *ZodiacSign      `json:"zodiac,omitempty"`
	DayName         string           `json:"dayName"`
	Planet          string           `json:"planet"`
	DayNumbers      []string         `json:"dayNumbers"`
	LifePathMeaning string           `json:"lifePathMeaning"`
	Numerology      NumerologyResult `json:"numerology"`
}

// LuckyNumberSet is the common output shape of every deriver: bounded,
// insertion-ordered candidate lists of 2- and 3-digit strings.
type LuckyNumberSet struct {
	TwoDigit   []string `json:"twoDigit"`
	ThreeDigit []string `json:"threeDigit"`
}
