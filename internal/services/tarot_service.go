package services

import (
	"fmt"
	"math/rand"
	"sync"

	"lekded/internal/data"
	"lekded/internal/models"
)

// TarotService turns drawn Major Arcana cards into lucky numbers and
// deals shuffled spreads for the picking phase.
type TarotService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewTarotService takes the random source used for shuffling so spreads
// can be reproduced under test with a fixed seed.
func NewTarotService(rng *rand.Rand) *TarotService {
	return &TarotService{rng: rng}
}

// Cards returns the full Major Arcana catalog.
func (s *TarotService) Cards() []models.TarotCard {
	return data.MajorArcana
}

// CardByID resolves a card by its 1-based id.
func (s *TarotService) CardByID(id int) (models.TarotCard, bool) {
	for _, c := range data.MajorArcana {
		if c.ID == id {
			return c, true
		}
	}
	return models.TarotCard{}, false
}

// DealSpread shuffles the Major Arcana and returns n distinct cards for
// the user to pick from.
func (s *TarotService) DealSpread(n int) []models.TarotCard {
	if n < 1 {
		n = 1
	}
	if n > len(data.MajorArcana) {
		n = len(data.MajorArcana)
	}
	deck := make([]models.TarotCard, len(data.MajorArcana))
	copy(deck, data.MajorArcana)
	s.mu.Lock()
	s.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	s.mu.Unlock()
	return deck[:n]
}

// CombineNumbers derives one lucky-number set from exactly 3 drawn
// cards. Per-card numbers enter the sets in draw order, followed by the
// positional cross numbers, so the order of selection decides what
// survives truncation. Cards with ids outside the mapping fall back to
// the entry for index 0.
func (s *TarotService) CombineNumbers(cards []models.TarotCard) (models.LuckyNumberSet, error) {
	if len(cards) != 3 {
		return models.LuckyNumberSet{}, &models.ValidationError{
			Field:   "cards",
			Message: "ต้องเลือกไพ่ 3 ใบ",
		}
	}

	var two, three []string
	for _, card := range cards {
		m, ok := data.CardNumberMap[card.ID-1]
		if !ok {
			m = data.CardNumberMap[0]
		}
		two = appendUnique(two, m.Two...)
		three = appendUnique(three, m.Three...)
	}

	crossTwo := fmt.Sprintf("%d%d", (cards[0].ID-1)%10, (cards[1].ID-1)%10)
	crossThree := fmt.Sprintf("%d%d%d", (cards[0].ID-1)%10, (cards[1].ID-1)%10, (cards[2].ID-1)%10)
	two = appendUnique(two, crossTwo)
	three = appendUnique(three, crossThree)

	return models.LuckyNumberSet{
		TwoDigit:   truncate(two, 6),
		ThreeDigit: truncate(three, 4),
	}, nil
}
