package models

// PrizeTier identifies one of the six fixed prize tiers of a draw. The
// values are the wire ids used by the draw API.
type PrizeTier string

const (
	TierFirst     PrizeTier = "prizeFirst"
	TierFirstNear PrizeTier = "prizeFirstNear"
	TierSecond    PrizeTier = "prizeSecond"
	TierThird     PrizeTier = "prizeThird"
	TierForth     PrizeTier = "prizeForth"
	TierFifth     PrizeTier = "prizeFifth"
)

// FixedPrizeTiers lists every tier in checking order.
var FixedPrizeTiers = []PrizeTier{
	TierFirst, TierFirstNear, TierSecond, TierThird, TierForth, TierFifth,
}

// RunningCategory identifies a partial-match prize category. The values
// are the wire ids used by the draw API.
type RunningCategory string

const (
	RunningFrontThree RunningCategory = "runningNumberFrontThree"
	RunningBackThree  RunningCategory = "runningNumberBackThree"
	RunningBackTwo    RunningCategory = "runningNumberBackTwo"
)

// Prize is one fixed prize tier of a draw result.
type Prize struct {
	ID     PrizeTier `json:"id"`
	Name   string    `json:"name"`
	Reward string    `json:"reward"`
	Number []string  `json:"number"`
}

// RunningNumber is one partial-match category of a draw result.
type RunningNumber struct {
	ID     RunningCategory `json:"id"`
	Name   string          `json:"name"`
	Reward string          `json:"reward"`
	Number []string        `json:"number"`
}

// DrawResult is one published Thai Government Lottery draw, consumed
// read-only from the external draw API.
type DrawResult struct {
	ID             string          `json:"id"`
	Date           string          `json:"date"`
	Label          string          `json:"label"`
	Prizes         []Prize         `json:"prizes"`
	RunningNumbers []RunningNumber `json:"runningNumbers"`
}

// PrizeMatch is one tier or category a ticket matched. Amount counts how
// many entries of that tier the ticket matched (normally 1).
type PrizeMatch struct {
	Name   string `json:"name"`
	Reward string `json:"reward"`
	Amount int    `json:"amount"`
}

// TicketCheck is the per-ticket result of a batch check.
type TicketCheck struct {
	Number      string       `json:"number"`
	IsWin       bool         `json:"isWin"`
	Prizes      []PrizeMatch `json:"prizes"`
	TotalReward int64        `json:"totalReward"`
}

// CheckSummary aggregates a batch check across tickets.
type CheckSummary struct {
	Results     []TicketCheck `json:"results"`
	WinTickets  int           `json:"winTickets"`
	TotalReward int64         `json:"totalReward"`
}
