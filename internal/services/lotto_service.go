package services

import (
	"sort"
	"strconv"

	"github.com/google/logger"

	"lekded/internal/models"
)

const ticketLength = 6

// LotteryService checks submitted ticket numbers against a published
// draw result.
type LotteryService struct{}

func NewLotteryService() *LotteryService {
	return &LotteryService{}
}

// CheckTicket collects every prize a 6-digit ticket wins in the given
// draw. A ticket can match several tiers independently. Malformed input
// fails fast with an empty result; the handler layer rejects it with a
// ValidationError before it gets here.
func (s *LotteryService) CheckTicket(ticket string, draw *models.DrawResult) []models.PrizeMatch {
	if len(ticket) != ticketLength || draw == nil {
		return nil
	}

	warnUnknownTiers(draw)

	var matches []models.PrizeMatch

	// Fixed tiers are checked in their published order regardless of how
	// the API happens to arrange the prize list.
	for _, tier := range models.FixedPrizeTiers {
		for _, prize := range draw.Prizes {
			if prize.ID != tier {
				continue
			}
			if n := countOccurrences(prize.Number, ticket); n > 0 {
				matches = append(matches, models.PrizeMatch{
					Name:   prize.Name,
					Reward: prize.Reward,
					Amount: n,
				})
			}
		}
	}

	runningSegments := []struct {
		id      models.RunningCategory
		segment string
	}{
		{models.RunningFrontThree, ticket[0:3]},
		{models.RunningBackThree, ticket[3:6]},
		{models.RunningBackTwo, ticket[4:6]},
	}
	for _, rs := range runningSegments {
		for _, running := range draw.RunningNumbers {
			if running.ID != rs.id {
				continue
			}
			if n := countOccurrences(running.Number, rs.segment); n > 0 {
				matches = append(matches, models.PrizeMatch{
					Name:   running.Name,
					Reward: running.Reward,
					Amount: n,
				})
			}
		}
	}

	return matches
}

// warnUnknownTiers flags tier ids outside the closed enums so a new
// category added upstream never goes silently unchecked.
func warnUnknownTiers(draw *models.DrawResult) {
	known := map[models.PrizeTier]bool{}
	for _, tier := range models.FixedPrizeTiers {
		known[tier] = true
	}
	for _, prize := range draw.Prizes {
		if !known[prize.ID] {
			logger.Warningf("draw %s carries unknown prize tier %q", draw.ID, prize.ID)
		}
	}
	for _, running := range draw.RunningNumbers {
		switch running.ID {
		case models.RunningFrontThree, models.RunningBackThree, models.RunningBackTwo:
		default:
			logger.Warningf("draw %s carries unknown running category %q", draw.ID, running.ID)
		}
	}
}

// CheckTickets runs CheckTicket over a batch and aggregates rewards.
// Winning tickets sort before losing ones, preserving submission order
// within each group.
func (s *LotteryService) CheckTickets(tickets []string, draw *models.DrawResult) models.CheckSummary {
	summary := models.CheckSummary{Results: make([]models.TicketCheck, 0, len(tickets))}

	for _, ticket := range tickets {
		prizes := s.CheckTicket(ticket, draw)
		check := models.TicketCheck{Number: ticket, Prizes: prizes}
		for _, p := range prizes {
			reward, err := strconv.ParseInt(p.Reward, 10, 64)
			if err != nil {
				logger.Warningf("prize %q carries non-numeric reward %q", p.Name, p.Reward)
				continue
			}
			check.TotalReward += reward * int64(p.Amount)
		}
		check.IsWin = len(prizes) > 0
		if check.IsWin {
			summary.WinTickets++
			summary.TotalReward += check.TotalReward
		}
		summary.Results = append(summary.Results, check)
	}

	sort.SliceStable(summary.Results, func(i, j int) bool {
		return summary.Results[i].IsWin && !summary.Results[j].IsWin
	})
	return summary
}

func countOccurrences(haystack []string, needle string) int {
	n := 0
	for _, v := range haystack {
		if v == needle {
			n++
		}
	}
	return n
}
