package tracker

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Bloodcipher/Amara/internal/types"
)

// OperatorLoad is one artisan's share of the floor.
type OperatorLoad struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Active int       `json:"active"`
	Queued int       `json:"queued"`
}

// Summary is the control-tower view of the production floor.
type Summary struct {
	TotalCards     int                           `json:"total_cards"`
	StatusCounts   map[types.JobCardStatus]int   `json:"status_counts"`
	CompletedToday int                           `json:"completed_today"`
	Operators      []OperatorLoad                `json:"operators"`
	GeneratedAt    time.Time                     `json:"generated_at"`
}

// Aggregate derives the summary from a job-card snapshot. It is pure: same
// inputs, same output, no storage access.
//
// CompletedToday counts completed cards created on now's calendar day, so a
// card opened yesterday and finished this morning does not count. Operators
// lists active artisans sorted by name, with in-progress work as active and
// pending/on-hold assignments as queued.
func Aggregate(cards []*types.JobCardView, users []*types.User, now time.Time) Summary {
	counts := make(map[types.JobCardStatus]int, len(types.JobCardStatuses))
	for _, s := range types.JobCardStatuses {
		counts[s] = 0
	}

	loads := make(map[uuid.UUID]*OperatorLoad, len(users))
	for _, u := range users {
		if u == nil || u.Role != types.RoleArtisan || !u.IsActive {
			continue
		}
		loads[u.ID] = &OperatorLoad{UserID: u.ID, Name: u.Name}
	}

	nowY, nowM, nowD := now.Date()
	completedToday := 0
	for _, card := range cards {
		if card == nil {
			continue
		}
		counts[card.Status]++

		if card.Status == types.JobCardCompleted {
			y, m, d := card.CreatedAt.In(now.Location()).Date()
			if y == nowY && m == nowM && d == nowD {
				completedToday++
			}
		}

		if card.AssignedArtisanID == nil {
			continue
		}
		load, ok := loads[*card.AssignedArtisanID]
		if !ok {
			continue
		}
		switch card.Status {
		case types.JobCardInProgress:
			load.Active++
		case types.JobCardPending, types.JobCardOnHold:
			load.Queued++
		}
	}

	operators := make([]OperatorLoad, 0, len(loads))
	for _, load := range loads {
		operators = append(operators, *load)
	}
	sort.Slice(operators, func(i, j int) bool {
		if operators[i].Name != operators[j].Name {
			return operators[i].Name < operators[j].Name
		}
		return operators[i].UserID.String() < operators[j].UserID.String()
	})

	return Summary{
		TotalCards:     len(cards),
		StatusCounts:   counts,
		CompletedToday: completedToday,
		Operators:      operators,
		GeneratedAt:    now,
	}
}
