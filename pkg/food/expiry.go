package food

import (
	"math"
	"sort"
	"time"

	"github.com/kSpets25/expire/domain"
	"github.com/kSpets25/expire/entities"
)

// ExpiryWindowDays bounds the "expiring soon" view: items due within
// this many days (inclusive) are shown.
const ExpiryWindowDays = 14

const (
	UrgencyExpired  = "expired"
	UrgencyCritical = "critical"
	UrgencySoon     = "soon"
	UrgencyNotSoon  = "not-soon"
)

// ExpiringItem pairs a saved food with its computed urgency.
type ExpiringItem struct {
	Item     *entities.FoodItem
	DaysLeft int
	Urgency  string
}

// DaysLeft returns the number of whole days between now and the
// expiration date. Both operands are truncated to calendar dates before
// comparing, so an item expiring today yields 0 regardless of
// time-of-day drift in either timestamp.
func DaysLeft(expiration, now time.Time) (int, error) {
	if expiration.IsZero() {
		return 0, domain.ErrMissingExpirationDate
	}
	diff := startOfDay(expiration).Sub(startOfDay(now))
	return int(math.Ceil(diff.Hours() / 24)), nil
}

// Classify maps days remaining onto an urgency bucket.
func Classify(daysLeft int) string {
	switch {
	case daysLeft <= 0:
		return UrgencyExpired
	case daysLeft <= 3:
		return UrgencyCritical
	case daysLeft <= ExpiryWindowDays:
		return UrgencySoon
	default:
		return UrgencyNotSoon
	}
}

// FilterExpiring selects the items due within the expiry window and
// orders them most urgent first. Items without an expiration date are
// skipped. Ties on days left fall back to save time, oldest first, so
// the ordering is deterministic. The result is computed fresh on every
// call.
func FilterExpiring(items []*entities.FoodItem, now time.Time) []ExpiringItem {
	var expiring []ExpiringItem
	for _, item := range items {
		daysLeft, err := DaysLeft(item.ExpirationDate, now)
		if err != nil {
			continue
		}
		if daysLeft < 0 || daysLeft > ExpiryWindowDays {
			continue
		}
		expiring = append(expiring, ExpiringItem{
			Item:     item,
			DaysLeft: daysLeft,
			Urgency:  Classify(daysLeft),
		})
	}

	sort.SliceStable(expiring, func(i, j int) bool {
		if expiring[i].DaysLeft != expiring[j].DaysLeft {
			return expiring[i].DaysLeft < expiring[j].DaysLeft
		}
		return expiring[i].Item.CreatedAt.Before(expiring[j].Item.CreatedAt)
	})

	return expiring
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
