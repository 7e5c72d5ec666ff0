package persona

import (
	"hash/fnv"
	"log/slog"
	"time"

	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// Selection is the persona chosen for a booking and its derived user tags.
type Selection struct {
	Persona  domain.Persona `json:"persona"`
	UserTags []domain.Tag   `json:"user_tags"`
	// Forced is true when the persona came from an explicit id that exists.
	Forced bool `json:"forced"`
}

// Selector picks a persona for a booking.
type Selector struct {
	log *slog.Logger
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithSelectorLogger sets the logger used for fallback warnings.
func WithSelectorLogger(l *slog.Logger) SelectorOption {
	return func(s *Selector) {
		s.log = l
	}
}

// NewSelector creates a Selector.
func NewSelector(opts ...SelectorOption) *Selector {
	s := &Selector{log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ForBooking returns the persona for booking. A non-empty forceID wins; an
// unknown forceID falls back to the default persona. Without a forced id the
// persona is inferred from the booking window: long trips map to a family or
// backpacker profile, short weekday trips to the consultant, short weekend
// trips to a couple or urbanite, anything else to any catalog entry. Choices
// between several candidates are keyed on the booking id so the same booking
// always gets the same persona.
func (s *Selector) ForBooking(b domain.Booking, forceID string) Selection {
	if forceID != "" {
		if p, ok := Lookup(forceID); ok {
			return Selection{Persona: p, UserTags: UserTags(p), Forced: true}
		}
		s.log.Warn("requested persona not found, using default",
			"persona_id", forceID,
			"booking_id", b.ID,
		)
		p := Default()
		return Selection{Persona: p, UserTags: UserTags(p)}
	}

	p := infer(b)
	return Selection{Persona: p, UserTags: UserTags(p)}
}

func infer(b domain.Booking) domain.Persona {
	days := b.DurationDays()

	var candidates []string
	switch {
	case days > 5:
		candidates = []string{FamilyHolidayPlanner, BudgetBackpacker}
	case days > 0 && days <= 2:
		if isWeekday(b.Start) {
			candidates = []string{TimePressedConsultant}
		} else {
			candidates = []string{WeekendGetawayCouple, EcoConsciousUrbanite}
		}
	default:
		for _, p := range catalog {
			candidates = append(candidates, p.ID)
		}
	}

	p, ok := Lookup(candidates[pick(b.ID, len(candidates))])
	if !ok {
		return Default()
	}
	return p
}

func isWeekday(t *time.Time) bool {
	if t == nil {
		return false
	}
	d := t.Weekday()
	return d >= time.Monday && d <= time.Friday
}

// pick maps key onto [0, n) with FNV-1a.
func pick(key string, n int) int {
	if n <= 1 {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(n))
}
