package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	apiclient "github.com/donaldgifford/rental-upsell/internal/api/client"
	"github.com/donaldgifford/rental-upsell/internal/api/handlers"
	"github.com/donaldgifford/rental-upsell/internal/engine"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printRecommendation(w io.Writer, resp *apiclient.RecommendationResponse) error {
	tw := newTabWriter(w)
	tw.writef("Booking:\t%s\n", resp.BookingID)
	if resp.CreatedNewBooking {
		tw.writef("New Booking:\tyes\n")
	}

	res := resp.Recommendations
	if res == nil {
		return tw.finish()
	}

	tw.writef("Persona:\t%s (%s)\n", res.Persona.Label, res.Persona.ID)
	tw.writef("User Tags:\t%s\n", joinTags(res.UserTags))
	tw.writef("Primary:\t%s\n", res.PrimaryOfferType)

	offer := res.FinalOffer
	tw.writef("Offer:\t%s\n", offer.Type)
	switch offer.Type {
	case domain.OfferCar:
		tw.writef("Upgrade To:\t%s (score %.2f)\n", offer.Car.Vehicle.DisplayName(), offer.Car.TotalScore)
		if res.BestCarOffer != nil {
			tw.writef("Price Diff/Day:\t%.2f\n", res.BestCarOffer.PriceDifference)
			printMessage(tw, &res.BestCarOffer.Message)
		}
	case domain.OfferProtection:
		tw.writef("Package:\t%s (score %.2f)\n", offer.Protection.Protection.Name, offer.Protection.TotalScore)
		if res.BestProtectionOffer != nil {
			tw.writef("Price Diff:\t%.2f\n", res.BestProtectionOffer.PriceDifference)
			printMessage(tw, &res.BestProtectionOffer.Message)
		}
	default:
		tw.writef("Reason:\t%s\n", offer.Reason)
	}

	return tw.finish()
}

func printMessage(tw *tabWriter, m *domain.UpsellMessage) {
	tw.writef("Headline:\t%s\n", m.Headline)
	for _, b := range m.Bullets {
		tw.writef("\t- %s\n", b)
	}
	if m.Stat != "" {
		tw.writef("Stat:\t%s\n", m.Stat)
	}
	tw.writef("Pitch:\t%s\n", m.LLMExplanation)
}

func printSimulation(w io.Writer, sim *engine.Simulation) error {
	tw := newTabWriter(w)
	tw.writef("PERSONA\tBEST\tWORST\tUPGRADE\tPRICE DIFF/DAY\n")
	for i := range sim.Outcomes {
		o := &sim.Outcomes[i]
		upgrade := "-"
		if o.Upgrade != nil {
			upgrade = o.Upgrade.Vehicle.DisplayName()
		}
		tw.writef("%s\t%s\t%s\t%s\t%.2f\n",
			o.PersonaID,
			truncate(o.Best.Vehicle.DisplayName(), 30),
			truncate(o.Worst.Vehicle.DisplayName(), 30),
			truncate(upgrade, 30),
			o.PriceDifference,
		)
	}
	return tw.finish()
}

func printPersonasTable(w io.Writer, personas []handlers.PersonaWithTags) error {
	tw := newTabWriter(w)
	tw.writef("ID\tLABEL\tPURPOSE\tGROUP\tDAYS\tTAGS\n")
	for i := range personas {
		p := &personas[i].Persona
		tw.writef("%s\t%s\t%s\t%s/%d\t%d\t%s\n",
			p.ID,
			p.Label,
			p.TripPurpose,
			p.GroupType,
			p.GroupSize,
			p.TripDurationDays,
			truncate(joinTags(personas[i].UserTags), 50),
		)
	}
	return tw.finish()
}

func printPersonaDetail(w io.Writer, pt *handlers.PersonaWithTags) error {
	p := &pt.Persona
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", p.ID)
	tw.writef("Label:\t%s\n", p.Label)
	tw.writef("Description:\t%s\n", p.Description)
	tw.writef("Trip:\t%s, %d days\n", p.TripPurpose, p.TripDurationDays)
	tw.writef("Group:\t%s (%d)\n", p.GroupType, p.GroupSize)
	tw.writef("Luggage:\t%s\n", p.LuggageLevel)
	tw.writef("Comfort:\t%s\n", p.ComfortPreference)
	tw.writef("Price Sensitivity:\t%s\n", p.PriceSensitivity)
	tw.writef("Risk Attitude:\t%s\n", p.RiskAttitude)
	tw.writef("User Tags:\t%s\n", joinTags(pt.UserTags))
	return tw.finish()
}

func printTags(w io.Writer, tags []domain.Tag) error {
	tw := newTabWriter(w)
	for _, t := range tags {
		tw.writef("%s\n", t)
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func joinTags(tags []domain.Tag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
