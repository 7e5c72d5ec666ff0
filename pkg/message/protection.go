package message

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/rental-upsell/pkg/tagging"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// ProtectionUpgrade is the input for protection copy.
type ProtectionUpgrade struct {
	Persona    domain.Persona
	UserTags   []domain.Tag
	Protection domain.ProtectionPackage
	Tags       []domain.Tag
}

func (u *ProtectionUpgrade) displayName() string {
	if u.Protection.Name != "" {
		return u.Protection.Name
	}
	return u.Protection.ID
}

// zeroDeductible reports whether the package states a deductible of zero.
func (u *ProtectionUpgrade) zeroDeductible() bool {
	return u.Protection.DeductibleAmount != nil && *u.Protection.DeductibleAmount == 0
}

var protectionReasons = []struct {
	tag    domain.Tag
	phrase string
}{
	{tagging.TagFullCoverage, "full cover for damage to the car"},
	{tagging.TagGlassProtection, "cover for windscreen and glass damage"},
	{tagging.TagTyreProtection, "cover for tyre damage"},
	{tagging.TagRoadsideAssistance, "help on the road if anything goes wrong"},
	{tagging.TagTheftProtection, "protection if the car is stolen"},
	{tagging.TagPersonalAccident, "personal accident cover for you and your passengers"},
	{tagging.TagYoungDriverProtection, "cover that also applies to younger drivers"},
}

const genericProtectionReason = "extra protection for a worry-free trip"

// ProtectionReasons returns the reason phrases for the package tags in
// priority order. It never returns an empty slice.
func ProtectionReasons(tags []domain.Tag) []string {
	var reasons []string
	for _, r := range protectionReasons {
		if domain.HasTag(tags, r.tag) {
			reasons = append(reasons, r.phrase)
		}
	}
	if len(reasons) == 0 {
		reasons = append(reasons, genericProtectionReason)
	}
	return reasons
}

// ProtectionExplanationFormal builds the deterministic explanation for a
// protection offer.
func ProtectionExplanationFormal(u *ProtectionUpgrade) string {
	reasons := ProtectionReasons(u.Tags)
	name := u.displayName()
	p := &u.Persona

	var b strings.Builder
	switch {
	case p.RiskAttitude == domain.RiskAverse:
		fmt.Fprintf(&b, "For complete peace of mind, %s gives you %s", name, reasons[0])
	case p.FranchiseTolerance == domain.LevelLow:
		fmt.Fprintf(&b, "To keep surprises on the bill to a minimum, %s gives you %s", name, reasons[0])
	case isFamily(p, u.UserTags):
		fmt.Fprintf(&b, "To keep your family protected, %s gives you %s", name, reasons[0])
	case p.TripPurpose == domain.TripBusiness:
		fmt.Fprintf(&b, "For a worry-free business trip, %s gives you %s", name, reasons[0])
	default:
		fmt.Fprintf(&b, "For your journey, %s gives you %s", name, reasons[0])
	}

	if len(reasons) > 1 {
		fmt.Fprintf(&b, " as well as %s.", reasons[1])
	} else {
		b.WriteString(".")
	}

	if u.zeroDeductible() {
		b.WriteString(" You will not pay a deductible if something happens.")
	}
	return b.String()
}

// ProtectionHeadline picks the headline for a protection offer.
func ProtectionHeadline(u *ProtectionUpgrade) string {
	switch {
	case u.Persona.RiskAttitude == domain.RiskAverse:
		return "Drive worry-free with " + u.displayName()
	case isFamily(&u.Persona, u.UserTags):
		return "Keep your family protected on the road"
	case u.Persona.TripPurpose == domain.TripBusiness:
		return "Focus on your meetings, not on the rental car"
	default:
		return "Extra peace of mind for your trip"
	}
}

// ProtectionBullets lists at most three selling points of the package.
func ProtectionBullets(u *ProtectionUpgrade) []string {
	var bullets []string
	if u.zeroDeductible() {
		bullets = append(bullets, "No deductible to pay")
	}
	if domain.HasTag(u.Tags, tagging.TagFullCoverage) {
		bullets = append(bullets, "Full damage coverage")
	}
	if domain.HasTag(u.Tags, tagging.TagGlassProtection) || domain.HasTag(u.Tags, tagging.TagTyreProtection) {
		bullets = append(bullets, "Glass and tyre damage covered")
	}
	if domain.HasTag(u.Tags, tagging.TagRoadsideAssistance) {
		bullets = append(bullets, "Roadside assistance included")
	}
	if domain.HasTag(u.Tags, tagging.TagTheftProtection) {
		bullets = append(bullets, "Theft protection included")
	}
	if len(bullets) == 0 {
		bullets = append(bullets, "More protection for your rental")
	}
	return truncate(bullets)
}

// ProtectionStat returns the supporting social-proof line.
func ProtectionStat(p *domain.Persona) string {
	switch {
	case p.RiskAttitude == domain.RiskAverse || p.PreviousInsuranceUptake == domain.UptakeAlways:
		return "Most travelers who like to play it safe add full protection."
	case p.GroupType == domain.GroupFamily:
		return "Many families add extra protection for longer trips."
	default:
		return "Customers on similar trips often add protection."
	}
}
