package pricing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// ErrNoPricingTier signals that a rental duration falls outside every
// configured tier for an equipment. Callers must block the line-item save
// and surface the equipment as missing pricing configuration.
var ErrNoPricingTier = errors.New("no pricing tier found")

// NoTierError carries the details needed to tell an admin which equipment
// needs a tier for which duration. EquipmentName is filled in by the caller
// that knows it; the resolver itself only sees the tier list.
type NoTierError struct {
	EquipmentName string
	Days          int
}

func (e *NoTierError) Error() string {
	if e.EquipmentName != "" {
		return fmt.Sprintf("no pricing tier found for %q at %d day(s)", e.EquipmentName, e.Days)
	}
	return fmt.Sprintf("no pricing tier found for %d day(s)", e.Days)
}

func (e *NoTierError) Unwrap() error { return ErrNoPricingTier }

// Tier is one duration range of an equipment's price list.
// A nil PeriodEnd means the range is open ended ("30+ days").
type Tier struct {
	PeriodStart     int
	PeriodEnd       *int
	PricePerDay     decimal.Decimal
	DiscountPercent decimal.Decimal
}

// ResolvedTier is the price and discount applicable to one rental duration.
type ResolvedTier struct {
	PricePerDay     decimal.Decimal
	DiscountPercent decimal.Decimal
}

// ResolveTier selects the tier covering the given rental length in days.
// Tiers are matched on periodStart <= days <= periodEnd after sorting by
// periodStart; with non-overlapping tiers the first match is the only match.
func ResolveTier(tiers []Tier, days int) (ResolvedTier, error) {
	if days < 1 || len(tiers) == 0 {
		return ResolvedTier{}, &NoTierError{Days: days}
	}

	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].PeriodStart < sorted[j].PeriodStart
	})

	for _, t := range sorted {
		if days < t.PeriodStart {
			continue
		}
		if t.PeriodEnd != nil && days > *t.PeriodEnd {
			continue
		}
		return ResolvedTier{PricePerDay: t.PricePerDay, DiscountPercent: t.DiscountPercent}, nil
	}
	return ResolvedTier{}, &NoTierError{Days: days}
}
