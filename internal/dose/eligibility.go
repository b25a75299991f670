package dose

import (
	"math"

	"github.com/tinytelemetry/doseorb/internal/model"
)

const (
	baseRestoreFraction   = 0.25
	wrenchRestoreFraction = 0.27

	prayerPotionFlatBonus = 7
	superRestoreFlatBonus = 8
)

// Item is a restorative consumable.
type Item int

const (
	ItemNone Item = iota
	ItemPrayerPotion
	ItemSuperRestore
)

func (i Item) String() string {
	switch i {
	case ItemPrayerPotion:
		return "prayer potion"
	case ItemSuperRestore:
		return "super restore"
	default:
		return "none"
	}
}

// RestoreAmount is how many points one dose of item restores for a player
// with the given maximum. The holy wrench raises the base from 25% to 27%.
func RestoreAmount(item Item, max int, holyWrench bool) int {
	max = nonNegative(max)
	fraction := baseRestoreFraction
	if holyWrench {
		fraction = wrenchRestoreFraction
	}
	base := int(math.Floor(float64(max) * fraction))

	switch item {
	case ItemPrayerPotion:
		return base + prayerPotionFlatBonus
	case ItemSuperRestore:
		return base + superRestoreFlatBonus
	default:
		return 0
	}
}

// Eligibility is the outcome of one evaluation.
type Eligibility struct {
	Deficit             int
	PrayerPotionRestore int
	SuperRestoreRestore int

	// Set when the item is held and the deficit is at least its restore
	// amount, so none of the dose would be wasted.
	PrayerPotion bool
	SuperRestore bool
}

// Eligible reports whether the indicator should be shown.
func (e Eligibility) Eligible() bool {
	return e.PrayerPotion || e.SuperRestore
}

// Best names the eligible item that restores the most, or ItemNone.
func (e Eligibility) Best() Item {
	switch {
	case e.SuperRestore:
		return ItemSuperRestore
	case e.PrayerPotion:
		return ItemPrayerPotion
	default:
		return ItemNone
	}
}

// Evaluate decides whether dosing is worthwhile. Negative levels are clamped
// to zero before the deficit is taken.
func Evaluate(current, max int, r model.RestorativeProfile) Eligibility {
	current, max = nonNegative(current), nonNegative(max)

	e := Eligibility{Deficit: model.ResourceState{Current: current, Max: max}.Deficit()}
	if e.Deficit <= 0 {
		e.Deficit = 0
		return e
	}

	e.PrayerPotionRestore = RestoreAmount(ItemPrayerPotion, max, r.HasHolyWrench)
	e.SuperRestoreRestore = RestoreAmount(ItemSuperRestore, max, r.HasHolyWrench)
	e.PrayerPotion = r.HasPrayerPotion && e.Deficit >= e.PrayerPotionRestore
	e.SuperRestore = r.HasSuperRestore && e.Deficit >= e.SuperRestoreRestore
	return e
}

// IsEligible is Evaluate reduced to the show/hide decision.
func IsEligible(current, max int, hasPrayerPotion, hasSuperRestore, holyWrench bool) bool {
	return Evaluate(current, max, model.RestorativeProfile{
		HasPrayerPotion: hasPrayerPotion,
		HasSuperRestore: hasSuperRestore,
		HasHolyWrench:   holyWrench,
	}).Eligible()
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
