// Package prayer is the catalogue of prayers a player can have active and
// the drain each one contributes.
package prayer

// Prayer identifies one prayer in the catalogue.
type Prayer int

const (
	ThickSkin Prayer = iota
	BurstOfStrength
	ClarityOfThought
	SharpEye
	MysticWill
	RockSkin
	SuperhumanStrength
	ImprovedReflexes
	RapidRestore
	RapidHeal
	ProtectItem
	HawkEye
	MysticLore
	SteelSkin
	UltimateStrength
	IncredibleReflexes
	ProtectFromMagic
	ProtectFromMissiles
	ProtectFromMelee
	EagleEye
	MysticMight
	Retribution
	Redemption
	Smite
	Preserve
	Chivalry
	Piety
	Rigour
	Augury

	count
)

type info struct {
	name string
	// drain in points per minute at zero prayer bonus
	drainRate float64
}

var catalogue = [count]info{
	ThickSkin:           {"Thick Skin", 5},
	BurstOfStrength:     {"Burst of Strength", 5},
	ClarityOfThought:    {"Clarity of Thought", 5},
	SharpEye:            {"Sharp Eye", 5},
	MysticWill:          {"Mystic Will", 5},
	RockSkin:            {"Rock Skin", 10},
	SuperhumanStrength:  {"Superhuman Strength", 10},
	ImprovedReflexes:    {"Improved Reflexes", 10},
	RapidRestore:        {"Rapid Restore", 1.66},
	RapidHeal:           {"Rapid Heal", 3.33},
	ProtectItem:         {"Protect Item", 3.33},
	HawkEye:             {"Hawk Eye", 10},
	MysticLore:          {"Mystic Lore", 10},
	SteelSkin:           {"Steel Skin", 20},
	UltimateStrength:    {"Ultimate Strength", 20},
	IncredibleReflexes:  {"Incredible Reflexes", 20},
	ProtectFromMagic:    {"Protect from Magic", 20},
	ProtectFromMissiles: {"Protect from Missiles", 20},
	ProtectFromMelee:    {"Protect from Melee", 20},
	EagleEye:            {"Eagle Eye", 20},
	MysticMight:         {"Mystic Might", 20},
	Retribution:         {"Retribution", 5},
	Redemption:          {"Redemption", 10},
	Smite:               {"Smite", 30},
	Preserve:            {"Preserve", 3.33},
	Chivalry:            {"Chivalry", 40},
	Piety:               {"Piety", 40},
	Rigour:              {"Rigour", 40},
	Augury:              {"Augury", 40},
}

// All returns every prayer in catalogue order.
func All() []Prayer {
	out := make([]Prayer, count)
	for i := range out {
		out[i] = Prayer(i)
	}
	return out
}

// Valid reports whether p is in the catalogue.
func (p Prayer) Valid() bool { return p >= 0 && p < count }

func (p Prayer) String() string {
	if !p.Valid() {
		return "Unknown"
	}
	return catalogue[p].name
}

// DrainRate is the prayer's drain in points per minute before bonus.
func (p Prayer) DrainRate() float64 {
	if !p.Valid() {
		return 0
	}
	return catalogue[p].drainRate
}

// Set is the group of currently active prayers. The zero value is empty.
type Set struct {
	bits uint64
}

func (s *Set) Activate(p Prayer) {
	if p.Valid() {
		s.bits |= 1 << uint(p)
	}
}

func (s *Set) Deactivate(p Prayer) {
	if p.Valid() {
		s.bits &^= 1 << uint(p)
	}
}

// Toggle flips p and returns whether it is now active.
func (s *Set) Toggle(p Prayer) bool {
	if !p.Valid() {
		return false
	}
	s.bits ^= 1 << uint(p)
	return s.Active(p)
}

func (s Set) Active(p Prayer) bool {
	return p.Valid() && s.bits&(1<<uint(p)) != 0
}

func (s *Set) Clear() { s.bits = 0 }

func (s Set) Empty() bool { return s.bits == 0 }

// List returns the active prayers in catalogue order.
func (s Set) List() []Prayer {
	var out []Prayer
	for p := Prayer(0); p < count; p++ {
		if s.Active(p) {
			out = append(out, p)
		}
	}
	return out
}

// DrainRates returns one entry per active prayer, the form the overlay sums
// each frame.
func (s Set) DrainRates() []float64 {
	var out []float64
	for _, p := range s.List() {
		out = append(out, p.DrainRate())
	}
	return out
}
