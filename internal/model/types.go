package model

// Point is a position on the host canvas.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Rect is an axis-aligned widget bounds on the host canvas.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Contains reports whether (x, y) lies inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// ResourceState is a per-frame snapshot of the depleting resource.
type ResourceState struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Deficit is the number of points missing from max.
func (s ResourceState) Deficit() int {
	return s.Max - s.Current
}

// RestorativeProfile describes what the player could dose with right now.
type RestorativeProfile struct {
	Bonus           int  `json:"bonus"`
	HasPrayerPotion bool `json:"has_prayer_potion"`
	HasSuperRestore bool `json:"has_super_restore"`
	HasHolyWrench   bool `json:"has_holy_wrench"`
}

// HasAnyDose reports whether at least one restorative item is held.
func (p RestorativeProfile) HasAnyDose() bool {
	return p.HasPrayerPotion || p.HasSuperRestore
}

// HostSnapshot is a complete copy of host state. It satisfies Host, so a
// snapshot received over the wire can be rendered directly.
type HostSnapshot struct {
	Resource     ResourceState      `json:"resource"`
	DrainRates   []float64          `json:"drain_rates"`
	Restoratives RestorativeProfile `json:"restoratives"`
	Orb          Rect               `json:"orb"`
	OrbVisible   bool               `json:"orb_visible"`
	Pointer      Point              `json:"pointer"`
}

func (s HostSnapshot) Prayer() ResourceState { return s.Resource }

func (s HostSnapshot) ActiveDrainRates() []float64 {
	return append([]float64(nil), s.DrainRates...)
}

func (s HostSnapshot) Restorative() RestorativeProfile { return s.Restoratives }

func (s HostSnapshot) OrbBounds() (Rect, bool) { return s.Orb, s.OrbVisible }

func (s HostSnapshot) MousePosition() Point { return s.Pointer }

// IndicatorStatus is the last rendered frame as exposed to status readers.
type IndicatorStatus struct {
	Skipped        bool    `json:"skipped"`
	Eligible       bool    `json:"eligible"`
	RingDrawn      bool    `json:"ring_drawn"`
	Recommendation string  `json:"recommendation"`
	Phase          float64 `json:"phase"`
	Color          string  `json:"color"`
	Countdown      string  `json:"countdown"`
	Tooltip        string  `json:"tooltip,omitempty"`
	Current        int     `json:"current"`
	Max            int     `json:"max"`
	DrainRate      float64 `json:"drain_rate"`
	Bonus          int     `json:"bonus"`
}
