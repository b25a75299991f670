package model

// Host is the read-only game state the overlay samples every frame.
// Implementations must be cheap and side-effect free; callers never
// retain results beyond the frame.
type Host interface {
	Prayer() ResourceState
	ActiveDrainRates() []float64
	Restorative() RestorativeProfile
	// OrbBounds returns the prayer orb widget bounds; ok is false when the
	// widget does not exist yet.
	OrbBounds() (bounds Rect, ok bool)
	MousePosition() Point
}

// StatusPublisher receives each rendered frame for out-of-band readers.
type StatusPublisher interface {
	Publish(status IndicatorStatus)
}
