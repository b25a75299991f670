// Package overlay composes the per-frame dose indicator: it samples host
// state, asks the dose rules for a decision and issues ring and tooltip draw
// calls.
package overlay

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tinytelemetry/doseorb/internal/clock"
	"github.com/tinytelemetry/doseorb/internal/dose"
	"github.com/tinytelemetry/doseorb/internal/model"
)

// Ring placement relative to the orb widget bounds. The widget includes the
// level number to the left of the orb, so the ring is offset and sized by
// the height alone.
const (
	ringOffsetX = 24
	ringOffsetY = -1
	ringStroke  = 2
)

// TooltipLineBreak separates tooltip lines.
const TooltipLineBreak = "</br>"

// Config gates what the overlay draws.
type Config struct {
	ShowDoseIndicator bool
	ShowStatistics    bool
}

// DefaultConfig shows both the ring and the tooltip.
func DefaultConfig() Config {
	return Config{ShowDoseIndicator: true, ShowStatistics: true}
}

// Ring is one pulse ring draw call.
type Ring struct {
	X, Y     int
	Diameter int
	Stroke   int
	Color    colorful.Color
}

// Surface receives ring draw calls.
type Surface interface {
	DrawRing(r Ring)
}

// Tooltips receives tooltip text for the current frame.
type Tooltips interface {
	AddTooltip(text string)
}

// Result describes what one frame produced.
type Result struct {
	// Skipped is set when the orb widget was unavailable and nothing was
	// evaluated.
	Skipped bool

	Bounds      model.Rect
	Resource    model.ResourceState
	Restorative model.RestorativeProfile
	DrainRate   float64
	Countdown   string
	Eligibility dose.Eligibility
	Phase       float64

	Tooltip string
	Ring    *Ring
}

// Status flattens the result for status readers.
func (r Result) Status() model.IndicatorStatus {
	st := model.IndicatorStatus{
		Skipped:        r.Skipped,
		Eligible:       r.Eligibility.Eligible(),
		RingDrawn:      r.Ring != nil,
		Recommendation: r.Eligibility.Best().String(),
		Phase:          r.Phase,
		Countdown:      r.Countdown,
		Tooltip:        r.Tooltip,
		Current:        r.Resource.Current,
		Max:            r.Resource.Max,
		DrainRate:      r.DrainRate,
		Bonus:          r.Restorative.Bonus,
	}
	if r.Ring != nil {
		st.Color = r.Ring.Color.Hex()
	}
	return st
}

// Renderer draws the dose indicator once per frame. The only state it keeps
// between frames is the tick tracker.
type Renderer struct {
	host    model.Host
	ticks   *dose.TickTracker
	clock   clock.Clock
	cfg     Config
	palette Palette
}

// NewRenderer wires a renderer to a host. A nil clock means the system clock.
func NewRenderer(host model.Host, clk clock.Clock, cfg Config) *Renderer {
	if clk == nil {
		clk = clock.System{}
	}
	return &Renderer{
		host:    host,
		ticks:   dose.NewTickTracker(clk),
		clock:   clk,
		cfg:     cfg,
		palette: DefaultPalette,
	}
}

// OnTick forwards a host tick notification to the pulse tracker.
func (r *Renderer) OnTick() { r.ticks.OnTick() }

// Ticks exposes the pulse tracker.
func (r *Renderer) Ticks() *dose.TickTracker { return r.ticks }

func (r *Renderer) Config() Config       { return r.cfg }
func (r *Renderer) SetConfig(cfg Config) { r.cfg = cfg }
func (r *Renderer) SetPalette(p Palette) { r.palette = p }

// Render evaluates one frame. Either sink may be nil.
func (r *Renderer) Render(surface Surface, tooltips Tooltips) Result {
	bounds, ok := r.host.OrbBounds()
	if !ok || bounds.X <= 0 {
		return Result{Skipped: true}
	}

	res := Result{
		Bounds:      bounds,
		Resource:    r.host.Prayer(),
		Restorative: r.host.Restorative(),
		DrainRate:   dose.SumDrainRates(r.host.ActiveDrainRates()),
		Phase:       r.ticks.Phase(r.clock.Now()),
	}
	res.Countdown = dose.TimeRemaining(res.DrainRate, res.Resource.Current, res.Restorative.Bonus)
	res.Eligibility = dose.Evaluate(res.Resource.Current, res.Resource.Max, res.Restorative)

	mouse := r.host.MousePosition()
	if r.cfg.ShowStatistics && bounds.Contains(mouse.X, mouse.Y) {
		res.Tooltip = fmt.Sprintf("Time Remaining: %s%sPrayer Bonus: %d",
			res.Countdown, TooltipLineBreak, res.Restorative.Bonus)
		if tooltips != nil {
			tooltips.AddTooltip(res.Tooltip)
		}
	}

	if !r.cfg.ShowDoseIndicator || !res.Restorative.HasAnyDose() || !res.Eligibility.Eligible() {
		return res
	}

	res.Ring = &Ring{
		X:        bounds.X + ringOffsetX,
		Y:        bounds.Y + ringOffsetY,
		Diameter: bounds.Height,
		Stroke:   ringStroke,
		Color:    r.palette.PulseColor(res.Phase),
	}
	if surface != nil {
		surface.DrawRing(*res.Ring)
	}
	return res
}
