// Package sim is an in-process stand-in for the game client. It owns prayer
// points, active prayers and the potion inventory, drains points on every
// tick and answers the overlay's per-frame queries.
package sim

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tinytelemetry/doseorb/internal/dose"
	"github.com/tinytelemetry/doseorb/internal/model"
	"github.com/tinytelemetry/doseorb/internal/prayer"
)

// ErrNoDose is returned when drinking an item the inventory has none of.
var ErrNoDose = errors.New("sim: no doses left")

// ErrNoPrayer is returned when activating a prayer with zero points.
var ErrNoPrayer = errors.New("sim: out of prayer points")

// Config seeds a simulated player.
type Config struct {
	MaxPrayer     int
	Bonus         int
	PrayerPotions int
	SuperRestores int
	HolyWrench    bool
	TickInterval  time.Duration
}

// Host is a simulated game client. It is safe for concurrent use; the UI
// mutates it while status readers take snapshots.
type Host struct {
	mu sync.Mutex

	current, max int
	bonus        int
	holyWrench   bool
	prayers      prayer.Set
	inventory    map[dose.Item]int

	tickSeconds  float64
	drainCounter float64
	ticks        uint64

	orb        model.Rect
	orbVisible bool
	pointer    model.Point
}

// New creates a host at full prayer.
func New(cfg Config) *Host {
	if cfg.MaxPrayer <= 0 {
		cfg.MaxPrayer = model.DefaultMaxPrayer
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = model.DefaultTickInterval
	}
	return &Host{
		current:    cfg.MaxPrayer,
		max:        cfg.MaxPrayer,
		bonus:      cfg.Bonus,
		holyWrench: cfg.HolyWrench,
		inventory: map[dose.Item]int{
			dose.ItemPrayerPotion: max(cfg.PrayerPotions, 0),
			dose.ItemSuperRestore: max(cfg.SuperRestores, 0),
		},
		tickSeconds: cfg.TickInterval.Seconds(),
	}
}

// Tick advances the game by one tick and returns the points drained.
//
// Each tick adds drainRate*tickSeconds/60 to a counter; a point is lost each
// time the counter reaches 1+bonus/30. This is the rate
// dose.SecondsRemaining assumes.
func (h *Host) Tick() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.ticks++
	rate := dose.SumDrainRates(h.prayers.DrainRates())
	if rate == 0 || h.current == 0 {
		return 0
	}

	resistance := 1.0 + float64(h.bonus)/30.0
	lost := 0
	if resistance <= 0 {
		// a bonus this negative offers no resistance at all
		h.current--
		lost = 1
	} else {
		h.drainCounter += rate * h.tickSeconds / 60.0
		for h.current > 0 && h.drainCounter >= resistance {
			h.drainCounter -= resistance
			h.current--
			lost++
		}
	}

	if h.current == 0 {
		h.prayers.Clear()
		h.drainCounter = 0
	}
	return lost
}

// Drink consumes one dose of item and returns the points restored.
func (h *Host) Drink(item dose.Item) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	left, known := h.inventory[item]
	if !known {
		return 0, fmt.Errorf("sim: cannot drink %s", item)
	}
	if left == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoDose, item)
	}
	h.inventory[item] = left - 1

	amount := dose.RestoreAmount(item, h.max, h.holyWrench)
	before := h.current
	h.current = min(h.max, h.current+amount)
	return h.current - before, nil
}

// TogglePrayer flips p and reports whether it is now active.
func (h *Host) TogglePrayer(p prayer.Prayer) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.prayers.Active(p) && h.current == 0 {
		return false, ErrNoPrayer
	}
	return h.prayers.Toggle(p), nil
}

// ActivePrayers lists the prayers currently on.
func (h *Host) ActivePrayers() []prayer.Prayer {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.prayers.List()
}

// ToggleHolyWrench flips the wrench and returns the new state.
func (h *Host) ToggleHolyWrench() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.holyWrench = !h.holyWrench
	return h.holyWrench
}

// AdjustBonus adds delta to the prayer bonus and returns the new value.
func (h *Host) AdjustBonus(delta int) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.bonus += delta
	return h.bonus
}

// AddDoses puts n more doses of item in the inventory.
func (h *Host) AddDoses(item dose.Item, n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.inventory[item]; ok && n > 0 {
		h.inventory[item] += n
	}
}

// Doses returns how many doses of item are left.
func (h *Host) Doses(item dose.Item) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.inventory[item]
}

// SetPrayer forces the current points, clamped to [0, max].
func (h *Host) SetPrayer(current int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = min(max(current, 0), h.max)
}

// SetOrb places (or hides) the prayer orb widget.
func (h *Host) SetOrb(bounds model.Rect, visible bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.orb = bounds
	h.orbVisible = visible
}

// SetPointer records the latest mouse position.
func (h *Host) SetPointer(x, y int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pointer = model.Point{X: x, Y: y}
}

// Ticks returns how many ticks have elapsed.
func (h *Host) Ticks() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ticks
}

func (h *Host) Prayer() model.ResourceState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return model.ResourceState{Current: h.current, Max: h.max}
}

func (h *Host) ActiveDrainRates() []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.prayers.DrainRates()
}

func (h *Host) Restorative() model.RestorativeProfile {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.restorativeLocked()
}

func (h *Host) OrbBounds() (model.Rect, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.orb, h.orbVisible
}

func (h *Host) MousePosition() model.Point {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pointer
}

func (h *Host) restorativeLocked() model.RestorativeProfile {
	return model.RestorativeProfile{
		Bonus:           h.bonus,
		HasPrayerPotion: h.inventory[dose.ItemPrayerPotion] > 0,
		HasSuperRestore: h.inventory[dose.ItemSuperRestore] > 0,
		HasHolyWrench:   h.holyWrench,
	}
}
