package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/doseorb/internal/clock"
	"github.com/tinytelemetry/doseorb/internal/dose"
	"github.com/tinytelemetry/doseorb/internal/model"
	"github.com/tinytelemetry/doseorb/internal/overlay"
	"github.com/tinytelemetry/doseorb/internal/prayer"
	"github.com/tinytelemetry/doseorb/internal/skin"
)

// OrbPageID identifies the orb page in the App router.
const OrbPageID = "orb"

const (
	statusTTL    = 3 * time.Second
	restockDoses = 4
)

// hotbar maps the number keys to prayers.
var hotbar = [...]prayer.Prayer{
	prayer.ProtectFromMelee,
	prayer.ProtectFromMissiles,
	prayer.ProtectFromMagic,
	prayer.Piety,
	prayer.Rigour,
	prayer.Augury,
	prayer.RapidHeal,
	prayer.Preserve,
	prayer.ThickSkin,
}

// Simulation is the host the page drives from the keyboard.
type Simulation interface {
	model.Host
	Tick() int
	Drink(item dose.Item) (int, error)
	TogglePrayer(p prayer.Prayer) (bool, error)
	ActivePrayers() []prayer.Prayer
	ToggleHolyWrench() bool
	AdjustBonus(delta int) int
	AddDoses(item dose.Item, n int)
	Doses(item dose.Item) int
	SetOrb(bounds model.Rect, visible bool)
	SetPointer(x, y int)
}

// RemoteFeed is a host driven by an external client that also delivers
// game ticks.
type RemoteFeed interface {
	model.Host
	Ticks() <-chan struct{}
	Done() <-chan struct{}
}

// Cue is notified when the ring appears.
type Cue interface {
	Chime()
}

// Options configures an OrbPage. Exactly one of Sim and Remote must be set.
type Options struct {
	Sim    Simulation
	Remote RemoteFeed

	Clock         clock.Clock
	TickInterval  time.Duration
	FrameInterval time.Duration
	Overlay       overlay.Config
	Skin          skin.Skin
	HistorySize   int

	Publisher model.StatusPublisher
	Cue       Cue
}

// TickMsg drives one simulated game tick.
type TickMsg time.Time

// FrameMsg drives one overlay frame.
type FrameMsg time.Time

type remoteTickMsg struct{}

type remoteClosedMsg struct{}

// OrbPage renders the prayer orb, its dose ring and statistics, and lets the
// keyboard drive a simulated player.
type OrbPage struct {
	sim    Simulation
	remote RemoteFeed
	host   model.Host

	clock         clock.Clock
	tickInterval  time.Duration
	frameInterval time.Duration

	renderer  *overlay.Renderer
	surface   frameSurface
	last      overlay.Result
	frames    uint64
	ticks     uint64
	ringShown bool

	history    *prayerHistory
	publisher  model.StatusPublisher
	cue        Cue
	orbVisible bool

	keys      KeyMap
	help      help.Model
	styles    styles
	helpModal *HelpModal
	helpOpen  bool

	status   string
	statusAt time.Time
	width    int
	height   int
}

// NewOrbPage builds the page. In simulator mode the simulated orb is placed
// where the page draws it.
func NewOrbPage(opts Options) (*OrbPage, error) {
	if (opts.Sim == nil) == (opts.Remote == nil) {
		return nil, errors.New("tui: exactly one of a simulator or a remote host is required")
	}
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = model.DefaultTickInterval
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = model.DefaultFrameInterval
	}
	if opts.HistorySize <= 0 {
		opts.HistorySize = model.DefaultHistorySize
	}
	if opts.Skin.Name == "" {
		opts.Skin, _ = skin.Builtin(model.DefaultSkin)
	}
	palette, err := opts.Skin.Palette()
	if err != nil {
		return nil, fmt.Errorf("tui: skin %q: %w", opts.Skin.Name, err)
	}

	var host model.Host = opts.Remote
	if opts.Sim != nil {
		host = opts.Sim
		opts.Sim.SetOrb(SimOrbBounds(), true)
	}

	renderer := overlay.NewRenderer(host, opts.Clock, opts.Overlay)
	renderer.SetPalette(palette)

	keys := DefaultKeyMap()
	st := newStyles(opts.Skin)
	return &OrbPage{
		sim:           opts.Sim,
		remote:        opts.Remote,
		host:          host,
		clock:         opts.Clock,
		tickInterval:  opts.TickInterval,
		frameInterval: opts.FrameInterval,
		renderer:      renderer,
		history:       newPrayerHistory(opts.HistorySize),
		publisher:     opts.Publisher,
		cue:           opts.Cue,
		orbVisible:    true,
		keys:          keys,
		help:          help.New(),
		styles:        st,
		helpModal:     newHelpModal(keys, st),
	}, nil
}

func (p *OrbPage) ID() string { return OrbPageID }

func (p *OrbPage) Init() tea.Cmd {
	cmds := []tea.Cmd{p.frameCmd()}
	if p.sim != nil {
		cmds = append(cmds, p.tickCmd())
	} else {
		cmds = append(cmds, p.waitForRemoteTick())
	}
	return tea.Batch(cmds...)
}

// Last returns the most recent frame result.
func (p *OrbPage) Last() overlay.Result { return p.last }

// Renderer exposes the overlay renderer.
func (p *OrbPage) Renderer() *overlay.Renderer { return p.renderer }

func (p *OrbPage) tickCmd() tea.Cmd {
	return tea.Tick(p.tickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (p *OrbPage) frameCmd() tea.Cmd {
	return tea.Tick(p.frameInterval, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

// waitForRemoteTick blocks for the next remote tick. It is re-issued after
// each delivery so ticks reach the update loop one at a time and in order.
// Ticks queued before the host closed are still delivered.
func (p *OrbPage) waitForRemoteTick() tea.Cmd {
	ticks, done := p.remote.Ticks(), p.remote.Done()
	return func() tea.Msg {
		select {
		case <-ticks:
			return remoteTickMsg{}
		case <-done:
			select {
			case <-ticks:
				return remoteTickMsg{}
			default:
				return remoteClosedMsg{}
			}
		}
	}
}
