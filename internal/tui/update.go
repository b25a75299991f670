package tui

import (
	"errors"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/doseorb/internal/dose"
	"github.com/tinytelemetry/doseorb/internal/sim"
)

func (p *OrbPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.help.Width = msg.Width
		return nil, nil

	case TickMsg:
		p.onSimTick()
		return p.tickCmd(), nil

	case remoteTickMsg:
		p.onRemoteTick()
		return p.waitForRemoteTick(), nil

	case remoteClosedMsg:
		p.setStatus("remote host disconnected")
		return nil, nil

	case FrameMsg:
		p.renderFrame()
		return p.frameCmd(), nil

	case tea.MouseMsg:
		if p.helpOpen {
			_, cmd := p.helpModal.Update(msg)
			return cmd, nil
		}
		if p.sim != nil {
			p.sim.SetPointer(msg.X, msg.Y)
		}
		return nil, nil

	case tea.KeyMsg:
		return p.handleKey(msg), nil
	}
	return nil, nil
}

func (p *OrbPage) onSimTick() {
	p.sim.Tick()
	p.renderer.OnTick()
	p.ticks++
	p.history.push(p.sim.Prayer().Current)
}

func (p *OrbPage) onRemoteTick() {
	p.renderer.OnTick()
	p.ticks++
	p.history.push(p.remote.Prayer().Current)
}

// renderFrame draws one overlay frame into the page surface and fans the
// result out to the publisher and the audio cue.
func (p *OrbPage) renderFrame() {
	p.surface.reset()
	p.last = p.renderer.Render(&p.surface, &p.surface)
	p.frames++

	if p.publisher != nil {
		p.publisher.Publish(p.last.Status())
	}

	shown := p.last.Ring != nil
	if shown && !p.ringShown && p.cue != nil {
		p.cue.Chime()
	}
	p.ringShown = shown
}

func (p *OrbPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	if p.helpOpen {
		closeModal, cmd := p.helpModal.Update(msg)
		if closeModal {
			p.helpOpen = false
		}
		return cmd
	}

	switch {
	case key.Matches(msg, p.keys.Quit), key.Matches(msg, p.keys.ForceQuit):
		return tea.Quit
	case key.Matches(msg, p.keys.Help):
		p.helpOpen = true
		return nil
	case key.Matches(msg, p.keys.ToggleIndicator):
		cfg := p.renderer.Config()
		cfg.ShowDoseIndicator = !cfg.ShowDoseIndicator
		p.renderer.SetConfig(cfg)
		p.setStatus("dose ring " + onOff(cfg.ShowDoseIndicator))
		return nil
	case key.Matches(msg, p.keys.ToggleStatistics):
		cfg := p.renderer.Config()
		cfg.ShowStatistics = !cfg.ShowStatistics
		p.renderer.SetConfig(cfg)
		p.setStatus("statistics tooltip " + onOff(cfg.ShowStatistics))
		return nil
	}

	if p.sim == nil {
		if isSimKey(p.keys, msg) {
			p.setStatus("simulator keys are disabled while a remote host is attached")
		}
		return nil
	}
	p.handleSimKey(msg)
	return nil
}

func isSimKey(k KeyMap, msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Prayers, k.DrinkPotion, k.DrinkRestore, k.Restock,
		k.HolyWrench, k.BonusUp, k.BonusDown, k.ToggleOrb)
}

func (p *OrbPage) handleSimKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, p.keys.Prayers):
		idx := int(msg.String()[0] - '1')
		if idx < 0 || idx >= len(hotbar) {
			return
		}
		pr := hotbar[idx]
		on, err := p.sim.TogglePrayer(pr)
		if err != nil {
			p.setStatus(fmt.Sprintf("cannot activate %s: %v", pr, err))
			return
		}
		p.setStatus(pr.String() + " " + onOff(on))

	case key.Matches(msg, p.keys.DrinkPotion):
		p.drink(dose.ItemPrayerPotion)
	case key.Matches(msg, p.keys.DrinkRestore):
		p.drink(dose.ItemSuperRestore)

	case key.Matches(msg, p.keys.Restock):
		p.sim.AddDoses(dose.ItemPrayerPotion, restockDoses)
		p.sim.AddDoses(dose.ItemSuperRestore, restockDoses)
		p.setStatus(fmt.Sprintf("restocked %d of each dose", restockDoses))

	case key.Matches(msg, p.keys.HolyWrench):
		p.setStatus("holy wrench " + onOff(p.sim.ToggleHolyWrench()))

	case key.Matches(msg, p.keys.BonusUp):
		p.setStatus(fmt.Sprintf("prayer bonus %+d", p.sim.AdjustBonus(1)))
	case key.Matches(msg, p.keys.BonusDown):
		p.setStatus(fmt.Sprintf("prayer bonus %+d", p.sim.AdjustBonus(-1)))

	case key.Matches(msg, p.keys.ToggleOrb):
		p.orbVisible = !p.orbVisible
		p.sim.SetOrb(SimOrbBounds(), p.orbVisible)
		p.setStatus("prayer orb " + onOff(p.orbVisible))
	}
}

func (p *OrbPage) drink(item dose.Item) {
	restored, err := p.sim.Drink(item)
	switch {
	case errors.Is(err, sim.ErrNoDose):
		p.setStatus(fmt.Sprintf("no %s left", item))
	case err != nil:
		p.setStatus(err.Error())
	default:
		p.setStatus(fmt.Sprintf("drank %s, +%d prayer (%d left)", item, restored, p.sim.Doses(item)))
	}
}

func (p *OrbPage) setStatus(text string) {
	p.status = text
	p.statusAt = p.clock.Now()
	log.Printf("tui: %s", text)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
