package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/doseorb/internal/audio"
	"github.com/tinytelemetry/doseorb/internal/clock"
	"github.com/tinytelemetry/doseorb/internal/hostrpc"
	"github.com/tinytelemetry/doseorb/internal/httpserver"
	"github.com/tinytelemetry/doseorb/internal/model"
	"github.com/tinytelemetry/doseorb/internal/overlay"
	"github.com/tinytelemetry/doseorb/internal/sim"
	"github.com/tinytelemetry/doseorb/internal/skin"
	"github.com/tinytelemetry/doseorb/internal/tui"
)

func run(cfg appConfig) error {
	closeLog := configureRuntimeLogger()
	defer closeLog()

	log.Printf("doseorb %s (%s) starting, config %q", version, commit, cfg.ConfigPath)

	opts := tui.Options{
		Clock:         clock.System{},
		TickInterval:  cfg.TickInterval,
		FrameInterval: cfg.FrameInterval,
		Overlay: overlay.Config{
			ShowDoseIndicator: cfg.ShowDoseIndicator,
			ShowStatistics:    cfg.ShowStatistics,
		},
		Skin:        loadSkin(cfg.Skin),
		HistorySize: cfg.HistorySize,
	}

	if cfg.HostSocket != "" {
		remote := hostrpc.NewRemoteHost(hostrpc.DefaultTickQueue)
		rpc := hostrpc.NewServer(cfg.HostSocket, remote)
		if err := rpc.Start(); err != nil {
			return fmt.Errorf("starting host socket %s: %w", cfg.HostSocket, err)
		}
		defer rpc.Stop()
		opts.Remote = remote
	} else {
		opts.Sim = sim.New(sim.Config{
			MaxPrayer:     cfg.SimMaxPrayer,
			Bonus:         cfg.SimPrayerBonus,
			PrayerPotions: cfg.SimPrayerPotions,
			SuperRestores: cfg.SimSuperRestores,
			HolyWrench:    cfg.SimHolyWrench,
			TickInterval:  cfg.TickInterval,
		})
	}

	var api *httpserver.Server
	if cfg.APIEnabled {
		pub := httpserver.NewPublisher()
		opts.Publisher = pub
		api = httpserver.NewServer(cfg.APIAddr, pub)
		if err := api.Start(); err != nil {
			return fmt.Errorf("starting status API on %s: %w", cfg.APIAddr, err)
		}
		defer func() {
			if err := api.Stop(); err != nil {
				log.Printf("httpserver: shutdown: %v", err)
			}
		}()
		log.Printf("httpserver: listening on %s", cfg.APIAddr)
	}

	if cfg.AudioCue {
		cue := audio.NewCue()
		if err := cue.Initialize(); err != nil {
			log.Printf("audio: cue disabled: %v", err)
		} else {
			defer cue.Close()
			opts.Cue = cue
		}
	}

	page, err := tui.NewOrbPage(opts)
	if err != nil {
		return err
	}
	program := tea.NewProgram(tui.NewApp(page), tea.WithAltScreen(), tea.WithMouseAllMotion())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		if _, err := program.Run(); err != nil {
			if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
				return fmt.Errorf("doseorb requires a real terminal")
			}
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	})

	// A signal or a failed sibling stops the UI.
	g.Go(func() error {
		<-gctx.Done()
		program.Quit()
		return nil
	})

	err = g.Wait()
	log.Printf("doseorb exiting")
	return err
}

func skinConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "doseorb")
}

func loadSkin(name string) skin.Skin {
	s, err := skin.Load(name, skinConfigDir())
	if err != nil {
		log.Printf("skin: %v (using %s)", err, model.DefaultSkin)
		s, _ = skin.Builtin(model.DefaultSkin)
	}
	return s
}

// writeSkin prints the resolved skin as YAML, ready to be copied into the
// skins directory and edited.
func writeSkin(w io.Writer, name, configDir string) error {
	s, err := skin.Load(name, configDir)
	if err != nil {
		return err
	}
	data, err := s.Marshal()
	if err != nil {
		return fmt.Errorf("encoding skin %q: %w", name, err)
	}
	_, err = w.Write(data)
	return err
}

func configureRuntimeLogger() func() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	home, err := os.UserHomeDir()
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	logDir := filepath.Join(home, ".local", "state", "doseorb")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	f, err := os.OpenFile(filepath.Join(logDir, "doseorb.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}
}
