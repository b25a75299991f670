package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tinytelemetry/doseorb/internal/hostrpc"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var socketPath string
	var remote bool
	var showVersion bool
	var printSkin bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/doseorb/config.yml)")
	flag.StringVar(&socketPath, "socket", "", "serve the host RPC on this socket instead of running the simulator")
	flag.BoolVar(&remote, "remote", false, "serve the host RPC on the default socket")
	flag.BoolVar(&printSkin, "print-skin", false, "print the configured skin as YAML and exit")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("doseorb - Prayer Dose Indicator\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if printSkin {
		if err := writeSkin(os.Stdout, cfg.Skin, skinConfigDir()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	switch {
	case socketPath != "":
		cfg.HostSocket = socketPath
	case remote && cfg.HostSocket == "":
		cfg.HostSocket = hostrpc.DefaultSocketPath()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
