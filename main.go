// ABOUTME: Minimalist desktop clock showing the local time in the Ocean theme.
// ABOUTME: Entry point wiring flags, config, health checks, and the GUI loop.

package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	g "github.com/AllenDang/giu"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (default: per-user config dir)")
	healthcheck := flag.Bool("healthcheck", false, "Run self-checks without opening a window (or OCEAN_CLOCK_HEALTHCHECK env)")
	strict := flag.Bool("strict", false, "Exit 1 when the display environment is unavailable (or OCEAN_CLOCK_STRICT env)")
	setup := flag.Bool("setup", false, "Open the settings window before starting the clock")
	install := flag.Bool("install-autostart", false, "Install login autostart and exit")
	uninstall := flag.Bool("uninstall-autostart", false, "Remove login autostart and exit")

	flag.Parse()

	// Environment variables as fallbacks
	if !*healthcheck {
		*healthcheck = envBool("OCEAN_CLOCK_HEALTHCHECK")
	}
	if !*strict {
		*strict = envBool("OCEAN_CLOCK_STRICT")
	}

	if *install {
		if err := InstallAutostart(); err != nil {
			log.Fatalf("autostart install failed: %v", err)
		}
		log.Println("autostart installed")
		return
	}
	if *uninstall {
		if err := UninstallAutostart(); err != nil {
			log.Fatalf("autostart removal failed: %v", err)
		}
		log.Println("autostart removed")
		return
	}

	path := *configPath
	if path == "" {
		path = ConfigPath()
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("config load failed, using defaults: %v", err)
		}
		cfg = DefaultConfig()
	}

	if *healthcheck {
		if err := runHealthCheck(); err != nil {
			log.Printf("health check failed: %v", err)
			os.Exit(1)
		}
		if err := probeDisplay(); err != nil {
			log.Printf("%v", err)
			if *strict {
				os.Exit(1)
			}
		} else {
			log.Printf("display available")
		}
		return
	}

	if err := probeDisplay(); err != nil {
		log.Printf("%v", err)
		if *strict {
			os.Exit(1)
		}
		// Headless and not strict: run the self-checks instead of a window
		// so non-interactive wrappers still see a healthy exit.
		if err := runHealthCheck(); err != nil {
			os.Exit(1)
		}
		return
	}

	if *setup {
		result := ShowSettingsWindow(cfg)
		if !result.Cancelled {
			cfg = result.Config
			if err := cfg.Save(path); err != nil {
				log.Printf("Warning: failed to save config: %v", err)
			} else {
				log.Printf("Config saved to %s", path)
			}
		}
	}

	runClock(cfg, path)
}

// envBool reads a boolean environment toggle; "1" and "true" enable it.
func envBool(name string) bool {
	v := os.Getenv(name)
	return v == "1" || v == "true"
}

// runClock opens the clock window and blocks until it closes.
func runClock(cfg *Config, cfgPath string) {
	var wndFlags g.MasterWindowFlags
	if cfg.AlwaysOnTop {
		wndFlags |= g.MasterWindowFlagsFloating
	}

	wnd := g.NewMasterWindow("Ocean Clock", windowW, windowH, wndFlags)
	wnd.SetBgColor(oceanTheme.Background)
	centerOnPrimary(wnd, windowW, windowH)

	loop := NewDisplayLoop(systemClock{}, cfg.RefreshInterval(), g.Update)
	app := newClockApp(wnd, loop, cfg)

	wnd.SetCloseCallback(func() bool {
		app.shutdown()
		return true
	})

	// Ctrl+C and SIGTERM close the window like the close button does.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("received signal, shutting down")
		app.shutdown()
	}()

	watcher, err := watchConfig(cfgPath, app.applyConfig)
	if err != nil {
		log.Printf("config watching disabled: %v", err)
	} else {
		defer watcher.Close()
	}

	StartTray(app.toggleVisible, app.shutdown)
	defer StopTray()

	loop.Start()
	wnd.Run(app.frame)
	loop.Stop()
}
