// ABOUTME: Linux auto-start management using systemd user services.
// ABOUTME: Provides install/uninstall functions for the systemd user service.

//go:build linux

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"text/template"
)

const serviceName = "ocean-clock.service"

// serviceDir returns the path to the systemd user service directory.
func serviceDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "systemd", "user")
}

// servicePath returns the path to the systemd service file.
func servicePath() string {
	dir := serviceDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, serviceName)
}

// serviceTemplate is the systemd user service template. The unit is tied to
// the graphical session since the clock is useless without a display.
var serviceTemplate = template.Must(template.New("service").Parse(`[Unit]
Description=Ocean Clock - Minimalist desktop clock
After=graphical-session.target
PartOf=graphical-session.target

[Service]
Type=simple
ExecStart={{.ExecutablePath}}

[Install]
WantedBy=graphical-session.target
`))

type serviceData struct {
	ExecutablePath string
}

// InstallAutostart creates and enables the systemd user service.
func InstallAutostart() error {
	svcPath := servicePath()
	if svcPath == "" {
		return fmt.Errorf("could not determine service path")
	}

	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not determine executable path: %w", err)
	}

	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return fmt.Errorf("could not resolve executable path: %w", err)
	}

	svcDir := serviceDir()
	if err := os.MkdirAll(svcDir, 0755); err != nil {
		return fmt.Errorf("could not create service directory: %w", err)
	}

	// Stop existing service if running (ignore errors)
	_ = exec.Command("systemctl", "--user", "stop", serviceName).Run()

	f, err := os.Create(svcPath)
	if err != nil {
		return fmt.Errorf("could not create service file: %w", err)
	}
	defer f.Close()

	if err := serviceTemplate.Execute(f, serviceData{ExecutablePath: execPath}); err != nil {
		return fmt.Errorf("could not write service file: %w", err)
	}

	if err := exec.Command("systemctl", "--user", "daemon-reload").Run(); err != nil {
		return fmt.Errorf("could not reload systemd: %w", err)
	}

	if err := exec.Command("systemctl", "--user", "enable", serviceName).Run(); err != nil {
		return fmt.Errorf("could not enable service: %w", err)
	}

	return nil
}

// UninstallAutostart stops, disables, and removes the systemd user service.
func UninstallAutostart() error {
	svcPath := servicePath()
	if svcPath == "" {
		return fmt.Errorf("could not determine service path")
	}

	// Stop and disable (ignore errors if not running/enabled)
	_ = exec.Command("systemctl", "--user", "stop", serviceName).Run()
	_ = exec.Command("systemctl", "--user", "disable", serviceName).Run()

	if err := os.Remove(svcPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not remove service file: %w", err)
	}

	_ = exec.Command("systemctl", "--user", "daemon-reload").Run()

	return nil
}

// IsAutostartInstalled returns true if auto-start is enabled.
func IsAutostartInstalled() bool {
	svcPath := servicePath()
	if svcPath == "" {
		return false
	}
	_, err := os.Stat(svcPath)
	return err == nil
}
