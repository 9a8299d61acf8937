// ABOUTME: Settings window for configuring the clock.
// ABOUTME: Lets the user toggle chime and always-on-top and tune the refresh rate.

package main

import (
	g "github.com/AllenDang/giu"
)

// SettingsResult holds the outcome of the settings window.
type SettingsResult struct {
	Config    *Config
	Cancelled bool
}

// settingsState holds the editable state for the settings window.
type settingsState struct {
	chime       bool
	alwaysOnTop bool
	refreshMs   int32
}

// ShowSettingsWindow displays a configuration window and blocks until the
// user saves or cancels. Returns the configuration values entered.
func ShowSettingsWindow(initial *Config) SettingsResult {
	result := SettingsResult{Cancelled: true}

	state := &settingsState{refreshMs: defaultRefreshMs}
	if initial != nil {
		state.chime = initial.Chime
		state.alwaysOnTop = initial.AlwaysOnTop
		if initial.RefreshMs != 0 {
			state.refreshMs = int32(initial.RefreshMs)
		}
	}

	wnd := g.NewMasterWindow("Ocean Clock Settings", 380, 240, 0)
	wnd.SetBgColor(oceanTheme.Background)

	wnd.Run(func() {
		g.SingleWindow().Layout(
			g.Label("Configure the clock:"),
			g.Spacing(),

			g.Checkbox("Hourly chime", &state.chime),
			g.Checkbox("Keep window on top", &state.alwaysOnTop),
			g.Spacing(),

			g.Label("Refresh interval (ms):"),
			g.SliderInt(&state.refreshMs, minRefreshMs, maxRefreshMs),
			g.Spacing(),
			g.Separator(),
			g.Spacing(),

			g.Row(
				g.Button("Save").Size(100, 28).OnClick(func() {
					result = SettingsResult{
						Config: &Config{
							Chime:       state.chime,
							AlwaysOnTop: state.alwaysOnTop,
							RefreshMs:   int(state.refreshMs),
						},
					}
					wnd.SetShouldClose(true)
				}),
				g.Button("Cancel").Size(100, 28).OnClick(func() {
					result = SettingsResult{Cancelled: true}
					wnd.SetShouldClose(true)
				}),
			),
		)
	})

	return result
}
