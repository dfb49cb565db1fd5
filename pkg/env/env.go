// Package env keeps names of environment variables with special significance
// to plugview.
package env

// Environment variables with special significance to plugview.
//
// Settings overrides also use the PLUGVIEW_ prefix; see package settings.
const (
	PLUGVIEW_TEST_TIME_SCALE = "PLUGVIEW_TEST_TIME_SCALE"
	XDG_CONFIG_HOME          = "XDG_CONFIG_HOME"
	XDG_STATE_HOME           = "XDG_STATE_HOME"
	HOME                     = "HOME"
)

// SettingsPrefix is the envconfig prefix for settings overrides.
const SettingsPrefix = "PLUGVIEW"
