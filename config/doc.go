// Package config loads the register subsystem's configuration.
//
// Configuration is a small TOML file selecting the clipboard provider and
// the diagnostic log level:
//
//	[clipboard]
//	provider = "auto"          # auto | memory | native | custom
//	copy-command = "wl-copy"   # custom provider only
//	paste-command = "wl-paste --no-newline"
//	primary-copy-command = "wl-copy --primary"
//	primary-paste-command = "wl-paste --primary --no-newline"
//
//	[logging]
//	level = "info"
//
// A missing file is not an error; defaults apply. The Watcher reloads the
// file when it changes on disk so a provider switch does not require a
// restart.
package config
