// Package clipboard provides pluggable access to the platform clipboards.
//
// The platform exposes two clipboard buffers: the system clipboard
// (KindClipboard) and, on hosts that have one, the primary selection
// (KindSelection). Both are reached through the Provider interface so that
// the register store never depends on a concrete backend.
//
// # Providers
//
// Several providers are available, roughly in order of preference:
//
//   - CommandProvider: shells out to platform clipboard tools such as
//     wl-copy/wl-paste, xclip, xsel, pbcopy/pbpaste, or win32yank.
//   - NativeProvider: uses the host clipboard API directly for the system
//     clipboard kind.
//   - OSC52Provider: writes through a terminal's OSC 52 escape support.
//     Write-only; useful over SSH where no display tools exist.
//   - MemoryProvider: an in-process fallback when nothing else is available.
//     Contents are lost when the session ends.
//
// DetectProvider inspects the environment and returns the best available
// provider for the host:
//
//	provider := clipboard.DetectProvider()
//	err := provider.Set(clipboard.KindClipboard, "hello")
package clipboard
