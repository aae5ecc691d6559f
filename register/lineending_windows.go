//go:build windows

package register

// nativeLineEnding joins and matches clipboard fragments on this platform.
const nativeLineEnding = "\r\n"
