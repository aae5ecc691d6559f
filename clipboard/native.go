package clipboard

import (
	"fmt"

	atotto "github.com/atotto/clipboard"
)

// NativeProvider uses the host clipboard API directly via
// github.com/atotto/clipboard. Only the system clipboard kind is supported;
// the primary selection needs a command-based provider.
type NativeProvider struct{}

// NewNativeProvider creates a native clipboard provider.
func NewNativeProvider() *NativeProvider {
	return &NativeProvider{}
}

// Available reports whether the host clipboard API is usable.
func (p *NativeProvider) Available() bool {
	return !atotto.Unsupported
}

// Name returns the provider identifier.
func (p *NativeProvider) Name() string {
	return "native"
}

// Get returns the system clipboard contents.
func (p *NativeProvider) Get(kind Kind) (string, error) {
	if kind != KindClipboard {
		return "", fmt.Errorf("%w: %s", ErrKindUnsupported, kind)
	}
	if atotto.Unsupported {
		return "", ErrNotAvailable
	}
	return atotto.ReadAll()
}

// Set replaces the system clipboard contents.
func (p *NativeProvider) Set(kind Kind, contents string) error {
	if kind != KindClipboard {
		return fmt.Errorf("%w: %s", ErrKindUnsupported, kind)
	}
	if atotto.Unsupported {
		return ErrNotAvailable
	}
	return atotto.WriteAll(contents)
}
