package clipboard

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// OSC52Provider writes to the system clipboard through a terminal's OSC 52
// escape support. It works over SSH where no display tools are installed.
//
// The provider is write-only: terminals deliver OSC 52 clipboard reads
// asynchronously (tcell surfaces them as EventClipboard in the event loop),
// which does not fit the synchronous Get contract. Callers that need reads
// should layer this provider over another one.
type OSC52Provider struct {
	screen tcell.Screen
}

// NewOSC52Provider creates a provider writing through the given screen.
func NewOSC52Provider(screen tcell.Screen) *OSC52Provider {
	return &OSC52Provider{screen: screen}
}

// Name returns the provider identifier.
func (p *OSC52Provider) Name() string {
	return "termcode"
}

// Get always fails; the provider is write-only.
func (p *OSC52Provider) Get(kind Kind) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrReadUnsupported, kind)
}

// Set sends contents to the terminal's clipboard. OSC 52 addresses only the
// system clipboard; the selection kind is unsupported.
func (p *OSC52Provider) Set(kind Kind, contents string) error {
	if kind != KindClipboard {
		return fmt.Errorf("%w: %s", ErrKindUnsupported, kind)
	}
	p.screen.SetClipboard([]byte(contents))
	return nil
}
