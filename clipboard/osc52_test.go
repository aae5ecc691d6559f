package clipboard

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimulationProvider(t *testing.T) *OSC52Provider {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("initializing simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)

	return NewOSC52Provider(screen)
}

func TestOSC52ProviderSet(t *testing.T) {
	p := newSimulationProvider(t)

	if err := p.Set(KindClipboard, "osc52 payload"); err != nil {
		t.Fatalf("Set: %v", err)
	}
}

func TestOSC52ProviderIsWriteOnly(t *testing.T) {
	p := newSimulationProvider(t)

	if _, err := p.Get(KindClipboard); !errors.Is(err, ErrReadUnsupported) {
		t.Errorf("Get = %v, want ErrReadUnsupported", err)
	}
}

func TestOSC52ProviderRejectsSelectionKind(t *testing.T) {
	p := newSimulationProvider(t)

	if err := p.Set(KindSelection, "v"); !errors.Is(err, ErrKindUnsupported) {
		t.Errorf("Set(KindSelection) = %v, want ErrKindUnsupported", err)
	}
}
