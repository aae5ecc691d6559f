package clipboard

import "errors"

// Errors returned by clipboard providers.
var (
	// ErrKindUnsupported indicates the provider cannot service the
	// requested clipboard kind.
	ErrKindUnsupported = errors.New("clipboard kind not supported")

	// ErrReadUnsupported indicates the provider is write-only.
	ErrReadUnsupported = errors.New("clipboard provider does not support reading")

	// ErrNotAvailable indicates no clipboard access exists on this host.
	ErrNotAvailable = errors.New("clipboard not available")
)

// Kind identifies one of the two platform clipboard buffers.
type Kind uint8

const (
	// KindClipboard is the system clipboard.
	KindClipboard Kind = iota

	// KindSelection is the primary selection clipboard (X11/Wayland).
	KindSelection
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindClipboard:
		return "system clipboard"
	case KindSelection:
		return "primary selection"
	default:
		return "unknown clipboard"
	}
}

// Provider abstracts read/write access to the platform clipboards.
//
// Implementations may support only a subset of kinds; unsupported kinds
// return ErrKindUnsupported.
type Provider interface {
	// Name returns a short identifier for the provider, for diagnostics.
	Name() string

	// Get returns the current contents of the given clipboard kind.
	Get(kind Kind) (string, error)

	// Set replaces the contents of the given clipboard kind.
	Set(kind Kind, contents string) error
}
