package clipboard

import "sync"

// MemoryProvider is an in-process clipboard. It is the fallback when no host
// clipboard access exists, and the test double for everything that consumes a
// Provider. Contents do not outlive the process.
type MemoryProvider struct {
	mu      sync.Mutex
	buffers map[Kind]string
}

// NewMemoryProvider creates an empty in-process clipboard.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		buffers: make(map[Kind]string),
	}
}

// Name returns the provider identifier.
func (p *MemoryProvider) Name() string {
	return "memory"
}

// Get returns the stored contents for the kind. An unset kind reads as empty.
func (p *MemoryProvider) Get(kind Kind) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.buffers[kind], nil
}

// Set stores contents for the kind.
func (p *MemoryProvider) Set(kind Kind, contents string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.buffers[kind] = contents
	return nil
}
