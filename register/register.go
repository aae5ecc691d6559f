package register

import (
	"fmt"
	"strconv"

	"github.com/dshills/regstorm/clipboard"
	"github.com/dshills/regstorm/logging"
)

// ScratchBufferName is the placeholder yielded by the document path register
// when the current document has never been saved.
const ScratchBufferName = "[scratch]"

// Context exposes the live editor state consumed by the special registers.
// It is read fresh on every operation; implementations must not cache across
// edits. A nil Context reads as zero selections and a scratch document.
type Context interface {
	// SelectionCount returns the current view's live selection count.
	SelectionCount() int

	// SelectionFragments returns the text under each current selection, in
	// selection order. The length equals SelectionCount.
	SelectionFragments() []string

	// DocumentPath returns the current document's file path, or "" for an
	// unsaved scratch buffer.
	DocumentPath() string
}

// Values is one register's ordered fragment sequence, logically oldest-first
// (the order the fragments were yanked across selections). The slice is
// always freshly allocated; callers may keep or modify it.
type Values []string

// Store is the named-register store. It owns the name-to-fragments mapping
// and the clipboard provider used by the clipboard-backed registers.
//
// A Store is created once per editor session and is not safe for concurrent
// use; the session owns it exclusively.
type Store struct {
	values   map[rune][]string
	provider clipboard.Provider
	logger   *logging.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for clipboard read diagnostics.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a register store using the given clipboard provider.
// A nil provider falls back to an in-process clipboard.
func NewStore(provider clipboard.Provider, opts ...Option) *Store {
	if provider == nil {
		provider = clipboard.NewMemoryProvider()
	}
	s := &Store{
		values:   make(map[rune][]string),
		provider: provider,
		logger:   logging.New(logging.DefaultConfig()).WithComponent("registers"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ClipboardProvider returns the provider backing the clipboard registers.
func (s *Store) ClipboardProvider() clipboard.Provider {
	return s.provider
}

// Read returns a register's fragment sequence. The second return is false
// only for a plain register with no stored entry; special registers always
// yield a sequence. Read never mutates state.
func (s *Store) Read(name rune, ctx Context) (Values, bool) {
	switch ClassOf(name) {
	case ClassBlackHole:
		return Values{}, true
	case ClassSelectionIndices:
		count := selectionCount(ctx)
		values := make(Values, count)
		for i := range values {
			values[i] = strconv.Itoa(i + 1)
		}
		return values, true
	case ClassSelectionContents:
		return append(Values(nil), selectionFragments(ctx)...), true
	case ClassDocumentPath:
		return Values{documentPath(ctx)}, true
	case ClassClipboard:
		return s.readClipboard(name), true
	default:
		stored, ok := s.values[name]
		if !ok {
			return nil, false
		}
		return append(Values(nil), stored...), true
	}
}

// Write replaces a register's contents wholesale. Computed registers reject
// with ErrUnsupportedOperation; clipboard registers serialize to the external
// clipboard and return a ClipboardError if that fails.
func (s *Store) Write(name rune, values []string) error {
	switch ClassOf(name) {
	case ClassBlackHole:
		return nil
	case ClassSelectionIndices, ClassSelectionContents, ClassDocumentPath:
		return fmt.Errorf("%w: register %q does not support writing", ErrUnsupportedOperation, name)
	case ClassClipboard:
		return s.writeClipboard("write", name, values)
	default:
		s.values[name] = append([]string(nil), values...)
		return nil
	}
}

// Push appends one fragment to a register's logical end. Rejection rules
// match Write. Pushing to a clipboard register re-reads the external
// clipboard first, so a push after an external change starts from the
// external contents rather than a stale cache.
func (s *Store) Push(name rune, value string) error {
	switch ClassOf(name) {
	case ClassBlackHole:
		return nil
	case ClassSelectionIndices, ClassSelectionContents, ClassDocumentPath:
		return fmt.Errorf("%w: register %q does not support pushing", ErrUnsupportedOperation, name)
	case ClassClipboard:
		values := s.readClipboard(name)
		values = append(values, value)
		return s.writeClipboard("push", name, values)
	default:
		s.values[name] = append(s.values[name], value)
		return nil
	}
}

// First returns the logically-first fragment of a register, if any.
func (s *Store) First(name rune, ctx Context) (string, bool) {
	values, ok := s.Read(name, ctx)
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Last returns the logically-last fragment of a register, if any.
func (s *Store) Last(name rune, ctx Context) (string, bool) {
	values, ok := s.Read(name, ctx)
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

// Clear removes every stored entry, including the clipboard caches. Special
// registers are unaffected; they have nothing stored to clear.
func (s *Store) Clear() {
	clear(s.values)
}

// Remove deletes a plain register's entry, reporting whether one existed.
// Special register names, clipboard registers included, always return false.
func (s *Store) Remove(name rune) bool {
	if IsSpecial(name) {
		return false
	}
	_, ok := s.values[name]
	delete(s.values, name)
	return ok
}

// selectionCount reads the live selection count, treating nil as empty.
func selectionCount(ctx Context) int {
	if ctx == nil {
		return 0
	}
	return ctx.SelectionCount()
}

// selectionFragments reads the live selection fragments, treating nil as empty.
func selectionFragments(ctx Context) []string {
	if ctx == nil {
		return nil
	}
	return ctx.SelectionFragments()
}

// documentPath reads the current document path, substituting the scratch
// placeholder for unsaved buffers.
func documentPath(ctx Context) string {
	if ctx == nil {
		return ScratchBufferName
	}
	if path := ctx.DocumentPath(); path != "" {
		return path
	}
	return ScratchBufferName
}
