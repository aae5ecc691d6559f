package register

import "strings"

// readClipboard resolves the current fragment sequence for a clipboard
// register.
//
// The external contents are fetched and, when a cached fragment list exists
// for this register, tested for exact reconstructibility from it. A match
// returns the cached fragments so per-selection granularity survives a
// yank-then-paste round trip; anything else returns the external contents as
// a single opaque fragment. Fetch failures are logged and read as empty so
// that reading never fails the surrounding command.
func (s *Store) readClipboard(name rune) Values {
	kind := clipboardKind(name)

	contents, err := s.provider.Get(kind)
	if err != nil {
		s.logger.Error("reading %s via %s: %v", kind, s.provider.Name(), err)
		return Values{}
	}

	saved, ok := s.values[name]
	if !ok || !contentsAreSaved(saved, contents) {
		return Values{contents}
	}
	return append(Values(nil), saved...)
}

// writeClipboard joins the fragments with the platform line ending, sends the
// result to the external clipboard, and caches the fragment list on success.
// On failure neither the cache nor the clipboard changes.
func (s *Store) writeClipboard(op string, name rune, values []string) error {
	kind := clipboardKind(name)

	joined := strings.Join(values, nativeLineEnding)
	if err := s.provider.Set(kind, joined); err != nil {
		return &ClipboardError{Op: op, Kind: kind, Err: err}
	}

	s.values[name] = append([]string(nil), values...)
	return nil
}

// contentsAreSaved reports whether contents is exactly the saved fragments
// joined oldest-first with the platform line ending. Zero fragments join to
// the empty string, so an empty cache matches only empty contents.
//
// Matching is greedy left-to-right against each fragment boundary in order;
// fragments may legitimately contain embedded line endings, so substring
// containment is not enough. A fragment ending in a partial line-ending
// sequence adjacent to the next fragment's start can still misclassify; that
// pathological case is accepted.
func contentsAreSaved(saved []string, contents string) bool {
	if len(saved) == 0 {
		return contents == ""
	}

	rest, ok := strings.CutPrefix(contents, saved[0])
	if !ok {
		return false
	}

	for _, value := range saved[1:] {
		rest, ok = strings.CutPrefix(rest, nativeLineEnding)
		if !ok {
			return false
		}
		rest, ok = strings.CutPrefix(rest, value)
		if !ok {
			return false
		}
	}

	return rest == ""
}
