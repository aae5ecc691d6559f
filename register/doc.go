// Package register implements the named-register store of the editor.
//
// A register is a single-character name holding an ordered list of text
// fragments. Editing commands stage yanked or cut text in registers and
// recall it later; with multiple selections, each fragment corresponds to
// one selection's worth of text.
//
// Most names are plain, user-writable slots. A fixed set of names are
// special registers whose behavior is computed per operation instead of
// coming from stored data:
//
//   - Black hole (`_`): reads empty, writes and pushes are discarded
//   - Selection indices (`#`): "1", "2", ... one per current selection
//   - Selection contents (`.`): the text under each current selection
//   - Document path (`%`): the current document's path
//   - System clipboard (`+`) and primary selection (`*`): backed by the
//     external clipboard through a clipboard.Provider
//
// # Clipboard reconciliation
//
// The external clipboard holds a single flat string, while the store's model
// is one fragment per selection. On every clipboard-register write the
// fragments are joined with the platform line ending and the fragment list is
// cached; on every read the current external contents are tested for exact
// reconstructibility from the cache. A match means nothing else touched the
// clipboard, so the cached per-selection fragments are returned and
// multi-cursor paste keeps its granularity. A mismatch means another program
// (or another register operation) changed the clipboard, and the contents are
// returned as one opaque fragment.
//
// # Concurrency
//
// The store is synchronous and exclusively owned by the editor session.
// Concurrent use requires external synchronization.
package register
