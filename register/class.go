package register

import "github.com/dshills/regstorm/clipboard"

// Class categorizes a register name by its behavior. Classification is a
// pure function of the character and never changes.
type Class uint8

const (
	// ClassPlain is a user-writable register backed by stored fragments.
	ClassPlain Class = iota

	// ClassBlackHole is the discard-all register (_).
	ClassBlackHole

	// ClassSelectionIndices is the computed selection index register (#).
	ClassSelectionIndices

	// ClassSelectionContents is the computed selection content register (.).
	ClassSelectionContents

	// ClassDocumentPath is the computed document path register (%).
	ClassDocumentPath

	// ClassClipboard is a clipboard-backed register (+ or *).
	ClassClipboard
)

// String returns a human-readable class name.
func (c Class) String() string {
	switch c {
	case ClassPlain:
		return "plain"
	case ClassBlackHole:
		return "black hole"
	case ClassSelectionIndices:
		return "selection indices"
	case ClassSelectionContents:
		return "selection contents"
	case ClassDocumentPath:
		return "document path"
	case ClassClipboard:
		return "clipboard"
	default:
		return "unknown"
	}
}

// ClassOf returns the behavior class for a register name.
func ClassOf(name rune) Class {
	switch name {
	case '_':
		return ClassBlackHole
	case '#':
		return ClassSelectionIndices
	case '.':
		return ClassSelectionContents
	case '%':
		return ClassDocumentPath
	case '+', '*':
		return ClassClipboard
	default:
		return ClassPlain
	}
}

// IsSpecial reports whether name is one of the special registers.
func IsSpecial(name rune) bool {
	return ClassOf(name) != ClassPlain
}

// clipboardKind maps a clipboard register name to its clipboard kind.
// Only valid for names of ClassClipboard.
func clipboardKind(name rune) clipboard.Kind {
	if name == '*' {
		return clipboard.KindSelection
	}
	return clipboard.KindClipboard
}
