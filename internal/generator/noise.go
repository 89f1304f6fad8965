package generator

import (
	"math"
)

// Edit is one kind of single-character corruption
type Edit int

const (
	EditDelete Edit = iota
	EditInsert
	EditTranspose

	editKinds = 3
)

// maxEdits bounds the edit count derived from a float error count
const maxEdits = math.MaxInt32

func (e Edit) String() string {
	switch e {
	case EditDelete:
		return "delete"
	case EditInsert:
		return "insert"
	case EditTranspose:
		return "transpose"
	default:
		return "unknown"
	}
}

// EditCount truncates a requested error count toward zero. Negative and NaN
// values become 0.
func EditCount(errorCount float64) int {
	if math.IsNaN(errorCount) || errorCount <= 0 {
		return 0
	}
	if errorCount >= maxEdits {
		return maxEdits
	}
	return int(math.Trunc(errorCount))
}

// Corrupt applies edits sequential random edits to s. Each edit measures the
// current (already edited) string, then draws an edit kind, a position, and
// for inserts a lowercase letter. Strings are edited by rune.
func Corrupt(s string, edits int, src Intner) string {
	if edits <= 0 {
		return s
	}
	runes := []rune(s)
	for range edits {
		runes = applyEdit(runes, src)
	}
	return string(runes)
}

func applyEdit(runes []rune, src Intner) []rune {
	kind := Edit(src.IntN(editKinds))
	// An empty string still consumes a position draw; its only position is 0.
	pos := src.IntN(max(len(runes), 1))

	switch kind {
	case EditDelete:
		if len(runes) <= 1 {
			return runes
		}
		return append(runes[:pos], runes[pos+1:]...)
	case EditInsert:
		letter := rune('a' + src.IntN(26))
		runes = append(runes, 0)
		copy(runes[pos+1:], runes[pos:])
		runes[pos] = letter
		return runes
	case EditTranspose:
		if len(runes) <= 1 || pos >= len(runes)-1 {
			return runes
		}
		runes[pos], runes[pos+1] = runes[pos+1], runes[pos]
		return runes
	}
	return runes
}
