// SPDX-License-Identifier: MIT
// Package: buddies/builder
//
// id_fn.go: participant naming schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a participant name from its zero-based index.
// It must be pure: the same idx always yields the same name.
type IDFn func(idx int) string

// DefaultIDFn returns "P" and the index padded to two digits, e.g. 3→"P03",
// so lexicographic and numeric order agree below 100.
func DefaultIDFn(idx int) string {
	return fmt.Sprintf("P%02d", idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A".
// Panics if idx is out of range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns the spreadsheet column name for idx, e.g.
// 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	var i, j int
	for i = idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// DecimalIDFn returns the plain decimal index, e.g. 42→"42".
func DecimalIDFn(idx int) string {
	return strconv.Itoa(idx)
}
