package services

import (
	"strconv"
	"strings"
)

// ColumnLetter converts a 1-based column index to its spreadsheet letters
// (1 -> A, 26 -> Z, 27 -> AA). Indexes below 1 yield "".
func ColumnLetter(index int) string {
	if index < 1 {
		return ""
	}
	var letters []byte
	for index > 0 {
		rem := (index - 1) % 26
		letters = append([]byte{byte('A' + rem)}, letters...)
		index = (index - 1) / 26
	}
	return string(letters)
}

// ColumnIndex is the inverse of ColumnLetter. It returns 0 for anything that
// is not a run of letters.
func ColumnIndex(letters string) int {
	if letters == "" {
		return 0
	}
	index := 0
	for _, r := range strings.ToUpper(letters) {
		if r < 'A' || r > 'Z' {
			return 0
		}
		index = index*26 + int(r-'A') + 1
	}
	return index
}

// CellRef builds an A1 reference from 1-based coordinates.
func CellRef(row, col int) string {
	return ColumnLetter(col) + strconv.Itoa(row)
}
