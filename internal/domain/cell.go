package domain

import (
	"math"
	"strconv"
	"strings"
)

// nullMarkers are the spellings an exported log uses for a missing value.
var nullMarkers = map[string]bool{
	"":     true,
	"NaN":  true,
	"nan":  true,
	"-NaN": true,
	"-nan": true,
	"NA":   true,
	"#NA":  true,
	"N/A":  true,
	"n/a":  true,
	"#N/A": true,
	"null": true,
	"NULL": true,
	"None": true,
	"<NA>": true,
}

// Cell is a single value in the record table. Raw keeps the text as read;
// Num is only meaningful when IsNum is true.
type Cell struct {
	Raw   string
	Num   float64
	IsNum bool
	Null  bool
}

// NewCell classifies raw text as null, numeric, or plain text.
// Booleans read as 1 and 0 so diaper flags can be summed. Infinities stay
// text.
func NewCell(raw string) Cell {
	s := strings.TrimSpace(raw)
	if nullMarkers[s] {
		return Cell{Raw: raw, Null: true}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return Cell{Raw: raw, Num: f, IsNum: true}
	}
	switch strings.ToLower(s) {
	case "true":
		return Cell{Raw: raw, Num: 1, IsNum: true}
	case "false":
		return Cell{Raw: raw, Num: 0, IsNum: true}
	}
	return Cell{Raw: raw}
}

// NullCell returns an empty cell.
func NullCell() Cell {
	return Cell{Null: true}
}
