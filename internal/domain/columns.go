package domain

// Column names a CSV column in an exported baby-care log.
type Column string

const (
	ColLeftDuration  Column = "leftDuration"
	ColRightDuration Column = "rightDuration"
	ColBottleVolume  Column = "bottleVolume"
	ColPee           Column = "pee"
	ColPoo           Column = "poo"
	ColSleepDuration Column = "sleepDuration"
	ColWeight        Column = "weight"
	ColNote          Column = "note"
)

// TrackedColumns lists the metrics the tracking app exports, in export order.
var TrackedColumns = []Column{
	ColLeftDuration,
	ColRightDuration,
	ColBottleVolume,
	ColPee,
	ColPoo,
	ColSleepDuration,
	ColWeight,
	ColNote,
}

// IsTracked reports whether c is one of the known baby-care columns.
func (c Column) IsTracked() bool {
	for _, t := range TrackedColumns {
		if t == c {
			return true
		}
	}
	return false
}

// IsNumeric reports whether values of c are expected to be numbers.
// Only the free-text note column is not.
func (c Column) IsNumeric() bool {
	return c != ColNote
}
