package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportCSV = `,leftDuration,rightDuration,bottleVolume,pee,poo,sleepDuration,weight,note
2023-01-01 07:30:00,600,,,,,,,
2023-01-01 09:00:00,,,90,1,,,,
2023-01-01 13:00:00,,,,,,5400,,nap in pram
2023-01-02 08:00:00,,,,2,1,,3510,
`

func TestRead_Export(t *testing.T) {
	table, err := Read(strings.NewReader(exportCSV))
	require.NoError(t, err)

	assert.Equal(t, 4, table.Len())
	assert.Equal(t, "", table.IndexName())
	assert.Equal(t, domain.TrackedColumns, table.Columns())

	assert.Equal(t, time.Date(2023, 1, 1, 7, 30, 0, 0, time.UTC), table.Index()[0])

	c, err := table.Cell(1, domain.ColBottleVolume)
	require.NoError(t, err)
	assert.Equal(t, 90.0, c.Num)

	c, err = table.Cell(2, domain.ColNote)
	require.NoError(t, err)
	assert.Equal(t, "nap in pram", c.Raw)
	assert.False(t, c.IsNum)

	c, err = table.Cell(0, domain.ColWeight)
	require.NoError(t, err)
	assert.True(t, c.Null)
}

func TestRead_KeepsFileOrder(t *testing.T) {
	csv := ",pee\n2023-01-02 08:00,1\n2023-01-01 08:00,2\n"
	table, err := Read(strings.NewReader(csv))
	require.NoError(t, err)

	idx := table.Index()
	require.Len(t, idx, 2)
	assert.True(t, idx[0].After(idx[1]), "rows are not sorted")
}

func TestRead_HeaderOnly(t *testing.T) {
	table, err := Read(strings.NewReader(",pee,poo,weight\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, []domain.Column{domain.ColPee, domain.ColPoo, domain.ColWeight}, table.Columns())
}

func TestRead_EmptyInput(t *testing.T) {
	table, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Empty(t, table.Columns())
}

func TestRead_ExtraAndMissingColumns(t *testing.T) {
	csv := "time,pee,temperature\n2023-01-01,1,36.8\n"
	table, err := Read(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, "time", table.IndexName())
	assert.Equal(t, []domain.Column{domain.ColPee, "temperature"}, table.Columns())
	assert.False(t, table.HasColumn(domain.ColWeight))
}

func TestRead_ShortRowsArePadded(t *testing.T) {
	table, err := Read(strings.NewReader(",pee,poo\n2023-01-01 08:00,1\n"))
	require.NoError(t, err)

	c, err := table.Cell(0, domain.ColPoo)
	require.NoError(t, err)
	assert.True(t, c.Null)
}

func TestRead_LongRowIsIOError(t *testing.T) {
	_, err := Read(strings.NewReader(",pee\n2023-01-01 08:00,1,2\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIO)
}

func TestRead_SkipsBlankLines(t *testing.T) {
	table, err := Read(strings.NewReader(",pee\n2023-01-01 08:00,1\n,\n2023-01-01 09:00,2\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
}

func TestRead_BadTimestampIsParseError(t *testing.T) {
	_, err := Read(strings.NewReader(",pee\n2023-01-01 08:00,1\nlast tuesday,2\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrParse))

	var pe *domain.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 3, pe.Line)
	assert.Equal(t, "last tuesday", pe.Value)
}

func TestRead_DuplicateHeaders(t *testing.T) {
	table, err := Read(strings.NewReader(",pee,pee\n2023-01-01,1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, []domain.Column{domain.ColPee, "pee.1"}, table.Columns())
}

func TestRead_DuplicateHeadersAvoidExistingNames(t *testing.T) {
	table, err := Read(strings.NewReader(",pee,pee,pee.1\n2023-01-01,1,2,3\n"))
	require.NoError(t, err)
	assert.Equal(t, []domain.Column{domain.ColPee, "pee.2", "pee.1"}, table.Columns())

	want := map[domain.Column]float64{domain.ColPee: 1, "pee.2": 2, "pee.1": 3}
	for col, v := range want {
		c, err := table.Cell(0, col)
		require.NoError(t, err)
		assert.Equal(t, v, c.Num, "column=%s", col)
	}
}

func TestRead_ByteOrderMark(t *testing.T) {
	table, err := Read(strings.NewReader("\ufefftime,pee\n2023-01-01,1\n"))
	require.NoError(t, err)
	assert.Equal(t, "time", table.IndexName())
}

func TestRead_WithLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	table, err := Read(strings.NewReader(",pee\n2023-01-01 23:00,1\n"), WithLocation(loc))
	require.NoError(t, err)

	ts := table.Index()[0]
	assert.Equal(t, loc, ts.Location())
	assert.Equal(t, 1, ts.Day())
}

func TestParseTimestamp_Layouts(t *testing.T) {
	want := time.Date(2023, 1, 2, 15, 4, 5, 0, time.UTC)
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2023-01-02T15:04:05Z", want},
		{"2023-01-02 15:04:05", want},
		{"2023-01-02T15:04:05", want},
		{"2023/01/02 15:04:05", want},
		{"01/02/2023 15:04:05", want},
		{"2023-01-02 15:04", want.Add(-5 * time.Second)},
		{"2023-01-02", time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"2023-01-02 15:04:05.250", want.Add(250 * time.Millisecond)},
	}
	for _, tc := range cases {
		got, ok := parseTimestamp(tc.in, time.UTC)
		require.True(t, ok, "input=%q", tc.in)
		assert.True(t, tc.want.Equal(got), "input=%q got=%s", tc.in, got)
	}

	zoned, ok := parseTimestamp("2023-01-02T23:30:00+02:00", time.UTC)
	require.True(t, ok)
	assert.Equal(t, 2, zoned.Day(), "zoned timestamps keep their written date")

	_, ok = parseTimestamp("soon", time.UTC)
	assert.False(t, ok)
}

func TestLoad_MissingFileIsIOError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(exportCSV), 0o644))

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, table.Len())
}
