package formatter

import (
	"io"

	"github.com/alexanderramin/babylog/internal/chart"
	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// SeriesFrame converts a series into a dataframe with a date column, a
// value column named valueName, and an interpolated flag for growth data.
func SeriesFrame(s domain.Series, valueName string) dataframe.DataFrame {
	dates := make([]string, s.Len())
	values := make([]float64, s.Len())
	interpolated := make([]bool, s.Len())
	anyInterp := false
	layout := dateLayout
	if !s.Daily {
		layout = "2006-01-02 15:04:05"
	}
	for i, p := range s.Points {
		dates[i] = p.Time.Format(layout)
		values[i] = p.Value
		interpolated[i] = p.Interpolated
		anyInterp = anyInterp || p.Interpolated
	}

	cols := []series.Series{
		series.New(dates, series.String, "date"),
		series.New(values, series.Float, valueName),
	}
	if anyInterp {
		cols = append(cols, series.New(interpolated, series.Bool, "interpolated"))
	}
	return dataframe.New(cols...)
}

// WriteSeriesCSV writes s as CSV with a header row. Values are written
// without trailing zeros.
func WriteSeriesCSV(w io.Writer, s domain.Series, valueName string) error {
	df := SeriesFrame(s, valueName)
	if df.Err != nil {
		return df.Err
	}
	values := df.Col(valueName).Float()
	text := make([]string, len(values))
	for i, v := range values {
		text[i] = chart.FormatValue(v)
	}
	df = df.Mutate(series.New(text, series.String, valueName))
	return df.WriteCSV(w)
}
