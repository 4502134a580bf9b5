package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/babylog/internal/chart"
	"github.com/alexanderramin/babylog/internal/domain"
)

const dateLayout = "2006-01-02"

// durationColumns are summed in seconds and get a readable duration too.
var durationColumns = map[domain.Column]bool{
	domain.ColLeftDuration:  true,
	domain.ColRightDuration: true,
	domain.ColSleepDuration: true,
}

// ValueName names the value column of m's series. Growth series hold
// deltas, so they are named after the metric rather than the weight column.
func ValueName(m domain.Metric) string {
	if m.Aggregation == domain.AggGrowth {
		return m.Name
	}
	return string(m.Column)
}

// FormatDaily renders a daily aggregate as a table with a total line.
func FormatDaily(s domain.Series, m domain.Metric) string {
	var b strings.Builder
	b.WriteString(Header(m.Title))
	b.WriteString("\n")

	if s.Len() == 0 {
		b.WriteString(Dim("No entries.") + "\n")
		return b.String()
	}

	headers := []string{"DATE", "WEEKDAY", strings.ToUpper(ValueName(m))}
	withDuration := durationColumns[m.Column]
	if withDuration {
		headers = append(headers, "DURATION")
	}

	headers = append(headers, "OF PEAK")

	lo, hi, _ := s.Bounds()
	peak := math.Max(math.Abs(lo), math.Abs(hi))

	rows := make([][]string, 0, s.Len())
	for _, p := range s.Points {
		row := []string{
			p.Time.Format(dateLayout),
			Dim(p.Time.Format("Mon")),
			chart.FormatValue(p.Value),
		}
		if withDuration {
			row = append(row, FormatSeconds(p.Value))
		}
		row = append(row, RenderShare(p.Value, peak, shareWidth))
		rows = append(rows, row)
	}
	b.WriteString(RenderTable(headers, rows, AlignRight(2)))

	b.WriteString("\n")
	total := s.Total()
	line := fmt.Sprintf("%d days, total %s, average %s per day",
		s.Len(), chart.FormatValue(total), chart.FormatValue(total/float64(s.Len())))
	b.WriteString(Dim(line) + "\n")
	return b.String()
}

// FormatGrowth renders per-day weight change, marking interpolated days.
func FormatGrowth(s domain.Series) string {
	var b strings.Builder
	b.WriteString(Header("Growth Per Day"))
	b.WriteString("\n")

	if s.Len() == 0 {
		b.WriteString(Dim("Need weighings on at least two days.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, s.Len())
	for _, p := range s.Points {
		source := "measured"
		if p.Interpolated {
			source = Dim("interpolated")
		}
		value := chart.FormatValue(p.Value)
		if p.Value > 0 {
			value = "+" + value
		}
		rows = append(rows, []string{
			p.Time.Format(dateLayout),
			Signed(p.Value, value),
			source,
		})
	}
	b.WriteString(RenderTable([]string{"DATE", "GROWTH (g)", "SOURCE"}, rows, AlignRight(1)))

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Net change %s g over %d days", chart.FormatValue(s.Total()), s.Len())) + "\n")
	return b.String()
}

// FormatColumns lists every table column with its non-null count.
func FormatColumns(t *domain.Table) (string, error) {
	var b strings.Builder
	b.WriteString(Header("Columns"))
	b.WriteString("\n")

	rows := make([][]string, 0, len(t.Columns()))
	for _, c := range t.Columns() {
		n, err := t.NonNullCount(c)
		if err != nil {
			return "", err
		}
		tracked := Dim("no")
		if c.IsTracked() {
			tracked = StyleGreen.Render("yes")
		}
		name := string(c)
		if c.IsTracked() {
			name = Bold(name)
		}
		rows = append(rows, []string{name, tracked, fmt.Sprintf("%d", n)})
	}
	b.WriteString(RenderTable([]string{"COLUMN", "TRACKED", "VALUES"}, rows, AlignRight(2)))

	b.WriteString("\n")
	span := "no rows"
	if t.Len() > 0 {
		idx := t.Index()
		first, last := idx[0], idx[0]
		for _, ts := range idx[1:] {
			if ts.Before(first) {
				first = ts
			}
			if ts.After(last) {
				last = ts
			}
		}
		span = fmt.Sprintf("%d rows from %s to %s", t.Len(), first.Format(dateLayout), last.Format(dateLayout))
	}
	b.WriteString(RenderBox("", span) + "\n")
	return b.String(), nil
}
