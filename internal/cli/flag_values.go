package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// locationFlag parses a timezone name when the flag is set.
type locationFlag struct {
	loc *time.Location
}

var _ pflag.Value = (*locationFlag)(nil)

func (f *locationFlag) String() string {
	if f.loc == nil {
		return ""
	}
	return f.loc.String()
}

func (f *locationFlag) Set(s string) error {
	loc, err := time.LoadLocation(s)
	if err != nil {
		return err
	}
	f.loc = loc
	return nil
}

func (f *locationFlag) Type() string { return "timezone" }

// outputFormat is the value of --format on the table commands.
type outputFormat string

const (
	formatTable outputFormat = "table"
	formatCSV   outputFormat = "csv"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(s); v {
	case formatTable, formatCSV:
		*f = v
		return nil
	}
	return fmt.Errorf("expected %s or %s", formatTable, formatCSV)
}

func (f *outputFormat) Type() string { return "format" }
