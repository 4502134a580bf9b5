package cli

import (
	"errors"

	"github.com/alexanderramin/babylog/internal/cli/formatter"
	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// babylogHuhTheme returns a huh theme using the formatter palette.
func babylogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

var errNothingPicked = errors.New("select at least one chart")

func validatePicked(v []string) error {
	if len(v) == 0 {
		return errNothingPicked
	}
	return nil
}

// metricOptions builds one option per metric, labeled with its chart title
// and preselected when listed in preselected.
func metricOptions(available, preselected []string) []huh.Option[string] {
	want := make(map[string]bool, len(preselected))
	for _, n := range preselected {
		want[n] = true
	}
	opts := make([]huh.Option[string], 0, len(available))
	for _, name := range available {
		label := name
		if m, err := domain.LookupMetric(name); err == nil {
			label = m.Title
		}
		opts = append(opts, huh.NewOption(label, name).Selected(want[name]))
	}
	return opts
}

// metricPickerForm returns a multi-select form writing the chosen metric
// names into value.
func metricPickerForm(available, preselected []string, value *[]string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Charts to render").
				Description("space to toggle, enter to confirm").
				Options(metricOptions(available, preselected)...).
				Value(value).
				Validate(validatePicked),
		),
	).WithTheme(babylogHuhTheme()).WithShowHelp(false)
}

// huhPicker asks for metrics with a huh multi-select.
type huhPicker struct{}

func (huhPicker) Pick(available, preselected []string) ([]string, error) {
	var picked []string
	if err := metricPickerForm(available, preselected, &picked).Run(); err != nil {
		return nil, err
	}
	return picked, nil
}
