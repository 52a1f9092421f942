package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cwarden/monthcal/internal/calendar"
	"github.com/spf13/cobra"
)

var monthFlag string

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Print a month grid and exit",
	Long: `Print the six-week grid of a month. Days outside the month are bracketed and
days with overlapping events are marked with '!'.`,
	RunE: runMonth,
}

func init() {
	monthCmd.Flags().StringVarP(&monthFlag, "month", "m", "", "Month to print (YYYY-MM, 'next month', 'Oct 2025', ...)")
	rootCmd.AddCommand(monthCmd)
}

func runMonth(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		initConfig()
	}
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	start, err := parseMonthFlag(monthFlag)
	if err != nil {
		return err
	}
	if start.IsZero() {
		start = calendar.DateOf(time.Now())
	}

	grid, err := calendar.BuildGrid(start.Year, start.Month)
	if err != nil {
		return err
	}

	evs, err := newSource().Events()
	if err != nil {
		return fmt.Errorf("error getting events: %w", err)
	}

	return printGrid(cmd.OutOrStdout(), grid, evs)
}

func printGrid(w io.Writer, grid calendar.Grid, evs []calendar.Event) error {
	first := grid.CurrentMonth()[0].Date
	count := calendar.EventsInMonth(evs, first.Year, first.Month)
	fmt.Fprintf(w, "%s %d (%d events)\n", first.Month, first.Year, count)
	fmt.Fprintln(w, " Sun  Mon  Tue  Wed  Thu  Fri  Sat")

	for _, week := range grid.Weeks() {
		var row strings.Builder
		for _, day := range week {
			row.WriteString(formatGridDay(day, calendar.HasConflict(calendar.EventsOnDate(evs, day.Date))))
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(row.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}

// formatGridDay renders one cell five columns wide: "[28] " outside the
// month, "  5! " for a day with a conflict.
func formatGridDay(day calendar.CalendarDay, conflict bool) string {
	mark := " "
	if conflict {
		mark = "!"
	}
	if !day.IsCurrentMonth {
		return fmt.Sprintf("[%2d]%s", day.DayNumber, mark)
	}
	return fmt.Sprintf(" %2d%s ", day.DayNumber, mark)
}
