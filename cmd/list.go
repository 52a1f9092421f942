package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/cwarden/monthcal/internal/calendar"
	"github.com/cwarden/monthcal/internal/parser"
	"github.com/spf13/cobra"
)

var listDate string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a day's events and exit",
	Long:  `List the events of one day (today by default) in a simple text format and exit.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listDate, "date", "d", "today", "Day to list (YYYY-MM-DD, 'tomorrow', 'next friday', ...)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	// Ensure config is loaded
	if cfg == nil {
		initConfig()
	}
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	day, err := parser.NewDateParser().ParseDate(listDate)
	if err != nil {
		return fmt.Errorf("invalid --date %q: %w", listDate, err)
	}

	evs, err := newSource().Events()
	if err != nil {
		return fmt.Errorf("error getting events: %w", err)
	}

	return printDay(cmd.OutOrStdout(), day, calendar.EventsOnDate(evs, day))
}

func printDay(w io.Writer, day calendar.Date, dayEvents []calendar.Event) error {
	fmt.Fprintf(w, "Events for %s:\n", day.Time(time.UTC).Format(cfg.DateFormat))
	if len(dayEvents) == 0 {
		_, err := fmt.Fprintln(w, "No events found.")
		return err
	}

	marks := calendar.Conflicted(dayEvents)
	for i, e := range dayEvents {
		clash := ""
		if marks[i] {
			clash = " !"
		}
		fmt.Fprintf(w, "  %s - %s (%d min)%s\n",
			e.StartTime(time.UTC).Format(cfg.TimeFormat), e.Title, e.DurationMinutes, clash)
	}

	if calendar.HasConflict(dayEvents) {
		pairs := calendar.ConflictingPairs(dayEvents)
		fmt.Fprintf(w, "Time conflict: %d overlapping pair(s)\n", len(pairs))
		for _, p := range pairs {
			fmt.Fprintf(w, "  %s overlaps %s\n", dayEvents[p[0]].Title, dayEvents[p[1]].Title)
		}
	}
	return nil
}
