package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cwarden/monthcal/internal/calendar"
	"github.com/cwarden/monthcal/internal/events"
	"github.com/cwarden/monthcal/internal/log"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the events as iCalendar",
	Long:  `Write every event from the configured files (or the built-in sample) as an iCalendar document.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output .ics file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		initConfig()
	}
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	evs, err := newSource().Events()
	if err != nil {
		return fmt.Errorf("error getting events: %w", err)
	}

	if exportOut == "" {
		err = writeCalendar(cmd.OutOrStdout(), evs)
	} else {
		err = exportFile(exportOut, evs)
	}
	if err != nil {
		return err
	}
	log.Info("exported events", "count", len(evs), "out", exportOut)
	return nil
}

func writeCalendar(w io.Writer, evs []calendar.Event) error {
	if err := events.WriteICS(w, evs, time.Now()); err != nil {
		return fmt.Errorf("error writing calendar: %w", err)
	}
	return nil
}

// exportFile writes evs to path. A failed close is reported since that is
// where buffered writes surface.
func exportFile(path string, evs []calendar.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	if err := writeCalendar(f, evs); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing %s: %w", path, err)
	}
	return nil
}
