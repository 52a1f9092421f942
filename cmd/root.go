package cmd

import (
	"fmt"
	"os"

	"github.com/cwarden/monthcal/internal/calendar"
	"github.com/cwarden/monthcal/internal/config"
	"github.com/cwarden/monthcal/internal/events"
	"github.com/cwarden/monthcal/internal/log"
	"github.com/cwarden/monthcal/internal/parser"
	"github.com/cwarden/monthcal/internal/ui"
	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"
)

const debugLogFile = "monthcal-debug.log"

var (
	cfgFile    string
	eventFiles []string
	debug      bool
	startMonth string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "monthcal",
	Short: "A terminal month calendar with overlap detection",
	Long: `Monthcal shows a month at a time as a six-week grid, lists the events of the
selected day and flags days whose events overlap.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringSliceVarP(&eventFiles, "file", "f", []string{}, "Event file(s) to show (.json, .yaml or .ics; can be specified multiple times)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write a debug log to "+debugLogFile)
	rootCmd.Flags().StringVar(&startMonth, "month", "", "Month to open on (YYYY-MM, 'next month', 'Oct 2025', ...)")
}

func initConfig() {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadConfigFile(cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if len(eventFiles) > 0 {
		cfg.EventFiles = eventFiles
	}
}

// setupLogging points the logger at the debug or configured log file. The
// returned func closes it.
func setupLogging() (func(), error) {
	path := cfg.LogFile
	level := log.ParseLevel(cfg.LogLevel)
	if debug {
		if path == "" {
			path = debugLogFile
		}
		level = log.LevelDebug
	}
	log.SetLevel(level)
	if path == "" {
		return func() {}, nil
	}

	f, err := tea.LogToFile(path, "monthcal")
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

// newSource reads the configured event files, or serves the built-in
// sample month when none are configured. Each file is its own source so a
// broken file does not hide the others.
func newSource() events.Source {
	switch len(cfg.EventFiles) {
	case 0:
		return events.NewStaticSource(events.Builtin())
	case 1:
		return events.NewFileSource(cfg.EventFiles...)
	}

	composite := events.NewCompositeSource()
	for _, file := range cfg.EventFiles {
		composite.AddSource(events.NewFileSource(file))
	}
	return composite
}

// parseMonthFlag resolves --month against today; empty means the current month.
func parseMonthFlag(value string) (calendar.Date, error) {
	if value == "" {
		return calendar.Date{}, nil
	}
	year, month, err := parser.NewDateParser().ParseMonth(value)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("invalid --month %q: %w", value, err)
	}
	if _, err := calendar.BuildGrid(year, month); err != nil {
		return calendar.Date{}, err
	}
	return calendar.NewDate(year, month, 1), nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	start, err := parseMonthFlag(startMonth)
	if err != nil {
		return err
	}

	source := newSource()
	model := ui.NewModel(cfg, source, ui.Options{Start: start})
	p := tea.NewProgram(model, tea.WithAltScreen())

	if files := source.Files(); len(files) > 0 {
		watcher, err := events.NewWatcher(func(path string) {
			p.Send(ui.EventsChangedMsg{Path: path})
		})
		if err != nil {
			log.Error("starting file watcher", err)
		} else {
			defer watcher.Close()
			for _, file := range files {
				if err := watcher.AddFile(file); err != nil {
					log.Error("watching event file", err, "file", file)
				}
			}
		}
	}

	log.Info("starting", "files", len(source.Files()), "month", startMonth)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
