package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// File settings
	EventFiles []string
	LogFile    string
	LogLevel   string

	// Display settings
	TimeFormat    string
	DateFormat    string
	MaxCellEvents int
	ShowLegend    bool

	// UI settings
	Colors      map[string]string
	KeyBindings map[string]string // key -> action

	// Behavior settings
	AutoRefresh bool
	RefreshRate time.Duration
}

var (
	setRe   = regexp.MustCompile(`^set\s+(\w+)\s+(.+)$`)
	bindRe  = regexp.MustCompile(`^bind\s+(\S+)\s+(\S+)$`)
	colorRe = regexp.MustCompile(`^color\s+(\w+)\s+(.+)$`)
)

// Actions lists every name accepted on the right of a bind line.
var Actions = []string{
	"quit", "help", "today", "refresh", "legend", "goto_date", "clear_selection",
	"next_month", "prev_month", "next_day", "prev_day", "next_week", "prev_week",
}

func DefaultConfig() *Config {
	return &Config{
		EventFiles: nil,
		LogLevel:   "info",

		TimeFormat:    "15:04",
		DateFormat:    "Monday, January 2, 2006",
		MaxCellEvents: 2,
		ShowLegend:    true,

		Colors: map[string]string{
			"header":   "12",
			"today":    "11",
			"selected": "13",
			"dim":      "8",
			"conflict": "9",
			"weekend":  "6",
		},

		KeyBindings: map[string]string{
			"q":      "quit",
			"ctrl+c": "quit",
			"?":      "help",
			"t":      "today",
			"r":      "refresh",
			"L":      "legend",
			"g":      "goto_date",
			"esc":    "clear_selection",
			">":      "next_month",
			"n":      "next_month",
			"<":      "prev_month",
			"p":      "prev_month",
			"l":      "next_day",
			"right":  "next_day",
			"h":      "prev_day",
			"left":   "prev_day",
			"j":      "next_week",
			"down":   "next_week",
			"k":      "prev_week",
			"up":     "prev_week",
		},

		AutoRefresh: true,
		RefreshRate: 30 * time.Second,
	}
}

// SearchPaths returns the candidate config locations in priority order.
func SearchPaths() []string {
	home, _ := os.UserHomeDir()

	var paths []string
	if p := os.Getenv("MONTHCAL_CONFIG"); p != "" {
		paths = append(paths, p)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "monthcal", "monthcalrc"))
	}
	if home != "" {
		paths = append(paths,
			filepath.Join(home, ".config", "monthcal", "monthcalrc"),
			filepath.Join(home, ".monthcalrc"),
		)
	}
	return paths
}

// LoadConfig applies the first config file found in SearchPaths on top of
// the defaults. A missing file is not an error.
func LoadConfig() (*Config, error) {
	for _, path := range SearchPaths() {
		if _, err := os.Stat(path); err == nil {
			return LoadConfigFile(path)
		}
	}
	return DefaultConfig(), nil
}

func LoadConfigFile(path string) (*Config, error) {
	config := DefaultConfig()
	if err := config.loadFromFile(path); err != nil {
		return nil, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) loadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := c.parseLine(line); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	return scanner.Err()
}

func (c *Config) parseLine(line string) error {
	// set variable value
	if matches := setRe.FindStringSubmatch(line); matches != nil {
		return c.setVariable(matches[1], matches[2])
	}

	// bind key action
	if matches := bindRe.FindStringSubmatch(line); matches != nil {
		if !isAction(matches[2]) {
			return fmt.Errorf("unknown action: %s", matches[2])
		}
		c.KeyBindings[matches[1]] = matches[2]
		return nil
	}

	// color element color_spec
	if matches := colorRe.FindStringSubmatch(line); matches != nil {
		c.Colors[matches[1]] = strings.Trim(matches[2], `"'`)
		return nil
	}

	return fmt.Errorf("unknown config line: %s", line)
}

func (c *Config) setVariable(name, value string) error {
	value = strings.Trim(value, `"'`)

	switch name {
	case "event_file", "event_files":
		files := strings.Split(value, ",")
		c.EventFiles = c.EventFiles[:0]
		for _, file := range files {
			file = strings.TrimSpace(file)
			if file == "" {
				continue
			}
			c.EventFiles = append(c.EventFiles, ExpandHome(file))
		}

	case "time_format":
		c.TimeFormat = value

	case "date_format":
		c.DateFormat = value

	case "max_cell_events":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid max_cell_events: %s", value)
		}
		c.MaxCellEvents = n

	case "show_legend":
		c.ShowLegend = parseBool(value)

	case "auto_refresh":
		c.AutoRefresh = parseBool(value)

	case "refresh_rate":
		rate, err := time.ParseDuration(value)
		if err != nil {
			// Try parsing as seconds
			if seconds, err2 := strconv.Atoi(value); err2 == nil {
				rate = time.Duration(seconds) * time.Second
			} else {
				return fmt.Errorf("invalid refresh_rate: %s", value)
			}
		}
		if rate <= 0 {
			return fmt.Errorf("invalid refresh_rate: %s", value)
		}
		c.RefreshRate = rate

	case "log_file":
		c.LogFile = ExpandHome(value)

	case "log_level":
		switch strings.ToLower(value) {
		case "debug", "info", "error":
			c.LogLevel = strings.ToLower(value)
		default:
			return fmt.Errorf("invalid log_level: %s", value)
		}

	default:
		return fmt.Errorf("unknown config variable: %s", name)
	}

	return nil
}

// KeysFor returns the keys bound to action, sorted for stable help output.
func (c *Config) KeysFor(action string) []string {
	var keys []string
	for k, a := range c.KeyBindings {
		if a == action {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keyLess(keys[i], keys[j]) })
	return keys
}

// ExpandHome replaces a leading ~/ with the user's home directory.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func parseBool(value string) bool {
	v := strings.ToLower(value)
	return v == "true" || v == "yes" || v == "on" || v == "1"
}

func isAction(name string) bool {
	for _, a := range Actions {
		if a == name {
			return true
		}
	}
	return false
}

// keyLess orders single-character keys before named keys, then lexically.
func keyLess(a, b string) bool {
	if (len(a) == 1) != (len(b) == 1) {
		return len(a) == 1
	}
	return a < b
}
