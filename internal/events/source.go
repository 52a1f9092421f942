package events

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwarden/monthcal/internal/calendar"
)

// Source supplies the working set of events. The returned slice belongs to
// the caller.
type Source interface {
	// Events returns every event the source knows about, in file order.
	Events() ([]calendar.Event, error)
	// Files lists the paths backing the source, for watching. Nil when the
	// source is not file backed.
	Files() []string
}

// StaticSource serves a fixed list.
type StaticSource struct {
	events []calendar.Event
}

func NewStaticSource(evs []calendar.Event) *StaticSource {
	return &StaticSource{events: append([]calendar.Event(nil), evs...)}
}

func (s *StaticSource) Events() ([]calendar.Event, error) {
	return append([]calendar.Event(nil), s.events...), nil
}

func (s *StaticSource) Files() []string { return nil }

// FileSource reads one or more event files on every call, concatenating
// them in the order given.
type FileSource struct {
	mu    sync.RWMutex
	files []string
}

func NewFileSource(files ...string) *FileSource {
	return &FileSource{files: append([]string(nil), files...)}
}

func (s *FileSource) SetFiles(files []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = append([]string(nil), files...)
}

func (s *FileSource) Files() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.files...)
}

func (s *FileSource) Events() ([]calendar.Event, error) {
	files := s.Files()
	if len(files) == 0 {
		return nil, fmt.Errorf("no event files configured")
	}

	var all []calendar.Event
	for _, path := range files {
		evs, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, evs...)
	}
	return all, nil
}

// CompositeSource combines several sources. When two sources share an ID
// the first one wins. A failing source does not hide the others: its error
// is joined into the returned error alongside the events that did load.
type CompositeSource struct {
	mu      sync.RWMutex
	sources []Source
}

func NewCompositeSource(sources ...Source) *CompositeSource {
	return &CompositeSource{sources: sources}
}

func (c *CompositeSource) AddSource(source Source) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sources = append(c.sources, source)
}

func (c *CompositeSource) Files() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var files []string
	for _, s := range c.sources {
		files = append(files, s.Files()...)
	}
	return files
}

func (c *CompositeSource) Events() ([]calendar.Event, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var (
		all  []calendar.Event
		errs []error
	)
	seen := make(map[string]bool)
	for _, s := range c.sources {
		evs, err := s.Events()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, e := range evs {
			if seen[e.ID] {
				continue
			}
			seen[e.ID] = true
			all = append(all, e)
		}
	}
	return all, errors.Join(errs...)
}
