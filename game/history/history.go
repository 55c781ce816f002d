// Package history keeps the append-only log of finished games.
package history

import (
	"log/slog"
	"math"
	"time"

	"snake-classic/game/types"
)

const (
	DefaultMaxEntries = 100
	TimeLayout        = "2006-01-02 15:04:05"
	NotApplicable     = "N/A"
)

// Entry is one finished game. Entries are never modified after creation.
type Entry struct {
	Mode       string  `json:"mode"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Duration   float64 `json:"duration"`
	Difficulty string  `json:"difficulty"`
	Speed      int     `json:"speed"`
	Score      int     `json:"score"`
}

// NewEntry builds an Entry. played is the game time with pauses removed and
// is rounded to hundredths of a second.
func NewEntry(mode types.Mode, difficulty types.Difficulty, speed, score int, start, end time.Time, played time.Duration) Entry {
	diff := difficulty.String()
	if mode == types.Speedrun || difficulty == types.DifficultyNone {
		diff = NotApplicable
	}
	return Entry{
		Mode:       mode.String(),
		StartTime:  start.Format(TimeLayout),
		EndTime:    end.Format(TimeLayout),
		Duration:   math.Round(played.Seconds()*100) / 100,
		Difficulty: diff,
		Speed:      speed,
		Score:      score,
	}
}

// Store persists the whole ordered list of entries.
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// Log is the in-memory history backed by a Store. It is owned by the game
// loop and is not safe for concurrent use.
type Log struct {
	store      Store
	maxEntries int
	logger     *slog.Logger
	entries    []Entry
}

type Option func(*Log)

func WithMaxEntries(n int) Option {
	return func(l *Log) {
		if n > 0 {
			l.maxEntries = n
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Log) {
		l.logger = logger
	}
}

func NewLog(store Store, opts ...Option) *Log {
	l := &Log{
		store:      store,
		maxEntries: DefaultMaxEntries,
		logger:     slog.Default(),
		entries:    make([]Entry, 0),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the store. A missing or unreadable store yields an empty history.
func (l *Log) Load() {
	entries, err := l.store.Load()
	if err != nil {
		l.logger.Debug("history unavailable, starting empty", "error", err)
		entries = nil
	}
	l.entries = l.truncate(append(make([]Entry, 0, len(entries)), entries...))
}

// Append adds e as the newest entry, drops the oldest entries beyond the cap
// and writes the list to the store.
func (l *Log) Append(e Entry) error {
	l.entries = l.truncate(append(l.entries, e))
	return l.store.Save(l.entries)
}

func (l *Log) truncate(entries []Entry) []Entry {
	if over := len(entries) - l.maxEntries; over > 0 {
		entries = append(make([]Entry, 0, l.maxEntries), entries[over:]...)
	}
	return entries
}

// Entries returns a copy, oldest first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	return len(l.entries)
}

func (l *Log) MaxEntries() int {
	return l.maxEntries
}
