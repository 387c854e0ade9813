// Command picopim is the device's home screen: it detects the display and
// keyboard, loads the data files and runs the main menu of PIM apps and
// games.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"picopim/display"
	"picopim/keyboard"
	"picopim/pim"
	"picopim/snake"
	"picopim/store"
	"picopim/tetris"
	"picopim/ui"
)

func main() {
	dataDir := flag.String("data", "data", "directory for the JSON data files")
	logFile := flag.String("log", "", "append logs to this file (default: discard)")
	seed := flag.Uint64("seed", 0, "fixed seed for the game RNGs (0 = random)")
	flag.Parse()

	// Logs go to a file, never to stdout: the terminal display backend owns
	// the screen.
	logger, closeLog, err := newLogger(*logFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	d := display.Detect(logger)
	kb := keyboard.Detect(logger)
	defer kb.Close()

	if err := run(d, kb, store.New(*dataDir), logger, *seed); err != nil {
		logger.Error("fatal", slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(d display.Device, kb keyboard.Input, st *store.Store, logger *slog.Logger, seed uint64) error {
	scores, err := store.NewScoreBook(st)
	if err != nil {
		return fmt.Errorf("failed to load scores: %w", err)
	}
	appointments, err := pim.NewAppointments(st, logger)
	if err != nil {
		return fmt.Errorf("failed to load appointments: %w", err)
	}
	todos, err := pim.NewTodos(st, logger)
	if err != nil {
		return fmt.Errorf("failed to load todos: %w", err)
	}
	notes, err := pim.NewNotes(st, logger)
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}
	journal, err := pim.NewJournal(st, logger)
	if err != nil {
		return fmt.Errorf("failed to load journal: %w", err)
	}
	calendar := pim.NewCalendar()

	newRand := func() *rand.Rand {
		if seed == 0 {
			return nil
		}
		return rand.New(rand.NewPCG(seed, seed))
	}
	record := func(game string) func(int) {
		return func(score int) {
			best, err := scores.Record(game, score)
			if err != nil {
				logger.Error("failed to save high score", slog.String("error", err.Error()))
			}
			if best {
				logger.Info("new high score", slog.String("game", game), slog.Int("score", score))
			}
		}
	}

	ui.MessageBox(d, kb, "PicoPIM", "", "Personal Information Manager", "for the Picocalc")

	menu := &ui.Menu{
		Display:  d,
		Keyboard: kb,
		Title:    "PicoPIM",
		Items: []ui.MenuItem{
			{Label: "Calendar", Run: func() bool { calendar.Run(d, kb); return true }},
			{Label: "Appointments", Run: func() bool { appointments.Run(d, kb); return true }},
			{Label: "To-Do List", Run: func() bool { todos.Run(d, kb); return true }},
			{Label: "Notes", Run: func() bool { notes.Run(d, kb); return true }},
			{Label: "Journal", Run: func() bool { journal.Run(d, kb); return true }},
			{Label: "Snake Game", Run: func() bool {
				snake.NewSession(snake.Options{
					Display: d, Keyboard: kb, Logger: logger,
					Rand: newRand(), OnGameOver: record("snake"),
				}).Run()
				return true
			}},
			{Label: "Tetris Game", Run: func() bool {
				tetris.NewSession(tetris.Options{
					Display: d, Keyboard: kb, Logger: logger,
					Rand: newRand(), OnGameOver: record("tetris"),
				}).Run()
				return true
			}},
			{Label: "High Scores", Run: func() bool {
				ui.MessageBox(d, kb, "High Scores",
					fmt.Sprintf("Tetris: %d", scores.Best("tetris")),
					fmt.Sprintf("Snake:  %d", scores.Best("snake")))
				return true
			}},
			{Label: "Exit", Run: func() bool { return false }},
		},
	}
	menu.Show()

	d.Clear(display.Black)
	d.Text("Goodbye", 130, 150, display.White)
	return d.Show()
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { f.Close() }, nil
}
