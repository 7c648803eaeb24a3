// Package shell runs the interactive bookshop menu on a text console.
package shell

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"Bookshop/internal/catalog"
	"Bookshop/pkg/kit"
)

var (
	ErrInvalidID      = kit.NewError("invalid_id", "invalid id")
	ErrInvalidCommand = kit.NewError("invalid_command", "invalid command")
)

const (
	quitKey = "q"

	invalidCommandPause = 1 * time.Second
	outcomePause        = 2 * time.Second
)

// Screen is the output side of the shell. term.Console is the production
// implementation.
type Screen interface {
	Clear()
	Header(text string)
	Line(text string)
	Section(text string)
	MenuItem(key, desc string)
	Prompt(text string)
	Success(text string)
	Failure(text string)

	Entry(e catalog.Entry) string
	Summary(b catalog.Book) string
	Book(b catalog.Book)
}

// Shell is the menu loop. Log, Metrics and Pause are optional; a nil Pause
// skips the delays between screens.
type Shell struct {
	Store   catalog.Store
	Screen  Screen
	Input   *Input
	Log     *zap.Logger
	Metrics *kit.Metrics
	Pause   func(time.Duration)
}

type command struct {
	key  string
	name string
	desc string
	run  func() error
}

func (s *Shell) commands() []command {
	return []command{
		{key: "1", name: "create", desc: "Create a book", run: s.create},
		{key: "2", name: "list", desc: "List books", run: s.list},
		{key: "3", name: "update", desc: "Update a book", run: s.update},
		{key: "4", name: "delete", desc: "Delete a book", run: s.delete},
		{key: "5", name: "details", desc: "Show book details", run: s.details},
		{key: "6", name: "buy", desc: "Buy a book", run: s.buy},
		{key: "7", name: "read", desc: "Read a book", run: s.read},
		{key: "8", name: "return", desc: "Return a book", run: s.giveBack},
		{key: quitKey, name: "quit", desc: "Quit"},
	}
}

// Run shows the menu and dispatches commands until quit is chosen, input
// ends, or ctx is cancelled. Failures reported to the user never stop the
// loop; only input errors other than io.EOF are returned.
func (s *Shell) Run(ctx context.Context) error {
	cmds := s.commands()
	log := s.logger()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.menu(cmds)
		line, err := s.Input.Line()
		if err != nil {
			return endOfInput(err)
		}

		key := strings.ToLower(strings.TrimSpace(line))
		if key == quitKey {
			s.Screen.Clear()
			s.Screen.Success("Thank you for using the virtual library!")
			s.Screen.Line("")
			log.Debug("session ended")
			return nil
		}

		cmd, ok := lookup(cmds, key)
		if !ok {
			s.Screen.Failure("Invalid command")
			log.Info("invalid command", zap.String("input", line))
			s.Metrics.ObserveCommand("unknown", ErrInvalidCommand, 0)
			s.pause(invalidCommandPause)
			continue
		}

		start := time.Now()
		err = cmd.run()
		elapsed := time.Since(start)

		var reported *kit.CodedError
		if err != nil && !errors.As(err, &reported) {
			return endOfInput(err)
		}

		s.Metrics.ObserveCommand(cmd.name, err, elapsed)
		fields := []zap.Field{
			zap.String("command", cmd.name),
			zap.String("outcome", kit.Outcome(err)),
			zap.Duration("duration", elapsed),
		}
		if err != nil {
			log.Info("command failed", fields...)
		} else {
			log.Debug("command", fields...)
		}
	}
}

func (s *Shell) menu(cmds []command) {
	s.Screen.Clear()
	s.Screen.Header("VIRTUAL LIBRARY")
	s.Screen.Section("Available commands:")
	for _, c := range cmds {
		s.Screen.MenuItem(c.key, c.desc)
	}
	s.Screen.Prompt("\nEnter your choice: ")
}

func lookup(cmds []command, key string) (command, bool) {
	for _, c := range cmds {
		if c.key == key && c.run != nil {
			return c, true
		}
	}
	return command{}, false
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Shell) pause(d time.Duration) {
	if s.Pause != nil {
		s.Pause(d)
	}
}

func (s *Shell) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
