package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
	"github.com/tartampluch/go-contacts/internal/store"
)

// App runs the line-oriented command loop. It owns no business logic: user
// input is tokenized here, handed to the book/engine/store, and their
// results are rendered back as localized text.
type App struct {
	Book      *book.AddressBook
	Store     store.Store
	Generator *engine.Generator

	In  io.Reader
	Out io.Writer

	Lang               string
	SupportedLanguages []string
	I18nBundle         *i18n.Bundle
	Localizer          *i18n.Localizer
}

// New wires the command layer and loads the embedded translations.
// The generator's event summaries are localized through the same bundle.
func New(b *book.AddressBook, st store.Store, gen *engine.Generator, lang string, in io.Reader, out io.Writer) *App {
	a := &App{
		Book:      b,
		Store:     st,
		Generator: gen,
		In:        in,
		Out:       out,
		Lang:      lang,
	}
	a.SetupI18n()

	gen.FormatSummary = func(name string, age int) string {
		if age > 0 {
			return a.GetMsgData(config.TKeyEvtSummaryAge, map[string]any{"Name": name, "Age": age})
		}
		return a.GetMsgData(config.TKeyEvtSummary, map[string]any{"Name": name})
	}

	return a
}

// Run executes the read-eval-print loop until EOF, an exit command, or
// context cancellation. Lines are tokenized on whitespace; the first token
// selects the command, case-insensitively.
//
// Input is read on a separate goroutine so a signal can end the loop while
// it waits on an idle terminal; without that, Ctrl+C would sit trapped
// until the user pressed Enter and the shutdown save would never run.
func (a *App) Run(ctx context.Context) error {
	log := slog.With(config.LogKeyComponent, config.CompCLI)
	log.Info(config.MsgReplStarted, config.LogKeyLang, a.Lang)
	defer log.Info(config.MsgReplStopped)

	fmt.Fprintln(a.Out, a.GetMsg(config.TKeyWelcome))

	lines, readErr := a.readLines(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(a.Out, a.GetMsg(config.TKeyPrompt))

		var line string
		var open bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, open = <-lines:
		}
		if !open {
			if err := <-readErr; err != nil {
				return fmt.Errorf("%s: %w", config.ErrStdinRead, err)
			}
			return nil
		}

		cmd, args := parseInput(line)
		if cmd == "" {
			continue
		}

		log.Debug(config.MsgCmdReceived, config.LogKeyCommand, cmd)

		if cmd == config.CmdClose || cmd == config.CmdExit {
			fmt.Fprintln(a.Out, a.GetMsg(config.TKeyGoodbye))
			return nil
		}

		fmt.Fprintln(a.Out, a.dispatch(ctx, cmd, args))
	}
}

// readLines pumps input lines onto a channel. The channel closes on EOF,
// after which the error channel carries the scanner's verdict. The goroutine
// stays blocked in Scan after cancellation; the process is exiting anyway.
func (a *App) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(a.In)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
		close(lines)
	}()

	return lines, readErr
}

// parseInput splits a raw line into a lowercase command and its arguments.
func parseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
