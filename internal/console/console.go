package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/google/uuid"

	"github.com/signalwire/max-outback/internal/bar"
	"github.com/signalwire/max-outback/internal/metrics"
	"github.com/signalwire/max-outback/internal/session"
)

// ErrExit signals that the customer asked to leave the console.
var ErrExit = errors.New("exit requested")

// Response is the structured result of one console command.
type Response struct {
	Text    string
	Success bool
}

// Console is the interactive stand-in for the dialogue engine: it parses
// typed commands deterministically, drives the bar engine with them, and
// persists the returned tab into the session between turns. It deliberately
// implements nothing conversational; it exists so the operation surface can
// be exercised end to end without the voice stack.
type Console struct {
	engine   *bar.Engine
	store    *session.Store
	metrics  *metrics.Registry
	logger   apt.Logger
	registry *CommandRegistry

	in  io.Reader
	out io.Writer

	conversationID string
	now            func() time.Time
}

func New(engine *bar.Engine, store *session.Store, reg *metrics.Registry, logger apt.Logger, in io.Reader, out io.Writer) *Console {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	c := &Console{
		engine:         engine,
		store:          store,
		metrics:        reg,
		logger:         logger,
		in:             in,
		out:            out,
		conversationID: uuid.NewString(),
		now:            time.Now,
	}
	c.registry = c.buildRegistry()
	return c
}

// Run reads commands until the input closes, the context is cancelled, or
// the customer exits.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Welcome to Outback Bar! I'm Max. Type 'menu' to see the drinks, 'help' for commands.")

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		scanErr <- scanner.Err()
		close(lines)
	}()

	for {
		fmt.Fprint(c.out, "> ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("cannot read input: %w", err)
				}
				return nil
			}
			resp, err := c.Process(ctx, line)
			if errors.Is(err, ErrExit) {
				fmt.Fprintln(c.out, resp.Text)
				return nil
			}
			if err != nil {
				c.logger.Errorf("cannot process command %q: %v", line, err)
				fmt.Fprintln(c.out, "Something went wrong behind the bar. Try that again?")
				continue
			}
			fmt.Fprintln(c.out, resp.Text)
		}
	}
}

// Process handles a single input line and returns the response to display.
func (c *Console) Process(ctx context.Context, input string) (*Response, error) {
	cmd, params, found := c.registry.FindCommand(input)
	if !found {
		return &Response{
			Text: fmt.Sprintf("I didn't catch that: %q. Type 'help' to see what I can do.", input),
		}, nil
	}
	return cmd.Handler(ctx, params)
}

// session returns the live session for this console's conversation.
func (c *Console) session() *session.Session {
	return c.store.GetOrCreate(c.conversationID)
}

// persist saves an operation's returned tab and advances the advisory
// stage. Outcomes without a tab (happy hour checks) persist nothing.
func (c *Console) persist(outcome bar.Outcome, stage bar.Stage) {
	if outcome.Tab == nil {
		return
	}
	sess := c.session()
	sess.Tab = outcome.Tab
	if stage.Valid() {
		sess.Stage = stage
	}
	if err := c.store.Save(sess); err != nil {
		c.logger.Errorf("cannot save session: %v", err)
	}
}
