// Package console is the line-oriented operator front end. Each input line is
// split shell-style and dispatched through the router.
package console

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/changzc22/SM-Assignment-sub000/internal/console/view"
	"github.com/google/shlex"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type Console struct {
	router     *Router
	in         io.Reader
	out        io.Writer
	session    *Session
	readSecret SecretReader
	logger     logger.Logger
}

type Option func(*Console)

// WithSecretReader lets commands prompt for passwords that were not given
// on the command line.
func WithSecretReader(r SecretReader) Option {
	return func(c *Console) { c.readSecret = r }
}

func New(router *Router, in io.Reader, out io.Writer, logger logger.Logger, opts ...Option) *Console {
	c := &Console{
		router:  router,
		in:      in,
		out:     out,
		session: &Session{ID: uuid.NewString()},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) Session() *Session { return c.session }

// Run reads commands until quit, end of input or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	c.logger.LogAttrs(ctx, logger.InfoLevel, "console session started",
		logger.String("session_id", c.session.ID),
	)
	defer c.logger.LogAttrs(ctx, logger.InfoLevel, "console session ended",
		logger.String("session_id", c.session.ID),
	)

	sc := bufio.NewScanner(c.in)
	for {
		view.Prompt(c.out, c.session.StaffID())
		if !sc.Scan() {
			return sc.Err()
		}
		if ctx.Err() != nil {
			return nil
		}
		if err := c.Exec(ctx, sc.Text()); errors.Is(err, ErrQuit) {
			return nil
		}
	}
}

// Exec runs a single command line and prints its outcome. Only ErrQuit is
// returned; every other failure is reported on the output.
func (c *Console) Exec(ctx context.Context, line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		view.Error(c.out, "cannot parse command: "+err.Error())
		return nil
	}

	cc := &Context{
		ctx:        ctx,
		Out:        c.out,
		Session:    c.session,
		readSecret: c.readSecret,
	}
	err = c.router.Dispatch(cc, args)
	if errors.Is(err, ErrQuit) {
		return err
	}
	if err != nil {
		renderError(cc, err, c.logger)
	}

	return nil
}
