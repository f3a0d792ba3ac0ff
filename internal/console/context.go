package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/spf13/pflag"
)

var (
	ErrQuit = errors.New("quit")

	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("usage")
	errNotLoggedIn    = errors.New("not logged in")
	errInternal       = errors.New("internal error")
)

// Session is the state of one console from start to quit.
type Session struct {
	ID    string
	Staff *domain.Staff
}

func (s *Session) StaffID() string {
	if s.Staff == nil {
		return ""
	}
	return s.Staff.ID
}

// SecretReader prompts for a value without echoing it.
type SecretReader func(prompt string) (string, error)

// Context carries one parsed command line through middleware and handler.
type Context struct {
	ctx        context.Context
	Command    string
	Args       []string
	Out        io.Writer
	Session    *Session
	usage      string
	readSecret SecretReader
}

func (c *Context) Ctx() context.Context { return c.ctx }

func (c *Context) Usage() string { return c.usage }

func (c *Context) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(c.Command, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	return fs
}

func (c *Context) parse(fs *pflag.FlagSet) error {
	if err := fs.Parse(c.Args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

// secret returns Args[i] when present, otherwise prompts for it.
func (c *Context) secret(i int, prompt string) (string, error) {
	if i < len(c.Args) {
		return c.Args[i], nil
	}
	return c.prompt(prompt)
}

func (c *Context) prompt(prompt string) (string, error) {
	if c.readSecret == nil {
		return "", errUsage
	}
	v, err := c.readSecret(prompt)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return v, nil
}

type HandlerFunc func(c *Context) error

type Middleware func(next HandlerFunc) HandlerFunc
