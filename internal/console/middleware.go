package console

import (
	"errors"
	"runtime/debug"
	"time"

	"github.com/wb-go/wbf/logger"
)

func Recovery(log logger.Logger) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(c *Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.LogAttrs(c.Ctx(), logger.ErrorLevel, "panic recovered",
						logger.String("command", c.Command),
						logger.Any("error", r),
						logger.String("stack", string(debug.Stack())),
					)
					err = errInternal
				}
			}()

			return next(c)
		}
	}
}

// CommandLogger logs every dispatched command. Arguments are never logged
// since they may carry passwords.
func CommandLogger(log logger.Logger) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(c *Context) error {
			start := time.Now()
			err := next(c)

			if err != nil && !errors.Is(err, ErrQuit) {
				log.LogAttrs(c.Ctx(), logger.WarnLevel, "command failed",
					logger.String("session_id", c.Session.ID),
					logger.String("command", c.Command),
					logger.String("staff_id", c.Session.StaffID()),
					logger.Duration("took", time.Since(start)),
					logger.String("error", err.Error()),
				)
				return err
			}

			log.LogAttrs(c.Ctx(), logger.InfoLevel, "command handled",
				logger.String("session_id", c.Session.ID),
				logger.String("command", c.Command),
				logger.String("staff_id", c.Session.StaffID()),
				logger.Duration("took", time.Since(start)),
			)

			return err
		}
	}
}

func requireLogin(next HandlerFunc) HandlerFunc {
	return func(c *Context) error {
		if c.Session.Staff == nil {
			return errNotLoggedIn
		}
		return next(c)
	}
}
