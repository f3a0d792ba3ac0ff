package console

import (
	"errors"

	"github.com/changzc22/SM-Assignment-sub000/internal/console/view"
	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// renderError prints the operator-facing message for err. Errors with no
// domain meaning are logged and reported as internal.
func renderError(c *Context, err error, log logger.Logger) {
	var locked *domain.AccountLockedError

	switch {
	case errors.Is(err, errUnknownCommand):
		view.Error(c.Out, err.Error()+", type help for a list of commands")

	case errors.Is(err, errUsage):
		view.Error(c.Out, "usage: "+c.Usage())

	case errors.Is(err, errNotLoggedIn):
		view.Error(c.Out, "please login first")

	case errors.As(err, &locked):
		view.Error(c.Out, locked.Error())

	case errors.Is(err, domain.ErrInvalidCredentials):
		view.Error(c.Out, "invalid staff id or password")

	case errors.Is(err, domain.ErrTrainNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrStaffNotFound):
		view.Error(c.Out, err.Error())

	case errors.Is(err, domain.ErrInsufficientSeats),
		errors.Is(err, domain.ErrTrainDiscontinued),
		errors.Is(err, domain.ErrDuplicateDestination),
		errors.Is(err, domain.ErrIdentifierExhausted):
		view.Error(c.Out, err.Error())

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrUnknownSeatTier),
		errors.Is(err, domain.ErrUnknownPassengerTier):
		view.Error(c.Out, err.Error())

	default:
		if !errors.Is(err, errInternal) {
			log.LogAttrs(c.Ctx(), logger.ErrorLevel, "command error",
				logger.String("session_id", c.Session.ID),
				logger.String("command", c.Command),
				logger.String("error", err.Error()),
			)
		}
		view.Error(c.Out, "internal error")
	}
}
