package console

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

type route struct {
	name    string
	usage   string
	summary string
	handler HandlerFunc
}

// Router resolves the first one or two words of a command line to a handler.
type Router struct {
	routes map[string]route
	order  []string
	mw     []Middleware
}

func InitRouter(h *Handler, mw ...Middleware) *Router {
	r := &Router{routes: make(map[string]route), mw: mw}

	r.public("help", "help", "list commands", r.help)
	r.public("login", "login <staff-id> [password]", "start a staff session", h.Login)
	r.public("quit", "quit", "leave the console", h.Quit)

	r.private("logout", "logout", "end the staff session", h.Logout)
	r.private("passwd", "passwd [old new]", "change your password", h.ChangePassword)

	// Trains
	r.private("trains", "trains [--all]", "list trains", h.ListTrains)
	r.private("train add",
		"train add --dest <name> --date YYYY-MM-DD --time HH:MM --standard-seats N --premium-seats N --standard-price X --premium-price X",
		"schedule a train", h.CreateTrain)
	r.private("train set",
		"train set <train-id> [--dest] [--date] [--time] [--standard-seats] [--premium-seats] [--standard-price] [--premium-price]",
		"modify a train", h.UpdateTrain)
	r.private("train discontinue", "train discontinue <train-id>", "withdraw a train", h.DiscontinueTrain)

	// Bookings
	r.private("book",
		"book --train <id> --passenger <name> [--tier GOLD|SILVER|NORMAL] [--seat STANDARD|PREMIUM] [--qty N] [--contact] [--ic]",
		"book seats", h.CreateBooking)
	r.private("cancel", "cancel <booking-id>", "cancel a booking", h.CancelBooking)
	r.private("bookings", "bookings [train-id]", "list bookings", h.ListBookings)

	// Staff
	r.private("staff add", "staff add --name <name> [--contact] [--ic] [--password]", "register a staff member", h.RegisterStaff)
	r.private("staff list", "staff list", "list staff", h.ListStaff)

	return r
}

func (r *Router) public(name, usage, summary string, h HandlerFunc) {
	r.handle(name, usage, summary, h)
}

func (r *Router) private(name, usage, summary string, h HandlerFunc) {
	r.handle(name, usage, summary, requireLogin(h))
}

func (r *Router) handle(name, usage, summary string, h HandlerFunc) {
	for i := len(r.mw) - 1; i >= 0; i-- {
		h = r.mw[i](h)
	}
	r.routes[name] = route{name: name, usage: usage, summary: summary, handler: h}
	r.order = append(r.order, name)
}

// Dispatch resolves args to a route and runs it. Two-word commands take
// precedence over one-word commands.
func (r *Router) Dispatch(c *Context, args []string) error {
	if len(args) == 0 {
		return nil
	}

	rt, ok := route{}, false
	if len(args) > 1 {
		rt, ok = r.routes[args[0]+" "+args[1]]
		if ok {
			args = args[2:]
		}
	}
	if !ok {
		rt, ok = r.routes[args[0]]
		if !ok {
			c.Command = args[0]
			return fmt.Errorf("%w %q", errUnknownCommand, strings.Join(args[:min(2, len(args))], " "))
		}
		args = args[1:]
	}

	c.Command = rt.name
	c.usage = rt.usage
	c.Args = args
	return rt.handler(c)
}

func (r *Router) help(c *Context) error {
	tw := tabwriter.NewWriter(c.Out, 0, 0, 2, ' ', 0)
	for _, name := range r.order {
		rt := r.routes[name]
		fmt.Fprintf(tw, "  %s\t%s\n", rt.name, rt.summary)
	}
	tw.Flush()
	return nil
}
