package console

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/changzc22/SM-Assignment-sub000/internal/console/view"
	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
)

type TrainSvc interface {
	Create(ctx context.Context, input domain.CreateTrainInput) (*domain.Train, error)
	Update(ctx context.Context, id string, patch domain.TrainPatch) (*domain.Train, error)
	Discontinue(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Train, error)
	ListActive(ctx context.Context) ([]domain.Train, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string) error
	List(ctx context.Context) ([]domain.Booking, error)
	ListByTrain(ctx context.Context, trainID string) ([]domain.Booking, error)
}

type StaffSvc interface {
	Register(ctx context.Context, input domain.RegisterStaffInput) (*domain.Staff, error)
	List(ctx context.Context) ([]domain.Staff, error)
}

type AuthSvc interface {
	AttemptLogin(ctx context.Context, staffID, password string) (*domain.Staff, error)
	ChangePassword(ctx context.Context, staffID, oldPassword, newPassword string) error
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type Handler struct {
	trainService   TrainSvc
	bookingService BookingSvc
	staffService   StaffSvc
	authService    AuthSvc
	location       *time.Location
}

// NewHandler reads and prints departures in loc.
func NewHandler(trainService TrainSvc, bookingService BookingSvc, staffService StaffSvc, authService AuthSvc, loc *time.Location) *Handler {
	return &Handler{
		trainService:   trainService,
		bookingService: bookingService,
		staffService:   staffService,
		authService:    authService,
		location:       loc,
	}
}

// Session

func (h *Handler) Login(c *Context) error {
	if len(c.Args) < 1 || len(c.Args) > 2 {
		return errUsage
	}
	password, err := c.secret(1, "Password: ")
	if err != nil {
		return err
	}

	staff, err := h.authService.AttemptLogin(c.Ctx(), c.Args[0], password)
	if err != nil {
		return err
	}

	c.Session.Staff = staff
	view.OK(c.Out, "welcome, %s (%s)", staff.Name, staff.ID)
	return nil
}

func (h *Handler) Logout(c *Context) error {
	id := c.Session.StaffID()
	c.Session.Staff = nil
	view.OK(c.Out, "%s logged out", id)
	return nil
}

func (h *Handler) ChangePassword(c *Context) error {
	if len(c.Args) != 0 && len(c.Args) != 2 {
		return errUsage
	}
	oldPassword, err := c.secret(0, "Current password: ")
	if err != nil {
		return err
	}
	newPassword, err := c.secret(1, "New password: ")
	if err != nil {
		return err
	}

	if err = h.authService.ChangePassword(c.Ctx(), c.Session.StaffID(), oldPassword, newPassword); err != nil {
		return err
	}

	view.OK(c.Out, "password changed")
	return nil
}

// Trains

func (h *Handler) ListTrains(c *Context) error {
	fs := c.flagSet()
	all := fs.Bool("all", false, "include discontinued trains")
	if err := c.parse(fs); err != nil {
		return err
	}

	list := h.trainService.ListActive
	if *all {
		list = h.trainService.List
	}
	trains, err := list(c.Ctx())
	if err != nil {
		return err
	}

	view.Trains(c.Out, trains)
	return nil
}

func (h *Handler) CreateTrain(c *Context) error {
	fs := c.flagSet()
	dest := fs.String("dest", "", "destination")
	date := fs.String("date", "", "departure date YYYY-MM-DD")
	clock := fs.String("time", "", "departure time HH:MM")
	stdSeats := fs.Int("standard-seats", 0, "standard seat quantity")
	prmSeats := fs.Int("premium-seats", 0, "premium seat quantity")
	stdPrice := fs.Float64("standard-price", 0, "standard seat price")
	prmPrice := fs.Float64("premium-price", 0, "premium seat price")
	if err := c.parse(fs); err != nil {
		return err
	}
	if *dest == "" || *date == "" || *clock == "" {
		return errUsage
	}

	departure, err := h.parseDeparture(*date, *clock)
	if err != nil {
		return err
	}

	train, err := h.trainService.Create(c.Ctx(), domain.CreateTrainInput{
		Destination:     *dest,
		Departure:       departure,
		StandardSeatQty: *stdSeats,
		PremiumSeatQty:  *prmSeats,
		StandardPrice:   *stdPrice,
		PremiumPrice:    *prmPrice,
	})
	if err != nil {
		return err
	}

	view.OK(c.Out, "train %s to %s created", train.ID, train.Destination)
	return nil
}

// UpdateTrain applies only the flags that were given on the command line.
func (h *Handler) UpdateTrain(c *Context) error {
	if len(c.Args) < 1 || strings.HasPrefix(c.Args[0], "-") {
		return errUsage
	}
	id := c.Args[0]
	c.Args = c.Args[1:]

	fs := c.flagSet()
	dest := fs.String("dest", "", "destination")
	date := fs.String("date", "", "departure date YYYY-MM-DD")
	clock := fs.String("time", "", "departure time HH:MM")
	stdSeats := fs.Int("standard-seats", 0, "standard seat quantity")
	prmSeats := fs.Int("premium-seats", 0, "premium seat quantity")
	stdPrice := fs.Float64("standard-price", 0, "standard seat price")
	prmPrice := fs.Float64("premium-price", 0, "premium seat price")
	if err := c.parse(fs); err != nil {
		return err
	}

	var patch domain.TrainPatch
	if fs.Changed("dest") {
		patch.Destination = dest
	}
	if fs.Changed("date") || fs.Changed("time") {
		current, err := h.currentDeparture(c.Ctx(), id)
		if err != nil {
			return err
		}
		if !fs.Changed("date") {
			*date = current.In(h.location).Format(dateLayout)
		}
		if !fs.Changed("time") {
			*clock = current.In(h.location).Format(timeLayout)
		}
		departure, err := h.parseDeparture(*date, *clock)
		if err != nil {
			return err
		}
		patch.Departure = &departure
	}
	if fs.Changed("standard-seats") {
		patch.StandardSeatQty = stdSeats
	}
	if fs.Changed("premium-seats") {
		patch.PremiumSeatQty = prmSeats
	}
	if fs.Changed("standard-price") {
		patch.StandardPrice = stdPrice
	}
	if fs.Changed("premium-price") {
		patch.PremiumPrice = prmPrice
	}
	if patch.Empty() {
		return errUsage
	}

	train, err := h.trainService.Update(c.Ctx(), id, patch)
	if err != nil {
		return err
	}

	view.Trains(c.Out, []domain.Train{*train})
	return nil
}

func (h *Handler) DiscontinueTrain(c *Context) error {
	if len(c.Args) != 1 {
		return errUsage
	}

	if err := h.trainService.Discontinue(c.Ctx(), c.Args[0]); err != nil {
		return err
	}

	view.OK(c.Out, "train %s discontinued", c.Args[0])
	return nil
}

func (h *Handler) currentDeparture(ctx context.Context, id string) (time.Time, error) {
	trains, err := h.trainService.List(ctx)
	if err != nil {
		return time.Time{}, err
	}
	for _, t := range trains {
		if t.ID == id {
			return t.Departure, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s", domain.ErrTrainNotFound, id)
}

func (h *Handler) parseDeparture(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout+" "+timeLayout, date+" "+clock, h.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: departure must be YYYY-MM-DD HH:MM", domain.ErrValidation)
	}
	return t, nil
}

// Bookings

func (h *Handler) CreateBooking(c *Context) error {
	fs := c.flagSet()
	trainID := fs.String("train", "", "train id")
	name := fs.String("passenger", "", "passenger name")
	contact := fs.String("contact", "", "passenger contact number")
	ic := fs.String("ic", "", "passenger IC number")
	tier := fs.String("tier", string(domain.PassengerTierNormal), "passenger tier GOLD|SILVER|NORMAL")
	seat := fs.String("seat", string(domain.SeatTierStandard), "seat tier STANDARD|PREMIUM")
	qty := fs.Int("qty", 1, "number of seats")
	if err := c.parse(fs); err != nil {
		return err
	}
	if *trainID == "" || *name == "" {
		return errUsage
	}

	passengerTier, err := domain.ParsePassengerTier(*tier)
	if err != nil {
		return err
	}
	seatTier, err := domain.ParseSeatTier(*seat)
	if err != nil {
		return err
	}

	booking, err := h.bookingService.Create(c.Ctx(), domain.CreateBookingInput{
		TrainID: *trainID,
		Passenger: domain.Passenger{
			ContactInfo: domain.ContactInfo{Name: *name, ContactNo: *contact, IC: *ic},
			Tier:        passengerTier,
		},
		SeatTier: seatTier,
		Quantity: *qty,
		StaffID:  c.Session.StaffID(),
	})
	if err != nil {
		return err
	}

	view.BookingReceipt(c.Out, *booking)
	return nil
}

func (h *Handler) CancelBooking(c *Context) error {
	if len(c.Args) != 1 {
		return errUsage
	}

	if err := h.bookingService.Cancel(c.Ctx(), c.Args[0]); err != nil {
		return err
	}

	view.OK(c.Out, "booking %s cancelled", c.Args[0])
	return nil
}

func (h *Handler) ListBookings(c *Context) error {
	var (
		bookings []domain.Booking
		err      error
	)
	switch len(c.Args) {
	case 0:
		bookings, err = h.bookingService.List(c.Ctx())
	case 1:
		bookings, err = h.bookingService.ListByTrain(c.Ctx(), c.Args[0])
	default:
		return errUsage
	}
	if err != nil {
		return err
	}

	view.Bookings(c.Out, bookings)
	return nil
}

// Staff

func (h *Handler) RegisterStaff(c *Context) error {
	fs := c.flagSet()
	name := fs.String("name", "", "full name")
	contact := fs.String("contact", "", "contact number")
	ic := fs.String("ic", "", "IC number")
	password := fs.String("password", "", "initial password")
	if err := c.parse(fs); err != nil {
		return err
	}
	if *name == "" {
		return errUsage
	}
	if *password == "" {
		p, err := c.prompt("Initial password: ")
		if err != nil {
			return err
		}
		*password = p
	}

	staff, err := h.staffService.Register(c.Ctx(), domain.RegisterStaffInput{
		ContactInfo: domain.ContactInfo{Name: *name, ContactNo: *contact, IC: *ic},
		Password:    *password,
	})
	if err != nil {
		return err
	}

	view.OK(c.Out, "staff %s registered as %s", staff.Name, staff.ID)
	return nil
}

func (h *Handler) ListStaff(c *Context) error {
	staff, err := h.staffService.List(c.Ctx())
	if err != nil {
		return err
	}

	view.Staff(c.Out, staff)
	return nil
}

func (h *Handler) Quit(c *Context) error {
	return ErrQuit
}
