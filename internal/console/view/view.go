// Package view renders domain records for the operator console.
package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const DepartureLayout = "2006-01-02 15:04"

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func Trains(w io.Writer, trains []domain.Train) {
	if len(trains) == 0 {
		fmt.Fprintln(w, "no trains")
		return
	}

	tw := table(w)
	fmt.Fprintln(tw, "ID\tDESTINATION\tDEPARTURE\tSTANDARD\tPREMIUM\tSTD PRICE\tPRM PRICE\tSTATUS")
	for _, t := range trains {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%.2f\t%.2f\t%s\n",
			t.ID, t.Destination, t.Departure.Format(DepartureLayout),
			t.StandardSeatQty, t.PremiumSeatQty,
			t.StandardPrice, t.PremiumPrice, t.Status,
		)
	}
	tw.Flush()
}

func Bookings(w io.Writer, bookings []domain.Booking) {
	if len(bookings) == 0 {
		fmt.Fprintln(w, "no bookings")
		return
	}

	tw := table(w)
	fmt.Fprintln(tw, "ID\tPASSENGER\tTIER\tQTY\tFARE\tTRAIN\tSTAFF")
	for _, b := range bookings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.2f\t%s\t%s\n",
			b.ID, b.PassengerName, b.SeatTier, b.Quantity, b.Fare, b.TrainID, b.StaffID)
	}
	tw.Flush()
}

// Staff never prints password hashes.
func Staff(w io.Writer, staff []domain.Staff) {
	if len(staff) == 0 {
		fmt.Fprintln(w, "no staff")
		return
	}

	tw := table(w)
	fmt.Fprintln(tw, "ID\tNAME\tCONTACT\tIC\tBOOKINGS")
	for _, s := range staff {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", s.ID, s.Name, s.ContactNo, s.IC, s.BookingsHandled)
	}
	tw.Flush()
}

func BookingReceipt(w io.Writer, b domain.Booking) {
	OK(w, "booking %s created", b.ID)
	tw := table(w)
	fmt.Fprintf(tw, "  passenger\t%s\n", b.PassengerName)
	fmt.Fprintf(tw, "  train\t%s\n", b.TrainID)
	fmt.Fprintf(tw, "  seats\t%d %s\n", b.Quantity, b.SeatTier)
	fmt.Fprintf(tw, "  fare\tRM %.2f\n", b.Fare)
	tw.Flush()
}

func OK(w io.Writer, format string, args ...any) {
	style := lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("2"))
	fmt.Fprintln(w, style.Render(fmt.Sprintf(format, args...)))
}

func Error(w io.Writer, msg string) {
	style := lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	fmt.Fprintln(w, style.Render("error: "+msg))
}

func Prompt(w io.Writer, staffID string) {
	if staffID == "" {
		fmt.Fprint(w, "> ")
		return
	}
	fmt.Fprintf(w, "%s> ", staffID)
}
