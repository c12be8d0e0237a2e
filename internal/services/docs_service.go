package services

import (
	"bytes"
	"fmt"
	"strings"

	"railticket/internal/catalog"
	"railticket/internal/domain"
	"railticket/internal/ledger"
	"railticket/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders per-booking e-tickets.
type DocsService struct {
	Catalog   *catalog.Catalog
	Ledger    *ledger.Ledger
	RequestID string

	// Loader overrides the store lookup in tests.
	Loader func(bookingID string) (ticketDocData, error)
}

type ticketDocData struct {
	BookingID     string
	PassengerName string
	TrainID       string
	TrainName     string
	Route         string
	TravelDate    string
	Departure     string
	SeatNo        int
	Status        string
}

func (s DocsService) GenerateETicket(bookingID string) ([]byte, string, error) {
	data, err := s.loadTicketData(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", "booking_id="+bookingID)
	return buildETicketPDF(data)
}

func (s DocsService) loadTicketData(bookingID string) (ticketDocData, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	var out ticketDocData

	bookingID = strings.TrimSpace(bookingID)
	all, err := s.Ledger.ListAll()
	if err != nil {
		return out, err
	}
	found := false
	for _, b := range all {
		if b.ID == bookingID {
			out.BookingID = b.ID
			out.PassengerName = b.PassengerName
			out.TrainID = b.TrainID
			out.TravelDate = b.TravelDate
			out.SeatNo = b.SeatNo
			out.Status = b.Status
			found = true
			break
		}
	}
	if !found {
		return out, domain.NotFoundError{Resource: "booking " + bookingID}
	}

	if t, err := s.Catalog.TrainByID(out.TrainID); err == nil {
		out.TrainName = t.Name
		out.Route = s.Catalog.RouteLabel(t)
	}
	for _, sched := range s.Catalog.SchedulesFor(out.TrainID) {
		if sched.TravelDate == out.TravelDate {
			out.Departure = sched.DepartureTime
			break
		}
	}
	return out, nil
}

func buildETicketPDF(d ticketDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RAIL E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID   : %s", safe(d.BookingID, "-")),
		fmt.Sprintf("Passenger    : %s", safe(d.PassengerName, "-")),
		fmt.Sprintf("Train        : %s %s", safe(d.TrainID, "-"), safe(d.TrainName, "")),
		fmt.Sprintf("Route        : %s", safe(d.Route, "-")),
		fmt.Sprintf("Travel date  : %s", safe(d.TravelDate, "-")),
		fmt.Sprintf("Departure    : %s", safe(d.Departure, "-")),
		fmt.Sprintf("Seat         : %d", d.SeatNo),
		fmt.Sprintf("Status       : %s", safe(d.Status, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket is valid for one passenger on one seat. Please carry it during the journey.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s_%s.pdf", safeFilenamePart(d.BookingID), safeFilenamePart(d.PassengerName))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
