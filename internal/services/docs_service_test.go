package services

import (
	"strings"
	"testing"

	"railticket/internal/catalog"
	"railticket/internal/domain"
	"railticket/internal/domain/models"
	"railticket/internal/ledger"
)

func TestDocsServiceGenerate(t *testing.T) {
	loader := func(id string) (ticketDocData, error) {
		return ticketDocData{
			BookingID:     id,
			PassengerName: "Tester",
			TrainID:       "12001",
			TrainName:     "Kolkata Express",
			Route:         "Kolkata -> Delhi",
			TravelDate:    "2026-09-01",
			Departure:     "06:00",
			SeatNo:        4,
			Status:        models.StatusConfirmed,
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateETicket("BK01")
	if err != nil {
		t.Fatalf("GenerateETicket returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateETicket returned empty data")
	}
	if !strings.HasPrefix(filename, "ETICKET_BK01") {
		t.Fatalf("unexpected filename %s", filename)
	}
}

func TestDocsServiceLoadsFromLedger(t *testing.T) {
	dir := t.TempDir()
	c, err := catalog.Open(dir)
	if err != nil {
		t.Fatalf("catalog open: %v", err)
	}
	l := ledger.New(dir)
	if err := l.Append(models.Booking{
		ID: "BK01", PassengerName: "Asha", TrainID: "12001",
		TravelDate: "2026-09-01", SeatNo: 2, Status: models.StatusConfirmed,
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	svc := DocsService{Catalog: c, Ledger: l}
	pdf, _, err := svc.GenerateETicket("BK01")
	if err != nil {
		t.Fatalf("GenerateETicket: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("empty pdf")
	}

	if _, _, err := svc.GenerateETicket("BK99"); !domain.IsNotFound(err) {
		t.Fatalf("unknown booking: got %v, want NotFoundError", err)
	}
}
