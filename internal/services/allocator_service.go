package services

import (
	"fmt"
	"sync"
	"time"

	"railticket/internal/catalog"
	"railticket/internal/domain"
	"railticket/internal/domain/models"
	"railticket/internal/ledger"
	"railticket/internal/utils"
)

// allocMu serializes the read-compute-append cycle so two in-process
// requests cannot both observe the same free set. Writers in other
// processes are outside this boundary; the flat-file store offers no
// cross-process guarantee.
var allocMu sync.Mutex

// AllocatorService turns a booking request into assigned seat numbers
// and ledger rows.
type AllocatorService struct {
	Catalog   *catalog.Catalog
	Ledger    *ledger.Ledger
	RequestID string

	// Now is injectable for tests; zero value means time.Now.
	Now func() time.Time
}

func (s AllocatorService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Allocate validates the request, assigns the lowest free seat numbers
// for the train and travel date, and appends one Confirmed row per
// seat. Nothing is persisted when fewer seats are free than requested.
// The returned seat numbers are ascending.
func (s AllocatorService) Allocate(req models.BookingRequest) ([]int, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	allocMu.Lock()
	defer allocMu.Unlock()

	capacity, err := s.Catalog.CapacityOf(req.TrainID)
	if err != nil {
		return nil, err
	}

	free, err := s.freeSeats(req.TrainID, req.TravelDate, capacity)
	if err != nil {
		return nil, err
	}
	if len(free) < req.Seats {
		return nil, domain.InsufficientCapacityError{
			TrainID:    req.TrainID,
			TravelDate: req.TravelDate,
			Requested:  req.Seats,
			Available:  len(free),
		}
	}

	assigned := free[:req.Seats]
	rows := make([]models.Booking, 0, len(assigned))
	used := map[string]bool{}
	now := s.now()
	for _, seat := range assigned {
		id := utils.NewBookingID(now)
		for tries := 0; used[id] && tries < 100; tries++ {
			id = utils.NewBookingID(now)
		}
		if used[id] {
			// Suffix space exhausted within one second; the seat
			// number is unique in this batch.
			id = fmt.Sprintf("%s%02d", id, seat%100)
		}
		used[id] = true
		rows = append(rows, models.Booking{
			ID:            id,
			PassengerName: req.PassengerName,
			TrainID:       req.TrainID,
			TravelDate:    req.TravelDate,
			SeatNo:        seat,
			Status:        models.StatusConfirmed,
		})
	}

	if err := s.Ledger.AppendAll(rows); err != nil {
		return nil, err
	}

	utils.LogEvent(s.RequestID, "allocator", "allocate",
		fmt.Sprintf("train=%s date=%s seats=%v", req.TrainID, req.TravelDate, assigned))
	return assigned, nil
}

// freeSeats recomputes availability from scratch: every non-Cancelled
// ledger row for the pair occupies its seat; anything left in
// {1..capacity} is free, ascending. Malformed seat values never enter
// the taken set.
func (s AllocatorService) freeSeats(trainID, travelDate string, capacity int) ([]int, error) {
	all, err := s.Ledger.ListAll()
	if err != nil {
		return nil, err
	}

	taken := map[int]bool{}
	for _, b := range all {
		if b.TrainID != trainID || b.TravelDate != travelDate {
			continue
		}
		if b.Status == models.StatusCancelled {
			continue
		}
		if b.SeatNo <= 0 {
			continue
		}
		taken[b.SeatNo] = true
	}

	free := []int{}
	for seat := 1; seat <= capacity; seat++ {
		if !taken[seat] {
			free = append(free, seat)
		}
	}
	return free, nil
}

func validateRequest(req *models.BookingRequest) error {
	req.PassengerName = utils.NormalizeSpace(req.PassengerName)
	req.TrainID = utils.TrimOrEmpty(req.TrainID)
	req.TravelDate = utils.TrimOrEmpty(req.TravelDate)
	req.Phone = utils.TrimOrEmpty(req.Phone)

	if req.PassengerName == "" {
		return domain.ValidationError{Field: "passenger_name", Msg: "must not be empty"}
	}
	if req.TrainID == "" {
		return domain.ValidationError{Field: "train_id", Msg: "must not be empty"}
	}
	if _, err := utils.ParseDate(req.TravelDate); err != nil {
		return domain.ValidationError{Field: "travel_date", Msg: "expected YYYY-MM-DD", Err: err}
	}
	if req.Seats < 1 {
		return domain.ValidationError{Field: "seats", Msg: "must be at least 1"}
	}
	if req.Phone != "" && (!utils.IsDigits(req.Phone) || len(req.Phone) < 7) {
		return domain.ValidationError{Field: "phone", Msg: "must be numeric with at least 7 digits"}
	}
	return nil
}
