package ledger

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"railticket/internal/domain"
	"railticket/internal/domain/models"
	"railticket/internal/utils"
)

const bookingsFile = "bookings.csv"

var header = []string{"booking_id", "passenger_name", "train_id", "travel_date", "seat_no", "status"}

// Ledger is the append-mostly system of record for seat occupancy.
// A single mutex serializes writers in this process; two processes
// sharing one data directory get no such guarantee, matching the
// flat-file contract of the store.
type Ledger struct {
	path string
	mu   sync.Mutex
}

func New(dir string) *Ledger {
	if dir == "" {
		dir = "."
	}
	return &Ledger{path: filepath.Join(dir, bookingsFile)}
}

// ListAll reads the whole store fresh on every call. A missing file is
// an empty ledger, not an error. Rows with too few columns are
// dropped; a row whose seat_no does not parse survives with SeatNo 0
// so it still shows in history but never occupies a seat.
func (l *Ledger) ListAll() ([]models.Booking, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Booking{}, nil
		}
		return nil, domain.InternalError{Msg: "cannot read bookings store", Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, domain.InternalError{Msg: "cannot parse bookings store", Err: err}
	}

	out := []models.Booking{}
	for i, rec := range records {
		if i == 0 && len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "booking_id") {
			continue
		}
		if len(rec) < len(header) {
			continue
		}
		b := models.Booking{
			ID:            strings.TrimSpace(rec[0]),
			PassengerName: strings.TrimSpace(rec[1]),
			TrainID:       strings.TrimSpace(rec[2]),
			TravelDate:    strings.TrimSpace(rec[3]),
			Status:        strings.TrimSpace(rec[5]),
		}
		if b.ID == "" {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimSpace(rec[4])); err == nil {
			b.SeatNo = n
		}
		out = append(out, b)
	}
	return out, nil
}

// Append writes one row, creating the store with its header first when
// absent. Durability is whatever one appended CSV line gives.
func (l *Ledger) Append(b models.Booking) error {
	return l.AppendAll([]models.Booking{b})
}

// AppendAll writes the given rows in one open-append-sync cycle.
func (l *Ledger) AppendAll(bs []models.Booking) error {
	if len(bs) == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensureFile(); err != nil {
		return domain.InternalError{Msg: "cannot create bookings store", Err: err}
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return domain.InternalError{Msg: "cannot open bookings store", Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, b := range bs {
		rec := []string{b.ID, b.PassengerName, b.TrainID, b.TravelDate, strconv.Itoa(b.SeatNo), b.Status}
		if err := w.Write(rec); err != nil {
			return domain.InternalError{Msg: "cannot append booking", Err: err}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return domain.InternalError{Msg: "cannot append booking", Err: err}
	}
	return f.Sync()
}

// DeleteByID rewrites the store without the matching row. An absent id
// is a no-op with a warning, leaving the store unchanged.
func (l *Ledger) DeleteByID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ValidationError{Field: "booking_id", Msg: "must not be empty"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	all, err := l.ListAll()
	if err != nil {
		return err
	}
	kept := make([]models.Booking, 0, len(all))
	found := false
	for _, b := range all {
		if b.ID == id {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		utils.LogEvent("", "ledger", "delete", "booking "+id+" not found, store unchanged")
		return nil
	}
	return l.rewrite(kept)
}

func (l *Ledger) rewrite(bs []models.Booking) error {
	f, err := os.Create(l.path)
	if err != nil {
		return domain.InternalError{Msg: "cannot rewrite bookings store", Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return domain.InternalError{Msg: "cannot rewrite bookings store", Err: err}
	}
	for _, b := range bs {
		rec := []string{b.ID, b.PassengerName, b.TrainID, b.TravelDate, strconv.Itoa(b.SeatNo), b.Status}
		if err := w.Write(rec); err != nil {
			return domain.InternalError{Msg: "cannot rewrite bookings store", Err: err}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return domain.InternalError{Msg: "cannot rewrite bookings store", Err: err}
	}
	return f.Sync()
}

func (l *Ledger) ensureFile() error {
	if _, err := os.Stat(l.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(l.path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// SortNewestFirst orders bookings for display, newest id first.
// Booking ids embed the creation timestamp, so a plain string sort is
// chronological.
func SortNewestFirst(bs []models.Booking) {
	sort.Slice(bs, func(i, j int) bool { return bs[i].ID > bs[j].ID })
}
