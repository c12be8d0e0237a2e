package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"railticket/internal/domain"
	"railticket/internal/domain/models"
	"railticket/internal/utils"
)

const (
	trainsFile    = "trains.csv"
	stationsFile  = "stations.csv"
	schedulesFile = "schedules.csv"
)

// Catalog exposes train, station and schedule metadata as a read-only
// lookup. It is loaded once per Open; bookings never touch it.
type Catalog struct {
	dir        string
	trains     []models.Train
	trainsByID map[string]models.Train
	stations   map[string]models.Station
	schedules  []models.Schedule
}

// Open loads the catalog CSVs from dir. When the trains file does not
// exist yet the fixed sample dataset is written first, so a fresh data
// directory always yields a working catalog.
func Open(dir string) (*Catalog, error) {
	if dir == "" {
		dir = "."
	}
	if _, err := os.Stat(filepath.Join(dir, trainsFile)); os.IsNotExist(err) {
		if err := Seed(dir); err != nil {
			return nil, domain.DataLoadError{Store: trainsFile, Err: err}
		}
		utils.LogEvent("", "catalog", "seed", "created catalog files from sample dataset in "+dir)
	}

	c := &Catalog{
		dir:        dir,
		trainsByID: map[string]models.Train{},
		stations:   map[string]models.Station{},
	}
	if err := c.loadTrains(); err != nil {
		return nil, err
	}
	if err := c.loadStations(); err != nil {
		return nil, err
	}
	if err := c.loadSchedules(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) loadTrains() error {
	rows, idx, err := readTable(filepath.Join(c.dir, trainsFile),
		"train_id", "train_name", "source_id", "destination_id", "total_seats")
	if err != nil {
		return domain.DataLoadError{Store: trainsFile, Err: err}
	}
	for _, row := range rows {
		seats, err := strconv.Atoi(strings.TrimSpace(row[idx["total_seats"]]))
		if err != nil || seats <= 0 {
			utils.LogEvent("", "catalog", "load", "skipping train row with bad total_seats: "+row[idx["train_id"]])
			continue
		}
		t := models.Train{
			ID:            strings.TrimSpace(row[idx["train_id"]]),
			Name:          strings.TrimSpace(row[idx["train_name"]]),
			SourceID:      strings.TrimSpace(row[idx["source_id"]]),
			DestinationID: strings.TrimSpace(row[idx["destination_id"]]),
			TotalSeats:    seats,
		}
		if t.ID == "" {
			continue
		}
		c.trains = append(c.trains, t)
		c.trainsByID[t.ID] = t
	}
	return nil
}

func (c *Catalog) loadStations() error {
	rows, idx, err := readTable(filepath.Join(c.dir, stationsFile),
		"station_id", "station_name", "city")
	if err != nil {
		return domain.DataLoadError{Store: stationsFile, Err: err}
	}
	for _, row := range rows {
		s := models.Station{
			ID:   strings.TrimSpace(row[idx["station_id"]]),
			Name: strings.TrimSpace(row[idx["station_name"]]),
			City: strings.TrimSpace(row[idx["city"]]),
		}
		if s.ID == "" {
			continue
		}
		c.stations[s.ID] = s
	}
	return nil
}

func (c *Catalog) loadSchedules() error {
	rows, idx, err := readTable(filepath.Join(c.dir, schedulesFile),
		"schedule_id", "train_id", "departure_time", "arrival_time", "travel_date")
	if err != nil {
		return domain.DataLoadError{Store: schedulesFile, Err: err}
	}
	for _, row := range rows {
		s := models.Schedule{
			ID:            strings.TrimSpace(row[idx["schedule_id"]]),
			TrainID:       strings.TrimSpace(row[idx["train_id"]]),
			DepartureTime: strings.TrimSpace(row[idx["departure_time"]]),
			ArrivalTime:   strings.TrimSpace(row[idx["arrival_time"]]),
			TravelDate:    strings.TrimSpace(row[idx["travel_date"]]),
		}
		if s.ID == "" {
			continue
		}
		c.schedules = append(c.schedules, s)
	}
	return nil
}

// Trains returns all trains in file order.
func (c *Catalog) Trains() []models.Train {
	out := make([]models.Train, len(c.trains))
	copy(out, c.trains)
	return out
}

func (c *Catalog) TrainByID(id string) (models.Train, error) {
	t, ok := c.trainsByID[strings.TrimSpace(id)]
	if !ok {
		return models.Train{}, domain.NotFoundError{Resource: "train " + id}
	}
	return t, nil
}

// CapacityOf returns the immutable seat capacity of a train.
func (c *Catalog) CapacityOf(trainID string) (int, error) {
	t, err := c.TrainByID(trainID)
	if err != nil {
		return 0, err
	}
	return t.TotalSeats, nil
}

func (c *Catalog) StationByID(id string) (models.Station, bool) {
	s, ok := c.stations[strings.TrimSpace(id)]
	return s, ok
}

// SchedulesFor lists the dated runs of one train, in file order.
func (c *Catalog) SchedulesFor(trainID string) []models.Schedule {
	trainID = strings.TrimSpace(trainID)
	out := []models.Schedule{}
	for _, s := range c.schedules {
		if s.TrainID == trainID {
			out = append(out, s)
		}
	}
	return out
}

// FindRoute filters trains by case-insensitive substring match against
// the source/destination station name and city. Empty filters match
// everything; the result is recomputed on each call.
func (c *Catalog) FindRoute(from, to string) []models.Train {
	from = strings.ToLower(strings.TrimSpace(from))
	to = strings.ToLower(strings.TrimSpace(to))

	out := []models.Train{}
	for _, t := range c.trains {
		if c.stationMatches(t.SourceID, from) && c.stationMatches(t.DestinationID, to) {
			out = append(out, t)
		}
	}
	return out
}

func (c *Catalog) stationMatches(stationID, filter string) bool {
	if filter == "" {
		return true
	}
	s, ok := c.stations[stationID]
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(s.Name), filter) ||
		strings.Contains(strings.ToLower(s.City), filter)
}

// RouteLabel renders "source -> destination" for display, falling back
// to raw ids when a station row is missing.
func (c *Catalog) RouteLabel(t models.Train) string {
	src := t.SourceID
	if s, ok := c.stations[t.SourceID]; ok {
		src = s.City
	}
	dst := t.DestinationID
	if s, ok := c.stations[t.DestinationID]; ok {
		dst = s.City
	}
	return src + " -> " + dst
}

// readTable reads a CSV with a required header row and resolves the
// given column names to indexes. Ragged rows are tolerated; rows
// shorter than the widest required column are dropped.
func readTable(path string, required ...string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("missing header row")
	}

	idx := map[string]int{}
	for i, col := range records[0] {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	max := 0
	for _, col := range required {
		i, ok := idx[col]
		if !ok {
			return nil, nil, fmt.Errorf("missing required column %q", col)
		}
		if i > max {
			max = i
		}
	}

	rows := [][]string{}
	for _, rec := range records[1:] {
		if len(rec) <= max {
			continue
		}
		rows = append(rows, rec)
	}
	return rows, idx, nil
}
