package catalog

import (
	"encoding/csv"
	"os"
	"path/filepath"
)

// Fixed sample dataset written on first run. Keeping it in code (not a
// bundled file) makes the create-if-missing behavior reproducible.
var seedStations = [][]string{
	{"ST01", "Kolkata Howrah Jn", "Kolkata"},
	{"ST02", "New Delhi", "Delhi"},
	{"ST03", "Mumbai Central", "Mumbai"},
	{"ST04", "Agra Cantt", "Agra"},
	{"ST05", "Pune Jn", "Pune"},
	{"ST06", "Chennai Central", "Chennai"},
	{"ST07", "Bengaluru City", "Bengaluru"},
	{"ST08", "Vijayawada Jn", "Vijayawada"},
	{"ST09", "Visakhapatnam", "Visakhapatnam"},
	{"ST10", "Patna Jn", "Patna"},
	{"ST11", "Howrah Jn", "Howrah"},
}

var seedTrains = [][]string{
	{"12001", "Kolkata Express", "ST01", "ST02", "72"},
	{"12951", "Mumbai Rajdhani", "ST03", "ST02", "64"},
	{"12863", "Shatabdi AC", "ST02", "ST04", "78"},
	{"11018", "Intercity Fast", "ST05", "ST03", "90"},
	{"22691", "Duronto Special", "ST06", "ST07", "60"},
	{"15667", "Coastal Queen", "ST08", "ST09", "72"},
	{"19311", "Humsafar", "ST10", "ST11", "80"},
}

var seedSchedules = [][]string{
	{"SCH01", "12001", "06:00", "04:30", "2026-09-01"},
	{"SCH02", "12951", "16:30", "10:15", "2026-09-01"},
	{"SCH03", "12863", "06:15", "09:35", "2026-09-01"},
	{"SCH04", "11018", "07:00", "11:00", "2026-09-01"},
	{"SCH05", "22691", "22:40", "05:10", "2026-09-01"},
	{"SCH06", "15667", "08:20", "13:20", "2026-09-01"},
	{"SCH07", "19311", "19:00", "07:00", "2026-09-01"},
}

// Seed writes the three catalog CSVs into dir, creating the directory
// when needed. Existing files are overwritten.
func Seed(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := writeCSV(filepath.Join(dir, stationsFile),
		[]string{"station_id", "station_name", "city"}, seedStations); err != nil {
		return err
	}
	if err := writeCSV(filepath.Join(dir, trainsFile),
		[]string{"train_id", "train_name", "source_id", "destination_id", "total_seats"}, seedTrains); err != nil {
		return err
	}
	return writeCSV(filepath.Join(dir, schedulesFile),
		[]string{"schedule_id", "train_id", "departure_time", "arrival_time", "travel_date"}, seedSchedules)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
