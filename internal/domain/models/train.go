package models

// Train is read-only catalog data. Capacity never changes within a
// session; availability is always derived from the booking ledger.
type Train struct {
	ID            string `json:"train_id"`
	Name          string `json:"train_name"`
	SourceID      string `json:"source_id"`
	DestinationID string `json:"destination_id"`
	TotalSeats    int    `json:"total_seats"`
}

type Station struct {
	ID   string `json:"station_id"`
	Name string `json:"station_name"`
	City string `json:"city"`
}

// Schedule is one dated run of a train. Many schedules may reference
// the same train.
type Schedule struct {
	ID            string `json:"schedule_id"`
	TrainID       string `json:"train_id"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	TravelDate    string `json:"travel_date"`
}
