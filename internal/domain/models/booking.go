package models

// Booking statuses. Rows are never mutated in place; cancellation is
// row removal, so Confirmed is the only status the allocator writes.
const (
	StatusConfirmed = "Confirmed"
	StatusPending   = "Pending"
	StatusCancelled = "Cancelled"
)

// Booking is one seat on one train for one travel date. Multi-seat
// requests produce multiple rows, not one row with a seat list.
type Booking struct {
	ID            string `json:"booking_id"`
	PassengerName string `json:"passenger_name"`
	TrainID       string `json:"train_id"`
	TravelDate    string `json:"travel_date"`
	SeatNo        int    `json:"seat_no"`
	Status        string `json:"status"`
}

// BookingRequest carries the allocator input collected from the UI.
type BookingRequest struct {
	TrainID       string `json:"train_id"`
	TravelDate    string `json:"travel_date"`
	Seats         int    `json:"seats"`
	PassengerName string `json:"passenger_name"`
	Phone         string `json:"phone"`
}

// User backs the auth endpoints.
type User struct {
	ID           string `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
