package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"railticket/internal/catalog"
	intconfig "railticket/internal/config"
	"railticket/internal/domain"
	"railticket/internal/domain/models"
	"railticket/internal/ledger"
	"railticket/internal/services"
)

// Console variant: same catalog/ledger/allocator as the API, driven by
// a numbered menu on stdin.
func main() {
	env := intconfig.LoadEnv()

	cat, err := catalog.Open(env.DataDir)
	if err != nil {
		log.Fatalf("cannot open catalog: %v", err)
	}
	led := ledger.New(env.DataDir)
	in := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println()
		fmt.Println("=== RailTicket ===")
		fmt.Println("1. List trains")
		fmt.Println("2. Book ticket")
		fmt.Println("3. List bookings")
		fmt.Println("4. Exit")
		choice := prompt(in, "Choose an option: ")

		switch choice {
		case "1":
			listTrains(cat)
		case "2":
			bookTicket(in, cat, led)
		case "3":
			listBookings(cat, led)
		case "4":
			fmt.Println("Bye.")
			return
		default:
			fmt.Println("Unknown option, try again.")
		}
	}
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		// stdin closed; behave like exit
		fmt.Println()
		os.Exit(0)
	}
	return strings.TrimSpace(in.Text())
}

func listTrains(cat *catalog.Catalog) {
	fmt.Println()
	fmt.Printf("%-8s %-20s %-28s %6s\n", "Train", "Name", "Route", "Seats")
	for _, t := range cat.Trains() {
		fmt.Printf("%-8s %-20s %-28s %6d\n", t.ID, t.Name, cat.RouteLabel(t), t.TotalSeats)
	}
}

func bookTicket(in *bufio.Scanner, cat *catalog.Catalog, led *ledger.Ledger) {
	trainID := prompt(in, "Train number: ")
	if _, err := cat.TrainByID(trainID); err != nil {
		fmt.Println("Error:", err)
		return
	}

	name := prompt(in, "Passenger name: ")

	ageRaw := prompt(in, "Age: ")
	age, err := strconv.Atoi(ageRaw)
	if err != nil || age < 1 || age > 120 {
		fmt.Println("Error: age must be a number between 1 and 120")
		return
	}

	date := prompt(in, "Travel date (YYYY-MM-DD): ")

	seatsRaw := prompt(in, "Seat count: ")
	seats, err := strconv.Atoi(seatsRaw)
	if err != nil {
		fmt.Println("Error: seat count must be a number")
		return
	}

	svc := services.AllocatorService{Catalog: cat, Ledger: led}
	assigned, err := svc.Allocate(models.BookingRequest{
		TrainID:       trainID,
		TravelDate:    date,
		Seats:         seats,
		PassengerName: name,
	})
	if err != nil {
		if domain.IsInsufficientCapacity(err) || domain.IsValidation(err) || domain.IsNotFound(err) {
			fmt.Println("Error:", err)
			return
		}
		fmt.Println("Booking failed:", err)
		return
	}

	fmt.Printf("Booked! Assigned seats: %v\n", assigned)
}

func listBookings(cat *catalog.Catalog, led *ledger.Ledger) {
	all, err := led.ListAll()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(all) == 0 {
		fmt.Println("No bookings yet.")
		return
	}
	ledger.SortNewestFirst(all)

	fmt.Println()
	fmt.Printf("%-20s %-18s %-8s %-12s %5s %-10s\n", "Booking", "Passenger", "Train", "Date", "Seat", "Status")
	for _, b := range all {
		fmt.Printf("%-20s %-18s %-8s %-12s %5d %-10s\n", b.ID, b.PassengerName, b.TrainID, b.TravelDate, b.SeatNo, b.Status)
	}

	// Bar summary of bookings per train, like the GUI's stats chart.
	stats := services.StatsService{Catalog: cat, Ledger: led}
	groups, err := stats.CountBookings("train")
	if err != nil || len(groups) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Bookings by train:")
	for _, g := range groups {
		fmt.Printf("  %-30s %s (%d)\n", g.Label, strings.Repeat("#", g.Count), g.Count)
	}
}
