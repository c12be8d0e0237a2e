package handlers

import (
	"net/http"
	"strings"

	"railticket/internal/domain/models"
	"railticket/internal/http/middleware"
	"railticket/internal/ledger"
	"railticket/internal/services"
	"railticket/internal/utils"

	"github.com/gin-gonic/gin"
)

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	a := getApp()
	svc := services.AllocatorService{
		Catalog:   a.Catalog,
		Ledger:    a.Ledger,
		RequestID: middleware.GetRequestID(c),
	}
	seats, err := svc.Allocate(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"train_id":    req.TrainID,
		"travel_date": req.TravelDate,
		"seats":       seats,
		"count":       len(seats),
	})
}

// GET /api/bookings
// Newest booking first, matching the history view.
func GetBookings(c *gin.Context) {
	a := getApp()
	all, err := a.Ledger.ListAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	ledger.SortNewestFirst(all)
	c.JSON(http.StatusOK, gin.H{"bookings": all, "count": len(all)})
}

// GET /api/bookings/:id
func GetBookingByID(c *gin.Context) {
	a := getApp()
	id := strings.TrimSpace(c.Param("id"))
	all, err := a.Ledger.ListAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	for _, b := range all {
		if b.ID == id {
			c.JSON(http.StatusOK, gin.H{"booking": b})
			return
		}
	}
	respondError(c, http.StatusNotFound, "not_found", "booking "+id+" not found", nil)
}

// DELETE /api/bookings/:id
// Deleting an unknown id succeeds with deleted=false, mirroring the
// store's no-op-with-warning behavior.
func DeleteBooking(c *gin.Context) {
	a := getApp()
	id := strings.TrimSpace(c.Param("id"))

	all, err := a.Ledger.ListAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	existed := false
	for _, b := range all {
		if b.ID == id {
			existed = true
			break
		}
	}

	if err := a.Ledger.DeleteByID(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "bookings", "delete", "booking_id="+id)
	c.JSON(http.StatusOK, gin.H{"booking_id": id, "deleted": existed})
}

// GET /api/bookings/:id/e-ticket
func GetBookingETicket(c *gin.Context) {
	a := getApp()
	svc := services.DocsService{
		Catalog:   a.Catalog,
		Ledger:    a.Ledger,
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateETicket(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
