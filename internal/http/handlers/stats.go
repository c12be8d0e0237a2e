package handlers

import (
	"net/http"

	"railticket/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/stats/bookings?group_by=train|route|date|status
func GetBookingStats(c *gin.Context) {
	a := getApp()
	svc := services.StatsService{Catalog: a.Catalog, Ledger: a.Ledger}

	groupBy := c.DefaultQuery("group_by", "train")
	groups, err := svc.CountBookings(groupBy)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"group_by": groupBy, "groups": groups})
}
