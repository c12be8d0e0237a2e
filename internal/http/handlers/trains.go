package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/trains?from=&to=
// Substring route search; empty filters list everything.
func GetTrains(c *gin.Context) {
	a := getApp()
	trains := a.Catalog.FindRoute(c.Query("from"), c.Query("to"))

	out := make([]gin.H, 0, len(trains))
	for _, t := range trains {
		out = append(out, gin.H{
			"train_id":       t.ID,
			"train_name":     t.Name,
			"source_id":      t.SourceID,
			"destination_id": t.DestinationID,
			"total_seats":    t.TotalSeats,
			"route":          a.Catalog.RouteLabel(t),
		})
	}
	c.JSON(http.StatusOK, gin.H{"trains": out, "count": len(out)})
}

// GET /api/trains/:id
func GetTrainByID(c *gin.Context) {
	a := getApp()
	t, err := a.Catalog.TrainByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"train": t,
		"route": a.Catalog.RouteLabel(t),
	})
}

// GET /api/trains/:id/schedules
func GetTrainSchedules(c *gin.Context) {
	a := getApp()
	t, err := a.Catalog.TrainByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"train_id":  t.ID,
		"schedules": a.Catalog.SchedulesFor(t.ID),
	})
}
