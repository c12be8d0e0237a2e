package handlers

import (
	"net/http"

	"railticket/internal/utils"

	"github.com/gin-gonic/gin"
)

type quoteRequest struct {
	TrainID string `json:"train_id"`
	Class   string `json:"class"`
	Seats   int    `json:"seats"`
}

// POST /api/quote
// Price preview only; nothing is persisted.
func GetQuote(c *gin.Context) {
	var req quoteRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	a := getApp()
	t, err := a.Catalog.TrainByID(req.TrainID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if req.Seats < 1 {
		req.Seats = 1
	}

	perSeat := utils.ComputeFare(t.ID, req.Class)
	c.JSON(http.StatusOK, gin.H{
		"train_id":       t.ID,
		"class":          req.Class,
		"seats":          req.Seats,
		"price_per_seat": perSeat,
		"total_price":    perSeat * req.Seats,
	})
}
