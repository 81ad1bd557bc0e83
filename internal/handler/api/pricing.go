package api

import (
	"errors"
	"net/http"
	"time"

	resdto "rentmarket/internal/handler/dto/response"
	"rentmarket/internal/handler/httperr"
	"rentmarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Quote a rental
// @Description Compute the price breakdown and deposit for an item, date range and logistics option
// @Tags pricing
// @Produce json
// @Param item_id query string true "Item ID"
// @Param start_date query string true "Start date (RFC 3339 or YYYY-MM-DD)"
// @Param end_date query string true "End date (RFC 3339 or YYYY-MM-DD)"
// @Param logistics query string true "Logistics option (pickup, delivery, express)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pricing/quote [get]
func (h *PricingHandler) Quote(c *gin.Context) {
	itemID, err := uuid.Parse(c.Query("item_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item_id", nil)
		return
	}
	start, err := parseQuoteDate(c.Query("start_date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start_date", nil)
		return
	}
	end, err := parseQuoteDate(c.Query("end_date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid end_date", nil)
		return
	}
	quote, err := h.q.Quote(c.Request.Context(), itemID, start, end, c.Query("logistics"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
		case errors.Is(err, queries.ErrInvalidLogisticsOption):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid logistics option", nil)
		case errors.Is(err, queries.ErrQuoteDatesRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Start and end dates are required", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

func parseQuoteDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
