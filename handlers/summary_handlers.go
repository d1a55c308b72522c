// handlers/summary_handlers.go
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sociobooks/sociobooks-backend/utils"
)

// GetSummary returns the dashboard aggregates. Optional from/to query
// params (RFC 3339 or YYYY-MM-DD) restrict the cost/profit totals.
func GetSummary(c *gin.Context) {
	from, err := parseDateParam(c.Query("from"))
	if err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid from date"))
		return
	}
	to, err := parseDateParam(c.Query("to"))
	if err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid to date"))
		return
	}

	summary, err := handlerServices.SummaryService.GetSummary(c.Request.Context(), AccountID(c), from, to)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, summary)
}

func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
