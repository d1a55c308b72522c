package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sociobooks/sociobooks-backend/repository"
	"github.com/sociobooks/sociobooks-backend/services"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	PartnerService *services.PartnerService
	CostService    *services.CostService
	ProfitService  *services.ProfitService
	SummaryService *services.SummaryService
	ReportService  *services.ReportService
}

// NewHandlerServices creates a new handler services instance
func NewHandlerServices(store repository.Store) *HandlerServices {
	summaryService := services.NewSummaryService(store)
	return &HandlerServices{
		PartnerService: services.NewPartnerService(store),
		CostService:    services.NewCostService(store),
		ProfitService:  services.NewProfitService(store),
		SummaryService: summaryService,
		ReportService:  services.NewReportService(store, summaryService),
	}
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers() {
	handlerServices = NewHandlerServices(repository.NewSQLStore())
}

// accountHeader carries the authenticated account owning the records.
// Authentication itself happens upstream; this layer only scopes data.
const accountHeader = "X-Account-ID"

// AccountID returns the account the request operates on.
func AccountID(c *gin.Context) string {
	return c.GetHeader(accountHeader)
}

// RequireAccount rejects requests without an account header.
func RequireAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(accountHeader) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing " + accountHeader + " header"})
			return
		}
		c.Next()
	}
}
