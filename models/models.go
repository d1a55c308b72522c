// models/models.go
package models

import "time"

// Partner represents a business partner with a participation percentage
// and a running balance. Positive balance means the group owes them money,
// negative means they owe the group.
type Partner struct {
	ID            string    `json:"id"`
	AccountID     string    `json:"-"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Document      string    `json:"document,omitempty"`
	Participation float64   `json:"participation"`
	Balance       float64   `json:"balance"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CostPayment tracks one involved partner's share of a cost and whether
// they have settled it with the payer.
type CostPayment struct {
	PartnerID string  `json:"partnerId"`
	Amount    float64 `json:"amount"`
	Paid      bool    `json:"paid"`
}

// Cost represents a shared expense fronted by one partner and split
// equally among the involved partners. Payments round-trip through a
// JSONB document column next to the cost row.
type Cost struct {
	ID                 string        `json:"id"`
	AccountID          string        `json:"-"`
	Category           string        `json:"category"`
	Description        string        `json:"description,omitempty"`
	Value              float64       `json:"value"`
	Date               time.Time     `json:"date"`
	PayerID            string        `json:"payerId"`
	IsRecurrent        bool          `json:"isRecurrent"`
	InvolvedPartnerIDs []string      `json:"involvedPartnerIds"`
	Payments           []CostPayment `json:"payments"`
	CreatedAt          time.Time     `json:"createdAt"`
}

// ProfitDistribution is one partner's cut of a profit, computed from
// their participation at the time the profit was recorded.
type ProfitDistribution struct {
	PartnerID string  `json:"partnerId"`
	Amount    float64 `json:"amount"`
}

// Profit represents income distributed across all partners proportional
// to participation. Distributions round-trip through a JSONB column.
type Profit struct {
	ID            string               `json:"id"`
	AccountID     string               `json:"-"`
	Date          time.Time            `json:"date"`
	Value         float64              `json:"value"`
	Source        string               `json:"source"`
	Category      string               `json:"category"`
	Distributions []ProfitDistribution `json:"distributions"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// AddPartnerRequest request model
type AddPartnerRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Phone         string  `json:"phone"`
	Document      string  `json:"document"`
	Participation float64 `json:"participation" binding:"required,gt=0,lte=100"`
}

// EditPartnerRequest request model
type EditPartnerRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Phone         string  `json:"phone"`
	Document      string  `json:"document"`
	Participation float64 `json:"participation" binding:"required,gt=0,lte=100"`
}

// AddCostRequest request model
type AddCostRequest struct {
	Category           string    `json:"category" binding:"required"`
	Description        string    `json:"description"`
	Value              float64   `json:"value" binding:"required,gt=0"`
	Date               time.Time `json:"date" binding:"required"`
	PayerID            string    `json:"payerId" binding:"required"`
	IsRecurrent        bool      `json:"isRecurrent"`
	InvolvedPartnerIDs []string  `json:"involvedPartnerIds" binding:"required,min=1"`
}

// EditCostRequest request model
type EditCostRequest struct {
	Category           string    `json:"category" binding:"required"`
	Description        string    `json:"description"`
	Value              float64   `json:"value" binding:"required,gt=0"`
	Date               time.Time `json:"date" binding:"required"`
	PayerID            string    `json:"payerId" binding:"required"`
	IsRecurrent        bool      `json:"isRecurrent"`
	InvolvedPartnerIDs []string  `json:"involvedPartnerIds" binding:"required,min=1"`
}

// AddProfitRequest request model
type AddProfitRequest struct {
	Date     time.Time `json:"date" binding:"required"`
	Value    float64   `json:"value" binding:"required,gt=0"`
	Source   string    `json:"source" binding:"required"`
	Category string    `json:"category" binding:"required"`
}

// EditProfitRequest request model
type EditProfitRequest struct {
	Date     time.Time `json:"date" binding:"required"`
	Value    float64   `json:"value" binding:"required,gt=0"`
	Source   string    `json:"source" binding:"required"`
	Category string    `json:"category" binding:"required"`
}

// PartnerBalance is a partner's line in the dashboard summary.
type PartnerBalance struct {
	PartnerID     string  `json:"partnerId"`
	Name          string  `json:"name"`
	Participation float64 `json:"participation"`
	Balance       float64 `json:"balance"`
}

// Summary aggregates the account's bookkeeping for the dashboard.
type Summary struct {
	TotalCosts        float64            `json:"totalCosts"`
	TotalProfits      float64            `json:"totalProfits"`
	NetResult         float64            `json:"netResult"`
	RecurrentCosts    float64            `json:"recurrentCosts"`
	CostsByCategory   map[string]float64 `json:"costsByCategory"`
	ProfitsByCategory map[string]float64 `json:"profitsByCategory"`
	PartnerBalances   []PartnerBalance   `json:"partnerBalances"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
