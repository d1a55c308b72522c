package utils

const (
	// Cost categories
	CostCategorySite     = "site"
	CostCategoryProvider = "provider"
	CostCategoryDatabase = "database"
	CostCategoryOther    = "other"

	// Profit categories
	ProfitCategoryOperational   = "operational"
	ProfitCategoryExtraordinary = "extraordinary"
	ProfitCategoryInvestment    = "investment"
	ProfitCategoryOther         = "other"

	// User-facing messages
	ErrInvalidRequest        = "Invalid request"
	ErrDuplicateName         = "A partner with this name already exists"
	ErrDuplicateEmail        = "A partner with this email already exists"
	ErrParticipationExceeded = "Total participation cannot exceed 100%"
	ErrNonZeroBalance        = "Cannot delete a partner with a non-zero balance"
	ErrEmptySelection        = "Select at least one partner involved in the cost"
	ErrNoPartners            = "Add partners before recording this entry"
	ErrPaidPaymentsExist     = "Cannot delete a cost with settled payments. Revert the payments first"

	MsgPartnerAdded   = "Partner added successfully"
	MsgPartnerUpdated = "Partner updated successfully"
	MsgPartnerDeleted = "Partner deleted successfully"
	MsgCostAdded      = "Cost added successfully"
	MsgCostUpdated    = "Cost updated successfully"
	MsgCostDeleted    = "Cost deleted successfully"
	MsgProfitAdded    = "Profit recorded and distributed successfully"
	MsgProfitUpdated  = "Profit updated successfully"
	MsgProfitDeleted  = "Profit deleted successfully"

	// Precision for monetary calculations
	MoneyPrecision = 100.0
)

// CostCategories lists the accepted cost category tags.
var CostCategories = []string{
	CostCategorySite,
	CostCategoryProvider,
	CostCategoryDatabase,
	CostCategoryOther,
}

// ProfitCategories lists the accepted profit category tags.
var ProfitCategories = []string{
	ProfitCategoryOperational,
	ProfitCategoryExtraordinary,
	ProfitCategoryInvestment,
	ProfitCategoryOther,
}
