// handlers/cost_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sociobooks/sociobooks-backend/models"
	"github.com/sociobooks/sociobooks-backend/utils"
)

// ListCosts returns all costs for the account
func ListCosts(c *gin.Context) {
	costs, err := handlerServices.CostService.ListCosts(c.Request.Context(), AccountID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, costs)
}

// AddCost records a new shared cost
func AddCost(c *gin.Context) {
	var request models.AddCostRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	cost, err := handlerServices.CostService.AddCost(c.Request.Context(), AccountID(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"message": utils.MsgCostAdded, "cost": cost})
}

// EditCost replaces a cost's fields, reverting and reapplying its
// financial effect
func EditCost(c *gin.Context) {
	var request models.EditCostRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	cost, err := handlerServices.CostService.EditCost(c.Request.Context(), AccountID(c), c.Param("id"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"message": utils.MsgCostUpdated, "cost": cost})
}

// DeleteCost removes a cost without settled payments
func DeleteCost(c *gin.Context) {
	if err := handlerServices.CostService.DeleteCost(c.Request.Context(), AccountID(c), c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"message": utils.MsgCostDeleted})
}

// ToggleCostPayment flips one partner's paid flag on a cost
func ToggleCostPayment(c *gin.Context) {
	cost, nowPaid, err := handlerServices.CostService.TogglePayment(
		c.Request.Context(), AccountID(c), c.Param("id"), c.Param("partnerId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	message := "Payment reverted"
	if nowPaid {
		message = "Payment settled"
	}
	utils.HandleSuccess(c, gin.H{"message": message, "cost": cost})
}
