// handlers/profit_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sociobooks/sociobooks-backend/models"
	"github.com/sociobooks/sociobooks-backend/utils"
)

// ListProfits returns all profits for the account
func ListProfits(c *gin.Context) {
	profits, err := handlerServices.ProfitService.ListProfits(c.Request.Context(), AccountID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, profits)
}

// AddProfit records and distributes a new profit
func AddProfit(c *gin.Context) {
	var request models.AddProfitRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	profit, err := handlerServices.ProfitService.AddProfit(c.Request.Context(), AccountID(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"message": utils.MsgProfitAdded, "profit": profit})
}

// EditProfit replaces a profit's fields and redistributes
func EditProfit(c *gin.Context) {
	var request models.EditProfitRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	profit, err := handlerServices.ProfitService.EditProfit(c.Request.Context(), AccountID(c), c.Param("id"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"message": utils.MsgProfitUpdated, "profit": profit})
}

// DeleteProfit reverses and removes a profit
func DeleteProfit(c *gin.Context) {
	if err := handlerServices.ProfitService.DeleteProfit(c.Request.Context(), AccountID(c), c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"message": utils.MsgProfitDeleted})
}
