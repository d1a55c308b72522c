// handlers/partner_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sociobooks/sociobooks-backend/models"
	"github.com/sociobooks/sociobooks-backend/utils"
)

// ListPartners returns all partners for the account
func ListPartners(c *gin.Context) {
	partners, err := handlerServices.PartnerService.ListPartners(c.Request.Context(), AccountID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, partners)
}

// GetPartner returns one partner by id
func GetPartner(c *gin.Context) {
	partner, err := handlerServices.PartnerService.GetPartner(c.Request.Context(), AccountID(c), c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, partner)
}

// AddPartner registers a new partner
func AddPartner(c *gin.Context) {
	var request models.AddPartnerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	partner, err := handlerServices.PartnerService.AddPartner(c.Request.Context(), AccountID(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"message": utils.MsgPartnerAdded, "partner": partner})
}

// EditPartner updates a partner's attributes
func EditPartner(c *gin.Context) {
	var request models.EditPartnerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	partner, err := handlerServices.PartnerService.EditPartner(c.Request.Context(), AccountID(c), c.Param("id"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"message": utils.MsgPartnerUpdated, "partner": partner})
}

// DeletePartner removes a partner with a zero balance
func DeletePartner(c *gin.Context) {
	if err := handlerServices.PartnerService.DeletePartner(c.Request.Context(), AccountID(c), c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"message": utils.MsgPartnerDeleted})
}

// GetTotalParticipation returns the sum of all partners' participation
func GetTotalParticipation(c *gin.Context) {
	total, err := handlerServices.PartnerService.GetTotalParticipation(c.Request.Context(), AccountID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"totalParticipation": total})
}
