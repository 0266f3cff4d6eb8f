package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	blockRepo "casaherenia/database/repository/block"
	"casaherenia/models"
	"casaherenia/services/availability"
	"casaherenia/utils"
)

// BlockHandler exposes owner-managed manual closures.
type BlockHandler struct {
	Service *availability.ManualBlockService
}

type createBlockRequest struct {
	RoomID    string `json:"room_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason"`
}

// ListBlocks handles GET /api/admin/blocks?room_id=....
func (h *BlockHandler) ListBlocks(c *gin.Context) {
	unit := models.Unit(c.Query("room_id"))
	blocks, err := h.Service.List(c.Request.Context(), unit)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidUnit) {
			utils.JSONError(c, http.StatusBadRequest, "unknown unit", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "could not list blocks", "")
		return
	}
	c.JSON(http.StatusOK, blocks)
}

// CreateBlock handles POST /api/admin/blocks.
func (h *BlockHandler) CreateBlock(c *gin.Context) {
	var req createBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	id, err := h.Service.Create(c.Request.Context(),
		models.Unit(req.RoomID), req.StartDate, req.EndDate, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidUnit),
			errors.Is(err, availability.ErrInvalidBlockDate),
			errors.Is(err, availability.ErrInvalidBlockRange):
			utils.JSONError(c, http.StatusBadRequest, "invalid block", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "could not create block", "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"block_id": id})
}

// DeleteBlock handles DELETE /api/admin/blocks/:id.
func (h *BlockHandler) DeleteBlock(c *gin.Context) {
	err := h.Service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			utils.JSONError(c, http.StatusNotFound, "block not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "could not delete block", "")
		return
	}
	c.Status(http.StatusNoContent)
}
