package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"casaherenia/services/taxi"
	"casaherenia/utils"
)

// TaxiHandler exposes transport requests.
type TaxiHandler struct {
	Service *taxi.Service
}

// RequestTaxi handles POST /api/taxi.
func (h *TaxiHandler) RequestTaxi(c *gin.Context) {
	var in taxi.RequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	req, err := h.Service.Request(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, taxi.ErrInvalidServiceType),
			errors.Is(err, taxi.ErrInvalidPassengers),
			errors.Is(err, taxi.ErrMissingContact),
			errors.Is(err, taxi.ErrInvalidPickupDate):
			utils.JSONError(c, http.StatusBadRequest, "invalid taxi request", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "could not submit taxi request", "")
		}
		return
	}

	c.JSON(http.StatusCreated, req)
}

// ListTaxiRequests handles GET /api/admin/taxi.
func (h *TaxiHandler) ListTaxiRequests(c *gin.Context) {
	reqs, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not list taxi requests", "")
		return
	}
	c.JSON(http.StatusOK, reqs)
}
