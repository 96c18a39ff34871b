package handlers

import (
	"errors"
	"net/http"

	response "cfr_notifier/internal/adapter/http/dto/response"
	"cfr_notifier/internal/usecase"
	"cfr_notifier/pkg"

	"github.com/gin-gonic/gin"
)

type GeocodeHandler struct {
	usecase usecase.IGeocodeUseCase
}

func NewGeocodeHandler(uc usecase.IGeocodeUseCase) *GeocodeHandler {
	return &GeocodeHandler{usecase: uc}
}

// Search godoc
// @Summary      Search addresses
// @Tags         geocoding
// @Produce      json
// @Param        q    query     string  true  "Free-text address, at least 3 characters"
// @Success      200  {array}   response.AddressCandidateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /api/geocode [get]
func (h *GeocodeHandler) Search(c *gin.Context) {
	candidates, err := h.usecase.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		appErr := mapGeocodeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAddressCandidates(candidates))
}

func mapGeocodeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrQueryTooShort):
		return pkg.NewDomainErrorSimple("QUERY_TOO_SHORT", "Query must be at least 3 characters", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("GEOCODER_UNAVAILABLE", "Geocoding failed", err, http.StatusInternalServerError)
	}
}
