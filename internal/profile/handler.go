package profile

import (
	"errors"
	"net/http"

	"logiflow/internal/get_token"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewProfileHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidProfile):
		return http.StatusBadRequest
	case errors.Is(err, ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmailInUse):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// GetProfileHandler godoc
// @Summary Obter perfil.
// @Tags Perfil
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 404 {string} string "Perfil não encontrado"
// @Router /profile [get]
// @Security ApiKeyAuth
func (p *Handler) GetProfileHandler(c echo.Context) error {
	payload := get_token.GetPayloadToken(c)

	result, err := p.InterfaceService.GetProfileService(c.Request().Context(), payload.UserID)
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// UpdateProfileHandler godoc
// @Summary Atualizar perfil.
// @Tags Perfil
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Dados do perfil"
// @Success 200 {object} ProfileResponse
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 409 {string} string "Email em uso"
// @Router /profile [put]
// @Security ApiKeyAuth
func (p *Handler) UpdateProfileHandler(c echo.Context) error {
	var request UpdateProfileRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetPayloadToken(c)
	data := UpdateProfileDto{
		UpdateProfileRequest: request,
		UserID:               payload.UserID,
	}

	result, err := p.InterfaceService.UpdateProfileService(c.Request().Context(), data)
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
