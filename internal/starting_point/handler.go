package starting_point

import (
	"errors"
	"net/http"

	"logiflow/internal/get_token"
	"logiflow/validation"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewStartingPointHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidStartingPoint):
		return http.StatusBadRequest
	case errors.Is(err, ErrStartingPointNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDefaultStartingPoint):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// CreateStartingPointHandler godoc
// @Summary Cadastrar ponto de partida.
// @Description O primeiro ponto da empresa se torna o padrão.
// @Tags Pontos de partida
// @Accept json
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Param request body StartingPointRequest true "Nome e endereço"
// @Success 200 {object} StartingPointResponse
// @Failure 400 {string} string "Requisição Inválida"
// @Router /starting-points [post]
// @Security ApiKeyAuth
func (p *Handler) CreateStartingPointHandler(c echo.Context) error {
	var request StartingPointRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetPayloadToken(c)
	data := CreateStartingPointDto{
		StartingPointRequest: request,
		CompanyID:            payload.CompanyID,
	}

	result, err := p.InterfaceService.CreateStartingPointService(c.Request().Context(), data)
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// ListStartingPointsHandler godoc
// @Summary Listar pontos de partida.
// @Tags Pontos de partida
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Success 200 {array} StartingPointResponse
// @Router /starting-points [get]
// @Security ApiKeyAuth
func (p *Handler) ListStartingPointsHandler(c echo.Context) error {
	payload := get_token.GetPayloadToken(c)

	result, err := p.InterfaceService.ListStartingPointsService(c.Request().Context(), payload.CompanyID)
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// GetDefaultStartingPointHandler godoc
// @Summary Buscar ponto de partida padrão.
// @Tags Pontos de partida
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Success 200 {object} StartingPointResponse
// @Failure 404 {string} string "Nenhum ponto padrão"
// @Router /starting-points/default [get]
// @Security ApiKeyAuth
func (p *Handler) GetDefaultStartingPointHandler(c echo.Context) error {
	payload := get_token.GetPayloadToken(c)

	result, err := p.InterfaceService.GetDefaultStartingPointService(c.Request().Context(), payload.CompanyID)
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// SetDefaultStartingPointHandler godoc
// @Summary Definir ponto de partida padrão.
// @Tags Pontos de partida
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Param id path int true "ID do ponto"
// @Success 200 {object} StartingPointResponse
// @Failure 404 {string} string "Ponto não encontrado"
// @Router /starting-points/{id}/default [put]
// @Security ApiKeyAuth
func (p *Handler) SetDefaultStartingPointHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetPayloadToken(c)
	result, err := p.InterfaceService.SetDefaultStartingPointService(c.Request().Context(), id, payload.CompanyID)
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// DeleteStartingPointHandler godoc
// @Summary Remover ponto de partida.
// @Tags Pontos de partida
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Param id path int true "ID do ponto"
// @Success 200 {string} string "Ponto removido"
// @Failure 404 {string} string "Ponto não encontrado"
// @Failure 409 {string} string "Ponto padrão não pode ser removido"
// @Router /starting-points/{id} [delete]
// @Security ApiKeyAuth
func (p *Handler) DeleteStartingPointHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetPayloadToken(c)
	if err := p.InterfaceService.DeleteStartingPointService(c.Request().Context(), id, payload.CompanyID); err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, "Ponto removido")
}
