package truck

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

func NewTruckHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidPlate), errors.Is(err, ErrInvalidTruck):
		return http.StatusBadRequest
	case errors.Is(err, ErrTruckNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicatePlate), errors.Is(err, ErrTruckAllocated), errors.Is(err, ErrBelowLoad):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// CreateTruckHandler godoc
// @Summary Cadastrar caminhão.
// @Description Normaliza a placa, calcula o rodízio e cadastra o caminhão livre.
// @Tags Caminhões
// @Accept json
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Param request body TruckRequest true "Dados do caminhão"
// @Success 200 {object} TruckResponse
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 409 {string} string "Placa já cadastrada"
// @Router /trucks [post]
// @Security ApiKeyAuth
func (p *Handler) CreateTruckHandler(c echo.Context) error {
	var request TruckRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetPayloadToken(c)
	data := CreateTruckDto{
		TruckRequest: request,
		CompanyID:    payload.CompanyID,
	}

	result, err := p.InterfaceService.CreateTruckService(c.Request().Context(), data)
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// UpdateTruckHandler godoc
// @Summary Atualizar caminhão.
// @Tags Caminhões
// @Accept json
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Param id path int true "ID do caminhão"
// @Param request body TruckRequest true "Dados do caminhão"
// @Success 200 {object} TruckResponse
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Caminhão não encontrado"
// @Router /trucks/{id} [put]
// @Security ApiKeyAuth
func (p *Handler) UpdateTruckHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	var request TruckRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetPayloadToken(c)
	data := UpdateTruckDto{
		TruckRequest: request,
		ID:           id,
		CompanyID:    payload.CompanyID,
	}

	result, err := p.InterfaceService.UpdateTruckService(c.Request().Context(), data)
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// DeleteTruckHandler godoc
// @Summary Remover caminhão.
// @Description Caminhões alocados não podem ser removidos.
// @Tags Caminhões
// @Param X-Company-ID header string true "ID da empresa"
// @Param id path int true "ID do caminhão"
// @Success 200 {string} string "Caminhão removido"
// @Failure 404 {string} string "Caminhão não encontrado"
// @Failure 409 {string} string "Caminhão alocado"
// @Router /trucks/{id} [delete]
// @Security ApiKeyAuth
func (p *Handler) DeleteTruckHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetPayloadToken(c)
	if err := p.InterfaceService.DeleteTruckService(c.Request().Context(), id, payload.CompanyID); err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, "Caminhão removido")
}

// ListTrucksHandler godoc
// @Summary Listar caminhões.
// @Tags Caminhões
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Success 200 {array} TruckResponse
// @Router /trucks [get]
// @Security ApiKeyAuth
func (p *Handler) ListTrucksHandler(c echo.Context) error {
	payload := get_token.GetPayloadToken(c)

	result, err := p.InterfaceService.ListTrucksService(c.Request().Context(), payload.CompanyID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// GetTruckHandler godoc
// @Summary Obter caminhão.
// @Tags Caminhões
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Param id path int true "ID do caminhão"
// @Success 200 {object} TruckResponse
// @Failure 404 {string} string "Caminhão não encontrado"
// @Router /trucks/{id} [get]
// @Security ApiKeyAuth
func (p *Handler) GetTruckHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetPayloadToken(c)
	result, err := p.InterfaceService.GetTruckService(c.Request().Context(), id, payload.CompanyID)
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// CheckRodizioHandler godoc
// @Summary Consultar rodízio de uma placa.
// @Tags Caminhões
// @Produce json
// @Param plate path string true "Placa"
// @Success 200 {object} RodizioResponse
// @Router /trucks/rodizio/{plate} [get]
// @Security ApiKeyAuth
func (p *Handler) CheckRodizioHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, p.InterfaceService.CheckRodizioService(c.Param("plate")))
}
