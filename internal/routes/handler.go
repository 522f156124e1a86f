package routes

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

func NewRoutesHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRoute), errors.Is(err, ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrTruckNotFound),
		errors.Is(err, ErrStartingPointNotFound), errors.Is(err, ErrRouteNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrOrderNotPending), errors.Is(err, ErrTruckAllocated), errors.Is(err, ErrNoTruckAvailable),
		errors.Is(err, ErrCapacityExceeded), errors.Is(err, ErrRouteCompleted):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// SuggestTruckHandler godoc
// @Summary Sugerir caminhão para os pedidos.
// @Description Escolhe o menor caminhão livre que comporta o volume total e retorna os avisos (rodízio, capacidade, peso).
// @Tags Rotas
// @Accept json
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Param request body SuggestTruckRequest true "Pedidos e caminhão opcional"
// @Success 200 {object} SuggestionResponse
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Pedido ou caminhão não encontrado"
// @Router /routes/suggest [post]
// @Security ApiKeyAuth
func (h *Handler) SuggestTruckHandler(c echo.Context) error {
	var request SuggestTruckRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetPayloadToken(c)
	result, err := h.InterfaceService.SuggestTruckService(c.Request().Context(), SuggestTruckDto{
		Request:   request,
		CompanyID: payload.CompanyID,
	})
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// ConfirmRouteHandler godoc
// @Summary Confirmar rota.
// @Description Otimiza a ordem das entregas, cria a rota em andamento e aloca pedidos e caminhão.
// @Tags Rotas
// @Accept json
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Param request body ConfirmRouteRequest true "Pedidos, caminhão e ponto de partida"
// @Success 200 {object} RouteResponse
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 409 {string} string "Capacidade excedida ou pedido não pendente"
// @Router /routes/confirm [post]
// @Security ApiKeyAuth
func (h *Handler) ConfirmRouteHandler(c echo.Context) error {
	var request ConfirmRouteRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetPayloadToken(c)
	result, err := h.InterfaceService.ConfirmRouteService(c.Request().Context(), ConfirmRouteDto{
		Request:   request,
		CompanyID: payload.CompanyID,
		UserID:    payload.UserID,
	})
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// CompleteRouteHandler godoc
// @Summary Concluir rota.
// @Description Marca a rota como concluída, os pedidos como entregues e libera o caminhão.
// @Tags Rotas
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Param id path int true "ID da rota"
// @Success 200 {object} RouteResponse
// @Failure 404 {string} string "Rota não encontrada"
// @Failure 409 {string} string "Rota já concluída"
// @Router /routes/{id}/complete [put]
// @Security ApiKeyAuth
func (h *Handler) CompleteRouteHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetPayloadToken(c)
	result, err := h.InterfaceService.CompleteRouteService(c.Request().Context(), id, payload.CompanyID, payload.UserID)
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// ListRoutesHandler godoc
// @Summary Listar rotas.
// @Tags Rotas
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Param status query string false "planned, in_progress ou completed"
// @Success 200 {array} RouteResponse
// @Router /routes [get]
// @Security ApiKeyAuth
func (h *Handler) ListRoutesHandler(c echo.Context) error {
	payload := get_token.GetPayloadToken(c)

	result, err := h.InterfaceService.ListRoutesService(c.Request().Context(), payload.CompanyID, c.QueryParam("status"))
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// GetRouteHandler godoc
// @Summary Buscar rota com as paradas.
// @Tags Rotas
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Param id path int true "ID da rota"
// @Success 200 {object} RouteResponse
// @Failure 404 {string} string "Rota não encontrada"
// @Router /routes/{id} [get]
// @Security ApiKeyAuth
func (h *Handler) GetRouteHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetPayloadToken(c)
	result, err := h.InterfaceService.GetRouteService(c.Request().Context(), id, payload.CompanyID)
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
