package order

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

func NewOrderHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidOrder), errors.Is(err, ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrOrderNotPending):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// CreateOrderHandler godoc
// @Summary Cadastrar pedido de entrega.
// @Description Cria o pedido como pendente e registra a ação do usuário no armazenamento local.
// @Tags Pedidos
// @Accept json
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Param request body OrderRequest true "Endereço e volume"
// @Success 200 {object} OrderResponse
// @Failure 400 {string} string "Requisição Inválida"
// @Router /orders [post]
// @Security ApiKeyAuth
func (p *Handler) CreateOrderHandler(c echo.Context) error {
	var request OrderRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetPayloadToken(c)
	data := CreateOrderDto{
		OrderRequest: request,
		CompanyID:    payload.CompanyID,
		UserID:       payload.UserID,
	}

	result, err := p.InterfaceService.CreateOrderService(c.Request().Context(), data)
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// ListOrdersHandler godoc
// @Summary Listar pedidos.
// @Tags Pedidos
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Param status query string false "pending, allocated ou delivered"
// @Success 200 {array} OrderResponse
// @Failure 400 {string} string "Status inválido"
// @Router /orders [get]
// @Security ApiKeyAuth
func (p *Handler) ListOrdersHandler(c echo.Context) error {
	payload := get_token.GetPayloadToken(c)

	result, err := p.InterfaceService.ListOrdersService(c.Request().Context(), payload.CompanyID, c.QueryParam("status"))
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// GetOrderHandler godoc
// @Summary Buscar pedido.
// @Tags Pedidos
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Param id path int true "ID do pedido"
// @Success 200 {object} OrderResponse
// @Failure 404 {string} string "Pedido não encontrado"
// @Router /orders/{id} [get]
// @Security ApiKeyAuth
func (p *Handler) GetOrderHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetPayloadToken(c)
	result, err := p.InterfaceService.GetOrderService(c.Request().Context(), id, payload.CompanyID)
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// DeleteOrderHandler godoc
// @Summary Remover pedido.
// @Description Apenas pedidos pendentes podem ser removidos.
// @Tags Pedidos
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Param id path int true "ID do pedido"
// @Success 200 {string} string "Pedido removido"
// @Failure 404 {string} string "Pedido não encontrado"
// @Failure 409 {string} string "Pedido não está pendente"
// @Router /orders/{id} [delete]
// @Security ApiKeyAuth
func (p *Handler) DeleteOrderHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetPayloadToken(c)
	if err := p.InterfaceService.DeleteOrderService(c.Request().Context(), id, payload.CompanyID); err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, "Pedido removido")
}
