package records

import (
	"errors"
	"net/http"

	"logiflow/internal/data_sync"
	"logiflow/internal/get_token"
	"logiflow/validation"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewRecordsHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

func ownerFromContext(c echo.Context) Owner {
	payload := get_token.GetPayloadToken(c)
	return Owner{
		UserID:    payload.UserID.String(),
		CompanyID: payload.CompanyID.String(),
	}
}

// SaveActionHandler godoc
// @Summary Registrar ação do usuário.
// @Description Grava a ação no armazenamento local; ela é enviada na próxima sincronização.
// @Tags Registros
// @Accept json
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Param request body SaveActionRequest true "Ação"
// @Success 200 {object} localstore.UserAction
// @Failure 400 {string} string "Requisição Inválida"
// @Router /records/actions [post]
// @Security ApiKeyAuth
func (h *Handler) SaveActionHandler(c echo.Context) error {
	var request SaveActionRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.SaveActionService(c.Request().Context(), ownerFromContext(c), request.ActionType, request.Details)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// GetActionsHandler godoc
// @Summary Listar ações do usuário.
// @Tags Registros
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Success 200 {array} localstore.UserAction
// @Router /records/actions [get]
// @Security ApiKeyAuth
func (h *Handler) GetActionsHandler(c echo.Context) error {
	result, err := h.InterfaceService.GetActionsService(c.Request().Context(), ownerFromContext(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// SaveFormHandler godoc
// @Summary Salvar formulário.
// @Description O status padrão é "draft".
// @Tags Registros
// @Accept json
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Param request body SaveFormRequest true "Formulário"
// @Success 200 {object} localstore.Form
// @Failure 400 {string} string "Requisição Inválida"
// @Router /records/forms [post]
// @Security ApiKeyAuth
func (h *Handler) SaveFormHandler(c echo.Context) error {
	var request SaveFormRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.SaveFormService(c.Request().Context(), ownerFromContext(c), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// GetFormsHandler godoc
// @Summary Listar formulários.
// @Tags Registros
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Success 200 {array} localstore.Form
// @Router /records/forms [get]
// @Security ApiKeyAuth
func (h *Handler) GetFormsHandler(c echo.Context) error {
	result, err := h.InterfaceService.GetFormsService(c.Request().Context(), ownerFromContext(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// SaveOrderHandler godoc
// @Summary Salvar pedido local.
// @Tags Registros
// @Accept json
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Param request body SaveOrderRequest true "Pedido"
// @Success 200 {object} localstore.Order
// @Failure 400 {string} string "Requisição Inválida"
// @Router /records/orders [post]
// @Security ApiKeyAuth
func (h *Handler) SaveOrderHandler(c echo.Context) error {
	var request SaveOrderRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.SaveOrderService(c.Request().Context(), ownerFromContext(c), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// GetOrdersHandler godoc
// @Summary Listar pedidos locais.
// @Tags Registros
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Success 200 {array} localstore.Order
// @Router /records/orders [get]
// @Security ApiKeyAuth
func (h *Handler) GetOrdersHandler(c echo.Context) error {
	result, err := h.InterfaceService.GetOrdersService(c.Request().Context(), ownerFromContext(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// GetHistoryHandler godoc
// @Summary Histórico de eventos.
// @Tags Registros
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Success 200 {array} localstore.HistoryEvent
// @Router /records/history [get]
// @Security ApiKeyAuth
func (h *Handler) GetHistoryHandler(c echo.Context) error {
	result, err := h.InterfaceService.GetHistoryService(c.Request().Context(), ownerFromContext(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// GetTrackingHandler godoc
// @Summary Rastreamento da empresa.
// @Tags Registros
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Success 200 {array} localstore.TrackingInfo
// @Router /records/tracking [get]
// @Security ApiKeyAuth
func (h *Handler) GetTrackingHandler(c echo.Context) error {
	result, err := h.InterfaceService.GetTrackingService(c.Request().Context(), ownerFromContext(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// ForceSyncHandler godoc
// @Summary Forçar sincronização.
// @Description Executa uma passada de sincronização agora para o usuário e a empresa informada.
// @Tags Sync
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Success 200 {object} data_sync.PassReport
// @Failure 409 {string} string "Sincronização em andamento"
// @Router /sync/force [post]
// @Security ApiKeyAuth
func (h *Handler) ForceSyncHandler(c echo.Context) error {
	result, err := h.InterfaceService.ForceSyncService(c.Request().Context(), ownerFromContext(c))
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// SyncStatusHandler godoc
// @Summary Status da sincronização.
// @Description Mostra apenas o loop do próprio usuário na empresa informada.
// @Tags Sync
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Success 200 {object} data_sync.StatusResponse
// @Router /sync/status [get]
// @Security ApiKeyAuth
func (h *Handler) SyncStatusHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, h.InterfaceService.SyncStatusService(ownerFromContext(c)))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRecord):
		return http.StatusBadRequest
	case errors.Is(err, data_sync.ErrSyncInProgress):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
