package session

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

func NewSessionHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// SelectCompanyHandler godoc
// @Summary Selecionar empresa ativa.
// @Description Define a empresa de trabalho do usuário e reinicia a sincronização.
// @Tags Sessão
// @Accept json
// @Produce json
// @Param request body SelectCompanyRequest true "Empresa"
// @Success 200 {object} SessionResponse
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 403 {string} string "Acesso negado"
// @Router /session/company [post]
// @Security ApiKeyAuth
func (h *Handler) SelectCompanyHandler(c echo.Context) error {
	var request SelectCompanyRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetPayloadToken(c)
	data := SelectCompanyDto{
		SelectCompanyRequest: request,
		UserID:               payload.UserID,
	}

	result, err := h.InterfaceService.SelectCompanyService(c.Request().Context(), data)
	if errors.Is(err, ErrCompanyAccessDenied) {
		return c.JSON(http.StatusForbidden, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// GetSelectedCompanyHandler godoc
// @Summary Empresa ativa.
// @Tags Sessão
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 404 {string} string "Nenhuma empresa selecionada"
// @Router /session/company [get]
// @Security ApiKeyAuth
func (h *Handler) GetSelectedCompanyHandler(c echo.Context) error {
	payload := get_token.GetPayloadToken(c)

	result, err := h.InterfaceService.GetSelectedCompanyService(c.Request().Context(), payload.UserID)
	if errors.Is(err, ErrNoCompanySelected) {
		return c.JSON(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// ClearSelectionHandler godoc
// @Summary Limpar empresa ativa.
// @Tags Sessão
// @Success 200 {string} string "Seleção removida"
// @Router /session/company [delete]
// @Security ApiKeyAuth
func (h *Handler) ClearSelectionHandler(c echo.Context) error {
	payload := get_token.GetPayloadToken(c)

	if err := h.InterfaceService.ClearSelectionService(c.Request().Context(), payload.UserID); err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, "Seleção removida")
}
