package dashboard

import (
	"net/http"

	"logiflow/internal/get_token"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewDashboardHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// GetDashboardHandler godoc
// @Summary Obter Dashboard.
// @Description Recupera os indicadores da frota, pedidos e rotas da empresa selecionada.
// @Tags Dashboard
// @Produce json
// @Param X-Company-ID header string true "ID da empresa"
// @Success 200 {object} Response "Informações do Dashboard"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /dashboard [get]
// @Security ApiKeyAuth
func (p *Handler) GetDashboardHandler(c echo.Context) error {
	payload := get_token.GetPayloadToken(c)

	result, err := p.InterfaceService.GetDashboardService(c.Request().Context(), payload.CompanyID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
