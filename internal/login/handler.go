package login

import (
	"errors"
	"net/http"

	"logiflow/internal/get_token"
	"logiflow/validation"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrWeakPassword), errors.Is(err, ErrInvalidResetToken):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserAlreadyExists):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// Login godoc
// @Summary Autenticar usuário.
// @Description Autentica por email e senha e retorna o token e as empresas do usuário.
// @Tags Usuários
// @Accept json
// @Produce json
// @Param request body RequestLogin true "Credenciais"
// @Success 200 {object} ResponseLogin
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 401 {string} string "Credenciais inválidas"
// @Router /auth/login [post]
func (h *Handler) Login(e echo.Context) error {
	var request RequestLogin
	if err := e.Bind(&request); err != nil {
		return e.JSON(http.StatusBadRequest, err.Error())
	}
	if err := validation.Validate(request); err != nil {
		return e.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Login(e.Request().Context(), request)
	if err != nil {
		return e.JSON(errorStatus(err), err.Error())
	}

	return e.JSON(http.StatusOK, result)
}

// CreateUser godoc
// @Summary Cadastrar usuário.
// @Tags Usuários
// @Accept json
// @Produce json
// @Param request body RequestCreateUser true "Dados do usuário"
// @Success 200 {object} ResponseLogin
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 409 {string} string "Usuário já existe"
// @Router /auth/register [post]
func (h *Handler) CreateUser(e echo.Context) error {
	var request RequestCreateUser
	if err := e.Bind(&request); err != nil {
		return e.JSON(http.StatusBadRequest, err.Error())
	}
	if err := validation.Validate(request); err != nil {
		return e.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.CreateUser(e.Request().Context(), request)
	if err != nil {
		return e.JSON(errorStatus(err), err.Error())
	}

	return e.JSON(http.StatusOK, result)
}

// Logout godoc
// @Summary Encerrar sessão.
// @Description Limpa a empresa selecionada e para a sincronização.
// @Tags Usuários
// @Success 200 {string} string "Sessão encerrada"
// @Router /auth/logout [post]
// @Security ApiKeyAuth
func (h *Handler) Logout(e echo.Context) error {
	payload := get_token.GetPayloadToken(e)

	if err := h.service.Logout(e.Request().Context(), payload.UserID); err != nil {
		return e.JSON(http.StatusInternalServerError, err.Error())
	}

	return e.JSON(http.StatusOK, "Sessão encerrada")
}

// ResetPassword godoc
// @Summary Solicitar redefinição de senha.
// @Description Sempre responde 200 para não revelar quais emails estão cadastrados.
// @Tags Usuários
// @Accept json
// @Param request body RequestResetPassword true "Email"
// @Success 200 {string} string "Se o email existir, um link foi enviado"
// @Router /auth/reset-password [post]
func (h *Handler) ResetPassword(e echo.Context) error {
	var request RequestResetPassword
	if err := e.Bind(&request); err != nil {
		return e.JSON(http.StatusBadRequest, err.Error())
	}

	if err := h.service.ResetPassword(e.Request().Context(), request); err != nil {
		return e.JSON(http.StatusInternalServerError, err.Error())
	}

	return e.JSON(http.StatusOK, "Se o email existir, um link foi enviado")
}

// ConfirmResetPassword godoc
// @Summary Confirmar redefinição de senha.
// @Tags Usuários
// @Accept json
// @Param request body RequestConfirmResetPassword true "Token e nova senha"
// @Success 200 {string} string "Senha alterada"
// @Failure 400 {string} string "Token inválido"
// @Router /auth/reset-password/confirm [post]
func (h *Handler) ConfirmResetPassword(e echo.Context) error {
	var request RequestConfirmResetPassword
	if err := e.Bind(&request); err != nil {
		return e.JSON(http.StatusBadRequest, err.Error())
	}
	if err := validation.Validate(request); err != nil {
		return e.JSON(http.StatusBadRequest, err.Error())
	}

	if err := h.service.ConfirmResetPassword(e.Request().Context(), request); err != nil {
		return e.JSON(errorStatus(err), err.Error())
	}

	return e.JSON(http.StatusOK, "Senha alterada")
}
