package company

import (
	"errors"
	"net/http"

	"logiflow/internal/get_token"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewCompanyHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrCompanyNameMissing), errors.Is(err, ErrInvalidRole):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotCompanyAdmin):
		return http.StatusForbidden
	case errors.Is(err, ErrCompanyNotFound), errors.Is(err, ErrMemberNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyMember):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// CreateCompanyHandler godoc
// @Summary Criar empresa.
// @Description Cria uma empresa e torna o usuário autenticado administrador dela.
// @Tags Empresa
// @Accept json
// @Produce json
// @Param request body CreateCompanyRequest true "Dados da empresa"
// @Success 200 {object} CompanyResponse
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /companies [post]
// @Security ApiKeyAuth
func (p *Handler) CreateCompanyHandler(c echo.Context) error {
	var request CreateCompanyRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetPayloadToken(c)
	data := CreateCompanyDto{
		CreateCompanyRequest: request,
		UserID:               payload.UserID,
	}

	result, err := p.InterfaceService.CreateCompanyService(c.Request().Context(), data)
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// GetUserCompaniesHandler godoc
// @Summary Listar empresas do usuário.
// @Tags Empresa
// @Produce json
// @Success 200 {array} CompanyResponse
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /companies [get]
// @Security ApiKeyAuth
func (p *Handler) GetUserCompaniesHandler(c echo.Context) error {
	payload := get_token.GetPayloadToken(c)

	result, err := p.InterfaceService.GetUserCompaniesService(c.Request().Context(), payload.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// memberCompanyID parses :id and checks the caller belongs to it.
func (p *Handler) memberCompanyID(c echo.Context) (uuid.UUID, error) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, c.JSON(http.StatusBadRequest, "id de empresa inválido")
	}

	payload := get_token.GetPayloadToken(c)
	if !p.InterfaceService.HasAccessToCompanyService(c.Request().Context(), payload.UserID, companyID) {
		return uuid.Nil, c.JSON(http.StatusForbidden, "acesso negado à empresa")
	}
	return companyID, nil
}

// GetCompanyHandler godoc
// @Summary Obter empresa.
// @Tags Empresa
// @Produce json
// @Param id path string true "ID da empresa"
// @Success 200 {object} CompanyResponse
// @Failure 403 {string} string "Acesso negado"
// @Failure 404 {string} string "Empresa não encontrada"
// @Router /companies/{id} [get]
// @Security ApiKeyAuth
func (p *Handler) GetCompanyHandler(c echo.Context) error {
	companyID, err := p.memberCompanyID(c)
	if companyID == uuid.Nil {
		return err
	}

	result, err := p.InterfaceService.GetCompanyService(c.Request().Context(), companyID)
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// GetCompanyUsersHandler godoc
// @Summary Listar usuários da empresa.
// @Tags Empresa
// @Produce json
// @Param id path string true "ID da empresa"
// @Success 200 {array} CompanyUserResponse
// @Failure 403 {string} string "Acesso negado"
// @Router /companies/{id}/users [get]
// @Security ApiKeyAuth
func (p *Handler) GetCompanyUsersHandler(c echo.Context) error {
	companyID, err := p.memberCompanyID(c)
	if companyID == uuid.Nil {
		return err
	}

	result, err := p.InterfaceService.GetCompanyUsersService(c.Request().Context(), companyID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// AddUserToCompanyHandler godoc
// @Summary Adicionar usuário à empresa.
// @Description Apenas administradores. O papel padrão é "user".
// @Tags Empresa
// @Accept json
// @Produce json
// @Param id path string true "ID da empresa"
// @Param request body MemberRequest true "Usuário e papel"
// @Success 200 {object} MembershipResponse
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 403 {string} string "Apenas administradores"
// @Failure 409 {string} string "Usuário já é membro"
// @Router /companies/{id}/users [post]
// @Security ApiKeyAuth
func (p *Handler) AddUserToCompanyHandler(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "id de empresa inválido")
	}

	var request MemberRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetPayloadToken(c)
	data := MemberDto{
		MemberRequest: request,
		CompanyID:     companyID,
		ActorID:       payload.UserID,
	}

	result, err := p.InterfaceService.AddUserToCompanyService(c.Request().Context(), data)
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// UpdateUserRoleHandler godoc
// @Summary Alterar papel de um usuário na empresa.
// @Tags Empresa
// @Accept json
// @Produce json
// @Param id path string true "ID da empresa"
// @Param user_id path string true "ID do usuário"
// @Param request body MemberRequest true "Novo papel"
// @Success 200 {object} MembershipResponse
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 403 {string} string "Apenas administradores"
// @Failure 404 {string} string "Usuário não é membro"
// @Router /companies/{id}/users/{user_id} [put]
// @Security ApiKeyAuth
func (p *Handler) UpdateUserRoleHandler(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "id de empresa inválido")
	}
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "id de usuário inválido")
	}

	var request MemberRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	request.UserID = userID

	payload := get_token.GetPayloadToken(c)
	data := MemberDto{
		MemberRequest: request,
		CompanyID:     companyID,
		ActorID:       payload.UserID,
	}

	result, err := p.InterfaceService.UpdateUserRoleInCompanyService(c.Request().Context(), data)
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// RemoveUserFromCompanyHandler godoc
// @Summary Remover usuário da empresa.
// @Tags Empresa
// @Param id path string true "ID da empresa"
// @Param user_id path string true "ID do usuário"
// @Success 200 {string} string "Usuário removido"
// @Failure 403 {string} string "Apenas administradores"
// @Failure 404 {string} string "Usuário não é membro"
// @Router /companies/{id}/users/{user_id} [delete]
// @Security ApiKeyAuth
func (p *Handler) RemoveUserFromCompanyHandler(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "id de empresa inválido")
	}
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "id de usuário inválido")
	}

	payload := get_token.GetPayloadToken(c)
	err = p.InterfaceService.RemoveUserFromCompanyService(c.Request().Context(), payload.UserID, companyID, userID)
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, "Usuário removido")
}
