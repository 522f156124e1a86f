package middleware

import (
	"context"
	"net/http"
	"strings"

	"logiflow/infra/token"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

const HeaderCompanyID = "X-Company-ID"

// CompanyAccess resolves a user's role inside a company. An empty role means no membership.
type CompanyAccess interface {
	GetUserRoleInCompanyService(ctx context.Context, userID, companyID uuid.UUID) (string, error)
}

type Middleware struct {
	maker  token.Maker
	access CompanyAccess
}

func NewMiddleware(maker token.Maker, access CompanyAccess) *Middleware {
	return &Middleware{maker: maker, access: access}
}

func (m *Middleware) CheckAuthorization(handlerFunc echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		bearerToken := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenStr := strings.TrimSpace(strings.Replace(bearerToken, "Bearer ", "", 1))
		if tokenStr == "" {
			// browsers cannot set headers on websocket upgrades
			tokenStr = c.QueryParam("token")
		}
		if tokenStr == "" {
			return c.JSON(http.StatusUnauthorized, "missing authorization token")
		}

		tokenPayload, err := m.maker.VerifyToken(tokenStr)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, err.Error())
		}

		c.Set("token_id", tokenPayload.ID)
		c.Set("token_user_id", tokenPayload.UserID)
		c.Set("token_user_name", tokenPayload.UserName)
		c.Set("token_user_email", tokenPayload.UserEmail)
		c.Set("token_expiry_at", tokenPayload.ExpiredAt)

		return handlerFunc(c)
	}
}

// RequireCompany must run after CheckAuthorization. It reads the tenant from the
// X-Company-ID header (or company_id query param) and rejects non-members.
func (m *Middleware) RequireCompany(handlerFunc echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(HeaderCompanyID)
		if raw == "" {
			raw = c.QueryParam("company_id")
		}
		companyID, err := uuid.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, "invalid or missing company id")
		}

		userID, _ := c.Get("token_user_id").(uuid.UUID)
		role, err := m.access.GetUserRoleInCompanyService(c.Request().Context(), userID, companyID)
		if err != nil {
			log.WithError(err).WithField("company_id", companyID).Error("falha ao verificar acesso à empresa")
			return c.JSON(http.StatusInternalServerError, err.Error())
		}
		if role == "" {
			return c.JSON(http.StatusForbidden, "access to company denied")
		}

		c.Set("token_company_id", companyID)
		c.Set("token_company_role", role)

		return handlerFunc(c)
	}
}

// RequireRole must run after RequireCompany.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(handlerFunc echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("token_company_role").(string)
			for _, r := range roles {
				if r == role {
					return handlerFunc(c)
				}
			}
			return c.JSON(http.StatusForbidden, "insufficient role")
		}
	}
}
