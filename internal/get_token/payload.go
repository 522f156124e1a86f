package get_token

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func GetPayloadToken(c echo.Context) PayloadDTO {
	strID, _ := c.Get("token_id").(uuid.UUID)
	strUserID, _ := c.Get("token_user_id").(uuid.UUID)
	strUserName, _ := c.Get("token_user_name").(string)
	strUserEmail, _ := c.Get("token_user_email").(string)
	strExpiryAt, _ := c.Get("token_expiry_at").(time.Time)
	strCompanyID, _ := c.Get("token_company_id").(uuid.UUID)
	strCompanyRole, _ := c.Get("token_company_role").(string)

	return PayloadDTO{
		ID:          strID,
		UserID:      strUserID,
		UserName:    strUserName,
		UserEmail:   strUserEmail,
		ExpiryAt:    strExpiryAt,
		CompanyID:   strCompanyID,
		CompanyRole: strCompanyRole,
	}
}
