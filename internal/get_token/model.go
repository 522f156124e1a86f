package get_token

import (
	"time"

	"github.com/google/uuid"
)

type PayloadDTO struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
	ExpiryAt    time.Time `json:"expiry_at"`
	CompanyID   uuid.UUID `json:"company_id"`
	CompanyRole string    `json:"company_role"`
}
