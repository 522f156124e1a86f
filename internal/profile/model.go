package profile

import (
	"strings"
	"time"

	db "logiflow/db/sqlc"
	"logiflow/validation"

	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone"`
}

type UpdateProfileDto struct {
	UpdateProfileRequest UpdateProfileRequest
	UserID               uuid.UUID
}

func (p *UpdateProfileDto) ParseUpdateToUser() db.UpdateUserParams {
	return db.UpdateUserParams{
		ID:    p.UserID,
		Name:  strings.TrimSpace(p.UpdateProfileRequest.Name),
		Email: strings.TrimSpace(p.UpdateProfileRequest.Email),
		Phone: validation.NullString(strings.TrimSpace(p.UpdateProfileRequest.Phone)),
	}
}

type ProfileResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (p *ProfileResponse) ParseFromUserObject(result db.User) {
	p.ID = result.ID
	p.Name = result.Name
	p.Email = result.Email
	p.Phone = validation.GetStringFromNull(result.Phone)
	p.CreatedAt = result.CreatedAt
	if result.UpdatedAt.Valid {
		p.UpdatedAt = &result.UpdatedAt.Time
	}
}
