package login

import (
	"time"

	db "logiflow/db/sqlc"
	"logiflow/validation"

	"github.com/google/uuid"
)

const tokenDuration = 24 * time.Hour

type RequestLogin struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RequestCreateUser struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone"`
}

func (p *RequestCreateUser) ParseCreateToUser(hashedPassword string) db.CreateUserParams {
	return db.CreateUserParams{
		ID:       uuid.New(),
		Name:     p.Name,
		Email:    p.Email,
		Phone:    validation.NullString(p.Phone),
		Password: hashedPassword,
	}
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *UserResponse) ParseFromUserObject(result db.User) {
	p.ID = result.ID
	p.Name = result.Name
	p.Email = result.Email
	p.Phone = validation.GetStringFromNull(result.Phone)
	p.CreatedAt = result.CreatedAt
}

type CompanyResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

type ResponseLogin struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	User      UserResponse      `json:"user"`
	Companies []CompanyResponse `json:"companies"`
}

type RequestResetPassword struct {
	Email string `json:"email" validate:"required"`
}

type RequestConfirmResetPassword struct {
	Token    string `json:"token"    validate:"required"`
	Password string `json:"password" validate:"required"`
}
