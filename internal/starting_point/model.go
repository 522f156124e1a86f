package starting_point

import (
	"time"

	db "logiflow/db/sqlc"

	"github.com/google/uuid"
)

type StartingPointRequest struct {
	Name    string `json:"name"    validate:"required"`
	Address string `json:"address" validate:"required"`
}

type CreateStartingPointDto struct {
	StartingPointRequest StartingPointRequest
	CompanyID            uuid.UUID
}

func (p *CreateStartingPointDto) ParseCreateToStartingPoint(isDefault bool) db.CreateStartingPointParams {
	return db.CreateStartingPointParams{
		CompanyID: p.CompanyID,
		Name:      p.StartingPointRequest.Name,
		Address:   p.StartingPointRequest.Address,
		IsDefault: isDefault,
	}
}

type StartingPointResponse struct {
	ID        int64     `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *StartingPointResponse) ParseFromStartingPointObject(result db.StartingPoint) {
	p.ID = result.ID
	p.CompanyID = result.CompanyID
	p.Name = result.Name
	p.Address = result.Address
	p.IsDefault = result.IsDefault
	p.CreatedAt = result.CreatedAt
}
