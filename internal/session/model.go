package session

import "github.com/google/uuid"

const selectedCompanyKey = "selectedCompanyId"

func selectedCompanyKeyFor(userID uuid.UUID) string {
	return selectedCompanyKey + "/" + userID.String()
}

type SelectCompanyRequest struct {
	CompanyID uuid.UUID `json:"company_id" validate:"required"`
}

type SelectCompanyDto struct {
	SelectCompanyRequest SelectCompanyRequest
	UserID               uuid.UUID
}

type SessionResponse struct {
	UserID            uuid.UUID `json:"user_id"`
	SelectedCompanyID uuid.UUID `json:"selected_company_id"`
}
