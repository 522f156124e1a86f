package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrCompanyAccessDenied = errors.New("user has no access to this company")
	ErrNoCompanySelected   = errors.New("no company selected")
)

type CompanyAccess interface {
	HasAccessToCompanyService(ctx context.Context, userID, companyID uuid.UUID) bool
}

// SyncRunner keeps one background sync loop per user, bound to the selected company.
type SyncRunner interface {
	Start(userID, companyID string)
	Stop(userID string)
}

type InterfaceService interface {
	SelectCompanyService(ctx context.Context, data SelectCompanyDto) (SessionResponse, error)
	GetSelectedCompanyService(ctx context.Context, userID uuid.UUID) (SessionResponse, error)
	ClearSelectionService(ctx context.Context, userID uuid.UUID) error
}

type Service struct {
	InterfaceService InterfaceRepository
	access           CompanyAccess
	sync             SyncRunner
}

func NewSessionService(InterfaceService InterfaceRepository, access CompanyAccess, sync SyncRunner) *Service {
	return &Service{
		InterfaceService: InterfaceService,
		access:           access,
		sync:             sync,
	}
}

// SelectCompanyService stores the selection and restarts sync for the new company.
func (p *Service) SelectCompanyService(ctx context.Context, data SelectCompanyDto) (SessionResponse, error) {
	companyID := data.SelectCompanyRequest.CompanyID
	if !p.access.HasAccessToCompanyService(ctx, data.UserID, companyID) {
		return SessionResponse{}, ErrCompanyAccessDenied
	}

	if err := p.InterfaceService.SaveSessionData(selectedCompanyKeyFor(data.UserID), companyID.String()); err != nil {
		return SessionResponse{}, fmt.Errorf("save selected company: %w", err)
	}

	if p.sync != nil {
		p.sync.Start(data.UserID.String(), companyID.String())
	}

	log.WithFields(log.Fields{"user_id": data.UserID, "company_id": companyID}).Info("empresa selecionada")

	return SessionResponse{UserID: data.UserID, SelectedCompanyID: companyID}, nil
}

func (p *Service) GetSelectedCompanyService(ctx context.Context, userID uuid.UUID) (SessionResponse, error) {
	value, err := p.InterfaceService.GetSessionData(selectedCompanyKeyFor(userID))
	if err != nil {
		return SessionResponse{}, err
	}
	if value == "" {
		return SessionResponse{}, ErrNoCompanySelected
	}

	companyID, err := uuid.Parse(value)
	if err != nil {
		return SessionResponse{}, ErrNoCompanySelected
	}
	return SessionResponse{UserID: userID, SelectedCompanyID: companyID}, nil
}

// ClearSelectionService forgets the selection and stops the user's sync loop.
func (p *Service) ClearSelectionService(ctx context.Context, userID uuid.UUID) error {
	if p.sync != nil {
		p.sync.Stop(userID.String())
	}
	return p.InterfaceService.DeleteSessionData(selectedCompanyKeyFor(userID))
}
