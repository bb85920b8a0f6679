package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/def_finance/internal/apperrors"
	"github.com/SscSPs/def_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/def_finance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/def_finance/internal/core/ports/services"
	"github.com/SscSPs/def_finance/internal/dto"
	"github.com/google/uuid"
)

type registryService struct {
	BaseService
	repo portsrepo.RegistryRepositoryFacade
}

// NewRegistryService creates the counterparty and unit registry service.
func NewRegistryService(repo portsrepo.RegistryRepositoryFacade, opts ...ClockOption) portssvc.RegistrySvcFacade {
	svc := &registryService{BaseService: newBaseService(), repo: repo}
	for _, opt := range opts {
		opt(&svc.BaseService)
	}
	return svc
}

var _ portssvc.RegistrySvcFacade = (*registryService)(nil)

func (s *registryService) audit(userID string) domain.AuditFields {
	now := s.Now()
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}

func cleanName(name string) (string, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return "", fmt.Errorf("%w: name must not be blank", apperrors.ErrValidation)
	}
	return name, nil
}

func (s *registryService) CreateCounterparty(ctx context.Context, req dto.CreateCounterpartyRequest, creatorUserID string) (*domain.Counterparty, error) {
	name, err := cleanName(req.Name)
	if err != nil {
		return nil, err
	}
	if !req.Kind.IsValid() {
		return nil, fmt.Errorf("%w: invalid counterparty kind %q", apperrors.ErrValidation, req.Kind)
	}

	c := domain.Counterparty{
		ID:          uuid.NewString(),
		Kind:        req.Kind,
		Name:        name,
		AuditFields: s.audit(creatorUserID),
	}
	if err := s.repo.SaveCounterparty(ctx, c); err != nil {
		s.LogError(ctx, err, "Failed to save counterparty", slog.String("name", name))
		return nil, fmt.Errorf("failed to create counterparty: %w", err)
	}

	s.LogInfo(ctx, "Counterparty created", slog.String("id", c.ID), slog.String("kind", string(c.Kind)))
	return &c, nil
}

func (s *registryService) ListCounterparties(ctx context.Context, kind *domain.CounterpartyKind) ([]domain.Counterparty, error) {
	list, err := s.repo.ListCounterparties(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list counterparties: %w", err)
	}
	if list == nil {
		return []domain.Counterparty{}, nil
	}
	return list, nil
}

func (s *registryService) CreateUnit(ctx context.Context, req dto.CreateUnitRequest, creatorUserID string) (*domain.Unit, error) {
	name, err := cleanName(req.Name)
	if err != nil {
		return nil, err
	}
	if domain.IsAllUnits(name) {
		return nil, fmt.Errorf("%w: %q is reserved", apperrors.ErrValidation, name)
	}

	u := domain.Unit{
		ID:          uuid.NewString(),
		Name:        name,
		AuditFields: s.audit(creatorUserID),
	}
	if err := s.repo.SaveUnit(ctx, u); err != nil {
		s.LogError(ctx, err, "Failed to save unit", slog.String("name", name))
		return nil, fmt.Errorf("failed to create unit: %w", err)
	}

	s.LogInfo(ctx, "Unit created", slog.String("id", u.ID), slog.String("name", name))
	return &u, nil
}

func (s *registryService) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	list, err := s.repo.ListUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	if list == nil {
		return []domain.Unit{}, nil
	}
	return list, nil
}
