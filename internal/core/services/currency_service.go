package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/budget_calendar_app/internal/apperrors"
	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_calendar_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/budget_calendar_app/internal/dto"
	"github.com/shopspring/decimal"
)

type CurrencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	// Basic validation already handled by DTO binding (required, len=3, uppercase)
	now := time.Now().UTC()

	currency := domain.Currency{
		CurrencyCode: req.CurrencyCode,
		Symbol:       req.Symbol,
		Name:         req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to save currency", slog.String("currency_code", req.CurrencyCode))
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	return &currency, nil
}

func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// resolveMoney builds a MoneyValue in a registered currency.
// An unknown currency code is a validation failure, not a not-found.
func resolveMoney(ctx context.Context, currencyRepo portsrepo.CurrencyReader, currencyCode string, amount decimal.Decimal) (domain.MoneyValue, error) {
	currency, err := currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.MoneyValue{}, fmt.Errorf("%w: unsupported currency %s", apperrors.ErrValidation, currencyCode)
		}
		return domain.MoneyValue{}, fmt.Errorf("failed to look up currency %s: %w", currencyCode, err)
	}
	return currency.Money(amount)
}

// requireAmount dereferences a request amount, rejecting a missing one.
func requireAmount(amount *decimal.Decimal) (decimal.Decimal, error) {
	if amount == nil {
		return decimal.Decimal{}, fmt.Errorf("%w: amount is required", apperrors.ErrValidation)
	}
	return *amount, nil
}
