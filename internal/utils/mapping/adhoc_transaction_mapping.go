package mapping

import (
	"fmt"

	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	"github.com/SscSPs/budget_calendar_app/internal/models"
)

// ToModelAdhocTransaction converts a domain AdhocTransaction to a model AdhocTransaction
func ToModelAdhocTransaction(d domain.AdhocTransaction) models.AdhocTransaction {
	return models.AdhocTransaction{
		TransactionID:   d.TransactionID,
		Description:     d.Description,
		Amount:          d.Money.Amount(),
		CurrencyCode:    d.Money.CurrencyCode(),
		TransactionDate: d.Date.Time(),
		Category:        d.Category,
		EntryType:       string(d.Type),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAdhocTransaction converts a model AdhocTransaction to a domain AdhocTransaction
func ToDomainAdhocTransaction(m models.AdhocTransaction) (domain.AdhocTransaction, error) {
	money, err := domain.NewMoneyValue(m.CurrencyCode, m.Amount)
	if err != nil {
		return domain.AdhocTransaction{}, fmt.Errorf("transaction %s: %w", m.TransactionID, err)
	}
	t := domain.AdhocTransaction{
		TransactionID: m.TransactionID,
		Description:   m.Description,
		Money:         money,
		Date:          domain.DateOf(m.TransactionDate),
		Category:      m.Category,
		Type:          domain.EntryType(m.EntryType),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if err := t.Validate(); err != nil {
		return domain.AdhocTransaction{}, fmt.Errorf("transaction %s: %w", m.TransactionID, err)
	}
	return t, nil
}

// ToDomainAdhocTransactionSlice converts a slice of model AdhocTransactions
func ToDomainAdhocTransactionSlice(ms []models.AdhocTransaction) ([]domain.AdhocTransaction, error) {
	ds := make([]domain.AdhocTransaction, len(ms))
	for i, m := range ms {
		t, err := ToDomainAdhocTransaction(m)
		if err != nil {
			return nil, err
		}
		ds[i] = t
	}
	return ds, nil
}
