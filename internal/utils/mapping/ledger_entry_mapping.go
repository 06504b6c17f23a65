package mapping

import (
	"github.com/urmilakunj/society_backend/internal/core/domain"
	"github.com/urmilakunj/society_backend/internal/models"
)

// ToModelLedgerEntry converts a domain ManualEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.ManualEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:     d.EntryID,
		PeriodID:    d.PeriodID,
		Date:        d.Date,
		EntryType:   string(d.Type),
		Particulars: d.Particulars,
		Instrument:  d.Instrument,
		InstNo:      d.InstNo,
		Amount:      d.Amount,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainManualEntry converts a model LedgerEntry to a domain ManualEntry
func ToDomainManualEntry(m models.LedgerEntry) domain.ManualEntry {
	return domain.ManualEntry{
		EntryID:     m.EntryID,
		PeriodID:    m.PeriodID,
		Date:        m.Date,
		Type:        domain.EntryType(m.EntryType),
		Particulars: m.Particulars,
		Instrument:  m.Instrument,
		InstNo:      m.InstNo,
		Amount:      m.Amount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainManualEntrySlice converts a slice of model LedgerEntries to domain ManualEntries
func ToDomainManualEntrySlice(ms []models.LedgerEntry) []domain.ManualEntry {
	ds := make([]domain.ManualEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainManualEntry(m)
	}
	return ds
}
