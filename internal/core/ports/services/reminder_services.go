package services

import (
	"context"

	"github.com/urmilakunj/society_backend/internal/dto"
)

// ReminderSvcFacade builds shareable payment reminders for flats with
// pending dues.
type ReminderSvcFacade interface {
	// BuildDueReminder composes the reminder message and WhatsApp link
	// for a flat's dues in a period.
	BuildDueReminder(ctx context.Context, periodID, flatNo string) (*dto.ReminderLinkResponse, error)
}
