package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/urmilakunj/society_backend/internal/apperrors"
	portsrepo "github.com/urmilakunj/society_backend/internal/core/ports/repositories"
	portssvc "github.com/urmilakunj/society_backend/internal/core/ports/services"
	"github.com/urmilakunj/society_backend/internal/dto"
	"github.com/urmilakunj/society_backend/internal/platform/config"
	"github.com/urmilakunj/society_backend/internal/utils"
)

type reminderService struct {
	BaseService
	cfg        *config.Config
	periodRepo portsrepo.PeriodRepositoryFacade
	userRepo   portsrepo.UserRepositoryFacade
}

// NewReminderService creates the dues reminder service.
func NewReminderService(cfg *config.Config, periodRepo portsrepo.PeriodRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.ReminderSvcFacade {
	return &reminderService{
		cfg:        cfg,
		periodRepo: periodRepo,
		userRepo:   userRepo,
	}
}

var _ portssvc.ReminderSvcFacade = (*reminderService)(nil)

// BuildDueReminder composes the reminder message and WhatsApp link for a
// flat's dues in a period. A flat without a registered resident still
// gets a message; the link just has no recipient.
func (s *reminderService) BuildDueReminder(ctx context.Context, periodID, flatNo string) (*dto.ReminderLinkResponse, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, err
	}

	residentName := ""
	phone := ""
	resident, err := s.userRepo.FindUserByFlatNo(ctx, flatNo)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogWarn(ctx, "no resident registered for reminder flat", slog.String("flat_no", flatNo))
	} else {
		residentName = resident.Name
		phone = resident.Phone
	}

	message := utils.BuildDueReminderMessage(utils.DueReminderOpts{
		SocietyName:  s.cfg.SocietyName,
		PeriodID:     period.PeriodID,
		Amount:       period.Amount,
		DueDate:      period.DueDate,
		FlatNo:       flatNo,
		ResidentName: residentName,
		UPI:          s.cfg.SocietyUPI,
	})

	return &dto.ReminderLinkResponse{
		PeriodID: period.PeriodID,
		FlatNo:   flatNo,
		Phone:    phone,
		Message:  message,
		Link:     utils.WALink(phone, message),
	}, nil
}
