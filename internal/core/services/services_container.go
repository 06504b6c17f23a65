package services

import (
	portsrepo "github.com/urmilakunj/society_backend/internal/core/ports/repositories"
	portssvc "github.com/urmilakunj/society_backend/internal/core/ports/services"
	"github.com/urmilakunj/society_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Notices first; period creation publishes a dues notice through them.
	container.Notice = NewNoticeService(repos.NoticeRepo)
	container.Period = NewPeriodService(repos.PeriodRepo, container.Notice)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.PeriodRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.Ledger = NewLedgerService(repos.PeriodRepo, repos.PaymentRepo, repos.ExpenseRepo, repos.LedgerRepo, repos.UserRepo)
	container.Finance = NewFinanceService(repos.PeriodRepo, repos.PaymentRepo, repos.ExpenseRepo, repos.LedgerRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Reminder = NewReminderService(cfg, repos.PeriodRepo, repos.UserRepo)

	container.Token = NewTokenService(cfg, container.User)
	container.Google = NewGoogleOAuthHandlerService(cfg)

	return container
}
