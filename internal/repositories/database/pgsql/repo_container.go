package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/urmilakunj/society_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	periodRepo := newPgxPeriodRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	noticeRepo := newPgxNoticeRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		PeriodRepo:  periodRepo,
		PaymentRepo: paymentRepo,
		ExpenseRepo: expenseRepo,
		LedgerRepo:  ledgerRepo,
		NoticeRepo:  noticeRepo,
		UserRepo:    userRepo,
	}
}
