package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	PeriodRepo  PeriodRepositoryFacade
	PaymentRepo PaymentRepositoryFacade
	ExpenseRepo ExpenseRepositoryFacade
	LedgerRepo  LedgerRepositoryFacade
	NoticeRepo  NoticeRepositoryFacade
	UserRepo    UserRepositoryFacade
}
