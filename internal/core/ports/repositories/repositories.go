package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo          UserRepositoryFacade
	BankRepo          BankRepositoryFacade
	ApplicantRepo     ApplicantRepositoryFacade
	LoanRepo          LoanApplicationRepositoryWithTx
	VerificationRepo  VerificationRepositoryFacade
	IncomeRepo        IncomeRepositoryFacade
	DocumentRepo      DocumentRepositoryFacade
	TimelineRepo      TimelineRepositoryFacade
	PendingActionRepo PendingActionRepositoryFacade
}
