package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/nikitph/los-backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	bankRepo := newPgxBankRepository(dbPool)
	applicantRepo := newPgxApplicantRepository(dbPool)
	loanRepo := newPgxLoanApplicationRepository(dbPool)
	verificationRepo := newPgxVerificationRepository(dbPool)
	incomeRepo := newPgxIncomeRepository(dbPool)
	documentRepo := newPgxDocumentRepository(dbPool)
	timelineRepo := newPgxTimelineRepository(dbPool)
	pendingActionRepo := newPgxPendingActionRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:          userRepo,
		BankRepo:          bankRepo,
		ApplicantRepo:     applicantRepo,
		LoanRepo:          loanRepo,
		VerificationRepo:  verificationRepo,
		IncomeRepo:        incomeRepo,
		DocumentRepo:      documentRepo,
		TimelineRepo:      timelineRepo,
		PendingActionRepo: pendingActionRepo,
	}
}
