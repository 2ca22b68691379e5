package services

import (
	portsrepo "github.com/nikitph/los-backend/internal/core/ports/repositories"
	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
	"github.com/nikitph/los-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Ability first: almost every other service consults it.
	container.Ability = NewAbilityService(repos.UserRepo, repos.BankRepo)

	userService := NewUserService(repos.UserRepo, repos.BankRepo)
	container.User = userService

	container.Bank = NewBankService(repos.BankRepo, container.Ability)
	container.Applicant = NewApplicantService(repos.ApplicantRepo, container.Ability)
	container.Timeline = NewTimelineService(repos.TimelineRepo, container.Ability)
	container.Loan = NewLoanService(repos.LoanRepo, repos.ApplicantRepo, repos.VerificationRepo, repos.BankRepo, container.Ability)
	container.Verification = NewVerificationService(repos.VerificationRepo, repos.LoanRepo, container.Ability, container.Timeline)
	container.Income = NewIncomeService(repos.IncomeRepo, repos.ApplicantRepo, container.Ability)
	container.Eligibility = NewEligibilityService(repos.IncomeRepo, repos.IncomeRepo, repos.ApplicantRepo, container.Ability, cfg.TimesOfNetIncome)
	container.Document = NewDocumentService(repos.DocumentRepo, container.Ability, container.Timeline)
	container.PendingAction = NewPendingActionService(repos.PendingActionRepo, container.Ability, userService, repos.BankRepo, repos.BankRepo)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
