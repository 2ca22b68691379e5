package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User          UserSvcFacade
	Bank          BankSvcFacade
	Applicant     ApplicantSvcFacade
	Loan          LoanSvcFacade
	Verification  VerificationSvcFacade
	Income        IncomeSvcFacade
	Eligibility   EligibilitySvcFacade
	Document      DocumentSvcFacade
	Timeline      TimelineSvcFacade
	PendingAction PendingActionSvcFacade
	Ability       AbilitySvcFacade
	TokenService  TokenSvcFacade
	GoogleOAuth   GoogleOAuthSvcFacade
}
