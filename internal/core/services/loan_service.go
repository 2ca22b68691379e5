package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nikitph/los-backend/internal/apperrors"
	"github.com/nikitph/los-backend/internal/core/domain"
	portsrepo "github.com/nikitph/los-backend/internal/core/ports/repositories"
	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
	"github.com/nikitph/los-backend/internal/dto"
	"github.com/nikitph/los-backend/internal/middleware"
)

var (
	// ErrInvalidTransition is returned when the lifecycle graph forbids a status change.
	ErrInvalidTransition = fmt.Errorf("status transition not allowed: %w", apperrors.ErrInvalidState)
	// ErrRemarksRequired is returned when a decision is submitted without remarks.
	ErrRemarksRequired error = apperrors.NewValidationError(map[string]string{
		"remarks": "remarks are required for this decision",
	})
)

// LoanService owns the loan application lifecycle. It is the only code path
// that changes an application's status, and every change is persisted together
// with its timeline event.
type LoanService struct {
	loanRepo         portsrepo.LoanApplicationRepositoryWithTx
	applicantRepo    portsrepo.ApplicantReader
	verificationRepo portsrepo.VerificationReader
	bankRepo         portsrepo.BankMembershipManager
	abilitySvc       portssvc.AbilitySvcFacade
}

// NewLoanService creates a new LoanService.
func NewLoanService(lr portsrepo.LoanApplicationRepositoryWithTx, ar portsrepo.ApplicantReader, vr portsrepo.VerificationReader, br portsrepo.BankMembershipManager, as portssvc.AbilitySvcFacade) portssvc.LoanSvcFacade {
	return &LoanService{
		loanRepo:         lr,
		applicantRepo:    ar,
		verificationRepo: vr,
		bankRepo:         br,
		abilitySvc:       as,
	}
}

var _ portssvc.LoanSvcFacade = (*LoanService)(nil)

func (s *LoanService) requireAbility(actor *domain.AuthUser, action domain.AbilityAction) error {
	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(action, domain.SubjectLoanApplication) {
		return apperrors.ErrForbidden
	}
	return nil
}

// loadScoped fetches the application and enforces tenant scope: the actor must
// belong to the bank owning the row. Cross-tenant reads surface as not found.
func (s *LoanService) loadScoped(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) (*domain.LoanApplication, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}
	app, err := s.loanRepo.FindLoanApplicationByID(ctx, loanApplicationID)
	if err != nil {
		return nil, err
	}
	if actor.CurrentRole != domain.RoleSaasAdmin && app.BankID != actor.BankID {
		return nil, apperrors.ErrNotFound
	}
	return app, nil
}

func (s *LoanService) CreateApplication(ctx context.Context, actor *domain.AuthUser, req dto.CreateLoanApplicationRequest) (*domain.LoanApplication, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.requireAbility(actor, domain.ActionCreate); err != nil {
		return nil, err
	}
	fields := map[string]string{}
	if !domain.ValidLoanType(domain.LoanType(req.LoanType)) {
		fields["loanType"] = fmt.Sprintf("unknown loan type %q", req.LoanType)
	}
	if req.AmountRequested.IsNegative() {
		fields["amountRequested"] = "must not be negative"
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}

	applicant, err := s.applicantRepo.FindApplicantByID(ctx, req.ApplicantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: applicant %s not found", apperrors.ErrValidation, req.ApplicantID)
		}
		return nil, fmt.Errorf("failed to validate applicant: %w", err)
	}
	if applicant.BankID != actor.BankID {
		return nil, fmt.Errorf("%w: applicant belongs to a different bank", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	app := domain.LoanApplication{
		LoanApplicationID: uuid.NewString(),
		ApplicantID:       applicant.ApplicantID,
		BankID:            actor.BankID,
		LoanType:          domain.LoanType(req.LoanType),
		AmountRequested:   req.AmountRequested,
		Status:            domain.LoanStatusDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	actionData, _ := json.Marshal(struct {
		LoanType        domain.LoanType `json:"loanType"`
		AmountRequested decimal.Decimal `json:"amountRequested"`
	}{app.LoanType, app.AmountRequested})

	event := domain.TimelineEvent{
		TimelineEventID:   uuid.NewString(),
		EntityType:        domain.EntityTypeLoanApplication,
		EntityID:          app.LoanApplicationID,
		EventType:         domain.EventApplicationCreated,
		ActorUserID:       actor.UserID,
		ActorName:         actor.Name,
		ActorRole:         actor.CurrentRole,
		Remarks:           "application created",
		ActionData:        actionData,
		LoanApplicationID: &app.LoanApplicationID,
		ApplicantID:       &app.ApplicantID,
		CreatedAt:         now,
	}

	if err := s.loanRepo.SaveWithTimeline(ctx, app, event); err != nil {
		logger.Error("Failed to save loan application", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create loan application: %w", err)
	}

	logger.Info("Loan application created",
		slog.String("loan_application_id", app.LoanApplicationID),
		slog.String("applicant_id", app.ApplicantID))
	return &app, nil
}

func (s *LoanService) GetApplication(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) (*domain.LoanApplication, error) {
	if err := s.requireAbility(actor, domain.ActionView); err != nil {
		return nil, err
	}
	app, err := s.loadScoped(ctx, actor, loanApplicationID)
	if err != nil {
		return nil, err
	}
	guarantors, err := s.loanRepo.FindGuarantorsByLoanApplicationID(ctx, loanApplicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load guarantors: %w", err)
	}
	app.Guarantors = guarantors
	return app, nil
}

func (s *LoanService) ListApplications(ctx context.Context, actor *domain.AuthUser, params dto.ListLoanApplicationsParams) (*dto.ListLoanApplicationsResponse, error) {
	if err := s.requireAbility(actor, domain.ActionView); err != nil {
		return nil, err
	}
	if actor.BankID == "" {
		return nil, fmt.Errorf("%w: bank scope required", apperrors.ErrValidation)
	}

	var status *domain.LoanStatus
	if params.Status != nil && *params.Status != "" {
		st := domain.LoanStatus(*params.Status)
		status = &st
	}

	apps, nextToken, err := s.loanRepo.ListLoanApplicationsByBank(ctx, actor.BankID, status, params.Limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan applications: %w", err)
	}

	return &dto.ListLoanApplicationsResponse{
		LoanApplications: dto.ToLoanApplicationResponses(apps),
		NextToken:        nextToken,
	}, nil
}

// UpdateDraft changes the two applicant-editable fields. Once the application
// has left DRAFT both are frozen for the life of the record.
func (s *LoanService) UpdateDraft(ctx context.Context, actor *domain.AuthUser, loanApplicationID string, req dto.UpdateLoanApplicationRequest) (*domain.LoanApplication, error) {
	if err := s.requireAbility(actor, domain.ActionUpdate); err != nil {
		return nil, err
	}
	app, err := s.loadScoped(ctx, actor, loanApplicationID)
	if err != nil {
		return nil, err
	}
	if app.Status != domain.LoanStatusDraft {
		return nil, fmt.Errorf("application is no longer editable: %w", apperrors.ErrInvalidState)
	}

	fields := map[string]string{}
	if req.LoanType != nil && !domain.ValidLoanType(domain.LoanType(*req.LoanType)) {
		fields["loanType"] = fmt.Sprintf("unknown loan type %q", *req.LoanType)
	}
	if req.AmountRequested != nil && req.AmountRequested.IsNegative() {
		fields["amountRequested"] = "must not be negative"
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}

	if req.LoanType != nil {
		app.LoanType = domain.LoanType(*req.LoanType)
	}
	if req.AmountRequested != nil {
		app.AmountRequested = *req.AmountRequested
	}

	app.LastUpdatedAt = time.Now().UTC()
	app.LastUpdatedBy = actor.UserID

	if err := s.loanRepo.UpdateLoanApplication(ctx, *app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *LoanService) SubmitApplication(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) (*domain.LoanApplication, error) {
	if err := s.requireAbility(actor, domain.ActionSubmit); err != nil {
		return nil, err
	}
	app, err := s.loadScoped(ctx, actor, loanApplicationID)
	if err != nil {
		return nil, err
	}
	if app.AmountRequested.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError(map[string]string{
			"amountRequested": "must be positive before submission",
		})
	}
	return s.transition(ctx, app, domain.LoanStatusPendingLoanOfficerAssignment, actor, domain.EventApplicationSubmitted, "", nil, nil)
}

func (s *LoanService) AssignLoanOfficer(ctx context.Context, actor *domain.AuthUser, loanApplicationID, loanOfficerID string) (*domain.LoanApplication, error) {
	if err := s.requireAbility(actor, domain.ActionAssign); err != nil {
		return nil, err
	}
	app, err := s.loadScoped(ctx, actor, loanApplicationID)
	if err != nil {
		return nil, err
	}
	if err := s.requireBankRole(ctx, loanOfficerID, app.BankID, domain.RoleLoanOfficer); err != nil {
		return nil, err
	}
	return s.transition(ctx, app, domain.LoanStatusPendingLoanOfficerReview, actor, domain.EventLoanOfficerAssigned, "", &loanOfficerID, nil)
}

func (s *LoanService) ReviewByLoanOfficer(ctx context.Context, actor *domain.AuthUser, loanApplicationID string, pass bool, remarks string) (*domain.LoanApplication, error) {
	if err := s.requireAbility(actor, domain.ActionReview); err != nil {
		return nil, err
	}
	app, err := s.loadScoped(ctx, actor, loanApplicationID)
	if err != nil {
		return nil, err
	}
	if pass {
		return s.transition(ctx, app, domain.LoanStatusPendingInspectorAssignment, actor, domain.EventLoanOfficerReviewed, remarks, nil, nil)
	}
	if strings.TrimSpace(remarks) == "" {
		return nil, ErrRemarksRequired
	}
	return s.transition(ctx, app, domain.LoanStatusRejected, actor, domain.EventApplicationRejected, remarks, nil, nil)
}

func (s *LoanService) AssignInspector(ctx context.Context, actor *domain.AuthUser, loanApplicationID, inspectorID string) (*domain.LoanApplication, error) {
	if err := s.requireAbility(actor, domain.ActionAssign); err != nil {
		return nil, err
	}
	app, err := s.loadScoped(ctx, actor, loanApplicationID)
	if err != nil {
		return nil, err
	}
	if err := s.requireBankRole(ctx, inspectorID, app.BankID, domain.RoleInspector); err != nil {
		return nil, err
	}
	return s.transition(ctx, app, domain.LoanStatusPendingVerification, actor, domain.EventInspectorAssigned, "", nil, &inspectorID)
}

func (s *LoanService) StartVerification(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) (*domain.LoanApplication, error) {
	if err := s.requireAbility(actor, domain.ActionVerify); err != nil {
		return nil, err
	}
	app, err := s.loadScoped(ctx, actor, loanApplicationID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, app, domain.LoanStatusVerificationInProgress, actor, domain.EventVerificationStarted, "", nil, nil)
}

// CompleteVerification closes the verification phase. An application with any
// failed check, or with no checks recorded at all, lands in VERIFICATION_FAILED.
func (s *LoanService) CompleteVerification(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) (*domain.LoanApplication, error) {
	if err := s.requireAbility(actor, domain.ActionVerify); err != nil {
		return nil, err
	}
	app, err := s.loadScoped(ctx, actor, loanApplicationID)
	if err != nil {
		return nil, err
	}

	failed, err := s.verificationRepo.HasFailedVerification(ctx, loanApplicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate verifications: %w", err)
	}
	if failed {
		return s.transition(ctx, app, domain.LoanStatusVerificationFailed, actor, domain.EventVerificationFailed, "", nil, nil)
	}
	return s.transition(ctx, app, domain.LoanStatusVerificationCompleted, actor, domain.EventVerificationCompleted, "", nil, nil)
}

func (s *LoanService) MoveToReview(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) (*domain.LoanApplication, error) {
	if err := s.requireAbility(actor, domain.ActionReview); err != nil {
		return nil, err
	}
	app, err := s.loadScoped(ctx, actor, loanApplicationID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, app, domain.LoanStatusUnderReview, actor, domain.EventApplicationStatusUpdated, "", nil, nil)
}

func (s *LoanService) Approve(ctx context.Context, actor *domain.AuthUser, loanApplicationID string, remarks string) (*domain.LoanApplication, error) {
	if err := s.requireAbility(actor, domain.ActionApprove); err != nil {
		return nil, err
	}
	app, err := s.loadScoped(ctx, actor, loanApplicationID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, app, domain.LoanStatusApproved, actor, domain.EventApplicationApproved, remarks, nil, nil)
}

func (s *LoanService) Reject(ctx context.Context, actor *domain.AuthUser, loanApplicationID string, remarks string) (*domain.LoanApplication, error) {
	if err := s.requireAbility(actor, domain.ActionReject); err != nil {
		return nil, err
	}
	if strings.TrimSpace(remarks) == "" {
		return nil, ErrRemarksRequired
	}
	app, err := s.loadScoped(ctx, actor, loanApplicationID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, app, domain.LoanStatusRejected, actor, domain.EventApplicationRejected, remarks, nil, nil)
}

func (s *LoanService) Withdraw(ctx context.Context, actor *domain.AuthUser, loanApplicationID string, remarks string) (*domain.LoanApplication, error) {
	if err := s.requireAbility(actor, domain.ActionCancel); err != nil {
		return nil, err
	}
	app, err := s.loadScoped(ctx, actor, loanApplicationID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, app, domain.LoanStatusRejectedByApplicant, actor, domain.EventApplicationWithdrawn, remarks, nil, nil)
}

// UpdateStatusWithLog is the generic transition entry point for callers that
// know the target status directly.
func (s *LoanService) UpdateStatusWithLog(ctx context.Context, loanApplicationID string, newStatus domain.LoanStatus, actor *domain.AuthUser, eventType domain.TimelineEventType, remarks string) (*domain.LoanApplication, error) {
	app, err := s.loadScoped(ctx, actor, loanApplicationID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, app, newStatus, actor, eventType, remarks, nil, nil)
}

// transition validates the lifecycle step and persists the status change with
// its timeline event in one repository transaction. Nothing is written when the
// graph forbids the step.
func (s *LoanService) transition(ctx context.Context, app *domain.LoanApplication, newStatus domain.LoanStatus, actor *domain.AuthUser, eventType domain.TimelineEventType, remarks string, officerID, inspectorID *string) (*domain.LoanApplication, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !app.Status.CanTransitionTo(newStatus) {
		logger.Warn("Rejected status transition",
			slog.String("loan_application_id", app.LoanApplicationID),
			slog.String("from", string(app.Status)),
			slog.String("to", string(newStatus)))
		return nil, fmt.Errorf("cannot move %s from %s to %s: %w", app.LoanApplicationID, app.Status, newStatus, ErrInvalidTransition)
	}

	if strings.TrimSpace(remarks) == "" {
		remarks = "status updated to " + string(newStatus)
	}
	actionData, _ := json.Marshal(struct {
		OldStatus             domain.LoanStatus `json:"oldStatus"`
		NewStatus             domain.LoanStatus `json:"newStatus"`
		AssignedLoanOfficerID *string           `json:"assignedLoanOfficerID,omitempty"`
		AssignedInspectorID   *string           `json:"assignedInspectorID,omitempty"`
	}{app.Status, newStatus, officerID, inspectorID})

	now := time.Now().UTC()
	event := domain.TimelineEvent{
		TimelineEventID:   uuid.NewString(),
		EntityType:        domain.EntityTypeLoanApplication,
		EntityID:          app.LoanApplicationID,
		EventType:         eventType,
		ActorUserID:       actor.UserID,
		ActorName:         actor.Name,
		ActorRole:         actor.CurrentRole,
		Remarks:           remarks,
		ActionData:        actionData,
		LoanApplicationID: &app.LoanApplicationID,
		ApplicantID:       &app.ApplicantID,
		CreatedAt:         now,
	}

	if err := s.loanRepo.UpdateStatusWithTimeline(ctx, app.LoanApplicationID, newStatus, officerID, inspectorID, actor.UserID, now, event); err != nil {
		return nil, err
	}

	app.Status = newStatus
	if officerID != nil {
		app.AssignedLoanOfficerID = officerID
	}
	if inspectorID != nil {
		app.AssignedInspectorID = inspectorID
	}
	app.LastUpdatedAt = now
	app.LastUpdatedBy = actor.UserID

	logger.Info("Loan application status updated",
		slog.String("loan_application_id", app.LoanApplicationID),
		slog.String("status", string(newStatus)),
		slog.String("event_type", string(eventType)))
	return app, nil
}

// requireBankRole checks that the target user holds the expected role in the bank.
func (s *LoanService) requireBankRole(ctx context.Context, userID, bankID string, role domain.UserRole) error {
	membership, err := s.bankRepo.FindBankMembershipRole(ctx, userID, bankID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user %s is not a member of the bank", apperrors.ErrValidation, userID)
		}
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if membership.Role != role {
		return fmt.Errorf("%w: user %s does not hold role %s", apperrors.ErrValidation, userID, role)
	}
	return nil
}

func (s *LoanService) AddGuarantor(ctx context.Context, actor *domain.AuthUser, loanApplicationID string, req dto.CreateGuarantorRequest) (*domain.Guarantor, error) {
	if err := s.requireAbility(actor, domain.ActionUpdate); err != nil {
		return nil, err
	}
	app, err := s.loadScoped(ctx, actor, loanApplicationID)
	if err != nil {
		return nil, err
	}
	if app.Status.IsTerminal() {
		return nil, fmt.Errorf("application already decided: %w", apperrors.ErrInvalidState)
	}

	now := time.Now().UTC()
	guarantor := domain.Guarantor{
		GuarantorID:       uuid.NewString(),
		LoanApplicationID: loanApplicationID,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		AddressLine:       req.AddressLine,
		AddressCity:       req.AddressCity,
		AddressState:      req.AddressState,
		AddressZip:        req.AddressZip,
		MobileNumber:      req.MobileNumber,
		Email:             req.Email,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	if err := s.loanRepo.SaveGuarantor(ctx, guarantor); err != nil {
		return nil, fmt.Errorf("failed to add guarantor: %w", err)
	}
	return &guarantor, nil
}

func (s *LoanService) ListGuarantors(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) ([]domain.Guarantor, error) {
	if err := s.requireAbility(actor, domain.ActionView); err != nil {
		return nil, err
	}
	if _, err := s.loadScoped(ctx, actor, loanApplicationID); err != nil {
		return nil, err
	}
	return s.loanRepo.FindGuarantorsByLoanApplicationID(ctx, loanApplicationID)
}
