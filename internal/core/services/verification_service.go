package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nikitph/los-backend/internal/apperrors"
	"github.com/nikitph/los-backend/internal/core/domain"
	portsrepo "github.com/nikitph/los-backend/internal/core/ports/repositories"
	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
	"github.com/nikitph/los-backend/internal/dto"
	"github.com/nikitph/los-backend/internal/middleware"
)

// ErrApplicationNotVerifiable is returned when a verification is created for an
// application that is not in a verifiable status.
var ErrApplicationNotVerifiable = fmt.Errorf("application is not awaiting verification: %w", apperrors.ErrInvalidState)

// VerificationService manages inspector field checks on loan applications.
type VerificationService struct {
	verificationRepo portsrepo.VerificationRepositoryFacade
	loanRepo         portsrepo.LoanApplicationReader
	abilitySvc       portssvc.AbilitySvcFacade
	timelineSvc      portssvc.TimelineSvcFacade
}

// NewVerificationService creates a new VerificationService.
func NewVerificationService(vr portsrepo.VerificationRepositoryFacade, lr portsrepo.LoanApplicationReader, as portssvc.AbilitySvcFacade, ts portssvc.TimelineSvcFacade) *VerificationService {
	return &VerificationService{
		verificationRepo: vr,
		loanRepo:         lr,
		abilitySvc:       as,
		timelineSvc:      ts,
	}
}

var _ portssvc.VerificationSvcFacade = (*VerificationService)(nil)

// loadApplicationScoped fetches the owning application and enforces tenant scope.
func (s *VerificationService) loadApplicationScoped(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) (*domain.LoanApplication, error) {
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

func (s *VerificationService) CreateVerification(ctx context.Context, actor *domain.AuthUser, req dto.CreateVerificationRequest) (*domain.Verification, error) {
	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionCreate, domain.SubjectVerification) {
		return nil, apperrors.ErrForbidden
	}

	app, err := s.loadApplicationScoped(ctx, actor, req.LoanApplicationID)
	if err != nil {
		return nil, err
	}
	if app.Status != domain.LoanStatusPendingVerification && app.Status != domain.LoanStatusVerificationInProgress {
		return nil, ErrApplicationNotVerifiable
	}
	if !validVerificationType(domain.VerificationType(req.Type)) {
		return nil, fmt.Errorf("%w: unknown verification type %q", apperrors.ErrValidation, req.Type)
	}

	now := time.Now().UTC()
	verification := domain.Verification{
		VerificationID:    uuid.NewString(),
		LoanApplicationID: req.LoanApplicationID,
		Type:              domain.VerificationType(req.Type),
		Status:            domain.VerificationStatusPending,
		AddressLine:       req.AddressLine,
		AddressCity:       req.AddressCity,
		AddressState:      req.AddressState,
		AddressZip:        req.AddressZip,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.verificationRepo.SaveVerification(ctx, verification); err != nil {
		return nil, err
	}
	return &verification, nil
}

// RecordResult marks a verification COMPLETED with the inspector's finding and
// logs one timeline event against the owning application.
func (s *VerificationService) RecordResult(ctx context.Context, actor *domain.AuthUser, verificationID string, result bool, remarks string) (*domain.Verification, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionVerify, domain.SubjectLoanApplication) {
		return nil, apperrors.ErrForbidden
	}

	verification, err := s.verificationRepo.FindVerificationByID(ctx, verificationID)
	if err != nil {
		return nil, err
	}
	if _, err := s.loadApplicationScoped(ctx, actor, verification.LoanApplicationID); err != nil {
		return nil, err
	}
	if verification.Status == domain.VerificationStatusCompleted {
		return nil, fmt.Errorf("verification already recorded: %w", apperrors.ErrInvalidState)
	}

	now := time.Now().UTC()
	verification.Status = domain.VerificationStatusCompleted
	verification.Result = result
	verification.Remarks = remarks
	verification.VerifiedByID = &actor.UserID
	verification.VerifiedAt = &now
	verification.LastUpdatedAt = now
	verification.LastUpdatedBy = actor.UserID

	if err := s.verificationRepo.UpdateVerification(ctx, *verification); err != nil {
		return nil, err
	}

	if _, err := s.timelineSvc.LogEntityEvent(ctx, actor, domain.EntityTypeLoanApplication, verification.LoanApplicationID, domain.EventVerificationRecorded, remarks); err != nil {
		logger.Error("Failed to log verification result", slog.String("error", err.Error()), slog.String("verification_id", verificationID))
	}

	return verification, nil
}

func (s *VerificationService) ListByApplication(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) ([]domain.Verification, error) {
	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionView, domain.SubjectVerification) {
		return nil, apperrors.ErrForbidden
	}
	if _, err := s.loadApplicationScoped(ctx, actor, loanApplicationID); err != nil {
		return nil, err
	}
	return s.verificationRepo.FindVerificationsByLoanApplicationID(ctx, loanApplicationID)
}

func validVerificationType(t domain.VerificationType) bool {
	switch t {
	case domain.VerificationTypeResidence, domain.VerificationTypeRental,
		domain.VerificationTypeBusiness, domain.VerificationTypeVehicle,
		domain.VerificationTypeProperty:
		return true
	}
	return false
}
