package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nikitph/los-backend/internal/apperrors"
	"github.com/nikitph/los-backend/internal/core/domain"
	portsrepo "github.com/nikitph/los-backend/internal/core/ports/repositories"
	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
	"github.com/nikitph/los-backend/internal/dto"
	"github.com/nikitph/los-backend/internal/middleware"
)

// ErrReviewRemarksRequired is returned when a rejection has no remarks.
var ErrReviewRemarksRequired error = apperrors.NewValidationError(map[string]string{
	"remarks": "remarks are required to reject a request",
})

// PendingActionService runs the request/approve workflow for bank-scoped
// administrative operations.
type PendingActionService struct {
	pendingRepo  portsrepo.PendingActionRepositoryFacade
	abilitySvc   portssvc.AbilitySvcFacade
	userCreation portssvc.UserCreationMaterializer
	bankRepo     portsrepo.BankWriter
	bankReader   portsrepo.BankReader
}

// NewPendingActionService creates a new PendingActionService.
func NewPendingActionService(pr portsrepo.PendingActionRepositoryFacade, as portssvc.AbilitySvcFacade, uc portssvc.UserCreationMaterializer, bw portsrepo.BankWriter, br portsrepo.BankReader) portssvc.PendingActionSvcFacade {
	return &PendingActionService{
		pendingRepo:  pr,
		abilitySvc:   as,
		userCreation: uc,
		bankRepo:     bw,
		bankReader:   br,
	}
}

var _ portssvc.PendingActionSvcFacade = (*PendingActionService)(nil)

func validActionType(t domain.PendingActionType) bool {
	switch t {
	case domain.ActionRequestBankUserCreation, domain.ActionRequestRoleChange, domain.ActionRequestBankDetailUpdate:
		return true
	}
	return false
}

func (s *PendingActionService) RequestAction(ctx context.Context, actor *domain.AuthUser, bankID string, actionType domain.PendingActionType, payload json.RawMessage) (*domain.PendingAction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionCreate, domain.SubjectPendingAction) {
		return nil, apperrors.ErrForbidden
	}
	if actor.CurrentRole != domain.RoleSaasAdmin && actor.BankID != bankID {
		return nil, fmt.Errorf("%w: cannot request actions for another bank", apperrors.ErrForbidden)
	}
	if !validActionType(actionType) {
		return nil, fmt.Errorf("%w: unknown action type %q", apperrors.ErrValidation, actionType)
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return nil, fmt.Errorf("%w: payload must be valid JSON", apperrors.ErrValidation)
	}

	action := domain.PendingAction{
		PendingActionID: uuid.NewString(),
		BankID:          bankID,
		ActionType:      actionType,
		Payload:         payload,
		Status:          domain.PendingActionPending,
		RequestedByID:   actor.UserID,
		RequestedAt:     time.Now().UTC(),
		TargetModel:     targetModelFor(actionType),
	}
	event := pendingActionEvent(&action, actor, domain.EventActionRequested, "")
	if err := s.pendingRepo.SaveWithTimeline(ctx, action, event); err != nil {
		return nil, fmt.Errorf("failed to save pending action: %w", err)
	}

	logger.Info("Pending action requested",
		slog.String("pending_action_id", action.PendingActionID),
		slog.String("action_type", string(actionType)))
	return &action, nil
}

func targetModelFor(actionType domain.PendingActionType) string {
	switch actionType {
	case domain.ActionRequestBankUserCreation:
		return "UserProfile"
	case domain.ActionRequestRoleChange:
		return "BankMembership"
	case domain.ActionRequestBankDetailUpdate:
		return "Bank"
	}
	return ""
}

func (s *PendingActionService) GetAction(ctx context.Context, actor *domain.AuthUser, pendingActionID string) (*domain.PendingAction, error) {
	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionView, domain.SubjectPendingAction) {
		return nil, apperrors.ErrForbidden
	}
	action, err := s.pendingRepo.FindPendingActionByID(ctx, pendingActionID)
	if err != nil {
		return nil, err
	}
	if actor.CurrentRole != domain.RoleSaasAdmin && action.BankID != actor.BankID {
		return nil, apperrors.ErrNotFound
	}
	return action, nil
}

func (s *PendingActionService) ListActions(ctx context.Context, actor *domain.AuthUser, bankID string, status *domain.PendingActionStatus, limit int) ([]domain.PendingAction, error) {
	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionView, domain.SubjectPendingAction) {
		return nil, apperrors.ErrForbidden
	}
	if actor.CurrentRole != domain.RoleSaasAdmin && actor.BankID != bankID {
		return nil, apperrors.ErrForbidden
	}
	return s.pendingRepo.ListPendingActionsByBank(ctx, bankID, status, limit)
}

// Approve finalizes a pending request and triggers its downstream effect.
// Self-approval is rejected: the requester cannot review their own request.
func (s *PendingActionService) Approve(ctx context.Context, actor *domain.AuthUser, pendingActionID string) (*domain.PendingAction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionApprove, domain.SubjectPendingAction) {
		return nil, apperrors.ErrForbidden
	}

	action, err := s.GetAction(ctx, actor, pendingActionID)
	if err != nil {
		return nil, err
	}
	if action.Status.IsTerminal() {
		return nil, fmt.Errorf("request already reviewed: %w", apperrors.ErrInvalidState)
	}
	if action.RequestedByID == actor.UserID {
		return nil, fmt.Errorf("%w: requester cannot approve their own request", apperrors.ErrForbidden)
	}

	// Downstream effect runs first so a failed materialization leaves the
	// request PENDING and reviewable again.
	var targetID *string
	switch action.ActionType {
	case domain.ActionRequestBankUserCreation:
		newUserID, err := s.userCreation.MaterializeBankUser(ctx, action.BankID, action.Payload, actor.UserID)
		if err != nil {
			logger.Error("Failed to materialize bank user", slog.String("error", err.Error()), slog.String("pending_action_id", pendingActionID))
			return nil, fmt.Errorf("failed to create requested user: %w", err)
		}
		targetID = &newUserID
	case domain.ActionRequestBankDetailUpdate:
		if err := s.applyBankDetailUpdate(ctx, action, actor.UserID); err != nil {
			return nil, err
		}
		targetID = &action.BankID
	case domain.ActionRequestRoleChange:
		// Role changes are applied by the membership flow reading the approved
		// request; nothing to materialize here.
	}

	now := time.Now().UTC()
	event := pendingActionEvent(action, actor, domain.EventActionApproved, "")
	if err := s.pendingRepo.FinalizeWithTimeline(ctx, pendingActionID, domain.PendingActionApproved, actor.UserID, now, "", targetID, event); err != nil {
		return nil, err
	}

	action.Status = domain.PendingActionApproved
	action.ReviewedByID = &actor.UserID
	action.ReviewedAt = &now
	action.TargetID = targetID
	return action, nil
}

func (s *PendingActionService) Reject(ctx context.Context, actor *domain.AuthUser, pendingActionID string, remarks string) (*domain.PendingAction, error) {
	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionReject, domain.SubjectPendingAction) {
		return nil, apperrors.ErrForbidden
	}
	// Remarks are validated before any read or write.
	if strings.TrimSpace(remarks) == "" {
		return nil, ErrReviewRemarksRequired
	}

	action, err := s.GetAction(ctx, actor, pendingActionID)
	if err != nil {
		return nil, err
	}
	if action.Status.IsTerminal() {
		return nil, fmt.Errorf("request already reviewed: %w", apperrors.ErrInvalidState)
	}

	now := time.Now().UTC()
	event := pendingActionEvent(action, actor, domain.EventActionRejected, remarks)
	if err := s.pendingRepo.FinalizeWithTimeline(ctx, pendingActionID, domain.PendingActionRejected, actor.UserID, now, remarks, nil, event); err != nil {
		return nil, err
	}

	action.Status = domain.PendingActionRejected
	action.ReviewedByID = &actor.UserID
	action.ReviewedAt = &now
	action.ReviewRemarks = remarks
	return action, nil
}

// Cancel withdraws a pending request. Only the original requester or a holder
// of the cancel capability may do so.
func (s *PendingActionService) Cancel(ctx context.Context, actor *domain.AuthUser, pendingActionID string) (*domain.PendingAction, error) {
	action, err := s.GetAction(ctx, actor, pendingActionID)
	if err != nil {
		return nil, err
	}
	if action.Status.IsTerminal() {
		return nil, fmt.Errorf("request already reviewed: %w", apperrors.ErrInvalidState)
	}

	ability := s.abilitySvc.DefineAbilityFor(actor)
	if action.RequestedByID != actor.UserID && ability.Cannot(domain.ActionCancel, domain.SubjectPendingAction) {
		return nil, apperrors.ErrForbidden
	}

	now := time.Now().UTC()
	event := pendingActionEvent(action, actor, domain.EventActionCancelled, "")
	if err := s.pendingRepo.FinalizeWithTimeline(ctx, pendingActionID, domain.PendingActionCancelled, actor.UserID, now, "", nil, event); err != nil {
		return nil, err
	}

	action.Status = domain.PendingActionCancelled
	action.ReviewedByID = &actor.UserID
	action.ReviewedAt = &now
	return action, nil
}

func (s *PendingActionService) applyBankDetailUpdate(ctx context.Context, action *domain.PendingAction, approverID string) error {
	var payload dto.BankDetailUpdatePayload
	if err := json.Unmarshal(action.Payload, &payload); err != nil {
		return fmt.Errorf("%w: malformed bank detail payload", apperrors.ErrValidation)
	}

	bank, err := s.bankReader.FindBankByID(ctx, action.BankID)
	if err != nil {
		return fmt.Errorf("failed to load bank for detail update: %w", err)
	}
	if payload.Name != nil {
		bank.Name = *payload.Name
	}
	if payload.OfficialEmail != nil {
		bank.OfficialEmail = *payload.OfficialEmail
	}
	if payload.ContactNumber != nil {
		bank.ContactNumber = *payload.ContactNumber
	}
	bank.LastUpdatedAt = time.Now().UTC()
	bank.LastUpdatedBy = approverID

	if err := s.bankRepo.UpdateBank(ctx, *bank); err != nil {
		return fmt.Errorf("failed to apply bank detail update: %w", err)
	}
	return nil
}

func pendingActionEvent(action *domain.PendingAction, actor *domain.AuthUser, eventType domain.TimelineEventType, remarks string) domain.TimelineEvent {
	return domain.TimelineEvent{
		TimelineEventID: uuid.NewString(),
		EntityType:      domain.EntityTypePendingAction,
		EntityID:        action.PendingActionID,
		EventType:       eventType,
		ActorUserID:     actor.UserID,
		ActorName:       actor.Name,
		ActorRole:       actor.CurrentRole,
		Remarks:         remarks,
		CreatedAt:       time.Now().UTC(),
	}
}
