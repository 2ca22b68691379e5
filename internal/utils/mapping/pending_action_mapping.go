package mapping

import (
	"github.com/nikitph/los-backend/internal/core/domain"
	"github.com/nikitph/los-backend/internal/models"
)

// ToModelPendingAction converts a domain PendingAction to a model PendingAction
func ToModelPendingAction(d domain.PendingAction) models.PendingAction {
	return models.PendingAction{
		PendingActionID: d.PendingActionID,
		BankID:          d.BankID,
		ActionType:      string(d.ActionType),
		Payload:         d.Payload,
		Status:          string(d.Status),
		RequestedByID:   d.RequestedByID,
		RequestedAt:     d.RequestedAt,
		ReviewedByID:    d.ReviewedByID,
		ReviewedAt:      d.ReviewedAt,
		ReviewRemarks:   d.ReviewRemarks,
		TargetModel:     d.TargetModel,
		TargetID:        d.TargetID,
	}
}

// ToDomainPendingAction converts a model PendingAction to a domain PendingAction
func ToDomainPendingAction(m models.PendingAction) domain.PendingAction {
	return domain.PendingAction{
		PendingActionID: m.PendingActionID,
		BankID:          m.BankID,
		ActionType:      domain.PendingActionType(m.ActionType),
		Payload:         m.Payload,
		Status:          domain.PendingActionStatus(m.Status),
		RequestedByID:   m.RequestedByID,
		RequestedAt:     m.RequestedAt,
		ReviewedByID:    m.ReviewedByID,
		ReviewedAt:      m.ReviewedAt,
		ReviewRemarks:   m.ReviewRemarks,
		TargetModel:     m.TargetModel,
		TargetID:        m.TargetID,
	}
}

// ToDomainPendingActionSlice converts a slice of model PendingActions to domain PendingActions
func ToDomainPendingActionSlice(ms []models.PendingAction) []domain.PendingAction {
	ds := make([]domain.PendingAction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPendingAction(m)
	}
	return ds
}
