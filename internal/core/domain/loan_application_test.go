package domain_test

import (
	"testing"

	"github.com/nikitph/los-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestLoanStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.LoanStatus
		to   domain.LoanStatus
		want bool
	}{
		{
			name: "draft to pending officer assignment",
			from: domain.LoanStatusDraft,
			to:   domain.LoanStatusPendingLoanOfficerAssignment,
			want: true,
		},
		{
			name: "draft cannot skip to verification",
			from: domain.LoanStatusDraft,
			to:   domain.LoanStatusPendingVerification,
			want: false,
		},
		{
			name: "officer review to inspector assignment",
			from: domain.LoanStatusPendingLoanOfficerReview,
			to:   domain.LoanStatusPendingInspectorAssignment,
			want: true,
		},
		{
			name: "officer review can reject",
			from: domain.LoanStatusPendingLoanOfficerReview,
			to:   domain.LoanStatusRejected,
			want: true,
		},
		{
			name: "verification in progress to completed",
			from: domain.LoanStatusVerificationInProgress,
			to:   domain.LoanStatusVerificationCompleted,
			want: true,
		},
		{
			name: "verification in progress to failed",
			from: domain.LoanStatusVerificationInProgress,
			to:   domain.LoanStatusVerificationFailed,
			want: true,
		},
		{
			name: "under review to approved",
			from: domain.LoanStatusUnderReview,
			to:   domain.LoanStatusApproved,
			want: true,
		},
		{
			name: "under review to rejected",
			from: domain.LoanStatusUnderReview,
			to:   domain.LoanStatusRejected,
			want: true,
		},
		{
			name: "no backwards transition",
			from: domain.LoanStatusUnderReview,
			to:   domain.LoanStatusDraft,
			want: false,
		},
		{
			name: "applicant can withdraw from any non-terminal state",
			from: domain.LoanStatusPendingVerification,
			to:   domain.LoanStatusRejectedByApplicant,
			want: true,
		},
		{
			name: "approved is terminal",
			from: domain.LoanStatusApproved,
			to:   domain.LoanStatusUnderReview,
			want: false,
		},
		{
			name: "rejected is terminal even for withdrawal",
			from: domain.LoanStatusRejected,
			to:   domain.LoanStatusRejectedByApplicant,
			want: false,
		},
		{
			name: "withdrawn is terminal",
			from: domain.LoanStatusRejectedByApplicant,
			to:   domain.LoanStatusUnderReview,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestLoanStatus_IsTerminal(t *testing.T) {
	assert.True(t, domain.LoanStatusApproved.IsTerminal())
	assert.True(t, domain.LoanStatusRejected.IsTerminal())
	assert.True(t, domain.LoanStatusRejectedByApplicant.IsTerminal())
	assert.False(t, domain.LoanStatusDraft.IsTerminal())
	assert.False(t, domain.LoanStatusVerificationFailed.IsTerminal())
}

func TestValidLoanType(t *testing.T) {
	assert.True(t, domain.ValidLoanType(domain.LoanTypePersonal))
	assert.True(t, domain.ValidLoanType(domain.LoanTypePlotAndHouseConstruction))
	assert.False(t, domain.ValidLoanType(domain.LoanType("BOAT")))
}
