package domain_test

import (
	"testing"

	"github.com/nikitph/los-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestAbility_DefaultDeny(t *testing.T) {
	empty := domain.NewAbility()

	// Without an explicit or wildcard rule, everything is denied.
	assert.False(t, empty.Can(domain.ActionView, domain.SubjectLoanApplication))
	assert.False(t, empty.Can(domain.ActionManage, domain.SubjectAll))
	assert.True(t, empty.Cannot(domain.ActionCreate, domain.SubjectApplicant))

	var nilAbility *domain.Ability
	assert.False(t, nilAbility.Can(domain.ActionView, domain.SubjectBank))
}

func TestAbility_ExactSubjectMatch(t *testing.T) {
	ability := domain.NewAbility(
		domain.AbilityRule{Action: domain.ActionView, Subject: domain.SubjectLoanApplication},
		domain.AbilityRule{Action: domain.ActionCreate, Subject: domain.SubjectVerification},
	)

	assert.True(t, ability.Can(domain.ActionView, domain.SubjectLoanApplication))
	assert.False(t, ability.Can(domain.ActionUpdate, domain.SubjectLoanApplication))
	assert.False(t, ability.Can(domain.ActionView, domain.SubjectVerification))
	assert.True(t, ability.Can(domain.ActionCreate, domain.SubjectVerification))
}

func TestAbility_Wildcards(t *testing.T) {
	admin := domain.NewAbility(
		domain.AbilityRule{Action: domain.ActionManage, Subject: domain.SubjectAll},
	)

	assert.True(t, admin.Can(domain.ActionDelete, domain.SubjectBank))
	assert.True(t, admin.Can(domain.ActionApprove, domain.SubjectPendingAction))

	// manage on a single subject matches every action on that subject only.
	officer := domain.NewAbility(
		domain.AbilityRule{Action: domain.ActionManage, Subject: domain.SubjectLoanApplication},
	)
	assert.True(t, officer.Can(domain.ActionReview, domain.SubjectLoanApplication))
	assert.False(t, officer.Can(domain.ActionReview, domain.SubjectPendingAction))
}

func TestAbility_DenyOverridesGrant(t *testing.T) {
	ability := domain.NewAbility(
		domain.AbilityRule{Action: domain.ActionManage, Subject: domain.SubjectLoanApplication},
		domain.AbilityRule{Action: domain.ActionDelete, Subject: domain.SubjectLoanApplication, Inverted: true},
	)

	assert.True(t, ability.Can(domain.ActionUpdate, domain.SubjectLoanApplication))
	assert.False(t, ability.Can(domain.ActionDelete, domain.SubjectLoanApplication))
}

func TestAbility_FieldRestrictions(t *testing.T) {
	ability := domain.NewAbility(
		domain.AbilityRule{
			Action:  domain.ActionUpdate,
			Subject: domain.SubjectLoanApplication,
			Fields:  []string{"remarks", "assignedLoanOfficerID"},
		},
	)

	assert.True(t, ability.CanField(domain.ActionUpdate, domain.SubjectLoanApplication, "remarks"))
	assert.False(t, ability.CanField(domain.ActionUpdate, domain.SubjectLoanApplication, "amountRequested"))

	// A rule without a field list covers all fields.
	full := domain.NewAbility(
		domain.AbilityRule{Action: domain.ActionUpdate, Subject: domain.SubjectApplicant},
	)
	assert.True(t, full.CanField(domain.ActionUpdate, domain.SubjectApplicant, "addressLine"))
}
