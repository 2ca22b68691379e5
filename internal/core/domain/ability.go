package domain

// AbilityAction is a verb a capability rule can grant.
type AbilityAction string

const (
	ActionManage  AbilityAction = "manage" // Wildcard: matches every action
	ActionView    AbilityAction = "view"
	ActionCreate  AbilityAction = "create"
	ActionUpdate  AbilityAction = "update"
	ActionDelete  AbilityAction = "delete"
	ActionSubmit  AbilityAction = "submit"
	ActionAssign  AbilityAction = "assign"
	ActionReview  AbilityAction = "review"
	ActionVerify  AbilityAction = "verify"
	ActionApprove AbilityAction = "approve"
	ActionReject  AbilityAction = "reject"
	ActionCancel  AbilityAction = "cancel"
)

// AbilitySubject is the entity a capability rule applies to.
type AbilitySubject string

const (
	SubjectAll             AbilitySubject = "all" // Wildcard: matches every subject
	SubjectBank            AbilitySubject = "Bank"
	SubjectBankMembership  AbilitySubject = "BankMembership"
	SubjectApplicant       AbilitySubject = "Applicant"
	SubjectLoanApplication AbilitySubject = "LoanApplication"
	SubjectVerification    AbilitySubject = "Verification"
	SubjectIncome          AbilitySubject = "Income"
	SubjectLoanObligation  AbilitySubject = "LoanObligation"
	SubjectDocument        AbilitySubject = "Document"
	SubjectTimeline        AbilitySubject = "Timeline"
	SubjectPendingAction   AbilitySubject = "PendingAction"
)

// AbilityRule grants (or, when Inverted, revokes) action on subject, optionally
// restricted to a field list.
type AbilityRule struct {
	Action   AbilityAction
	Subject  AbilitySubject
	Fields   []string // nil means all fields
	Inverted bool     // deny rule; evaluated after grants
}

// Ability is a computed capability set. It is derived per request from the
// user's roles and bank scope, never persisted, and safe to recompute.
// Absence of a matching rule means deny.
type Ability struct {
	rules []AbilityRule
}

// NewAbility builds an ability from a rule list. An empty rule list grants nothing.
func NewAbility(rules ...AbilityRule) *Ability {
	return &Ability{rules: rules}
}

func ruleMatches(r AbilityRule, action AbilityAction, subject AbilitySubject) bool {
	if r.Subject != SubjectAll && r.Subject != subject {
		return false
	}
	if r.Action != ActionManage && r.Action != action {
		return false
	}
	return true
}

// Can reports whether the ability grants action on subject, ignoring field
// restrictions. Deny rules override grants.
func (a *Ability) Can(action AbilityAction, subject AbilitySubject) bool {
	if a == nil {
		return false
	}
	granted := false
	for _, r := range a.rules {
		if !ruleMatches(r, action, subject) {
			continue
		}
		if r.Inverted {
			return false
		}
		granted = true
	}
	return granted
}

// Cannot is the negation of Can.
func (a *Ability) Cannot(action AbilityAction, subject AbilitySubject) bool {
	return !a.Can(action, subject)
}

// CanField reports whether the ability grants action on a specific field of
// subject. A rule with no field list covers every field.
func (a *Ability) CanField(action AbilityAction, subject AbilitySubject, field string) bool {
	if a == nil {
		return false
	}
	granted := false
	for _, r := range a.rules {
		if !ruleMatches(r, action, subject) {
			continue
		}
		if len(r.Fields) > 0 {
			found := false
			for _, f := range r.Fields {
				if f == field {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		if r.Inverted {
			return false
		}
		granted = true
	}
	return granted
}
