package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// RegisterCustomValidators wires domain enums into gin's binding validator so
// request DTOs can declare them as binding tags. Called once at startup,
// before routes are registered.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("loantype", func(fl validator.FieldLevel) bool {
		return domain.ValidLoanType(domain.LoanType(fl.Field().String()))
	})
	_ = v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
		return domain.ValidUserRole(domain.UserRole(fl.Field().String()))
	})
}
