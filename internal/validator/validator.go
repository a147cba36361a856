// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"verde/internal/models"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn adds the custom validators and the decimal type to v.
func RegisterOn(v *validator.Validate) {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	_ = v.RegisterValidation("hex_color", validateHexColor)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("category_type", validateCategoryType)
	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("frequency", validateFrequency)
	_ = v.RegisterValidation("investment_type", validateInvestmentType)
	_ = v.RegisterValidation("plan", validatePlan)
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("year_month", validateYearMonth)
}

// decimalValue lets numeric tags such as gt=0 and min=0 apply to decimals.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return nil
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).Valid()
}

func validateCategoryType(fl validator.FieldLevel) bool {
	return models.CategoryType(fl.Field().String()).Valid()
}

func validateAccountType(fl validator.FieldLevel) bool {
	return models.AccountType(fl.Field().String()).Valid()
}

func validateFrequency(fl validator.FieldLevel) bool {
	return models.Frequency(fl.Field().String()).Valid()
}

func validateInvestmentType(fl validator.FieldLevel) bool {
	return models.InvestmentType(fl.Field().String()).Valid()
}

func validatePlan(fl validator.FieldLevel) bool {
	return models.Plan(fl.Field().String()).Valid()
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}

func validateYearMonth(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.MonthLayout, fl.Field().String())
	return err == nil
}
