package services

import (
	"errors"
	"fmt"
	"strings"

	apperrors "verde/internal/errors"
	"verde/internal/models"
)

func invalid(msg string) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, msg)
}

func validateDate(date string) error {
	if _, err := models.ParseDate(date); err != nil {
		return apperrors.ErrInvalidDate
	}
	return nil
}

// validatePosting checks the fields shared by transactions and schedules.
func validatePosting(typ models.TransactionType, amountNegative bool, categoryID, accountID, toAccountID, date string) error {
	if !typ.Valid() {
		return apperrors.ErrInvalidTransactionType
	}
	// System categories belong to transfers and adjustments only.
	if _, system := models.SystemCategory(categoryID); system &&
		typ != models.TransactionTypeTransfer && typ != models.TransactionTypeAdjustment {
		return invalid("category_id is required")
	}
	if strings.TrimSpace(accountID) == "" {
		return invalid("account_id is required")
	}
	if amountNegative && typ != models.TransactionTypeAdjustment {
		return apperrors.ErrNegativeAmount
	}
	if typ == models.TransactionTypeTransfer {
		if toAccountID == "" {
			return apperrors.ErrMissingDestination
		}
		if toAccountID == accountID {
			return apperrors.ErrSameAccountTransfer
		}
	}
	return validateDate(date)
}

func validateTransaction(tx models.Transaction) error {
	return validatePosting(tx.Type, tx.Amount.IsNegative(), tx.CategoryID, tx.AccountID, tx.Destination(), tx.Date)
}

func validateSchedule(s models.Schedule) error {
	if !s.Frequency.Valid() {
		return apperrors.ErrInvalidFrequency
	}
	if strings.TrimSpace(s.Description) == "" {
		return invalid("description is required")
	}
	to := ""
	if s.ToAccountID != nil {
		to = *s.ToAccountID
	}
	return validatePosting(s.Type, s.Amount.IsNegative(), s.CategoryID, s.AccountID, to, s.Date)
}

func validateCategory(s *models.State, c models.Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return invalid("name is required")
	}
	if !c.Type.Valid() {
		return invalid("type must be income or expense")
	}
	if c.ParentID == nil {
		return nil
	}
	if *c.ParentID == c.ID {
		return apperrors.ErrSelfParentCategory
	}
	i := s.CategoryIndex(*c.ParentID)
	if i < 0 {
		return apperrors.WithMessage(apperrors.ErrCategoryNotFound, "Parent category not found")
	}
	if s.Categories[i].ParentID != nil {
		return invalid("parent must be a top-level category")
	}
	return nil
}

func validateAccount(a models.Account) error {
	if strings.TrimSpace(a.Name) == "" {
		return invalid("name is required")
	}
	if !a.Type.Valid() {
		return invalid("type must be bank or credit")
	}
	return nil
}

func validateBudget(b models.Budget) error {
	if strings.TrimSpace(b.CategoryID) == "" {
		return invalid("category_id is required")
	}
	if !b.Limit.IsPositive() {
		return apperrors.ErrInvalidLimit
	}
	return nil
}

func validateInvestment(inv models.Investment) error {
	if strings.TrimSpace(inv.Name) == "" {
		return invalid("name is required")
	}
	if !inv.Type.Valid() {
		return invalid("unsupported investment type")
	}
	if inv.Amount.IsNegative() {
		return apperrors.ErrNegativeAmount
	}
	return nil
}

func validateGoal(g models.Goal) error {
	if strings.TrimSpace(g.Name) == "" {
		return invalid("name is required")
	}
	if !g.TargetAmount.IsPositive() {
		return invalid("target_amount must be greater than zero")
	}
	if g.CurrentAmount.IsNegative() {
		return apperrors.ErrNegativeAmount
	}
	if g.Deadline != "" {
		return validateDate(g.Deadline)
	}
	return nil
}

// recordError prefixes a batch validation error with the 1-based record
// number. Single-record batches return err unchanged.
func recordError(i, n int, err error) error {
	var appErr *apperrors.AppError
	if n == 1 || !errors.As(err, &appErr) {
		return err
	}
	return apperrors.WithMessage(appErr, fmt.Sprintf("record %d: %s", i+1, appErr.Message))
}
