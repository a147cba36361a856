package schedule

import (
	"verde/internal/ledger"
	"verde/internal/models"
)

// DefaultPaymentPrefix is prepended to the description of realized schedules.
const DefaultPaymentPrefix = "Payment: "

// Realize builds the transaction a payment of s produces, dated today.
func Realize(s models.Schedule, id, today, prefix string) models.Transaction {
	tx := models.Transaction{
		ID:          id,
		Description: prefix + s.Description,
		Amount:      s.Amount,
		Date:        today,
		CategoryID:  s.CategoryID,
		AccountID:   s.AccountID,
		Type:        s.Type,
	}
	if s.ToAccountID != nil {
		to := *s.ToAccountID
		tx.ToAccountID = &to
	}
	tx.Normalize()
	return tx
}

// Pay realizes the schedule with scheduleID through the ledger and then
// advances or removes it. It returns the posted transaction and false when
// the schedule does not exist. On error state is left unchanged.
func Pay(state *models.State, scheduleID, txID, today, prefix string) (models.Transaction, bool, error) {
	i := state.ScheduleIndex(scheduleID)
	if i < 0 {
		return models.Transaction{}, false, nil
	}
	s := state.Schedules[i]

	next, keep, err := Advance(s.Date, s.Frequency)
	if err != nil {
		return models.Transaction{}, false, err
	}

	tx := Realize(s, txID, today, prefix)
	ledger.Create(state, tx)

	if keep {
		state.Schedules[i].Date = next
	} else {
		state.Schedules = append(state.Schedules[:i:i], state.Schedules[i+1:]...)
	}
	return tx, true, nil
}
