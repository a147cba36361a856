package services

import (
	"context"
	"testing"

	"verde/internal/events"
	"verde/internal/models"
	"verde/internal/testutil"
)

func TestAddAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		f, _ := newTestFinance(t, testutil.NewState())

		acc, err := f.AddAccount(ctx, models.Account{Name: "Wallet", Type: models.AccountTypeBank, Balance: testutil.Money("42.10")})
		testutil.AssertNoError(t, err)

		if acc.ID != "acc-1" {
			t.Errorf("expected generated id acc-1, got %s", acc.ID)
		}
		testutil.AssertDecimal(t, balanceOf(t, f, acc.ID), "42.10")
	})

	t.Run("invalid_type", func(t *testing.T) {
		f, _ := newTestFinance(t, testutil.NewState())

		_, err := f.AddAccount(ctx, models.Account{Name: "Wallet", Type: "cash"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("missing_name", func(t *testing.T) {
		f, _ := newTestFinance(t, testutil.NewState())

		_, err := f.AddAccount(ctx, models.Account{Type: models.AccountTypeBank})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("rename", func(t *testing.T) {
		f, _ := newTestFinance(t, testutil.NewState())

		name := "Main"
		testutil.AssertNoError(t, f.UpdateAccount(ctx, testutil.AccountChecking, models.AccountPatch{Name: &name}))

		acc, err := f.GetAccount(testutil.AccountChecking)
		testutil.AssertNoError(t, err)
		if acc.Name != "Main" {
			t.Errorf("expected name Main, got %s", acc.Name)
		}
		testutil.AssertDecimal(t, acc.Balance, "1000")
	})

	t.Run("balance_posts_adjustment", func(t *testing.T) {
		f, _ := newTestFinance(t, testutil.NewState())

		var names []string
		f.Bus().Subscribe(func(_ context.Context, e events.Event) { names = append(names, e.Name()) })

		name := "Main"
		target := testutil.Money("1200")
		testutil.AssertNoError(t, f.UpdateAccount(ctx, testutil.AccountChecking, models.AccountPatch{Name: &name, Balance: &target}))

		testutil.AssertDecimal(t, balanceOf(t, f, testutil.AccountChecking), "1200")
		txs := f.State().Transactions
		if len(txs) != 1 {
			t.Fatalf("expected one adjustment, got %d transactions", len(txs))
		}
		if txs[0].Type != models.TransactionTypeAdjustment || txs[0].AccountID != testutil.AccountChecking {
			t.Errorf("unexpected adjustment %+v", txs[0])
		}
		testutil.AssertDecimal(t, txs[0].Amount, "200")
		if txs[0].Date != "2024-03-10" {
			t.Errorf("expected the adjustment dated today, got %s", txs[0].Date)
		}
		if len(names) < 2 || names[0] != "accounts.updated" || names[1] != "transactions.created" {
			t.Errorf("unexpected events %v", names)
		}

		// Deleting the adjustment restores the previous balance.
		testutil.AssertNoError(t, f.DeleteTransaction(ctx, txs[0].ID))
		testutil.AssertDecimal(t, balanceOf(t, f, testutil.AccountChecking), "1000")
	})

	t.Run("unchanged_patch_skips_commit", func(t *testing.T) {
		f, store := newTestFinance(t, testutil.NewState())

		name := "Checking"
		balance := testutil.Money("1000.00")
		testutil.AssertNoError(t, f.UpdateAccount(ctx, testutil.AccountChecking, models.AccountPatch{Name: &name, Balance: &balance}))
		testutil.AssertNoError(t, f.UpdateAccount(ctx, testutil.AccountChecking, models.AccountPatch{}))

		if store.Saves() != 0 {
			t.Errorf("expected no saves, got %d", store.Saves())
		}
		if n := len(f.State().Transactions); n != 0 {
			t.Errorf("expected no adjustment, got %d transactions", n)
		}
	})

	t.Run("unknown_id", func(t *testing.T) {
		f, store := newTestFinance(t, testutil.NewState())

		name := "Main"
		testutil.AssertNoError(t, f.UpdateAccount(ctx, "acc-nope", models.AccountPatch{Name: &name}))
		if store.Saves() != 0 {
			t.Errorf("expected no saves, got %d", store.Saves())
		}
	})
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	f, _ := newTestFinance(t, testutil.NewState())

	tx, err := f.AddTransaction(ctx, expense("10", "2024-03-01"))
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, f.DeleteAccount(ctx, testutil.AccountChecking))

	_, err = f.GetAccount(testutil.AccountChecking)
	testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")

	// The transaction keeps its dangling reference and resolves to "Unknown".
	stored, err := f.GetTransaction(tx.ID)
	testutil.AssertNoError(t, err)
	if stored.AccountID != testutil.AccountChecking {
		t.Errorf("expected dangling account id to be kept, got %s", stored.AccountID)
	}
	views := f.ListTransactions(TransactionFilter{}, pageAll)
	if views.Data[0].AccountName != "Unknown account" {
		t.Errorf("expected Unknown account, got %q", views.Data[0].AccountName)
	}

	// Deleting a transaction on a missing account does not fail.
	testutil.AssertNoError(t, f.DeleteTransaction(ctx, tx.ID))
}

func TestAdjustBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("records_delta", func(t *testing.T) {
		f, _ := newTestFinance(t, testutil.NewState())

		tx, err := f.AdjustBalance(ctx, testutil.AccountChecking, testutil.Money("750"), "", "")
		testutil.AssertNoError(t, err)

		testutil.AssertDecimal(t, tx.Amount, "-250")
		if tx.Type != models.TransactionTypeAdjustment || tx.CategoryID != models.SystemCategoryAdjustment {
			t.Errorf("expected an adjustment in the system category, got %s/%s", tx.Type, tx.CategoryID)
		}
		if tx.Description != "Balance adjustment" {
			t.Errorf("expected default description, got %q", tx.Description)
		}
		testutil.AssertDecimal(t, balanceOf(t, f, testutil.AccountChecking), "750")
	})

	t.Run("delete_restores_balance", func(t *testing.T) {
		f, _ := newTestFinance(t, testutil.NewState())

		tx, err := f.AdjustBalance(ctx, testutil.AccountCard, testutil.Money("-120.50"), "2024-03-01", "Statement")
		testutil.AssertNoError(t, err)
		testutil.AssertNoError(t, f.DeleteTransaction(ctx, tx.ID))

		testutil.AssertDecimal(t, balanceOf(t, f, testutil.AccountCard), "0")
	})

	t.Run("already_at_target", func(t *testing.T) {
		f, store := newTestFinance(t, testutil.NewState())

		tx, err := f.AdjustBalance(ctx, testutil.AccountChecking, testutil.Money("1000.00"), "", "")
		testutil.AssertNoError(t, err)
		if tx != nil {
			t.Errorf("expected no transaction, got %+v", tx)
		}
		if store.Saves() != 0 {
			t.Errorf("expected no saves, got %d", store.Saves())
		}
	})

	t.Run("unknown_account", func(t *testing.T) {
		f, _ := newTestFinance(t, testutil.NewState())

		_, err := f.AdjustBalance(ctx, "acc-nope", testutil.Money("1"), "", "")
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})
}
