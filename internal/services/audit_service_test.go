package services

import (
	"context"
	"testing"

	"verde/internal/models"
	"verde/internal/pagination"
	"verde/internal/testutil"
)

func TestAuditService(t *testing.T) {
	ctx := context.Background()

	t.Run("records_committed_mutations", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		audit := NewAuditService(db)
		f, _ := newTestFinance(t, testutil.NewState())
		f.Bus().Subscribe(audit.Subscriber())

		tx, err := f.AddTransaction(ctx, expense("10", "2024-03-01"))
		testutil.AssertNoError(t, err)
		testutil.AssertNoError(t, f.DeleteTransaction(ctx, tx.ID))

		page, err := audit.ListAuditLogs(ctx, "transactions", pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 2 {
			t.Fatalf("expected 2 transaction entries, got %d", page.TotalItems)
		}
		for _, entry := range page.Data {
			if entry.ResourceID != tx.ID {
				t.Errorf("expected resource %s, got %s", tx.ID, entry.ResourceID)
			}
		}

		all, err := audit.ListAuditLogs(ctx, "", pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if all.TotalItems <= page.TotalItems {
			t.Errorf("expected user refresh entries as well, got %d total", all.TotalItems)
		}
	})

	t.Run("failed_commit_is_not_recorded", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		audit := NewAuditService(db)
		f, store := newTestFinance(t, testutil.NewState())
		f.Bus().Subscribe(audit.Subscriber())
		store.FailSaves = true

		_, err := f.AddAccount(ctx, models.Account{Name: "Wallet", Type: models.AccountTypeBank})
		testutil.AssertAppError(t, err, "INTERNAL_ERROR")

		var count int64
		db.Model(&models.AuditLog{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no audit entries, got %d", count)
		}
	})

	t.Run("log_stores_changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		audit := NewAuditService(db)

		audit.Log(ctx, "accounts.updated", "accounts", "acc-1", map[string]any{"name": "Main"})

		var entry models.AuditLog
		testutil.AssertNoError(t, db.First(&entry).Error)
		if entry.Changes != `{"name":"Main"}` {
			t.Errorf("unexpected changes %q", entry.Changes)
		}
		if entry.ID == "" {
			t.Error("expected a generated id")
		}
	})
}
