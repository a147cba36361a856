package router_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"verde/internal/database"
	"verde/internal/logger"
	"verde/internal/models"
	"verde/internal/router"
	"verde/internal/services"
	"verde/internal/testutil"
	"verde/internal/validator"
)

const testStateKey = "verde_financas_state"

// testNow is mid-March so that early-March dates fall in the current month.
var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Repo   *database.StateRepository
	Ledger *services.Finance
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(database.Models...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	return db
}

// setupApp creates a full application stack whose ledger state starts as
// testutil.NewState and is persisted to an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	repo := database.NewStateRepository(db, testStateKey)
	if err := repo.Save(context.Background(), testutil.NewState()); err != nil {
		t.Fatalf("failed to store initial state: %v", err)
	}

	return openApp(t, db, repo)
}

// openApp builds a ledger over whatever repo currently holds.
func openApp(t *testing.T, db *gorm.DB, repo *database.StateRepository) *testApp {
	t.Helper()

	ledger, err := services.NewFinance(context.Background(), repo,
		services.WithClock(testutil.FixedClock(testNow)),
		services.WithIDGenerator(testutil.SequentialIDs()),
	)
	if err != nil {
		t.Fatalf("failed to open ledger: %v", err)
	}

	audit := services.NewAuditService(db)
	ledger.Bus().Subscribe(audit.Subscriber())

	r := router.New(router.Services{
		Ledger:    ledger,
		Audit:     audit,
		Snapshots: services.NewNetWorthSnapshotService(db, ledger),
		Now:       testutil.FixedClock(testNow),
	})

	return &testApp{DB: db, Repo: repo, Ledger: ledger, Router: r}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// mustRequest makes a request and fails the test unless it returns want.
func (app *testApp) mustRequest(t *testing.T, method, path, body string, want int) map[string]interface{} {
	t.Helper()
	rec := app.request(method, path, body)
	if rec.Code != want {
		t.Fatalf("%s %s: expected %d, got %d: %s", method, path, want, rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// balance fetches an account balance as its decimal string.
func (app *testApp) balance(t *testing.T, accountID string) string {
	t.Helper()
	result := app.mustRequest(t, "GET", "/api/v1/accounts/"+accountID, "", http.StatusOK)
	return result["account"].(map[string]interface{})["balance"].(string)
}

// storedState reads the persisted document back from the database.
func (app *testApp) storedState(t *testing.T) *models.State {
	t.Helper()
	state, err := app.Repo.Load(context.Background())
	if err != nil {
		t.Fatalf("failed to load stored state: %v", err)
	}
	return state
}
