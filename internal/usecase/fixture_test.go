package usecase

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/override"
	"github.com/polkiloo/mentorcrm/internal/settings"
	"github.com/polkiloo/mentorcrm/internal/state"
	"github.com/polkiloo/mentorcrm/internal/test"
)

var (
	admin    = model.Operator{ID: "1", Email: "admin@school.uz", Name: "Aziza", Surname: "Karimova", Role: model.RoleAdmin, Password: "secret"}
	operator = model.Operator{ID: "2", Email: "op@school.uz", Name: "Bekzod", Surname: "Tursunov", Role: model.RoleOperator, Password: "123456"}
	other    = model.Operator{ID: "3", Email: "third@school.uz", Name: "Dilnoza", Surname: "Ergasheva", Role: model.RoleOperator, Password: "123456"}

	fixedNow = time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)

	testEndpoints = model.Endpoints{
		Operators:    "https://store/operators",
		Customers:    "https://store/customers",
		StatusLog:    "https://store/status",
		Products:     "https://store/products",
		Orders:       "https://store/orders",
		OrderHistory: "https://store/history",
		Tasks:        "https://store/tasks",
	}

	testDelays = Delays{Status: 5 * time.Second, Task: 2 * time.Second}
)

type fixture struct {
	store     *test.RecordStoreStub
	state     *state.State
	scheduler *test.SchedulerStub
	settings  *settings.Store
	gw        *Gateway
}

func newFixture(t *testing.T, endpoints model.Endpoints) *fixture {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	st := state.New(override.New(5, model.OrderStatus.Equal), logger)
	st.ApplySnapshot(seedSnapshot())

	f := &fixture{
		store:     &test.RecordStoreStub{},
		state:     st,
		scheduler: &test.SchedulerStub{},
		settings:  settings.NewStore(&test.SettingsRepositoryStub{}, endpoints),
	}
	f.gw = NewGateway(f.store, st, f.settings, f.scheduler, testDelays, time.UTC, logger)
	f.gw.now = func() time.Time { return fixedNow }
	return f
}

func seedSnapshot() model.Snapshot {
	return model.Snapshot{
		Operators: []model.Operator{admin, operator, other},
		Customers: []model.Customer{
			{ID: "C1", Name: "Sardor", Surname: "Aliyev", Phone: "901112233", Stage: "Aloqa o'rnatildi", OperatorID: "2", OperatorName: "Bekzod Tursunov"},
			{ID: "C2", Name: "Malika", Phone: "903334455", OperatorID: "0"},
			{ID: "C3", Name: "Jasur", Phone: "905556677", Stage: model.StageNew},
			{ID: "C4", Name: "Nodira", Phone: "907778899", Stage: model.StageNew},
			{ID: "C5", Name: "Otabek", Phone: "909990011", Stage: model.StageNew},
			{ID: "C6", Name: "Lola", Phone: "911112233", Stage: model.StageNew},
		},
		Products: []model.Product{
			{ID: "1", Name: "IELTS", Duration: "6 oy", MonthlyPrice: 500000, TotalPrice: 3000000, Category: "Kurs"},
			{ID: "2", Name: "Python", TotalPrice: 1200000, Category: "Kurs"},
		},
		Orders: []model.Order{
			{ID: "7", OperatorID: "2", CustomerID: "C1", ProductID: "1", ProductName: "IELTS", UnitPrice: 500000, Quantity: 1, TotalAmount: 3000000, Status: model.OrderStatusPending, StartDate: "2025-03-15", History: []model.OrderHistoryEntry{}},
			{ID: "8", OperatorID: "1", CustomerID: "C2", ProductID: "2", ProductName: "Python", UnitPrice: 1200000, Quantity: 1, TotalAmount: 1200000, Status: model.OrderStatusPending, Note: "qayta qo'ng'iroq", StartDate: "2025-03-20", History: []model.OrderHistoryEntry{}},
		},
		Tasks: []model.CustomerTask{
			{ID: "4", CustomerID: "C1", OperatorID: "2", OperatorName: "Bekzod Tursunov", CreatorID: "1", CreatorName: "Aziza Karimova", Text: "Qo'ng'iroq qilish", Deadline: "2025-03-11 10:00", Status: model.TaskStatusNew, CreatedAt: "09.03.2025 09:00:00"},
		},
	}
}

func (f *fixture) rows(t *testing.T, call int) []map[string]any {
	t.Helper()
	calls := f.store.Calls()
	if call >= len(calls) {
		t.Fatalf("expected at least %d writes, got %d", call+1, len(calls))
	}
	return test.PayloadRows(calls[call].Payload)
}
