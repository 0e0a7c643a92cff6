package stats

import (
	"testing"
	"time"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
)

var now = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

var (
	admin    = model.Operator{ID: "1", Name: "Admin", Role: model.RoleAdmin}
	operator = model.Operator{ID: "2", Name: "Ali", Surname: "Valiyev", Role: model.RoleOperator}
	other    = model.Operator{ID: "3", Name: "Vali", Role: model.RoleOperator}
)

func fixture() model.Snapshot {
	return model.Snapshot{
		Operators: []model.Operator{admin, operator, other},
		Customers: []model.Customer{
			{ID: "C1", OperatorID: "2"},
			{ID: "C2", OperatorID: "3"},
			{ID: "C3", OperatorID: "2"},
			{ID: "C4", OperatorID: "0"},
			{ID: "C5"},
		},
		Products: []model.Product{
			{ID: "1", Name: "IELTS", Category: "Til"},
			{ID: "2", Name: "Python", Category: "IT"},
		},
		Orders: []model.Order{
			{ID: "1", CustomerID: "C1", OperatorID: "2", ProductName: "IELTS", TotalAmount: 3000, Status: model.OrderStatusContracted, CreatedAt: "10.03.2025 09:00:00", StartDate: "2025-03-12"},
			{ID: "2", CustomerID: "C1", OperatorID: "2", ProductName: "Python", TotalAmount: 1000, Status: "kutilmoqda", CreatedAt: "08.03.2025 10:00:00", StartDate: "2025-03-01"},
			{ID: "3", CustomerID: "C2", OperatorID: "3", ProductName: "IELTS", TotalAmount: 2000, Status: model.OrderStatusCancelled, CreatedAt: "15.02.2025", StartDate: "2025-03-11"},
			{ID: "4", CustomerID: "C2", OperatorID: "3", ProductName: "Unknown", TotalAmount: 500, Status: "", CreatedAt: "not a date", StartDate: "2025-03-20"},
		},
	}
}

func TestParseRange(t *testing.T) {
	cases := map[string]Range{"today": RangeToday, " WEEK ": RangeWeek, "month": RangeMonth, "custom": RangeCustom, "": RangeAll, "year": RangeAll}
	for in, want := range cases {
		if got := ParseRange(in); got != want {
			t.Fatalf("ParseRange(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestSalesAllForAdmin(t *testing.T) {
	s := Sales(fixture(), Filter{Viewer: admin}, now)

	if s.TotalSales != 6500 || s.Orders != 4 || s.Customers != 2 {
		t.Fatalf("unexpected totals: %+v", s)
	}
	if s.AverageCheck != 1625 {
		t.Fatalf("expected average check 1625, got %v", s.AverageCheck)
	}
	if s.Efficiency != 25 {
		t.Fatalf("expected efficiency 25, got %v", s.Efficiency)
	}
	pending := s.ByStatus[0]
	if pending.Status != model.OrderStatusPending || pending.Count != 2 || pending.Sum != 1500 {
		t.Fatalf("expected blank and lowercase statuses to count as pending, got %+v", pending)
	}
	if len(s.Daily) != 3 || s.Daily[0].Date != "15.02" || s.Daily[2].Date != "10.03" {
		t.Fatalf("unexpected daily series: %+v", s.Daily)
	}
	if s.TopProducts[0].Name != "IELTS" || s.TopProducts[0].Sum != 5000 || s.TopProducts[0].Count != 2 {
		t.Fatalf("unexpected top product: %+v", s.TopProducts[0])
	}
}

func TestSalesScopesOperatorToOwnOrders(t *testing.T) {
	s := Sales(fixture(), Filter{Viewer: operator, OperatorIDs: []string{"3"}}, now)
	if s.Orders != 2 || s.TotalSales != 4000 {
		t.Fatalf("expected only own orders, got %+v", s)
	}
}

func TestSalesAdminOperatorSelection(t *testing.T) {
	s := Sales(fixture(), Filter{Viewer: admin, OperatorIDs: []string{"3"}}, now)
	if s.Orders != 2 || s.TotalSales != 2500 {
		t.Fatalf("expected operator 3 orders, got %+v", s)
	}
}

func TestSalesRanges(t *testing.T) {
	cases := []struct {
		name   string
		filter Filter
		orders int
	}{
		{"today", Filter{Range: RangeToday}, 1},
		{"week", Filter{Range: RangeWeek}, 2},
		{"month", Filter{Range: RangeMonth}, 2},
		{"custom", Filter{Range: RangeCustom, From: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), To: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)}, 1},
		{"custom open start", Filter{Range: RangeCustom}, 4},
		{"status", Filter{Status: model.OrderStatusCancelled}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.filter.Viewer = admin
			if got := Sales(fixture(), tc.filter, now).Orders; got != tc.orders {
				t.Fatalf("expected %d orders, got %d", tc.orders, got)
			}
		})
	}
}

func TestSalesEmpty(t *testing.T) {
	s := Sales(model.Snapshot{}, Filter{Viewer: admin}, now)
	if s.Orders != 0 || s.AverageCheck != 0 || s.Efficiency != 0 || s.Daily == nil || s.TopProducts == nil {
		t.Fatalf("unexpected empty summary: %+v", s)
	}
}

func TestSalesDailySeriesKeepsLastBuckets(t *testing.T) {
	snap := model.Snapshot{}
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 40; i++ {
		snap.Orders = append(snap.Orders, model.Order{
			ID:          string(rune('A' + i)),
			TotalAmount: 1,
			CreatedAt:   start.AddDate(0, 0, i).Format("02.01.2006 15:04:05"),
		})
	}
	daily := Sales(snap, Filter{Viewer: admin}, now).Daily
	if len(daily) != dailyBuckets {
		t.Fatalf("expected %d buckets, got %d", dailyBuckets, len(daily))
	}
	if daily[len(daily)-1].Date != "09.02" {
		t.Fatalf("expected newest day last, got %q", daily[len(daily)-1].Date)
	}
}

func TestOperatorRanking(t *testing.T) {
	ranks := OperatorRanking(fixture(), Filter{Viewer: operator, OperatorIDs: []string{"2"}}, now)
	if len(ranks) != 3 {
		t.Fatalf("expected every operator, got %+v", ranks)
	}
	if ranks[0].OperatorID != "2" || ranks[0].TotalSales != 4000 || ranks[0].Customers != 2 || ranks[0].Name != "Ali Valiyev" {
		t.Fatalf("unexpected leader: %+v", ranks[0])
	}
	if ranks[1].OperatorID != "3" || ranks[1].TotalSales != 2500 {
		t.Fatalf("unexpected runner-up: %+v", ranks[1])
	}
}

func TestOperatorRankingRespectsWindow(t *testing.T) {
	ranks := OperatorRanking(fixture(), Filter{Range: RangeToday}, now)
	if ranks[0].OperatorID != "2" || ranks[0].TotalSales != 3000 {
		t.Fatalf("unexpected leader: %+v", ranks[0])
	}
	if ranks[1].TotalSales != 0 {
		t.Fatalf("expected no sales today for others, got %+v", ranks[1])
	}
}

func TestInactiveCustomersForAdmin(t *testing.T) {
	res := InactiveCustomers(fixture(), admin)
	if res.Total != 3 {
		t.Fatalf("expected three inactive customers, got %d", res.Total)
	}
	if len(res.ByOperator["0"]) != 2 || len(res.ByOperator["2"]) != 1 {
		t.Fatalf("unexpected grouping: %+v", res.ByOperator)
	}
	if len(res.Counts) != 3 || res.Counts[0].OperatorID != "2" || res.Counts[0].Count != 1 {
		t.Fatalf("unexpected counts: %+v", res.Counts)
	}
}

func TestInactiveCustomersForOperator(t *testing.T) {
	res := InactiveCustomers(fixture(), operator)
	if res.Total != 1 || res.ByOperator["2"][0].ID != "C3" {
		t.Fatalf("expected only own inactive customer, got %+v", res)
	}
	if len(res.Counts) != 1 {
		t.Fatalf("expected own count only, got %+v", res.Counts)
	}
}

func TestUrgentOrders(t *testing.T) {
	snap := fixture()
	snap.Orders = append(snap.Orders, model.Order{ID: "5", OperatorID: "2", Status: model.OrderStatusPending, StartDate: "12.03.2025 18:00"})

	got := UrgentOrders(snap, admin, now)
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "5" {
		t.Fatalf("expected past and near open orders sorted by start, got %+v", got)
	}

	got = UrgentOrders(fixture(), other, now)
	if len(got) != 0 {
		t.Fatalf("expected cancelled and distant orders excluded, got %+v", got)
	}
}

func TestTaskBoard(t *testing.T) {
	snap := fixture()
	snap.Tasks = []model.CustomerTask{
		{ID: "1", CustomerID: "C1", Status: model.TaskStatusNew, Deadline: "2025-03-10 15:30"},
		{ID: "2", CustomerID: "C1", Status: model.TaskStatusNew, Deadline: "2025-03-10 10:00"},
		{ID: "3", CustomerID: "C2", Status: model.TaskStatusNew, Deadline: "2025-03-10 20:00"},
		{ID: "10", CustomerID: "C3", Status: model.TaskStatusDone, Deadline: "2025-03-01 10:00"},
		{ID: "5", CustomerID: "C1", Status: model.TaskStatusNew, Deadline: "2025-03-11 09:00"},
	}

	board := TaskBoard(snap, admin, now)
	if len(board.Tasks) != 5 || board.Tasks[0].ID != "10" || board.Tasks[4].ID != "1" {
		t.Fatalf("expected tasks sorted by id desc, got %+v", board.Tasks)
	}
	if len(board.Urgent) != 1 || board.Urgent[0].ID != "1" {
		t.Fatalf("unexpected urgent tasks: %+v", board.Urgent)
	}
	if len(board.Today) != 3 {
		t.Fatalf("expected three tasks due today, got %+v", board.Today)
	}
	for _, view := range board.Tasks {
		switch view.ID {
		case "2":
			if !view.Overdue || view.DisplayStatus != model.TaskStatusOverdue {
				t.Fatalf("expected task 2 overdue, got %+v", view)
			}
		case "10":
			if view.Overdue || view.DisplayStatus != model.TaskStatusDone {
				t.Fatalf("expected done task to keep its status, got %+v", view)
			}
		}
	}
}

func TestTaskBoardOperatorScope(t *testing.T) {
	snap := fixture()
	snap.Tasks = []model.CustomerTask{
		{ID: "1", CustomerID: "C1", Status: model.TaskStatusNew},
		{ID: "2", CustomerID: "C2", Status: model.TaskStatusNew, OperatorID: "2"},
	}
	board := TaskBoard(snap, operator, now)
	if len(board.Tasks) != 1 || board.Tasks[0].ID != "1" {
		t.Fatalf("expected only tasks of own customers, got %+v", board.Tasks)
	}
	if len(board.Urgent) != 0 || len(board.Today) != 0 {
		t.Fatalf("expected tasks without deadline outside urgent lists")
	}
}

func TestReports(t *testing.T) {
	r := Reports(fixture())

	want := map[string]float64{"Boshqa": 500, "IT": 1000, "Til": 5000}
	if len(r.ByCategory) != len(want) {
		t.Fatalf("unexpected categories: %+v", r.ByCategory)
	}
	for _, b := range r.ByCategory {
		if want[b.Name] != b.Value {
			t.Fatalf("category %q: expected %v, got %v", b.Name, want[b.Name], b.Value)
		}
	}

	counts := map[string]float64{}
	for _, b := range r.ByStatus {
		counts[b.Name] = b.Value
	}
	if counts[string(model.OrderStatusPending)] != 1 || counts["kutilmoqda"] != 1 || counts[string(model.OrderStatusCancelled)] != 1 {
		t.Fatalf("unexpected status counts: %+v", r.ByStatus)
	}

	if len(r.TopProducts) != 3 || r.TopProducts[0].Name != "IELTS" {
		t.Fatalf("unexpected top products: %+v", r.TopProducts)
	}
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("10.03.2025 9:05", time.UTC)
	if !ok || !got.Equal(time.Date(2025, 3, 10, 9, 5, 0, 0, time.UTC)) {
		t.Fatalf("unexpected parse result %v %v", got, ok)
	}
	if _, ok := ParseDate("", time.UTC); ok {
		t.Fatalf("expected empty value to fail")
	}
}
