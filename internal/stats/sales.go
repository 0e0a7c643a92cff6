package stats

import (
	"math"
	"sort"
	"time"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
)

const (
	topSalesProducts = 5
	dailyBuckets     = 31
)

// StatusBucket aggregates orders sharing a status.
type StatusBucket struct {
	Status model.OrderStatus `json:"status"`
	Sum    float64           `json:"sum"`
	Count  int               `json:"count"`
}

// DailyPoint is one day of the sales series.
type DailyPoint struct {
	Date   string  `json:"date"`
	Sales  float64 `json:"sales"`
	Orders int     `json:"orders"`
}

// ProductSales is the revenue produced by one product.
type ProductSales struct {
	Name  string  `json:"name"`
	Sum   float64 `json:"sum"`
	Count int     `json:"count"`
}

// SalesSummary is the dashboard headline block.
type SalesSummary struct {
	TotalSales   float64        `json:"totalSales"`
	Orders       int            `json:"orders"`
	Customers    int            `json:"customers"`
	AverageCheck float64        `json:"averageCheck"`
	Efficiency   float64        `json:"efficiency"`
	ByStatus     []StatusBucket `json:"byStatus"`
	Daily        []DailyPoint   `json:"daily"`
	TopProducts  []ProductSales `json:"topProducts"`
}

// Sales summarises the orders matching f.
func Sales(snapshot model.Snapshot, f Filter, now time.Time) SalesSummary {
	orders := filterOrders(snapshot.Orders, f, now)

	summary := SalesSummary{
		ByStatus:    make([]StatusBucket, len(model.OrderStatuses)),
		Daily:       []DailyPoint{},
		TopProducts: []ProductSales{},
	}
	for i, status := range model.OrderStatuses {
		summary.ByStatus[i].Status = status
	}

	orderIDs := make(map[string]struct{}, len(orders))
	customerIDs := make(map[string]struct{}, len(orders))
	statusIDs := make([]map[string]struct{}, len(model.OrderStatuses))
	for i := range statusIDs {
		statusIDs[i] = make(map[string]struct{})
	}

	type day struct {
		start time.Time
		point DailyPoint
	}
	days := make(map[string]*day)
	products := make(map[string]*ProductSales)

	for _, o := range orders {
		summary.TotalSales += o.TotalAmount
		orderIDs[o.ID] = struct{}{}
		if o.CustomerID != "" {
			customerIDs[o.CustomerID] = struct{}{}
		}

		for i, status := range model.OrderStatuses {
			if o.Status.Equal(status) {
				summary.ByStatus[i].Sum += o.TotalAmount
				statusIDs[i][o.ID] = struct{}{}
			}
		}

		if t := orderTime(o, now.Location()); !t.IsZero() {
			key := t.Format("2006-01-02")
			d, ok := days[key]
			if !ok {
				y, m, dd := t.Date()
				d = &day{start: time.Date(y, m, dd, 0, 0, 0, 0, t.Location()), point: DailyPoint{Date: t.Format("02.01")}}
				days[key] = d
			}
			d.point.Sales += o.TotalAmount
			d.point.Orders++
		}

		name := o.ProductName
		if name == "" {
			name = model.DefaultProductName
		}
		p, ok := products[name]
		if !ok {
			p = &ProductSales{Name: name}
			products[name] = p
		}
		p.Sum += o.TotalAmount
		p.Count++
	}

	for i := range summary.ByStatus {
		summary.ByStatus[i].Count = len(statusIDs[i])
	}
	summary.Orders = len(orderIDs)
	summary.Customers = len(customerIDs)
	if summary.Orders > 0 {
		summary.AverageCheck = math.Round(summary.TotalSales / float64(summary.Orders))
		contracted := summary.ByStatus[indexOfStatus(model.OrderStatusContracted)].Count
		summary.Efficiency = float64(contracted) / float64(summary.Orders) * 100
	}

	series := make([]*day, 0, len(days))
	for _, d := range days {
		series = append(series, d)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].start.Before(series[j].start) })
	if len(series) > dailyBuckets {
		series = series[len(series)-dailyBuckets:]
	}
	for _, d := range series {
		summary.Daily = append(summary.Daily, d.point)
	}

	summary.TopProducts = topProducts(products, topSalesProducts)
	return summary
}

func indexOfStatus(status model.OrderStatus) int {
	for i, s := range model.OrderStatuses {
		if s == status {
			return i
		}
	}
	return -1
}

func topProducts(products map[string]*ProductSales, limit int) []ProductSales {
	out := make([]ProductSales, 0, len(products))
	for _, p := range products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sum != out[j].Sum {
			return out[i].Sum > out[j].Sum
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// OperatorRank is one row of the operator leaderboard.
type OperatorRank struct {
	OperatorID string  `json:"operatorId"`
	Name       string  `json:"name"`
	TotalSales float64 `json:"totalSales"`
	Customers  int     `json:"customers"`
}

// OperatorRanking ranks every operator by sales inside the time window of f.
// The operator and status selections of f do not apply.
func OperatorRanking(snapshot model.Snapshot, f Filter, now time.Time) []OperatorRank {
	sales := make(map[string]float64)
	for _, o := range snapshot.Orders {
		if inWindow(o, f, now) {
			sales[o.OperatorID] += o.TotalAmount
		}
	}
	customers := make(map[string]int)
	for _, c := range snapshot.Customers {
		customers[c.OperatorID]++
	}

	out := make([]OperatorRank, 0, len(snapshot.Operators))
	for _, op := range snapshot.Operators {
		out = append(out, OperatorRank{
			OperatorID: op.ID,
			Name:       op.FullName(),
			TotalSales: sales[op.ID],
			Customers:  customers[op.ID],
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalSales > out[j].TotalSales })
	return out
}
