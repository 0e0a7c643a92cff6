package stats

import (
	"sort"
	"strings"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
)

const (
	topReportProducts = 10
	// otherCategory collects revenue of orders whose course is unknown.
	otherCategory = "Boshqa"
)

// Bucket is a labelled value.
type Bucket struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Report holds the management report charts.
type Report struct {
	ByCategory  []Bucket `json:"byCategory"`
	ByStatus    []Bucket `json:"byStatus"`
	TopProducts []Bucket `json:"topProducts"`
}

// Reports aggregates all orders by course category, status and course.
func Reports(snapshot model.Snapshot) Report {
	categories := make(map[string]string, len(snapshot.Products))
	for _, p := range snapshot.Products {
		categories[strings.ToLower(p.Name)] = p.Category
	}

	byCategory := make(map[string]float64)
	byStatus := make(map[string]float64)
	byProduct := make(map[string]float64)
	for _, o := range snapshot.Orders {
		category, ok := categories[strings.ToLower(o.ProductName)]
		if !ok || category == "" {
			category = otherCategory
		}
		byCategory[category] += o.TotalAmount

		status := strings.TrimSpace(string(o.Status))
		if status == "" {
			status = string(model.OrderStatusPending)
		}
		byStatus[status]++

		if o.ProductName != "" {
			byProduct[o.ProductName] += o.TotalAmount
		}
	}

	report := Report{
		ByCategory:  sortedBuckets(byCategory, byName),
		ByStatus:    sortedBuckets(byStatus, byName),
		TopProducts: sortedBuckets(byProduct, byValue),
	}
	if len(report.TopProducts) > topReportProducts {
		report.TopProducts = report.TopProducts[:topReportProducts]
	}
	return report
}

func byName(a, b Bucket) bool { return a.Name < b.Name }

func byValue(a, b Bucket) bool {
	if a.Value != b.Value {
		return a.Value > b.Value
	}
	return a.Name < b.Name
}

func sortedBuckets(values map[string]float64, less func(a, b Bucket) bool) []Bucket {
	out := make([]Bucket, 0, len(values))
	for name, value := range values {
		out = append(out, Bucket{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
