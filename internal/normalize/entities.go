package normalize

import (
	"strings"
	"time"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/pkg/sheetdate"
)

// Operators decodes operator rows, skipping rows without a usable email.
func Operators(rows []model.Row) []model.Operator {
	f := operatorFields
	out := make([]model.Operator, 0, len(rows))
	for _, row := range rows {
		r := record(row)
		email := strings.ToLower(r.Text(f.Email))
		if !strings.Contains(email, "@") {
			continue
		}
		out = append(out, model.Operator{
			ID:              r.TextOr(f.ID, model.UnassignedOperatorID),
			Email:           email,
			Password:        r.Text(f.Password),
			Name:            r.Text(f.Name),
			Surname:         r.Text(f.Surname),
			Phone:           r.Phone(f.Phone),
			Role:            model.ParseRole(r.Text(f.Role)),
			Address:         r.Text(f.Address),
			ProfileComplete: true,
		})
	}
	return out
}

// Customers decodes base customer rows and folds the status log over them.
// The last log row of a customer is authoritative for its mutable fields.
func Customers(base, statusLog []model.Row) []model.Customer {
	f := customerFields

	logs := make(map[string][]record)
	for _, row := range statusLog {
		r := record(row)
		id := r.Text(f.ID)
		if id == "" {
			continue
		}
		logs[id] = append(logs[id], r)
	}

	out := make([]model.Customer, 0, len(base))
	for _, row := range base {
		c := record(row)
		if !c.Has(f.Name) && !c.Has(f.Phone) {
			continue
		}
		id := c.Text(f.ID)
		entries := logs[id]

		stage := model.NewAuditTrail(c.Text(f.Stage))
		for _, entry := range entries {
			stage.Append(model.Revision[string]{
				At:    entry.Text(f.SavedAt),
				By:    entry.Text(f.OperatorID),
				Value: entry.Text(f.Stage),
			})
		}

		customer := model.Customer{
			ID:           id,
			Name:         c.Text(f.Name),
			Surname:      c.Text(f.Surname),
			Phone:        c.Phone(f.Phone),
			Stage:        stage.Current(),
			StageHistory: stage.History(),
		}
		if customer.Stage == "" {
			customer.Stage = model.StageNew
		}

		// mutable holds the authoritative source for log-folded fields.
		mutable := c
		if len(entries) > 0 {
			latest := entries[len(entries)-1]
			mutable = latest
			customer.Note = latest.Text(f.LogNote)
			customer.SavedAt = latest.Text(f.SavedAt)
			// A log row carrying the operator column decides assignment,
			// blank or "0" included.
			if latest.Defines(f.OperatorID) {
				customer.OperatorID = latest.Text(f.OperatorID)
				customer.OperatorName = latest.Text(f.OperatorName)
			} else {
				customer.OperatorID = c.Text(f.OperatorID)
				customer.OperatorName = firstNonEmpty(latest.Text(f.OperatorName), c.Text(f.OperatorName))
			}
			if !customer.Assigned() {
				customer.OperatorName = ""
			}
		} else {
			customer.Note = c.Text(f.Note)
			customer.OperatorID = c.Text(f.OperatorID)
			customer.OperatorName = c.Text(f.OperatorName)
		}

		customer.Address = mutable.Text(f.Address)
		customer.ExtraPhone = mutable.Phone(f.ExtraPhone)
		customer.Age = mutable.Text(f.Age)
		customer.SocialURL = mutable.Text(f.SocialURL)
		customer.LeadSource = mutable.Text(f.LeadSource)
		customer.InterestedCourse = mutable.Text(f.InterestedCourse)
		customer.Goal = mutable.Text(f.Goal)
		customer.EducationType = mutable.Text(f.EducationType)
		customer.BusinessType = mutable.Text(f.BusinessType)
		customer.RejectionReason = mutable.Text(f.RejectionReason)

		out = append(out, customer)
	}
	return out
}

// Products decodes course rows.
func Products(rows []model.Row) []model.Product {
	f := productFields
	out := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		r := record(row)
		if !r.Has(f.ID) && !r.Has(f.Name) {
			continue
		}
		out = append(out, model.Product{
			ID:           r.Text(f.ID),
			Name:         r.TextOr(f.Name, model.DefaultProductName),
			Duration:     r.Text(f.Duration),
			MonthlyPrice: r.Number(f.MonthlyPrice),
			TotalPrice:   r.Number(f.TotalPrice),
			Description:  r.Text(f.Description),
			Video:        r.Text(f.Video),
			Document:     r.Text(f.Document),
			Category:     r.TextOr(f.Category, model.DefaultProductCategory),
		})
	}
	return out
}

// Orders decodes order rows and folds the order history over them.
// The status and note of the last history entry win over the base row.
func Orders(base, history []model.Row) []model.Order {
	f := orderFields
	h := historyFields

	entries := make(map[string][]model.OrderHistoryEntry)
	for _, row := range history {
		r := record(row)
		id := r.Text(h.OrderID)
		if id == "" {
			continue
		}
		entries[id] = append(entries[id], model.OrderHistoryEntry{
			Date:       r.Text(h.Date),
			Status:     model.OrderStatus(r.TextOr(h.Status, string(model.OrderStatusUnknown))),
			OperatorID: r.Text(h.OperatorID),
			Note:       r.Text(h.Note),
		})
	}

	out := make([]model.Order, 0, len(base))
	for _, row := range base {
		r := record(row)
		id := r.Text(f.ID)
		if id == "" {
			continue
		}
		itemHistory := entries[id]
		if itemHistory == nil {
			itemHistory = []model.OrderHistoryEntry{}
		}

		status := model.NewAuditTrail(model.OrderStatus(r.TextOr(f.Status, string(model.OrderStatusPending))))
		note := model.NewAuditTrail(r.Text(f.Note))
		for _, entry := range itemHistory {
			status.Append(model.Revision[model.OrderStatus]{At: entry.Date, By: entry.OperatorID, Value: entry.Status})
			note.Append(model.Revision[string]{At: entry.Date, By: entry.OperatorID, Value: entry.Note})
		}

		out = append(out, model.Order{
			ID:              id,
			CreatedAt:       r.Text(f.CreatedAt),
			OperatorID:      r.Text(f.OperatorID),
			CustomerID:      r.Text(f.CustomerID),
			CustomerName:    r.Text(f.CustomerName),
			CustomerSurname: r.Text(f.CustomerSurname),
			CustomerPhone:   r.Phone(f.CustomerPhone),
			ProductID:       r.Text(f.ProductID),
			ProductName:     r.Text(f.ProductName),
			ProductDuration: r.Text(f.Duration),
			UnitPrice:       r.Number(f.UnitPrice),
			Quantity:        1,
			TotalAmount:     r.Number(f.TotalAmount),
			Status:          status.Current(),
			Note:            note.Current(),
			StartDate:       r.Text(f.StartDate),
			History:         itemHistory,
		})
	}
	return out
}

// Tasks decodes task rows. When a task id repeats, the row with the latest
// creation time wins; output keeps the order of first appearance.
func Tasks(rows []model.Row) []model.CustomerTask {
	f := taskFields

	index := make(map[string]int)
	out := make([]model.CustomerTask, 0, len(rows))
	for _, row := range rows {
		r := record(row)
		id := r.Text(f.ID)
		if id == "" {
			continue
		}
		status, ok := model.ParseTaskStatus(r.Text(f.Status))
		if !ok {
			status = model.TaskStatus(r.TextOr(f.Status, string(model.TaskStatusNew)))
		}
		task := model.CustomerTask{
			ID:           id,
			CustomerID:   r.Text(f.CustomerID),
			CreatedAt:    r.Text(f.CreatedAt),
			OperatorID:   r.Text(f.OperatorID),
			OperatorName: r.Text(f.OperatorName),
			CreatorID:    r.Text(f.CreatorID),
			CreatorName:  r.Text(f.CreatorName),
			Text:         r.Text(f.Text),
			Deadline:     r.Text(f.Deadline),
			Status:       status,
		}

		if i, seen := index[id]; seen {
			if newer(task.CreatedAt, out[i].CreatedAt) {
				out[i] = task
			}
			continue
		}
		index[id] = len(out)
		out = append(out, task)
	}
	return out
}

// Link fills denormalized order fields missing from the order rows.
func Link(snapshot *model.Snapshot) {
	customers := make(map[string]model.Customer, len(snapshot.Customers))
	for _, customer := range snapshot.Customers {
		customers[customer.ID] = customer
	}
	products := make(map[string]model.Product, len(snapshot.Products))
	for _, product := range snapshot.Products {
		products[strings.ToLower(product.Name)] = product
	}

	for i := range snapshot.Orders {
		order := &snapshot.Orders[i]
		if customer, ok := customers[order.CustomerID]; ok {
			if order.CustomerName == "" {
				order.CustomerName = customer.Name
				order.CustomerSurname = customer.Surname
			}
			if order.CustomerPhone == "" {
				order.CustomerPhone = customer.Phone
			}
		}
		if order.ProductID == "" {
			if product, ok := products[strings.ToLower(order.ProductName)]; ok {
				order.ProductID = product.ID
			}
		}
	}
}

func newer(candidate, current string) bool {
	a, okA := sheetdate.Parse(candidate, time.UTC)
	b, okB := sheetdate.Parse(current, time.UTC)
	if okA && okB {
		return a.After(b)
	}
	return candidate > current
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
