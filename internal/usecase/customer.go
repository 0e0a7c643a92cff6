package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	domainErrors "github.com/polkiloo/mentorcrm/internal/domain/errors"
	"github.com/polkiloo/mentorcrm/internal/domain/model"
)

// CustomerUseCase writes customer changes to the status log.
type CustomerUseCase struct {
	gw *Gateway
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(gw *Gateway) *CustomerUseCase {
	return &CustomerUseCase{gw: gw}
}

// Update appends a status-log row for the customer and applies it locally.
func (u *CustomerUseCase) Update(ctx context.Context, actor model.Operator, customer model.Customer) (model.Customer, error) {
	updated, err := u.update(ctx, actor, customer)
	if err != nil {
		return model.Customer{}, err
	}
	u.gw.resyncAfter(u.gw.delays.Task)
	return updated, nil
}

// BulkAssign hands every listed customer to the operator.
func (u *CustomerUseCase) BulkAssign(ctx context.Context, actor model.Operator, operatorID string, customerIDs []string) (model.BulkResult, error) {
	if err := requirePrivileged(actor); err != nil {
		return model.BulkResult{}, err
	}
	operator, ok := u.gw.state.Snapshot().FindOperator(operatorID)
	if !ok {
		return model.BulkResult{}, fmt.Errorf("operator %s: %w", operatorID, domainErrors.ErrNotFound)
	}
	return u.bulk(ctx, actor, customerIDs, func(c *model.Customer) bool {
		c.OperatorID = operator.ID
		c.OperatorName = operator.FullName()
		return true
	})
}

// BulkUnassign releases the listed customers held by the operator. Customers
// not held by the operator are left untouched and reported as done.
func (u *CustomerUseCase) BulkUnassign(ctx context.Context, actor model.Operator, operatorID string, customerIDs []string) (model.BulkResult, error) {
	if err := requirePrivileged(actor); err != nil {
		return model.BulkResult{}, err
	}
	return u.bulk(ctx, actor, customerIDs, func(c *model.Customer) bool {
		if c.OperatorID != operatorID {
			return false
		}
		c.OperatorID = ""
		c.OperatorName = ""
		return true
	})
}

// bulk runs one update per customer concurrently. Nothing is rolled back:
// the caller retries the failed subset.
func (u *CustomerUseCase) bulk(ctx context.Context, actor model.Operator, customerIDs []string, change func(*model.Customer) bool) (model.BulkResult, error) {
	snapshot := u.gw.state.Snapshot()
	result := model.BulkResult{Items: make([]model.BulkItem, len(customerIDs))}

	var wg sync.WaitGroup
	for i, id := range customerIDs {
		result.Items[i].ID = id
		customer, ok := snapshot.FindCustomer(id)
		if !ok {
			result.Items[i].Err = fmt.Errorf("customer %s: %w", id, domainErrors.ErrNotFound)
			continue
		}
		if !change(&customer) {
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := u.update(ctx, actor, customer)
			result.Items[i].Err = err
		}()
	}
	wg.Wait()

	u.gw.resyncAfter(u.gw.delays.Task)

	if failed := result.Failed(); len(failed) > 0 {
		return result, fmt.Errorf("%d of %d customers: %w", len(failed), len(customerIDs), domainErrors.ErrBulkPartialFailure)
	}
	return result, nil
}

func (u *CustomerUseCase) update(ctx context.Context, actor model.Operator, customer model.Customer) (model.Customer, error) {
	snapshot := u.gw.state.Snapshot()
	existing, ok := snapshot.FindCustomer(customer.ID)
	if !ok {
		return model.Customer{}, fmt.Errorf("customer %s: %w", customer.ID, domainErrors.ErrNotFound)
	}
	if !actor.Role.Privileged() && (existing.OperatorID != actor.ID || customer.OperatorID != actor.ID) {
		return model.Customer{}, domainErrors.ErrForbidden
	}

	stage, err := u.resolveStage(ctx, existing, customer)
	if err != nil {
		return model.Customer{}, err
	}
	customer.Stage = stage

	reason := strings.TrimSpace(customer.RejectionReason)
	if model.IsRejectionStage(stage) {
		if reason == "" {
			return model.Customer{}, domainErrors.ErrRejectionReasonRequired
		}
	} else {
		reason = ""
	}
	customer.RejectionReason = reason

	if customer.Assigned() && customer.OperatorName == "" {
		if operator, ok := snapshot.FindOperator(customer.OperatorID); ok {
			customer.OperatorName = operator.FullName()
		}
	}
	if !customer.Assigned() {
		customer.OperatorName = ""
	}

	customer.SavedAt = u.gw.timestamp()
	entry := model.Revision[string]{At: customer.SavedAt, By: actor.ID, Value: stage}

	if err := u.gw.write(ctx, func(e model.Endpoints) string { return e.StatusLog }, "customer status", statusLogRow(customer)); err != nil {
		return model.Customer{}, err
	}

	var applied model.Customer
	u.gw.state.ApplyMutation(func(s *model.Snapshot) {
		for i := range s.Customers {
			if s.Customers[i].ID != customer.ID {
				continue
			}
			customer.StageHistory = append(s.Customers[i].StageHistory, entry)
			s.Customers[i] = customer
			applied = customer
			return
		}
	})
	return applied, nil
}

// resolveStage applies stage defaults and checks the stage against the configured funnel.
// Stages already stored on the customer stay valid even when removed from the funnel.
func (u *CustomerUseCase) resolveStage(ctx context.Context, existing, customer model.Customer) (string, error) {
	stage := strings.TrimSpace(customer.Stage)
	if stage == "" {
		newlyAssigned := !existing.Assigned() && customer.Assigned()
		if newlyAssigned || existing.Stage == "" {
			return model.StageNew, nil
		}
		return existing.Stage, nil
	}
	if model.IsRejectionStage(stage) {
		return model.StageRejected, nil
	}
	if strings.EqualFold(stage, existing.Stage) {
		return existing.Stage, nil
	}

	stages, err := u.gw.settings.Stages(ctx)
	if err != nil {
		return "", err
	}
	for _, allowed := range stages {
		if strings.EqualFold(allowed, stage) {
			return allowed, nil
		}
	}
	return "", fmt.Errorf("stage %q: %w", stage, domainErrors.ErrInvalidStage)
}

func statusLogRow(c model.Customer) map[string]any {
	phone := withQuote(c.Phone)
	operatorID := c.OperatorID
	if operatorID == "" {
		operatorID = model.UnassignedOperatorID
	}
	return map[string]any{
		"mijoz id":      c.ID,
		"operator id":   operatorID,
		"operator_id":   operatorID,
		"operator":      c.OperatorName,
		"saqlash vaqti": c.SavedAt,
		"time data":     c.SavedAt,
		"voronka":       c.Stage,
		"holati":        c.Stage,

		"ism":           c.Name,
		"familiya":      c.Surname,
		"telefon nomer": phone,
		"telefon":       phone,
		"manzili":       c.Address,
		"izoh":          c.Note,

		"qo'shimcha telefon nomer": c.ExtraPhone,
		"mijoz yoshi":              c.Age,
		"url":                      c.SocialURL,
		"lead manbasi":             c.LeadSource,
		"qaysi kursga qiziqmoqda":  c.InterestedCourse,
		"maqsadi":                  c.Goal,
		"taʼlim turi":              c.EducationType,
		"biznes turi":              c.BusinessType,

		"Otkaz sababi": c.RejectionReason,
		"otkaz sababi": c.RejectionReason,
		"otkaz_sababi": c.RejectionReason,
		"Otkaz Sababi": c.RejectionReason,
	}
}
