package test

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/stats"
)

// CRMFacadeStub provides controllable behaviour for HTTP layer tests.
// Unset functions return zero values; every call records the actor.
type CRMFacadeStub struct {
	LoginFn           func(context.Context, string, string) (model.Operator, string, error)
	AuthenticateFn    func(context.Context, string) (model.Operator, error)
	CompleteProfileFn func(context.Context, model.Operator, model.Operator) (model.Operator, error)

	SnapshotVal model.Snapshot
	ResyncFn    func(context.Context) (model.Snapshot, error)

	UpdateCustomerFn func(context.Context, model.Operator, model.Customer) (model.Customer, error)
	AssignFn         func(context.Context, model.Operator, string, []string) (model.BulkResult, error)
	UnassignFn       func(context.Context, model.Operator, string, []string) (model.BulkResult, error)

	SaveTaskFn       func(context.Context, model.Operator, model.CustomerTask) (model.CustomerTask, error)
	CreateProductFn  func(context.Context, model.Operator, model.Product) (model.Product, error)
	CreateOperatorFn func(context.Context, model.Operator, model.Operator) (model.Operator, error)

	SubmitOrderFn  func(context.Context, model.Operator, model.OrderDraft) (model.Order, error)
	ChangeStatusFn func(context.Context, model.Operator, []string, model.OrderStatus, string) ([]model.Order, error)

	ReportsErr error
	Loc        *time.Location

	EndpointsFn    func(context.Context, model.Operator) (model.Endpoints, error)
	SetEndpointsFn func(context.Context, model.Operator, model.Endpoints) (model.Endpoints, error)
	StagesVal      []string
	StageFn        func(context.Context, model.Operator, string) ([]string, error)

	mu      sync.Mutex
	Filters []stats.Filter
	Actors  []model.Operator
}

func (s *CRMFacadeStub) record(actor model.Operator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Actors = append(s.Actors, actor)
}

func (s *CRMFacadeStub) recordFilter(f stats.Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Filters = append(s.Filters, f)
	s.Actors = append(s.Actors, f.Viewer)
}

// LastActor returns the operator passed to the most recent call.
func (s *CRMFacadeStub) LastActor() model.Operator {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Actors) == 0 {
		return model.Operator{}
	}
	return s.Actors[len(s.Actors)-1]
}

// LastFilter returns the most recent stats filter.
func (s *CRMFacadeStub) LastFilter() stats.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Filters) == 0 {
		return stats.Filter{}
	}
	return s.Filters[len(s.Filters)-1]
}

func (s *CRMFacadeStub) Login(ctx context.Context, email, password string) (model.Operator, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return model.Operator{Email: email}, "token", nil
}

func (s *CRMFacadeStub) Authenticate(ctx context.Context, token string) (model.Operator, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, token)
	}
	return model.Operator{ID: "1", Email: "admin@crm.uz", Role: model.RoleAdmin}, nil
}

func (s *CRMFacadeStub) CompleteProfile(ctx context.Context, actor, profile model.Operator) (model.Operator, error) {
	s.record(actor)
	if s.CompleteProfileFn != nil {
		return s.CompleteProfileFn(ctx, actor, profile)
	}
	return profile, nil
}

func (s *CRMFacadeStub) Snapshot() model.Snapshot {
	return s.SnapshotVal
}

func (s *CRMFacadeStub) Resync(ctx context.Context) (model.Snapshot, error) {
	if s.ResyncFn != nil {
		return s.ResyncFn(ctx)
	}
	return s.SnapshotVal, nil
}

func (s *CRMFacadeStub) UpdateCustomer(ctx context.Context, actor model.Operator, customer model.Customer) (model.Customer, error) {
	s.record(actor)
	if s.UpdateCustomerFn != nil {
		return s.UpdateCustomerFn(ctx, actor, customer)
	}
	return customer, nil
}

func (s *CRMFacadeStub) AssignCustomers(ctx context.Context, actor model.Operator, operatorID string, ids []string) (model.BulkResult, error) {
	s.record(actor)
	if s.AssignFn != nil {
		return s.AssignFn(ctx, actor, operatorID, ids)
	}
	return okBulk(ids), nil
}

func (s *CRMFacadeStub) UnassignCustomers(ctx context.Context, actor model.Operator, operatorID string, ids []string) (model.BulkResult, error) {
	s.record(actor)
	if s.UnassignFn != nil {
		return s.UnassignFn(ctx, actor, operatorID, ids)
	}
	return okBulk(ids), nil
}

func okBulk(ids []string) model.BulkResult {
	result := model.BulkResult{}
	for _, id := range ids {
		result.Items = append(result.Items, model.BulkItem{ID: id})
	}
	return result
}

func (s *CRMFacadeStub) SaveTask(ctx context.Context, actor model.Operator, task model.CustomerTask) (model.CustomerTask, error) {
	s.record(actor)
	if s.SaveTaskFn != nil {
		return s.SaveTaskFn(ctx, actor, task)
	}
	return task, nil
}

func (s *CRMFacadeStub) CreateProduct(ctx context.Context, actor model.Operator, product model.Product) (model.Product, error) {
	s.record(actor)
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, actor, product)
	}
	return product, nil
}

func (s *CRMFacadeStub) CreateOperator(ctx context.Context, actor, operator model.Operator) (model.Operator, error) {
	s.record(actor)
	if s.CreateOperatorFn != nil {
		return s.CreateOperatorFn(ctx, actor, operator)
	}
	return operator, nil
}

func (s *CRMFacadeStub) SubmitOrder(ctx context.Context, actor model.Operator, draft model.OrderDraft) (model.Order, error) {
	s.record(actor)
	if s.SubmitOrderFn != nil {
		return s.SubmitOrderFn(ctx, actor, draft)
	}
	return model.Order{CustomerID: draft.CustomerID, ProductID: draft.ProductID, StartDate: draft.StartDate}, nil
}

func (s *CRMFacadeStub) ChangeOrderStatus(ctx context.Context, actor model.Operator, ids []string, status model.OrderStatus, note string) ([]model.Order, error) {
	s.record(actor)
	if s.ChangeStatusFn != nil {
		return s.ChangeStatusFn(ctx, actor, ids, status, note)
	}
	return []model.Order{}, nil
}

func (s *CRMFacadeStub) Sales(filter stats.Filter) stats.SalesSummary {
	s.recordFilter(filter)
	return stats.Sales(s.SnapshotVal, filter, time.Now())
}

func (s *CRMFacadeStub) OperatorRanking(filter stats.Filter) []stats.OperatorRank {
	s.recordFilter(filter)
	return stats.OperatorRanking(s.SnapshotVal, filter, time.Now())
}

func (s *CRMFacadeStub) InactiveCustomers(viewer model.Operator) stats.Inactive {
	s.record(viewer)
	return stats.InactiveCustomers(s.SnapshotVal, viewer)
}

func (s *CRMFacadeStub) UrgentOrders(viewer model.Operator) []model.Order {
	s.record(viewer)
	return stats.UrgentOrders(s.SnapshotVal, viewer, time.Now())
}

func (s *CRMFacadeStub) TaskBoard(viewer model.Operator) stats.Board {
	s.record(viewer)
	return stats.TaskBoard(s.SnapshotVal, viewer, time.Now())
}

func (s *CRMFacadeStub) Reports(viewer model.Operator) (stats.Report, error) {
	s.record(viewer)
	if s.ReportsErr != nil {
		return stats.Report{}, s.ReportsErr
	}
	return stats.Reports(s.SnapshotVal), nil
}

func (s *CRMFacadeStub) Location() *time.Location {
	if s.Loc != nil {
		return s.Loc
	}
	return time.UTC
}

func (s *CRMFacadeStub) Endpoints(ctx context.Context, actor model.Operator) (model.Endpoints, error) {
	s.record(actor)
	if s.EndpointsFn != nil {
		return s.EndpointsFn(ctx, actor)
	}
	return model.Endpoints{}, nil
}

func (s *CRMFacadeStub) SetEndpoints(ctx context.Context, actor model.Operator, endpoints model.Endpoints) (model.Endpoints, error) {
	s.record(actor)
	if s.SetEndpointsFn != nil {
		return s.SetEndpointsFn(ctx, actor, endpoints)
	}
	return endpoints, nil
}

func (s *CRMFacadeStub) Stages(ctx context.Context) ([]string, error) {
	return s.StagesVal, nil
}

func (s *CRMFacadeStub) AddStage(ctx context.Context, actor model.Operator, name string) ([]string, error) {
	s.record(actor)
	if s.StageFn != nil {
		return s.StageFn(ctx, actor, name)
	}
	return append(append([]string(nil), s.StagesVal...), name), nil
}

func (s *CRMFacadeStub) RemoveStage(ctx context.Context, actor model.Operator, name string) ([]string, error) {
	s.record(actor)
	if s.StageFn != nil {
		return s.StageFn(ctx, actor, name)
	}
	return s.StagesVal, nil
}

// StreamServerStub records websocket attach requests.
type StreamServerStub struct {
	Err       error
	Operators []string
}

// Serve records the operator and writes 101 unless Err is set.
func (s *StreamServerStub) Serve(w http.ResponseWriter, r *http.Request, operatorID string) error {
	s.Operators = append(s.Operators, operatorID)
	if s.Err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return s.Err
	}
	w.WriteHeader(http.StatusSwitchingProtocols)
	return nil
}
