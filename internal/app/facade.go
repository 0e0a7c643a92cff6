package app

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/mentorcrm/internal/domain/errors"
	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/state"
	"github.com/polkiloo/mentorcrm/internal/stats"
	"github.com/polkiloo/mentorcrm/internal/usecase"
)

// Resyncer refreshes the snapshot from the record store.
type Resyncer interface {
	Resync(ctx context.Context) (model.Snapshot, error)
}

// UseCases groups the mutation use cases behind the facade.
type UseCases struct {
	Auth      *usecase.AuthUseCase
	Customers *usecase.CustomerUseCase
	Tasks     *usecase.TaskUseCase
	Products  *usecase.ProductUseCase
	Operators *usecase.OperatorUseCase
	Orders    *usecase.OrderUseCase
	Settings  *usecase.SettingsUseCase
}

// CRMFacade is the single entry point the HTTP layer talks to.
type CRMFacade struct {
	uc       UseCases
	state    *state.State
	resyncer Resyncer
	location *time.Location
	now      func() time.Time
}

// NewCRMFacade constructs CRMFacade.
func NewCRMFacade(uc UseCases, st *state.State, resyncer Resyncer, location *time.Location) *CRMFacade {
	if location == nil {
		location = time.Local
	}
	return &CRMFacade{uc: uc, state: st, resyncer: resyncer, location: location, now: time.Now}
}

func (f *CRMFacade) clock() time.Time {
	return f.now().In(f.location)
}

func (f *CRMFacade) Login(ctx context.Context, email, password string) (model.Operator, string, error) {
	return f.uc.Auth.Login(ctx, email, password)
}

func (f *CRMFacade) Authenticate(ctx context.Context, token string) (model.Operator, error) {
	return f.uc.Auth.Authenticate(ctx, token)
}

func (f *CRMFacade) CompleteProfile(ctx context.Context, actor, profile model.Operator) (model.Operator, error) {
	return f.uc.Operators.CompleteProfile(ctx, actor, profile)
}

func (f *CRMFacade) Snapshot() model.Snapshot {
	return f.state.Snapshot()
}

func (f *CRMFacade) Resync(ctx context.Context) (model.Snapshot, error) {
	return f.resyncer.Resync(ctx)
}

func (f *CRMFacade) UpdateCustomer(ctx context.Context, actor model.Operator, customer model.Customer) (model.Customer, error) {
	return f.uc.Customers.Update(ctx, actor, customer)
}

func (f *CRMFacade) AssignCustomers(ctx context.Context, actor model.Operator, operatorID string, ids []string) (model.BulkResult, error) {
	return f.uc.Customers.BulkAssign(ctx, actor, operatorID, ids)
}

func (f *CRMFacade) UnassignCustomers(ctx context.Context, actor model.Operator, operatorID string, ids []string) (model.BulkResult, error) {
	return f.uc.Customers.BulkUnassign(ctx, actor, operatorID, ids)
}

func (f *CRMFacade) SaveTask(ctx context.Context, actor model.Operator, task model.CustomerTask) (model.CustomerTask, error) {
	return f.uc.Tasks.Save(ctx, actor, task)
}

func (f *CRMFacade) CreateProduct(ctx context.Context, actor model.Operator, product model.Product) (model.Product, error) {
	return f.uc.Products.Create(ctx, actor, product)
}

func (f *CRMFacade) CreateOperator(ctx context.Context, actor, operator model.Operator) (model.Operator, error) {
	return f.uc.Operators.Create(ctx, actor, operator)
}

func (f *CRMFacade) SubmitOrder(ctx context.Context, actor model.Operator, draft model.OrderDraft) (model.Order, error) {
	return f.uc.Orders.Submit(ctx, actor, draft)
}

func (f *CRMFacade) ChangeOrderStatus(ctx context.Context, actor model.Operator, ids []string, status model.OrderStatus, note string) ([]model.Order, error) {
	return f.uc.Orders.ChangeStatus(ctx, actor, ids, status, note)
}

func (f *CRMFacade) Sales(filter stats.Filter) stats.SalesSummary {
	return stats.Sales(f.state.Snapshot(), filter, f.clock())
}

func (f *CRMFacade) OperatorRanking(filter stats.Filter) []stats.OperatorRank {
	return stats.OperatorRanking(f.state.Snapshot(), filter, f.clock())
}

func (f *CRMFacade) InactiveCustomers(viewer model.Operator) stats.Inactive {
	return stats.InactiveCustomers(f.state.Snapshot(), viewer)
}

func (f *CRMFacade) UrgentOrders(viewer model.Operator) []model.Order {
	return stats.UrgentOrders(f.state.Snapshot(), viewer, f.clock())
}

func (f *CRMFacade) TaskBoard(viewer model.Operator) stats.Board {
	return stats.TaskBoard(f.state.Snapshot(), viewer, f.clock())
}

// Reports is limited to privileged operators.
func (f *CRMFacade) Reports(viewer model.Operator) (stats.Report, error) {
	if !viewer.Role.Privileged() {
		return stats.Report{}, domainErrors.ErrForbidden
	}
	return stats.Reports(f.state.Snapshot()), nil
}

// Location is the time zone record store timestamps are read in.
func (f *CRMFacade) Location() *time.Location {
	return f.location
}

func (f *CRMFacade) Endpoints(ctx context.Context, actor model.Operator) (model.Endpoints, error) {
	return f.uc.Settings.Endpoints(ctx, actor)
}

func (f *CRMFacade) SetEndpoints(ctx context.Context, actor model.Operator, endpoints model.Endpoints) (model.Endpoints, error) {
	return f.uc.Settings.SetEndpoints(ctx, actor, endpoints)
}

func (f *CRMFacade) Stages(ctx context.Context) ([]string, error) {
	return f.uc.Settings.Stages(ctx)
}

func (f *CRMFacade) AddStage(ctx context.Context, actor model.Operator, name string) ([]string, error) {
	return f.uc.Settings.AddStage(ctx, actor, name)
}

func (f *CRMFacade) RemoveStage(ctx context.Context, actor model.Operator, name string) ([]string, error) {
	return f.uc.Settings.RemoveStage(ctx, actor, name)
}
