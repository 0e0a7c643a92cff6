package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/stats"
)

// AuthFacade describes sign-in and profile operations.
type AuthFacade interface {
	Login(ctx context.Context, email, password string) (model.Operator, string, error)
	Authenticate(ctx context.Context, token string) (model.Operator, error)
	CompleteProfile(ctx context.Context, actor, profile model.Operator) (model.Operator, error)
}

// SyncFacade exposes the current snapshot and on-demand resyncs.
type SyncFacade interface {
	Snapshot() model.Snapshot
	Resync(ctx context.Context) (model.Snapshot, error)
}

// CustomerFacade edits customers and their assignment.
type CustomerFacade interface {
	UpdateCustomer(ctx context.Context, actor model.Operator, customer model.Customer) (model.Customer, error)
	AssignCustomers(ctx context.Context, actor model.Operator, operatorID string, ids []string) (model.BulkResult, error)
	UnassignCustomers(ctx context.Context, actor model.Operator, operatorID string, ids []string) (model.BulkResult, error)
}

// TaskFacade creates and updates follow-up tasks.
type TaskFacade interface {
	SaveTask(ctx context.Context, actor model.Operator, task model.CustomerTask) (model.CustomerTask, error)
}

// CatalogFacade manages courses and staff accounts.
type CatalogFacade interface {
	CreateProduct(ctx context.Context, actor model.Operator, product model.Product) (model.Product, error)
	CreateOperator(ctx context.Context, actor, operator model.Operator) (model.Operator, error)
}

// OrderFacade submits orders and changes their status.
type OrderFacade interface {
	SubmitOrder(ctx context.Context, actor model.Operator, draft model.OrderDraft) (model.Order, error)
	ChangeOrderStatus(ctx context.Context, actor model.Operator, ids []string, status model.OrderStatus, note string) ([]model.Order, error)
}

// StatsFacade derives dashboard figures from the snapshot.
type StatsFacade interface {
	Sales(filter stats.Filter) stats.SalesSummary
	OperatorRanking(filter stats.Filter) []stats.OperatorRank
	InactiveCustomers(viewer model.Operator) stats.Inactive
	UrgentOrders(viewer model.Operator) []model.Order
	TaskBoard(viewer model.Operator) stats.Board
	Reports(viewer model.Operator) (stats.Report, error)
	Location() *time.Location
}

// SettingsFacade edits record store endpoints and funnel stages.
type SettingsFacade interface {
	Endpoints(ctx context.Context, actor model.Operator) (model.Endpoints, error)
	SetEndpoints(ctx context.Context, actor model.Operator, endpoints model.Endpoints) (model.Endpoints, error)
	Stages(ctx context.Context) ([]string, error)
	AddStage(ctx context.Context, actor model.Operator, name string) ([]string, error)
	RemoveStage(ctx context.Context, actor model.Operator, name string) ([]string, error)
}

// CRMFacade aggregates the full set of operations used across handlers.
type CRMFacade interface {
	AuthFacade
	SyncFacade
	CustomerFacade
	TaskFacade
	CatalogFacade
	OrderFacade
	StatsFacade
	SettingsFacade
}

// StreamServer attaches websocket clients.
type StreamServer interface {
	Serve(w http.ResponseWriter, r *http.Request, operatorID string) error
}
