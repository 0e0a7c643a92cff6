package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode"

	domainErrors "github.com/polkiloo/mentorcrm/internal/domain/errors"
	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/domain/repository"
	"github.com/polkiloo/mentorcrm/internal/pkg/sheetdate"
	"github.com/polkiloo/mentorcrm/internal/state"
)

// Settings resolves runtime configuration edited by admins.
type Settings interface {
	Endpoints(ctx context.Context) (model.Endpoints, error)
	Stages(ctx context.Context) ([]string, error)
}

// Scheduler queues a delayed resync.
type Scheduler interface {
	Schedule(delay time.Duration)
}

// Delays configures how long to wait before re-reading the record store after a write.
type Delays struct {
	Status time.Duration
	Task   time.Duration
}

// Gateway carries what every mutation needs: the write path, the state and the resync trigger.
type Gateway struct {
	writer    repository.RecordWriter
	state     *state.State
	settings  Settings
	scheduler Scheduler
	delays    Delays
	location  *time.Location
	now       func() time.Time
	logger    *slog.Logger
}

// NewGateway constructs Gateway.
func NewGateway(writer repository.RecordWriter, st *state.State, settings Settings, scheduler Scheduler, delays Delays, location *time.Location, logger *slog.Logger) *Gateway {
	if location == nil {
		location = time.Local
	}
	return &Gateway{
		writer:    writer,
		state:     st,
		settings:  settings,
		scheduler: scheduler,
		delays:    delays,
		location:  location,
		now:       time.Now,
		logger:    logger,
	}
}

func (g *Gateway) clock() time.Time {
	return g.now().In(g.location)
}

func (g *Gateway) timestamp() string {
	return sheetdate.Format(g.clock())
}

func (g *Gateway) endpoint(ctx context.Context, pick func(model.Endpoints) string) (string, error) {
	endpoints, err := g.settings.Endpoints(ctx)
	if err != nil {
		return "", err
	}
	url := pick(endpoints)
	if url == "" {
		return "", domainErrors.ErrEndpointNotConfigured
	}
	return url, nil
}

func (g *Gateway) write(ctx context.Context, pick func(model.Endpoints) string, kind string, payload any) error {
	url, err := g.endpoint(ctx, pick)
	if err != nil {
		return fmt.Errorf("%s: %w", kind, err)
	}
	receipt, err := g.writer.Append(ctx, url, payload)
	if err != nil {
		g.logger.Error("record store write failed", slog.String("kind", kind), slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", kind, err)
	}
	g.logger.Debug("record store write sent", slog.String("kind", kind), slog.Bool("confirmed", receipt.Confirmed))
	return nil
}

func (g *Gateway) resyncAfter(delay time.Duration) {
	if g.scheduler != nil {
		g.scheduler.Schedule(delay)
	}
}

func requirePrivileged(actor model.Operator) error {
	if !actor.Role.Privileged() {
		return domainErrors.ErrForbidden
	}
	return nil
}

// NextID returns the maximum numeric suffix among ids plus one. Ids
// without a numeric suffix are ignored; an empty set yields "1".
func NextID(ids []string) string {
	var highest int64
	for _, id := range ids {
		n, ok := numericSuffix(id)
		if ok && n > highest {
			highest = n
		}
	}
	return strconv.FormatInt(highest+1, 10)
}

func numericSuffix(id string) (int64, bool) {
	id = strings.TrimSpace(id)
	end := len(id)
	start := end
	for start > 0 && unicode.IsDigit(rune(id[start-1])) {
		start--
	}
	if start == end {
		return 0, false
	}
	n, err := strconv.ParseInt(id[start:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func withQuote(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" || strings.HasPrefix(phone, "'") {
		return phone
	}
	return "'" + phone
}
