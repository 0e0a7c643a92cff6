package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/mentorcrm/internal/app"
	"github.com/polkiloo/mentorcrm/internal/config"
	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/domain/repository"
	"github.com/polkiloo/mentorcrm/internal/realtime"
	"github.com/polkiloo/mentorcrm/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:        ":0",
		JWTSecret:         "secret",
		ShutdownTimeout:   time.Millisecond,
		SyncInterval:      time.Minute,
		OverrideMaxCycles: 5,
		Timezone:          "UTC",
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	records := &test.RecordStoreStub{}
	settingsRepo := &test.SettingsRepositoryStub{}
	cfg.Endpoints = model.Endpoints{Operators: "https://store/operators"}

	var (
		facade *app.CRMFacade
		engine *gin.Engine
		hub    *realtime.Hub
	)
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(fx.Annotate(settingsRepo, fx.As(new(repository.SettingsRepository)))),
			fx.Replace(fx.Annotate(records, fx.As(new(repository.RecordReader)))),
			fx.Replace(fx.Annotate(records, fx.As(new(repository.RecordWriter)))),
		),
		fx.Populate(&facade, &engine, &hub),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil || engine == nil || hub == nil {
		t.Fatal("expected facade, router and hub instances")
	}
	if got := facade.Location().String(); got != "UTC" {
		t.Fatalf("expected configured location, got %q", got)
	}

	if _, err := facade.Stages(context.Background()); err != nil {
		t.Fatalf("stages through replaced settings repository: %v", err)
	}
	if _, err := facade.Resync(context.Background()); err != nil {
		t.Fatalf("resync through replaced record store: %v", err)
	}
	if len(records.Fetches) == 0 {
		t.Fatal("expected the replaced record reader to serve the synchronizer")
	}
}
