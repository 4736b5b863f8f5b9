package controllerImp

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agrosense/pkg/district/repository"
	"agrosense/pkg/health/controller"
	"agrosense/pkg/httpx"
)

var appStart = time.Now()

type HealthCtrl struct {
	db      *gorm.DB
	dataset repository.DatasetRepository
}

func NewHealthCtrl(db *gorm.DB, dataset repository.DatasetRepository) controller.HealthController {
	return &HealthCtrl{db: db, dataset: dataset}
}

type sub struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := h.checkDB(ctx)
	ds := h.checkDataset(ctx)

	// the dataset is reported but does not fail liveness; only its endpoints degrade
	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
	}

	resp := map[string]any{
		"ok":         db.OK,
		"status":     map[string]any{"ok": db.OK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": db,
			"dataset":  ds,
		},
		"time": time.Now().Format(time.RFC3339),
	}
	return c.JSON(status, resp)
}

func (h *HealthCtrl) checkDB(ctx context.Context) sub {
	if h.db == nil {
		return sub{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return sub{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return sub{Err: "ping: " + err.Error()}
	}
	return sub{OK: true}
}

func (h *HealthCtrl) checkDataset(ctx context.Context) sub {
	if h.dataset == nil {
		return sub{Err: "dataset repository is nil"}
	}
	if _, err := h.dataset.Load(ctx); err != nil {
		return sub{Err: err.Error()}
	}
	return sub{OK: true}
}

func (h *HealthCtrl) Ping(c echo.Context) error {
	return httpx.OK(c, echo.Map{"message": "pong"})
}

// Routes lists every registered path once, sorted.
func (h *HealthCtrl) Routes(c echo.Context) error {
	seen := map[string]bool{}
	paths := []string{}
	for _, r := range c.Echo().Routes() {
		if seen[r.Path] {
			continue
		}
		seen[r.Path] = true
		paths = append(paths, r.Path)
	}
	sort.Strings(paths)
	return httpx.OK(c, echo.Map{"routes": paths})
}
