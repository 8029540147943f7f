package app

import (
	"context"
	"time"

	"textrank/internal/shared/observability"
)

type HealthService struct {
	app *App
}

func NewHealthService(app *App) *HealthService {
	return &HealthService{app: app}
}

func (s *HealthService) Check(ctx context.Context) observability.HealthStatus {
	status := observability.HealthStatus{
		Status:     "up",
		Timestamp:  time.Now().UTC(),
		Components: make(map[string]string),
	}

	if s.app.annotator == nil {
		status.Status = "degraded"
		status.Components["annotator"] = "missing"
	} else {
		status.Components["annotator"] = "ok"
	}

	if s.app.embedder == nil {
		status.Status = "degraded"
		status.Components["embedder"] = "missing"
	} else {
		status.Components["embedder"] = "ok"
	}

	if s.app.store != nil {
		status.Components["history"] = "ok"
	} else if s.app.Config.DB.Enabled {
		status.Status = "degraded"
		status.Components["history"] = "missing but enabled in config"
	}

	return status
}
