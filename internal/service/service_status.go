package service

import (
	"context"

	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/models"
)

type statusService struct {
	driver    CycleDriver
	scheduler Scheduler
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewStatusService(driver CycleDriver, scheduler Scheduler, buildInfo models.AppBuildInfo, logger *logger.Logger) StatusService {
	return &statusService{
		driver:    driver,
		scheduler: scheduler,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

func (s *statusService) Status(ctx context.Context) models.StatusReport {
	return models.StatusReport{
		Driver:    s.driver.Status(),
		Scheduler: s.scheduler.Snapshot(),
		Build:     s.buildInfo.View(),
	}
}

func (s *statusService) Healthy(ctx context.Context) bool {
	return s.driver.Status().State != models.CycleStopped
}
