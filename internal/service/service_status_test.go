package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/internal/mock"
	"github.com/MKhiriev/go-mirror-sync/internal/service"
	"github.com/MKhiriev/go-mirror-sync/models"
)

func TestStatusService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mock.NewMockCycleDriver(ctrl)
	scheduler := mock.NewMockScheduler(ctrl)

	driverStatus := models.DriverStatus{State: models.CycleDraining, CycleID: "cycle-3"}
	snapshot := models.SchedulerSnapshot{Active: 1, Queued: 4, MaxConcurrency: 2}
	driver.EXPECT().Status().Return(driverStatus)
	scheduler.EXPECT().Snapshot().Return(snapshot)

	build := models.NewAppBuildInfo("1.2.3", "2026-10-18", "abc123")
	report := service.NewStatusService(driver, scheduler, build, logger.Nop()).Status(context.Background())

	assert.Equal(t, driverStatus, report.Driver)
	assert.Equal(t, snapshot, report.Scheduler)
	assert.Equal(t, build.View(), report.Build)
}

func TestStatusService_Healthy(t *testing.T) {
	tests := []struct {
		state models.CycleState
		want  bool
	}{
		{models.CycleIdle, true},
		{models.CycleRunning, true},
		{models.CycleDraining, true},
		{models.CycleScheduled, true},
		{models.CycleStopped, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			driver := mock.NewMockCycleDriver(ctrl)
			driver.EXPECT().Status().Return(models.DriverStatus{State: tt.state})

			svc := service.NewStatusService(driver, mock.NewMockScheduler(ctrl), models.AppBuildInfo{}, logger.Nop())
			assert.Equal(t, tt.want, svc.Healthy(context.Background()))
		})
	}
}
