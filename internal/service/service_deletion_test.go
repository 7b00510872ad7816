package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mirror-sync/internal/adapter"
	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/internal/mock"
	"github.com/MKhiriev/go-mirror-sync/internal/service"
	"github.com/MKhiriev/go-mirror-sync/models"
)

func TestMaybeDeleteFile(t *testing.T) {
	entry := file(42, "a.mkv", 100)

	tests := []struct {
		name        string
		mapping     models.Mapping
		setup       func(m *mock.MockRemoteAdapter, metrics *mock.MockMetricsRecorder)
		wantDeleted int64
	}{
		{
			name:    "flag off",
			mapping: models.Mapping{},
			setup:   func(*mock.MockRemoteAdapter, *mock.MockMetricsRecorder) {},
		},
		{
			name:    "deleted",
			mapping: models.Mapping{DeleteAfterSync: true},
			setup: func(m *mock.MockRemoteAdapter, metrics *mock.MockMetricsRecorder) {
				m.EXPECT().Delete(gomock.Any(), int64(42)).Return(nil)
				metrics.EXPECT().RemoteDeleted("file")
			},
			wantDeleted: 1,
		},
		{
			name:    "already gone",
			mapping: models.Mapping{DeleteAfterSync: true},
			setup: func(m *mock.MockRemoteAdapter, _ *mock.MockMetricsRecorder) {
				m.EXPECT().Delete(gomock.Any(), int64(42)).Return(adapter.ErrNotFound)
			},
		},
		{
			name:    "rejected",
			mapping: models.Mapping{DeleteAfterSync: true},
			setup: func(m *mock.MockRemoteAdapter, _ *mock.MockMetricsRecorder) {
				m.EXPECT().Delete(gomock.Any(), int64(42)).Return(adapter.ErrDeleteRejected)
			},
		},
		{
			name:    "transport failure",
			mapping: models.Mapping{DeleteAfterSync: true},
			setup: func(m *mock.MockRemoteAdapter, _ *mock.MockMetricsRecorder) {
				m.EXPECT().Delete(gomock.Any(), int64(42)).Return(errors.New("connection reset"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			remote := mock.NewMockRemoteAdapter(ctrl)
			metrics := mock.NewMockMetricsRecorder(ctrl)
			tt.setup(remote, metrics)
			stats := new(models.CycleStats)

			svc := service.NewDeletionService(remote, stats, metrics, logger.Nop())
			svc.MaybeDeleteFile(context.Background(), tt.mapping, entry)

			assert.Equal(t, tt.wantDeleted, stats.DeletedFiles.Load())
			assert.Zero(t, stats.DeletedFolders.Load())
		})
	}
}

func TestMaybeDeleteFolder(t *testing.T) {
	t.Run("flag off", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mock.NewMockRemoteAdapter(ctrl)
		stats := new(models.CycleStats)

		service.NewDeletionService(remote, stats, service.NopMetrics{}, logger.Nop()).
			MaybeDeleteFolder(context.Background(), models.Mapping{DeleteAfterSync: true}, 10)

		assert.Zero(t, stats.DeletedFolders.Load())
	})

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mock.NewMockRemoteAdapter(ctrl)
		metrics := mock.NewMockMetricsRecorder(ctrl)
		stats := new(models.CycleStats)

		remote.EXPECT().Delete(gomock.Any(), int64(10)).Return(nil)
		metrics.EXPECT().RemoteDeleted("folder")

		service.NewDeletionService(remote, stats, metrics, logger.Nop()).
			MaybeDeleteFolder(context.Background(), models.Mapping{DeleteEmptySubfolders: true}, 10)

		assert.Equal(t, int64(1), stats.DeletedFolders.Load())
	})

	t.Run("failure is not counted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mock.NewMockRemoteAdapter(ctrl)
		stats := new(models.CycleStats)

		remote.EXPECT().Delete(gomock.Any(), int64(10)).Return(adapter.ErrForbidden)

		service.NewDeletionService(remote, stats, service.NopMetrics{}, logger.Nop()).
			MaybeDeleteFolder(context.Background(), models.Mapping{DeleteEmptySubfolders: true}, 10)

		assert.Zero(t, stats.DeletedFolders.Load())
	})
}
