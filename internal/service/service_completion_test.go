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

func TestOnTransferComplete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	deletion := mock.NewMockDeletionPolicy(ctrl)
	journal := mock.NewMockJournal(ctrl)
	metrics := mock.NewMockMetricsRecorder(ctrl)
	stats := new(models.CycleStats)

	task := movieTask(500)
	task.Mapping.DeleteAfterSync = true
	record := models.TransferRecord{CycleID: "cycle-1", FileID: 42, Size: 500, ResumeOffset: 200, Status: models.TransferStatusOK}

	gomock.InOrder(
		journal.EXPECT().RecordTransfer(gomock.Any(), record).Return(nil),
		metrics.EXPECT().TransferFinished(models.TransferStatusOK, int64(300)),
		deletion.EXPECT().MaybeDeleteFile(gomock.Any(), task.Mapping, task.Entry).Times(1),
	)

	svc := service.NewCompletionService(deletion, journal, stats, metrics, logger.Nop())
	svc.OnTransferComplete(context.Background(), task, record, nil)

	assert.Equal(t, int64(1), stats.Transferred.Load())
	assert.Equal(t, int64(300), stats.Bytes.Load())
	assert.Zero(t, stats.Failed.Load())
}

func TestOnTransferComplete_FailureSkipsDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	deletion := mock.NewMockDeletionPolicy(ctrl)
	journal := mock.NewMockJournal(ctrl)
	stats := new(models.CycleStats)

	task := movieTask(500)
	task.Mapping.DeleteAfterSync = true
	record := models.TransferRecord{FileID: 42, Status: models.TransferStatusFailed, Error: "boom"}

	journal.EXPECT().RecordTransfer(gomock.Any(), record).Return(nil)
	deletion.EXPECT().MaybeDeleteFile(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := service.NewCompletionService(deletion, journal, stats, service.NopMetrics{}, logger.Nop())
	svc.OnTransferComplete(context.Background(), task, record, adapter.ErrTransport)

	assert.Equal(t, int64(1), stats.Failed.Load())
	assert.Zero(t, stats.Transferred.Load())
	assert.Zero(t, stats.Bytes.Load())
}

func TestOnTransferComplete_JournalErrorIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	deletion := mock.NewMockDeletionPolicy(ctrl)
	journal := mock.NewMockJournal(ctrl)
	stats := new(models.CycleStats)

	task := movieTask(10)
	journal.EXPECT().RecordTransfer(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))
	deletion.EXPECT().MaybeDeleteFile(gomock.Any(), task.Mapping, task.Entry)

	svc := service.NewCompletionService(deletion, journal, stats, service.NopMetrics{}, logger.Nop())
	svc.OnTransferComplete(context.Background(), task, models.TransferRecord{Size: 10}, nil)

	assert.Equal(t, int64(1), stats.Transferred.Load())
}

func TestOnTransferComplete_JournalOutlivesCancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	deletion := mock.NewMockDeletionPolicy(ctrl)
	journal := mock.NewMockJournal(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	journal.EXPECT().RecordTransfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.TransferRecord) error {
			assert.NoError(t, ctx.Err())
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return nil
		})
	deletion.EXPECT().MaybeDeleteFile(gomock.Any(), gomock.Any(), gomock.Any())

	svc := service.NewCompletionService(deletion, journal, new(models.CycleStats), service.NopMetrics{}, logger.Nop())
	svc.OnTransferComplete(ctx, movieTask(1), models.TransferRecord{Size: 1}, nil)
}
