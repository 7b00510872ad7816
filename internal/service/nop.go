package service

import (
	"time"

	"github.com/MKhiriev/go-mirror-sync/models"
)

// NopProgress is a ProgressReporter that discards every event.
type NopProgress struct{}

func (NopProgress) TransferStarted(int, models.DownloadTask, int64)  {}
func (NopProgress) TransferProgress(int, int64, int64)               {}
func (NopProgress) TransferFinished(int, models.DownloadTask, error) {}

// NopMetrics is a MetricsRecorder that discards every measurement.
type NopMetrics struct{}

func (NopMetrics) EntryClassified(models.Classification)         {}
func (NopMetrics) TransferFinished(models.TransferStatus, int64) {}
func (NopMetrics) RemoteDeleted(string)                          {}
func (NopMetrics) SchedulerChanged(int, int)                     {}
func (NopMetrics) CycleFinished(time.Duration)                   {}
