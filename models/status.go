// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CycleState is the state of the sync cycle driver.
type CycleState string

const (
	// CycleIdle is the state before the first cycle starts.
	CycleIdle CycleState = "idle"
	// CycleRunning means mappings are being resolved and reconciled.
	CycleRunning CycleState = "running"
	// CycleDraining means every mapping was submitted and the driver waits
	// for reconciliation and transfers to finish.
	CycleDraining CycleState = "draining"
	// CycleScheduled means the cycle finished and the next one is armed.
	CycleScheduled CycleState = "scheduled"
	// CycleStopped means the driver finished its last cycle or was stopped.
	CycleStopped CycleState = "stopped"
)

// DriverStatus is a point-in-time view of the sync cycle driver.
type DriverStatus struct {
	State       CycleState    `json:"state"`
	CycleID     string        `json:"cycle_id,omitempty"`
	StartedAt   *time.Time    `json:"started_at,omitempty"`
	NextCycleAt *time.Time    `json:"next_cycle_at,omitempty"`
	Current     CycleSummary  `json:"current"`
	LastCycle   *CycleSummary `json:"last_cycle,omitempty"`
}

// StatusReport is the body of the status API.
type StatusReport struct {
	Driver    DriverStatus      `json:"driver"`
	Scheduler SchedulerSnapshot `json:"scheduler"`
	Build     BuildInfoView     `json:"build"`
}
