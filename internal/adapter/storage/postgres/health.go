package postgres

import (
	"context"
	"fmt"
	"time"
)

const defaultPingTimeout = 2 * time.Second

// HealthCheck implements ports.HealthChecker for the ledger database.
type HealthCheck struct {
	pool    Pool
	timeout time.Duration
}

// NewHealthCheck creates a health checker whose ping gives up after two seconds.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool, timeout: defaultPingTimeout}
}

// Ping runs a trivial query within the check's timeout.
func (h *HealthCheck) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	if _, err := h.pool.Exec(ctx, "SELECT 1"); err != nil {
		return fmt.Errorf("ledger database unreachable: %w", err)
	}
	return nil
}

// Name identifies the check in the /health report.
func (h *HealthCheck) Name() string {
	return "postgresql"
}
