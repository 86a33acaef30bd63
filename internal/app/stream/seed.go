package stream

import "time"

// SeedRecords returns the backlog a fresh session starts with, stamped relative to now
func SeedRecords(now time.Time) []Record {
	return []Record{
		{Timestamp: now.Add(-42 * time.Second), Level: LevelInfo, Message: "ingress-nginx reloaded configuration (3 backends)"},
		{Timestamp: now.Add(-35 * time.Second), Level: LevelInfo, Message: "GET /healthz 200 in 3ms"},
		{Timestamp: now.Add(-27 * time.Second), Level: LevelWarn, Message: "checkout-api p95 latency above SLO (812ms)"},
		{Timestamp: now.Add(-19 * time.Second), Level: LevelInfo, Message: "deployment auth-svc scaled to 4 replicas"},
		{Timestamp: now.Add(-11 * time.Second), Level: LevelError, Message: "payments gateway timeout after 3000ms"},
		{Timestamp: now.Add(-4 * time.Second), Level: LevelInfo, Message: "cron job ledger-reconcile completed in 8.2s"},
	}
}
