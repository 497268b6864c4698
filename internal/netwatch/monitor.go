package netwatch

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultProbeInterval период опроса доступности сети
	DefaultProbeInterval = 15 * time.Second
	// probeTimeout таймаут одного probe-запроса
	probeTimeout = 5 * time.Second
)

// Monitor периодически проверяет доступность probe-endpoint и обновляет Gate
type Monitor struct {
	gate     *Gate
	client   *http.Client
	logger   *slog.Logger
	probeURL string
	interval time.Duration
}

// NewMonitor creates a connectivity monitor for the gate
func NewMonitor(gate *Gate, probeURL string, interval time.Duration, logger *slog.Logger) *Monitor {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	return &Monitor{
		gate:     gate,
		probeURL: probeURL,
		interval: interval,
		logger:   logger,
		client:   &http.Client{Timeout: probeTimeout},
	}
}

// Run probes connectivity until the context is cancelled.
// Первый probe выполняется сразу, дальше по тикеру.
func (m *Monitor) Run(ctx context.Context) {
	m.probe(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

// probe выполняет один запрос доступности и обновляет gate
func (m *Monitor) probe(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, m.probeURL, nil)
	if err != nil {
		m.logger.Warn("failed to build probe request", "error", err)
		return
	}

	resp, err := m.client.Do(req)
	if err != nil {
		if m.gate.IsOnline() {
			m.logger.Info("connectivity lost", "probe_url", m.probeURL, "error", err)
		}
		m.gate.SetOnline(false)
		return
	}
	_ = resp.Body.Close()

	if !m.gate.IsOnline() {
		m.logger.Info("connectivity restored", "probe_url", m.probeURL)
	}
	m.gate.SetOnline(true)
}
