package netwatch

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_Snapshot(t *testing.T) {
	gate := NewGate(true)
	assert.True(t, gate.IsOnline())

	gate.SetOnline(false)
	assert.False(t, gate.IsOnline())
}

func TestGate_SubscribersNotifiedOnTransition(t *testing.T) {
	gate := NewGate(true)

	var transitions []bool
	gate.Subscribe(func(online bool) {
		transitions = append(transitions, online)
	})

	gate.SetOnline(false)
	gate.SetOnline(false) // без смены состояния уведомления нет
	gate.SetOnline(true)

	assert.Equal(t, []bool{false, true}, transitions)
}

func TestMonitor_ProbeUpdatesGate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	gate := NewGate(false)
	monitor := NewMonitor(gate, srv.URL, time.Minute, slog.Default())

	monitor.probe(context.Background())
	require.True(t, gate.IsOnline())

	// После остановки сервера probe переводит gate в offline
	srv.Close()
	monitor.probe(context.Background())
	assert.False(t, gate.IsOnline())
}
