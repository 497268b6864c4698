// Package netwatch отслеживает online/offline состояние устройства.
// Repository читает snapshot-значение в начале каждой операции; переход
// online→offline в середине операции не перепроверяется — такие сбои
// уходят в обычные fallback-ветки удаленных ошибок.
package netwatch

import "sync"

// Gate tracks the current connectivity state
type Gate struct {
	mu     sync.RWMutex
	subs   []func(online bool)
	online bool
}

// NewGate creates a gate with the given initial state
func NewGate(online bool) *Gate {
	return &Gate{online: online}
}

// IsOnline returns a snapshot of the current state
func (g *Gate) IsOnline() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.online
}

// SetOnline updates the state and notifies subscribers on transitions
func (g *Gate) SetOnline(online bool) {
	g.mu.Lock()
	changed := g.online != online
	g.online = online
	subs := g.subs
	g.mu.Unlock()

	// Уведомляем только при смене состояния
	if !changed {
		return
	}
	for _, fn := range subs {
		fn(online)
	}
}

// Subscribe registers a callback invoked on every state transition.
// Callback вызывается синхронно из SetOnline и не должен блокировать.
func (g *Gate) Subscribe(fn func(online bool)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.subs = append(g.subs, fn)
}
