package vault

import (
	"context"

	"github.com/iudanet/passvault/internal/models"
)

// ReplayState описывает итог прогона offline queue
type ReplayState int

const (
	// ReplayIdle очередь пуста, replay не выполнялся
	ReplayIdle ReplayState = iota
	// ReplayCommitted все записи очереди успешно реплицированы
	ReplayCommitted
	// ReplayPartiallyFailed часть записей осталась в очереди до
	// следующей попытки
	ReplayPartiallyFailed
)

// ReplayResult contains offline queue replay results
type ReplayResult struct {
	State    ReplayState
	Replayed int // количество успешно реплицированных записей
	Failed   int // количество записей, оставшихся в очереди
}

// replayQueue прогоняет offline queue через online-путь создания.
// Успешные записи покидают очередь сразу, упавшие остаются до следующего
// ListAll: частичный сбой не откатывает уже реплицированные записи.
func (s *service) replayQueue(ctx context.Context) ReplayResult {
	queue, err := s.cache.GetQueue(ctx)
	if err != nil {
		s.logger.Warn("failed to read offline queue", "error", err)
		return ReplayResult{State: ReplayPartiallyFailed}
	}
	if len(queue) == 0 {
		return ReplayResult{State: ReplayIdle}
	}

	s.logger.Info("replaying offline queue", "pending", len(queue))

	remaining := make([]models.Credential, 0)
	result := ReplayResult{}

	for _, cred := range queue {
		offlineID := cred.ID
		cred.ID = ""

		serverID, err := s.remote.Insert(ctx, encryptCredential(cred))
		if err != nil {
			s.logger.Warn("replay failed for queued credential",
				"offline_id", offlineID, "error", err)
			cred.ID = offlineID
			remaining = append(remaining, cred)
			result.Failed++
			continue
		}

		s.logger.Debug("queued credential replicated",
			"offline_id", offlineID, "server_id", serverID)
		result.Replayed++
	}

	// Сохраняем остаток очереди (пустой при полном успехе)
	if err := s.cache.SaveQueue(ctx, remaining); err != nil {
		s.logger.Warn("failed to persist offline queue after replay", "error", err)
		result.State = ReplayPartiallyFailed
		return result
	}

	if result.Failed > 0 {
		result.State = ReplayPartiallyFailed
	} else {
		result.State = ReplayCommitted
	}
	return result
}
