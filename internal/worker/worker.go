package worker

import (
	"context"
)

// Worker - фоновая задача с собственным жизненным циклом
// (потребитель стрима, периодический агрегатор)
type Worker interface {
	// Start блокирует до остановки воркера или отмены контекста
	Start(ctx context.Context) error

	// Stop сигнализирует воркеру завершиться
	Stop() error

	// Name возвращает имя воркера для логов
	Name() string
}
