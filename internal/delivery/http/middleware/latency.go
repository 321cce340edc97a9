package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/transport-admin/internal/domain/repository"
	"go.uber.org/zap"
)

// Latency записывает длительность запроса в капированный список измерений.
// Запись идёт в фоне и не задерживает ответ.
func Latency(cacheRepo repository.CacheRepository, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		millis := float64(time.Since(start).Microseconds()) / 1000.0
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if pushErr := cacheRepo.PushLatencySample(ctx, millis); pushErr != nil {
				logger.Debug("Latency sample dropped", zap.Error(pushErr))
			}
		}()

		return err
	}
}
