//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type NotificationEvent struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	Timestamp  int64  `json:"timestamp"`
	EntityID   string `json:"entity_id,omitempty"`
	EntityType string `json:"entity_type,omitempty"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовое событие добавления маршрута
	event := NotificationEvent{
		Type:       "route_added",
		Message:    "Добавлен маршрут №23 «Вокзал - Аэропорт»",
		UserID:     "op-test",
		UserName:   "Тестовый оператор",
		Timestamp:  time.Now().UnixMilli(),
		EntityID:   "route-test",
		EntityType: "route",
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:notifications",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:notifications\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Type: %s\n", event.Type)
	fmt.Printf("   Message: %s\n", event.Message)
	fmt.Println("\nCheck the notifications feed via GET /api/v1/notifications")
}
