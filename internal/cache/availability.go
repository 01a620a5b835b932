package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/bellamoda/salon-booking/internal/domain/booking"
)

// Availability responses are cheap to recompute, so the cache is short
// lived and purely an optimization: every method on a nil *Availability
// is a no-op, letting the API run without redis configured.

const slotTTL = 60 * time.Second

type Availability struct {
	client *redis.Client
}

func NewAvailability(redisURL string) (*Availability, error) {
	if redisURL == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Availability{client: client}, nil
}

func slotKey(employeeID, serviceID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s:%d", employeeID, date, serviceID)
}

func (a *Availability) GetSlots(
	ctx context.Context,
	employeeID uint,
	serviceID uint,
	date string,
) ([]domain.TimeSlot, bool) {

	if a == nil {
		return nil, false
	}

	raw, err := a.client.Get(ctx, slotKey(employeeID, serviceID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (a *Availability) SetSlots(
	ctx context.Context,
	employeeID uint,
	serviceID uint,
	date string,
	slots []domain.TimeSlot,
) {

	if a == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := a.client.Set(ctx, slotKey(employeeID, serviceID, date), raw, slotTTL).Err(); err != nil {
		log.Println("availability cache set:", err)
	}
}

// InvalidateDay drops every cached slot list for the employee on that
// date, whatever the service. Called after any booking write.
func (a *Availability) InvalidateDay(ctx context.Context, employeeID uint, date string) {
	if a == nil {
		return
	}

	pattern := fmt.Sprintf("availability:%d:%s:*", employeeID, date)

	iter := a.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := a.client.Del(ctx, iter.Val()).Err(); err != nil {
			log.Println("availability cache invalidate:", err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Println("availability cache scan:", err)
	}
}

func (a *Availability) Close() error {
	if a == nil {
		return nil
	}
	return a.client.Close()
}
