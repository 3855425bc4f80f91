package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/relatahq/relata"
)

// SignalService fans entity change events out over redis pub/sub. Each owner
// has their own channel; the realtime websocket endpoint subscribes to the
// requester's channel only.
type SignalService struct {
	rdb *redis.Client
}

func NewSignalService(redisClient *redis.Client) *SignalService {
	return &SignalService{
		rdb: redisClient,
	}
}

func channelFor(owner string) string {
	return "events:" + owner
}

func (s *SignalService) Publish(ctx context.Context, event relata.Event) error {
	jsonstr, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = s.rdb.Publish(ctx, channelFor(event.Owner), jsonstr).Err()
	if err != nil {
		return err
	}

	return nil
}

// Realtime forwards the owner's events into output until ctx is cancelled.
func (s *SignalService) Realtime(ctx context.Context, owner string, output chan<- relata.Event) {
	pubsub := s.rdb.Subscribe(ctx, channelFor(owner))
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event relata.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				slog.ErrorContext(
					ctx, "Error decoding event",
					slog.String("error", err.Error()),
					slog.String("module", "signal"),
				)
				continue
			}
			select {
			case output <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}
