package notify

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const FeedChannel = "restaurant:feed"

// Redis publishes feed messages on a pub/sub channel that /ws/feed relays.
type Redis struct {
	client  *redis.Client
	channel string
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client, channel: FeedChannel}
}

func (r *Redis) Publish(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, r.channel, payload).Err()
}

// Subscribe calls fn with every raw payload until ctx ends or fn returns an error.
func (r *Redis) Subscribe(ctx context.Context, fn func(payload []byte) error) error {
	pubsub := r.client.Subscribe(ctx, r.channel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if err := fn([]byte(msg.Payload)); err != nil {
				return err
			}
		}
	}
}
