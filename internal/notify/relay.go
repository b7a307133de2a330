package notify

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
)

const relayChannel = "neurobridge:notifications"

type envelope struct {
	UserID       uuid.UUID       `json:"user_id"`
	Notification json.RawMessage `json:"notification"`
}

// RedisRelay publishes notifications on a redis channel so that every API
// process, including the one holding the user's socket, can deliver them.
type RedisRelay struct {
	client *redis.Client
	hub    *Hub
}

func NewRedisRelay(client *redis.Client, hub *Hub) *RedisRelay {
	return &RedisRelay{client: client, hub: hub}
}

func (r *RedisRelay) Notify(ctx context.Context, userID uuid.UUID, n Notification) error {
	if n.Variant == "" {
		n.Variant = VariantDefault
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	data, err := json.Marshal(envelope{UserID: userID, Notification: payload})
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, relayChannel, data).Err()
}

// Run forwards relayed notifications to the local hub until ctx is done.
func (r *RedisRelay) Run(ctx context.Context) {
	sub := r.client.Subscribe(ctx, relayChannel)
	defer sub.Close()

	log := config.Logger.WithField("channel", relayChannel)
	log.Info("Notification relay started")

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				log.WithError(err).Warn("Dropping malformed relayed notification")
				continue
			}
			r.hub.deliver(ctx, env.UserID, env.Notification)
		}
	}
}
