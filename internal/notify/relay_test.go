package notify_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/saulo-duarte/neurobridge-lambda/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRelayFansOutAcrossHubs(t *testing.T) {
	mr := miniredis.RunT(t)
	newClient := func() *redis.Client {
		c := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { c.Close() })
		return c
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	apiHub, socketHub := notify.NewHub(), notify.NewHub()
	sender := notify.NewRedisRelay(newClient(), apiHub)
	receiver := notify.NewRedisRelay(newClient(), socketHub)
	go sender.Run(ctx)
	go receiver.Run(ctx)

	require.Eventually(t, func() bool {
		return mr.PubSubNumSub(notify.RelayChannel)[notify.RelayChannel] == 2
	}, 2*time.Second, 10*time.Millisecond)

	userID := uuid.New()
	remote, stopRemote := notify.Listen(socketHub, userID)
	defer stopRemote()
	local, stopLocal := notify.Listen(apiHub, userID)
	defer stopLocal()
	other, stopOther := notify.Listen(socketHub, uuid.New())
	defer stopOther()

	require.NoError(t, sender.Notify(ctx, userID, notify.Notification{Type: "report.shared", Title: "Report shared"}))

	for name, ch := range map[string]<-chan []byte{"remote": remote, "local": local} {
		select {
		case msg := <-ch:
			var got notify.Notification
			require.NoError(t, json.Unmarshal(msg, &got), name)
			assert.Equal(t, "Report shared", got.Title, name)
			assert.Equal(t, notify.VariantDefault, got.Variant, name)
		case <-time.After(2 * time.Second):
			t.Fatalf("%s hub did not receive the notification", name)
		}
	}

	select {
	case <-other:
		t.Fatal("notification leaked to another user")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRedisRelayStopsWithContext(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		notify.NewRedisRelay(client, notify.NewHub()).Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("relay did not stop")
	}
}
