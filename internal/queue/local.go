package queue

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
)

// Local runs subscribers in-process on their own goroutine. Jobs published
// before anyone subscribes are dropped.
type Local struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	wg       sync.WaitGroup
	closed   bool
	inline   bool
}

func NewLocal() *Local {
	return &Local{handlers: map[string][]Handler{}}
}

// NewInline returns a Local whose Publish runs the handlers before it
// returns. Runtimes that freeze the process after a response, like Lambda,
// need this to finish jobs.
func NewInline() *Local {
	l := NewLocal()
	l.inline = true
	return l
}

func (l *Local) Publish(ctx context.Context, topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	l.mu.RLock()
	if l.closed {
		l.mu.RUnlock()
		return ErrClosed
	}
	handlers := append([]Handler(nil), l.handlers[topic]...)
	if !l.inline {
		l.wg.Add(len(handlers))
	}
	l.mu.RUnlock()

	if len(handlers) == 0 {
		config.WithContext(ctx).WithField("topic", topic).Warn("No subscriber for job, dropping")
		return nil
	}

	jobCtx := context.WithoutCancel(ctx)
	for _, h := range handlers {
		if l.inline {
			l.run(jobCtx, topic, h, body)
			continue
		}
		go func(h Handler) {
			defer l.wg.Done()
			l.run(jobCtx, topic, h, body)
		}(h)
	}
	return nil
}

func (l *Local) run(ctx context.Context, topic string, h Handler, body []byte) {
	if err := h(ctx, body); err != nil {
		config.WithContext(ctx).WithError(err).WithField("topic", topic).Error("Job handler failed")
	}
}

func (l *Local) Subscribe(topic string, handler Handler) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	l.handlers[topic] = append(l.handlers[topic], handler)
	return nil
}

// Close stops accepting jobs and waits for running handlers.
func (l *Local) Close() error {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
	l.wg.Wait()
	return nil
}

// Wait blocks until every job published so far has been handled.
func (l *Local) Wait() {
	l.wg.Wait()
}
