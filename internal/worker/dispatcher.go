package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/finwellhq/notify-service/internal/rabbitmq/queue"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/worker/mock.go -package=mocks

type eventConsumer interface {
	Consume(ctx context.Context, out chan<- queue.DomainEvent, strategy retry.Strategy) error
}

type eventHandler interface {
	HandleMessage(ctx context.Context, event queue.DomainEvent, strategy retry.Strategy)
}

// Dispatcher consumes domain events from the queue and fans them out to a
// pool of workers, each dispatching events into the notification and
// webhook services.
type Dispatcher struct {
	queue   eventConsumer
	handler eventHandler
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(q eventConsumer, h eventHandler) *Dispatcher {
	return &Dispatcher{
		queue:   q,
		handler: h,
	}
}

// Run starts workerCount workers and blocks until ctx is done and all
// workers have drained.
func (d *Dispatcher) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	eventChan := make(chan queue.DomainEvent, workerCount*10)

	go func() {
		if err := d.queue.Consume(ctx, eventChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume events")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case event, ok := <-eventChan:
					if !ok {
						zlog.Logger.Printf("worker-%d channel closed, shutting down", id)
						return
					}

					d.handler.HandleMessage(ctx, event, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("dispatcher stopped")
}
