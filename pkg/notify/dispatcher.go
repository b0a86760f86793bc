package notify

import (
	"context"
	"sync"
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

// deliveryResult is what the mail actor reports for every message it handled.
type deliveryResult struct {
	Message Message
	Err     error
	Elapsed time.Duration
}

// mailActor delivers one message at a time. Failures are reported on
// results and never retried.
type mailActor struct {
	mailer  Mailer
	timeout time.Duration
	results chan<- deliveryResult
	logger  *zap.Logger
}

func (a *mailActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *Message:
		start := time.Now()
		sendCtx, cancel := context.WithTimeout(context.Background(), a.timeout)
		err := a.mailer.Send(sendCtx, *msg)
		cancel()
		a.results <- deliveryResult{Message: *msg, Err: err, Elapsed: time.Since(start)}

	case *actor.Started:
		a.logger.Info("Mail actor started")

	case *actor.Stopped:
		a.logger.Info("Mail actor stopped")
	}
}

// Dispatcher submits emails to a background actor. Dispatch never blocks on
// delivery and never returns delivery errors; those are logged.
type Dispatcher struct {
	system  *actor.ActorSystem
	pid     *actor.PID
	results chan deliveryResult
	logger  *zap.Logger

	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewDispatcher(mailer Mailer, timeout time.Duration, logger *zap.Logger) (*Dispatcher, error) {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	d := &Dispatcher{
		system:  actor.NewActorSystem(),
		results: make(chan deliveryResult, 64),
		logger:  logger,
	}

	props := actor.PropsFromProducer(func() actor.Actor {
		return &mailActor{
			mailer:  mailer,
			timeout: timeout,
			results: d.results,
			logger:  logger.Named("mail-actor"),
		}
	})
	pid, err := d.system.Root.SpawnNamed(props, "mail-actor")
	if err != nil {
		return nil, err
	}
	d.pid = pid

	d.wg.Add(1)
	go d.logResults()

	return d, nil
}

// Dispatch queues msg for delivery and returns immediately.
func (d *Dispatcher) Dispatch(msg Message) {
	d.system.Root.Send(d.pid, &msg)
}

func (d *Dispatcher) logResults() {
	defer d.wg.Done()
	for res := range d.results {
		if res.Err != nil {
			d.logger.Error("Failed to deliver email",
				zap.String("to", res.Message.To),
				zap.String("subject", res.Message.Subject),
				zap.Duration("elapsed", res.Elapsed),
				zap.Error(res.Err))
			continue
		}
		d.logger.Debug("Email delivered",
			zap.String("to", res.Message.To),
			zap.String("subject", res.Message.Subject),
			zap.Duration("elapsed", res.Elapsed))
	}
}

// Close delivers everything already queued, then stops the actor and the
// result logger.
func (d *Dispatcher) Close() error {
	var err error
	d.closeOnce.Do(func() {
		err = d.system.Root.PoisonFuture(d.pid).Wait()
		close(d.results)
		d.wg.Wait()
	})
	return err
}
