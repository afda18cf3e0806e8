package dispatcher

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/M34031-1/high-load-course/internal/models"
	"github.com/M34031-1/high-load-course/internal/orders"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

// OrderRepo looks up the order a payment notification refers to.
type OrderRepo interface {
	GetByID(ctx context.Context, id string) (*orders.Order, error)
}

// Router submits a payment into a per-account pipeline and returns the
// terminal result plus the name of the account that handled it.
type Router interface {
	Submit(ctx context.Context, payment models.Payment) (models.ProcessResult, string, error)
}

// Publisher emits outcome and DLQ events.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// Dispatcher is the bounded entry point for "payment created" notifications.
// A handler-wide gate caps in-flight dispatches so a stalled provider cannot
// grow in-memory work without bound; the actual lookup-and-submit runs on a
// worker pool so the notification stream only ever blocks on the gate wait.
type Dispatcher struct {
	orders    OrderRepo
	router    Router
	publisher Publisher

	gate    *semaphore.Weighted
	jobs    chan models.PaymentCreatedEvent
	workers int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(orderRepo OrderRepo, router Router, publisher Publisher, maxInFlight int64, workers int) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())

	return &Dispatcher{
		orders:    orderRepo,
		router:    router,
		publisher: publisher,
		gate:      semaphore.NewWeighted(maxInFlight),
		jobs:      make(chan models.PaymentCreatedEvent),
		workers:   workers,
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
}

func (d *Dispatcher) Stop() {
	d.cancel()
	d.wg.Wait()
}

// Dispatch admits one notification. It blocks only on the gate wait; once a
// slot is held the work is handed to the pool and the caller returns.
// "Accepted for processing" is all the upstream ever learns. The business
// outcome is observable only through the durable payment records.
func (d *Dispatcher) Dispatch(ctx context.Context, event models.PaymentCreatedEvent) error {
	if err := d.gate.Acquire(ctx, 1); err != nil {
		return err
	}

	select {
	case d.jobs <- event:
		return nil
	case <-d.ctx.Done():
		d.gate.Release(1)
		return d.ctx.Err()
	case <-ctx.Done():
		d.gate.Release(1)
		return ctx.Err()
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for {
		select {
		case event := <-d.jobs:
			d.process(event)
		case <-d.ctx.Done():
			return
		}
	}
}

// process owns the gate slot taken in Dispatch and releases it on every exit
// path. The payment's deadline bounds everything downstream, gate waits and
// the external call included.
func (d *Dispatcher) process(event models.PaymentCreatedEvent) {
	defer d.gate.Release(1)

	ctx := d.ctx
	if !event.Deadline.IsZero() {
		var cancel context.CancelFunc
		ctx, cancel = context.WithDeadline(d.ctx, event.Deadline)
		defer cancel()
	}

	order, err := d.orders.GetByID(ctx, event.OrderID.String())
	if err != nil {
		logrus.Errorf("Order %s was not found for payment %s: %v", event.OrderID, event.PaymentID, err)
		d.sendToDLQ(event, err)
		return
	}

	logrus.Debugf("Dispatching payment %s for order %s (customer %s)", event.PaymentID, order.ID, order.CustomerID)

	payment := models.Payment{
		PaymentID:        event.PaymentID,
		OrderID:          event.OrderID,
		Amount:           event.Amount,
		PaymentStartedAt: time.Now().UTC(),
		Deadline:         event.Deadline,
	}

	result, accountName, err := d.router.Submit(ctx, payment)
	if err != nil {
		logrus.Errorf("Payment %s failed fatally before a terminal outcome: %v", event.PaymentID, err)
		d.sendToDLQ(event, err)
		return
	}

	processed := models.PaymentProcessedEvent{
		PaymentID:      payment.PaymentID,
		OrderID:        payment.OrderID,
		Amount:         payment.Amount,
		AccountName:    accountName,
		ProcessingTime: result.ProcessingTime,
		ProcessedAt:    time.Now().UTC(),
	}
	if err := d.publisher.Publish(d.ctx, models.PaymentProcessedTopic, processed); err != nil {
		logrus.Errorf("Failed to publish processed event for payment %s: %v", event.PaymentID, err)
	}
}

func (d *Dispatcher) sendToDLQ(event models.PaymentCreatedEvent, cause error) {
	value, _ := json.Marshal(event)
	message := models.DLQMessage{
		OriginalTopic: models.PaymentCreatedTopic,
		Key:           event.PaymentID.String(),
		Value:         string(value),
		Reason:        cause.Error(),
		Timestamp:     time.Now().UTC(),
		Attempts:      1,
	}

	if err := d.publisher.Publish(d.ctx, models.PaymentsDLQTopic, message); err != nil {
		logrus.Errorf("Failed to send payment %s to DLQ: %v", event.PaymentID, err)
	}
}
