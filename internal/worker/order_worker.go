package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/flicky/go-shop-api/internal/model"
	"github.com/flicky/go-shop-api/internal/repository"
)

const (
	orderQueueName = "orders"
	dlxExchange    = "orders.dlx"
	dlqQueueName   = "orders.dlq"
	idempotencyTTL = 24 * time.Hour
)

// Deduper remembers which orders have already been tallied, by messageKey.
type Deduper interface {
	Seen(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

type redisDeduper struct{ client *redis.Client }

func NewRedisDeduper(client *redis.Client) Deduper {
	return &redisDeduper{client: client}
}

func (d *redisDeduper) Seen(ctx context.Context, key string) (bool, error) {
	n, err := d.client.Exists(ctx, idempotencyKey(key)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (d *redisDeduper) Mark(ctx context.Context, key string) error {
	return d.client.Set(ctx, idempotencyKey(key), "1", idempotencyTTL).Err()
}

func idempotencyKey(key string) string { return "order_processed:" + key }

// messageKey identifies an order across shoppers. Order ids are only unique
// within one shopper's log.
func messageKey(msg model.OrderMessage) string {
	return msg.ShopperID.String() + ":" + msg.OrderID
}

type ackAction int

const (
	actionAck ackAction = iota
	actionRequeue
	actionDeadLetter
)

// OrderWorker consumes placed orders and feeds the sales counters.
type OrderWorker struct {
	channel   *amqp.Channel
	salesRepo repository.SalesRepository
	deduper   Deduper
	log       *slog.Logger
	done      chan struct{}
}

func NewOrderWorker(ch *amqp.Channel, salesRepo repository.SalesRepository, deduper Deduper, log *slog.Logger) *OrderWorker {
	return &OrderWorker{
		channel:   ch,
		salesRepo: salesRepo,
		deduper:   deduper,
		log:       log,
		done:      make(chan struct{}),
	}
}

// SetupRabbitMQ declares exchanges, queues, and bindings (DLX/DLQ).
func SetupRabbitMQ(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(dlxExchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare DLX: %w", err)
	}
	if _, err := ch.QueueDeclare(dlqQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare DLQ: %w", err)
	}
	if err := ch.QueueBind(dlqQueueName, orderQueueName, dlxExchange, false, nil); err != nil {
		return fmt.Errorf("bind DLQ: %w", err)
	}
	if _, err := ch.QueueDeclare(orderQueueName, true, false, false, false, amqp.Table{
		"x-dead-letter-exchange":    dlxExchange,
		"x-dead-letter-routing-key": orderQueueName,
	}); err != nil {
		return fmt.Errorf("declare order queue: %w", err)
	}
	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set QoS: %w", err)
	}
	return nil
}

func (w *OrderWorker) Start(ctx context.Context) error {
	msgs, err := w.channel.Consume(orderQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	go func() {
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				w.processMessage(ctx, msg)
			case <-w.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	w.log.Info("order worker started")
	return nil
}

func (w *OrderWorker) Stop() { close(w.done) }

func (w *OrderWorker) processMessage(ctx context.Context, msg amqp.Delivery) {
	switch w.handle(ctx, msg.Body) {
	case actionAck:
		_ = msg.Ack(false)
	case actionRequeue:
		_ = msg.Nack(false, true)
	case actionDeadLetter:
		_ = msg.Nack(false, false) // -> DLQ
	}
}

func (w *OrderWorker) handle(ctx context.Context, body []byte) ackAction {
	var orderMsg model.OrderMessage
	if err := json.Unmarshal(body, &orderMsg); err != nil {
		w.log.Error("unmarshal order message", "error", err)
		return actionDeadLetter
	}
	if orderMsg.OrderID == "" {
		w.log.Error("order message without id")
		return actionDeadLetter
	}

	log := w.log.With("order_id", orderMsg.OrderID, "shopper_id", orderMsg.ShopperID)
	key := messageKey(orderMsg)

	seen, err := w.deduper.Seen(ctx, key)
	if err != nil {
		log.Error("check idempotency key", "error", err)
		return actionRequeue
	}
	if seen {
		log.Info("order already processed, skipping")
		return actionAck
	}

	if err := w.salesRepo.RecordOrder(ctx, orderMsg); err != nil {
		log.Error("record sales failed", "error", err)
		return actionDeadLetter
	}

	if err := w.deduper.Mark(ctx, key); err != nil {
		log.Error("set idempotency key", "error", err)
	}

	log.Info("order processed successfully", "lines", len(orderMsg.Items))
	return actionAck
}
