package commands

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"logitech/internal/core/domain/model/kernel"
	"logitech/internal/core/domain/model/order"
	"logitech/internal/core/ports"
	"logitech/internal/pkg/errs"
)

// ErrUnauthorizedEvent is returned when a webhook delivery fails signature
// verification. The event is rejected without touching any state.
var ErrUnauthorizedEvent = errors.New("payment event failed signature verification")

const defaultWebhookTimeout = 5 * time.Second

// ProcessPaymentEventCommandHandler applies payment-gateway webhook events
// to orders. Gateways redeliver events on ambiguous network failures, so the
// handler enforces exactly-once application: the provider event id is
// recorded in the same transaction as the status change, and redeliveries
// commit as benign no-ops.
//
// Processing runs under a bounded deadline and fails closed: a timed-out
// delivery rolls back, leaves the event id unrecorded, and stays safe for
// the gateway to retry.
type ProcessPaymentEventCommandHandler struct {
	uowFactory WebhookUoWFactory
	secret     []byte
	timeout    time.Duration
	publisher  ports.StatusPublisher
	logger     *slog.Logger
}

// NewProcessPaymentEventCommandHandler creates a webhook handler using the
// shared secret agreed with the payment gateway. A non-positive timeout
// falls back to the default.
func NewProcessPaymentEventCommandHandler(
	uowFactory WebhookUoWFactory,
	secret []byte,
	timeout time.Duration,
	publisher ports.StatusPublisher,
	logger *slog.Logger,
) ProcessPaymentEventCommandHandler {
	if timeout <= 0 {
		timeout = defaultWebhookTimeout
	}

	return ProcessPaymentEventCommandHandler{
		uowFactory: uowFactory,
		secret:     secret,
		timeout:    timeout,
		publisher:  publisher,
		logger:     logger.With("component", "ProcessPaymentEventCommandHandler"),
	}
}

// Handle processes a webhook delivery.
// Verification failure returns ErrUnauthorizedEvent. An unknown payment
// reference, a replayed event id, or an order already beyond pending all
// commit as success no-ops. A verified succeeded event moves a pending
// order to paid; failed and expired events cancel it.
func (h *ProcessPaymentEventCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.verifySignature(cmd); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	alreadyProcessed, err := uow.ProcessedEventRepository().Record(ctx, cmd.EventID())
	if err != nil {
		return err
	}
	if alreadyProcessed {
		h.logger.Info("duplicate payment event ignored", "event_id", cmd.EventID())
		return uow.Commit(ctx)
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByTransactionID(ctx, cmd.TransactionID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.Info("payment event for unknown transaction ignored",
				"event_id", cmd.EventID(),
				"transaction_id", cmd.TransactionID(),
			)
			return uow.Commit(ctx)
		}
		return err
	}

	if aggregate.Status() != order.Pending {
		h.logger.Info("payment event for non-pending order ignored",
			"event_id", cmd.EventID(),
			"order_id", aggregate.ID().String(),
			"status", aggregate.Status().String(),
		)
		return uow.Commit(ctx)
	}

	target := order.Cancelled
	if cmd.EventType() == PaymentEventSucceeded {
		target = order.Paid
	}

	if err = aggregate.TransitionTo(target, kernel.PaymentSystemActor(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyStatusChanged(ctx, h.publisher, h.logger, aggregate)

	return nil
}

// verifySignature checks the hex-encoded HMAC-SHA256 of the raw payload
// against the shared secret in constant time.
func (h *ProcessPaymentEventCommandHandler) verifySignature(cmd ProcessPaymentEventCommand) error {
	provided, err := hex.DecodeString(cmd.Signature())
	if err != nil {
		return ErrUnauthorizedEvent
	}

	mac := hmac.New(sha256.New, h.secret)
	mac.Write(cmd.Payload())

	if !hmac.Equal(provided, mac.Sum(nil)) {
		return ErrUnauthorizedEvent
	}

	return nil
}
