package commands

import (
	"errors"

	"logitech/internal/pkg/errs"
	"logitech/internal/pkg/guard"
)

// Payment gateway event types carried by webhook deliveries.
const (
	PaymentEventSucceeded = "payment.succeeded"
	PaymentEventFailed    = "payment.failed"
	PaymentEventExpired   = "payment.expired"
)

var (
	ErrProcessPaymentEventCommandIsNotConstructed = errors.New(
		"ProcessPaymentEventCommand must be created via NewProcessPaymentEventCommand constructor",
	)
	ErrEventIDIsRequired   = errs.NewValueIsRequiredError("eventID")
	ErrEventTypeIsInvalid  = errs.NewValueIsInvalidError("eventType")
	ErrSignatureIsRequired = errs.NewValueIsRequiredError("signature")
)

// ProcessPaymentEventCommand represents a webhook delivery from the payment
// gateway. Payload is the raw request body the signature was computed over;
// it must be captured before any decoding so verification sees the exact
// bytes the gateway signed.
type ProcessPaymentEventCommand struct { //nolint:recvcheck //using for validation
	eventID       string
	transactionID string
	eventType     string
	payload       []byte
	signature     string

	guard guard.ConstructorGuard
}

// NewProcessPaymentEventCommand creates a command from a webhook delivery.
// Validates the provider event id, payment reference, event type and
// signature presence; signature verification itself happens in the handler.
func NewProcessPaymentEventCommand(
	eventID string,
	transactionID string,
	eventType string,
	payload []byte,
	signature string,
) (ProcessPaymentEventCommand, error) {
	eventCommand := ProcessPaymentEventCommand{
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		eventCommand.setEventID(eventID),
		eventCommand.setTransactionID(transactionID),
		eventCommand.setEventType(eventType),
		eventCommand.setSignature(signature),
	); err != nil {
		return ProcessPaymentEventCommand{}, err
	}

	return eventCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessPaymentEventCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentEventCommandIsNotConstructed)
}

// EventID returns the provider-assigned event identifier used for dedup.
func (c ProcessPaymentEventCommand) EventID() string {
	return c.eventID
}

// TransactionID returns the payment reference linking the event to an order.
func (c ProcessPaymentEventCommand) TransactionID() string {
	return c.transactionID
}

// EventType returns the payment outcome reported by the gateway.
func (c ProcessPaymentEventCommand) EventType() string {
	return c.eventType
}

// Payload returns the raw webhook body the signature covers.
func (c ProcessPaymentEventCommand) Payload() []byte {
	return c.payload
}

// Signature returns the hex-encoded HMAC the gateway attached.
func (c ProcessPaymentEventCommand) Signature() string {
	return c.signature
}

func (c *ProcessPaymentEventCommand) setEventID(eventID string) error {
	if eventID == "" {
		return ErrEventIDIsRequired
	}

	c.eventID = eventID
	return nil
}

func (c *ProcessPaymentEventCommand) setTransactionID(transactionID string) error {
	if transactionID == "" {
		return ErrTransactionIDIsRequired
	}

	c.transactionID = transactionID
	return nil
}

func (c *ProcessPaymentEventCommand) setEventType(eventType string) error {
	switch eventType {
	case PaymentEventSucceeded, PaymentEventFailed, PaymentEventExpired:
		c.eventType = eventType
		return nil
	default:
		return ErrEventTypeIsInvalid
	}
}

func (c *ProcessPaymentEventCommand) setSignature(signature string) error {
	if signature == "" {
		return ErrSignatureIsRequired
	}

	c.signature = signature
	return nil
}
