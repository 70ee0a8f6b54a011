package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGenerateDocumentCommandIsNotConstructed = errors.New(
		"GenerateDocumentCommand must be created via NewInvoiceCommand or NewLabelCommand",
	)
)

// GenerateDocumentCommand asks for a printable document of an order. Each
// generation recomposes from current data and is archived as an issuance.
type GenerateDocumentCommand struct { //nolint:recvcheck //using for validation
	kind     document.Kind
	orderID  kernel.OrderID
	line     string
	sequence int

	guard guard.ConstructorGuard
}

// NewInvoiceCommand requests the invoice of orderID.
func NewInvoiceCommand(orderID kernel.OrderID, line string) (GenerateDocumentCommand, error) {
	return newGenerateDocumentCommand(document.Invoice, orderID, line, 0)
}

// NewLabelCommand requests the label of the sequence-th package, 1-based.
func NewLabelCommand(orderID kernel.OrderID, line string, sequence int) (GenerateDocumentCommand, error) {
	return newGenerateDocumentCommand(document.Label, orderID, line, sequence)
}

func newGenerateDocumentCommand(
	kind document.Kind,
	orderID kernel.OrderID,
	line string,
	sequence int,
) (GenerateDocumentCommand, error) {
	command := GenerateDocumentCommand{
		kind:  kind,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setLine(line),
		command.setSequence(sequence),
	); err != nil {
		return GenerateDocumentCommand{}, errs.NewValidationErrorWithCause(kind.String()+" request is invalid", err)
	}

	return command, nil
}

func (c GenerateDocumentCommand) Validate() error {
	return c.guard.Validate(ErrGenerateDocumentCommandIsNotConstructed)
}

func (c GenerateDocumentCommand) Kind() document.Kind { return c.kind }
func (c GenerateDocumentCommand) OrderID() kernel.OrderID { return c.orderID }
func (c GenerateDocumentCommand) Line() string { return c.line }

// Sequence is the package row printed on a label; zero for invoices.
func (c GenerateDocumentCommand) Sequence() int { return c.sequence }

func (c *GenerateDocumentCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *GenerateDocumentCommand) setLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return errs.NewValueIsRequiredError("line")
	}

	c.line = line
	return nil
}

func (c *GenerateDocumentCommand) setSequence(sequence int) error {
	if c.kind == document.Label && sequence < 1 {
		return errs.NewValueIsOutOfRangeError("package sequence", sequence, 1, "package count")
	}

	c.sequence = sequence
	return nil
}
