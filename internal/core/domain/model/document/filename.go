package document

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
)

var unsafeFilenameChars = strings.NewReplacer(
	"/", "-", "\\", "-", ":", "-", "*", "-", "?", "-",
	"\"", "-", "<", "-", ">", "-", "|", "-", " ", "_",
)

// InvoiceFilename returns "Invoice_<order_id>.pdf".
func InvoiceFilename(orderID kernel.OrderID) string {
	return fmt.Sprintf("Invoice_%s.pdf", unsafeFilenameChars.Replace(orderID.String()))
}

// LabelFilename returns "package-label-<order_id>-<n>.pdf" where n is the
// 1-based package sequence number on the label.
func LabelFilename(orderID kernel.OrderID, n int) string {
	return fmt.Sprintf("package-label-%s-%d.pdf", unsafeFilenameChars.Replace(orderID.String()), n)
}
