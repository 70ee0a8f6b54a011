package services

import (
	"fmt"
	"strings"
	"unicode"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/pkg/numfmt"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// BarcodePayloadEncoder builds the text encoded into a label barcode:
//
//	OrderId:<id>|JobName:<name>|CustomerName:<name>|BagColor:<color>
//
// followed by "| L:<l>, W:<w>, H:<h>, WT:<wt>" for every package detail.
// Missing values are written as N/A. Every value is reduced to printable
// ASCII so the payload is Code 128 safe, and a "|" inside a value becomes
// "/" so it cannot be mistaken for a separator.
//
// Identical inputs always produce byte-identical payloads.
type BarcodePayloadEncoder struct{}

func NewBarcodePayloadEncoder() BarcodePayloadEncoder {
	return BarcodePayloadEncoder{}
}

// Encode accepts a nil order; every header field is then N/A.
func (e BarcodePayloadEncoder) Encode(o *order.Order, details []packaging.Detail) string {
	var id, job, customer, color string
	if o != nil {
		id = o.OrderID().String()
		job = o.JobName()
		customer = o.Customer().Name()
		color = o.Bag().Color()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "OrderId:%s|JobName:%s|CustomerName:%s|BagColor:%s",
		payloadValue(id), payloadValue(job), payloadValue(customer), payloadValue(color))

	for _, d := range details {
		fmt.Fprintf(&b, "| L:%s, W:%s, H:%s, WT:%s",
			payloadValue(d.Length().String()),
			payloadValue(d.Width().String()),
			payloadValue(d.Height().String()),
			payloadValue(d.Weight().String()),
		)
	}

	return b.String()
}

// payloadValue folds s to printable ASCII and substitutes N/A for blanks.
func payloadValue(s string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		s,
	)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	space := false
	for _, r := range folded {
		switch {
		case unicode.IsSpace(r):
			space = true
			continue
		case r == '|':
			r = '/'
		case r < 0x20 || r > 0x7e:
			r = '?'
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}

	return numfmt.OrNA(b.String())
}
