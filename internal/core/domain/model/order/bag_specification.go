package order

import "strings"

// BagSpecification describes the bag being produced. It is embedded in an
// Order and has no lifecycle of its own. Empty attributes are allowed, the
// documents print N/A for them.
type BagSpecification struct {
	fabricType string
	color      string
	printColor string
	size       string
	gsm        string
}

// NewBagSpecification trims every attribute.
func NewBagSpecification(fabricType, color, printColor, size, gsm string) BagSpecification {
	return BagSpecification{
		fabricType: strings.TrimSpace(fabricType),
		color:      strings.TrimSpace(color),
		printColor: strings.TrimSpace(printColor),
		size:       strings.TrimSpace(size),
		gsm:        strings.TrimSpace(gsm),
	}
}

// Type returns the fabric type, e.g. "Non Woven".
func (b BagSpecification) Type() string { return b.fabricType }
func (b BagSpecification) Color() string { return b.color }
func (b BagSpecification) PrintColor() string { return b.printColor }
func (b BagSpecification) Size() string { return b.size }
func (b BagSpecification) GSM() string { return b.gsm }

func (b BagSpecification) IsZero() bool {
	return b == BagSpecification{}
}
