// Package barcode renders barcode payloads as Code 128 PNG symbols.
package barcode

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	"fulfillment/internal/pkg/errs"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/utils"
)

const (
	DefaultModuleWidth = 2
	DefaultHeight      = 40
)

// Code128Renderer draws each bar module moduleWidth pixels wide, height
// pixels tall, with no human readable text under the bars.
type Code128Renderer struct {
	moduleWidth int
	height      int
}

func NewCode128Renderer() *Code128Renderer {
	return &Code128Renderer{moduleWidth: DefaultModuleWidth, height: DefaultHeight}
}

// NewCode128RendererWithSize panics on non-positive sizes.
func NewCode128RendererWithSize(moduleWidth, height int) *Code128Renderer {
	if moduleWidth < 1 || height < 1 {
		panic("barcode: module width and height must be positive")
	}
	return &Code128Renderer{moduleWidth: moduleWidth, height: height}
}

// Render encodes payload. Failures are reported as composition errors of the
// barcode section.
func (r *Code128Renderer) Render(payload string) ([]byte, error) {
	if strings.TrimSpace(payload) == "" {
		return nil, errs.NewCompositionError("barcode", "payload is empty")
	}

	symbol, err := EncodeCode128B(payload)
	if err != nil {
		return nil, errs.NewCompositionErrorWithCause("barcode", "payload cannot be encoded as Code 128", err)
	}

	scaled, err := barcode.Scale(symbol, symbol.Bounds().Dx()*r.moduleWidth, r.height)
	if err != nil {
		return nil, errs.NewCompositionErrorWithCause("barcode", "symbol cannot be scaled", err)
	}

	var buf bytes.Buffer
	if err = png.Encode(&buf, scaled); err != nil {
		return nil, errs.NewCompositionErrorWithCause("barcode", "symbol cannot be written as PNG", err)
	}
	return buf.Bytes(), nil
}

// EncodeCode128B encodes content entirely in code set B, with no cap on the
// content length. Only printable ASCII (32..126) is accepted.
func EncodeCode128B(content string) (barcode.BarcodeIntCS, error) {
	if content == "" {
		return nil, fmt.Errorf("content is empty")
	}

	bars := new(utils.BitList)
	addSymbol(bars, startB)
	checksum := startB
	for i, c := range []byte(content) {
		if c < ' ' || c > '~' {
			return nil, fmt.Errorf("%q at position %d is not printable ASCII", c, i)
		}
		value := int(c - ' ')
		addSymbol(bars, value)
		checksum += (i + 1) * value
	}
	checksum %= 103
	addSymbol(bars, checksum)
	addSymbol(bars, stop)

	return utils.New1DCodeIntCheckSum(barcode.TypeCode128, content, bars, checksum), nil
}

// addSymbol appends the bar and space modules of one symbol, bar first.
func addSymbol(bars *utils.BitList, value int) {
	widths := symbolWidths[value]
	for i := 0; i < len(widths); i++ {
		bar := i%2 == 0
		for n := 0; n < int(widths[i]-'0'); n++ {
			bars.AddBit(bar)
		}
	}
}

const (
	startB = 104
	stop   = 106
)

// symbolWidths holds the alternating bar/space widths, in modules, of every
// Code 128 symbol value. Data symbols are 11 modules wide, stop is 13.
var symbolWidths = [107]string{
	"212222", "222122", "222221", "121223", "121322", "131222", "122213", "122312", "132212", "221213",
	"221312", "231212", "112232", "122132", "122231", "113222", "123122", "123221", "223211", "221132",
	"221231", "213212", "223112", "312131", "311222", "321122", "321221", "312212", "322112", "322211",
	"212123", "212321", "232121", "111323", "131123", "131321", "112313", "132113", "132311", "211313",
	"231113", "231311", "112133", "112331", "132131", "113123", "113321", "133121", "313121", "211331",
	"231131", "213113", "213311", "213131", "311123", "311321", "331121", "312113", "312311", "332111",
	"314111", "221411", "431111", "111224", "111422", "121124", "121421", "141122", "141221", "112214",
	"112412", "122114", "122411", "142112", "142211", "241211", "221114", "413111", "241112", "134111",
	"111242", "121142", "121241", "114212", "124112", "124211", "411212", "421112", "421211", "212141",
	"214121", "412121", "111143", "111341", "131141", "114113", "114311", "411113", "411311", "113141",
	"114131", "311141", "411131", "211412", "211214", "211232", "2331112",
}
