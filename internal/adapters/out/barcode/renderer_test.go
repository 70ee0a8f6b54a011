package barcode_test

import (
	"bytes"
	"image/png"
	"testing"

	"fulfillment/internal/adapters/out/barcode"
	"fulfillment/internal/pkg/errs"

	"github.com/boombuler/barcode/code128"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = "OrderId:O100|JobName:Shopping bags|CustomerName:Acme Retail|BagColor:Red| L:10, W:5, H:5, WT:2"

// twoDetailPayload is longer than the 80 runes code128.Encode accepts.
const twoDetailPayload = "OrderId:O100|JobName:Bags|CustomerName:Acme|BagColor:Red" +
	"| L:10, W:5, H:5, WT:2| L:20, W:10, H:10, WT:3"

func TestCode128Renderer_Render(t *testing.T) {
	r := barcode.NewCode128Renderer()

	t.Run("renders a png of the configured height", func(t *testing.T) {
		raw, err := r.Render(payload)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(raw))
		require.NoError(t, err)
		assert.Equal(t, barcode.DefaultHeight, img.Bounds().Dy())
		assert.Zero(t, img.Bounds().Dx()%barcode.DefaultModuleWidth)
	})

	t.Run("payload past 80 runes renders in full", func(t *testing.T) {
		require.Greater(t, len(twoDetailPayload), 80)

		raw, err := r.Render(twoDetailPayload)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(raw))
		require.NoError(t, err)
		modules := (len(twoDetailPayload)+2)*11 + 13
		assert.Equal(t, modules*barcode.DefaultModuleWidth, img.Bounds().Dx())
	})

	t.Run("is deterministic", func(t *testing.T) {
		first, err := r.Render(payload)
		require.NoError(t, err)
		second, err := r.Render(payload)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("wider modules give a wider symbol", func(t *testing.T) {
		narrow, err := barcode.NewCode128RendererWithSize(1, 10).Render("O100")
		require.NoError(t, err)
		wide, err := barcode.NewCode128RendererWithSize(3, 10).Render("O100")
		require.NoError(t, err)

		n, err := png.Decode(bytes.NewReader(narrow))
		require.NoError(t, err)
		w, err := png.Decode(bytes.NewReader(wide))
		require.NoError(t, err)
		assert.Equal(t, n.Bounds().Dx()*3, w.Bounds().Dx())
	})

	t.Run("empty payload", func(t *testing.T) {
		_, err := r.Render("  ")
		require.ErrorIs(t, err, errs.ErrComposition)
	})

	t.Run("non ascii payload", func(t *testing.T) {
		_, err := r.Render("Crème ✓")
		require.ErrorIs(t, err, errs.ErrComposition)
	})

	t.Run("invalid size panics", func(t *testing.T) {
		assert.Panics(t, func() { barcode.NewCode128RendererWithSize(0, 10) })
	})
}

func TestEncodeCode128B(t *testing.T) {
	t.Run("matches code128 for set B content", func(t *testing.T) {
		content := "OrderId:O100|JobName:Bags"
		want, err := code128.Encode(content)
		require.NoError(t, err)

		got, err := barcode.EncodeCode128B(content)
		require.NoError(t, err)

		require.Equal(t, want.Bounds(), got.Bounds())
		assert.Equal(t, want.CheckSum(), got.CheckSum())
		for x := 0; x < got.Bounds().Dx(); x++ {
			require.Equal(t, want.At(x, 0), got.At(x, 0), "module %d", x)
		}
	})

	t.Run("keeps the whole content", func(t *testing.T) {
		got, err := barcode.EncodeCode128B(twoDetailPayload)
		require.NoError(t, err)

		assert.Equal(t, twoDetailPayload, got.Content())
	})

	t.Run("rejects control characters", func(t *testing.T) {
		_, err := barcode.EncodeCode128B("O100\n")
		require.Error(t, err)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		_, err := barcode.EncodeCode128B("")
		require.Error(t, err)
	})
}
