package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Alquiler-api/internal/domain/sequence"
)

func TestFormatCode_RellenaConCeros(t *testing.T) {
	assert.Equal(t, "PD00000001", sequence.FormatCode(sequence.PrefixOrder, 1, sequence.DefaultWidth))
	assert.Equal(t, "RC00000042", sequence.FormatCode(sequence.PrefixReceipt, 42, sequence.DefaultWidth))
	assert.Equal(t, "CC00001000", sequence.FormatCode(sequence.PrefixVoucher, 1000, sequence.DefaultWidth))
	assert.Equal(t, "IN00000007", sequence.FormatCode(sequence.PrefixProduct, 7, sequence.DefaultWidth))
}

func TestFormatCode_AnchoTotalFijo(t *testing.T) {
	for _, prefix := range []string{sequence.PrefixOrder, sequence.PrefixReceipt, sequence.PrefixVoucher, sequence.PrefixProduct} {
		code := sequence.FormatCode(prefix, 123, sequence.DefaultWidth)
		assert.Len(t, code, sequence.DefaultWidth, "el ancho total incluye el prefijo")
	}
}

func TestFormatCode_NumeroGrandeNoSeTrunca(t *testing.T) {
	// Un contador que desborda el ancho crece en lugar de truncarse.
	code := sequence.FormatCode(sequence.PrefixOrder, 123456789012, sequence.DefaultWidth)
	assert.Equal(t, "PD123456789012", code)
}
