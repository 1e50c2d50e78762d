package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationValid(t *testing.T) {
	for _, op := range Operations() {
		assert.True(t, op.Valid(), "%s", op)
	}
	for _, op := range []Operation{"", "compress", "Merge", "extract_text"} {
		assert.False(t, op.Valid(), "%q", op)
	}
}

func TestMetadataEntries(t *testing.T) {
	assert.True(t, Metadata{}.Empty())
	assert.Nil(t, Metadata{}.Entries())

	m := Metadata{Producer: "pdfcpu", Title: "Report"}
	assert.False(t, m.Empty())
	assert.Equal(t, [][2]string{{"Title", "Report"}, {"Producer", "pdfcpu"}}, m.Entries())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "Helvetica", cfg.Watermark.Font)
	assert.Equal(t, 45.0, cfg.Watermark.Rotation)
	assert.Equal(t, "Letter", cfg.Create.PageSize)
}
