package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Title:   "Production schedule",
		Headers: []string{"Batch", "Product"},
		Rows: []map[string]string{
			{"Batch": "B1", "Product": "기넥신에프정"},
			{"Batch": "B2", "Product": "Joins, 200mg"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("\ufeff")))

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(out, []byte("\ufeff")))).ReadAll()
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"Batch", "Product"},
		{"B1", "기넥신에프정"},
		{"B2", "Joins, 200mg"},
	}, records)

	_, err = NewCSVExporter().Render(Dataset{})
	require.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter("").Render(sampleDataset())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	_, err = NewPDFExporter("").Render(Dataset{})
	require.Error(t, err)
}
