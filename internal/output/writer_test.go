package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/variantkit-go/internal/config"
	"github.com/lgbarn/variantkit-go/internal/material"
)

func validReport() *ValidationReport {
	return &ValidationReport{
		Index:   0,
		Variant: "chess",
		FEN:     "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Code:    1,
		Status:  "FEN_OK",
		Valid:   true,
	}
}

func TestReport_Text(t *testing.T) {
	tests := []struct {
		name   string
		report Report
		want   string
	}{
		{
			name:   "valid fen",
			report: validReport(),
			want:   "1 FEN_OK rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		},
		{
			name:   "duplicate",
			report: &ValidationReport{Index: 4, FEN: "x", Status: "FEN_OK", Duplicate: true},
			want:   "5 FEN_OK duplicate x",
		},
		{
			name:   "rejected with parse error",
			report: &ValidationReport{Index: 1, FEN: "x", Status: "FEN_OK", Error: "bad rank"},
			want:   "2 FEN_OK x (bad rank)",
		},
		{
			name: "notation",
			report: &NotationReport{Moves: []MoveText{
				{UCI: "e2e4", Text: "e4"}, {UCI: "e7e5", Text: "e5"}, {UCI: "g1f3", Text: "Nf3"},
			}},
			want: "1. e4 e5 2. Nf3",
		},
		{
			name:   "material draw",
			report: &MaterialReport{Report: material.Report{White: true, Black: true, Draw: true}},
			want:   "white insufficient, black insufficient: draw",
		},
		{
			name:   "material",
			report: &MaterialReport{Report: material.Report{Black: true}},
			want:   "white sufficient, black insufficient",
		},
		{
			name:   "material duplicate",
			report: &MaterialReport{Report: material.Report{Black: true}, Duplicate: true},
			want:   "white sufficient, black insufficient (duplicate)",
		},
		{
			name:   "variant",
			report: &VariantReport{Name: "xiangqi", Files: 9, Ranks: 10, StartFEN: "s"},
			want:   "xiangqi         9x10 s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.report.Text())
		})
	}
}

// TestTextWriter_Write verifies one line per report
func TestTextWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)

	require.NoError(t, w.Write(validReport()))
	require.NoError(t, w.Write(&VariantReport{Name: "shogi", Files: 9, Ranks: 9, StartFEN: "s"}))
	assert.Empty(t, buf.String(), "buffered until flush")
	require.NoError(t, w.Close())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "1 FEN_OK"))
}

// TestJSONWriterSingle verifies one JSON object per line
func TestJSONWriterSingle(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriterSingle(&buf)

	require.NoError(t, w.Write(validReport()))
	require.NoError(t, w.Write(&MaterialReport{Variant: "chess", FEN: "f", Report: material.Report{White: true}}))
	require.NoError(t, w.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var v ValidationReport
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &v))
	assert.Equal(t, *validReport(), v)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &m))
	assert.Equal(t, true, m["white"], "embedded report fields are flattened")
	assert.Equal(t, false, m["draw"])
}

// TestJSONWriter_Batch verifies JSON writer batches reports into an array
func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	require.NoError(t, w.Write(validReport()))
	require.NoError(t, w.Write(validReport()))
	assert.Zero(t, buf.Len(), "nothing written before flush")

	require.NoError(t, w.Close())

	var out struct {
		Reports []ValidationReport `json:"reports"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Len(t, out.Reports, 2)

	buf.Reset()
	require.NoError(t, w.Flush())
	assert.Zero(t, buf.Len(), "buffer cleared after flush")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.OutputConfig{Format: config.JSONFormat, Writer: &buf}
	_, ok := New(cfg).(*JSONWriter)
	assert.True(t, ok)

	cfg.Format = config.TextFormat
	_, ok = New(cfg).(*TextWriter)
	assert.True(t, ok)
}
