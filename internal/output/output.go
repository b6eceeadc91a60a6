// Package output writes validation, notation and material reports as text
// lines or JSON.
package output

import (
	"fmt"
	"strings"

	"github.com/lgbarn/variantkit-go/internal/material"
)

// Report is one unit of output. Text returns its single-line text form.
type Report interface {
	Text() string
}

// ValidationReport is the verdict on one FEN line.
type ValidationReport struct {
	Index     int    `json:"index"`
	Variant   string `json:"variant"`
	FEN       string `json:"fen"`
	Code      int    `json:"code"`
	Status    string `json:"status"`
	Valid     bool   `json:"valid"`
	Duplicate bool   `json:"duplicate,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Text renders e.g. "3 FEN_OK <fen>".
func (r *ValidationReport) Text() string {
	status := r.Status
	if r.Duplicate {
		status += " duplicate"
	}
	line := fmt.Sprintf("%d %s %s", r.Index+1, status, r.FEN)
	if r.Error != "" {
		line += " (" + r.Error + ")"
	}
	return line
}

// MoveText pairs a move's coordinate text with its formatted text.
type MoveText struct {
	UCI  string `json:"uci"`
	Text string `json:"text"`
}

// NotationReport holds the formatted moves of one line of play.
type NotationReport struct {
	Variant  string     `json:"variant"`
	Notation string     `json:"notation"`
	FEN      string     `json:"fen"`
	Moves    []MoveText `json:"moves"`
}

// Text renders the moves with move numbers, e.g. "1. e4 e5 2. Nf3".
func (r *NotationReport) Text() string {
	var sb strings.Builder
	for i, m := range r.Moves {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d. ", i/2+1)
		}
		sb.WriteString(m.Text)
	}
	return sb.String()
}

// MaterialReport is the insufficient material verdict on one position.
type MaterialReport struct {
	Variant string `json:"variant"`
	FEN     string `json:"fen"`
	material.Report
	Duplicate bool `json:"duplicate,omitempty"`
}

// Text renders e.g. "white insufficient, black sufficient".
func (r *MaterialReport) Text() string {
	verdict := func(insufficient bool) string {
		if insufficient {
			return "insufficient"
		}
		return "sufficient"
	}
	line := "white " + verdict(r.White) + ", black " + verdict(r.Black)
	if r.Draw {
		line += ": draw"
	}
	if r.Duplicate {
		line += " (duplicate)"
	}
	return line
}

// VariantReport describes one built-in variant.
type VariantReport struct {
	Name     string `json:"name"`
	Template string `json:"template,omitempty"`
	Files    int    `json:"files"`
	Ranks    int    `json:"ranks"`
	StartFEN string `json:"startFEN"`
}

// Text renders "name files x ranks start-fen".
func (r *VariantReport) Text() string {
	return fmt.Sprintf("%-14s %2dx%-2d %s", r.Name, r.Files, r.Ranks, r.StartFEN)
}
