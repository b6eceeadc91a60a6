// processor.go - Command implementations
package main

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/lgbarn/variantkit-go/internal/chess"
	"github.com/lgbarn/variantkit-go/internal/engine"
	"github.com/lgbarn/variantkit-go/internal/errors"
	"github.com/lgbarn/variantkit-go/internal/fen"
	"github.com/lgbarn/variantkit-go/internal/hashing"
	"github.com/lgbarn/variantkit-go/internal/material"
	"github.com/lgbarn/variantkit-go/internal/notation"
	"github.com/lgbarn/variantkit-go/internal/output"
	"github.com/lgbarn/variantkit-go/internal/variant"
	"github.com/lgbarn/variantkit-go/internal/worker"
)

// checkedLine is the payload of one validate work item.
type checkedLine struct {
	report *output.ValidationReport
	sig    hashing.PositionSignature
	parsed bool
}

// validate checks every FEN line, marks repeats when duplicate detection
// is on, and exits non-zero if any line was rejected.
func (a *app) validate(ctx context.Context, args []string) (int, error) {
	lines, err := readInputs(args, a.stdin)
	if err != nil {
		return exitUsage, err
	}

	validator := fen.NewValidator(a.logger)
	results := worker.Run(ctx, lines, a.cfg.NumWorkers(), func(item worker.WorkItem) worker.ProcessResult {
		return a.checkLine(validator, item)
	})

	var detector *hashing.DuplicateDetector
	if a.cfg.Dedupe.Enabled {
		detector = hashing.NewDuplicateDetector(a.cfg.Dedupe.Capacity)
	}

	w := output.New(&a.cfg.Output)
	rejected := 0
	for _, res := range results {
		line := res.Payload.(*checkedLine)
		if !line.report.Valid || line.report.Error != "" {
			rejected++
		}
		// Results are in input order, so the first sighting is never marked.
		if detector != nil && line.parsed {
			line.report.Duplicate = detector.CheckAndAdd(line.sig)
		}
		if err := w.Write(line.report); err != nil {
			return exitUsage, errors.Wrap(err, "write report")
		}
	}
	if err := w.Close(); err != nil {
		return exitUsage, errors.Wrap(err, "flush reports")
	}

	if !*quiet {
		ev := a.logger.Info().Int("positions", len(results)).Int("rejected", rejected)
		if detector != nil {
			ev = ev.Int("duplicates", detector.DuplicateCount())
		}
		ev.Msg("validation finished")
	}
	if rejected > 0 {
		return exitRejected, nil
	}
	return exitOK, nil
}

// checkLine validates one line and, when it passes, parses it to obtain
// its Zobrist signature.
func (a *app) checkLine(validator *fen.Validator, item worker.WorkItem) worker.ProcessResult {
	text := strings.TrimSpace(item.Text)
	code := validator.Validate(text, a.variant)
	line := &checkedLine{report: &output.ValidationReport{
		Index:   item.Index,
		Variant: a.variant.Name,
		FEN:     text,
		Code:    int(code),
		Status:  code.String(),
		Valid:   code == fen.OK,
	}}
	res := worker.ProcessResult{Text: text, Index: item.Index, Payload: line}
	if code != fen.OK {
		res.Error = code.Err()
		return res
	}

	pos, err := engine.NewPositionFromFEN(a.variant, text)
	if err != nil {
		a.logger.Warn().Err(err).Str("fen", text).Msg("fen does not describe a position")
		line.report.Error = err.Error()
		res.Error = err
		return res
	}
	line.sig = hashing.NewSignature(pos.Key(), placement(text))
	line.parsed = true
	return res
}

// notate plays the UCI moves from the start position and prints them in
// the configured notation.
func (a *app) notate(args []string) (int, error) {
	n, err := a.cfg.NotationStyle()
	if err != nil {
		return exitUsage, err
	}
	if n == notation.DefaultNotation {
		n = notation.Default(a.variant)
	}
	texts := args
	if len(texts) == 0 {
		if texts, err = readFields(a.stdin); err != nil {
			return exitUsage, err
		}
	}

	pos, err := a.startPosition()
	if err != nil {
		return exitRejected, err
	}
	start := pos.FEN()

	moves := make([]chess.Move, 0, len(texts))
	for _, text := range texts {
		m, err := pos.ParseUCI(text)
		if err != nil {
			return exitRejected, err
		}
		moves = append(moves, m)
		pos.DoMove(m)
	}
	for range moves {
		pos.UndoMove()
	}

	report := &output.NotationReport{
		Variant:  a.variant.Name,
		Notation: n.String(),
		FEN:      start,
		Moves:    make([]output.MoveText, 0, len(moves)),
	}
	for i, text := range notation.FormatLine(pos, moves, n) {
		report.Moves = append(report.Moves, output.MoveText{UCI: texts[i], Text: text})
	}
	return exitOK, writeOne(a, report)
}

// startPosition returns the variant's start position, or the -fen position
// once it has passed validation.
func (a *app) startPosition() (*engine.Position, error) {
	if *startFEN == "" {
		return engine.NewPosition(a.variant)
	}
	if code := fen.NewValidator(a.logger).Validate(*startFEN, a.variant); code != fen.OK {
		return nil, code.Err()
	}
	return engine.NewPositionFromFEN(a.variant, *startFEN)
}

// material reports the insufficient material verdict for every FEN line.
// With duplicate detection on, the workers share one detector and a
// position seen before is marked on its report.
func (a *app) material(ctx context.Context, args []string) (int, error) {
	lines, err := readInputs(args, a.stdin)
	if err != nil {
		return exitUsage, err
	}

	var detector *hashing.ThreadSafeDuplicateDetector
	if a.cfg.Dedupe.Enabled {
		detector = hashing.NewThreadSafeDuplicateDetector(a.cfg.Dedupe.Capacity)
	}

	results := worker.Run(ctx, lines, a.cfg.NumWorkers(), func(item worker.WorkItem) worker.ProcessResult {
		text := strings.TrimSpace(item.Text)
		pos, err := engine.NewPositionFromFEN(a.variant, text)
		if err != nil {
			return worker.ProcessResult{Text: text, Index: item.Index, Error: err}
		}
		report := &output.MaterialReport{
			Variant: a.variant.Name,
			FEN:     text,
			Report:  material.Evaluate(pos),
		}
		if detector != nil {
			report.Duplicate = detector.CheckAndAdd(hashing.NewSignature(pos.Key(), placement(text)))
		}
		return worker.ProcessResult{Text: text, Index: item.Index, Payload: report}
	})

	w := output.New(&a.cfg.Output)
	rejected := 0
	for _, res := range results {
		if res.Error != nil {
			a.logger.Warn().Err(res.Error).Str("fen", res.Text).Msg("skipping position")
			rejected++
			continue
		}
		if err := w.Write(res.Payload.(*output.MaterialReport)); err != nil {
			return exitUsage, errors.Wrap(err, "write report")
		}
	}
	if err := w.Close(); err != nil {
		return exitUsage, errors.Wrap(err, "flush reports")
	}

	if !*quiet {
		ev := a.logger.Info().Int("positions", len(results)).Int("rejected", rejected)
		if detector != nil {
			ev = ev.Int("duplicates", detector.Stats().Duplicates)
		}
		ev.Msg("material finished")
	}
	if rejected > 0 {
		return exitRejected, nil
	}
	return exitOK, nil
}

// variants lists the built-in variants.
func (a *app) variants() (int, error) {
	w := output.New(&a.cfg.Output)
	for _, name := range variant.Names() {
		v := variant.MustGet(name)
		if err := w.Write(&output.VariantReport{
			Name:     v.Name,
			Template: v.Template,
			Files:    v.Files(),
			Ranks:    v.Ranks(),
			StartFEN: v.StartFEN,
		}); err != nil {
			return exitUsage, errors.Wrap(err, "write report")
		}
	}
	return exitOK, w.Close()
}

func writeOne(a *app, r output.Report) error {
	w := output.New(&a.cfg.Output)
	if err := w.Write(r); err != nil {
		return errors.Wrap(err, "write report")
	}
	return w.Close()
}

// readInputs returns args, or the non-blank lines of r not starting with
// '#' when args is empty.
func readInputs(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	return lines, nil
}

// readFields returns the whitespace separated words of r.
func readFields(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	return strings.Fields(string(data)), nil
}

// placement returns the board field of a FEN.
func placement(text string) string {
	if i := strings.IndexByte(text, ' '); i >= 0 {
		return text[:i]
	}
	return text
}
