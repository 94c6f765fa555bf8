package airdrop

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/smartcontractkit/airdrop-manifest/pkg/logger"
)

// Converter turns (address, amount) rows into a Manifest using one Strategy.
// A Converter holds no state between runs.
type Converter struct {
	lggr       logger.Logger
	fs         afero.Fs
	strategy   Strategy
	skipHeader bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithFs sets the filesystem inputs are read from and manifests written to.
// Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(c *Converter) { c.fs = fs }
}

// WithSkipHeader drops the first non-blank input line.
func WithSkipHeader(skip bool) Option {
	return func(c *Converter) { c.skipHeader = skip }
}

// NewConverter returns a Converter validating addresses with strategy.
func NewConverter(lggr logger.Logger, strategy Strategy, opts ...Option) *Converter {
	c := &Converter{
		lggr:     lggr,
		fs:       afero.NewOsFs(),
		strategy: strategy,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Strategy returns the strategy the converter validates with.
func (c *Converter) Strategy() Strategy {
	return c.strategy
}

// Convert validates rows in order and builds the manifest. It returns at the
// first invalid row; the returned error is a *RowError.
func (c *Converter) Convert(rows []Row) (*Manifest, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	m := NewManifest()
	format := c.strategy.AmountFormat()

	for _, row := range rows {
		addr, err := c.strategy.Normalize(row.Address)
		if err != nil {
			return nil, rowError(row.Line, row.Address, ErrInvalidAddress, err)
		}
		if m.Airdrop.Has(addr) {
			return nil, rowError(row.Line, row.Address, ErrDuplicateAddress, nil)
		}

		amount, err := parseAmount(row.Amount)
		if err != nil {
			return nil, rowError(row.Line, row.Amount, ErrInvalidAmount, err)
		}
		amount.Format = format

		if err = m.Airdrop.Add(addr, amount); err != nil {
			return nil, rowError(row.Line, row.Address, ErrDuplicateAddress, nil)
		}
		c.lggr.Debugw("row accepted", "line", row.Line, "address", addr, "amount", amount.Raw)
	}

	return m, nil
}

// Load reads and converts the CSV at inputPath without writing anything.
func (c *Converter) Load(inputPath string) (*Manifest, error) {
	f, err := c.fs.Open(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInputFile, inputPath)
		}

		return nil, fmt.Errorf("failed to open input '%s': %w", inputPath, err)
	}
	defer f.Close()

	rows, err := ReadRows(f, c.skipHeader)
	if err != nil {
		return nil, err
	}

	return c.Convert(rows)
}

// Check loads inputPath, logs the run totals and returns the manifest. Nothing is written.
func (c *Converter) Check(ctx context.Context, inputPath string) (*Manifest, Summary, error) {
	lggr := c.runLogger("check")

	m, err := c.load(ctx, inputPath)
	if err != nil {
		lggr.Errorw("validation failed", "input", inputPath, "error", err)

		return nil, Summary{}, err
	}

	summary := m.Summarize()
	c.logTotals(lggr, summary)
	lggr.Infow("validation completed", "input", inputPath)

	return m, summary, nil
}

// Run converts inputPath and writes the manifest to outputPath, overwriting
// any existing file. No file is written when any row is invalid or ctx is
// done before the write starts.
func (c *Converter) Run(ctx context.Context, inputPath, outputPath string) (*Manifest, Summary, error) {
	lggr := c.runLogger("convert")

	m, err := c.load(ctx, inputPath)
	if err != nil {
		lggr.Errorw("conversion failed", "input", inputPath, "error", err)

		return nil, Summary{}, err
	}

	summary := m.Summarize()
	c.logTotals(lggr, summary)

	if err = ctx.Err(); err != nil {
		lggr.Errorw("conversion aborted", "output", outputPath, "error", err)

		return nil, Summary{}, err
	}
	if err = WriteManifest(c.fs, outputPath, m); err != nil {
		lggr.Errorw("conversion failed", "output", outputPath, "error", err)

		return nil, Summary{}, err
	}
	lggr.Infow("conversion completed successfully", "input", inputPath, "output", outputPath)

	return m, summary, nil
}

func (c *Converter) load(ctx context.Context, inputPath string) (*Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return c.Load(inputPath)
}

func (c *Converter) runLogger(op string) logger.Logger {
	return c.lggr.Named(op).With(
		"run_id", uuid.NewString(),
		"strategy", c.strategy.Name(),
	)
}

func (c *Converter) logTotals(lggr logger.Logger, s Summary) {
	if !c.strategy.ReportsTotals() {
		return
	}
	lggr.Infow("airdrop totals", "count", s.Count, "sum", s.Total.String())
}
