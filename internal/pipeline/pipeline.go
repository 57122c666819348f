package pipeline

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/Dillon-Roller/CSC-215-Projects/internal/ir"
	"github.com/Dillon-Roller/CSC-215-Projects/internal/netpbm"
	"github.com/Dillon-Roller/CSC-215-Projects/internal/pixbuf"
	"github.com/Dillon-Roller/CSC-215-Projects/internal/transform"
)

// Options controls a pipeline run.
type Options struct {
	Workers    int              // row bands run at once; <1 means GOMAXPROCS
	MaxSamples int              // per-buffer allocation bound; <1 means pixbuf.DefaultMaxSamples
	Allocator  pixbuf.Allocator // overrides MaxSamples when set
}

// Result describes the encoded output of a run.
type Result struct {
	Data   []byte // encoded image; empty for RunFile
	Path   string // file written by RunFile
	Format ir.Format
	Cols   int
	Rows   int
}

func newOptions(opts []func(o *Options)) Options {
	opt := Options{}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	if opt.Allocator == nil {
		opt.Allocator = pixbuf.LimitAllocator{Max: opt.MaxSamples}
	}
	return opt
}

func (o Options) transformOptions() []transform.Option {
	return []transform.Option{
		transform.WithWorkers(o.Workers),
		transform.WithAllocator(o.Allocator),
	}
}

func (o Options) decodeOptions(d *netpbm.DecodeOptions) {
	d.Allocator = o.Allocator
}

// Apply runs ops against img strictly in order and stops at the first
// failure.
func Apply(img *ir.Image, ops []Op, opts ...func(o *Options)) error {
	opt := newOptions(opts)
	topts := opt.transformOptions()
	log := Logger()

	for i, op := range ops {
		log.Debug("applying operation", slog.Int("index", i), slog.String("op", op.String()))

		var err error
		switch op.Kind {
		case OpNegate:
			transform.Negate(img, topts...)
		case OpBrighten:
			transform.Brighten(img, op.Delta, topts...)
		case OpGrayscale:
			transform.Grayscale(img, topts...)
		case OpContrast:
			err = transform.Contrast(img, topts...)
		case OpSharpen:
			err = transform.Sharpen(img, topts...)
		case OpSmooth:
			err = transform.Smooth(img, topts...)
		case OpResize:
			var interp transform.Interpolation
			if interp, err = transform.ParseInterpolation(op.Interp); err == nil {
				err = transform.Resize(img, op.Cols, op.Rows, interp, topts...)
			}
		default:
			err = fmt.Errorf("%w: %v", ErrInvalidOperation, op.Kind)
		}
		if err != nil {
			return fmt.Errorf("operation %d (%s): %w", i+1, op, err)
		}
	}
	return nil
}

// Run executes the pipeline over an in-memory image: decode, apply the
// plan's operations in order, encode once.
func Run(data []byte, plan Plan, opts ...func(o *Options)) (*Result, error) {
	opt := newOptions(opts)
	reuse := func(o *Options) { *o = opt }

	// 1. Decode
	img, err := netpbm.Decode(bytes.NewReader(data), opt.decodeOptions)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	defer img.Release()
	logDecoded(img, "")

	// 2. Transform
	if err := Apply(img, plan.Ops, reuse); err != nil {
		return nil, err
	}

	// 3. Encode
	var buf bytes.Buffer
	if err := netpbm.Encode(&buf, img, plan.Output.Binary, img.Grayscale); err != nil {
		return nil, fmt.Errorf("encode: %w: %w", netpbm.ErrEncode, err)
	}
	res := newResult(img, plan.Output)
	res.Data = buf.Bytes()
	Logger().Info("encoded image", slog.String("format", res.Format.String()), slog.Int("bytes", len(res.Data)))
	return res, nil
}

// RunFile decodes inPath, applies the plan and writes outName with the
// extension matching the final channel layout. The output is written
// exactly once, after every operation succeeded.
func RunFile(inPath, outName string, plan Plan, opts ...func(o *Options)) (*Result, error) {
	opt := newOptions(opts)
	reuse := func(o *Options) { *o = opt }

	img, err := netpbm.DecodeFile(inPath, opt.decodeOptions)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	defer img.Release()
	logDecoded(img, inPath)

	if err := Apply(img, plan.Ops, reuse); err != nil {
		return nil, err
	}

	path, err := netpbm.EncodeFile(outName, img, plan.Output.Binary, img.Grayscale)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	res := newResult(img, plan.Output)
	res.Path = path
	Logger().Info("wrote image", slog.String("path", path), slog.String("format", res.Format.String()))
	return res, nil
}

func newResult(img *ir.Image, out Output) *Result {
	return &Result{
		Format: ir.FormatFor(out.Binary, img.Grayscale),
		Cols:   img.Cols,
		Rows:   img.Rows,
	}
}

func logDecoded(img *ir.Image, path string) {
	Logger().Info("decoded image",
		slog.String("path", path),
		slog.String("format", img.Format.String()),
		slog.Int("cols", img.Cols),
		slog.Int("rows", img.Rows),
		slog.Int("max", img.MaxValue),
	)
}
