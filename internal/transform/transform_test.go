package transform

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Dillon-Roller/CSC-215-Projects/internal/ir"
	"github.com/Dillon-Roller/CSC-215-Projects/internal/pixbuf"
)

type rgb struct{ r, g, b uint8 }

func newImage(t *testing.T, rows, cols int, fill func(y, x int) rgb) *ir.Image {
	t.Helper()
	img := &ir.Image{Format: ir.FormatBinaryColor, Rows: rows, Cols: cols, MaxValue: 255}
	var err error
	for _, dst := range []**pixbuf.Buffer{&img.Red, &img.Green, &img.Blue} {
		if *dst, err = pixbuf.New(rows, cols); err != nil {
			t.Fatalf("pixbuf.New: %v", err)
		}
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := fill(y, x)
			img.Red.Set(y, x, p.r)
			img.Green.Set(y, x, p.g)
			img.Blue.Set(y, x, p.b)
		}
	}
	return img
}

func randomImage(t *testing.T, rows, cols int, seed int64) *ir.Image {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	return newImage(t, rows, cols, func(y, x int) rgb {
		return rgb{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256))}
	})
}

func snapshot(img *ir.Image) [][]uint8 {
	var out [][]uint8
	for _, p := range img.Planes() {
		out = append(out, append([]uint8(nil), p.Pix...))
	}
	return out
}

func TestNegate(t *testing.T) {
	img := newImage(t, 1, 2, func(y, x int) rgb {
		if x == 0 {
			return rgb{0, 128, 255}
		}
		return rgb{64, 1, 200}
	})
	Negate(img)
	want := [][]uint8{{255, 191}, {127, 254}, {0, 55}}
	if diff := cmp.Diff(want, snapshot(img)); diff != "" {
		t.Errorf("negate (-want +got):\n%s", diff)
	}
}

func TestNegateTwiceIsIdentity(t *testing.T) {
	img := randomImage(t, 40, 70, 1)
	before := snapshot(img)
	Negate(img, WithWorkers(4))
	Negate(img, WithWorkers(4))
	if diff := cmp.Diff(before, snapshot(img)); diff != "" {
		t.Errorf("double negate changed samples (-want +got):\n%s", diff)
	}
}

func TestGrayscale(t *testing.T) {
	tests := []struct {
		in   rgb
		want uint8
	}{
		{rgb{100, 100, 100}, 100},
		{rgb{255, 255, 255}, 255},
		{rgb{0, 0, 0}, 0},
		{rgb{255, 0, 0}, 76},
		{rgb{0, 255, 0}, 153},
		{rgb{0, 0, 255}, 25},
	}
	for _, tc := range tests {
		img := newImage(t, 1, 1, func(int, int) rgb { return tc.in })
		Grayscale(img)
		if got := img.Red.At(0, 0); got != tc.want {
			t.Errorf("grayscale(%v) = %d, want %d", tc.in, got, tc.want)
		}
		if got := img.Green.At(0, 0); got != tc.in.g {
			t.Errorf("green plane changed: %d, want %d", got, tc.in.g)
		}
		if !img.Grayscale {
			t.Error("grayscale flag not set")
		}
	}
}

func TestBrightenClamps(t *testing.T) {
	tests := []struct {
		name  string
		delta int
		want  uint8
	}{
		{"saturate high", 300, 255},
		{"saturate low", -300, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img := randomImage(t, 20, 20, 2)
			Brighten(img, tc.delta)
			for _, p := range img.Planes() {
				for i, v := range p.Pix {
					if v != tc.want {
						t.Fatalf("sample %d = %d, want %d", i, v, tc.want)
					}
				}
			}
		})
	}
}

func TestBrightenPartial(t *testing.T) {
	img := newImage(t, 1, 1, func(int, int) rgb { return rgb{250, 10, 100} })
	Brighten(img, 10)
	if diff := cmp.Diff([][]uint8{{255}, {20}, {110}}, snapshot(img)); diff != "" {
		t.Errorf("brighten +10 (-want +got):\n%s", diff)
	}
	Brighten(img, -25)
	if diff := cmp.Diff([][]uint8{{230}, {0}, {85}}, snapshot(img)); diff != "" {
		t.Errorf("brighten -25 (-want +got):\n%s", diff)
	}
}

func TestMinMax(t *testing.T) {
	img := newImage(t, 5, 5, func(y, x int) rgb { return rgb{100, 0, 0} })
	img.Red.Set(3, 1, 10)
	img.Red.Set(0, 4, 200)
	lo, hi := MinMax(img)
	if lo != 10 || hi != 200 {
		t.Errorf("MinMax = (%d, %d), want (10, 200)", lo, hi)
	}
}

func TestContrastScale(t *testing.T) {
	tests := []struct{ lo, hi, want int }{
		{0, 255, 1},
		{50, 150, 3},
		{0, 100, 3},
		{0, 2, 128},
		{10, 20, 26},
	}
	for _, tc := range tests {
		if got := ContrastScale(tc.lo, tc.hi); got != tc.want {
			t.Errorf("ContrastScale(%d, %d) = %d, want %d", tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestContrastWrapsWithoutClamp(t *testing.T) {
	grays := [][]uint8{{50, 150}, {100, 120}, {60, 90}}
	img := newImage(t, 3, 2, func(y, x int) rgb {
		v := grays[y][x]
		return rgb{v, v, v}
	})
	if err := Contrast(img); err != nil {
		t.Fatalf("Contrast: %v", err)
	}
	if !img.Grayscale {
		t.Error("contrast should leave the image grayscale")
	}
	// 3*(v-50), stored modulo 256: 300 wraps to 44, 210 stays.
	want := []uint8{0, 44, 150, 210, 30, 120}
	if diff := cmp.Diff(want, img.Red.Pix); diff != "" {
		t.Errorf("contrast (-want +got):\n%s", diff)
	}
}

func TestContrastDegenerate(t *testing.T) {
	img := newImage(t, 2, 2, func(int, int) rgb { return rgb{80, 80, 80} })
	if err := Contrast(img); !errors.Is(err, ErrDegenerateImage) {
		t.Fatalf("expected ErrDegenerateImage, got %v", err)
	}
}

func TestSharpen(t *testing.T) {
	bright := newImage(t, 3, 3, func(y, x int) rgb {
		if y == 1 && x == 1 {
			return rgb{100, 10, 60}
		}
		return rgb{10, 100, 50}
	})
	if err := Sharpen(bright); err != nil {
		t.Fatalf("Sharpen: %v", err)
	}
	// red 5*100-40 clamps to 255, green 50-400 clamps to 0, blue 300-200.
	want := [][]uint8{
		{0, 0, 0, 0, 255, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 100, 0, 0, 0, 0},
	}
	if diff := cmp.Diff(want, snapshot(bright)); diff != "" {
		t.Errorf("sharpen (-want +got):\n%s", diff)
	}
}

func TestSmooth(t *testing.T) {
	img := newImage(t, 3, 3, func(y, x int) rgb {
		if y == 1 && x == 1 {
			return rgb{255, 0, 7}
		}
		return rgb{90, 100, 1}
	})
	if err := Smooth(img); err != nil {
		t.Fatalf("Smooth: %v", err)
	}
	// The centre is excluded: 720/9 = 80, 800/9 = 88.9 -> 89, 8/9 -> 1.
	got := []uint8{img.Red.At(1, 1), img.Green.At(1, 1), img.Blue.At(1, 1)}
	if diff := cmp.Diff([]uint8{80, 89, 1}, got); diff != "" {
		t.Errorf("smooth centre (-want +got):\n%s", diff)
	}
}

func TestConvolutionBordersAreZero(t *testing.T) {
	for name, fn := range map[string]func(*ir.Image, ...Option) error{
		"sharpen": Sharpen,
		"smooth":  Smooth,
	} {
		t.Run(name, func(t *testing.T) {
			img := randomImage(t, 9, 13, 3)
			if err := fn(img); err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			for c, p := range img.Planes() {
				for y := 0; y < img.Rows; y++ {
					for x := 0; x < img.Cols; x++ {
						border := y == 0 || y == img.Rows-1 || x == 0 || x == img.Cols-1
						if border && p.At(y, x) != 0 {
							t.Fatalf("plane %d border (%d,%d) = %d, want 0", c, y, x, p.At(y, x))
						}
					}
				}
			}
		})
	}
}

func TestConvolutionTinyImageZeroes(t *testing.T) {
	img := newImage(t, 2, 2, func(int, int) rgb { return rgb{9, 9, 9} })
	if err := Smooth(img); err != nil {
		t.Fatalf("Smooth: %v", err)
	}
	for _, p := range img.Planes() {
		if diff := cmp.Diff([]uint8{0, 0, 0, 0}, p.Pix); diff != "" {
			t.Errorf("tiny smooth (-want +got):\n%s", diff)
		}
	}
}

func TestConvolutionAllocationFailureLeavesImage(t *testing.T) {
	for name, fn := range map[string]func(*ir.Image, ...Option) error{
		"sharpen": Sharpen,
		"smooth":  Smooth,
	} {
		t.Run(name, func(t *testing.T) {
			img := randomImage(t, 6, 6, 4)
			before := snapshot(img)
			red := img.Red

			err := fn(img, WithAllocator(&pixbuf.FailAfter{N: 2}))
			if !errors.Is(err, pixbuf.ErrAllocation) {
				t.Fatalf("expected ErrAllocation, got %v", err)
			}
			if img.Red != red {
				t.Error("live buffer replaced after failed allocation")
			}
			if diff := cmp.Diff(before, snapshot(img)); diff != "" {
				t.Errorf("image mutated (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	ops := map[string]func(*ir.Image, ...Option) error{
		"sharpen": Sharpen,
		"smooth":  Smooth,
		"brighten": func(img *ir.Image, opts ...Option) error {
			Brighten(img, 37, opts...)
			return nil
		},
		"contrast": Contrast,
	}
	for name, fn := range ops {
		t.Run(name, func(t *testing.T) {
			serial := randomImage(t, 211, 97, 5)
			parallel := randomImage(t, 211, 97, 5)
			if err := fn(serial, WithWorkers(1)); err != nil {
				t.Fatalf("serial: %v", err)
			}
			if err := fn(parallel, WithWorkers(8)); err != nil {
				t.Fatalf("parallel: %v", err)
			}
			if diff := cmp.Diff(snapshot(serial), snapshot(parallel)); diff != "" {
				t.Errorf("parallel result differs (-serial +parallel):\n%s", diff)
			}
		})
	}
}

func TestResizeNearest(t *testing.T) {
	img := newImage(t, 4, 6, func(int, int) rgb { return rgb{12, 34, 56} })
	interp, err := ParseInterpolation("")
	if err != nil {
		t.Fatalf("ParseInterpolation: %v", err)
	}
	if err := Resize(img, 9, 5, interp); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if img.Cols != 9 || img.Rows != 5 {
		t.Fatalf("dimensions %dx%d, want 9x5", img.Cols, img.Rows)
	}
	for c, want := range []uint8{12, 34, 56} {
		p := img.Planes()[c]
		if p.Rows != 5 || p.Cols != 9 {
			t.Fatalf("plane %d is %dx%d", c, p.Cols, p.Rows)
		}
		for i, v := range p.Pix {
			if v != want {
				t.Fatalf("plane %d sample %d = %d, want %d", c, i, v, want)
			}
		}
	}
}

func TestResizeFailureLeavesImage(t *testing.T) {
	img := randomImage(t, 4, 4, 6)
	before := snapshot(img)
	err := Resize(img, 8, 8, 0, WithAllocator(&pixbuf.FailAfter{N: 1}))
	if !errors.Is(err, pixbuf.ErrAllocation) {
		t.Fatalf("expected ErrAllocation, got %v", err)
	}
	if img.Rows != 4 || img.Cols != 4 {
		t.Errorf("dimensions changed to %dx%d", img.Cols, img.Rows)
	}
	if diff := cmp.Diff(before, snapshot(img)); diff != "" {
		t.Errorf("image mutated (-want +got):\n%s", diff)
	}
}

func TestParseInterpolation(t *testing.T) {
	if _, err := ParseInterpolation("Lanczos3"); err != nil {
		t.Errorf("Lanczos3: %v", err)
	}
	if _, err := ParseInterpolation("cubic-ish"); err == nil {
		t.Error("expected error for unknown interpolation")
	}
}
