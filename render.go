package simplex

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/BTBurke/simplex/pkg/rng"
	"github.com/BTBurke/simplex/pkg/simplex"
	"github.com/BTBurke/simplex/pkg/stat"
)

// shade ramp for text output, darkest first
const ramp = " .:-=+*#%@"

// Field is a rectangular grid of noise samples stored row major
type Field struct {
	Width   int
	Height  int
	Values  []float64
	Summary stat.Summary
}

// At returns the sample at column x, row y
func (f *Field) At(x, y int) float64 {
	return f.Values[y*f.Width+x]
}

// Generator builds the generator described by cfg: a seeded source, the bytes of a seed
// file, or the process wide default.
func Generator(cfg Config) (*simplex.Simplex, error) {
	switch {
	case cfg.Seeded:
		return simplex.FromSource(rng.NewSeededSource(cfg.Seed))
	case cfg.SeedFile != "":
		f, err := os.Open(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		gen, err := simplex.FromSource(rng.NewReaderSource(f))
		if err != nil {
			return nil, fmt.Errorf("seed file %s: %w", cfg.SeedFile, err)
		}
		return gen, nil
	default:
		return Default()
	}
}

// Render samples gen over the grid described by cfg
func Render(gen *simplex.Simplex, cfg Config) *Field {
	f := &Field{
		Width:  cfg.Width,
		Height: cfg.Height,
		Values: make([]float64, cfg.Width*cfg.Height),
	}
	acc := stat.NewAccumulator()
	for py := 0; py < cfg.Height; py++ {
		for px := 0; px < cfg.Width; px++ {
			v := gen.Noise2D(cfg.OffsetX+float64(px)*cfg.Scale, cfg.OffsetY+float64(py)*cfg.Scale)
			f.Values[py*cfg.Width+px] = v
			acc.Record(v)
		}
	}
	f.Summary = acc.Summary()
	return f
}

// Write encodes the field in the given format
func (f *Field) Write(w io.Writer, format string) error {
	switch format {
	case FormatPNG:
		return f.WritePNG(w)
	case FormatText:
		return f.WriteText(w)
	case FormatCSV:
		return f.WriteCSV(w)
	default:
		return fmt.Errorf("unknown format %s", format)
	}
}

// Save writes the field to cfg.Output, or to stdout when no output is set.  An error from
// closing the file is returned.
func (f *Field) Save(cfg Config) error {
	if cfg.Output == "" || cfg.Output == "-" {
		return f.Write(os.Stdout, cfg.Format)
	}
	out, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	return f.writeClose(out, cfg.Format)
}

func (f *Field) writeClose(w io.WriteCloser, format string) error {
	if err := f.Write(w, format); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// WritePNG writes the field as an 8 bit grayscale image mapping [-1, 1] to [0, 255]
func (f *Field) WritePNG(w io.Writer) error {
	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetGray(x, y, color.Gray{Y: gray(f.At(x, y))})
		}
	}
	return png.Encode(w, img)
}

// WriteText writes one line per row using a shade ramp
func (f *Field) WriteText(w io.Writer) error {
	b := bufio.NewWriter(w)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			idx := int(gray(f.At(x, y))) * len(ramp) / 256
			b.WriteByte(ramp[idx])
		}
		b.WriteByte('\n')
	}
	return b.Flush()
}

// WriteCSV writes one comma separated line per row
func (f *Field) WriteCSV(w io.Writer) error {
	b := bufio.NewWriter(w)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if x > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatFloat(f.At(x, y), 'g', -1, 64))
		}
		b.WriteByte('\n')
	}
	return b.Flush()
}

func gray(v float64) uint8 {
	g := (v + 1) / 2 * 255
	switch {
	case g < 0 || math.IsNaN(g):
		return 0
	case g > 255:
		return 255
	default:
		return uint8(g + 0.5)
	}
}
