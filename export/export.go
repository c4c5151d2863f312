// Package export writes snapshots of a board to image files. Exporters only
// read the board through its coordinate traversal.
package export

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/sync/errgroup"

	"github.com/JWillisNetDev/game-of-life/model"
)

var (
	aliveColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	deadColor  = color.RGBA{A: 255}
)

const (
	pgmAlive byte = 255
	pgmDead  byte = 0
)

// Exporter encodes a board snapshot in one image format
type Exporter interface {
	Extension() string
	Export(w io.Writer, b *model.Board) error
}

// toImage maps alive cells to white pixels and dead cells to black ones
func toImage(b *model.Board) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width(), b.Height()))
	for c := range b.Coordinates() {
		if c.Cell.IsAlive() {
			img.SetRGBA(c.X, c.Y, aliveColor)
		} else {
			img.SetRGBA(c.X, c.Y, deadColor)
		}
	}
	return img
}

// BMP writes Windows bitmaps
type BMP struct{}

func (BMP) Extension() string { return ".bmp" }

func (BMP) Export(w io.Writer, b *model.Board) error {
	return bmp.Encode(w, toImage(b))
}

// PNG writes portable network graphics
type PNG struct{}

func (PNG) Extension() string { return ".png" }

func (PNG) Export(w io.Writer, b *model.Board) error {
	return png.Encode(w, toImage(b))
}

// PGM writes binary (P5) greymaps with one byte per cell
type PGM struct{}

func (PGM) Extension() string { return ".pgm" }

func (PGM) Export(w io.Writer, b *model.Board) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P5\n%d %d\n255\n", b.Width(), b.Height()); err != nil {
		return err
	}
	for c := range b.Coordinates() {
		value := pgmDead
		if c.Cell.IsAlive() {
			value = pgmAlive
		}
		if err := bw.WriteByte(value); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ByName returns the exporter for a format name: bmp, png or pgm
func ByName(name string) (Exporter, error) {
	switch name {
	case "bmp":
		return BMP{}, nil
	case "png":
		return PNG{}, nil
	case "pgm":
		return PGM{}, nil
	}
	return nil, errors.Errorf("[ByName] unsupported format: %q", name)
}

// WriteFile exports the board to path
func WriteFile(path string, e Exporter, b *model.Board) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[WriteFile] failed to create file: %+v", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "[WriteFile] failed to close file: %+v", path)
		}
	}()

	if err = e.Export(f, b); err != nil {
		return errors.Wrapf(err, "[WriteFile] failed to encode file: %+v", path)
	}
	return nil
}

// Multi writes the same board in several formats
type Multi struct {
	Dir       string
	Exporters []Exporter
}

// NewMulti builds a Multi exporter from format names
func NewMulti(dir string, formats ...string) (*Multi, error) {
	m := &Multi{Dir: dir}
	for _, name := range formats {
		e, err := ByName(name)
		if err != nil {
			return nil, err
		}
		m.Exporters = append(m.Exporters, e)
	}
	return m, nil
}

// Write exports the board once per format as dir/stem+extension and returns
// the written paths. Every exporter reads the board concurrently, so the
// board must not be mutated until Write returns.
func (m *Multi) Write(stem string, b *model.Board) ([]string, error) {
	var (
		eg    errgroup.Group
		paths = make([]string, len(m.Exporters))
	)

	for i, e := range m.Exporters {
		paths[i] = filepath.Join(m.Dir, stem+e.Extension())
		eg.Go(func() error {
			return WriteFile(paths[i], e, b)
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
