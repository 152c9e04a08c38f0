package export

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"

	"github.com/san-kum/sortviz/internal/layout"
	"github.com/san-kum/sortviz/internal/sorting"
)

var palette = color.Palette{
	color.Black,
	color.White,
	color.RGBA{R: 0, G: 255, B: 0, A: 255},
}

const (
	idxBackground = iota
	idxBar
	idxHighlight
)

// Recorder captures frames of a run as GIF images. It implements
// engine.Renderer and keeps every Every-th frame plus every sorted frame.
type Recorder struct {
	Every int
	// Scale divides the render surface; 2 yields 600x300 images.
	Scale int
	// Delay per GIF frame, in hundredths of a second.
	Delay int

	seen   int
	frames []*image.Paletted
}

func NewRecorder(every, scale int) *Recorder {
	if every < 1 {
		every = 1
	}
	if scale < 1 {
		scale = 1
	}
	return &Recorder{Every: every, Scale: scale, Delay: 2}
}

func (r *Recorder) Render(f sorting.Frame) {
	r.seen++
	if !f.Sorted && (r.seen-1)%r.Every != 0 {
		return
	}
	r.frames = append(r.frames, r.capture(f))
}

func (r *Recorder) capture(f sorting.Frame) *image.Paletted {
	w, h := layout.Width/r.Scale, layout.Height/r.Scale
	img := image.NewPaletted(image.Rect(0, 0, w, h), palette)

	for i, v := range f.Values {
		idx := uint8(idxBar)
		if f.Highlighted(i) {
			idx = idxHighlight
		}
		x, y, bw, bh := layout.BarRect(i, v)
		rect := image.Rect(x/r.Scale, y/r.Scale, (x+bw)/r.Scale, (y+bh)/r.Scale)
		for py := rect.Min.Y; py < rect.Max.Y; py++ {
			for px := rect.Min.X; px < rect.Max.X; px++ {
				img.SetColorIndex(px, py, idx)
			}
		}
	}
	return img
}

func (r *Recorder) Len() int { return len(r.frames) }

func (r *Recorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("export: no frames recorded")
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.Delay)
	}
	return gif.EncodeAll(w, &anim)
}

func (r *Recorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := r.Encode(f); err != nil {
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	return f.Close()
}
