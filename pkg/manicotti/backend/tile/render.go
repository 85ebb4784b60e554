package tile

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti"
)

func sdlColour(c manicotti.Colour) sdl.Color {
	return sdl.Color{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}
}

// Present draws a frame and flips the back buffer.
func (w *Window) Present(f *manicotti.Frame) {
	w.renderer.SetDrawColor(0, 0, 0, 255)
	w.renderer.Clear()

	for _, q := range f.Quads {
		col := sdlColour(q.Colour)
		w.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
		w.renderer.FillRect(&sdl.Rect{X: int32(q.X), Y: int32(q.Y), W: int32(q.W), H: int32(q.H)})
	}

	for _, l := range f.Lines {
		col := sdlColour(l.Colour)
		w.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
		w.renderer.DrawLine(int32(l.X1), int32(l.Y1), int32(l.X2), int32(l.Y2))
	}

	for _, tp := range f.Tiles {
		w.icons.draw(tp)
	}

	for _, t := range f.Texts {
		w.drawText(t)
	}

	w.renderer.Present()
}

func (w *Window) drawText(t manicotti.TextRun) {
	if t.Text == "" {
		return
	}
	key := fmt.Sprintf("%08x|%s", uint32(t.Colour), t.Text)
	texture := w.textCache.Get(key)
	if texture == nil {
		surface, err := w.font.RenderUTF8Blended(t.Text, sdlColour(t.Colour))
		if err != nil {
			return
		}
		texture, err = w.renderer.CreateTextureFromSurface(surface)
		surface.Free()
		if err != nil {
			return
		}
		w.textCache.Set(key, texture)
	}
	_, _, tw, th, err := texture.Query()
	if err != nil {
		return
	}
	w.renderer.Copy(texture, nil, &sdl.Rect{X: int32(t.X), Y: int32(t.Y), W: tw, H: th})
}
