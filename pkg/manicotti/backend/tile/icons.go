package tile

import (
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti"
	"github.com/BrandonKowalski/manicotti/pkg/manicotti/internal"
)

// iconRegistry rasterizes SVG icons into textures and hands out the
// opaque tile handles entries carry.
type iconRegistry struct {
	renderer *sdl.Renderer
	size     int
	textures map[uint32]*sdl.Texture
	nextID   uint32
}

func newIconRegistry(renderer *sdl.Renderer) *iconRegistry {
	size := manicotti.TileMetrics().IconHeight
	return &iconRegistry{
		renderer: renderer,
		size:     size,
		textures: make(map[uint32]*sdl.Texture),
		nextID:   1,
	}
}

// RegisterSVG rasterizes an SVG file at the standard icon size and
// returns a tile handle for entry icon lists.
func (w *Window) RegisterSVG(path string) (manicotti.Tile, error) {
	return w.icons.register(path)
}

func (r *iconRegistry) register(path string) (manicotti.Tile, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return manicotti.Tile{}, manicotti.NewInfrastructureError("read_svg", err)
	}

	size := r.size
	icon.SetTarget(0, 0, float64(size), float64(size))
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(size), int32(size), 32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return manicotti.Tile{}, manicotti.NewInfrastructureError("icon_surface", err)
	}
	texture, err := r.renderer.CreateTextureFromSurface(surface)
	surface.Free()
	if err != nil {
		return manicotti.Tile{}, manicotti.NewInfrastructureError("icon_texture", err)
	}

	id := r.nextID
	r.nextID++
	r.textures[id] = texture
	internal.GetInternalLogger().Debug("registered icon", "path", path, "id", id)
	return manicotti.Tile{ID: id}, nil
}

// draw places a registered icon, honoring an optional YMax crop.
func (r *iconRegistry) draw(tp manicotti.TilePlacement) {
	texture, ok := r.textures[tp.Tile.ID]
	if !ok {
		return
	}
	h := int32(r.size)
	var src *sdl.Rect
	if tp.Tile.YMax > 0 && tp.Tile.YMax < r.size {
		h = int32(tp.Tile.YMax)
		src = &sdl.Rect{X: 0, Y: 0, W: int32(r.size), H: h}
	}
	r.renderer.Copy(texture, src, &sdl.Rect{X: int32(tp.X), Y: int32(tp.Y), W: int32(r.size), H: h})
}

func (r *iconRegistry) destroy() {
	for _, texture := range r.textures {
		texture.Destroy()
	}
	r.textures = make(map[uint32]*sdl.Texture)
}
