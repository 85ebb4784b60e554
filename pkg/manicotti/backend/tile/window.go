// Package tile renders menus through SDL2: a hardware-accelerated
// window, TTF text measurement and drawing, SVG entry icons, and
// SDL event translation with directional key repeat.
package tile

import (
	"os"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti"
	"github.com/BrandonKowalski/manicotti/pkg/manicotti/internal"
)

// WindowOptions controls SDL window creation.
type WindowOptions struct {
	Title      string
	Width      int32 // 0 means the current display mode
	Height     int32
	Borderless bool
	Resizable  bool
}

func (o WindowOptions) toSDLFlags() uint32 {
	flags := uint32(sdl.WINDOW_SHOWN)
	if o.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if o.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	return flags
}

// Window is an SDL2 surface implementing manicotti.Host.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	font     *ttf.Font

	textCache *TextureCache
	icons     *iconRegistry
	repeat    directionalRepeat
}

// NewWindow initializes the SDL subsystems and opens a window. Failure
// to create the window or renderer is unrecoverable and panics.
func NewWindow(opts WindowOptions, menuOpts *manicotti.Options) *Window {
	log := internal.GetInternalLogger()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		panic(err)
	}
	if err := ttf.Init(); err != nil {
		panic(err)
	}
	img.Init(img.INIT_PNG)

	width, height := opts.Width, opts.Height
	if width == 0 || height == 0 {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			log.Error("failed to get display mode", "error", err)
			width, height = 1024, 768
		} else {
			width, height = displayMode.W, displayMode.H
		}
	}

	log.Debug("initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(opts.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width, height, opts.toSDLFlags())
	if err != nil {
		panic(err)
	}

	renderer, err := sdl.CreateRenderer(window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		log.Error("failed to create renderer", "error", err)
		os.Exit(1)
	}
	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	font := openFont(menuOpts)

	return &Window{
		window:    window,
		renderer:  renderer,
		font:      font,
		textCache: NewTextureCache(64),
		icons:     newIconRegistry(renderer),
		repeat:    newDirectionalRepeat(),
	}
}

// Size returns the logical surface extent in pixels.
func (w *Window) Size() (int, int) {
	width, height := w.window.GetSize()
	return int(width), int(height)
}

// Close releases all SDL resources.
func (w *Window) Close() {
	w.textCache.Destroy()
	w.icons.destroy()
	if w.font != nil {
		w.font.Close()
	}
	w.renderer.Destroy()
	w.window.Destroy()
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}
