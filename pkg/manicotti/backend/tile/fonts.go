package tile

import (
	"strings"

	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti"
	"github.com/BrandonKowalski/manicotti/pkg/manicotti/internal"
)

// fallbackFontPaths are tried in order when no font is configured.
var fallbackFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
}

func openFont(opts *manicotti.Options) *ttf.Font {
	size := opts.FontSize
	if size <= 0 {
		size = 16
	}

	paths := fallbackFontPaths
	if opts.FontPath != "" {
		paths = append([]string{opts.FontPath}, fallbackFontPaths...)
	}
	for _, path := range paths {
		font, err := ttf.OpenFont(path, size)
		if err == nil {
			return font
		}
		internal.GetInternalLogger().Warn("failed to open font", "path", path, "error", err)
	}
	panic("tile: no usable font found; set Options.FontPath")
}

// CharHeight is the line height of the menu font.
func (w *Window) CharHeight() int {
	return w.font.Height()
}

// StringWidth measures s in pixels.
func (w *Window) StringWidth(s string) int {
	if s == "" {
		return 0
	}
	width, _, err := w.font.SizeUTF8(s)
	if err != nil {
		return 0
	}
	return width
}

// SplitText greedily word-wraps s to maxWidth pixels, keeping at most
// as many lines as fit in maxHeight pixels (0 means unbounded). A word
// wider than the line is kept whole rather than broken mid-word.
func (w *Window) SplitText(s string, maxWidth, maxHeight int) []string {
	maxLines := 0
	if maxHeight > 0 {
		maxLines = maxHeight / w.CharHeight()
		if maxLines < 1 {
			maxLines = 1
		}
	}

	var lines []string
	var line string
	flush := func() {
		lines = append(lines, line)
		line = ""
	}

	for _, word := range strings.Fields(s) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if w.StringWidth(candidate) <= maxWidth || line == "" {
			line = candidate
			continue
		}
		flush()
		line = word
	}
	flush()

	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
