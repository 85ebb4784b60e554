package manicotti

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Options is the host-tunable configuration menus consult. It replaces
// ambient option globals: the relevant values are read once and passed
// into the menu at construction.
type Options struct {
	// MenuArrowControl enables arrow-key hover navigation. When false,
	// FlagArrowsSelect and FlagInitHover are stripped from every menu.
	MenuArrowControl bool `toml:"menu_arrow_control"`

	// MenuIcons enables icon drawing and the icon gutter in tile mode.
	MenuIcons bool `toml:"menu_icons"`

	// SingleColumnMenus forces one column even for menus that allow
	// two.
	SingleColumnMenus bool `toml:"single_column_menus"`

	// MinColumnWidth is the minimum natural column width, in backend
	// units. Zero means the layout default.
	MinColumnWidth int `toml:"min_column_width"`

	// MaxMenuWidthChars caps the natural menu width, in character
	// widths.
	MaxMenuWidthChars int `toml:"max_menu_width_chars"`

	FontPath string `toml:"font_path"`
	FontSize int    `toml:"font_size"`

	Theme ThemeOptions `toml:"theme"`
}

// ThemeOptions are draw colours, as "#rrggbb" or "#rrggbbaa" strings.
type ThemeOptions struct {
	Text         string `toml:"text"`
	Highlight    string `toml:"highlight"`
	Hover        string `toml:"hover"`
	HoverOutline string `toml:"hover_outline"`
	Divider      string `toml:"divider"`
}

// DefaultOptions returns the option set menus assume when the host
// supplies none.
func DefaultOptions() *Options {
	return &Options{
		MenuArrowControl:  true,
		MenuIcons:         true,
		MaxMenuWidthChars: 93,
		FontSize:          16,
		Theme: ThemeOptions{
			Text:         "#ffffff",
			Highlight:    "#32320a",
			Hover:        "#ffffff19",
			HoverOutline: "#ffffff33",
			Divider:      "#404040c8",
		},
	}
}

// LoadOptions reads a TOML options file over the defaults.
func LoadOptions(path string) (*Options, error) {
	opts := DefaultOptions()
	if _, err := toml.DecodeFile(path, opts); err != nil {
		return nil, NewInfrastructureError("load_options", err)
	}
	return opts, nil
}

// ParseColour parses "#rrggbb" or "#rrggbbaa" into a Colour. Missing
// alpha means opaque.
func ParseColour(s string) (Colour, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return ColourDefault, fmt.Errorf("colour %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ColourDefault, fmt.Errorf("colour %q: %w", s, err)
	}
	return Colour(v), nil
}

// colour parses a theme colour string, falling back when unset or
// malformed.
func (t ThemeOptions) colour(s string, fallback Colour) Colour {
	if s == "" {
		return fallback
	}
	c, err := ParseColour(s)
	if err != nil {
		return fallback
	}
	return c
}

// TextColour resolves the configured default text colour.
func (t ThemeOptions) TextColour() Colour { return t.colour(t.Text, ColourWhite) }

// HighlightColour resolves the selected-entry background colour.
func (t ThemeOptions) HighlightColour() Colour { return t.colour(t.Highlight, 0x32320aff) }

// HoverColour resolves the hover background colour.
func (t ThemeOptions) HoverColour() Colour { return t.colour(t.Hover, 0xffffff19) }

// HoverOutlineColour resolves the hover outline colour.
func (t ThemeOptions) HoverOutlineColour() Colour { return t.colour(t.HoverOutline, 0xffffff33) }

// DividerColour resolves the heading divider colour.
func (t ThemeOptions) DividerColour() Colour { return t.colour(t.Divider, 0x404040c8) }
