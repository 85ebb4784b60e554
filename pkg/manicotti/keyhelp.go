package manicotti

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locale/*.toml
var localeFS embed.FS

var (
	localeMu  sync.Mutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
)

func initLocale() {
	localeMu.Lock()
	defer localeMu.Unlock()
	if localizer != nil {
		return
	}
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	entries, _ := localeFS.ReadDir("locale")
	for _, entry := range entries {
		// files are embedded, a load failure is a packaging bug
		if _, err := bundle.LoadMessageFileFS(localeFS, "locale/"+entry.Name()); err != nil {
			panic(fmt.Sprintf("manicotti: bad locale file %s: %v", entry.Name(), err))
		}
	}
	localizer = i18n.NewLocalizer(bundle, language.English.String())
}

// SetLocale switches the language used for generated key-help text.
// Unknown tags fall back to English.
func SetLocale(tag string) {
	initLocale()
	localeMu.Lock()
	defer localeMu.Unlock()
	localizer = i18n.NewLocalizer(bundle, tag, language.English.String())
}

func tr(id string, data map[string]any) string {
	initLocale()
	localeMu.Lock()
	l := localizer
	localeMu.Unlock()
	s, err := l.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return s
}

func searchPrompt() string { return tr("search_prompt", nil) }

// scrollPosToken is the placeholder in key-help templates replaced at
// render time with the scroll position.
const scrollPosToken = "XXX"

func scrollPosText(percent int) string {
	switch {
	case percent <= 0:
		return tr("scroll_top", nil)
	case percent >= 100:
		return tr("scroll_bottom", nil)
	default:
		return fmt.Sprintf("%2d%%", percent)
	}
}

// getKeyhelp builds the help text shown under the list. Multiselect
// menus always get one; single-select menus only when the list
// scrolls. The scroll-position token is substituted at render time so
// the template need not be rebuilt on every scroll.
func (m *Menu) getKeyhelp(scrollable bool) string {
	if !scrollable && !m.flags.Has(FlagMultiSelect) {
		return ""
	}

	var nav strings.Builder
	if m.flags.Has(FlagArrowsSelect) {
		nav.WriteString(tr("keyhelp_select", nil))
	}
	if scrollable {
		nav.WriteString(tr("keyhelp_page", nil))
		nav.WriteString("[" + scrollPosToken + "]  ")
	}

	if !m.flags.Has(FlagMultiSelect) {
		nav.WriteString(tr("keyhelp_close", nil))
		return nav.String()
	}

	nav.WriteString(tr("keyhelp_close", nil))
	nav.WriteString("\n")
	nav.WriteString(tr("keyhelp_letters_toggle", nil))
	if m.flags.Has(FlagArrowsSelect) {
		nav.WriteString(tr("keyhelp_toggle_selected", nil))
	}
	chosen := len(m.sel)
	if chosen == 0 {
		nav.WriteString(tr("keyhelp_cancel", nil))
	} else {
		nav.WriteString(tr("keyhelp_accept", map[string]any{"Count": chosen}))
	}
	return nav.String()
}
