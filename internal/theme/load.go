package theme

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Palette lists the color overrides a theme file may carry. Values are
// Lip Gloss color strings (ANSI indices or hex).
type Palette struct {
	Button        string `toml:"button"`
	ButtonFocused string `toml:"button_focused"`
	Item          string `toml:"item"`
	ActiveItem    string `toml:"active_item"`
	SelectedMark  string `toml:"selected_mark"`
	Indicator     string `toml:"indicator"`
	Info          string `toml:"info"`
	Error         string `toml:"error"`
	Footer        string `toml:"footer"`
}

// Load reads a TOML palette file and builds the style set from it.
// Entries missing from the file keep their default colors.
func Load(path string) (*Styles, error) {
	var p Palette
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return p.Styles(), nil
}
