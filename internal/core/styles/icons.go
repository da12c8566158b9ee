package styles

// Icons holds the glyphs used by the task list.
type Icons struct {
	Unchecked string
	Checked   string
	Edit      string
	Delete    string
	Add       string
	Send      string
	Cancel    string
	Info      string
}

// Tip: To find nerd font icons use https://github.com/loichyan/nerdfix
var iconSets = map[string]Icons{
	"unicode": {
		Unchecked: "○",
		Checked:   "●",
		Edit:      "✎",
		Delete:    "✕",
		Add:       "+",
		Send:      "➤",
		Cancel:    "✕",
		Info:      "ℹ",
	},
	"nerd": {
		Unchecked: "\U000F0130", // 󰄰
		Checked:   "\U000F0133", // 󰄳
		Edit:      "\uf044",     // 
		Delete:    "\uf1f8",     // 
		Add:       "\uf067",     // 
		Send:      "\uf1d8",     // 
		Cancel:    "\uf00d",     // 
		Info:      "\uf05a",     // 
	},
	"ascii": {
		Unchecked: "[ ]",
		Checked:   "[x]",
		Edit:      "e",
		Delete:    "x",
		Add:       "+",
		Send:      ">",
		Cancel:    "x",
		Info:      "i",
	},
}

// CurrentIcons holds the active icon set.
var CurrentIcons = iconSets["unicode"]

// SetIcons switches the active icon set. Unknown names are ignored and
// report false.
func SetIcons(name string) bool {
	icons, ok := iconSets[name]
	if ok {
		CurrentIcons = icons
	}
	return ok
}
