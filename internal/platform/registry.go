// Package platform translates platform folder labels into display names.
package platform

import (
	"sort"
	"strings"
)

// names is the global registry of known platform folders
var names = map[string]string{}

func init() {
	for label, name := range builtin {
		Register(label, name)
	}
}

var builtin = map[string]string{
	"3do":          "3DO Interactive Multiplayer",
	"amiga":        "Commodore Amiga",
	"amigacd32":    "Commodore Amiga CD32",
	"amstradcpc":   "Amstrad CPC",
	"arcade":       "Arcade",
	"atari2600":    "Atari 2600",
	"atari7800":    "Atari 7800",
	"atarist":      "Atari ST",
	"c64":          "Commodore 64",
	"dos":          "MS-DOS",
	"dreamcast":    "Sega Dreamcast",
	"fds":          "Nintendo Famicom Disk System",
	"gamegear":     "Sega Game Gear",
	"gb":           "Nintendo Game Boy",
	"gba":          "Nintendo Game Boy Advance",
	"gbc":          "Nintendo Game Boy Color",
	"gc":           "Nintendo GameCube",
	"genesis":      "Sega Genesis",
	"mastersystem": "Sega Master System",
	"megadrive":    "Sega Mega Drive",
	"msx":          "MSX",
	"n64":          "Nintendo 64",
	"nds":          "Nintendo DS",
	"neogeo":       "SNK Neo Geo",
	"neogeocd":     "SNK Neo Geo CD",
	"nes":          "Nintendo Entertainment System",
	"pc88":         "NEC PC-8801",
	"pc98":         "NEC PC-9801",
	"pcengine":     "NEC PC Engine",
	"pcenginecd":   "NEC PC Engine CD",
	"ps2":          "Sony PlayStation 2",
	"psp":          "Sony PlayStation Portable",
	"psx":          "Sony PlayStation",
	"saturn":       "Sega Saturn",
	"scummvm":      "ScummVM",
	"sega32x":      "Sega 32X",
	"segacd":       "Sega CD",
	"snes":         "Super Nintendo Entertainment System",
	"tg16":         "NEC TurboGrafx-16",
	"tgcd":         "NEC TurboGrafx-CD",
	"wii":          "Nintendo Wii",
	"x68000":       "Sharp X68000",
	"zxspectrum":   "Sinclair ZX Spectrum",
}

// Register adds or replaces the display name of a folder label
func Register(label, name string) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" || strings.TrimSpace(name) == "" {
		return
	}
	names[label] = strings.TrimSpace(name)
}

// Name returns the display name of a folder label, or the label itself when unknown
func Name(label string) string {
	if n, ok := names[strings.ToLower(strings.TrimSpace(label))]; ok {
		return n
	}
	return label
}

// Known reports whether a display name is registered for label
func Known(label string) bool {
	_, ok := names[strings.ToLower(strings.TrimSpace(label))]
	return ok
}

// List returns all registered labels, sorted
func List() []string {
	labels := make([]string, 0, len(names))
	for l := range names {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}
