package config

import (
	"embed"
	"io/fs"
)

//go:embed defaults
var embeddedDefaults embed.FS

// defaultsFS returns the embedded default config files
func defaultsFS() fs.FS {
	sub, err := fs.Sub(embeddedDefaults, "defaults")
	if err != nil {
		// The directory is compiled in; this cannot fail at runtime.
		panic("config: embedded defaults missing: " + err.Error())
	}
	return sub
}

// Default loads the embedded default configuration
func Default() (*GameConfig, error) {
	return NewFSLoader(defaultsFS()).LoadAll()
}
