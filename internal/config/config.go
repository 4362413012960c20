// Package config loads the optional chef.yaml file that overrides the
// ambient resource guards in chef.Options.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the shape of chef.yaml. Zero values mean "use the compiled-in
// default" — the file only needs to name the knobs it wants to override.
type File struct {
	MaxSousChefDepth int `yaml:"maxSousChefDepth"`
	MaxStatements    int `yaml:"maxStatements"`
}

// fileName is the configuration file chef looks for.
const fileName = "chef.yaml"

// Load searches the current directory and then $HOME/.config/chef/ for
// chef.yaml. A missing file is not an error — Load returns a zero File
// and a nil error, meaning "use every default".
func Load() (File, error) {
	for _, candidate := range searchPaths() {
		data, err := os.ReadFile(candidate)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return File{}, fmt.Errorf("config: reading %s: %w", candidate, err)
		}

		var f File
		if err := yaml.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("config: parsing %s: %w", candidate, err)
		}
		return f, nil
	}
	return File{}, nil
}

func searchPaths() []string {
	paths := []string{fileName}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "chef", fileName))
	}
	return paths
}
