package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	cardkiterrors "github.com/cardkit/cardkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseGallery loads a gallery document from disk, validates it, and returns
// the resulting model.
func ParseGallery(path string) (*Gallery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cardkiterrors.NewParseError(path, 0, err)
	}

	var gallery Gallery
	if err := yaml.Unmarshal(data, &gallery); err != nil {
		return nil, cardkiterrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateGallery(&gallery); err != nil {
		return nil, err
	}

	return &gallery, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
