package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/textkit/editorcore/syntax"
)

type syntaxFile struct {
	Syntax []syntaxFileEntry `toml:"syntax"`
}

type syntaxFileEntry struct {
	Name       string   `toml:"name"`
	FileNames  []string `toml:"filenames"`
	Extensions []string `toml:"extensions"`
}

// LoadSyntaxFile reads and parses a user syntax file at path. A missing
// file is not an error: it returns (nil, nil), matching the convention
// that a user configuration file is optional.
func LoadSyntaxFile(path string) ([]syntax.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return parseSyntaxFile(data)
}

func parseSyntaxFile(data []byte) ([]syntax.Entry, error) {
	var parsed syntaxFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSyntaxFile, err)
	}
	entries := make([]syntax.Entry, 0, len(parsed.Syntax))
	for _, e := range parsed.Syntax {
		entries = append(entries, syntax.Entry{
			Descriptor: syntax.Descriptor{Name: e.Name},
			FileNames:  e.FileNames,
			Extensions: e.Extensions,
		})
	}
	return entries, nil
}
