package htmlwriter

import (
	"fmt"
	"os"
)

// DefaultFilename is the output path used by WriteFile when none is given.
const DefaultFilename = "index.html"

// WriteFile renders the document to the file at path, creating or
// truncating it. An empty path writes to DefaultFilename.
func (d *Document) WriteFile(path string, cfg RenderConfig) error {
	if path == "" {
		path = DefaultFilename
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("htmlwriter: create %q: %w", path, err)
	}
	if err := d.Render(f, cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
