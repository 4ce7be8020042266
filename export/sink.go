package export

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/diorama-viz/diorama/viz"
)

// Sink stores a rendered figure page under a name and returns where it
// ended up.
type Sink interface {
	Export(ctx context.Context, name string, fig *viz.Figure) (string, error)
}

// FileSink writes figure pages into a local directory.
type FileSink struct {
	// Dir is the target directory; empty means the working directory.
	Dir string
}

// Export renders the figure to <dir>/<name>.html and returns the path.
func (s FileSink) Export(_ context.Context, name string, fig *viz.Figure) (string, error) {
	path := filepath.Join(s.Dir, htmlName(name))
	if err := viz.SaveHTML(path, fig); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	return path, nil
}

func htmlName(name string) string {
	if name == "" {
		name = "figure"
	}
	if !strings.HasSuffix(name, ".html") {
		name += ".html"
	}
	return name
}
