// Package export writes the landing page into a directory, so it can be hosted without the server.
package export

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shelteraid/shelteraid/page"
	"github.com/shelteraid/shelteraid/static"
	"github.com/shelteraid/shelteraid/util"
)

// Export writes index.html, index.txt and the images into dir. Existing files are overwritten.
func Export(dir string, home *page.Home) error {

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var html = &bytes.Buffer{}
	if err := home.Render(html); err != nil {
		return fmt.Errorf("rendering home page: %w", err)
	}

	blocks, err := util.TextBlocks(bytes.NewReader(html.Bytes()))
	if err != nil {
		return fmt.Errorf("extracting text: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "index.html"), html.Bytes(), 0644); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(dir, "index.txt"), []byte(strings.Join(blocks, "\n")+"\n"), 0644); err != nil {
		return err
	}

	for _, path := range static.Images {
		name := strings.TrimPrefix(path, "/")
		data, err := fs.ReadFile(static.FS, name)
		if err != nil {
			return fmt.Errorf("reading image %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			return err
		}
	}

	return nil
}
