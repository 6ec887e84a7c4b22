package build

import (
	"fmt"
	"os"
)

// copyFile copies src to dst in one read-write cycle, preserving the source
// file's permission bits. Template files are small static pages; no
// streaming is needed.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("reading template %q: %w", src, err)
	}
	content, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading template %q: %w", src, err)
	}
	if err := os.WriteFile(dst, content, info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %q: %w", dst, err)
	}
	return nil
}
