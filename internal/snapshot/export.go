package snapshot

import (
	"fmt"
	"io"
	"os"
)

// WriteLink emits the resumable link as a text artifact: exactly the URL
// string, newline-terminated.
func WriteLink(w io.Writer, link string) error {
	if _, err := io.WriteString(w, link+"\n"); err != nil {
		return fmt.Errorf("writing share link: %w", err)
	}
	return nil
}

// ExportLink writes the link artifact to a file.
func ExportLink(path, link string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating link file: %w", err)
	}
	defer f.Close()

	if err := WriteLink(f, link); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing link file: %w", err)
	}
	return nil
}
