package ocr

import (
	"fmt"
	"os"
	"path/filepath"
)

type Artifact struct {
	Path    string
	Content string
}

// SaveText into out.Dir/out.FileName, creating the directory if needed. The
// text is written to a temporary file in the same directory which then
// replaces the target, so a failed write leaves any previous result intact.
func SaveText(out Output, text string) (Artifact, error) {
	if err := os.MkdirAll(out.Dir, 0o755); err != nil {
		return Artifact{}, fmt.Errorf("%w: failed to create output directory: %w", ErrFilesystem, err)
	}
	outFile := filepath.Join(out.Dir, out.FileName)
	tmp, err := os.CreateTemp(out.Dir, "."+out.FileName+".*.tmp")
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: failed to create temporary file: %w", ErrFilesystem, err)
	}
	tmpName := tmp.Name()
	if err := writeAndClose(tmp, text); err != nil {
		os.Remove(tmpName)
		return Artifact{}, fmt.Errorf("%w: failed to write file: %w", ErrFilesystem, err)
	}
	if err := os.Rename(tmpName, outFile); err != nil {
		os.Remove(tmpName)
		return Artifact{}, fmt.Errorf("%w: failed to write file: %w", ErrFilesystem, err)
	}
	return Artifact{
		Path:    outFile,
		Content: text,
	}, nil
}

func writeAndClose(f *os.File, text string) error {
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
