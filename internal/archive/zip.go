package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/imamik/tfscaffold/internal/terraform"
)

// entryMode is the permission of every file in the archive.
const entryMode = 0o644

// PackagingError is returned when the archive cannot be written.
// Entry is empty when the failure happened while finalizing the archive.
type PackagingError struct {
	Entry string
	Cause error
}

func (e *PackagingError) Error() string {
	if e.Entry == "" {
		return fmt.Sprintf("failed to finalize archive: %v", e.Cause)
	}
	return fmt.Sprintf("failed to write %s to archive: %v", e.Entry, e.Cause)
}

func (e *PackagingError) Unwrap() error {
	return e.Cause
}

// Pack returns the zip archive of set.
func Pack(set *terraform.ArtifactSet) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, set); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes the zip archive of set to w. Artifacts with empty or
// whitespace-only content are skipped.
func Write(w io.Writer, set *terraform.ArtifactSet) error {
	if set == nil {
		return &PackagingError{Cause: errors.New("artifact set is nil")}
	}

	zw := zip.NewWriter(w)
	closed := false
	defer func() {
		if !closed {
			_ = zw.Close()
		}
	}()

	for _, kind := range terraform.AllKinds() {
		content := set.Content(kind)
		if strings.TrimSpace(content) == "" {
			continue
		}
		if err := writeEntry(zw, kind.FileName(), content); err != nil {
			return &PackagingError{Entry: kind.FileName(), Cause: err}
		}
	}

	closed = true
	if err := zw.Close(); err != nil {
		return &PackagingError{Cause: err}
	}
	return nil
}

func writeEntry(zw *zip.Writer, name, content string) error {
	header := &zip.FileHeader{
		Name:   name,
		Method: zip.Deflate,
	}
	header.SetMode(entryMode)

	f, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = io.WriteString(f, content)
	return err
}
