package archive

import (
	"archive/zip"
	"bytes"
	"crypto/sha256"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/tfscaffold/internal/terraform"
)

func newSet(t *testing.T, contents map[terraform.ArtifactKind]string) *terraform.ArtifactSet {
	t.Helper()
	set, err := terraform.NewArtifactSet("demo", contents)
	require.NoError(t, err)
	return set
}

func fullSet(t *testing.T) *terraform.ArtifactSet {
	t.Helper()
	contents := make(map[terraform.ArtifactKind]string)
	for _, kind := range terraform.AllKinds() {
		contents[kind] = "# " + kind.FileName() + "\n"
	}
	return newSet(t, contents)
}

func readEntries(t *testing.T, data []byte) ([]string, map[string]string) {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var names []string
	contents := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())

		names = append(names, f.Name)
		contents[f.Name] = string(body)
	}
	return names, contents
}

func TestPack_AllEntriesInOrder(t *testing.T) {
	t.Parallel()

	data, err := Pack(fullSet(t))
	require.NoError(t, err)

	names, contents := readEntries(t, data)
	assert.Equal(t, []string{
		"main.tf",
		"variables.tf",
		"vpc.tf",
		"services_s3.tf",
		"services_rds.tf",
		"services_ecs.tf",
		"outputs.tf",
		"terraform.tfvars",
	}, names)
	assert.Equal(t, "# vpc.tf\n", contents["vpc.tf"])
}

func TestPack_SkipsEmptyContent(t *testing.T) {
	t.Parallel()
	set := newSet(t, map[terraform.ArtifactKind]string{
		terraform.KindMain:               "terraform {}\n",
		terraform.KindObjectStorage:      "",
		terraform.KindRelationalDatabase: "  \n\t ",
		terraform.KindOutputs:            "output \"x\" {}\n",
	})

	data, err := Pack(set)
	require.NoError(t, err)

	names, _ := readEntries(t, data)
	assert.Equal(t, []string{"main.tf", "outputs.tf"}, names)
}

func TestPack_EmptySet(t *testing.T) {
	t.Parallel()

	data, err := Pack(newSet(t, nil))
	require.NoError(t, err)

	names, _ := readEntries(t, data)
	assert.Empty(t, names)
}

func TestPack_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := Pack(fullSet(t))
	require.NoError(t, err)
	second, err := Pack(fullSet(t))
	require.NoError(t, err)

	assert.Equal(t, sha256.Sum256(first), sha256.Sum256(second))
}

func TestPack_EntryAttributes(t *testing.T) {
	t.Parallel()

	data, err := Pack(fullSet(t))
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		assert.Equal(t, zip.Deflate, f.Method, f.Name)
		assert.True(t, f.Modified.IsZero() || f.Modified.Year() <= 1980, f.Name)
		assert.Equal(t, "-rw-r--r--", f.Mode().String(), f.Name)
	}
}

func TestPack_NilSet(t *testing.T) {
	t.Parallel()

	_, err := Pack(nil)
	var pkgErr *PackagingError
	assert.ErrorAs(t, err, &pkgErr)
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestWrite_WriterError(t *testing.T) {
	t.Parallel()
	cause := errors.New("disk full")

	err := Write(failingWriter{err: cause}, fullSet(t))
	require.Error(t, err)

	var pkgErr *PackagingError
	require.ErrorAs(t, err, &pkgErr)
	assert.ErrorIs(t, err, cause)
}

func TestWrite_WriterErrorNamesEntry(t *testing.T) {
	t.Parallel()
	cause := errors.New("disk full")

	// Large enough to overflow the zip writer's buffer while writing main.tf.
	set := newSet(t, map[terraform.ArtifactKind]string{terraform.KindMain: randomText(256 * 1024)})

	err := Write(failingWriter{err: cause}, set)

	var pkgErr *PackagingError
	require.ErrorAs(t, err, &pkgErr)
	assert.Equal(t, "main.tf", pkgErr.Entry)
	assert.Contains(t, err.Error(), "main.tf")
}

// randomText returns n bytes of poorly compressible printable text.
func randomText(n int) string {
	b := make([]byte, n)
	var x uint32 = 2463534242
	for i := range b {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		b[i] = byte('!' + x%94)
	}
	return string(b)
}

func TestPackagingError(t *testing.T) {
	t.Parallel()
	cause := errors.New("boom")

	entryErr := &PackagingError{Entry: "vpc.tf", Cause: cause}
	assert.Equal(t, "failed to write vpc.tf to archive: boom", entryErr.Error())
	assert.ErrorIs(t, entryErr, cause)

	finalErr := &PackagingError{Cause: cause}
	assert.Equal(t, "failed to finalize archive: boom", finalErr.Error())
}
