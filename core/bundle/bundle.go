package bundle

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/gconf"
	"github.com/typograf/fontsel/core"
)

// Bundle supplies raw bytes for assets packaged with an application.
// Fetch is synchronous; it either returns the asset's bytes or an error
// with code core.EMISSING.
type Bundle interface {
	Fetch(path string) ([]byte, error)
}

// NotFound returns the canonical error for an asset missing from a bundle.
func NotFound(path string) error {
	return core.Error(core.EMISSING, "asset not found in bundle: %s", path)
}

// --- Directory bundle ------------------------------------------------------

type dirBundle struct {
	root string
}

// Dir returns a bundle backed by a directory on the local file system.
// Asset paths are interpreted relative to root.
func Dir(root string) Bundle {
	return dirBundle{root: root}
}

func (b dirBundle) Fetch(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(b.root, filepath.FromSlash(path)))
	if err != nil {
		tracer().Debugf("bundle has no asset %s: %v", path, err)
		return nil, NotFound(path)
	}
	return data, nil
}

// ConfiguredDir returns a directory bundle rooted at the `asset-dir` entry
// of the global configuration.
func ConfiguredDir() Bundle {
	root := gconf.GetString("asset-dir")
	if root == "" {
		tracer().Errorf("configuration key 'asset-dir' is not set")
	}
	return Dir(root)
}

// --- io/fs bundle ----------------------------------------------------------

type fsBundle struct {
	fsys fs.FS
}

// FS returns a bundle backed by an fs.FS, e.g. an embed.FS holding
// packaged assets.
func FS(fsys fs.FS) Bundle {
	return fsBundle{fsys: fsys}
}

func (b fsBundle) Fetch(path string) ([]byte, error) {
	data, err := fs.ReadFile(b.fsys, path)
	if err != nil {
		tracer().Debugf("bundle has no asset %s: %v", path, err)
		return nil, NotFound(path)
	}
	return data, nil
}

// --- Zip bundle ------------------------------------------------------------

type zipBundle struct {
	archive *zip.Reader
}

// Zip returns a bundle backed by a zip archive, the format application
// assets are commonly packaged in.
func Zip(archive *zip.Reader) Bundle {
	return zipBundle{archive: archive}
}

// OpenZip opens a zip archive file and wraps it as a bundle. The archive
// is read lazily; the returned closer keeps the file open until the
// bundle is no longer needed.
func OpenZip(zipfile string) (Bundle, io.Closer, error) {
	rc, err := zip.OpenReader(zipfile)
	if err != nil {
		return nil, nil, core.WrapError(err, core.EINVALID, "cannot open asset bundle %s", zipfile)
	}
	return Zip(&rc.Reader), rc, nil
}

func (b zipBundle) Fetch(path string) ([]byte, error) {
	file, err := b.archive.Open(path)
	if err != nil {
		tracer().Debugf("bundle has no asset %s: %v", path, err)
		return nil, NotFound(path)
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot read asset %s", path)
	}
	return data, nil
}
