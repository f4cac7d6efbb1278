package bundle

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/typograf/fontsel/core"
)

func TestDirBundle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.bundle")
	defer teardown()
	//
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "fonts"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "fonts", "a.ttf"), []byte("AAAA"), 0644); err != nil {
		t.Fatal(err)
	}
	b := Dir(dir)
	data, err := b.Fetch("fonts/a.ttf")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "AAAA" {
		t.Errorf("unexpected asset content: %q", data)
	}
	_, err = b.Fetch("fonts/missing.ttf")
	if core.Code(err) != core.EMISSING {
		t.Errorf("expected EMISSING for absent asset, got %v", err)
	}
}

func TestFSBundle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.bundle")
	defer teardown()
	//
	fsys := fstest.MapFS{
		"FontManifest.json": &fstest.MapFile{Data: []byte(`[]`)},
	}
	b := FS(fsys)
	data, err := b.Fetch("FontManifest.json")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[]` {
		t.Errorf("unexpected asset content: %q", data)
	}
	_, err = b.Fetch("nothing.here")
	if core.Code(err) != core.EMISSING {
		t.Errorf("expected EMISSING for absent asset, got %v", err)
	}
}

func TestZipBundle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.bundle")
	defer teardown()
	//
	zipfile := filepath.Join(t.TempDir(), "assets.zip")
	out, err := os.Create(zipfile)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(out)
	w, err := zw.Create("fonts/a.ttf")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("AAAA")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := out.Close(); err != nil {
		t.Fatal(err)
	}
	//
	b, closer, err := OpenZip(zipfile)
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	data, err := b.Fetch("fonts/a.ttf")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "AAAA" {
		t.Errorf("unexpected asset content: %q", data)
	}
	_, err = b.Fetch("fonts/missing.ttf")
	if core.Code(err) != core.EMISSING {
		t.Errorf("expected EMISSING for absent asset, got %v", err)
	}
}

func TestOpenZipInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.bundle")
	defer teardown()
	//
	_, _, err := OpenZip(filepath.Join(t.TempDir(), "no-such.zip"))
	if err == nil {
		t.Errorf("expected opening a non-existing zip to fail, hasn't")
	}
}

func TestConfiguredDir(t *testing.T) {
	dir := t.TempDir()
	teardown := testconfig.QuickConfig(t, map[string]string{
		"asset-dir": dir,
	})
	defer teardown()
	//
	if err := os.WriteFile(filepath.Join(dir, "hello.txt"), []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}
	b := ConfiguredDir()
	data, err := b.Fetch("hello.txt")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hi" {
		t.Errorf("unexpected asset content: %q", data)
	}
}
