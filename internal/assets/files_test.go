package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"rtd-tower-defense/internal/interfaces"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestDecodeImageRelativeToRoot(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "assets", "sprites", "turret.png"), 40, 40)

	img, err := DecodeImage(root, "assets/sprites/turret.png")
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 40 {
		t.Errorf("unexpected bounds %v", b)
	}
}

func TestDecodeImageMissing(t *testing.T) {
	_, err := DecodeImage(t.TempDir(), "assets/sprites/none.png")
	if !errors.Is(err, interfaces.ErrAssetNotFound) {
		t.Errorf("expected ErrAssetNotFound, got %v", err)
	}
	if err := Exists(t.TempDir(), "nope.wav"); !errors.Is(err, interfaces.ErrAssetNotFound) {
		t.Errorf("Exists: expected ErrAssetNotFound, got %v", err)
	}
}

func TestDecodeImageCorrupt(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "bad.png"), []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := DecodeImage(root, "bad.png")
	if err == nil {
		t.Fatalf("expected a decode error")
	}
	if errors.Is(err, interfaces.ErrAssetNotFound) {
		t.Errorf("corrupt file must not be reported as missing")
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve("", "a/b.png"); got != "a/b.png" {
		t.Errorf("empty root: got %q", got)
	}
	if got := Resolve("/srv", "a/b.png"); got != filepath.Join("/srv", "a", "b.png") {
		t.Errorf("relative path: got %q", got)
	}
	if got := Resolve("/srv", "/abs/b.png"); got != "/abs/b.png" {
		t.Errorf("absolute path: got %q", got)
	}
}
