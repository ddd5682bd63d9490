package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 0xff, A: 0xff})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func fullFS(t *testing.T) fstest.MapFS {
	t.Helper()
	fsys := fstest.MapFS{}
	for _, name := range RunFrames {
		fsys[name] = &fstest.MapFile{Data: pngBytes(t, 12, 16)}
	}
	for _, name := range JumpFrames {
		fsys[name] = &fstest.MapFile{Data: pngBytes(t, 12, 16)}
	}
	return fsys
}

func TestLibraryLoadsManifest(t *testing.T) {
	lib := NewLibrary(fullFS(t), nil)
	lib.LoadAll()
	lib.Wait()

	for _, anim := range []Animation{AnimRun, AnimJump} {
		if !lib.FramesReady(anim) {
			t.Errorf("FramesReady(%s) = false, want true", anim)
		}
		img, ok := lib.Frame(anim, 2)
		if !ok {
			t.Fatalf("Frame(%s, 2) not ready", anim)
		}
		if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 16 {
			t.Errorf("frame bounds = %v, want 12x16", b)
		}
	}

	// No backdrop in the file system
	if _, ok := lib.Backdrop(); ok {
		t.Error("Backdrop() ready without a file")
	}
	if lib.Err(BackdropImage) == nil {
		t.Error("expected load error for missing backdrop")
	}
}

func TestLibraryPartialSetNotReady(t *testing.T) {
	fsys := fullFS(t)
	delete(fsys, RunFrames[3])
	fsys[JumpFrames[1]] = &fstest.MapFile{Data: []byte("not an image")}

	lib := NewLibrary(fsys, nil)
	lib.LoadAll()
	lib.Wait()

	if lib.FramesReady(AnimRun) {
		t.Error("run set ready with a missing frame")
	}
	if lib.FramesReady(AnimJump) {
		t.Error("jump set ready with a corrupt frame")
	}
	if !lib.Ready(RunFrames[0]) {
		t.Error("individual frame should still be ready")
	}
	if lib.Err(JumpFrames[1]) == nil {
		t.Error("expected decode error")
	}
}

func TestLibraryLoadIsIdempotent(t *testing.T) {
	lib := NewLibrary(fullFS(t), nil)
	lib.Load(RunFrames[0])
	lib.Load(RunFrames[0])
	lib.Wait()
	lib.Load(RunFrames[0])
	lib.Wait()

	if !lib.Ready(RunFrames[0]) {
		t.Fatal("frame not ready")
	}
}

func TestFrameWraps(t *testing.T) {
	lib := NewLibrary(fullFS(t), nil)
	lib.LoadAll()
	lib.Wait()

	tests := []struct {
		i    int
		want string
	}{
		{0, RunFrames[0]},
		{3, RunFrames[3]},
		{4, RunFrames[0]},
		{-1, RunFrames[3]},
	}
	for _, tt := range tests {
		got, ok := lib.Frame(AnimRun, tt.i)
		want, _ := lib.Image(tt.want)
		if !ok || got != want {
			t.Errorf("Frame(run, %d) did not return %s", tt.i, tt.want)
		}
	}
}

func TestReadFile(t *testing.T) {
	fsys := fstest.MapFS{StartSound: &fstest.MapFile{Data: []byte("ID3")}}
	lib := NewLibrary(fsys, nil)

	data, err := lib.ReadFile(StartSound)
	if err != nil || string(data) != "ID3" {
		t.Errorf("ReadFile = %q, %v", data, err)
	}
	if _, err := lib.ReadFile("missing.mp3"); err == nil {
		t.Error("expected error for missing file")
	}
}
