package convert

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"svgray/config"
	"svgray/state"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg"><rect fill="#ff0000"/></svg>`

func testContext(t *testing.T) (context.Context, *state.LocalEnv) {
	t.Helper()

	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = zap.NewNop()
	env.Cfg = &config.Config{
		Document: config.DocumentConfig{
			Method:           config.GrayMethodLuminance,
			Strength:         100,
			OutputNameSuffix: "_gray",
		},
	}
	return ctx, env
}

func TestProcess_SingleFile(t *testing.T) {
	ctx, _ := testContext(t)

	srcDir, dstDir := t.TempDir(), t.TempDir()
	srcFile := filepath.Join(srcDir, "shape.svg")
	if err := os.WriteFile(srcFile, []byte(testSVG), 0644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	if err := process(ctx, srcFile, dstDir, zap.NewNop()); err != nil {
		t.Fatalf("process: %v", err)
	}

	out, err := os.ReadFile(filepath.Join(dstDir, "shape_gray.svg"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(out), `fill="#4c4c4c"`) {
		t.Errorf("output not converted:\n%s", out)
	}
}

func TestProcess_Directory(t *testing.T) {
	ctx, _ := testContext(t)

	srcDir, dstDir := t.TempDir(), t.TempDir()
	if err := os.MkdirAll(filepath.Join(srcDir, "nested"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	files := []string{
		filepath.Join(srcDir, "one.svg"),
		filepath.Join(srcDir, "nested", "two.svg"),
	}
	for _, f := range files {
		if err := os.WriteFile(f, []byte(testSVG), 0644); err != nil {
			t.Fatalf("write source: %v", err)
		}
	}
	// not an SVG - must be skipped quietly
	if err := os.WriteFile(filepath.Join(srcDir, "readme.txt"), []byte("hello"), 0644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	if err := process(ctx, srcDir, dstDir, zap.NewNop()); err != nil {
		t.Fatalf("process: %v", err)
	}

	for _, want := range []string{
		filepath.Join(dstDir, "one_gray.svg"),
		filepath.Join(dstDir, "nested", "two_gray.svg"),
	} {
		if _, err := os.Stat(want); err != nil {
			t.Errorf("expected output %s: %v", want, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dstDir, "readme_gray.svg")); err == nil {
		t.Error("non-SVG input produced output")
	}
}

func TestProcess_DirectoryContinuesPastBadFile(t *testing.T) {
	ctx, _ := testContext(t)

	srcDir, dstDir := t.TempDir(), t.TempDir()
	if err := os.WriteFile(filepath.Join(srcDir, "bad.svg"), []byte(`<svg><rect`), 0644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	if err := os.WriteFile(filepath.Join(srcDir, "good.svg"), []byte(testSVG), 0644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	if err := process(ctx, srcDir, dstDir, zap.NewNop()); err != nil {
		t.Fatalf("process: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dstDir, "good_gray.svg")); err != nil {
		t.Errorf("good file not converted: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dstDir, "bad_gray.svg")); err == nil {
		t.Error("malformed file produced output")
	}
}

func TestProcess_OverwriteGuard(t *testing.T) {
	ctx, env := testContext(t)

	srcDir, dstDir := t.TempDir(), t.TempDir()
	srcFile := filepath.Join(srcDir, "shape.svg")
	if err := os.WriteFile(srcFile, []byte(testSVG), 0644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	outFile := filepath.Join(dstDir, "shape_gray.svg")
	if err := os.WriteFile(outFile, []byte("keep me"), 0644); err != nil {
		t.Fatalf("write existing output: %v", err)
	}

	if err := process(ctx, srcFile, dstDir, zap.NewNop()); err == nil {
		t.Error("process succeeded over existing destination without overwrite")
	}

	env.Overwrite = true
	if err := process(ctx, srcFile, dstDir, zap.NewNop()); err != nil {
		t.Fatalf("process with overwrite: %v", err)
	}
	out, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(out), `fill="#4c4c4c"`) {
		t.Errorf("output not overwritten:\n%s", out)
	}
}

func TestProcess_MissingSource(t *testing.T) {
	ctx, _ := testContext(t)

	if err := process(ctx, filepath.Join(t.TempDir(), "nope.svg"), t.TempDir(), zap.NewNop()); err == nil {
		t.Error("process succeeded on missing source")
	}
}

func TestIsSVGFile(t *testing.T) {
	dir := t.TempDir()

	svg := filepath.Join(dir, "a.svg")
	if err := os.WriteFile(svg, []byte(testSVG), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	renamed := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(renamed, []byte(testSVG), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	fake := filepath.Join(dir, "fake.svg")
	if err := os.WriteFile(fake, []byte("just text"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if !isSVGFile(svg) {
		t.Error("real svg not recognized")
	}
	if isSVGFile(renamed) {
		t.Error("wrong extension accepted")
	}
	if isSVGFile(fake) {
		t.Error("non-svg content accepted")
	}
}
