package assets_test

import (
	"os"
	"path/filepath"
	"testing"

	"lumen/internal/assets"
	"lumen/internal/logging"
	"lumen/internal/sample"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestBuildIndexFirstOccurrenceWins(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "artist_a", "shared.png"), "a")
	writeFile(t, filepath.Join(root, "artist_b", "shared.png"), "b")
	writeFile(t, filepath.Join(root, "artist_b", "only_b.png"), "b")

	idx, err := assets.BuildIndex(root)
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}
	if len(idx) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(idx))
	}
	// WalkDir visits directories lexically, so artist_a's copy is indexed first.
	if idx["shared.png"] != filepath.Join(root, "artist_a", "shared.png") {
		t.Fatalf("expected artist_a path to win, got %s", idx["shared.png"])
	}
	if _, ok := idx["only_b.png"]; !ok {
		t.Fatal("expected only_b.png to be indexed")
	}
}

func TestBuildIndexMissingRoot(t *testing.T) {
	if _, err := assets.BuildIndex(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestStageImages(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(src, "vermeer", "girl.png"), "img")

	recs := []sample.Record{
		{"img_path": `renders\vermeer\girl.png`},
		{"img_path": "renders/other/gone.png"},
		{"painting_info": "no image field"},
	}

	stats, err := assets.StageImages(logging.NewNop(), recs, src, out, "data")
	if err != nil {
		t.Fatalf("StageImages failed: %v", err)
	}
	if stats.Copied != 1 || stats.Missing != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if _, err := os.Stat(filepath.Join(out, "data", "girl.png")); err != nil {
		t.Fatalf("staged image missing: %v", err)
	}
}

func TestStageImagesUnsetSourceIsNoop(t *testing.T) {
	stats, err := assets.StageImages(logging.NewNop(), nil, "", t.TempDir(), "data")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Copied != 0 || stats.Missing != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestStagePlotsAndBalls(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(src, "nested", "a.plot.json"), "{}")
	writeFile(t, filepath.Join(src, "a.json"), "{}")
	writeFile(t, filepath.Join(src, "ball_ev-25.png"), "png")
	writeFile(t, filepath.Join(src, "Ball_EV-00.PNG"), "png")
	writeFile(t, filepath.Join(src, "unrelated.png"), "png")

	plots, err := assets.StagePlots(logging.NewNop(), src, out, "plots_embedded")
	if err != nil {
		t.Fatalf("StagePlots failed: %v", err)
	}
	if plots != 1 {
		t.Fatalf("expected 1 plot staged, got %d", plots)
	}

	balls, err := assets.StageBalls(logging.NewNop(), src, out, "balls")
	if err != nil {
		t.Fatalf("StageBalls failed: %v", err)
	}
	if balls != 2 {
		t.Fatalf("expected 2 balls staged, got %d", balls)
	}
	if _, err := os.Stat(filepath.Join(out, "balls", "ball_ev-25.png")); err != nil {
		t.Fatalf("staged ball missing: %v", err)
	}
}
