package pipeline_test

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"lumen/internal/logging"
	"lumen/internal/pipeline"
	"lumen/internal/testsupport"
)

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	dataset := testsupport.WriteFile(t, dir, "points_ev-25.json", `[
		{"file": "R2: Vermeer_Girl_ev-25_points.json", "rank": 2, "dir_x": 3, "dir_y": 4, "dir_z": 12},
		{"painting_info": "Rembrandt_Nightwatch", "dir": [0, 0, 2]},
		{"note": "no direction here"}
	]`)
	quality := testsupport.WriteFile(t, dir, "quality.csv", "file,rank,inlier_weight_frac,mae_in_deg_weighted\n"+
		"Vermeer_Girl_ev-25_points.json,2,0.5,1.0\n"+
		"Vermeer_Girl_ev-00_points.json,2,0.9,1.0\n"+
		"Rembrandt_Nightwatch_ev-25.json,1,1.0,8.0\n")

	result, err := pipeline.Run(logging.NewNop(), pipeline.Options{
		DatasetPath: dataset,
		QualityCSV:  quality,
		Normalize:   true,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if result.ExposureTag != "ev-25" {
		t.Fatalf("expected exposure tag derived from filename, got %q", result.ExposureTag)
	}
	if result.Total != 3 || result.Skipped != 1 {
		t.Fatalf("unexpected counts: total=%d skipped=%d", result.Total, result.Skipped)
	}
	if len(result.Samples) != 2 {
		t.Fatalf("expected 2 surviving samples, got %d", len(result.Samples))
	}
	if result.Load.SkippedExposure != 1 {
		t.Fatalf("expected one quality row filtered by exposure, got %d", result.Load.SkippedExposure)
	}
	if result.Join.Matched != 2 || result.Join.Missing != 1 {
		t.Fatalf("unexpected join stats: %+v", result.Join)
	}

	first := result.Samples[0]
	x, _ := first.Float("x")
	y, _ := first.Float("y")
	z, _ := first.Float("z")
	if mag := math.Sqrt(x*x + y*y + z*z); math.Abs(mag-1) > 1e-9 {
		t.Fatalf("expected unit-length direction, got magnitude %v", mag)
	}
	if raw, _ := first.Float("dir_norm_raw"); math.Abs(raw-13) > 1e-9 {
		t.Fatalf("expected raw magnitude 13, got %v", raw)
	}
	if src := first.String("dir_src_keys", ""); src != "dir_x,dir_y,dir_z" {
		t.Fatalf("unexpected source keys: %q", src)
	}
	if conf, ok := first.Float("confidence"); !ok || math.Abs(conf-0.5) > 1e-9 {
		t.Fatalf("expected confidence 0.5, got %v (ok=%v)", conf, ok)
	}

	second := result.Samples[1]
	if conf, ok := second.Float("confidence"); !ok || conf != 0 {
		t.Fatalf("expected zero confidence at bad MAE, got %v (ok=%v)", conf, ok)
	}
	if z, _ := second.Float("z"); math.Abs(z-1) > 1e-9 {
		t.Fatalf("expected normalized z component 1, got %v", z)
	}
}

func TestRunWithoutQualityReport(t *testing.T) {
	dir := t.TempDir()
	dataset := testsupport.WriteFile(t, dir, "points.json", `[
		{"file": "A", "vx": 1, "vy": 0, "vz": 0}
	]`)

	result, err := pipeline.Run(logging.NewNop(), pipeline.Options{
		DatasetPath: dataset,
		Normalize:   true,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.ExposureTag != "" {
		t.Fatalf("expected no derived exposure tag, got %q", result.ExposureTag)
	}
	if result.Join.Matched != 0 || result.Join.Missing != 1 {
		t.Fatalf("unexpected join stats without table: %+v", result.Join)
	}
	if conf, present := result.Samples[0]["confidence"]; !present || conf != nil {
		t.Fatalf("expected explicit nil confidence, got %v (present=%v)", conf, present)
	}
}

func TestRunNormalizeDisabledPassesRawComponents(t *testing.T) {
	dir := t.TempDir()
	dataset := testsupport.WriteFile(t, dir, "points.json", `[
		{"file": "A", "dir_x": 3, "dir_y": 4, "dir_z": 12}
	]`)

	result, err := pipeline.Run(logging.NewNop(), pipeline.Options{
		DatasetPath: dataset,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	rec := result.Samples[0]
	if x, _ := rec.Float("x"); x != 3 {
		t.Fatalf("expected raw x component 3, got %v", x)
	}
	if raw, _ := rec.Float("dir_norm_raw"); math.Abs(raw-13) > 1e-9 {
		t.Fatalf("expected magnitude recorded even without normalization, got %v", raw)
	}
}

func TestRunDropsDegenerateVectorsWhenNormalizing(t *testing.T) {
	dir := t.TempDir()
	dataset := testsupport.WriteFile(t, dir, "points.json", `[
		{"file": "A", "dir_x": 0, "dir_y": 0, "dir_z": 0},
		{"file": "B", "dir_x": 0, "dir_y": 1, "dir_z": 0}
	]`)

	result, err := pipeline.Run(logging.NewNop(), pipeline.Options{
		DatasetPath: dataset,
		Normalize:   true,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(result.Samples) != 1 || result.Skipped != 1 {
		t.Fatalf("expected zero vector dropped: kept=%d skipped=%d", len(result.Samples), result.Skipped)
	}
}

func TestRunFailsWhenNothingSurvives(t *testing.T) {
	dir := t.TempDir()
	dataset := testsupport.WriteFile(t, dir, "points.json", `[
		{"note": "no direction"},
		{"dir_x": 0, "dir_y": 0, "dir_z": 0}
	]`)

	_, err := pipeline.Run(logging.NewNop(), pipeline.Options{
		DatasetPath: dataset,
		Normalize:   true,
	})
	if !errors.Is(err, pipeline.ErrNoDirections) {
		t.Fatalf("expected ErrNoDirections, got %v", err)
	}
}

func TestRunMissingDataset(t *testing.T) {
	_, err := pipeline.Run(logging.NewNop(), pipeline.Options{
		DatasetPath: filepath.Join(t.TempDir(), "absent.json"),
	})
	if err == nil {
		t.Fatal("expected error for missing dataset")
	}
}

func TestTopSources(t *testing.T) {
	result := &pipeline.Result{SourceCounts: map[string]int{
		"dir_x,dir_y,dir_z": 5,
		"vx,vy,vz":          2,
		"dir":               2,
	}}
	top := result.TopSources(2)
	if len(top) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(top))
	}
	if top[0].Source != "dir_x,dir_y,dir_z" || top[0].Count != 5 {
		t.Fatalf("unexpected top source: %+v", top[0])
	}
	if top[1].Source != "dir" {
		t.Fatalf("expected tie broken by name, got %q", top[1].Source)
	}
}
