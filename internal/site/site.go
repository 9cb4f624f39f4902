package site

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"lumen/internal/sample"
)

//go:embed viewer.html
var viewerHTML string

var viewerTemplate = template.Must(template.New("viewer").Parse(viewerHTML))

var titleCaser = cases.Title(language.Und)

// Options configures viewer-page rendering.
type Options struct {
	Title       string
	ImgPrefix   string
	PlotsPrefix string
	BallsPrefix string
}

type templateData struct {
	Title       string
	ImgPrefix   template.JS
	PlotsPrefix template.JS
	BallsPrefix template.JS
	Data        template.JS
}

// ArtistName turns a raw dataset label into a display name: underscores
// become spaces and words are title-cased. Empty labels become "Unknown".
func ArtistName(raw string) string {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, "_", " "))
	if cleaned == "" {
		return "Unknown"
	}
	return titleCaser.String(cleaned)
}

// Render produces the complete viewer page for the given samples. Each
// record gains an "artist" field derived from its dataset label before
// serialization.
func Render(opts Options, recs []sample.Record) ([]byte, error) {
	for _, rec := range recs {
		rec["artist"] = ArtistName(rec.String("dataset", ""))
	}

	dataJSON, err := json.Marshal(recs)
	if err != nil {
		return nil, fmt.Errorf("serialize samples: %w", err)
	}

	data := templateData{
		Title:       opts.Title,
		ImgPrefix:   jsString(opts.ImgPrefix),
		PlotsPrefix: jsString(opts.PlotsPrefix),
		BallsPrefix: jsString(opts.BallsPrefix),
		Data:        template.JS(dataJSON),
	}

	var buf bytes.Buffer
	if err := viewerTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render viewer: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteSite renders the viewer and writes it to outDir/index.html.
func WriteSite(logger *slog.Logger, outDir string, opts Options, recs []sample.Record) (string, error) {
	page, err := Render(opts, recs)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(outDir, "index.html")
	if err := os.WriteFile(path, page, 0o644); err != nil {
		return "", fmt.Errorf("write viewer page: %w", err)
	}
	logger.Info("viewer page written", "path", path, "points", len(recs), "bytes", len(page))
	return path, nil
}

func jsString(s string) template.JS {
	encoded, err := json.Marshal(s)
	if err != nil {
		// json.Marshal of a string cannot fail.
		panic(err)
	}
	return template.JS(encoded)
}
