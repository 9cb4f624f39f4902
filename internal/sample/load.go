package sample

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads a dataset of records from path. A .gz suffix selects gzip
// decompression; the remaining extension selects the container: .json holds
// a single JSON array, .jsonl holds one record per line.
func Load(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	name := strings.ToLower(path)
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("open gzip dataset %s: %w", path, err)
		}
		defer gz.Close()
		reader = gz
		name = strings.TrimSuffix(name, ".gz")
	}

	if strings.HasSuffix(name, ".jsonl") {
		return decodeLines(reader, path)
	}
	return decodeArray(reader, path)
}

func decodeArray(r io.Reader, path string) ([]Record, error) {
	var records []Record
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	return records, nil
}

func decodeLines(r io.Reader, path string) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var rec Record
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return nil, fmt.Errorf("decode dataset %s line %d: %w", path, line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return records, nil
}
