package cmd

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sampleExport = `<?xml version="1.0" encoding="UTF-8"?>
<xml><records>
<record>
  <contributors><authors>
    <author><style>Hicks, T.</style></author>
    <author><style>Doe, J.</style></author>
  </authors></contributors>
  <dates><year><style>2020</style></year></dates>
  <titles>
    <title><style>A Study of Things</style></title>
    <secondary-title><style>Journal of Things</style></secondary-title>
  </titles>
  <volume><style>3</style></volume>
  <number><style>2</style></number>
  <pages><style>10-20</style></pages>
  <label><style>Hicks2020</style></label>
  <work-type><style>Journal Article</style></work-type>
</record>
<record/>
</records></xml>
`

func writeSampleExport(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.xml")
	if err := os.WriteFile(path, []byte(sampleExport), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestExecuteExtractCSV(t *testing.T) {
	inputFile := writeSampleExport(t)
	outputFile := filepath.Join(t.TempDir(), "out.csv")

	if err := executeExtract(inputFile, outputFile, "", ""); err != nil {
		t.Fatalf("executeExtract failed: %v", err)
	}

	file, err := os.Open(outputFile)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	expected := [][]string{
		{"Authors", "PubDate", "Title", "Journal", "Volume", "Label", "WorkType"},
		{"Hicks, T.; Doe, J.", "2020", "A Study of Things", "Journal of Things", "3:2:10-20", "Hicks2020", "Journal Article"},
		{"", "", "", "", "", "", ""},
	}
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("Rows = %v, want %v", rows, expected)
	}
}

func TestExecuteExtractFormatFromConfig(t *testing.T) {
	inputFile := writeSampleExport(t)
	dir := t.TempDir()
	outputFile := filepath.Join(dir, "out.dat")
	configFile := filepath.Join(dir, "options.yaml")
	if err := os.WriteFile(configFile, []byte("format: jsonl\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if err := executeExtract(inputFile, outputFile, "", configFile); err != nil {
		t.Fatalf("executeExtract failed: %v", err)
	}

	data, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if len(data) == 0 || data[0] != '{' {
		t.Errorf("Expected JSONL output, got %q", string(data))
	}
}

func TestExecuteExtractBadFormat(t *testing.T) {
	inputFile := writeSampleExport(t)
	outputFile := filepath.Join(t.TempDir(), "out.csv")

	if err := executeExtract(inputFile, outputFile, "tsv", ""); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestExecuteExtractMalformedInput(t *testing.T) {
	dir := t.TempDir()
	inputFile := filepath.Join(dir, "bad.xml")
	if err := os.WriteFile(inputFile, []byte("<xml><records>"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	outputFile := filepath.Join(dir, "out.csv")

	if err := executeExtract(inputFile, outputFile, "", ""); err == nil {
		t.Error("Expected error for malformed input")
	}
	if _, err := os.Stat(outputFile); !os.IsNotExist(err) {
		t.Error("Expected no output file after parse failure")
	}
}

func TestReadableFilePath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "export.xml")
	if err := os.WriteFile(file, []byte("<xml/>"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "readable file", path: file, expected: true},
		{name: "missing file", path: filepath.Join(dir, "nope.xml"), expected: false},
		{name: "directory", path: dir, expected: false},
		{name: "empty path", path: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readableFilePath(tt.path); got != tt.expected {
				t.Errorf("readableFilePath(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}
