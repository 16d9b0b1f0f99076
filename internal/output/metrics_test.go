package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jeduden/textstat/internal/metrics"
)

func TestWriteMetricList_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMetricList(&buf, "text", metrics.All()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(metrics.All())+1 {
		t.Fatalf("got %d lines, want %d", len(lines), len(metrics.All())+1)
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "DESCRIPTION") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "TXT001") {
		t.Errorf("first row = %q, want TXT001 first", lines[1])
	}
}

func TestWriteMetricList_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMetricList(&buf, "json", metrics.All()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var items []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &items); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if items[0]["id"] != "TXT001" || items[0]["name"] != "characters" {
		t.Errorf("first item = %v", items[0])
	}
	if _, ok := items[0]["default_order"]; !ok {
		t.Errorf("missing default_order: %v", items[0])
	}
}

func TestWriteRank(t *testing.T) {
	words, _ := metrics.Lookup("words")
	readability, _ := metrics.Lookup("readability")
	defs := []metrics.Definition{words, readability}
	rows := []metrics.Row{
		{Path: "a.txt", Metrics: map[string]metrics.Value{
			"words":       metrics.AvailableValue(12),
			"readability": metrics.AvailableValue(71.26),
		}},
		{Path: "empty.txt", Metrics: map[string]metrics.Value{
			"words":       metrics.AvailableValue(0),
			"readability": metrics.UnavailableValue(),
		}},
	}

	var buf bytes.Buffer
	if err := WriteRank(&buf, "text", rows, defs); err != nil {
		t.Fatalf("text: %v", err)
	}
	want := "WORDS  READABILITY  PATH\n" +
		"12     71.3         a.txt\n" +
		"0      -            empty.txt\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}

	buf.Reset()
	if err := WriteRank(&buf, "json", rows, defs); err != nil {
		t.Fatalf("json: %v", err)
	}
	var items []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &items); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if items[0]["readability"] != 71.3 {
		t.Errorf("readability = %v, want 71.3", items[0]["readability"])
	}
	if items[1]["readability"] != nil {
		t.Errorf("unavailable readability = %v, want null", items[1]["readability"])
	}

	if err := WriteRank(&buf, "csv", rows, defs); err == nil {
		t.Error("expected error for unknown format")
	}
}
