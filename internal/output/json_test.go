package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jeduden/textstat/internal/engine"
)

func TestJSONFormatter_Shape(t *testing.T) {
	f := &JSONFormatter{}
	var buf bytes.Buffer

	if err := f.Format(&buf, []engine.FileReport{{Path: "a.txt", Report: fixtureReport()}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var items []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &items); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0]["path"] != "a.txt" {
		t.Errorf("path = %v, want a.txt", items[0]["path"])
	}

	report, ok := items[0]["report"].(map[string]any)
	if !ok {
		t.Fatalf("report missing: %v", items[0])
	}
	for _, key := range []string{"stats", "frequency", "readability", "sentiment", "top_n"} {
		if _, ok := report[key]; !ok {
			t.Errorf("report missing key %q", key)
		}
	}

	stats := report["stats"].(map[string]any)
	if stats["words"] != float64(2000) {
		t.Errorf("stats.words = %v, want 2000", stats["words"])
	}
	sentiment := report["sentiment"].(map[string]any)
	if sentiment["label"] != "Positive" {
		t.Errorf("sentiment.label = %v, want Positive", sentiment["label"])
	}
	level := report["readability"].(map[string]any)["level"].(map[string]any)
	if level["label"] != "Standard" {
		t.Errorf("readability.level.label = %v, want Standard", level["label"])
	}
}

func TestJSONFormatter_Empty(t *testing.T) {
	f := &JSONFormatter{}
	var buf bytes.Buffer

	if err := f.Format(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf.String() != "[]\n" {
		t.Errorf("got %q, want %q", buf.String(), "[]\n")
	}
}
