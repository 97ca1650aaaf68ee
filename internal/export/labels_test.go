package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/BarCut/internal/model"
)

func TestCollectLabelInfos(t *testing.T) {
	sol := buildTestSolution(t)

	labels := CollectLabelInfos(sol)

	if len(labels) != sol.Metrics.TotalCuts {
		t.Fatalf("expected %d labels, got %d", sol.Metrics.TotalCuts, len(labels))
	}
	first := labels[0]
	if first.Bar != 1 || first.Position != 1 || first.Pattern != 1 {
		t.Errorf("unexpected first label %+v", first)
	}
	if first.Label != sol.Bars[0].Cuts[0].Label || first.Length != sol.Bars[0].Cuts[0].Length {
		t.Errorf("first label does not match first cut: %+v", first)
	}
	for _, l := range labels {
		if l.Pattern < 1 || l.Pattern > len(sol.Patterns) {
			t.Errorf("label %+v refers to unknown pattern", l)
		}
		if l.Project != sol.Name {
			t.Errorf("expected project %q, got %q", sol.Name, l.Project)
		}
	}
}

func TestCollectLabelInfos_RepeatedPatternNumber(t *testing.T) {
	sol := model.NewSolution("Rack", model.DefaultSettings())
	bar := model.Bar{Cuts: []model.Cut{{Length: 600, Label: "A"}}, Free: 5397}
	sol.Bars = []model.Bar{bar, bar}
	sol.Patterns = []model.Pattern{{Signature: bar.Signature(), Cuts: bar.Cuts, Free: bar.Free, Count: 2}}

	labels := CollectLabelInfos(sol)

	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}
	if labels[1].Bar != 2 || labels[1].Pattern != 1 {
		t.Errorf("unexpected second label %+v", labels[1])
	}
}

func TestLabelInfo_JSON(t *testing.T) {
	data, err := json.Marshal(LabelInfo{Label: "SP1", Length: 265, Pattern: 1, Bar: 2, Position: 3})
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["length_mm"] != 265.0 {
		t.Errorf("expected length_mm=265, got %v", decoded["length_mm"])
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, buildTestSolution(t)); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("labels file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Error("labels file is empty")
	}
}

func TestExportLabels_NoPieces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	if err := ExportLabels(path, model.NewSolution("", model.DefaultSettings())); err == nil {
		t.Error("expected error when there are no pieces")
	}
}
