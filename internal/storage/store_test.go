package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/zetalab/internal/series"
)

func sampleSet() *series.Set {
	set := &series.Set{Title: "critical line"}
	set.Add(series.New("magnitude", []float64{0, 1, 2}, []float64{1.46, 1.2, math.Inf(1)}))
	set.Add(series.New("phase", []float64{0, 1, 2}, []float64{0, -0.5, 0.25}))
	return set
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	params := map[string]float64{"iterations": 500, "t_end": 2}
	runID, err := st.Save("zeta", "", params, sampleSet())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.View != "zeta" {
		t.Errorf("expected view 'zeta', got '%s'", meta.View)
	}
	if meta.Params["iterations"] != 500 {
		t.Errorf("expected iterations 500, got %f", meta.Params["iterations"])
	}
	if meta.Samples != 6 {
		t.Errorf("expected 6 samples, got %d", meta.Samples)
	}

	set, err := st.LoadSet(runID)
	if err != nil {
		t.Fatalf("load set failed: %v", err)
	}
	if len(set.Series) != 2 || set.Title != "critical line" {
		t.Fatalf("unexpected set: %+v", set)
	}
	mag, ok := set.Get("magnitude")
	if !ok {
		t.Fatal("magnitude series missing")
	}
	if mag.Y[1] != 1.2 || !math.IsInf(mag.Y[2], 1) {
		t.Errorf("magnitude values not preserved: %v", mag.Y)
	}
}

func TestSaveSameSecond(t *testing.T) {
	st := New(t.TempDir())
	a, err := st.Save("psi", "", nil, sampleSet())
	if err != nil {
		t.Fatal(err)
	}
	b, err := st.Save("psi", "", nil, sampleSet())
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Errorf("two saves share run id %s", a)
	}
}

func TestLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListEmpty(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "missing"))
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestListSkipsJunk(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	if _, err := st.Save("primes", "", nil, sampleSet()); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "logs"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].View != "primes" {
		t.Errorf("expected one primes run, got %+v", runs)
	}
}

func TestWriteJSONDropsNonFinite(t *testing.T) {
	var buf bytes.Buffer
	meta := RunMetadata{ID: "zeta_1", View: "zeta"}
	if err := WriteJSON(&buf, meta, sampleSet()); err != nil {
		t.Fatalf("json export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.Run.ID != "zeta_1" {
		t.Errorf("run id lost: %q", data.Run.ID)
	}
	if got := len(data.Series[0].Y); got != 2 {
		t.Errorf("expected infinite sample dropped, got %d samples", got)
	}
	if got := len(data.Series[1].Y); got != 3 {
		t.Errorf("finite series should be intact, got %d samples", got)
	}
}

func TestMsgpackRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.msgpack.gz")
	meta := RunMetadata{ID: "zeta_1", View: "zeta", Params: map[string]float64{"steps": 2}}
	if err := ExportMsgpack(path, meta, sampleSet()); err != nil {
		t.Fatalf("msgpack export failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	data, err := ReadMsgpack(f)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if data.Run.View != "zeta" || data.Run.Params["steps"] != 2 {
		t.Errorf("metadata mismatch: %+v", data.Run)
	}
	set := data.Set()
	mag, ok := set.Get("magnitude")
	if !ok || len(mag.Y) != 3 || !math.IsInf(mag.Y[2], 1) {
		t.Errorf("msgpack should keep non-finite samples, got %v", mag.Y)
	}
}

func TestLoadSetKeepsOrderWithEmptySeries(t *testing.T) {
	st := New(t.TempDir())
	set := &series.Set{Title: "zeros", Warnings: []string{"syntax error: x +"}}
	set.Add(series.New("magnitude", []float64{0, 1}, []float64{1, 2}))
	set.Add(series.Series{Name: "known zeros"})
	set.Add(series.New("phase", []float64{0, 1}, []float64{0, 1}))

	runID, err := st.Save("zeta", "", nil, set)
	if err != nil {
		t.Fatal(err)
	}
	got, err := st.LoadSet(runID)
	if err != nil {
		t.Fatal(err)
	}
	names := got.Names()
	want := []string{"magnitude", "known zeros", "phase"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
	if len(got.Warnings) != 1 {
		t.Errorf("warnings not restored: %v", got.Warnings)
	}
}

func TestSaveFailureLeavesNoRun(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	_, err := st.Save("zeta", "", map[string]float64{"t_end": math.Inf(1)}, sampleSet())
	if err == nil {
		t.Fatal("expected an encoding error for an infinite param")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("failed save left %d entries behind", len(entries))
	}
}
