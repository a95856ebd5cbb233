package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/zetalab/internal/series"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

type RunMetadata struct {
	ID        string             `json:"id" msgpack:"id"`
	View      string             `json:"view" msgpack:"view"`
	Title     string             `json:"title" msgpack:"title"`
	Timestamp time.Time          `json:"timestamp" msgpack:"timestamp"`
	Formula   string             `json:"formula,omitempty" msgpack:"formula,omitempty"`
	Params    map[string]float64 `json:"params" msgpack:"params"`
	Series    []string           `json:"series" msgpack:"series"`
	Samples   int                `json:"samples" msgpack:"samples"`
	Warnings  []string           `json:"warnings,omitempty" msgpack:"warnings,omitempty"`
}

var ErrNotFound = errors.New("storage: run not found")

// Save writes metadata.json and series.csv into a fresh run directory and
// returns the run ID. A run that fails to write is removed again.
func (s *Store) Save(view, formula string, params map[string]float64, set *series.Set) (string, error) {
	if err := s.Init(); err != nil {
		return "", err
	}
	now := time.Now()
	runID, runDir, err := s.newRunDir(view, now)
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		View:      view,
		Title:     set.Title,
		Timestamp: now,
		Formula:   formula,
		Params:    params,
		Series:    set.Names(),
		Warnings:  set.Warnings,
	}
	for _, ser := range set.Series {
		meta.Samples += ser.Len()
	}

	if err := writeRun(runDir, meta, set); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}
	return runID, nil
}

func writeRun(runDir string, meta RunMetadata, set *series.Set) error {
	err := exportFile(filepath.Join(runDir, "metadata.json"), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	})
	if err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	if err := exportFile(filepath.Join(runDir, "series.csv"), func(w io.Writer) error {
		return WriteCSV(w, set)
	}); err != nil {
		return fmt.Errorf("write series: %w", err)
	}
	return nil
}

// newRunDir creates <view>_<unix> and appends a counter when two runs of
// the same view land in the same second.
func (s *Store) newRunDir(view string, now time.Time) (string, string, error) {
	base := fmt.Sprintf("%s_%d", view, now.Unix())
	runID := base
	for i := 1; ; i++ {
		runDir := filepath.Join(s.baseDir, runID)
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			return runID, runDir, nil
		}
		if !os.IsExist(err) {
			return "", "", err
		}
		runID = fmt.Sprintf("%s_%d", base, i)
	}
}

// WriteCSV writes the set in long form: one row per sample with the series
// name in the first column.
func WriteCSV(w io.Writer, set *series.Set) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"series", "x", "y"}); err != nil {
		return err
	}
	for _, ser := range set.Series {
		for i := 0; i < ser.Len(); i++ {
			row := []string{
				ser.Name,
				strconv.FormatFloat(ser.X[i], 'g', -1, 64),
				strconv.FormatFloat(ser.Y[i], 'g', -1, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSet reads series.csv back, keeping the series order of the file.
func (s *Store) LoadSet(runID string) (*series.Set, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	// Series come back in the order the metadata lists them, including
	// those that had no samples and so never reached the CSV.
	set := &series.Set{Title: meta.Title, Warnings: meta.Warnings}
	index := make(map[string]int, len(meta.Series))
	for _, name := range meta.Series {
		if _, ok := index[name]; !ok {
			index[name] = len(set.Series)
			set.Add(series.Series{Name: name})
		}
	}
	for i := 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) < 3 {
			continue
		}
		x, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			continue
		}
		j, ok := index[rec[0]]
		if !ok {
			j = len(set.Series)
			index[rec[0]] = j
			set.Add(series.Series{Name: rec[0]})
		}
		set.Series[j].X = append(set.Series[j].X, x)
		set.Series[j].Y = append(set.Series[j].Y, y)
	}
	return set, nil
}
