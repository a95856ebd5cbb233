package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/san-kum/zetalab/internal/series"
)

type SeriesData struct {
	Name string    `json:"name" msgpack:"name"`
	X    []float64 `json:"x" msgpack:"x"`
	Y    []float64 `json:"y" msgpack:"y"`
}

type ExportData struct {
	Run    RunMetadata  `json:"run" msgpack:"run"`
	Series []SeriesData `json:"series" msgpack:"series"`
}

// NewExport bundles a run for export. With finiteOnly, NaN and Inf samples
// are dropped, which JSON cannot represent.
func NewExport(meta RunMetadata, set *series.Set, finiteOnly bool) ExportData {
	data := ExportData{Run: meta, Series: make([]SeriesData, 0, len(set.Series))}
	for _, ser := range set.Series {
		if finiteOnly {
			ser = ser.Finite()
		}
		n := ser.Len()
		data.Series = append(data.Series, SeriesData{
			Name: ser.Name,
			X:    append([]float64{}, ser.X[:n]...),
			Y:    append([]float64{}, ser.Y[:n]...),
		})
	}
	return data
}

func WriteJSON(w io.Writer, meta RunMetadata, set *series.Set) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExport(meta, set, true))
}

// WriteMsgpack writes the run as gzip-compressed MessagePack. Non-finite
// samples are kept.
func WriteMsgpack(w io.Writer, meta RunMetadata, set *series.Set) error {
	data, err := msgpack.Marshal(NewExport(meta, set, false))
	if err != nil {
		return err
	}
	gzw := gzip.NewWriter(w)
	if _, err := gzw.Write(data); err != nil {
		gzw.Close()
		return err
	}
	return gzw.Close()
}

func ReadMsgpack(r io.Reader) (*ExportData, error) {
	gzr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer gzr.Close()

	raw, err := io.ReadAll(gzr)
	if err != nil {
		return nil, err
	}
	var data ExportData
	if err := msgpack.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func ExportJSON(path string, meta RunMetadata, set *series.Set) error {
	return exportFile(path, func(w io.Writer) error { return WriteJSON(w, meta, set) })
}

func ExportMsgpack(path string, meta RunMetadata, set *series.Set) error {
	return exportFile(path, func(w io.Writer) error { return WriteMsgpack(w, meta, set) })
}

func ExportCSV(path string, set *series.Set) error {
	return exportFile(path, func(w io.Writer) error { return WriteCSV(w, set) })
}

func exportFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Set converts exported data back into a series set.
func (d *ExportData) Set() *series.Set {
	set := &series.Set{Title: d.Run.Title}
	for _, s := range d.Series {
		set.Add(series.New(s.Name, s.X, s.Y))
	}
	return set
}
