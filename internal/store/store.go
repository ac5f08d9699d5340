// Package store persists sampled potential curves under a data directory,
// one subdirectory per scan with JSON metadata and the curve as CSV.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/potlab/internal/scan"
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

type ScanMetadata struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Mode       string    `json:"mode"`
	Rmin       float64   `json:"rmin"`
	Rmax       float64   `json:"rmax"`
	Points     int       `json:"points"`
	Cutoff     float64   `json:"cutoff"`
	Timestamp  time.Time `json:"timestamp"`
}

// Save writes a scan under a fresh id derived from the expression name and
// the current time, and returns the id.
func (s *Store) Save(meta ScanMetadata, series *scan.Series) (string, error) {
	name := strings.NewReplacer(" ", "", "*", "x", "+", "-").Replace(meta.Expression)
	scanID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	scanDir := filepath.Join(s.baseDir, scanID)

	if err := os.MkdirAll(scanDir, 0755); err != nil {
		return "", err
	}

	meta.ID = scanID
	meta.Timestamp = time.Now()
	meta.Points = len(series.R)

	metaFile, err := os.Create(filepath.Join(scanDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(scanDir, "curve.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"r", "v"}); err != nil {
		return "", err
	}
	for i := range series.R {
		row := []string{
			strconv.FormatFloat(series.R[i], 'g', -1, 64),
			strconv.FormatFloat(series.V[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return scanID, nil
}

// List returns metadata for every saved scan, most recent last.
func (s *Store) List() ([]ScanMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var metas []ScanMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.readMeta(e.Name())
		if err != nil {
			continue
		}
		metas = append(metas, meta)
	}
	sort.Slice(metas, func(i, j int) bool {
		return metas[i].Timestamp.Before(metas[j].Timestamp)
	})
	return metas, nil
}

// Load reads a saved curve back.
func (s *Store) Load(id string) (ScanMetadata, *scan.Series, error) {
	meta, err := s.readMeta(id)
	if err != nil {
		return ScanMetadata{}, nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, id, "curve.csv"))
	if err != nil {
		return ScanMetadata{}, nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return ScanMetadata{}, nil, err
	}

	series := &scan.Series{}
	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}
		r, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return ScanMetadata{}, nil, err
		}
		v, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return ScanMetadata{}, nil, err
		}
		series.R = append(series.R, r)
		series.V = append(series.V, v)
	}
	return meta, series, nil
}

func (s *Store) readMeta(id string) (ScanMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return ScanMetadata{}, err
	}
	var meta ScanMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return ScanMetadata{}, err
	}
	return meta, nil
}
