package source

import (
	"context"
	"encoding/csv"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/cricket-insights/internal/domain/rawdata"
	"github.com/riskibarqy/cricket-insights/internal/platform/logging"
)

// ErrSourceMissing marks a configured source file that does not exist.
var ErrSourceMissing = crerr.New("source file missing")

const defaultLoadWorkers = 3

// CSVLoader reads the manifest's CSV files concurrently and returns them in
// manifest order.
type CSVLoader struct {
	root     string
	manifest Manifest
	workers  int
	logger   *logging.Logger
}

func NewCSVLoader(root string, manifest Manifest, workers int, logger *logging.Logger) *CSVLoader {
	if workers <= 0 {
		workers = defaultLoadWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &CSVLoader{
		root:     root,
		manifest: manifest,
		workers:  workers,
		logger:   logger,
	}
}

type fileResult struct {
	rows    []rawdata.Row
	missing error
}

func (l *CSVLoader) Load(ctx context.Context) (rawdata.LoadResult, error) {
	manifest, err := l.manifest.Normalize()
	if err != nil {
		return rawdata.LoadResult{}, err
	}

	results := make([]fileResult, len(manifest.Sources))
	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithMaxGoroutines(l.workers)
	for i, entry := range manifest.Sources {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows, err := readCSV(l.resolve(entry.Path))
			if crerr.Is(err, ErrSourceMissing) {
				results[i] = fileResult{missing: err}
				return nil
			}
			if err != nil {
				return crerr.Wrapf(err, "load %s source %q", entry.Domain, entry.Label)
			}
			results[i] = fileResult{rows: rows}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return rawdata.LoadResult{}, err
	}

	out := rawdata.LoadResult{}
	for i, entry := range manifest.Sources {
		path := l.resolve(entry.Path)
		if results[i].missing != nil {
			l.logger.WarnContext(ctx, "source file missing, skipping",
				"domain", entry.Domain,
				"label", entry.Label,
				"path", path,
			)
			out.Skipped = append(out.Skipped, rawdata.SkippedSource{
				Domain: entry.Domain,
				Label:  entry.Label,
				Path:   path,
				Reason: results[i].missing.Error(),
			})
			continue
		}
		out.Batches = append(out.Batches, rawdata.Batch{
			Domain: entry.Domain,
			Label:  entry.Label,
			Path:   path,
			Rows:   results[i].rows,
		})
	}
	return out, nil
}

func (l *CSVLoader) resolve(path string) string {
	if filepath.IsAbs(path) || l.root == "" {
		return path
	}
	return filepath.Join(l.root, path)
}

// readCSV maps every data row to its header. Header cells are trimmed and the
// UTF-8 BOM is dropped; blank lines are skipped.
func readCSV(path string) ([]rawdata.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		if crerr.Is(err, fs.ErrNotExist) {
			return nil, crerr.Mark(crerr.Wrapf(err, "open %s", path), ErrSourceMissing)
		}
		return nil, crerr.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, crerr.Wrapf(err, "read header of %s", path)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	var rows []rawdata.Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, crerr.Wrapf(err, "read %s", path)
		}
		if isBlank(record) {
			continue
		}

		row := make(rawdata.Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
