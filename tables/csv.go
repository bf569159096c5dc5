package tables

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/ulikunitz/xz"
	"go-ml.dev/pkg/iokit"
	"go-ml.dev/pkg/zorros"
)

/*
ReadCSV reads a table from CSV data. The first record is the header
naming the columns; every following record holds one float64 per column.
*/
func ReadCSV(r io.Reader) (*Table, error) {
	rd := csv.NewReader(r)
	header, err := rd.Read()
	if err != nil {
		return nil, zorros.Wrapf(err, "failed to read csv header: %v", err)
	}
	columns := make([]*Column, len(header))
	for j := range columns {
		columns[j] = &Column{}
	}
	for line := 2; ; line++ {
		rec, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, zorros.Wrapf(err, "failed to read csv record: %v", err)
		}
		for j, s := range rec {
			x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, zorros.Errorf("non-numeric value `%v` in column %v at line %v", s, header[j], line)
			}
			columns[j].data = append(columns[j].data, x)
		}
	}
	return New(header, columns), nil
}

// ReadXZ reads a table from xz-compressed CSV data
func ReadXZ(r io.Reader) (*Table, error) {
	zr, err := xz.NewReader(r)
	if err != nil {
		return nil, zorros.Wrapf(err, "failed to open xz stream: %v", err)
	}
	return ReadCSV(zr)
}

/*
ReadFile reads a table from a CSV file; files with the .xz suffix are
decompressed transparently.
*/
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	defer f.Close()
	var t *Table
	if strings.HasSuffix(path, ".xz") {
		t, err = ReadXZ(f)
	} else {
		t, err = ReadCSV(f)
	}
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("rows", t.Len()).Int("columns", t.Width()).Msg("table loaded")
	return t, nil
}

// WriteCSV writes the table as CSV with a header record
func (t *Table) WriteCSV(w io.Writer) error {
	wr := csv.NewWriter(w)
	if err := wr.Write(t.names); err != nil {
		return zorros.Trace(err)
	}
	rec := make([]string, t.Width())
	for i := 0; i < t.Len(); i++ {
		for j, c := range t.columns {
			rec[j] = strconv.FormatFloat(c.Float(i), 'g', -1, 64)
		}
		if err := wr.Write(rec); err != nil {
			return zorros.Trace(err)
		}
	}
	wr.Flush()
	if err := wr.Error(); err != nil {
		return zorros.Trace(err)
	}
	return nil
}

// WriteXZ writes the table as xz-compressed CSV
func (t *Table) WriteXZ(w io.Writer) error {
	zw, err := xz.NewWriter(w)
	if err != nil {
		return zorros.Trace(err)
	}
	if err = t.WriteCSV(zw); err != nil {
		return err
	}
	return zorros.Trace(zw.Close())
}

// WriteFile writes the table as CSV into an output sink
func (t *Table) WriteFile(out iokit.Output) (err error) {
	wh, err := out.Create()
	if err != nil {
		return zorros.Trace(err)
	}
	defer wh.End()
	if err = t.WriteCSV(wh); err != nil {
		return
	}
	if err = wh.Commit(); err != nil {
		return zorros.Trace(err)
	}
	return
}
