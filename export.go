package pointsample

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/voidshard/pointsample/internal/encoding"
)

// csvRow is a single point as written to / read from CSV
type csvRow struct {
	Index int     `csv:"index"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
}

// JSON returns the sample as a json list of {"X": .., "Y": ..} objects.
func (s Sample) JSON() ([]byte, error) {
	return json.Marshal(s)
}

// SaveJSON writes a json file to the given path.
func (s Sample) SaveJSON(fpath string) error {
	data, err := s.JSON()
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, data, 0644)
}

// WriteCSV writes the sample as CSV with a header row "index,x,y".
func (s Sample) WriteCSV(w io.Writer) error {
	rows := make([]*csvRow, len(s))
	for i, p := range s {
		rows[i] = &csvRow{Index: i, X: p.X, Y: p.Y}
	}
	return gocsv.Marshal(rows, w)
}

// SaveCSV writes a CSV file to the given path.
func (s Sample) SaveCSV(fpath string) error {
	buff := new(bytes.Buffer)
	if err := s.WriteCSV(buff); err != nil {
		return err
	}
	return os.WriteFile(fpath, buff.Bytes(), 0644)
}

// ReadCSV reads a sample written by WriteCSV.
// Points are returned in file order, the index column is informational.
func ReadCSV(r io.Reader) (Sample, error) {
	rows := []*csvRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, errors.Wrap(err, "reading sample csv")
	}
	s := make(Sample, len(rows))
	for i, row := range rows {
		s[i] = Point{X: row.X, Y: row.Y}
	}
	return s, nil
}

// MarshalBinary encodes the sample as a big-endian uint32 point count
// followed by an (x, y) float64 pair per point.
func (s Sample) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, 4+16*len(s))
	buf = append(buf, encoding.ToBytes32(uint32(len(s)))...)
	for _, p := range s {
		buf = encoding.AppendPair(buf, p.X, p.Y)
	}
	return buf, nil
}

// UnmarshalBinary decodes data written by MarshalBinary.
func (s *Sample) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return errors.Errorf("sample data too short: %d bytes", len(data))
	}
	count := int(encoding.FromBytes32(data))
	data = data[4:]
	if len(data) != 16*count {
		return errors.Errorf("sample data holds %d bytes, expected %d for %d points", len(data), 16*count, count)
	}

	out := make(Sample, count)
	for i := range out {
		x, y := encoding.Pair(data[i*16:])
		out[i] = Point{X: x, Y: y}
	}
	*s = out
	return nil
}
