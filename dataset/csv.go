package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/YuminosukeSato/id3/pkg/errors"
)

// ReadCSV takes an io.Reader for a CSV stream and returns the dataset it
// holds. The first row names the attributes; every following row is one
// example and must have as many fields as the header.
func ReadCSV(reader io.Reader) (Dataset, error) {
	r := csv.NewReader(reader)
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.Wrap(errors.ErrEmptyData, "reading CSV header")
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading CSV header")
	}
	for i, name := range header {
		header[i] = strings.TrimSpace(name)
		if header[i] == "" {
			return nil, errors.NewValidationError("header", "attribute names must not be empty", i)
		}
	}
	var d Dataset
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading CSV line %d", l)
		}
		e := make(Example, len(header))
		for i, v := range row {
			e[header[i]] = strings.TrimSpace(v)
		}
		d = append(d, e)
	}
	return d, nil
}

// ReadCSVFile opens the file at path and reads it with ReadCSV. An empty
// path reads from standard input.
func ReadCSVFile(path string) (Dataset, error) {
	if path == "" {
		return ReadCSV(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	d, err := ReadCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return d, nil
}
