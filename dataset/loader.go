package dataset

import (
	"encoding/csv"
	stderrors "errors"
	"io"
	"os"

	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// Load reads a delimited file with a header row into a Table.
//
// Every record must have the same number of fields as the header; a ragged
// row is a ParseError identifying the offending line. An unreadable path is
// a FileError.
func Load(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewFileError("dataset.Load", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewParseError(path, 0, "file has no header row")
	}
	if err != nil {
		return nil, wrapCSVError(path, err)
	}

	table := &Table{
		Path:    path,
		Columns: header,
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapCSVError(path, err)
		}
		table.Rows = append(table.Rows, record)
	}

	return table, nil
}

// wrapCSVError converts encoding/csv errors into the pipeline's ParseError,
// preserving the line number when the reader reports one.
func wrapCSVError(path string, err error) error {
	var csvErr *csv.ParseError
	if stderrors.As(err, &csvErr) {
		return errors.NewParseError(path, csvErr.Line, csvErr.Err.Error())
	}
	return errors.NewParseError(path, 0, err.Error())
}
