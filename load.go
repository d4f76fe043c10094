package decision

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/tidwall/gjson"
)

// Load reads the document at path. It returns *NotFoundError when the path
// does not exist and *IOError for any other read failure.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, &IOError{Path: path, Err: err}
	}
	return data, nil
}

// Parse checks that data is a single well-formed JSON value and returns it
// for field probing. Malformed input yields *ParseError carrying the
// decoder's description and position.
func Parse(data []byte) (gjson.Result, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		var se *json.SyntaxError
		if errors.As(err, &se) {
			line, col, char := position(data, se.Offset)
			return gjson.Result{}, &ParseError{Msg: se.Error(), Offset: char, Line: line, Column: col}
		}
		return gjson.Result{}, &ParseError{Msg: err.Error()}
	}
	return gjson.ParseBytes(data), nil
}

// position converts a decoder offset (bytes consumed) into the 1-based line
// and column of the offending byte, plus its 0-based index.
func position(data []byte, offset int64) (line, col int, char int64) {
	char = offset - 1
	if char < 0 {
		char = 0
	}
	if char > int64(len(data)) {
		char = int64(len(data))
	}
	prefix := data[:char]
	line = 1 + bytes.Count(prefix, []byte{'\n'})
	col = int(char) - bytes.LastIndexByte(prefix, '\n')
	return line, col, char
}
