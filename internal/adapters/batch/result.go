package batch

import (
	"encoding/json"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// Result is the outcome of parsing one phrase.
type Result struct {
	// Line is the 1-based position of the phrase in the input.
	Line  int
	Text  string
	Value float64
	OK    bool
}

// FormatValue renders the value in its shortest exact form, or "-" when
// the phrase did not parse.
func (r Result) FormatValue() string {
	if !r.OK {
		return "-"
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

// Encoder appends one encoded result to buf.
type Encoder func(buf *bytebufferpool.ByteBuffer, r Result) error

// PlainEncoder writes the formatted value followed by a newline.
func PlainEncoder(buf *bytebufferpool.ByteBuffer, r Result) error {
	buf.WriteString(r.FormatValue())
	return buf.WriteByte('\n')
}

type jsonResult struct {
	Line  int      `json:"line"`
	Text  string   `json:"text"`
	Value *float64 `json:"value"`
	OK    bool     `json:"ok"`
}

// JSONEncoder writes one JSON object per line.
func JSONEncoder(buf *bytebufferpool.ByteBuffer, r Result) error {
	out := jsonResult{Line: r.Line, Text: r.Text, OK: r.OK}
	if r.OK {
		v := r.Value
		out.Value = &v
	}
	data, err := json.Marshal(out)
	if err != nil {
		return err
	}
	buf.Write(data)
	return buf.WriteByte('\n')
}
