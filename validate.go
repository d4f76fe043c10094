package decision

import (
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// Recorder observes every finished validation, e.g. to export metrics.
// loadErr is non-nil when the document could not be read or parsed.
type Recorder interface {
	Record(r *Report, loadErr error)
}

// Validator checks decision graph documents. It holds no per-document state
// and may be shared between goroutines.
type Validator struct {
	log      zerolog.Logger
	recorder Recorder
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger that receives progress narration: counts,
// confirmations and advisories that are not diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(v *Validator) { v.log = l }
}

// WithRecorder registers an observer for finished validations.
func WithRecorder(r Recorder) Option {
	return func(v *Validator) { v.recorder = r }
}

// New creates a Validator. Narration is discarded unless WithLogger is given.
func New(opts ...Option) *Validator {
	v := &Validator{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks the document at path and returns the verdict together with
// every diagnostic rendered with its marker.
func Validate(path string) (bool, []string) {
	r := New().ValidateFile(path)
	return r.Valid, r.Messages()
}

// ValidateFile loads and checks the document at path. Load and parse failures
// produce a report with a single diagnostic.
func (v *Validator) ValidateFile(path string) *Report {
	data, err := Load(path)
	if err != nil {
		return v.loadFailure(path, err)
	}
	return v.ValidateBytes(path, data)
}

// ValidateBytes checks an in-memory document. source names it in the report.
func (v *Validator) ValidateBytes(source string, data []byte) *Report {
	doc, err := Parse(data)
	if err != nil {
		return v.loadFailure(source, err)
	}

	var diags diagnostics
	r := &Report{Source: source, CreatedAt: time.Now().UTC()}

	if !doc.IsObject() {
		diags.errorf("Document root must be a JSON object (got %s)", kindOf(doc))
	} else {
		v.checkContentType(doc, &diags)
		index := v.checkNodes(doc, &diags)
		edges := v.checkEdges(doc, index, &diags)
		if index != nil {
			r.NodeCount = len(index.all)
			v.narrateCycle(index, edges)
		}
		r.EdgeCount = len(edges)
	}

	r.Diagnostics = append([]Diagnostic{}, diags...)
	r.Valid = len(r.Diagnostics) == 0
	v.record(r, nil)
	return r
}

func (v *Validator) loadFailure(source string, err error) *Report {
	r := &Report{
		Source:      source,
		Diagnostics: []Diagnostic{{Severity: SeverityError, Message: err.Error()}},
		CreatedAt:   time.Now().UTC(),
	}
	v.record(r, err)
	return r
}

func (v *Validator) record(r *Report, loadErr error) {
	if v.recorder != nil {
		v.recorder.Record(r, loadErr)
	}
}

func (v *Validator) checkContentType(doc gjson.Result, diags *diagnostics) {
	ct := member(doc, "contentType")
	switch {
	case !ct.Exists():
		diags.errorf("Missing required field: 'contentType'")
	case ct.String() != ContentType:
		diags.errorf("Invalid contentType: '%s' (should be '%s')", ct.String(), ContentType)
	default:
		v.log.Info().Msg("Valid contentType")
	}
}

// member looks up key in obj. Non-object values have no members. When a key
// repeats, the last occurrence wins.
func member(obj gjson.Result, key string) gjson.Result {
	var found gjson.Result
	if !obj.IsObject() {
		return found
	}
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			found = v
		}
		return true
	})
	return found
}

// displayID names an element in messages: its id when present, otherwise its
// position in the enclosing array.
func displayID(elem gjson.Result, index int) string {
	if id := member(elem, "id"); id.Exists() {
		return id.String()
	}
	return strconv.Itoa(index)
}

func kindOf(r gjson.Result) string {
	switch {
	case r.IsArray():
		return "array"
	case r.IsObject():
		return "object"
	case r.IsBool():
		return "boolean"
	}
	switch r.Type {
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	}
	return "null"
}
