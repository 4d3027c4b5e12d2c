package bmf

import (
	"errors"
	"fmt"
)

// Errors which make a font unusable. Parse and friends wrap these, so clients
// may test for them with errors.Is.
var (
	ErrIO              = errors.New("BMFont: cannot read font file")
	ErrInvalidHeader   = errors.New("BMFont: invalid header")
	ErrTruncatedStream = errors.New("BMFont: truncated stream")
)

// ErrCorruptRecordCount is attached to warnings for blocks with a payload size
// not evenly divisible by the record size. It never aborts parsing.
var ErrCorruptRecordCount = errors.New("BMFont: payload size not a multiple of record size")

// errFontFormat produces user level errors for font parsing.
func errFontFormat(kind error, message string) error {
	return fmt.Errorf("%w: %s", kind, message)
}

// ErrorSeverity tells how much a decoding problem affects a font.
type ErrorSeverity int

// Severities of FontError.
const (
	SeverityCritical ErrorSeverity = iota // font cannot render text reliably
	SeverityMajor                         // some text will render incorrectly
	SeverityMinor                         // information lost which layout does not need
)

func (s ErrorSeverity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	default:
		return "UNKNOWN"
	}
}

// FontError is a decoding problem which did not stop the decoder.
type FontError struct {
	Block    BlockType
	Section  string // part of the block, e.g. "Record" or "Name"
	Issue    string
	Severity ErrorSeverity
	Offset   uint32 // file offset of the block, 0 if unknown
	Err      error  // error kind, may be nil
}

func (e FontError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("[%s] %s/%s at offset %d: %s", e.Severity, e.Block, e.Section, e.Offset, e.Issue)
	}
	return fmt.Sprintf("[%s] %s/%s: %s", e.Severity, e.Block, e.Section, e.Issue)
}

// Unwrap returns the error kind, if any.
func (e FontError) Unwrap() error {
	return e.Err
}

// FontWarning is an irregularity of a font file which does not keep the font
// from being used, e.g. a trailing partial record.
type FontWarning struct {
	Block  BlockType
	Issue  string
	Offset uint32 // file offset of the block, 0 if unknown
	Err    error  // error kind, may be nil
}

func (w FontWarning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("[WARNING] %s at offset %d: %s", w.Block, w.Offset, w.Issue)
	}
	return fmt.Sprintf("[WARNING] %s: %s", w.Block, w.Issue)
}

// Is reports whether the warning has been caused by an error of kind target.
func (w FontWarning) Is(target error) bool {
	return w.Err != nil && errors.Is(w.Err, target)
}

// errorCollector gathers problems while decoding a font.
type errorCollector struct {
	errors   []FontError
	warnings []FontWarning
}

func (ec *errorCollector) addError(block BlockType, section string, issue string, severity ErrorSeverity, offset uint32, kind error) {
	ec.errors = append(ec.errors, FontError{
		Block:    block,
		Section:  section,
		Issue:    issue,
		Severity: severity,
		Offset:   offset,
		Err:      kind,
	})
}

func (ec *errorCollector) addWarning(block BlockType, issue string, offset uint32, kind error) {
	tracer().Infof("%s: %s", block, issue)
	ec.warnings = append(ec.warnings, FontWarning{
		Block:  block,
		Issue:  issue,
		Offset: offset,
		Err:    kind,
	})
}

func (ec *errorCollector) hasErrors() bool {
	return len(ec.errors) > 0
}

func (ec *errorCollector) hasWarnings() bool {
	return len(ec.warnings) > 0
}

func (ec *errorCollector) criticalErrors() []FontError {
	var critical []FontError
	for _, err := range ec.errors {
		if err.Severity == SeverityCritical {
			critical = append(critical, err)
		}
	}
	return critical
}
