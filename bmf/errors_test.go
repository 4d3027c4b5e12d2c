package bmf

import (
	"errors"
	"testing"
)

// TestErrorSeverity verifies the ErrorSeverity String() method.
func TestErrorSeverity(t *testing.T) {
	tests := []struct {
		severity ErrorSeverity
		expected string
	}{
		{SeverityCritical, "CRITICAL"},
		{SeverityMajor, "MAJOR"},
		{SeverityMinor, "MINOR"},
		{ErrorSeverity(999), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.severity.String()
		if result != tt.expected {
			t.Errorf("ErrorSeverity(%d).String() = %q; want %q", tt.severity, result, tt.expected)
		}
	}
}

// TestFontError verifies FontError formatting and unwrapping.
func TestFontError(t *testing.T) {
	tests := []struct {
		name     string
		err      FontError
		expected string
	}{
		{
			name: "Error with offset",
			err: FontError{
				Block:    BlockCommon,
				Section:  "Record",
				Issue:    "block too short: 3 bytes",
				Severity: SeverityMajor,
				Offset:   28,
			},
			expected: "[MAJOR] common/Record at offset 28: block too short: 3 bytes",
		},
		{
			name: "Error without offset",
			err: FontError{
				Block:    BlockInfo,
				Section:  "Name",
				Issue:    "missing terminator",
				Severity: SeverityMinor,
			},
			expected: "[MINOR] info/Name: missing terminator",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("FontError.Error() = %q; want %q", result, tt.expected)
			}
		})
	}
	err := error(FontError{Block: BlockInfo, Err: ErrTruncatedStream})
	if !errors.Is(err, ErrTruncatedStream) {
		t.Errorf("expected FontError to unwrap to its kind")
	}
}

// TestFontWarning verifies FontWarning formatting.
func TestFontWarning(t *testing.T) {
	w := FontWarning{Block: BlockChars, Issue: "dropping 7 bytes", Offset: 64, Err: ErrCorruptRecordCount}
	if s := w.String(); s != "[WARNING] chars at offset 64: dropping 7 bytes" {
		t.Errorf("unexpected warning string %q", s)
	}
	if !w.Is(ErrCorruptRecordCount) {
		t.Errorf("expected warning to be of kind ErrCorruptRecordCount")
	}
	w = FontWarning{Block: BlockPages, Issue: "page count"}
	if s := w.String(); s != "[WARNING] pages: page count" {
		t.Errorf("unexpected warning string %q", s)
	}
	if w.Is(ErrCorruptRecordCount) {
		t.Errorf("expected warning without kind not to match")
	}
}

// TestErrorCollector verifies accumulation of errors and warnings.
func TestErrorCollector(t *testing.T) {
	ec := &errorCollector{}
	if ec.hasErrors() || ec.hasWarnings() {
		t.Fatalf("expected empty collector")
	}
	ec.addError(BlockInfo, "Record", "short", SeverityMinor, 0, nil)
	ec.addError(BlockCommon, "Record", "short", SeverityCritical, 0, nil)
	ec.addWarning(BlockChars, "remainder", 0, ErrCorruptRecordCount)
	if !ec.hasErrors() || !ec.hasWarnings() {
		t.Errorf("expected errors and warnings to be recorded")
	}
	if n := len(ec.criticalErrors()); n != 1 {
		t.Errorf("expected 1 critical error, have %d", n)
	}
}
