// Package errors provides the error taxonomy and warning system for the
// amesgo pipeline. Errors carry stack traces via cockroachdb/errors and can
// attach structured context to zerolog events.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("amesgo-warning: %v\n", w)
	}
)

// SetWarningHandler replaces the handler invoked for non-fatal warnings,
// such as unseen categories encountered during encoding.
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// Warn raises a warning through the configured handler.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	if warningHandler != nil {
		warningHandler(w)
	}
}

// UnseenCategoryWarning is raised when a categorical value appears in data
// being transformed but was never observed during fitting. The value is
// dropped from the encoded output.
type UnseenCategoryWarning struct {
	Column string
	Value  string
	Rows   int
}

func (w *UnseenCategoryWarning) Error() string {
	return fmt.Sprintf("category %q in column %q was not seen during fit; dropped from %d row(s)",
		w.Value, w.Column, w.Rows)
}

// MarshalZerologObject adds structured warning context to a zerolog event.
func (w *UnseenCategoryWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("column", w.Column).
		Str("value", w.Value).
		Int("rows", w.Rows).
		Str("type", "UnseenCategoryWarning")
}

// NewUnseenCategoryWarning creates a new UnseenCategoryWarning.
func NewUnseenCategoryWarning(column, value string, rows int) *UnseenCategoryWarning {
	return &UnseenCategoryWarning{Column: column, Value: value, Rows: rows}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// FileError indicates that an input or output file could not be accessed.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("amesgo: %s: cannot access %q: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds structured error context to a zerolog event.
func (e *FileError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("path", e.Path).
		AnErr("cause", e.Err).
		Str("type", "FileError")
}

// NewFileError creates a new FileError with a stack trace attached.
func NewFileError(op, path string, err error) error {
	fileErr := &FileError{Op: op, Path: path, Err: err}
	return errors.WithStack(fileErr)
}

// ParseError indicates a malformed row or header in a delimited input file.
type ParseError struct {
	Path string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("amesgo: parse error in %q at line %d: %s", e.Path, e.Line, e.Msg)
	}
	return fmt.Sprintf("amesgo: parse error in %q: %s", e.Path, e.Msg)
}

// MarshalZerologObject adds structured error context to a zerolog event.
func (e *ParseError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("path", e.Path).
		Int("line", e.Line).
		Str("message", e.Msg).
		Str("type", "ParseError")
}

// NewParseError creates a new ParseError with a stack trace attached.
func NewParseError(path string, line int, msg string) error {
	parseErr := &ParseError{Path: path, Line: line, Msg: msg}
	return errors.WithStack(parseErr)
}

// ImputationError indicates that a column cannot be imputed, typically
// because it holds no observed value in the training data.
type ImputationError struct {
	Column string
	Reason string
}

func (e *ImputationError) Error() string {
	return fmt.Sprintf("amesgo: cannot impute column %q: %s", e.Column, e.Reason)
}

// MarshalZerologObject adds structured error context to a zerolog event.
func (e *ImputationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("column", e.Column).
		Str("reason", e.Reason).
		Str("type", "ImputationError")
}

// NewImputationError creates a new ImputationError with a stack trace attached.
func NewImputationError(column, reason string) error {
	impErr := &ImputationError{Column: column, Reason: reason}
	return errors.WithStack(impErr)
}

// NotFittedError indicates that Predict or Transform was called on an
// estimator before Fit.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("amesgo: %s: this estimator is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds structured error context to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a new NotFittedError with a stack trace attached.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError indicates that an input matrix does not match the shape
// established during fitting.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("amesgo: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds structured error context to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("type", "DimensionError")
}

// NewDimensionError creates a new DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError indicates that a parameter failed validation.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("amesgo: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// NewValidationError creates a new ValidationError with a stack trace attached.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError indicates that an argument value is invalid for an operation.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("amesgo: %s: %s", e.Op, e.Message)
}

// NewValueError creates a new ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ModelError is a general modeling failure, including numeric failures such
// as a singular design matrix during the least-squares solve.
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("amesgo: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("amesgo: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError creates a new ModelError with a stack trace attached.
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates an error with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error values
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an operation receives no data.
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix is returned when the least-squares factorization
	// fails or the design matrix has no usable rank.
	ErrSingularMatrix = New("singular matrix")
)
