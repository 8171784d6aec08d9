package xlchart

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNotSpreadsheet indicates the input file does not have an Excel extension.
var ErrNotSpreadsheet = errors.New("not an Excel file")

// ErrInvalidFormat indicates the input file is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrEmptySelection indicates there is nothing to plot: no range was given
// and the sheet has neither a print area nor a detectable data block.
var ErrEmptySelection = errors.New("no cells selected")

// ReadError represents a failure while reading a workbook.
type ReadError struct {
	Path string
	Op   string // "open", "sheet", "cells"
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s (%s): %v", e.Path, e.Op, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError creates a new ReadError.
func NewReadError(path, op string, err error) *ReadError {
	return &ReadError{
		Path: path,
		Op:   op,
		Err:  err,
	}
}
