package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidReference indicates a cell or range reference that cannot be parsed.
var ErrInvalidReference = errors.New("invalid range reference")

// Reference is a parsed range with the sheet it names, if any.
type Reference struct {
	// Sheet is the unquoted sheet prefix. Empty when the reference has none.
	Sheet string
	// Range is the referenced block of cells.
	Range models.CellRange
}

// ParseSelection parses a selection such as "A1:C3,E1:E4" into references.
// References may be separated by commas, semicolons or whitespace, carry a
// Sheet! or 'Sheet name'! prefix and $ anchors, name a single cell, or list
// their corners in any order.
func ParseSelection(ref string) ([]Reference, error) {
	parts, err := splitSelection(ref)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty selection", ErrInvalidReference)
	}

	var refs []Reference
	for _, part := range parts {
		r, err := ParseReference(part)
		if err != nil {
			return nil, err
		}
		refs = append(refs, r)
	}
	return refs, nil
}

// splitSelection splits on separators outside single-quoted sheet names.
func splitSelection(ref string) ([]string, error) {
	var parts []string
	var cur strings.Builder
	quoted := false
	for _, r := range ref {
		switch {
		case r == '\'':
			quoted = !quoted
			cur.WriteRune(r)
		case !quoted && (r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			if cur.Len() > 0 {
				parts = append(parts, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if quoted {
		return nil, fmt.Errorf("%w: unterminated sheet name in %q", ErrInvalidReference, ref)
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts, nil
}

// ParseRange parses a single range reference like $A$1:$D$10 or 'Sheet 1'!B2,
// discarding any sheet prefix.
func ParseRange(ref string) (models.CellRange, error) {
	r, err := ParseReference(ref)
	return r.Range, err
}

// ParseReference parses a single range reference and keeps its sheet prefix.
func ParseReference(ref string) (Reference, error) {
	var sheet string
	s := ref
	if idx := strings.LastIndex(s, "!"); idx >= 0 {
		var err error
		if sheet, err = unquoteSheet(s[:idx]); err != nil {
			return Reference{}, fmt.Errorf("%w: %q", ErrInvalidReference, ref)
		}
		s = s[idx+1:]
	}
	s = strings.ReplaceAll(s, "$", "")

	corners := strings.Split(s, ":")
	if len(corners) > 2 || corners[0] == "" {
		return Reference{}, fmt.Errorf("%w: %q", ErrInvalidReference, ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(corners[0])
	if err != nil {
		return Reference{}, fmt.Errorf("%w: %q: %v", ErrInvalidReference, ref, err)
	}
	endCol, endRow := startCol, startRow
	if len(corners) == 2 {
		endCol, endRow, err = excelize.CellNameToCoordinates(corners[1])
		if err != nil {
			return Reference{}, fmt.Errorf("%w: %q: %v", ErrInvalidReference, ref, err)
		}
	}

	return Reference{
		Sheet: sheet,
		Range: models.CellRange{
			FirstRow:    min(startRow, endRow) - 1,
			LastRow:     max(startRow, endRow) - 1,
			FirstColumn: min(startCol, endCol) - 1,
			LastColumn:  max(startCol, endCol) - 1,
		},
	}, nil
}

// unquoteSheet strips the quotes from 'Sheet name' and collapses '' to '.
func unquoteSheet(s string) (string, error) {
	if s == "" {
		return "", errors.New("empty sheet name")
	}
	if !strings.HasPrefix(s, "'") {
		if strings.Contains(s, "'") {
			return "", errors.New("stray quote in sheet name")
		}
		return s, nil
	}
	if len(s) < 3 || !strings.HasSuffix(s, "'") {
		return "", errors.New("unterminated sheet name")
	}
	inner := s[1 : len(s)-1]
	if strings.Contains(strings.ReplaceAll(inner, "''", ""), "'") {
		return "", errors.New("stray quote in sheet name")
	}
	return strings.ReplaceAll(inner, "''", "'"), nil
}

// PrintAreaSelections returns the print areas defined for a sheet as ranges.
func PrintAreaSelections(f *excelize.File, sheetName string) []models.CellRange {
	var result []models.CellRange

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		if dn.Scope != "" && dn.Scope != "Workbook" && dn.Scope != sheetName {
			continue
		}

		refs, err := ParseSelection(dn.RefersTo)
		if err != nil {
			continue
		}
		for _, r := range refs {
			if r.Sheet == sheetName {
				result = append(result, r.Range)
			}
		}
	}

	return result
}
