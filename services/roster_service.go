// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kindworks-dev/kindworks/dtos"
	"github.com/xuri/excelize/v2"
)

const RosterFileExtension = ".xlsx"

// RosterHeader is the exact expected header row, left to right.
var RosterHeader = []string{"FirstName", "LastName", "Email", "IsMinor"}

var (
	ErrNoWorksheets  = errors.New("no worksheets found in the Excel file")
	ErrInvalidHeader = errors.New("invalid header spellings or invalid header sequence")
)

type rosterService struct{}

func NewRosterService() *rosterService {
	return &rosterService{}
}

// Parse reads the first worksheet, validates the header row and extracts the
// data rows starting at worksheet line 2. Cell values are returned as-is;
// only the minor flag is interpreted (case-insensitive "true").
func (s *rosterService) Parse(r io.Reader) ([]dtos.RosterRow, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoWorksheets
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("could not read worksheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrInvalidHeader
	}

	if !headerValid(rows[0]) {
		return nil, ErrInvalidHeader
	}

	dataRows := make([]dtos.RosterRow, 0, len(rows)-1)
	for i, row := range rows[1:] {
		dataRows = append(dataRows, dtos.RosterRow{
			Line:      i + 2,
			FirstName: cell(row, 0),
			LastName:  cell(row, 1),
			Email:     cell(row, 2),
			IsMinor:   strings.EqualFold(strings.TrimSpace(cell(row, 3)), "true"),
		})
	}

	return dataRows, nil
}

func headerValid(header []string) bool {
	if len(header) < len(RosterHeader) {
		return false
	}
	for i, expected := range RosterHeader {
		if header[i] != expected {
			return false
		}
	}
	return true
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
