package services

import (
	"context"
	"fmt"
	"strings"

	apperrors "qrattendance/errors"

	"google.golang.org/api/sheets/v4"
)

// SheetsStore reads and writes one sheet of a Google Sheets workbook.
// Every call goes straight to the API; nothing is cached or retried.
type SheetsStore struct {
	api           *sheets.Service
	spreadsheetID string
	sheetName     string
}

type SheetsStoreOptions struct {
	Service       *sheets.Service
	SpreadsheetID string
	SheetName     string
}

func NewSheetsStore(opts SheetsStoreOptions) *SheetsStore {
	return &SheetsStore{
		api:           opts.Service,
		spreadsheetID: opts.SpreadsheetID,
		sheetName:     opts.SheetName,
	}
}

// a1 prefixes ref with the sheet title, quoting titles that are not plain words.
func (s *SheetsStore) a1(ref string) string {
	title := s.sheetName
	if strings.ContainsFunc(title, func(r rune) bool {
		return !(r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
	}) {
		title = "'" + strings.ReplaceAll(title, "'", "''") + "'"
	}
	return title + "!" + ref
}

func (s *SheetsStore) Headers(ctx context.Context) ([]string, error) {
	resp, err := s.api.Spreadsheets.Values.Get(s.spreadsheetID, s.a1("1:1")).Context(ctx).Do()
	if err != nil {
		return nil, apperrors.StoreError("read header row", err)
	}
	return firstLine(resp.Values), nil
}

func (s *SheetsStore) NameColumn(ctx context.Context) ([]string, error) {
	resp, err := s.api.Spreadsheets.Values.Get(s.spreadsheetID, s.a1("A:A")).
		MajorDimension("COLUMNS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, apperrors.StoreError("read name column", err)
	}
	return firstLine(resp.Values), nil
}

func (s *SheetsStore) AppendName(ctx context.Context, name string) error {
	body := &sheets.ValueRange{Values: [][]interface{}{{name}}}
	_, err := s.api.Spreadsheets.Values.Append(s.spreadsheetID, s.a1("A:A"), body).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return apperrors.StoreError("append name", err)
	}
	return nil
}

func (s *SheetsStore) EnsureDateColumn(ctx context.Context, date string) (int, error) {
	headers, err := s.Headers(ctx)
	if err != nil {
		return 0, err
	}
	if idx := indexOf(headers, date); idx > 0 {
		return idx, nil
	}

	sheetID, err := s.sheetID(ctx)
	if err != nil {
		return 0, err
	}

	insertAt := int64(len(headers))
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			InsertDimension: &sheets.InsertDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "COLUMNS",
					StartIndex: insertAt,
					EndIndex:   insertAt + 1,
					// sheet 0 and column 0 are valid values, not omissions
					ForceSendFields: []string{"SheetId", "StartIndex"},
				},
				// nothing to inherit from when the sheet has no columns yet
				InheritFromBefore: insertAt > 0,
			},
		}},
	}
	if _, err := s.api.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return 0, apperrors.StoreError("insert date column", err)
	}

	cell := &sheets.ValueRange{Values: [][]interface{}{{date}}}
	_, err = s.api.Spreadsheets.Values.Update(s.spreadsheetID, s.a1(CellRef(1, int(insertAt)+1)), cell).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return 0, apperrors.StoreError("write date header", err)
	}

	headers, err = s.Headers(ctx)
	if err != nil {
		return 0, err
	}
	idx := indexOf(headers, date)
	if idx == 0 {
		return 0, apperrors.StoreError("confirm date column", fmt.Errorf("header %q missing after insert", date))
	}
	return idx, nil
}

func (s *SheetsStore) sheetID(ctx context.Context) (int64, error) {
	meta, err := s.api.Spreadsheets.Get(s.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, apperrors.StoreError("read spreadsheet metadata", err)
	}
	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == s.sheetName {
			return sh.Properties.SheetId, nil
		}
	}
	return 0, apperrors.NewAppError(apperrors.ErrCodeSheetNotFound,
		fmt.Sprintf("sheet %q not found in spreadsheet", s.sheetName), apperrors.ErrSheetNotFound)
}

func (s *SheetsStore) ReadCell(ctx context.Context, row, col int) (string, error) {
	resp, err := s.api.Spreadsheets.Values.Get(s.spreadsheetID, s.a1(CellRef(row, col))).Context(ctx).Do()
	if err != nil {
		return "", apperrors.StoreError("read cell", err)
	}
	line := firstLine(resp.Values)
	if len(line) == 0 {
		return "", nil
	}
	return line[0], nil
}

func (s *SheetsStore) WriteCell(ctx context.Context, row, col int, value string) error {
	body := &sheets.ValueRange{Values: [][]interface{}{{value}}}
	_, err := s.api.Spreadsheets.Values.Update(s.spreadsheetID, s.a1(CellRef(row, col)), body).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return apperrors.StoreError("write cell", err)
	}
	return nil
}

func firstLine(values [][]interface{}) []string {
	if len(values) == 0 {
		return []string{}
	}
	out := make([]string, len(values[0]))
	for i, v := range values[0] {
		if v == nil {
			continue
		}
		out[i] = fmt.Sprint(v)
	}
	return out
}
