package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	apperrors "qrattendance/errors"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// fakeSheets is a tiny stand-in for the Sheets v4 REST surface used by SheetsStore.
type fakeSheets struct {
	mu         sync.Mutex
	title      string
	sheetID    int64
	headers    []string
	names      []string
	cells      map[string]string
	inserts    []map[string]interface{}
	appendOpts []string
	writeOpts  []string
}

func newFakeSheets() *fakeSheets {
	return &fakeSheets{
		title:   "Sheet1",
		headers: []string{"name"},
		names:   []string{""},
		cells:   map[string]string{},
	}
}

func (f *fakeSheets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/v4/spreadsheets/")
	id, rest, _ := strings.Cut(path, "/")
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodGet && rest == "" && !strings.Contains(id, ":"):
		writeJSON(w, map[string]interface{}{
			"spreadsheetId": id,
			"sheets": []interface{}{
				map[string]interface{}{"properties": map[string]interface{}{"sheetId": f.sheetID, "title": f.title}},
			},
		})
	case r.Method == http.MethodPost && strings.HasSuffix(id, ":batchUpdate"):
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		for _, raw := range body["requests"].([]interface{}) {
			insert := raw.(map[string]interface{})["insertDimension"].(map[string]interface{})
			f.inserts = append(f.inserts, insert)
			f.headers = append(f.headers, "")
		}
		writeJSON(w, map[string]interface{}{"spreadsheetId": strings.TrimSuffix(id, ":batchUpdate")})
	case strings.HasPrefix(rest, "values/"):
		rng := strings.TrimPrefix(rest, "values/")
		f.handleValues(w, r, rng)
	default:
		http.Error(w, `{"error":{"code":404,"message":"unexpected call"}}`, http.StatusNotFound)
	}
}

func (f *fakeSheets) handleValues(w http.ResponseWriter, r *http.Request, rng string) {
	isAppend := strings.HasSuffix(rng, ":append")
	rng = strings.TrimSuffix(rng, ":append")
	_, ref, _ := strings.Cut(rng, "!")

	switch r.Method {
	case http.MethodGet:
		switch ref {
		case "1:1":
			writeJSON(w, valuesBody(f.headers))
		case "A:A":
			writeJSON(w, valuesBody(f.names))
		default:
			if v, ok := f.cells[ref]; ok && v != "" {
				writeJSON(w, valuesBody([]string{v}))
				return
			}
			writeJSON(w, map[string]interface{}{"range": rng})
		}
	case http.MethodPost, http.MethodPut:
		var body sheets.ValueRange
		_ = json.NewDecoder(r.Body).Decode(&body)
		value := body.Values[0][0].(string)
		inputOption := r.URL.Query().Get("valueInputOption")
		if isAppend {
			f.appendOpts = append(f.appendOpts, inputOption+"/"+r.URL.Query().Get("insertDataOption"))
			f.names = append(f.names, value)
		} else if strings.HasSuffix(ref, "1") && ColumnIndex(strings.TrimSuffix(ref, "1")) > 0 {
			f.writeOpts = append(f.writeOpts, inputOption)
			f.headers[ColumnIndex(strings.TrimSuffix(ref, "1"))-1] = value
		} else {
			f.writeOpts = append(f.writeOpts, inputOption)
			f.cells[ref] = value
		}
		writeJSON(w, map[string]interface{}{"spreadsheetId": "sheet-id"})
	}
}

func valuesBody(line []string) map[string]interface{} {
	row := make([]interface{}, len(line))
	for i, v := range line {
		row[i] = v
	}
	return map[string]interface{}{"values": []interface{}{row}}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	_ = json.NewEncoder(w).Encode(v)
}

func newTestSheetsStore(t *testing.T, fake *fakeSheets) *SheetsStore {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	svc, err := sheets.NewService(context.Background(),
		option.WithEndpoint(server.URL+"/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(server.Client()),
	)
	if err != nil {
		t.Fatalf("create sheets service: %v", err)
	}
	return NewSheetsStore(SheetsStoreOptions{Service: svc, SpreadsheetID: "sheet-id", SheetName: fake.title})
}

func TestSheetsStoreReadsHeadersAndNames(t *testing.T) {
	fake := newFakeSheets()
	fake.headers = []string{"name", "2024-01-01"}
	fake.names = []string{"", "Alice", "Bob"}
	store := newTestSheetsStore(t, fake)

	headers, err := store.Headers(context.Background())
	if err != nil {
		t.Fatalf("Headers: %v", err)
	}
	if strings.Join(headers, ",") != "name,2024-01-01" {
		t.Fatalf("unexpected headers %v", headers)
	}

	names, err := store.NameColumn(context.Background())
	if err != nil {
		t.Fatalf("NameColumn: %v", err)
	}
	if strings.Join(names, ",") != ",Alice,Bob" {
		t.Fatalf("unexpected names %q", names)
	}
}

func TestSheetsStoreAppendNameUsesInsertRows(t *testing.T) {
	fake := newFakeSheets()
	store := newTestSheetsStore(t, fake)

	if err := store.AppendName(context.Background(), "Alice"); err != nil {
		t.Fatalf("AppendName: %v", err)
	}
	if len(fake.names) != 2 || fake.names[1] != "Alice" {
		t.Fatalf("expected Alice in row 2, got %q", fake.names)
	}
	if len(fake.appendOpts) != 1 || fake.appendOpts[0] != "USER_ENTERED/INSERT_ROWS" {
		t.Fatalf("unexpected append options %v", fake.appendOpts)
	}
}

func TestSheetsStoreEnsureDateColumnInsertsAfterLastHeader(t *testing.T) {
	fake := newFakeSheets()
	fake.headers = []string{"name", "2024-01-01"}
	fake.cells["B2"] = "08:00:00 AM"
	store := newTestSheetsStore(t, fake)

	col, err := store.EnsureDateColumn(context.Background(), "2024-01-02")
	if err != nil {
		t.Fatalf("EnsureDateColumn: %v", err)
	}
	if col != 3 {
		t.Fatalf("expected new column 3, got %d", col)
	}
	if len(fake.inserts) != 1 {
		t.Fatalf("expected one insertDimension request, got %d", len(fake.inserts))
	}

	rng := fake.inserts[0]["range"].(map[string]interface{})
	if _, ok := rng["sheetId"]; !ok {
		t.Fatalf("sheetId 0 must be sent explicitly: %v", rng)
	}
	if rng["dimension"] != "COLUMNS" || rng["startIndex"] != float64(2) || rng["endIndex"] != float64(3) {
		t.Fatalf("unexpected insert range %v", rng)
	}
	if fake.inserts[0]["inheritFromBefore"] != true {
		t.Fatalf("expected inheritFromBefore, got %v", fake.inserts[0])
	}
	if fake.headers[2] != "2024-01-02" || fake.cells["B2"] != "08:00:00 AM" {
		t.Fatalf("existing data disturbed: headers=%v cells=%v", fake.headers, fake.cells)
	}
	if len(fake.writeOpts) != 1 || fake.writeOpts[0] != "RAW" {
		t.Fatalf("header must be written RAW, got %v", fake.writeOpts)
	}

	again, err := store.EnsureDateColumn(context.Background(), "2024-01-02")
	if err != nil {
		t.Fatalf("EnsureDateColumn again: %v", err)
	}
	if again != 3 || len(fake.inserts) != 1 {
		t.Fatalf("existing date must not insert again: col=%d inserts=%d", again, len(fake.inserts))
	}
}

func TestSheetsStoreEnsureDateColumnUnknownSheet(t *testing.T) {
	fake := newFakeSheets()
	store := newTestSheetsStore(t, fake)
	fake.title = "Renamed"

	_, err := store.EnsureDateColumn(context.Background(), "2024-01-02")
	if !apperrors.HasCode(err, apperrors.ErrCodeSheetNotFound) {
		t.Fatalf("expected SHEET_NOT_FOUND, got %v", err)
	}
}

func TestSheetsStoreCellRoundTrip(t *testing.T) {
	fake := newFakeSheets()
	store := newTestSheetsStore(t, fake)
	ctx := context.Background()

	value, err := store.ReadCell(ctx, 2, 2)
	if err != nil {
		t.Fatalf("ReadCell: %v", err)
	}
	if value != "" {
		t.Fatalf("expected empty cell, got %q", value)
	}

	if err := store.WriteCell(ctx, 2, 2, "09:05:00 AM"); err != nil {
		t.Fatalf("WriteCell: %v", err)
	}
	if fake.writeOpts[0] != "USER_ENTERED" {
		t.Fatalf("time cells are USER_ENTERED, got %v", fake.writeOpts)
	}

	value, err = store.ReadCell(ctx, 2, 2)
	if err != nil {
		t.Fatalf("ReadCell after write: %v", err)
	}
	if value != "09:05:00 AM" {
		t.Fatalf("expected written value, got %q", value)
	}
}

func TestSheetsStoreWrapsRemoteErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"The caller does not have permission"}}`))
	}))
	defer server.Close()

	svc, err := sheets.NewService(context.Background(),
		option.WithEndpoint(server.URL+"/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(server.Client()),
	)
	if err != nil {
		t.Fatalf("create sheets service: %v", err)
	}
	store := NewSheetsStore(SheetsStoreOptions{Service: svc, SpreadsheetID: "sheet-id", SheetName: "Sheet1"})

	_, err = store.Headers(context.Background())
	if !apperrors.HasCode(err, apperrors.ErrCodeStoreError) {
		t.Fatalf("expected STORE_ERROR, got %v", err)
	}
}

func TestSheetsStoreQuotesSheetTitles(t *testing.T) {
	plain := &SheetsStore{sheetName: "Sheet1"}
	if got := plain.a1("A:A"); got != "Sheet1!A:A" {
		t.Fatalf("unexpected plain range %q", got)
	}
	spaced := &SheetsStore{sheetName: "Team's Log"}
	if got := spaced.a1("1:1"); got != "'Team''s Log'!1:1" {
		t.Fatalf("unexpected quoted range %q", got)
	}
}
