package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/yeisme/dirstat/pkg/analyzer"
	"github.com/yeisme/dirstat/pkg/models"
)

func sampleReport(t *testing.T) (*models.Report, []models.FileRecord) {
	t.Helper()
	files := []models.FileRecord{
		{
			AbsolutePath: "/src/main.go", FileName: "main.go", Extension: ".go",
			Directory: "/src", SizeBytes: 120, LastModified: time.Unix(1700000000, 0).UTC(),
			Language: "Go", Category: "Source",
			LineCount: 12, CharCount: 110, WordCount: 20, CommentLineCount: 2, BlankLineCount: 3,
		},
		{
			AbsolutePath: "/src/.env", FileName: ".env", Extension: ".env",
			Directory: "/src", SizeBytes: 10, LastModified: time.Unix(1700000001, 0).UTC(),
			IsHidden: true, Language: "Unknown", Category: "Other", LineCount: 1,
		},
	}
	r := analyzer.NewReport("/src")
	for _, f := range files {
		if err := analyzer.Update(r, f); err != nil {
			t.Fatal(err)
		}
	}
	analyzer.Finalize(r, r.StartTime.Add(50*time.Millisecond), map[models.ErrorKind]int{models.ErrorKindFileRead: 1})
	return r, files
}

func Test_WriteJSON(t *testing.T) {
	report, files := sampleReport(t)
	var buf bytes.Buffer
	if err := WriteJSON(&buf, report, files); err != nil {
		t.Fatalf("write json: %v", err)
	}

	var doc struct {
		Run struct {
			TargetDirectory string `json:"target_directory"`
			DurationMS      int64  `json:"duration_ms"`
		} `json:"run"`
		Stats struct {
			TotalFiles int                       `json:"total_files"`
			Languages  map[string]map[string]any `json:"languages"`
			Errors     map[string]int            `json:"errors"`
		} `json:"stats"`
		Files []map[string]any `json:"files"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output not valid json: %v", err)
	}
	if doc.Run.TargetDirectory != "/src" || doc.Run.DurationMS != 50 {
		t.Fatalf("run meta: %+v", doc.Run)
	}
	if doc.Stats.TotalFiles != 2 {
		t.Fatalf("total files: %d", doc.Stats.TotalFiles)
	}
	if _, ok := doc.Stats.Languages["Go"]; !ok {
		t.Fatal("missing Go language group")
	}
	if doc.Stats.Errors["file_read"] != 1 {
		t.Fatalf("error summary: %v", doc.Stats.Errors)
	}
	if len(doc.Files) != 2 {
		t.Fatalf("files: %d", len(doc.Files))
	}
}

func Test_WriteJSON_NilFiles(t *testing.T) {
	report, _ := sampleReport(t)
	var buf bytes.Buffer
	if err := WriteJSON(&buf, report, nil); err != nil {
		t.Fatalf("write json: %v", err)
	}
	// files 为 nil 时导出空数组而不是 null
	if !strings.Contains(buf.String(), `"files": []`) {
		t.Fatal("nil files must serialize as empty array")
	}
}

func Test_WriteCSV(t *testing.T) {
	_, files := sampleReport(t)
	var buf bytes.Buffer
	if err := WriteCSV(&buf, files); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output not valid csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "name" || rows[0][len(rows[0])-1] != "read_only" {
		t.Fatalf("header: %v", rows[0])
	}
	if rows[1][0] != "main.go" || rows[1][4] != "120" || rows[1][5] != "12" {
		t.Fatalf("row: %v", rows[1])
	}
	if rows[2][11] != "true" {
		t.Fatalf("hidden flag: %v", rows[2])
	}
	// 每行列数与表头一致
	for _, row := range rows {
		if len(row) != len(rows[0]) {
			t.Fatalf("ragged row: %v", row)
		}
	}
}
