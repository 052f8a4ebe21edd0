package importer_test

import (
	"reflect"
	"testing"

	"github.com/growthops/checkin-api/internal/importer"
)

func TestParseCSVSimple(t *testing.T) {
	rows := importer.ParseCSV("name,phone\nAli,0123456789\nSiti,0198765432\n")

	want := [][]string{
		{"name", "phone"},
		{"Ali", "0123456789"},
		{"Siti", "0198765432"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("got %v, want %v", rows, want)
	}
}

func TestParseCSVQuotedCell(t *testing.T) {
	rows := importer.ParseCSV("name\n\"Doe, \"\"Johnny\"\" Jr.\nSecond line\"\n")

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %v", len(rows), rows)
	}
	got := rows[1][0]
	want := "Doe, \"Johnny\" Jr.\nSecond line"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseCSVLineEndings(t *testing.T) {
	for name, text := range map[string]string{
		"lf":   "a,b\n1,2\n",
		"crlf": "a,b\r\n1,2\r\n",
		"cr":   "a,b\r1,2\r",
	} {
		rows := importer.ParseCSV(text)
		want := [][]string{{"a", "b"}, {"1", "2"}}
		if !reflect.DeepEqual(rows, want) {
			t.Errorf("%s: got %v, want %v", name, rows, want)
		}
	}
}

func TestParseCSVQuotedNewlineVariants(t *testing.T) {
	rows := importer.ParseCSV("note\n\"line1\r\nline2\rline3\"")

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if got, want := rows[1][0], "line1\r\nline2\rline3"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseCSVNoTrailingNewline(t *testing.T) {
	rows := importer.ParseCSV("name,phone\nAli,0123")

	if len(rows) != 2 {
		t.Fatalf("final unterminated row was dropped: %v", rows)
	}
	if got := rows[1]; !reflect.DeepEqual(got, []string{"Ali", "0123"}) {
		t.Errorf("got %v", got)
	}
}

func TestParseCSVDropsBlankRows(t *testing.T) {
	rows := importer.ParseCSV("name,phone\n\n , \nAli,0123\n,,\n")

	if len(rows) != 2 {
		t.Fatalf("expected blank rows to be dropped, got %v", rows)
	}
}

func TestParseCSVEmptyInput(t *testing.T) {
	if rows := importer.ParseCSV(""); len(rows) != 0 {
		t.Errorf("expected no rows, got %v", rows)
	}
	if rows := importer.ParseCSV("\n\r\n\n"); len(rows) != 0 {
		t.Errorf("expected no rows for blank lines, got %v", rows)
	}
}

func TestParseCSVEmptyCellsPreserved(t *testing.T) {
	rows := importer.ParseCSV("a,b,c\n1,,3\n")

	want := []string{"1", "", "3"}
	if !reflect.DeepEqual(rows[1], want) {
		t.Errorf("got %v, want %v", rows[1], want)
	}
}

func TestParseCSVDeterministic(t *testing.T) {
	text := "name,phone\n\"A, B\",0123\nSiti,\"04,56\"\n"

	first := importer.ParseCSV(text)
	second := importer.ParseCSV(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-parse differs: %v vs %v", first, second)
	}
}
