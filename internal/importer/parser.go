package importer

import "strings"

// ParseCSV tokenizes a CSV text blob into rows of cells. It is a pure
// function: same input, same output.
//
// Handling follows what hand-edited spreadsheet exports actually contain
// rather than strict RFC 4180:
//   - cells are comma-delimited; a double-quoted cell may contain commas,
//     newlines (\n, \r\n or bare \r) and doubled quotes ("" is one ");
//   - a row ends only at a newline outside quotes;
//   - rows whose cells are all empty after trimming are dropped;
//   - a final row without a trailing newline is still emitted.
func ParseCSV(text string) [][]string {
	var rows [][]string
	var row []string
	var cell strings.Builder
	inQuotes := false

	endCell := func() {
		row = append(row, cell.String())
		cell.Reset()
	}
	endRow := func() {
		endCell()
		if !blankRow(row) {
			rows = append(rows, row)
		}
		row = nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inQuotes {
			if c == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					cell.WriteByte('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				cell.WriteByte(c)
			}
			continue
		}

		switch c {
		case '"':
			inQuotes = true
		case ',':
			endCell()
		case '\n':
			endRow()
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			endRow()
		default:
			cell.WriteByte(c)
		}
	}

	// Unterminated last record.
	if cell.Len() > 0 || len(row) > 0 {
		endRow()
	}

	return rows
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
