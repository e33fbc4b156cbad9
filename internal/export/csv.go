// Package export renders the withdrawal ledger as a download artifact.
package export

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"stoper/internal/domain"
)

// utf8BOM keeps spreadsheet tools from misreading accented characters.
const utf8BOM = "\uFEFF"

var csvHeader = []string{
	"Data",
	"Ferramenta",
	"Quantidade",
	"TAG Perfuratriz",
	"Turma",
	"Supervisor",
	"Operador Responsável",
	"Motivo",
}

// CSV renders withdrawals as a semicolon-delimited, BOM-prefixed byte
// sequence. Dates are localized dd/mm/yyyy; the reason column is always
// quoted with internal quotes doubled. An empty ledger produces no file
// at all (nil output).
func CSV(ws []domain.Withdrawal) []byte {
	if len(ws) == 0 {
		return nil
	}

	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	buf.WriteString(strings.Join(csvHeader, ";"))

	for _, w := range ws {
		buf.WriteByte('\n')
		buf.WriteString(strings.Join([]string{
			formatDate(w.Date),
			w.ToolName,
			strconv.Itoa(w.Quantity),
			w.RigTag,
			string(w.Team),
			w.Supervisor,
			w.Operator,
			quote(string(w.Reason)),
		}, ";"))
	}

	return buf.Bytes()
}

// Filename names the download after the export day.
func Filename(now time.Time) string {
	return "historico_stoper_" + now.Format("2006-01-02") + ".csv"
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006 15:04:05")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
