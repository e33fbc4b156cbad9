package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stoper/internal/domain"
)

func TestCSV(t *testing.T) {
	t.Run("empty ledger produces no file", func(t *testing.T) {
		assert.Nil(t, CSV(nil))
		assert.Nil(t, CSV([]domain.Withdrawal{}))
	})

	t.Run("rows are semicolon delimited with BOM prefix", func(t *testing.T) {
		ws := []domain.Withdrawal{
			{
				Date:       time.Date(2026, 3, 10, 14, 5, 9, 0, time.Local),
				ToolName:   "Haste T51",
				Quantity:   3,
				RigTag:     "PH14",
				Team:       domain.TeamA,
				Supervisor: "Emanuel",
				Operator:   "Carlos",
				Reason:     domain.ReasonWear,
			},
		}

		out := string(CSV(ws))
		require.True(t, strings.HasPrefix(out, "\uFEFF"))

		lines := strings.Split(strings.TrimPrefix(out, "\uFEFF"), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "Data;Ferramenta;Quantidade;TAG Perfuratriz;Turma;Supervisor;Operador Responsável;Motivo", lines[0])
		assert.Equal(t, `10/03/2026 14:05:09;Haste T51;3;PH14;Turma A;Emanuel;Carlos;"Desgaste"`, lines[1])
	})

	t.Run("internal quotes in reason are doubled", func(t *testing.T) {
		ws := []domain.Withdrawal{
			{Date: time.Now(), Reason: domain.WithdrawalReason(`broke the 4,5'' "special" bit`)},
		}
		out := string(CSV(ws))
		assert.Contains(t, out, `"broke the 4,5'' ""special"" bit"`)
	})
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)
	assert.Equal(t, "historico_stoper_2026-03-10.csv", Filename(now))
}
