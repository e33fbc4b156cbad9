// Package report derives consumption views from the withdrawal ledger.
// Every function is a pure transform over its inputs; nothing here
// mutates inventory or the ledger.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"stoper/internal/domain"
)

type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

func ParseGranularity(s string) (Granularity, bool) {
	switch Granularity(s) {
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
		return Granularity(s), true
	}
	return "", false
}

// Period is one bucket of the evolution series.
type Period struct {
	Label string `json:"label"`
	Total int    `json:"total"`
}

type ToolConsumption struct {
	ToolID string           `json:"toolId"`
	Name   string           `json:"name"`
	Model  domain.ToolModel `json:"model"`
	Type   domain.ToolType  `json:"type"`
	Total  int              `json:"total"`
}

type ReasonConsumption struct {
	Reason domain.WithdrawalReason `json:"reason"`
	Total  int                     `json:"total"`
}

type Stats struct {
	TotalTools       int    `json:"totalTools"`
	LowStockCount    int    `json:"lowStockCount"`
	WithdrawalsToday int    `json:"withdrawalsToday"`
	MostUsedModel    string `json:"mostUsedModel"`
}

// FilterByDateRange keeps withdrawals inside the inclusive [start, end]
// window. The start bound is taken from midnight of its day and the end
// bound is stretched to the last instant of its day, so both edge days
// are fully included. A nil bound leaves that side open.
func FilterByDateRange(ws []domain.Withdrawal, start, end *time.Time) []domain.Withdrawal {
	if start == nil && end == nil {
		return ws
	}

	var lo, hi time.Time
	if start != nil {
		lo = startOfDay(*start)
	}
	if end != nil {
		hi = endOfDay(*end)
	}

	out := make([]domain.Withdrawal, 0, len(ws))
	for _, w := range ws {
		if start != nil && w.Date.Before(lo) {
			continue
		}
		if end != nil && w.Date.After(hi) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// ConsumptionByTool sums withdrawn quantities per catalog tool. Tools
// with no consumption are dropped; the rest come back sorted by total,
// highest first.
func ConsumptionByTool(ws []domain.Withdrawal, inventory []domain.Tool) []ToolConsumption {
	totals := make(map[string]int, len(inventory))
	for _, w := range ws {
		totals[w.ToolID] += w.Quantity
	}

	out := make([]ToolConsumption, 0, len(inventory))
	for _, tool := range inventory {
		total := totals[tool.ID]
		if total <= 0 {
			continue
		}
		out = append(out, ToolConsumption{
			ToolID: tool.ID,
			Name:   tool.DisplayName(),
			Model:  tool.Model,
			Type:   tool.Type,
			Total:  total,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

// ConsumptionByReason sums withdrawn quantities per enumerated reason.
// Every reason appears, zero totals included, sorted highest first.
func ConsumptionByReason(ws []domain.Withdrawal) []ReasonConsumption {
	totals := make(map[domain.WithdrawalReason]int, len(domain.Reasons))
	for _, w := range ws {
		totals[w.Reason] += w.Quantity
	}

	out := make([]ReasonConsumption, 0, len(domain.Reasons))
	for _, reason := range domain.Reasons {
		out = append(out, ReasonConsumption{Reason: reason, Total: totals[reason]})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

// EvolutionSeries buckets total withdrawn quantity into a contiguous run
// of periods from the earliest withdrawal's day through today. Periods
// with no activity are zero-filled, never skipped. Weeks start on Monday;
// months align to the first.
func EvolutionSeries(ws []domain.Withdrawal, g Granularity, now time.Time) []Period {
	if len(ws) == 0 {
		return nil
	}

	earliest := ws[0].Date
	for _, w := range ws[1:] {
		if w.Date.Before(earliest) {
			earliest = w.Date
		}
	}

	today := startOfDay(now)

	switch g {
	case GranularityWeekly:
		return weeklySeries(ws, startOfWeek(earliest), today)
	case GranularityMonthly:
		return monthlySeries(ws, earliest, today)
	default:
		return dailySeries(ws, startOfDay(earliest), today)
	}
}

func dailySeries(ws []domain.Withdrawal, first, today time.Time) []Period {
	var out []Period
	for day := first; !day.After(today); day = day.AddDate(0, 0, 1) {
		total := 0
		next := day.AddDate(0, 0, 1)
		for _, w := range ws {
			if !w.Date.Before(day) && w.Date.Before(next) {
				total += w.Quantity
			}
		}
		out = append(out, Period{Label: day.Format("02/01"), Total: total})
	}
	return out
}

func weeklySeries(ws []domain.Withdrawal, first, today time.Time) []Period {
	var out []Period
	for week := first; !week.After(today); week = week.AddDate(0, 0, 7) {
		total := 0
		next := week.AddDate(0, 0, 7)
		for _, w := range ws {
			if !w.Date.Before(week) && w.Date.Before(next) {
				total += w.Quantity
			}
		}
		out = append(out, Period{Label: "Sem. " + week.Format("02/01"), Total: total})
	}
	return out
}

func monthlySeries(ws []domain.Withdrawal, earliest, today time.Time) []Period {
	first := time.Date(earliest.Year(), earliest.Month(), 1, 0, 0, 0, 0, earliest.Location())
	last := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	var out []Period
	for month := first; !month.After(last); month = month.AddDate(0, 1, 0) {
		total := 0
		next := month.AddDate(0, 1, 0)
		for _, w := range ws {
			if !w.Date.Before(month) && w.Date.Before(next) {
				total += w.Quantity
			}
		}
		out = append(out, Period{Label: monthLabel(month), Total: total})
	}
	return out
}

// CountToday counts withdrawals dated on the same local calendar day as now.
func CountToday(ws []domain.Withdrawal, now time.Time) int {
	y, m, d := now.Date()
	count := 0
	for _, w := range ws {
		wy, wm, wd := w.Date.Date()
		if wy == y && wm == m && wd == d {
			count++
		}
	}
	return count
}

// Compute assembles the dashboard headline numbers.
func Compute(inventory []domain.Tool, ws []domain.Withdrawal, now time.Time) Stats {
	low := 0
	for _, t := range inventory {
		if t.IsCritical() {
			low++
		}
	}

	modelByTool := make(map[string]domain.ToolModel, len(inventory))
	for _, t := range inventory {
		modelByTool[t.ID] = t.Model
	}

	modelTotals := make(map[domain.ToolModel]int)
	for _, w := range ws {
		if model, ok := modelByTool[w.ToolID]; ok {
			modelTotals[model] += w.Quantity
		}
	}

	mostUsed := "N/A"
	best := 0
	for _, model := range []domain.ToolModel{domain.ModelT45, domain.ModelT50, domain.ModelT51} {
		if modelTotals[model] > best {
			best = modelTotals[model]
			mostUsed = string(model)
		}
	}

	return Stats{
		TotalTools:       len(inventory),
		LowStockCount:    low,
		WithdrawalsToday: CountToday(ws, now),
		MostUsedModel:    mostUsed,
	}
}

// Search filters withdrawals by a case-insensitive term over tool name,
// supervisor, operator, rig tag and team.
func Search(ws []domain.Withdrawal, term string) []domain.Withdrawal {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return ws
	}

	out := make([]domain.Withdrawal, 0, len(ws))
	for _, w := range ws {
		if strings.Contains(strings.ToLower(w.ToolName), term) ||
			strings.Contains(strings.ToLower(w.Supervisor), term) ||
			strings.Contains(strings.ToLower(w.Operator), term) ||
			strings.Contains(strings.ToLower(w.RigTag), term) ||
			strings.Contains(strings.ToLower(string(w.Team)), term) {
			out = append(out, w)
		}
	}
	return out
}

var ptMonths = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s/%02d", ptMonths[t.Month()-1], t.Year()%100)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// startOfWeek walks back to the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
