package report

import (
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"

	"github.com/sadopc/harvestctl/internal/timesheet"
)

const (
	chartWidth  = 60
	chartHeight = 12
)

// Chart renders a bar chart of total hours per date in first-seen order.
func Chart(s timesheet.Summary) string {
	bc := barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, date := range s.Dates {
		bars = append(bars, barchart.BarData{
			Label: chartLabel(date),
			Values: []barchart.BarValue{
				{Name: date, Value: s.Totals[date], Style: barStyle},
			},
		})
	}
	bc.PushAll(bars)
	bc.Draw()

	legend := mutedStyle.Render("hours per day")
	return strings.Join([]string{bc.View(), legend}, "\n")
}

func chartLabel(date string) string {
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t.Format("Jan 02")
	}
	return date
}
