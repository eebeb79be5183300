// internal/services/order_report.go
package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/javajoker/commerce-dashboard/internal/models"
)

const ReportHeader = "Order ID,Customer,Date,Amount,Status,Items"

// Report is a CSV export of orders ready to be handed to a file-save collaborator.
type Report struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Rows        int    `json:"rows"`
	Content     string `json:"-"`
}

// BuildReport renders orders as comma-separated text: a header line followed
// by one line per order. When selectedIDs is non-empty only those orders are
// written, in collection order.
//
// Fields are joined as-is. A comma or line break inside a customer or item
// name will shift columns in that row; quoting is deliberately not applied
// so the output stays byte-compatible with existing dashboard exports.
func BuildReport(orders []models.Order, selectedIDs []string) string {
	lines, _ := reportLines(orders, selectedIDs)
	return strings.Join(lines, "\n")
}

func reportLines(orders []models.Order, selectedIDs []string) ([]string, int) {
	var filter map[string]struct{}
	if len(selectedIDs) > 0 {
		filter = make(map[string]struct{}, len(selectedIDs))
		for _, id := range selectedIDs {
			filter[id] = struct{}{}
		}
	}

	lines := []string{ReportHeader}
	for _, o := range orders {
		if filter != nil {
			if _, ok := filter[o.ID]; !ok {
				continue
			}
		}
		lines = append(lines, reportRow(o))
	}
	return lines, len(lines) - 1
}

func reportRow(o models.Order) string {
	items := make([]string, len(o.Items))
	for i, item := range o.Items {
		items[i] = fmt.Sprintf("%s (x%d)", item.Name, item.Quantity)
	}
	return strings.Join([]string{
		o.ID,
		o.Customer,
		o.Date,
		"$" + o.Amount.StringFixed(2),
		string(o.Status),
		strings.Join(items, "; "),
	}, ",")
}

// ExportFileName names an export after the UTC calendar date of t.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("orders_export_%s.csv", t.UTC().Format("2006-01-02"))
}
