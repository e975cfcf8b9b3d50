// Package report renders the aggregate analytics views into the fixed
// eight-section sales report.
package report

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/sales-csv/internal/analytics"
	"fjacquet/sales-csv/internal/enrichment"
	"fjacquet/sales-csv/internal/fileutils"
	"fjacquet/sales-csv/internal/logging"
	"fjacquet/sales-csv/internal/models"

	"github.com/shopspring/decimal"
)

const separatorWidth = 50

// Generator renders sales reports. It consumes the analytics outputs
// only and holds the display parameters.
type Generator struct {
	logger       logging.Logger
	currency     string
	topN         int
	lowThreshold int
	now          func() time.Time
}

// Option customizes a Generator.
type Option func(*Generator)

// WithCurrency sets the currency prefix used for amounts.
func WithCurrency(currency string) Option {
	return func(g *Generator) {
		if currency != "" {
			g.currency = currency
		}
	}
}

// WithTopN sets how many products and customers the ranked sections show.
func WithTopN(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.topN = n
		}
	}
}

// WithLowThreshold sets the low-performer quantity threshold.
func WithLowThreshold(threshold int) Option {
	return func(g *Generator) {
		if threshold > 0 {
			g.lowThreshold = threshold
		}
	}
}

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// NewGenerator creates a report generator with the given options.
func NewGenerator(logger logging.Logger, opts ...Option) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	g := &Generator{
		logger:       logger,
		currency:     "₹",
		topN:         analytics.DefaultTopProducts,
		lowThreshold: analytics.DefaultLowThreshold,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Render produces the full report text: header, overall summary,
// region table, top products, top customers, daily trend, performance
// analysis and enrichment summary, in that order.
func (g *Generator) Render(records []models.TransactionRecord, enriched []models.EnrichedRecord) string {
	var b strings.Builder

	g.writeHeader(&b, records)
	g.writeOverallSummary(&b, records)
	g.writeRegionPerformance(&b, records)
	g.writeTopProducts(&b, records)
	g.writeTopCustomers(&b, records)
	g.writeDailyTrend(&b, records)
	g.writePerformanceAnalysis(&b, records)
	g.writeEnrichmentSummary(&b, enriched)

	return b.String()
}

// WriteReport renders the report and writes it to the given path,
// creating parent directories as needed.
func (g *Generator) WriteReport(records []models.TransactionRecord, enriched []models.EnrichedRecord, outputFile string) error {
	text := g.Render(records, enriched)
	if err := fileutils.WriteFile(outputFile, []byte(text)); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	g.logger.Info("Sales report generated",
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile})
	return nil
}

func separator(ch string) string {
	return strings.Repeat(ch, separatorWidth)
}

// money renders an amount with thousands separators, two decimals and
// the currency prefix.
func (g *Generator) money(amount decimal.Decimal) string {
	return g.currency + groupThousands(amount.StringFixed(2))
}

// groupThousands inserts comma separators into the integer part of a
// fixed-point decimal string.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		fracPart = s[i:]
	}
	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}
	return sign + grouped.String() + fracPart
}

func (g *Generator) writeHeader(b *strings.Builder, records []models.TransactionRecord) {
	fmt.Fprintln(b, separator("="))
	fmt.Fprintln(b, "        SALES ANALYTICS REPORT")
	fmt.Fprintf(b, "      Generated: %s\n", g.now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(b, "      Records Processed: %d\n", len(records))
	fmt.Fprintln(b, separator("="))
	fmt.Fprintln(b)
}

func (g *Generator) writeOverallSummary(b *strings.Builder, records []models.TransactionRecord) {
	totalRevenue := analytics.TotalRevenue(records)

	avgOrder := decimal.Zero
	if len(records) > 0 {
		avgOrder = totalRevenue.Div(decimal.NewFromInt(int64(len(records)))).Round(2)
	}

	minDate, maxDate := "", ""
	for _, t := range records {
		if minDate == "" || t.Date < minDate {
			minDate = t.Date
		}
		if t.Date > maxDate {
			maxDate = t.Date
		}
	}

	fmt.Fprintln(b, "OVERALL SUMMARY")
	fmt.Fprintln(b, separator("-"))
	fmt.Fprintf(b, "Total Revenue:        %s\n", g.money(totalRevenue))
	fmt.Fprintf(b, "Total Transactions:   %d\n", len(records))
	fmt.Fprintf(b, "Average Order Value:  %s\n", g.money(avgOrder))
	if minDate != "" {
		fmt.Fprintf(b, "Date Range:           %s to %s\n", minDate, maxDate)
	} else {
		fmt.Fprintln(b, "Date Range:           n/a")
	}
	fmt.Fprintln(b)
}

func (g *Generator) writeRegionPerformance(b *strings.Builder, records []models.TransactionRecord) {
	fmt.Fprintln(b, "REGION-WISE PERFORMANCE")
	fmt.Fprintln(b, separator("-"))
	fmt.Fprintf(b, "%-10s %-16s %-11s %s\n", "Region", "Sales", "% of Total", "Transactions")
	for _, r := range analytics.RegionWiseSales(records) {
		fmt.Fprintf(b, "%-10s %-16s %6s%%     %d\n",
			r.Region, g.money(r.TotalSales), r.Percentage.StringFixed(2), r.TransactionCount)
	}
	fmt.Fprintln(b)
}

func (g *Generator) writeTopProducts(b *strings.Builder, records []models.TransactionRecord) {
	fmt.Fprintf(b, "TOP %d PRODUCTS\n", g.topN)
	fmt.Fprintln(b, separator("-"))
	fmt.Fprintf(b, "%-5s %-20s %-9s %s\n", "Rank", "Product Name", "Quantity", "Revenue")
	for rank, p := range analytics.TopSellingProducts(records, g.topN) {
		fmt.Fprintf(b, "%-5d %-20s %-9d %s\n",
			rank+1, p.ProductName, p.TotalQuantity, g.money(p.TotalRevenue))
	}
	fmt.Fprintln(b)
}

func (g *Generator) writeTopCustomers(b *strings.Builder, records []models.TransactionRecord) {
	fmt.Fprintf(b, "TOP %d CUSTOMERS\n", g.topN)
	fmt.Fprintln(b, separator("-"))
	fmt.Fprintf(b, "%-5s %-10s %-14s %s\n", "Rank", "Customer", "Total Spent", "Orders")
	customers := analytics.CustomerAnalysis(records)
	if len(customers) > g.topN {
		customers = customers[:g.topN]
	}
	for rank, c := range customers {
		fmt.Fprintf(b, "%-5d %-10s %-14s %d\n",
			rank+1, c.CustomerID, g.money(c.TotalSpent), c.PurchaseCount)
	}
	fmt.Fprintln(b)
}

func (g *Generator) writeDailyTrend(b *strings.Builder, records []models.TransactionRecord) {
	fmt.Fprintln(b, "DAILY SALES TREND")
	fmt.Fprintln(b, separator("-"))
	fmt.Fprintf(b, "%-12s %-16s %-13s %s\n", "Date", "Revenue", "Transactions", "Customers")
	for _, d := range analytics.DailySalesTrend(records) {
		fmt.Fprintf(b, "%-12s %-16s %-13d %d\n",
			d.Date, g.money(d.Revenue), d.TransactionCount, d.UniqueCustomers)
	}
	fmt.Fprintln(b)
}

func (g *Generator) writePerformanceAnalysis(b *strings.Builder, records []models.TransactionRecord) {
	peak := analytics.FindPeakSalesDay(records)
	low := analytics.LowPerformingProducts(records, g.lowThreshold)

	fmt.Fprintln(b, "PRODUCT PERFORMANCE ANALYSIS")
	fmt.Fprintln(b, separator("-"))
	if peak.IsZero() {
		fmt.Fprintln(b, "Best Selling Day: n/a")
	} else {
		fmt.Fprintf(b, "Best Selling Day: %s (%s, %d transactions)\n",
			peak.Date, g.money(peak.Revenue), peak.TransactionCount)
	}
	fmt.Fprintln(b)

	fmt.Fprintln(b, "Low Performing Products:")
	if len(low) == 0 {
		fmt.Fprintln(b, "None")
	} else {
		for _, p := range low {
			fmt.Fprintf(b, "- %s (Qty: %d, Revenue: %s)\n",
				p.ProductName, p.TotalQuantity, g.money(p.TotalRevenue))
		}
	}
	fmt.Fprintln(b)

	fmt.Fprintln(b, "Average Transaction Value per Region:")
	for _, r := range analytics.RegionWiseSales(records) {
		avg := decimal.Zero
		if r.TransactionCount > 0 {
			avg = r.TotalSales.Div(decimal.NewFromInt(int64(r.TransactionCount))).Round(2)
		}
		fmt.Fprintf(b, "- %s: %s\n", r.Region, g.money(avg))
	}
	fmt.Fprintln(b)
}

func (g *Generator) writeEnrichmentSummary(b *strings.Builder, enriched []models.EnrichedRecord) {
	summary := enrichment.Summarize(enriched)

	fmt.Fprintln(b, "API ENRICHMENT SUMMARY")
	fmt.Fprintln(b, separator("-"))
	fmt.Fprintf(b, "Total Records Enriched: %d\n", summary.Matched)
	fmt.Fprintf(b, "Success Rate: %s%%\n", summary.SuccessRate.StringFixed(2))
	fmt.Fprintln(b, "Products Not Enriched:")
	if len(summary.Unmatched) == 0 {
		fmt.Fprintln(b, "None")
	} else {
		for _, u := range summary.Unmatched {
			fmt.Fprintf(b, "- %s (%s)\n", u.ProductID, u.ProductName)
		}
	}
}
