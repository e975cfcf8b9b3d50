// Package analytics computes the aggregate views over a validated set
// of transaction records. Every function is pure: it folds the input
// into a local accumulator and returns a fresh ordered result, leaving
// the input untouched.
package analytics

import (
	"sort"

	"fjacquet/sales-csv/internal/models"

	"github.com/shopspring/decimal"
)

// Default parameters for the ranked views.
const (
	DefaultTopProducts  = 5
	DefaultLowThreshold = 10
)

var oneHundred = decimal.NewFromInt(100)

// TotalRevenue sums the line amount across all records. Zero for an
// empty input.
func TotalRevenue(records []models.TransactionRecord) decimal.Decimal {
	total := decimal.Zero
	for _, t := range records {
		total = total.Add(t.Amount())
	}
	return total
}

// RegionWiseSales groups records by region and returns per-region
// totals, counts and the percentage of the grand total (rounded to two
// decimals). Results are ordered by total sales descending; ties keep
// first-encountered order.
func RegionWiseSales(records []models.TransactionRecord) []models.RegionSummary {
	grandTotal := TotalRevenue(records)

	index := make(map[string]int)
	var summaries []models.RegionSummary

	for _, t := range records {
		i, seen := index[t.Region]
		if !seen {
			i = len(summaries)
			index[t.Region] = i
			summaries = append(summaries, models.RegionSummary{Region: t.Region})
		}
		summaries[i].TotalSales = summaries[i].TotalSales.Add(t.Amount())
		summaries[i].TransactionCount++
	}

	if grandTotal.IsPositive() {
		for i := range summaries {
			summaries[i].Percentage = summaries[i].TotalSales.
				Div(grandTotal).Mul(oneHundred).Round(2)
		}
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalSales.GreaterThan(summaries[j].TotalSales)
	})

	return summaries
}

// productTotals folds records into per-product quantity and revenue
// accumulators, preserving first-encountered product order.
func productTotals(records []models.TransactionRecord) []models.ProductSummary {
	index := make(map[string]int)
	var products []models.ProductSummary

	for _, t := range records {
		i, seen := index[t.ProductName]
		if !seen {
			i = len(products)
			index[t.ProductName] = i
			products = append(products, models.ProductSummary{ProductName: t.ProductName})
		}
		products[i].TotalQuantity += t.Quantity
		products[i].TotalRevenue = products[i].TotalRevenue.Add(t.Amount())
	}

	return products
}

// TopSellingProducts returns the n products with the highest total
// quantity sold, ordered by quantity descending with stable ties. A
// non-positive n falls back to DefaultTopProducts.
func TopSellingProducts(records []models.TransactionRecord, n int) []models.ProductSummary {
	if n <= 0 {
		n = DefaultTopProducts
	}

	products := productTotals(records)

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].TotalQuantity > products[j].TotalQuantity
	})

	if len(products) > n {
		products = products[:n]
	}
	return products
}

// LowPerformingProducts returns products whose total quantity sold is
// strictly below the threshold, ordered by quantity ascending. A
// non-positive threshold falls back to DefaultLowThreshold.
func LowPerformingProducts(records []models.TransactionRecord, threshold int) []models.ProductSummary {
	if threshold <= 0 {
		threshold = DefaultLowThreshold
	}

	var low []models.ProductSummary
	for _, p := range productTotals(records) {
		if p.TotalQuantity < threshold {
			low = append(low, p)
		}
	}

	sort.SliceStable(low, func(i, j int) bool {
		return low[i].TotalQuantity < low[j].TotalQuantity
	})

	return low
}

// CustomerAnalysis groups records by customer and returns per-customer
// totals, counts, average order value (two decimals) and the distinct
// products bought in first-seen order. Results are ordered by total
// spent descending with stable ties.
func CustomerAnalysis(records []models.TransactionRecord) []models.CustomerProfile {
	index := make(map[string]int)
	productSeen := make(map[string]map[string]bool)
	var profiles []models.CustomerProfile

	for _, t := range records {
		i, seen := index[t.CustomerID]
		if !seen {
			i = len(profiles)
			index[t.CustomerID] = i
			profiles = append(profiles, models.CustomerProfile{CustomerID: t.CustomerID})
			productSeen[t.CustomerID] = make(map[string]bool)
		}
		profiles[i].TotalSpent = profiles[i].TotalSpent.Add(t.Amount())
		profiles[i].PurchaseCount++
		if !productSeen[t.CustomerID][t.ProductName] {
			productSeen[t.CustomerID][t.ProductName] = true
			profiles[i].ProductsBought = append(profiles[i].ProductsBought, t.ProductName)
		}
	}

	for i := range profiles {
		if profiles[i].PurchaseCount > 0 {
			profiles[i].AvgOrderValue = profiles[i].TotalSpent.
				Div(decimal.NewFromInt(int64(profiles[i].PurchaseCount))).Round(2)
		}
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].TotalSpent.GreaterThan(profiles[j].TotalSpent)
	})

	return profiles
}

// DailySalesTrend groups records by date and returns per-day revenue,
// transaction count and distinct customer count, ordered by ascending
// date. ISO date strings make lexicographic order chronological.
func DailySalesTrend(records []models.TransactionRecord) []models.DailyBucket {
	index := make(map[string]int)
	customerSeen := make(map[string]map[string]bool)
	var buckets []models.DailyBucket

	for _, t := range records {
		i, seen := index[t.Date]
		if !seen {
			i = len(buckets)
			index[t.Date] = i
			buckets = append(buckets, models.DailyBucket{Date: t.Date})
			customerSeen[t.Date] = make(map[string]bool)
		}
		buckets[i].Revenue = buckets[i].Revenue.Add(t.Amount())
		buckets[i].TransactionCount++
		if !customerSeen[t.Date][t.CustomerID] {
			customerSeen[t.Date][t.CustomerID] = true
			buckets[i].UniqueCustomers++
		}
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date < buckets[j].Date
	})

	return buckets
}

// FindPeakSalesDay returns the day with the strictly highest revenue.
// The comparison starts from zero, so an empty input or one where every
// day's revenue is zero yields the zero sentinel.
func FindPeakSalesDay(records []models.TransactionRecord) models.PeakDay {
	peak := models.PeakDay{Revenue: decimal.Zero}

	for _, bucket := range DailySalesTrend(records) {
		if bucket.Revenue.GreaterThan(peak.Revenue) {
			peak = models.PeakDay{
				Date:             bucket.Date,
				Revenue:          bucket.Revenue,
				TransactionCount: bucket.TransactionCount,
			}
		}
	}

	return peak
}
