package waste

import (
	"strings"
	"time"

	"sustainable-bao-backend/domain"
	"sustainable-bao-backend/entities"
)

const hoursPerDay = 24

// Bucket thresholds in days to expiry.
const (
	highRiskDays   = 4
	mediumRiskDays = 8
)

type Summary struct {
	Low     int
	Medium  int
	High    int
	Expired int
}

type Classification struct {
	Summary      Summary
	ExpiredItems []*entities.GroceryItem
	TotalCost    float64
	AtRiskCost   float64
	Tips         []string
}

// Classify buckets every grocery item by remaining shelf life relative to
// now, collects the expired subset with its total cost, and derives
// waste-reduction tips from the counts of the same pass. Items without an
// expiry date are non-perishable: they get no bucket and never count as
// expired. Days to expiry may be fractional; an item expiring exactly now
// is high risk, not expired.
func Classify(items []*entities.GroceryItem, now time.Time) Classification {
	var c Classification
	var expiredNames []string
	seen := make(map[string]bool)

	for _, item := range items {
		if item.ExpiryDate == nil {
			continue
		}

		days := item.ExpiryDate.Sub(now).Hours() / hoursPerDay
		switch {
		case days < 0:
			c.Summary.Expired++
			c.ExpiredItems = append(c.ExpiredItems, item)
			c.TotalCost += item.Quantity * item.Price
			if !seen[item.Name] {
				seen[item.Name] = true
				expiredNames = append(expiredNames, item.Name)
			}
		case days < highRiskDays:
			c.Summary.High++
			c.AtRiskCost += item.Quantity * item.Price
		case days < mediumRiskDays:
			c.Summary.Medium++
		default:
			c.Summary.Low++
		}
	}

	if len(expiredNames) > 0 {
		c.Tips = append(c.Tips, "Consider buying less of: "+strings.Join(expiredNames, ", "))
	}
	if c.Summary.High > 0 {
		c.Tips = append(c.Tips, "Plan meals better to use up food before it expires.")
	}
	if c.Summary.Medium > 0 {
		c.Tips = append(c.Tips, "Store food properly to extend shelf life.")
	}

	return c
}

// BucketFor returns the risk bucket name for a single expiry date, or an
// empty string when the item has no expiry date.
func BucketFor(expiryDate *time.Time, now time.Time) string {
	if expiryDate == nil {
		return ""
	}

	days := expiryDate.Sub(now).Hours() / hoursPerDay
	switch {
	case days < 0:
		return domain.RiskExpired
	case days < highRiskDays:
		return domain.RiskHigh
	case days < mediumRiskDays:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}
