package waste

import (
	"reflect"
	"testing"
	"time"

	"sustainable-bao-backend/entities"
)

func date(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &t
}

func item(name string, expiry *time.Time, quantity, price float64) *entities.GroceryItem {
	return &entities.GroceryItem{
		Name:       name,
		Quantity:   quantity,
		Price:      price,
		ExpiryDate: expiry,
	}
}

func TestClassifyBuckets(t *testing.T) {
	now := *date("2024-06-10")

	items := []*entities.GroceryItem{
		item("Milk", date("2024-06-08"), 1, 2.50),
		item("Yogurt", date("2024-06-12"), 1, 1.20),
		item("Cheese", date("2024-06-15"), 1, 4.00),
		item("Rice", date("2024-06-20"), 1, 3.00),
	}

	c := Classify(items, now)

	if c.Summary.Expired != 1 {
		t.Errorf("expected 1 expired, got %d", c.Summary.Expired)
	}
	if c.Summary.High != 1 {
		t.Errorf("expected 1 high risk, got %d", c.Summary.High)
	}
	if c.Summary.Medium != 1 {
		t.Errorf("expected 1 medium risk, got %d", c.Summary.Medium)
	}
	if c.Summary.Low != 1 {
		t.Errorf("expected 1 low risk, got %d", c.Summary.Low)
	}
	if len(c.ExpiredItems) != 1 || c.ExpiredItems[0].Name != "Milk" {
		t.Errorf("expected Milk in expired items, got %+v", c.ExpiredItems)
	}
}

func TestClassifyBoundaries(t *testing.T) {
	now := *date("2024-06-10")

	tests := []struct {
		name   string
		expiry *time.Time
		want   string
	}{
		{"expiring now is high risk", date("2024-06-10"), "High"},
		{"just under four days is high risk", date("2024-06-13"), "High"},
		{"exactly four days is medium risk", date("2024-06-14"), "Medium"},
		{"just under eight days is medium risk", date("2024-06-17"), "Medium"},
		{"exactly eight days is low risk", date("2024-06-18"), "Low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BucketFor(tt.expiry, now); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestClassifySkipsNonPerishables(t *testing.T) {
	now := *date("2024-06-10")

	c := Classify([]*entities.GroceryItem{
		item("Salt", nil, 1, 0.80),
		item("Milk", date("2024-06-08"), 1, 2.50),
	}, now)

	total := c.Summary.Low + c.Summary.Medium + c.Summary.High + c.Summary.Expired
	if total != 1 {
		t.Errorf("expected 1 bucketed item, got %d", total)
	}
	if c.Summary.Expired != 1 {
		t.Errorf("expected the dated item expired, got %+v", c.Summary)
	}
}

func TestClassifyWasteCost(t *testing.T) {
	now := *date("2024-06-10")

	c := Classify([]*entities.GroceryItem{
		item("Milk", date("2024-06-08"), 2, 2.50),
		item("Bread", date("2024-06-09"), 1, 1.80),
		item("Rice", date("2024-06-20"), 3, 3.00),
	}, now)

	if c.TotalCost != 2*2.50+1*1.80 {
		t.Errorf("expected total cost 6.80, got %v", c.TotalCost)
	}
}

func TestClassifyTipsOrderAndUniqueness(t *testing.T) {
	now := *date("2024-06-10")

	c := Classify([]*entities.GroceryItem{
		item("Milk", date("2024-06-08"), 1, 2.50),
		item("Milk", date("2024-06-07"), 1, 2.50),
		item("Bread", date("2024-06-09"), 1, 1.80),
		item("Yogurt", date("2024-06-12"), 1, 1.20),
		item("Cheese", date("2024-06-15"), 1, 4.00),
	}, now)

	want := []string{
		"Consider buying less of: Milk, Bread",
		"Plan meals better to use up food before it expires.",
		"Store food properly to extend shelf life.",
	}
	if !reflect.DeepEqual(c.Tips, want) {
		t.Errorf("expected tips %v, got %v", want, c.Tips)
	}
}

func TestClassifyNoTipsWhenNothingAtRisk(t *testing.T) {
	now := *date("2024-06-10")

	c := Classify([]*entities.GroceryItem{
		item("Rice", date("2024-06-20"), 1, 3.00),
		item("Salt", nil, 1, 0.80),
	}, now)

	if len(c.Tips) != 0 {
		t.Errorf("expected no tips, got %v", c.Tips)
	}
}

func TestClassifyEmptyInventory(t *testing.T) {
	c := Classify(nil, *date("2024-06-10"))

	if c.Summary != (Summary{}) {
		t.Errorf("expected zero summary, got %+v", c.Summary)
	}
	if c.TotalCost != 0 {
		t.Errorf("expected zero cost, got %v", c.TotalCost)
	}
	if len(c.ExpiredItems) != 0 || len(c.Tips) != 0 {
		t.Errorf("expected no expired items or tips, got %+v", c)
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	now := *date("2024-06-10")
	items := []*entities.GroceryItem{
		item("Milk", date("2024-06-08"), 2, 2.50),
		item("Yogurt", date("2024-06-12"), 1, 1.20),
	}

	first := Classify(items, now)
	second := Classify(items, now)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestBucketForNilExpiry(t *testing.T) {
	if got := BucketFor(nil, *date("2024-06-10")); got != "" {
		t.Errorf("expected empty bucket, got %q", got)
	}
}
