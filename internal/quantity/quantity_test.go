package quantity

import "testing"

func TestParse(t *testing.T) {
	t.Run("WholeAmount", func(t *testing.T) {
		q, err := Parse("200")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if q != FromInt(200) {
			t.Errorf("Expected 200 units, got %s", q)
		}
	})

	t.Run("FractionalAmount", func(t *testing.T) {
		q, err := Parse("0.5")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if q.Milli() != 500 {
			t.Errorf("Expected 500 thousandths, got %d", q.Milli())
		}
	})

	t.Run("CommaDecimalSeparator", func(t *testing.T) {
		q, err := Parse("1,5")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if q.Milli() != 1500 {
			t.Errorf("Expected 1500 thousandths, got %d", q.Milli())
		}
	})

	t.Run("BareFraction", func(t *testing.T) {
		q, err := Parse(".25")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if q.Milli() != 250 {
			t.Errorf("Expected 250 thousandths, got %d", q.Milli())
		}
	})

	t.Run("Negative", func(t *testing.T) {
		if _, err := Parse("-1"); err == nil {
			t.Error("Expected error for negative amount, got nil")
		}
	})

	t.Run("TooPrecise", func(t *testing.T) {
		if _, err := Parse("0.0001"); err == nil {
			t.Error("Expected error for four fractional digits, got nil")
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := Parse("two"); err == nil {
			t.Error("Expected error for non-numeric amount, got nil")
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if _, err := Parse(""); err == nil {
			t.Error("Expected error for empty amount, got nil")
		}
	})
}

func TestAddIsExact(t *testing.T) {
	tenth, err := Parse("0.1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	fifth, err := Parse("0.2")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := tenth.Add(fifth).String(); got != "0.3" {
		t.Errorf("Expected 0.1 + 0.2 = 0.3, got %s", got)
	}

	var sum Quantity
	for i := 0; i < 10; i++ {
		sum = sum.Add(tenth)
	}
	if got := sum.String(); got != "1" {
		t.Errorf("Expected ten times 0.1 = 1, got %s", got)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		milli int64
		want  string
	}{
		{2000, "2"},
		{500, "0.5"},
		{1500, "1.5"},
		{1250, "1.25"},
		{1001, "1.001"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := FromMilli(tt.milli).String(); got != tt.want {
			t.Errorf("Expected %s for %d thousandths, got %s", tt.want, tt.milli, got)
		}
	}
}
