package extract

import "testing"

func TestNormalizeCell(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"$1,234.56", 1234.56},
		{"(500)", 500},
		{"1,000", 1000},
		{"  $2,500,000  ", 2500000},
		{"($12,300)", 12300},
		{"-750", 750}, // sign discarded, magnitude kept
		{"", 0},
		{"-", 0},
		{"n/a", 0},
		{"see note 4", 0},
	}

	for _, c := range cases {
		got := NormalizeCell(c.in)
		if got != c.want {
			t.Errorf("NormalizeCell(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNormalizeRowPadsAndTruncates(t *testing.T) {
	// Shorter than n: zero-padded
	row := NormalizeRow([]string{"100", "200"}, 4)
	if len(row) != 4 {
		t.Fatalf("expected 4 values, got %d", len(row))
	}
	if row[2] != 0 || row[3] != 0 {
		t.Errorf("expected zero padding, got %v", row)
	}

	// Longer than n: truncated
	row = NormalizeRow([]string{"1", "2", "3", "4", "5"}, 3)
	if len(row) != 3 {
		t.Fatalf("expected 3 values, got %d", len(row))
	}
	if row[2] != 3 {
		t.Errorf("expected third value 3, got %v", row[2])
	}
}
