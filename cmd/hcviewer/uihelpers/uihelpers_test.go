package uihelpers

import "testing"

func TestComputeChartDimensions(t *testing.T) {
	cases := []struct {
		rawW  int
		wantW int
		wantH int
	}{
		{0, 700, 437},
		{500, 700, 437},
		{700, 700, 437},
		{1100, 1100, 687},
		{1300, 1300, 760},
		{3000, 3000, 760},
	}
	for _, c := range cases {
		w, h := ComputeChartDimensions(c.rawW)
		if w != c.wantW || h != c.wantH {
			t.Fatalf("ComputeChartDimensions(%d) = (%d,%d), want (%d,%d)", c.rawW, w, h, c.wantW, c.wantH)
		}
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		v        float64
		decimals int
		want     string
	}{
		{20.0, 1, "20"},
		{20.5, 1, "20.5"},
		{1.0, 2, "1.00"},
		{1.35, 2, "1.35"},
		{-7, 0, "-7"},
	}
	for _, c := range cases {
		if got := FormatValue(c.v, c.decimals); got != c.want {
			t.Fatalf("FormatValue(%v,%d) = %q, want %q", c.v, c.decimals, got, c.want)
		}
	}
}

func TestParseValue(t *testing.T) {
	if v, err := ParseValue(" 21.5 "); err != nil || v != 21.5 {
		t.Fatalf("ParseValue(\" 21.5 \") = %v, %v", v, err)
	}
	if v, err := ParseValue("21,5"); err != nil || v != 21.5 {
		t.Fatalf("ParseValue(\"21,5\") = %v, %v", v, err)
	}
	if _, err := ParseValue("warm"); err == nil {
		t.Fatalf("ParseValue(\"warm\") should fail")
	}
	if _, err := ParseValue("NaN"); err == nil {
		t.Fatalf("ParseValue(\"NaN\") should fail")
	}
}
