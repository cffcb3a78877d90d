package fundfx

import (
	"errors"
	"testing"
)

func TestJoin(t *testing.T) {
	prices := []PricePoint{
		pp("2024-01-02", "100"),
		pp("2024-01-03", "101"),
		pp("2024-01-06", "102"), // a Saturday, no FX close
	}
	rates := []FxRate{
		fx("2024-01-02", "30"),
		fx("2024-01-03", "30.5"),
	}

	records, err := Join(prices, rates)
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	if len(records) != len(prices) {
		t.Fatalf("Join() returned %d records, want %d", len(records), len(prices))
	}
	for i, rec := range records {
		if rec.Date != prices[i].Date {
			t.Errorf("record %d out of order: %v, want %v", i, rec.Date, prices[i].Date)
		}
		if rec.USDPrice != nil || rec.ReturnToLast != nil || rec.Annualized != nil {
			t.Errorf("record %d has derived fields populated at join time", i)
		}
	}
	if records[0].FxClose == nil || !records[0].FxClose.Equal(dec("30")) {
		t.Errorf("record 0 FxClose = %v, want 30", records[0].FxClose)
	}
	if records[2].FxClose != nil {
		t.Errorf("record 2 FxClose = %v, want absent", records[2].FxClose)
	}
}

func TestJoinDuplicateFxDate(t *testing.T) {
	rates := []FxRate{
		fx("2024-01-02", "30"),
		fx("2024-01-02", "31"),
	}
	_, err := Join([]PricePoint{pp("2024-01-02", "100")}, rates)
	if !errors.Is(err, ErrDataIntegrity) {
		t.Errorf("Join() error = %v, want ErrDataIntegrity", err)
	}
}

func TestDeriveUSDPrice(t *testing.T) {
	records, err := Join(
		[]PricePoint{pp("2024-01-02", "100"), pp("2024-01-03", "100"), pp("2024-01-04", "100")},
		[]FxRate{fx("2024-01-02", "30"), fx("2024-01-03", "0")},
	)
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	records = DeriveUSDPrice(records)

	if usd := records[0].USDPrice; usd == nil || !usd.Round(4).Equal(dec("3.3333")) {
		t.Errorf("USDPrice = %v, want 3.3333", records[0].USDPrice)
	}
	if records[1].USDPrice != nil {
		t.Errorf("USDPrice with zero close = %v, want absent", records[1].USDPrice)
	}
	if records[2].USDPrice != nil {
		t.Errorf("USDPrice with absent close = %v, want absent", records[2].USDPrice)
	}
}

// TestDeriveUSDPriceRoundTrip asserts that the conversion is invertible
// within the presentation rounding tolerance.
func TestDeriveUSDPriceRoundTrip(t *testing.T) {
	records, err := Join(
		[]PricePoint{pp("2024-01-02", "12.345678")},
		[]FxRate{fx("2024-01-02", "32.8125")},
	)
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	records = DeriveUSDPrice(records)

	back := records[0].USDPrice.Mul(*records[0].FxClose)
	diff := back.Sub(records[0].Price).Abs()
	if diff.GreaterThan(dec("0.0001")) {
		t.Errorf("usd*fx = %v, want %v within 0.0001", back, records[0].Price)
	}
}

// TestDeriveReturnToLast reproduces the two-row scenario: prices 100
// and 110 with closes 30 and 32 give USD prices 3.3333 and 3.4375, a
// +3.13% return for the older row and zero for the latest.
func TestDeriveReturnToLast(t *testing.T) {
	records, err := Join(
		[]PricePoint{pp("2024-01-02", "100"), pp("2024-01-03", "110")},
		[]FxRate{fx("2024-01-02", "30"), fx("2024-01-03", "32")},
	)
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	records = DeriveReturnToLast(DeriveUSDPrice(records))

	if ret := records[0].ReturnToLast; ret == nil || !ret.Round(4).Equal(dec("0.0313")) {
		t.Errorf("ReturnToLast[0] = %v, want 0.0313", records[0].ReturnToLast)
	}
	if ret := records[1].ReturnToLast; ret == nil || !ret.IsZero() {
		t.Errorf("ReturnToLast[1] = %v, want 0", records[1].ReturnToLast)
	}
}

// TestDeriveReturnToLastSkipsTrailingGap asserts that the reference
// price is the last *valid* one, not the last row: a trailing row with
// no FX close keeps the previous valid price as reference.
func TestDeriveReturnToLastSkipsTrailingGap(t *testing.T) {
	records, err := Join(
		[]PricePoint{pp("2024-01-02", "100"), pp("2024-01-03", "110"), pp("2024-01-06", "111")},
		[]FxRate{fx("2024-01-02", "30"), fx("2024-01-03", "32")},
	)
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	records = DeriveReturnToLast(DeriveUSDPrice(records))

	if ret := records[1].ReturnToLast; ret == nil || !ret.IsZero() {
		t.Errorf("ReturnToLast for last valid row = %v, want 0", records[1].ReturnToLast)
	}
	if records[2].ReturnToLast != nil {
		t.Errorf("ReturnToLast for FX-less row = %v, want absent", records[2].ReturnToLast)
	}
}

// TestDeriveReturnToLastNoReference asserts that a table with no usable
// reference price yields all-absent returns and no error: not enough
// data yet is an expected state, not an exceptional one.
func TestDeriveReturnToLastNoReference(t *testing.T) {
	records, err := Join(
		[]PricePoint{pp("2024-01-06", "100"), pp("2024-01-07", "110")},
		nil,
	)
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	records = DeriveReturnToLast(DeriveUSDPrice(records))
	for i, rec := range records {
		if rec.ReturnToLast != nil {
			t.Errorf("ReturnToLast[%d] = %v, want absent", i, rec.ReturnToLast)
		}
	}
}

func TestDeriveAnnualized(t *testing.T) {
	prices := []PricePoint{
		pp("2024-01-02", "100"), // 120 holding days: annualized
		pp("2024-04-11", "105"), // 20 holding days: too short
		pp("2024-05-01", "110"), // final date: clamped to 1 day, too short
	}
	rates := []FxRate{
		fx("2024-01-02", "30"),
		fx("2024-04-11", "31"),
		fx("2024-05-01", "32"),
	}
	records, err := Join(prices, rates)
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	records = DeriveAnnualized(DeriveReturnToLast(DeriveUSDPrice(records)))

	if records[0].HoldingDays != 120 {
		t.Errorf("HoldingDays[0] = %d, want 120", records[0].HoldingDays)
	}
	if records[0].Annualized == nil {
		t.Fatalf("Annualized[0] absent, want present for %d holding days", records[0].HoldingDays)
	}
	// return over 120 days: (110/32)/(100/30)-1 = 0.03125; annualized:
	// 1.03125^(365/120)-1 ~= 0.0981
	if got := records[0].Annualized.Round(4); !got.Equal(dec("0.0981")) {
		t.Errorf("Annualized[0] = %v, want 0.0981", got)
	}

	if records[1].HoldingDays != 20 {
		t.Errorf("HoldingDays[1] = %d, want 20", records[1].HoldingDays)
	}
	if records[1].Annualized != nil {
		t.Errorf("Annualized[1] = %v, want absent below %d days", records[1].Annualized, MinAnnualizeDays)
	}

	if records[2].HoldingDays != 1 {
		t.Errorf("HoldingDays[2] = %d, want clamped to 1", records[2].HoldingDays)
	}
	if records[2].Annualized != nil {
		t.Errorf("Annualized[2] = %v, want absent", records[2].Annualized)
	}
}

// TestDeriveAnnualizedAbsentReturn asserts ReturnToLast absent implies
// Annualized absent, whatever the holding period.
func TestDeriveAnnualizedAbsentReturn(t *testing.T) {
	records, err := Join(
		[]PricePoint{pp("2023-01-02", "100"), pp("2024-01-02", "110")},
		nil, // no FX at all: no returns
	)
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	records = DeriveAnnualized(DeriveReturnToLast(DeriveUSDPrice(records)))
	if records[0].HoldingDays != 365 {
		t.Errorf("HoldingDays[0] = %d, want 365", records[0].HoldingDays)
	}
	if records[0].Annualized != nil {
		t.Errorf("Annualized[0] = %v, want absent without a return", records[0].Annualized)
	}
}

func TestDeriveAnnualizedEmpty(t *testing.T) {
	if got := DeriveAnnualized(nil); len(got) != 0 {
		t.Errorf("DeriveAnnualized(nil) = %v, want empty", got)
	}
}
