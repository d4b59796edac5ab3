package exchange

import "testing"

func TestDetectHyperliquid(t *testing.T) {
	got := Detect([]string{"Sz", "Px", "Coin"})
	if got != Hyperliquid {
		t.Errorf("Expected hyperliquid, got %s", got)
	}
}

func TestDetectBybit(t *testing.T) {
	got := Detect([]string{"Contracts", "Closing Direction", "Closed P&L", "Qty"})
	if got != Bybit {
		t.Errorf("Expected bybit, got %s", got)
	}
}

func TestDetectBinance(t *testing.T) {
	got := Detect([]string{"Date(UTC)", "Symbol", "Side", "Position Side", "Price", "Realized Profit"})
	if got != Binance {
		t.Errorf("Expected binance, got %s", got)
	}
}

func TestDetectBlofin(t *testing.T) {
	got := Detect([]string{"Instrument", "instId", "Side", "Price"})
	if got != Blofin {
		t.Errorf("Expected blofin, got %s", got)
	}
}

func TestDetectUnknownFallsBackToGeneric(t *testing.T) {
	got := Detect([]string{"Foo", "Bar", "Baz"})
	if got != Generic {
		t.Errorf("Expected generic, got %s", got)
	}

	if got := Detect(nil); got != Generic {
		t.Errorf("Expected generic for empty headers, got %s", got)
	}
}

// Earlier signatures take precedence when headers could match more than one
// exchange.
func TestDetectPriorityOrder(t *testing.T) {
	got := Detect([]string{"Coin", "Contracts", "Position Side", "Instrument"})
	if got != Hyperliquid {
		t.Errorf("Expected hyperliquid to win on priority, got %s", got)
	}

	got = Detect([]string{"Contracts", "Position Side", "Instrument"})
	if got != Bybit {
		t.Errorf("Expected bybit to win over binance and blofin, got %s", got)
	}
}

func TestLookupUnknownReturnsGeneric(t *testing.T) {
	cfg := Lookup("krakenfutures")
	if cfg.ID != Generic {
		t.Errorf("Expected generic fallback, got %s", cfg.ID)
	}
	if cfg.MapRow == nil {
		t.Fatal("Expected fallback config to carry a mapper")
	}
}

func TestAllIsSortedAndComplete(t *testing.T) {
	all := All()
	if len(all) != 5 {
		t.Fatalf("Expected 5 catalog entries, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Errorf("Catalog not sorted: %s before %s", all[i-1].ID, all[i].ID)
		}
	}
	for _, c := range all {
		if c.DisplayName == "" || len(c.SampleColumns) == 0 {
			t.Errorf("Catalog entry %s missing metadata", c.ID)
		}
	}
}
