package domain

import (
	"errors"
	"testing"
)

func p(id string, cost float64) Product {
	return Product{ID: id, Name: "product-" + id, Cost: cost}
}

func TestCart_AddItem_Unique(t *testing.T) {
	cart := NewCart("alice@example.com")

	if err := cart.AddItem(p("p1", 100), 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := cart.AddItem(p("p1", 100), 1); !errors.Is(err, ErrProductInCart) {
		t.Fatalf("expected ErrProductInCart, got %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(cart.Items))
	}
}

func TestCart_AddItem_SnapshotsPrice(t *testing.T) {
	cart := NewCart("alice@example.com")
	catalog := p("p1", 100)

	if err := cart.AddItem(catalog, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// A later catalog price change must not affect the stored line item.
	catalog.Cost = 999
	if cart.Items[0].Product.Cost != 100 {
		t.Fatalf("expected snapshot cost 100, got %v", cart.Items[0].Product.Cost)
	}
}

func TestCart_SetQuantity_ZeroRemoves(t *testing.T) {
	cart := NewCart("alice@example.com")
	_ = cart.AddItem(p("p1", 100), 2)
	_ = cart.AddItem(p("p2", 50), 1)

	if err := cart.SetQuantity("p1", 0); err != nil {
		t.Fatalf("set quantity to zero failed: %v", err)
	}
	if cart.FindItem("p1") >= 0 {
		t.Fatal("p1 should be absent after quantity set to zero")
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 remaining item, got %d", len(cart.Items))
	}
}

func TestCart_SetQuantity_ReplacesQuantityOnly(t *testing.T) {
	cart := NewCart("alice@example.com")
	_ = cart.AddItem(p("p1", 100), 2)

	if err := cart.SetQuantity("p1", 7); err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if cart.Items[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", cart.Items[0].Quantity)
	}
	if cart.Items[0].Product.Cost != 100 {
		t.Fatal("product snapshot must not change on quantity update")
	}
}

func TestCart_SetQuantity_NotInCart(t *testing.T) {
	cart := NewCart("alice@example.com")
	if err := cart.SetQuantity("ghost", 1); !errors.Is(err, ErrProductNotInCart) {
		t.Fatalf("expected ErrProductNotInCart, got %v", err)
	}
}

func TestCart_RemoveItem(t *testing.T) {
	cart := NewCart("alice@example.com")
	_ = cart.AddItem(p("p1", 100), 1)

	if err := cart.RemoveItem("p1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatal("cart should be empty after removing the only item")
	}
	if err := cart.RemoveItem("p1"); !errors.Is(err, ErrProductNotInCart) {
		t.Fatalf("second remove must be rejected, got %v", err)
	}
}

func TestCart_Total(t *testing.T) {
	cart := NewCart("alice@example.com")
	_ = cart.AddItem(p("p1", 100), 2)
	_ = cart.AddItem(p("p2", 50), 1)

	if got := cart.Total(); got != 250 {
		t.Fatalf("expected total 250, got %v", got)
	}
}

func TestSameID_Normalization(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"60d5ec49f1b2c72b8c8b4567", "60d5ec49f1b2c72b8c8b4567", true},
		{" 60d5ec49f1b2c72b8c8b4567 ", "60d5ec49f1b2c72b8c8b4567", true},
		{"60D5EC49F1B2C72B8C8B4567", "60d5ec49f1b2c72b8c8b4567", true},
		{"60d5ec49f1b2c72b8c8b4567", "60d5ec49f1b2c72b8c8b4568", false},
		{"", "60d5ec49f1b2c72b8c8b4567", false},
	}
	for _, tc := range cases {
		if got := SameID(tc.a, tc.b); got != tc.want {
			t.Errorf("SameID(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestUser_HasAddress(t *testing.T) {
	u := &User{}
	if u.HasAddress() {
		t.Fatal("new user must not have an address")
	}
	u.Address = "221B Baker Street, London"
	if !u.HasAddress() {
		t.Fatal("expected HasAddress after setting one")
	}
}
