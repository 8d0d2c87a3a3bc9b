package domain

// CartItem is a single cart line: a product snapshot paired with a positive
// quantity. The snapshot pins the price at add time.
type CartItem struct {
	Product  Product `json:"product" bson:"product"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

// Cart is the per-user mutable collection of line items awaiting checkout.
// Exactly one cart exists per user (keyed by email) and no two items may
// reference the same product identity.
type Cart struct {
	Email string     `json:"email" bson:"email"`
	Items []CartItem `json:"cartItems" bson:"cart_items"`
}

// NewCart returns an empty cart owned by the given user.
func NewCart(email string) *Cart {
	return &Cart{Email: email, Items: []CartItem{}}
}

// FindItem returns the index of the line item referencing productID, or -1.
func (c *Cart) FindItem(productID string) int {
	for i, item := range c.Items {
		if SameID(item.Product.ID, productID) {
			return i
		}
	}
	return -1
}

// AddItem appends a new line item with a snapshot of p. Adding a product that
// is already in the cart fails with ErrProductInCart; callers are expected to
// update the existing item instead.
func (c *Cart) AddItem(p Product, quantity int) error {
	if c.FindItem(p.ID) >= 0 {
		return ErrProductInCart
	}
	c.Items = append(c.Items, CartItem{Product: p, Quantity: quantity})
	return nil
}

// SetQuantity replaces the quantity of an existing line item. A quantity of
// zero removes the item entirely; a zero-quantity line is never stored.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	i := c.FindItem(productID)
	if i < 0 {
		return ErrProductNotInCart
	}
	if quantity == 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return nil
	}
	c.Items[i].Quantity = quantity
	return nil
}

// RemoveItem filters out the line item referencing productID. Removing a
// product that is not in the cart is rejected, never a silent no-op.
func (c *Cart) RemoveItem(productID string) error {
	i := c.FindItem(productID)
	if i < 0 {
		return ErrProductNotInCart
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return nil
}

// Clear drops all line items. An empty cart is the valid post-checkout state.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total computes the checkout total from the snapshots stored in the cart.
// The live catalog is never consulted here: price at add time wins.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += float64(item.Quantity) * item.Product.Cost
	}
	return total
}
