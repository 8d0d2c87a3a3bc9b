package handler

import "github.com/qkart/commerce-api/internal/core/domain"

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Cost:      p.Cost,
		Rating:    p.Rating,
		ImageLink: p.ImageLink,
	}
}

func toCartItemResponses(items []domain.CartItem) []cartItemResponse {
	out := make([]cartItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, cartItemResponse{
			Product:  toProductResponse(item.Product),
			Quantity: item.Quantity,
		})
	}
	return out
}

func toCartResponse(cart *domain.Cart) cartResponse {
	return cartResponse{
		Email:     cart.Email,
		CartItems: toCartItemResponses(cart.Items),
	}
}

func toOrderResponse(order domain.Order) orderResponse {
	return orderResponse{
		ID:        order.ID,
		Items:     toCartItemResponses(order.Items),
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
	}
}
