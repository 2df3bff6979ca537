package fakestore

import "github.com/mmcdole/nador/internal/domain"

// MapProducts converts validated DTOs to domain products, preserving order
func MapProducts(dtos []Product) []domain.Product {
	products := make([]domain.Product, 0, len(dtos))
	for _, p := range dtos {
		products = append(products, mapProduct(p))
	}
	return products
}

func mapProduct(p Product) domain.Product {
	product := domain.Product{
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		Rating: domain.Rating{
			Rate:  p.Rating.Rate,
			Count: p.Rating.Count,
		},
	}
	if p.ID != nil {
		product.ID = *p.ID
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	return product
}
