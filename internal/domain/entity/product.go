package entity

import (
	"time"
)

type Specifications struct {
	Publisher string `json:"publisher"`
	Pages     int    `json:"pages"`
	Year      int    `json:"year"`
}

type Product struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Author         string         `json:"author"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	ImageURL       string         `json:"imageUrl"`
	ISBN           string         `json:"isbn,omitempty"`
	Price          float64        `json:"price"`
	DiscountPrice  *float64       `json:"discountPrice,omitempty"`
	Stock          int            `json:"stock"`
	Rating         *float64       `json:"rating,omitempty"`
	ReviewCount    int            `json:"reviewCount,omitempty"`
	Featured       bool           `json:"featured,omitempty"`
	CreatedAt      time.Time      `json:"createdAt,omitempty"`
	Specifications Specifications `json:"specifications"`
}

// EffectivePrice is the price used for filtering and sorting: the discounted
// price when one is set, the list price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// RatingValue treats an absent rating as zero.
func (p Product) RatingValue() float64 {
	if p.Rating != nil {
		return *p.Rating
	}
	return 0
}
