package mockapi

import (
	"time"

	"bookcatalog/internal/domain/entity"
)

func ptr(v float64) *float64 { return &v }

// SeedProducts is the catalog served by the development backend.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{
			ID:          "68a1f0c2b5d4a11fe09b3301",
			Title:       "MongoDB: The Definitive Guide",
			Author:      "Shannon Bradshaw",
			Description: "The definitive guide to MongoDB, from core concepts to advanced architectures.",
			Category:    "MongoDB",
			ImageURL:    "https://m.media-amazon.com/images/I/91hgdExbtiL._SL1500_.jpg",
			ISBN:        "978-1491954461",
			Price:       39.99,
			Stock:       25,
			Rating:      ptr(4.6),
			ReviewCount: 214,
			CreatedAt:   time.Date(2019, 12, 5, 0, 0, 0, 0, time.UTC),
			Specifications: entity.Specifications{
				Publisher: "O'Reilly Media",
				Pages:     512,
				Year:      2019,
			},
		},
		{
			ID:            "68a1f0c2b5d4a11fe09b3302",
			Title:         "Node.js Design Patterns",
			Author:        "Mario Casciaro",
			Description:   "Design and implement production-grade Node.js applications.",
			Category:      "Node.js",
			ImageURL:      "https://m.media-amazon.com/images/I/81VNVzgEe-L._SL1500_.jpg",
			ISBN:          "978-1839214110",
			Price:         49.99,
			DiscountPrice: ptr(34.99),
			Stock:         12,
			Rating:        ptr(4.7),
			ReviewCount:   540,
			Featured:      true,
			CreatedAt:     time.Date(2020, 7, 29, 0, 0, 0, 0, time.UTC),
			Specifications: entity.Specifications{
				Publisher: "Packt Publishing",
				Pages:     664,
				Year:      2020,
			},
		},
		{
			ID:          "68a1f0c2b5d4a11fe09b3303",
			Title:       "Learning React",
			Author:      "Alex Banks",
			Description: "Modern patterns for developing React apps.",
			Category:    "React",
			ImageURL:    "https://m.media-amazon.com/images/I/91LiodyDxoL._SL1500_.jpg",
			ISBN:        "978-1492051725",
			Price:       45.50,
			Stock:       0,
			Rating:      ptr(4.4),
			ReviewCount: 318,
			CreatedAt:   time.Date(2020, 6, 12, 0, 0, 0, 0, time.UTC),
			Specifications: entity.Specifications{
				Publisher: "O'Reilly Media",
				Pages:     310,
				Year:      2020,
			},
		},
		{
			ID:            "68a1f0c2b5d4a11fe09b3304",
			Title:         "Express in Action",
			Author:        "Evan Hahn",
			Description:   "Writing, building, and testing Node.js applications with Express.",
			Category:      "Node.js",
			ImageURL:      "https://m.media-amazon.com/images/I/71sMfVcb5hL._SL1254_.jpg",
			ISBN:          "978-1617292422",
			Price:         38.00,
			DiscountPrice: ptr(29.00),
			Stock:         8,
			Featured:      true,
			CreatedAt:     time.Date(2016, 4, 1, 0, 0, 0, 0, time.UTC),
			Specifications: entity.Specifications{
				Publisher: "Manning",
				Pages:     256,
				Year:      2016,
			},
		},
	}
}
