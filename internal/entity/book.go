package entity

import "time"

type Book struct {
	ID            string    `json:"id"`
	Name          string    `json:"book_name"`
	Author        string    `json:"book_author"`
	Category      string    `json:"book_category"`
	Rating        float64   `json:"book_rating"`
	Quantity      int       `json:"book_quantity"`
	Description   string    `json:"book_description"`
	Image         string    `json:"book_image"`
	StaticContent string    `json:"static_content"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
