package entity

import "time"

// BorrowRecord links a patron to a book for the duration of a loan.
// BookID is a plain reference, not a foreign key; the book may be
// deleted while the loan is live.
type BorrowRecord struct {
	ID            string    `json:"id"`
	BorrowerEmail string    `json:"borrower_email"`
	BorrowerName  string    `json:"borrower_name"`
	BookID        string    `json:"book_id"`
	BookName      string    `json:"book_name"`
	CreatedAt     time.Time `json:"created_at"`
}
