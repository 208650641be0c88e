package models

// PurchaseRequest sells or reserves several numbers to one buyer.
type PurchaseRequest struct {
	Numbers       []int         `json:"numbers" binding:"required,min=1"`
	BuyerName     string        `json:"buyer_name" binding:"required"`
	BuyerPhone    string        `json:"buyer_phone" binding:"required"`
	PaymentMethod PaymentMethod `json:"payment_method" binding:"required"`
}

type PaymentUpdateRequest struct {
	PaymentMethod PaymentMethod `json:"payment_method" binding:"required"`
}

type BuyerUpdateRequest struct {
	BuyerName  string `json:"buyer_name" binding:"required"`
	BuyerPhone string `json:"buyer_phone" binding:"required"`
}

// WinnerRequest records a winner drawn outside the service. Empty winner
// fields are filled from the ticket.
type WinnerRequest struct {
	WinningNumber int    `json:"winning_number" binding:"required"`
	WinnerName    string `json:"winner_name"`
	WinnerPhone   string `json:"winner_phone"`
}
