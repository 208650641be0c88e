package models

import "time"

// TicketStatus is the sale state of a single raffle number.
type TicketStatus string

const (
	TicketStatusAvailable      TicketStatus = "available"
	TicketStatusPendingPayment TicketStatus = "pending_payment" // reserved, money not received yet
	TicketStatusPurchased      TicketStatus = "purchased"
)

// PaymentMethod records how a ticket was (or will be) paid.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodPending  PaymentMethod = "pending"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodTransfer, PaymentMethodPending:
		return true
	}
	return false
}

// IsSettled reports whether money for the ticket has been received.
func (m PaymentMethod) IsSettled() bool {
	return m == PaymentMethodCash || m == PaymentMethodTransfer
}

// Ticket is one raffle number. ID never changes after the raffle is created.
type Ticket struct {
	ID            int           `json:"id"`
	Status        TicketStatus  `json:"status"`
	BuyerName     string        `json:"buyer_name,omitempty"`
	BuyerPhone    string        `json:"buyer_phone,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	PurchaseDate  *time.Time    `json:"purchase_date,omitempty"`
}

func (t *Ticket) IsAvailable() bool {
	return t.Status == TicketStatusAvailable
}

func (t *Ticket) assign(buyerName, buyerPhone string, method PaymentMethod, at time.Time) {
	t.Status = TicketStatusPurchased
	if method == PaymentMethodPending {
		t.Status = TicketStatusPendingPayment
	}
	t.BuyerName = buyerName
	t.BuyerPhone = buyerPhone
	t.PaymentMethod = method
	purchasedAt := at
	t.PurchaseDate = &purchasedAt
}

func (t *Ticket) release() {
	t.Status = TicketStatusAvailable
	t.BuyerName = ""
	t.BuyerPhone = ""
	t.PaymentMethod = ""
	t.PurchaseDate = nil
}
