package models

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"raffle-manager-backend/internal/common/validation"
)

// RaffleStatus is the lifecycle state of a raffle. Closed is terminal.
type RaffleStatus string

const (
	RaffleStatusOpen   RaffleStatus = "open"
	RaffleStatusClosed RaffleStatus = "closed"
)

// Raffle is the aggregate root: metadata, the number pool and the prize
// ledger form one consistency boundary. All mutations go through its methods.
type Raffle struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Country      Country         `json:"country"`
	TotalNumbers int             `json:"total_numbers"`
	NumberValue  decimal.Decimal `json:"number_value"`
	DrawDate     time.Time       `json:"draw_date"`
	CreatedAt    time.Time       `json:"created_at"`
	ClosedAt     *time.Time      `json:"closed_at,omitempty"`
	Status       RaffleStatus    `json:"status"`
	Numbers      []Ticket        `json:"numbers"`
	Prizes       []Prize         `json:"prizes"`
}

// RaffleCreate holds the configuration of a new raffle. Prizes are listed
// major prize first.
type RaffleCreate struct {
	Name         string          `json:"name" binding:"required"`
	CountryCode  string          `json:"country_code" binding:"required"`
	TotalNumbers int             `json:"total_numbers" binding:"required"`
	NumberValue  decimal.Decimal `json:"number_value"`
	DrawDate     time.Time       `json:"draw_date"`
	Prizes       []string        `json:"prizes" binding:"required"`
}

// Validate checks the configuration. Errors wrap ErrInvalidRequest.
func (c *RaffleCreate) Validate() error {
	if err := validation.ValidateRaffleName(c.Name); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if _, ok := CountryByCode(c.CountryCode); !ok {
		return fmt.Errorf("%w: unsupported country %q", ErrInvalidRequest, c.CountryCode)
	}
	if err := validation.ValidateTotalNumbers(c.TotalNumbers); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if !c.NumberValue.IsPositive() {
		return fmt.Errorf("%w: number value must be positive", ErrInvalidRequest)
	}
	if c.DrawDate.IsZero() {
		return fmt.Errorf("%w: draw date is required", ErrInvalidRequest)
	}
	if len(c.Prizes) == 0 {
		return fmt.Errorf("%w: at least one prize is required", ErrInvalidRequest)
	}
	if len(c.Prizes) > c.TotalNumbers {
		return fmt.Errorf("%w: %d prizes cannot be drawn from %d numbers", ErrInvalidRequest, len(c.Prizes), c.TotalNumbers)
	}
	for i, description := range c.Prizes {
		if err := validation.ValidatePrizeDescription(description); err != nil {
			return fmt.Errorf("%w: prize %d: %v", ErrInvalidRequest, i+1, err)
		}
	}
	return nil
}

// NewRaffle builds an open raffle with every number available and every
// prize unresolved. newID supplies prize identifiers.
func NewRaffle(id string, input *RaffleCreate, newID func() string, now time.Time) (*Raffle, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	country, _ := CountryByCode(input.CountryCode)

	numbers := make([]Ticket, input.TotalNumbers)
	for i := range numbers {
		numbers[i] = Ticket{ID: i + 1, Status: TicketStatusAvailable}
	}

	prizes := make([]Prize, len(input.Prizes))
	for i, description := range input.Prizes {
		prizes[i] = Prize{
			ID:          newID(),
			Description: strings.TrimSpace(description),
			Order:       i + 1,
		}
	}

	return &Raffle{
		ID:           id,
		Name:         strings.TrimSpace(input.Name),
		Country:      country,
		TotalNumbers: input.TotalNumbers,
		NumberValue:  input.NumberValue,
		DrawDate:     input.DrawDate.UTC(),
		CreatedAt:    now,
		Status:       RaffleStatusOpen,
		Numbers:      numbers,
		Prizes:       prizes,
	}, nil
}

// Clone returns a deep copy. Operations are applied to a clone so that a
// failed operation never leaves a half-mutated raffle behind.
func (r *Raffle) Clone() *Raffle {
	c := *r
	if r.ClosedAt != nil {
		closedAt := *r.ClosedAt
		c.ClosedAt = &closedAt
	}

	c.Numbers = make([]Ticket, len(r.Numbers))
	for i, t := range r.Numbers {
		if t.PurchaseDate != nil {
			purchasedAt := *t.PurchaseDate
			t.PurchaseDate = &purchasedAt
		}
		c.Numbers[i] = t
	}

	c.Prizes = make([]Prize, len(r.Prizes))
	for i, p := range r.Prizes {
		if p.WinningNumber != nil {
			n := *p.WinningNumber
			p.WinningNumber = &n
		}
		if p.DrawnAt != nil {
			drawnAt := *p.DrawnAt
			p.DrawnAt = &drawnAt
		}
		c.Prizes[i] = p
	}
	return &c
}

// Redacted returns a copy without buyer and winner phone numbers, for readers
// that are not admins.
func (r *Raffle) Redacted() *Raffle {
	c := r.Clone()
	for i := range c.Numbers {
		c.Numbers[i].BuyerPhone = ""
	}
	for i := range c.Prizes {
		c.Prizes[i] = c.Prizes[i].Public()
	}
	return c
}

// CheckIntegrity validates a raffle read back from storage. Ticket lookups
// index Numbers directly, so numbers must run 1..TotalNumbers in order.
func (r *Raffle) CheckIntegrity() error {
	if r.ID == "" {
		return fmt.Errorf("%w: missing id", ErrCorruptRaffle)
	}
	if r.Status != RaffleStatusOpen && r.Status != RaffleStatusClosed {
		return fmt.Errorf("%w: unknown status %q", ErrCorruptRaffle, r.Status)
	}
	if len(r.Numbers) != r.TotalNumbers {
		return fmt.Errorf("%w: %d numbers stored for a pool of %d", ErrCorruptRaffle, len(r.Numbers), r.TotalNumbers)
	}
	for i, t := range r.Numbers {
		if t.ID != i+1 {
			return fmt.Errorf("%w: position %d holds number %d", ErrCorruptRaffle, i+1, t.ID)
		}
		switch t.Status {
		case TicketStatusAvailable, TicketStatusPendingPayment, TicketStatusPurchased:
		default:
			return fmt.Errorf("%w: number %d has status %q", ErrCorruptRaffle, t.ID, t.Status)
		}
	}

	orders := make(map[int]bool, len(r.Prizes))
	for _, p := range r.Prizes {
		if orders[p.Order] {
			return fmt.Errorf("%w: prize order %d repeated", ErrCorruptRaffle, p.Order)
		}
		orders[p.Order] = true
		if p.WinningNumber != nil && (*p.WinningNumber < 1 || *p.WinningNumber > r.TotalNumbers) {
			return fmt.Errorf("%w: prize %d won by number %d", ErrCorruptRaffle, p.Order, *p.WinningNumber)
		}
	}
	return nil
}

func (r *Raffle) IsClosed() bool {
	return r.Status == RaffleStatusClosed
}

// ensureOpen guards every ticket mutation and every draw.
func (r *Raffle) ensureOpen() error {
	if r.IsClosed() {
		return ErrRaffleClosed
	}
	return nil
}

// canClose guards the Open -> Closed transition.
func (r *Raffle) canClose() error {
	return r.ensureOpen()
}

func (r *Raffle) close(at time.Time) {
	closedAt := at
	r.Status = RaffleStatusClosed
	r.ClosedAt = &closedAt
}

// Ticket returns the ticket with the given number.
func (r *Raffle) Ticket(id int) (*Ticket, error) {
	// Numbers[i].ID == i+1 for the raffle lifetime.
	if id < 1 || id > len(r.Numbers) {
		return nil, ErrTicketNotFound
	}
	return &r.Numbers[id-1], nil
}

// Purchase sells or reserves every ticket in ids to one buyer. Either all
// tickets change or none do.
func (r *Raffle) Purchase(ids []int, buyerName, buyerPhone string, method PaymentMethod, at time.Time) error {
	if err := r.ensureOpen(); err != nil {
		return err
	}
	if len(ids) == 0 {
		return ErrEmptyTicketSelection
	}
	if !method.IsValid() {
		return ErrInvalidPaymentMethod
	}
	buyerName, buyerPhone = strings.TrimSpace(buyerName), strings.TrimSpace(buyerPhone)
	if buyerName == "" || buyerPhone == "" {
		return ErrMissingBuyer
	}

	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if id < 1 || id > len(r.Numbers) {
			return fmt.Errorf("%w: %d", ErrInvalidTicketID, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateTicketID, id)
		}
		seen[id] = struct{}{}
		if !r.Numbers[id-1].IsAvailable() {
			return fmt.Errorf("%w: %d", ErrTicketNotAvailable, id)
		}
	}

	for _, id := range ids {
		r.Numbers[id-1].assign(buyerName, buyerPhone, method, at)
	}
	return nil
}

// UpdatePendingPayment settles a reserved ticket with cash or transfer.
func (r *Raffle) UpdatePendingPayment(id int, method PaymentMethod) error {
	if err := r.ensureOpen(); err != nil {
		return err
	}
	if !method.IsSettled() {
		return ErrInvalidPaymentMethod
	}
	ticket, err := r.Ticket(id)
	if err != nil {
		return err
	}
	if ticket.Status != TicketStatusPendingPayment {
		return ErrTicketNotPending
	}

	ticket.Status = TicketStatusPurchased
	ticket.PaymentMethod = method
	return nil
}

// UpdateBuyerDetails corrects the buyer recorded on a purchased ticket.
func (r *Raffle) UpdateBuyerDetails(id int, buyerName, buyerPhone string) error {
	if err := r.ensureOpen(); err != nil {
		return err
	}
	buyerName, buyerPhone = strings.TrimSpace(buyerName), strings.TrimSpace(buyerPhone)
	if buyerName == "" || buyerPhone == "" {
		return ErrMissingBuyer
	}
	ticket, err := r.Ticket(id)
	if err != nil {
		return err
	}
	if ticket.Status != TicketStatusPurchased {
		return ErrTicketNotPurchased
	}

	ticket.BuyerName = buyerName
	ticket.BuyerPhone = buyerPhone
	return nil
}

// CancelPurchase returns a sold or reserved ticket to the pool.
func (r *Raffle) CancelPurchase(id int) error {
	if err := r.ensureOpen(); err != nil {
		return err
	}
	ticket, err := r.Ticket(id)
	if err != nil {
		return err
	}
	if ticket.IsAvailable() {
		return ErrTicketAlreadyFree
	}
	if r.isWinner(id) {
		return ErrTicketIsWinner
	}

	ticket.release()
	return nil
}

func (r *Raffle) isWinner(id int) bool {
	for i := range r.Prizes {
		if n := r.Prizes[i].WinningNumber; n != nil && *n == id {
			return true
		}
	}
	return false
}

// EligibleNumbers lists purchased numbers with buyer info that have not won
// a prize yet, in ascending order.
func (r *Raffle) EligibleNumbers() []int {
	eligible := make([]int, 0)
	for i := range r.Numbers {
		t := &r.Numbers[i]
		if t.Status != TicketStatusPurchased || strings.TrimSpace(t.BuyerName) == "" {
			continue
		}
		if r.isWinner(t.ID) {
			continue
		}
		eligible = append(eligible, t.ID)
	}
	return eligible
}

// NextUnresolvedPrize returns the unresolved prize with the lowest order.
func (r *Raffle) NextUnresolvedPrize() (*Prize, error) {
	var next *Prize
	for i := range r.Prizes {
		p := &r.Prizes[i]
		if p.IsResolved() {
			continue
		}
		if next == nil || p.Order < next.Order {
			next = p
		}
	}
	if next == nil {
		return nil, ErrNoUnresolvedPrize
	}
	return next, nil
}

// Prize returns the prize with the given draw order.
func (r *Raffle) Prize(order int) (*Prize, error) {
	for i := range r.Prizes {
		if r.Prizes[i].Order == order {
			return &r.Prizes[i], nil
		}
	}
	return nil, ErrPrizeNotFound
}

// IsFullyDrawn reports whether every prize has a winning number.
func (r *Raffle) IsFullyDrawn() bool {
	for i := range r.Prizes {
		if !r.Prizes[i].IsResolved() {
			return false
		}
	}
	return true
}

// RecordPrizeWinner resolves the prize with the given order. Empty winner
// fields are taken from the ticket. Resolving the last prize closes the raffle.
func (r *Raffle) RecordPrizeWinner(order, winningNumber int, winnerName, winnerPhone string, at time.Time) error {
	if err := r.ensureOpen(); err != nil {
		return err
	}
	prize, err := r.Prize(order)
	if err != nil {
		return err
	}
	if prize.IsResolved() {
		return ErrPrizeAlreadyResolved
	}
	if winningNumber < 1 || winningNumber > len(r.Numbers) {
		return fmt.Errorf("%w: %d", ErrInvalidTicketID, winningNumber)
	}
	ticket := &r.Numbers[winningNumber-1]
	if ticket.Status != TicketStatusPurchased {
		return fmt.Errorf("%w: %d", ErrTicketNotPurchased, winningNumber)
	}
	if r.isWinner(winningNumber) {
		return fmt.Errorf("%w: %d", ErrTicketIsWinner, winningNumber)
	}

	if strings.TrimSpace(winnerName) == "" {
		winnerName = ticket.BuyerName
	}
	if strings.TrimSpace(winnerPhone) == "" {
		winnerPhone = ticket.BuyerPhone
	}
	prize.resolve(winningNumber, winnerName, winnerPhone, at)

	if r.IsFullyDrawn() {
		r.close(at)
	}
	return nil
}

// Close ends the raffle before every prize is drawn.
func (r *Raffle) Close(at time.Time) error {
	if err := r.canClose(); err != nil {
		return err
	}
	r.close(at)
	return nil
}

// Winners returns resolved prizes in draw order.
func (r *Raffle) Winners() []Prize {
	winners := make([]Prize, 0, len(r.Prizes))
	for _, p := range r.Prizes {
		if p.IsResolved() {
			winners = append(winners, p)
		}
	}
	sort.Slice(winners, func(i, j int) bool { return winners[i].Order < winners[j].Order })
	return winners
}

// RaffleSummary aggregates sales figures of a raffle.
type RaffleSummary struct {
	RaffleID        string          `json:"raffle_id"`
	Status          RaffleStatus    `json:"status"`
	TotalNumbers    int             `json:"total_numbers"`
	Available       int             `json:"available"`
	PendingPayment  int             `json:"pending_payment"`
	Purchased       int             `json:"purchased"`
	CollectedAmount decimal.Decimal `json:"collected_amount"`
	PendingAmount   decimal.Decimal `json:"pending_amount"`
	CurrencyCode    string          `json:"currency_code"`
	PrizesTotal     int             `json:"prizes_total"`
	PrizesResolved  int             `json:"prizes_resolved"`
}

func (r *Raffle) Summary() RaffleSummary {
	s := RaffleSummary{
		RaffleID:     r.ID,
		Status:       r.Status,
		TotalNumbers: r.TotalNumbers,
		CurrencyCode: r.Country.CurrencyCode,
		PrizesTotal:  len(r.Prizes),
	}
	for i := range r.Numbers {
		switch r.Numbers[i].Status {
		case TicketStatusAvailable:
			s.Available++
		case TicketStatusPendingPayment:
			s.PendingPayment++
		case TicketStatusPurchased:
			s.Purchased++
		}
	}
	for i := range r.Prizes {
		if r.Prizes[i].IsResolved() {
			s.PrizesResolved++
		}
	}
	s.CollectedAmount = r.NumberValue.Mul(decimal.NewFromInt(int64(s.Purchased)))
	s.PendingAmount = r.NumberValue.Mul(decimal.NewFromInt(int64(s.PendingPayment)))
	return s
}
