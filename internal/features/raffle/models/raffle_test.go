package models

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("prize-%d", n)
	}
}

func validCreate() *RaffleCreate {
	return &RaffleCreate{
		Name:         "Spring raffle",
		CountryCode:  "mx",
		TotalNumbers: 10,
		NumberValue:  decimal.RequireFromString("50.00"),
		DrawDate:     testNow.Add(30 * 24 * time.Hour),
		Prizes:       []string{"Television", "Bicycle"},
	}
}

func newTestRaffle(t *testing.T) *Raffle {
	t.Helper()
	r, err := NewRaffle("raffle-1", validCreate(), sequentialIDs(), testNow)
	require.NoError(t, err)
	return r
}

func TestNewRaffle_FreshPool(t *testing.T) {
	r := newTestRaffle(t)

	assert.Equal(t, RaffleStatusOpen, r.Status)
	assert.Equal(t, "MX", r.Country.Code)
	assert.Equal(t, "MXN", r.Country.CurrencyCode)
	require.Len(t, r.Numbers, 10)
	for i, ticket := range r.Numbers {
		assert.Equal(t, i+1, ticket.ID)
		assert.Equal(t, TicketStatusAvailable, ticket.Status)
		assert.Empty(t, ticket.BuyerName)
		assert.Nil(t, ticket.PurchaseDate)
	}

	require.Len(t, r.Prizes, 2)
	assert.Equal(t, "prize-1", r.Prizes[0].ID)
	assert.Equal(t, 1, r.Prizes[0].Order)
	assert.Equal(t, "Bicycle", r.Prizes[1].Description)
	assert.Equal(t, 2, r.Prizes[1].Order)
	assert.False(t, r.Prizes[0].IsResolved())
}

func TestRaffleCreate_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *RaffleCreate)
	}{
		{"empty name", func(c *RaffleCreate) { c.Name = "  " }},
		{"unknown country", func(c *RaffleCreate) { c.CountryCode = "ZZ" }},
		{"no numbers", func(c *RaffleCreate) { c.TotalNumbers = 0 }},
		{"too many numbers", func(c *RaffleCreate) { c.TotalNumbers = 10001 }},
		{"zero price", func(c *RaffleCreate) { c.NumberValue = decimal.Zero }},
		{"missing draw date", func(c *RaffleCreate) { c.DrawDate = time.Time{} }},
		{"no prizes", func(c *RaffleCreate) { c.Prizes = nil }},
		{"more prizes than numbers", func(c *RaffleCreate) { c.TotalNumbers = 1 }},
		{"blank prize", func(c *RaffleCreate) { c.Prizes = []string{"TV", ""} }},
	}

	require.NoError(t, validCreate().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCreate()
			tt.mutate(c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidRequest)
		})
	}
}

func TestRaffle_PurchaseSettled(t *testing.T) {
	r := newTestRaffle(t)

	require.NoError(t, r.Purchase([]int{1, 2, 3}, "Ana", "555", PaymentMethodCash, testNow))

	for _, id := range []int{1, 2, 3} {
		ticket := r.Numbers[id-1]
		assert.Equal(t, TicketStatusPurchased, ticket.Status)
		assert.Equal(t, PaymentMethodCash, ticket.PaymentMethod)
		assert.Equal(t, "Ana", ticket.BuyerName)
		assert.Equal(t, "555", ticket.BuyerPhone)
		require.NotNil(t, ticket.PurchaseDate)
		assert.True(t, ticket.PurchaseDate.Equal(testNow))
	}
	for _, ticket := range r.Numbers[3:] {
		assert.Equal(t, TicketStatusAvailable, ticket.Status)
	}
}

func TestRaffle_PurchasePending(t *testing.T) {
	r := newTestRaffle(t)

	require.NoError(t, r.Purchase([]int{5}, "Luis", "555-0101", PaymentMethodPending, testNow))

	assert.Equal(t, TicketStatusPendingPayment, r.Numbers[4].Status)
	assert.Equal(t, PaymentMethodPending, r.Numbers[4].PaymentMethod)
	assert.Empty(t, r.EligibleNumbers(), "pending tickets cannot win")
}

func TestRaffle_PurchaseAllOrNothing(t *testing.T) {
	r := newTestRaffle(t)
	require.NoError(t, r.Purchase([]int{2}, "Ana", "555", PaymentMethodCash, testNow))
	before := r.Clone()

	tests := []struct {
		name string
		ids  []int
		kind error
	}{
		{"one id taken", []int{1, 2, 3}, ErrStateConflict},
		{"id out of range", []int{1, 11}, ErrInvalidRequest},
		{"id zero", []int{0, 1}, ErrInvalidRequest},
		{"duplicate id", []int{4, 4}, ErrInvalidRequest},
		{"empty selection", nil, ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Purchase(tt.ids, "Luis", "555", PaymentMethodTransfer, testNow)
			assert.ErrorIs(t, err, tt.kind)
			assert.Equal(t, before, r)
		})
	}

	assert.ErrorIs(t, r.Purchase([]int{1}, "", "555", PaymentMethodCash, testNow), ErrMissingBuyer)
	assert.ErrorIs(t, r.Purchase([]int{1}, "Ana", "555", PaymentMethod("card"), testNow), ErrInvalidPaymentMethod)
	assert.Equal(t, before, r)
}

func TestRaffle_UpdatePendingPayment(t *testing.T) {
	r := newTestRaffle(t)
	require.NoError(t, r.Purchase([]int{1}, "Ana", "555", PaymentMethodPending, testNow))
	require.NoError(t, r.Purchase([]int{2}, "Ana", "555", PaymentMethodCash, testNow))

	assert.ErrorIs(t, r.UpdatePendingPayment(1, PaymentMethodPending), ErrInvalidRequest)
	assert.ErrorIs(t, r.UpdatePendingPayment(2, PaymentMethodTransfer), ErrTicketNotPending)
	assert.ErrorIs(t, r.UpdatePendingPayment(3, PaymentMethodTransfer), ErrTicketNotPending)
	assert.ErrorIs(t, r.UpdatePendingPayment(42, PaymentMethodTransfer), ErrNotFound)

	require.NoError(t, r.UpdatePendingPayment(1, PaymentMethodTransfer))
	assert.Equal(t, TicketStatusPurchased, r.Numbers[0].Status)
	assert.Equal(t, PaymentMethodTransfer, r.Numbers[0].PaymentMethod)
	assert.Equal(t, []int{1, 2}, r.EligibleNumbers())
}

func TestRaffle_UpdateBuyerDetails(t *testing.T) {
	r := newTestRaffle(t)
	require.NoError(t, r.Purchase([]int{1}, "Ana", "555", PaymentMethodCash, testNow))
	require.NoError(t, r.Purchase([]int{2}, "Ana", "555", PaymentMethodPending, testNow))

	require.NoError(t, r.UpdateBuyerDetails(1, "Ana Maria", "555-1234"))
	assert.Equal(t, "Ana Maria", r.Numbers[0].BuyerName)
	assert.Equal(t, "555-1234", r.Numbers[0].BuyerPhone)

	assert.ErrorIs(t, r.UpdateBuyerDetails(2, "X", "555"), ErrTicketNotPurchased)
	assert.ErrorIs(t, r.UpdateBuyerDetails(3, "X", "555"), ErrStateConflict)
	assert.ErrorIs(t, r.UpdateBuyerDetails(99, "X", "555"), ErrTicketNotFound)
	assert.ErrorIs(t, r.UpdateBuyerDetails(1, " ", "555"), ErrMissingBuyer)
}

func TestRaffle_CancelPurchase(t *testing.T) {
	r := newTestRaffle(t)
	require.NoError(t, r.Purchase([]int{7}, "Ana", "555", PaymentMethodPending, testNow))

	require.NoError(t, r.CancelPurchase(7))
	ticket := r.Numbers[6]
	assert.Equal(t, Ticket{ID: 7, Status: TicketStatusAvailable}, ticket)

	snapshot := r.Clone()
	assert.ErrorIs(t, r.CancelPurchase(7), ErrTicketAlreadyFree)
	assert.Equal(t, snapshot, r)
	assert.ErrorIs(t, r.CancelPurchase(0), ErrNotFound)
}

func TestRaffle_CancelWinningTicket(t *testing.T) {
	r := newTestRaffle(t)
	require.NoError(t, r.Purchase([]int{1, 2}, "Ana", "555", PaymentMethodCash, testNow))
	require.NoError(t, r.RecordPrizeWinner(1, 2, "", "", testNow))

	assert.ErrorIs(t, r.CancelPurchase(2), ErrTicketIsWinner)
	assert.Equal(t, TicketStatusPurchased, r.Numbers[1].Status)
}

func TestRaffle_RecordPrizeWinner(t *testing.T) {
	r := newTestRaffle(t)
	require.NoError(t, r.Purchase([]int{1, 2, 3}, "Ana", "555", PaymentMethodCash, testNow))
	require.NoError(t, r.Purchase([]int{4}, "Luis", "556", PaymentMethodPending, testNow))

	assert.ErrorIs(t, r.RecordPrizeWinner(3, 1, "", "", testNow), ErrPrizeNotFound)
	assert.ErrorIs(t, r.RecordPrizeWinner(1, 4, "", "", testNow), ErrTicketNotPurchased)
	assert.ErrorIs(t, r.RecordPrizeWinner(1, 11, "", "", testNow), ErrInvalidRequest)

	require.NoError(t, r.RecordPrizeWinner(1, 2, "", "", testNow))
	prize := r.Prizes[0]
	require.NotNil(t, prize.WinningNumber)
	assert.Equal(t, 2, *prize.WinningNumber)
	assert.Equal(t, "Ana", prize.WinnerName)
	assert.Equal(t, "555", prize.WinnerPhone)
	assert.Equal(t, RaffleStatusOpen, r.Status)
	assert.Equal(t, []int{1, 3}, r.EligibleNumbers())

	assert.ErrorIs(t, r.RecordPrizeWinner(1, 3, "", "", testNow), ErrPrizeAlreadyResolved)
	assert.ErrorIs(t, r.RecordPrizeWinner(2, 2, "", "", testNow), ErrTicketIsWinner)

	next, err := r.NextUnresolvedPrize()
	require.NoError(t, err)
	assert.Equal(t, 2, next.Order)
}

func TestRaffle_ClosesOnLastPrize(t *testing.T) {
	r := newTestRaffle(t)
	require.NoError(t, r.Purchase([]int{1, 2, 3}, "Ana", "555", PaymentMethodCash, testNow))
	require.NoError(t, r.Purchase([]int{4}, "Luis", "556", PaymentMethodPending, testNow))

	require.NoError(t, r.RecordPrizeWinner(1, 1, "", "", testNow))
	assert.False(t, r.IsClosed())

	closedAt := testNow.Add(time.Minute)
	require.NoError(t, r.RecordPrizeWinner(2, 3, "Winner", "999", closedAt))
	assert.True(t, r.IsClosed())
	require.NotNil(t, r.ClosedAt)
	assert.True(t, r.ClosedAt.Equal(closedAt))
	assert.Equal(t, "Winner", r.Prizes[1].WinnerName)

	_, err := r.NextUnresolvedPrize()
	assert.ErrorIs(t, err, ErrNoUnresolvedPrize)

	assert.ErrorIs(t, r.Purchase([]int{5}, "Ana", "555", PaymentMethodCash, testNow), ErrRaffleClosed)
	assert.ErrorIs(t, r.UpdatePendingPayment(4, PaymentMethodCash), ErrRaffleClosed)
	assert.ErrorIs(t, r.UpdateBuyerDetails(2, "B", "555"), ErrRaffleClosed)
	assert.ErrorIs(t, r.CancelPurchase(2), ErrRaffleClosed)
	assert.ErrorIs(t, r.Close(testNow), ErrRaffleClosed)
}

func TestRaffle_Close(t *testing.T) {
	r := newTestRaffle(t)

	require.NoError(t, r.Close(testNow))
	assert.True(t, r.IsClosed())
	assert.False(t, r.IsFullyDrawn())
	assert.ErrorIs(t, r.RecordPrizeWinner(1, 1, "", "", testNow), ErrStateConflict)
}

func TestRaffle_CloneIsDeep(t *testing.T) {
	r := newTestRaffle(t)
	require.NoError(t, r.Purchase([]int{1, 2}, "Ana", "555", PaymentMethodCash, testNow))
	require.NoError(t, r.RecordPrizeWinner(1, 1, "", "", testNow))

	c := r.Clone()
	require.Equal(t, r, c)

	require.NoError(t, c.CancelPurchase(2))
	*c.Prizes[0].WinningNumber = 9
	*c.Numbers[0].PurchaseDate = testNow.Add(time.Hour)

	assert.Equal(t, TicketStatusPurchased, r.Numbers[1].Status)
	assert.Equal(t, 1, *r.Prizes[0].WinningNumber)
	assert.True(t, r.Numbers[0].PurchaseDate.Equal(testNow))
}

func TestRaffle_Redacted(t *testing.T) {
	r := newTestRaffle(t)
	require.NoError(t, r.Purchase([]int{1, 2}, "Ana", "555-0101", PaymentMethodCash, testNow))
	require.NoError(t, r.RecordPrizeWinner(1, 2, "", "", testNow))

	red := r.Redacted()
	assert.Equal(t, "Ana", red.Numbers[0].BuyerName)
	assert.Empty(t, red.Numbers[0].BuyerPhone)
	assert.Equal(t, "Ana", red.Prizes[0].WinnerName)
	assert.Empty(t, red.Prizes[0].WinnerPhone)

	assert.Equal(t, "555-0101", r.Numbers[0].BuyerPhone)
	assert.Equal(t, "555-0101", r.Prizes[0].WinnerPhone)

	data, err := json.Marshal(red)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "555-0101")
}

func TestRaffle_CheckIntegrity(t *testing.T) {
	require.NoError(t, newTestRaffle(t).CheckIntegrity())

	cases := map[string]func(r *Raffle){
		"missing id":       func(r *Raffle) { r.ID = "" },
		"unknown status":   func(r *Raffle) { r.Status = "archived" },
		"short pool":       func(r *Raffle) { r.Numbers = r.Numbers[:9] },
		"numbers swapped":  func(r *Raffle) { r.Numbers[0], r.Numbers[1] = r.Numbers[1], r.Numbers[0] },
		"bad ticket state": func(r *Raffle) { r.Numbers[3].Status = "lost" },
		"repeated order":   func(r *Raffle) { r.Prizes[1].Order = 1 },
		"winner out of range": func(r *Raffle) {
			n := 11
			r.Prizes[0].WinningNumber = &n
		},
	}
	for name, corrupt := range cases {
		t.Run(name, func(t *testing.T) {
			r := newTestRaffle(t)
			corrupt(r)
			err := r.CheckIntegrity()
			assert.ErrorIs(t, err, ErrCorruptRaffle)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestRaffle_Summary(t *testing.T) {
	r := newTestRaffle(t)
	require.NoError(t, r.Purchase([]int{1, 2, 3}, "Ana", "555", PaymentMethodCash, testNow))
	require.NoError(t, r.Purchase([]int{4}, "Luis", "556", PaymentMethodPending, testNow))
	require.NoError(t, r.RecordPrizeWinner(1, 2, "", "", testNow))

	s := r.Summary()
	assert.Equal(t, 6, s.Available)
	assert.Equal(t, 1, s.PendingPayment)
	assert.Equal(t, 3, s.Purchased)
	assert.True(t, s.CollectedAmount.Equal(decimal.RequireFromString("150")))
	assert.True(t, s.PendingAmount.Equal(decimal.RequireFromString("50")))
	assert.Equal(t, "MXN", s.CurrencyCode)
	assert.Equal(t, 2, s.PrizesTotal)
	assert.Equal(t, 1, s.PrizesResolved)
}

func TestRaffle_JSONRoundTrip(t *testing.T) {
	r := newTestRaffle(t)
	require.NoError(t, r.Purchase([]int{1, 2}, "Ana", "555", PaymentMethodCash, testNow))
	require.NoError(t, r.Purchase([]int{3}, "Luis", "556", PaymentMethodPending, testNow))
	require.NoError(t, r.RecordPrizeWinner(1, 2, "", "", testNow))

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded Raffle
	require.NoError(t, json.Unmarshal(data, &decoded))

	again, err := json.Marshal(&decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))

	assert.True(t, r.NumberValue.Equal(decoded.NumberValue))
	assert.Equal(t, r.Numbers, decoded.Numbers)
	assert.Equal(t, r.Prizes, decoded.Prizes)
	assert.Equal(t, r.Country, decoded.Country)
	assert.True(t, r.DrawDate.Equal(decoded.DrawDate))
}
