package service

import (
	"context"

	"raffle-manager-backend/internal/features/raffle/draw"
	"raffle-manager-backend/internal/features/raffle/models"
)

// RaffleService is the raffle collection and every operation on it. All
// returned raffles are copies.
type RaffleService interface {
	AddRaffle(ctx context.Context, input *models.RaffleCreate) (*models.Raffle, error)
	GetRaffleByID(ctx context.Context, id string) (*models.Raffle, error)
	ListRaffles(ctx context.Context) []*models.Raffle
	UpdateRaffle(ctx context.Context, raffle *models.Raffle) error
	DeleteRaffle(ctx context.Context, id string) error

	PurchaseNumbers(ctx context.Context, raffleID string, input *models.PurchaseRequest) (*models.Raffle, error)
	UpdatePendingPayment(ctx context.Context, raffleID string, number int, method models.PaymentMethod) (*models.Raffle, error)
	UpdateBuyerDetails(ctx context.Context, raffleID string, number int, buyerName, buyerPhone string) (*models.Raffle, error)
	CancelNumberPurchase(ctx context.Context, raffleID string, number int) (*models.Raffle, error)

	EligibleNumbers(ctx context.Context, raffleID string) ([]int, error)
	Draw(ctx context.Context, raffleID string) (*DrawOutcome, error)
	RecordPrizeWinner(ctx context.Context, raffleID string, order, number int, winnerName, winnerPhone string) (*models.Raffle, error)
	CloseRaffle(ctx context.Context, raffleID string) (*models.Raffle, error)
	Summary(ctx context.Context, raffleID string) (*models.RaffleSummary, error)
}

// DrawEngine picks winners among eligible numbers.
type DrawEngine interface {
	Draw(req draw.Request) (*draw.Result, error)
}

// DrawOutcome is the result of drawing the next prize of a raffle.
type DrawOutcome struct {
	Raffle *models.Raffle `json:"raffle"`
	Prize  models.Prize   `json:"prize"`
	Draw   *draw.Result   `json:"draw"`
}
