package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"raffle-manager-backend/internal/common/logger"
	"raffle-manager-backend/internal/features/raffle/draw"
	"raffle-manager-backend/internal/features/raffle/models"
	"raffle-manager-backend/internal/features/raffle/repository"
)

var _ RaffleService = (*RaffleStore)(nil)

type Option func(*RaffleStore)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *RaffleStore) { s.now = now }
}

// WithIDGenerator replaces the uuid generator used for raffles and prizes.
func WithIDGenerator(newID func() string) Option {
	return func(s *RaffleStore) { s.newID = newID }
}

// RaffleStore keeps every raffle in memory and writes the whole collection
// to storage after each mutation. One mutex serializes all operations.
type RaffleStore struct {
	mu      sync.Mutex
	raffles map[string]*models.Raffle
	order   []string

	storage     repository.Storage
	engine      DrawEngine
	broadcaster Broadcaster
	now         func() time.Time
	newID       func() string
}

// NewRaffleStore loads the collection from storage. broadcaster may be nil.
func NewRaffleStore(ctx context.Context, storage repository.Storage, engine DrawEngine, broadcaster Broadcaster, opts ...Option) (*RaffleStore, error) {
	s := &RaffleStore{
		raffles:     make(map[string]*models.Raffle),
		storage:     storage,
		engine:      engine,
		broadcaster: broadcaster,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}

	loaded, err := storage.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load raffles: %w", err)
	}
	for _, r := range loaded {
		if r == nil {
			continue
		}
		if err := r.CheckIntegrity(); err != nil {
			logger.Warn().Err(err).Str("raffle_id", r.ID).Msg("Skipping corrupt raffle in storage")
			continue
		}
		if _, dup := s.raffles[r.ID]; dup {
			logger.Warn().Str("raffle_id", r.ID).Msg("Duplicate raffle in storage, keeping the first one")
			continue
		}
		s.raffles[r.ID] = r
		s.order = append(s.order, r.ID)
	}

	logger.Info().Int("raffles", len(s.order)).Msg("Raffle store loaded")
	return s, nil
}

func (s *RaffleStore) AddRaffle(ctx context.Context, input *models.RaffleCreate) (*models.Raffle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := models.NewRaffle(s.newID(), input, s.newID, s.now())
	if err != nil {
		return nil, err
	}

	s.raffles[r.ID] = r
	s.order = append(s.order, r.ID)
	s.persist(ctx)

	logger.Info().
		Str("raffle_id", r.ID).
		Int("total_numbers", r.TotalNumbers).
		Int("prizes", len(r.Prizes)).
		Msg("Raffle created")

	s.publish(EventRaffleCreated, r.ID, nil)
	return r.Clone(), nil
}

func (s *RaffleStore) GetRaffleByID(_ context.Context, id string) (*models.Raffle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.raffles[id]
	if !ok {
		return nil, models.ErrRaffleNotFound
	}
	return r.Clone(), nil
}

// ListRaffles returns every raffle in creation order.
func (s *RaffleStore) ListRaffles(_ context.Context) []*models.Raffle {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]*models.Raffle, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.raffles[id].Clone())
	}
	return list
}

// UpdateRaffle replaces the stored raffle with the same id.
func (s *RaffleStore) UpdateRaffle(ctx context.Context, raffle *models.Raffle) error {
	if raffle == nil {
		return fmt.Errorf("%w: raffle is required", models.ErrInvalidRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.raffles[raffle.ID]; !ok {
		return models.ErrRaffleNotFound
	}
	s.replace(ctx, raffle.Clone())
	s.publish(EventRaffleUpdated, raffle.ID, nil)
	return nil
}

func (s *RaffleStore) DeleteRaffle(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.raffles[id]; !ok {
		return models.ErrRaffleNotFound
	}

	delete(s.raffles, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.persist(ctx)

	logger.Info().Str("raffle_id", id).Msg("Raffle deleted")
	s.publish(EventRaffleDeleted, id, nil)
	return nil
}

func (s *RaffleStore) PurchaseNumbers(ctx context.Context, raffleID string, input *models.PurchaseRequest) (*models.Raffle, error) {
	now := s.now()
	return s.mutate(ctx, raffleID, func(r *models.Raffle) error {
		return r.Purchase(input.Numbers, input.BuyerName, input.BuyerPhone, input.PaymentMethod, now)
	})
}

func (s *RaffleStore) UpdatePendingPayment(ctx context.Context, raffleID string, number int, method models.PaymentMethod) (*models.Raffle, error) {
	return s.mutate(ctx, raffleID, func(r *models.Raffle) error {
		return r.UpdatePendingPayment(number, method)
	})
}

func (s *RaffleStore) UpdateBuyerDetails(ctx context.Context, raffleID string, number int, buyerName, buyerPhone string) (*models.Raffle, error) {
	return s.mutate(ctx, raffleID, func(r *models.Raffle) error {
		return r.UpdateBuyerDetails(number, buyerName, buyerPhone)
	})
}

func (s *RaffleStore) CancelNumberPurchase(ctx context.Context, raffleID string, number int) (*models.Raffle, error) {
	return s.mutate(ctx, raffleID, func(r *models.Raffle) error {
		return r.CancelPurchase(number)
	})
}

func (s *RaffleStore) RecordPrizeWinner(ctx context.Context, raffleID string, order, number int, winnerName, winnerPhone string) (*models.Raffle, error) {
	now := s.now()
	return s.mutate(ctx, raffleID, func(r *models.Raffle) error {
		return r.RecordPrizeWinner(order, number, winnerName, winnerPhone, now)
	}, s.announceDraw(order))
}

func (s *RaffleStore) CloseRaffle(ctx context.Context, raffleID string) (*models.Raffle, error) {
	now := s.now()
	return s.mutate(ctx, raffleID, func(r *models.Raffle) error {
		return r.Close(now)
	}, func(r *models.Raffle) {
		s.publish(EventRaffleClosed, r.ID, nil)
	})
}

func (s *RaffleStore) EligibleNumbers(_ context.Context, raffleID string) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.raffles[raffleID]
	if !ok {
		return nil, models.ErrRaffleNotFound
	}
	return r.EligibleNumbers(), nil
}

// Draw picks one winner among the eligible numbers for the next unresolved
// prize and records it.
func (s *RaffleStore) Draw(ctx context.Context, raffleID string) (*DrawOutcome, error) {
	now := s.now()
	var result *draw.Result
	var order int

	r, err := s.mutate(ctx, raffleID, func(r *models.Raffle) error {
		if r.IsClosed() {
			return models.ErrRaffleClosed
		}
		prize, err := r.NextUnresolvedPrize()
		if err != nil {
			return err
		}

		result, err = s.engine.Draw(draw.Request{PrizeCount: 1, EligibleNumbers: r.EligibleNumbers()})
		if err != nil {
			return err
		}
		order = prize.Order
		return r.RecordPrizeWinner(order, result.DrawnNumbers[0], "", "", now)
	}, func(r *models.Raffle) {
		s.announceDraw(order)(r)
	})
	if err != nil {
		return nil, err
	}

	prize, err := r.Prize(order)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("raffle_id", raffleID).
		Int("prize_order", order).
		Int("winning_number", result.DrawnNumbers[0]).
		Msg("Prize drawn")

	return &DrawOutcome{Raffle: r, Prize: *prize, Draw: result}, nil
}

func (s *RaffleStore) Summary(_ context.Context, raffleID string) (*models.RaffleSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.raffles[raffleID]
	if !ok {
		return nil, models.ErrRaffleNotFound
	}
	summary := r.Summary()
	return &summary, nil
}

// HealthCheck reports whether the backing storage is reachable.
func (s *RaffleStore) HealthCheck(ctx context.Context) error {
	if hc, ok := s.storage.(repository.HealthChecker); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}

// mutate applies op to a copy of the raffle and stores the copy only when
// op succeeds. raffle.updated and then every announce hook are published
// before the lock is released, so subscribers see events in commit order.
func (s *RaffleStore) mutate(ctx context.Context, raffleID string, op func(r *models.Raffle) error, announce ...func(r *models.Raffle)) (*models.Raffle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.raffles[raffleID]
	if !ok {
		return nil, models.ErrRaffleNotFound
	}

	next := current.Clone()
	if err := op(next); err != nil {
		return nil, err
	}

	s.replace(ctx, next)
	s.publish(EventRaffleUpdated, raffleID, nil)
	for _, fn := range announce {
		fn(next)
	}
	return next.Clone(), nil
}

// announceDraw publishes the resolved prize, without the winner's phone, and
// raffle.closed when that prize was the last one.
func (s *RaffleStore) announceDraw(order int) func(r *models.Raffle) {
	return func(r *models.Raffle) {
		if prize, err := r.Prize(order); err == nil {
			s.publish(EventPrizeDrawn, r.ID, prize.Public())
		}
		if r.IsClosed() {
			s.publish(EventRaffleClosed, r.ID, nil)
		}
	}
}

func (s *RaffleStore) replace(ctx context.Context, r *models.Raffle) {
	s.raffles[r.ID] = r
	s.persist(ctx)
}

// persist writes the whole collection. Failures are logged and do not fail
// the operation: the in-memory state stays authoritative and the next
// successful save catches up.
func (s *RaffleStore) persist(ctx context.Context) {
	list := make([]*models.Raffle, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.raffles[id])
	}

	if err := s.storage.SaveAll(context.WithoutCancel(ctx), list); err != nil {
		logger.Warn().Err(err).Int("raffles", len(list)).Msg("Failed to persist raffles")
	}
}

func (s *RaffleStore) publish(eventType, raffleID string, data interface{}) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.Publish(Event{Type: eventType, RaffleID: raffleID, Data: data, At: s.now()})
}
