package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/crack-social/crack-cli/internal/client/catalog"
	"github.com/crack-social/crack-cli/internal/client/models"
	"github.com/crack-social/crack-cli/internal/logging"
)

// TransferService composes the ledger with the gift catalog: sending a gift
// debits its price, buying a coin package credits its amount once the
// payment is confirmed.
type TransferService interface {
	// Transfer sends the gift with the given catalog ID to recipient.
	// The debit is the sole source of truth for "gift sent"; there is no
	// compensating action afterwards.
	Transfer(ctx context.Context, giftID string, recipient models.Recipient) (*models.Receipt, error)

	// Purchase credits pkg.Coins after the payment confirmer accepts the
	// charge, and returns the new balance. The credit is never applied
	// optimistically.
	Purchase(ctx context.Context, pkg models.CoinPackage) (int64, error)
}

// PaymentConfirmer abstracts the external payment gateway for top-ups.
type PaymentConfirmer interface {
	// Confirm blocks until the charge of price for amount coins is
	// confirmed or fails.
	Confirm(ctx context.Context, amount int64, price int64) error
}

// simulatedGateway confirms every charge after an optional delay. The demo
// shop has no real payment processor.
type simulatedGateway struct {
	delay time.Duration
}

// NewSimulatedGateway returns a PaymentConfirmer that always confirms,
// waiting delay first to mimic gateway latency.
func NewSimulatedGateway(delay time.Duration) PaymentConfirmer {
	return &simulatedGateway{delay: delay}
}

func (g *simulatedGateway) Confirm(ctx context.Context, amount int64, price int64) error {
	if g.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(g.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// transferService is the concrete TransferService.
type transferService struct {
	ledger   LedgerService
	payments PaymentConfirmer
	log      logging.Logger
}

// NewTransferService constructs a TransferService over the given ledger and
// payment confirmer.
func NewTransferService(ledger LedgerService, payments PaymentConfirmer, log logging.Logger) TransferService {
	return &transferService{
		ledger:   ledger,
		payments: payments,
		log:      log.With("component", "transfer"),
	}
}

func (t *transferService) Transfer(ctx context.Context, giftID string, recipient models.Recipient) (*models.Receipt, error) {
	gift, err := catalog.Find(giftID)
	if err != nil {
		return nil, err
	}

	newBalance, err := t.ledger.Debit(ctx, gift.Price)
	if err != nil {
		return nil, err
	}

	receipt := &models.Receipt{
		ID:         uuid.NewString(),
		Gift:       gift,
		Recipient:  recipient,
		NewBalance: newBalance,
		SentAt:     time.Now().UTC(),
	}

	t.log.Info(ctx, "gift sent",
		"gift", gift.ID,
		"recipient", recipient.Handle,
		"balance", newBalance,
	)
	return receipt, nil
}

func (t *transferService) Purchase(ctx context.Context, pkg models.CoinPackage) (int64, error) {
	if err := t.payments.Confirm(ctx, pkg.Coins, pkg.Price); err != nil {
		return 0, err
	}

	newBalance, err := t.ledger.Credit(ctx, pkg.Coins)
	if err != nil {
		return 0, err
	}

	t.log.Info(ctx, "coins purchased",
		"coins", pkg.Coins,
		"price", pkg.Price,
		"balance", newBalance,
	)
	return newBalance, nil
}
