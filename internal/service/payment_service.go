package service

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/elitesugar/elitesugar-backend/internal/models"
	"github.com/elitesugar/elitesugar-backend/internal/repository"
	"github.com/elitesugar/elitesugar-backend/pkg/payment"
)

// tierPrices is the display price recorded with each purchase; the amount
// actually charged comes from the Stripe price object.
var tierPrices = map[models.MembershipType]float64{
	models.MembershipGold:     49.99,
	models.MembershipPlatinum: 99.99,
}

type PaymentService struct {
	stripeService *payment.StripeService
	purchaseRepo  *repository.PurchaseRepository
	accountRepo   *repository.AccountRepository
	logger        *zap.Logger
}

func NewPaymentService(
	stripeService *payment.StripeService,
	purchaseRepo *repository.PurchaseRepository,
	accountRepo *repository.AccountRepository,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		stripeService: stripeService,
		purchaseRepo:  purchaseRepo,
		accountRepo:   accountRepo,
		logger:        logger,
	}
}

func tierPriceID(tier models.MembershipType) string {
	switch tier {
	case models.MembershipGold:
		return os.Getenv("STRIPE_PRICE_GOLD")
	case models.MembershipPlatinum:
		return os.Getenv("STRIPE_PRICE_PLATINUM")
	default:
		return ""
	}
}

// CreateUpgradeSession opens a Stripe checkout for a tier upgrade. The target
// tier has to be a paid one and strictly above the account's current tier.
func (s *PaymentService) CreateUpgradeSession(accountID uint, tier models.MembershipType) (*models.CheckoutSession, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, ErrAccountNotFound
	}

	if !models.ValidMembership(tier) || tier == models.MembershipRegular {
		return nil, ErrInvalidUpgradeTier
	}
	if models.MembershipRank(tier) <= models.MembershipRank(account.MembershipType) {
		return nil, ErrInvalidUpgradeTier
	}

	priceID := tierPriceID(tier)
	if priceID == "" {
		return nil, ErrInvalidUpgradeTier
	}

	session, err := s.stripeService.CreateCheckoutSession(account.Email, priceID, map[string]string{
		"account_id": fmt.Sprintf("%d", account.ID),
		"tier":       string(tier),
	})
	if err != nil {
		return nil, err
	}

	purchase := &models.MembershipPurchase{
		AccountID:       account.ID,
		Tier:            tier,
		Price:           tierPrices[tier],
		StripeSessionID: session.ID,
		Status:          models.PurchaseStatusPending,
	}
	if err := s.purchaseRepo.Create(purchase); err != nil {
		return nil, err
	}

	return &models.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// CompleteUpgrade applies the purchased tier once Stripe reports the checkout
// session completed. Replayed events are ignored.
func (s *PaymentService) CompleteUpgrade(sessionID string) error {
	purchase, err := s.purchaseRepo.GetBySessionID(sessionID)
	if err != nil {
		return err
	}

	if purchase.Status == models.PurchaseStatusCompleted {
		s.logger.Info("ignoring replayed checkout event",
			zap.String("session_id", sessionID),
		)
		return nil
	}

	if err := s.accountRepo.UpdateMembership(purchase.AccountID, purchase.Tier); err != nil {
		return err
	}

	purchase.Status = models.PurchaseStatusCompleted
	if err := s.purchaseRepo.Update(purchase); err != nil {
		return err
	}

	s.logger.Info("membership upgraded",
		zap.Uint("account_id", purchase.AccountID),
		zap.String("tier", string(purchase.Tier)),
	)
	return nil
}
