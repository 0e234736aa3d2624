package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/retail_ledger/internal/apperrors"
	"github.com/SscSPs/retail_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_ledger/internal/core/ports/services"
	"github.com/SscSPs/retail_ledger/internal/dto"
	"github.com/SscSPs/retail_ledger/internal/utils/accounting"
	"github.com/google/uuid"
)

type purchaseService struct {
	BaseService
	txm          portsrepo.TransactionManager
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	ledger       orderLedger
}

// NewPurchaseService creates the supplier bill collaborator.
func NewPurchaseService(
	txm portsrepo.TransactionManager,
	purchaseRepo portsrepo.PurchaseRepositoryFacade,
	ledger portssvc.LedgerPostingSvcFacade,
) portssvc.PurchaseSvcFacade {
	return &purchaseService{txm: txm, purchaseRepo: purchaseRepo, ledger: ledger}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

// CreatePurchaseBill records a supplier bill and posts it to the supplier's payable.
func (s *purchaseService) CreatePurchaseBill(ctx context.Context, req dto.CreatePurchaseBillRequest) (*domain.PurchaseBill, error) {
	if strings.TrimSpace(req.SupplierID) == "" {
		return nil, fmt.Errorf("%w: supplierID is required", apperrors.ErrValidation)
	}
	total := req.Total.Round(accounting.MinorUnitPlaces)
	if !total.IsPositive() {
		return nil, fmt.Errorf("%w: bill total must be positive", apperrors.ErrValidation)
	}
	billDate, err := businessDate(req.BillDate, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	bill := domain.PurchaseBill{
		BillID:       uuid.NewString(),
		BillNumber:   req.BillNumber,
		SupplierID:   strings.TrimSpace(req.SupplierID),
		SupplierName: strings.TrimSpace(req.SupplierName),
		BillDate:     billDate,
		Total:        total,
		CreatedAt:    time.Now().UTC(),
	}
	if bill.BillNumber == "" {
		bill.BillNumber = documentNumber("BILL", billDate)
	}

	err = s.txm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := s.purchaseRepo.InsertPurchaseBill(txCtx, bill); err != nil {
			return err
		}
		_, err := s.ledger.PostPurchase(txCtx, bill)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create purchase bill", slog.String("bill_number", bill.BillNumber))
		return nil, err
	}
	s.LogInfo(ctx, "Purchase bill recorded", slog.String("bill_id", bill.BillID), slog.String("supplier_id", bill.SupplierID))
	return &bill, nil
}

// DeletePurchaseBill soft-deletes a bill and reverses its posting.
func (s *purchaseService) DeletePurchaseBill(ctx context.Context, billID string) error {
	err := s.txm.RunInTransaction(ctx, func(txCtx context.Context) error {
		bill, err := s.purchaseRepo.FindPurchaseBillByID(txCtx, billID)
		if err != nil {
			return err
		}
		if err := s.purchaseRepo.SoftDeletePurchaseBill(txCtx, billID, time.Now().UTC()); err != nil {
			return err
		}
		_, err = s.ledger.ReverseReference(txCtx, billID, "Purchase bill "+bill.BillNumber+" deleted")
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete purchase bill", slog.String("bill_id", billID))
		return err
	}
	return nil
}
