package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/srimart/retail_billing_app/internal/apperrors"
	"github.com/srimart/retail_billing_app/internal/core/domain"
	portsrepo "github.com/srimart/retail_billing_app/internal/core/ports/repositories"
	portssvc "github.com/srimart/retail_billing_app/internal/core/ports/services"
	"github.com/srimart/retail_billing_app/internal/dto"
	"github.com/srimart/retail_billing_app/internal/utils/units"
)

// billingService is the bill settlement engine. A sale flows through it in a
// fixed order: stock preflight, bill creation, stock deduction, settlement of
// selected outstanding bills, customer credit resync. The steps are not
// wrapped in one storage transaction; the final resync is idempotent and
// recomputes the customer's credit from the bill set, so re-running it heals
// any partial failure in between.
type billingService struct {
	BaseService
	billRepo    portsrepo.BillRepositoryFacade
	productRepo portsrepo.ProductReader
	stockRepo   portsrepo.StockRepositoryFacade
	creditSvc   portssvc.CustomerCreditSvc
}

// NewBillingService creates a new billing service.
func NewBillingService(
	billRepo portsrepo.BillRepositoryFacade,
	productRepo portsrepo.ProductReader,
	stockRepo portsrepo.StockRepositoryFacade,
	creditSvc portssvc.CustomerCreditSvc,
) portssvc.BillingSvcFacade {
	return &billingService{
		billRepo:    billRepo,
		productRepo: productRepo,
		stockRepo:   stockRepo,
		creditSvc:   creditSvc,
	}
}

var _ portssvc.BillingSvcFacade = (*billingService)(nil)

// resolvedItem pairs a request line item with its catalog product and the
// requested quantity converted to base units.
type resolvedItem struct {
	item    dto.BillItemRequest
	product domain.Product
	baseQty decimal.Decimal
}

func (s *billingService) CreateBill(ctx context.Context, req dto.CreateBillRequest) (*dto.CreateBillResponse, error) {
	logger := s.GetLogger(ctx).With(slog.String("bill_number", req.BillNumber))

	if err := domain.ValidateNationalID(req.Customer.NationalID); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	// Step 1: stock preflight. Resolve every product and check availability
	// before any write, so an insufficient item aborts the whole sale.
	resolved, err := s.preflightStock(ctx, req.Products)
	if err != nil {
		return nil, err
	}

	// Step 2: the new bill's total covers only this sale. Old debt is
	// carried as an informational snapshot and never folded in.
	grandTotal := req.ProductSubtotal.Add(req.ProductGST)

	// Step 3: payment state for the new bill.
	unpaid, status := domain.ComputePaymentState(grandTotal, req.Payment.CurrentBillPayment)

	now := time.Now().UTC()
	bill := domain.Bill{
		BillID:     uuid.NewString(),
		BillNumber: req.BillNumber,
		Customer: domain.CustomerSnapshot{
			ID:         req.Customer.ID,
			Name:       req.Customer.Name,
			Contact:    req.Customer.Contact,
			NationalID: req.Customer.NationalID,
			Location:   req.Customer.Location,
		},
		Items:                     toDomainItems(req.Products),
		ProductSubtotal:           req.ProductSubtotal,
		ProductGST:                req.ProductGST,
		CurrentBillTotal:          grandTotal,
		PreviousOutstandingCredit: req.PreviousOutstandingCredit,
		GrandTotal:                grandTotal,
		PaidAmount:                req.Payment.CurrentBillPayment,
		UnpaidAmount:              unpaid,
		Status:                    status,
		PaymentMethod:             req.Payment.Method,
		TransactionID:             req.Payment.TransactionID,
		Date:                      now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	// Step 4: persist the new bill.
	if err := s.billRepo.SaveBill(ctx, bill); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate bill number")
			return nil, fmt.Errorf("%w: bill number %s already exists", apperrors.ErrDuplicate, req.BillNumber)
		}
		logger.Error("Failed to save bill", slog.String("error", err.Error()))
		return nil, err
	}

	// Step 5: deduct stock, unless the bill is entirely unpaid. A
	// zero-payment sale is validated but goods are not consumed until some
	// payment registers.
	if status != domain.StatusUnpaid {
		for _, r := range resolved {
			if _, err := s.stockRepo.DeductStock(ctx, r.product.ProductCode, r.baseQty); err != nil {
				// The bill is already committed; surface the failure and let
				// the caller re-run settlement once stock is corrected.
				logger.Error("Stock deduction failed after bill was saved",
					slog.String("product_code", r.product.ProductCode),
					slog.String("error", err.Error()))
				return nil, fmt.Errorf("bill %s saved but stock deduction failed for %s: %w", req.BillNumber, r.product.ProductName, err)
			}
		}
	}

	// Step 6: settle selected outstanding bills, oldest first.
	settled, remaining, err := s.settleSelected(ctx, req.SelectedUnpaidBillIDs, req.Payment.SelectedOutstandingPayment, req.Payment.Method, req.Payment.TransactionID)
	if err != nil {
		return nil, err
	}

	// Step 7: recompute the customer's cached outstanding credit. Always
	// last, always a full recomputation.
	if _, err := s.creditSvc.ResyncOutstandingCredit(ctx, req.Customer.ID); err != nil {
		logger.Error("Failed to resync customer credit", slog.Int64("customer_id", req.Customer.ID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Bill created",
		slog.String("status", string(status)),
		slog.Int("settled_outstanding", len(settled)))

	return &dto.CreateBillResponse{
		Bill:                    dto.ToBillResponse(&bill),
		SettledOutstandingBills: dto.ToBillResponses(settled),
		RemainingPayment:        remaining,
	}, nil
}

// SettleOutstanding applies a payment purely against previously outstanding
// bills and resyncs the customer's credit.
func (s *billingService) SettleOutstanding(ctx context.Context, req dto.SettleOutstandingRequest) (*dto.SettleOutstandingResponse, error) {
	if !req.AmountPaid.IsPositive() {
		return nil, fmt.Errorf("%w: amount paid must be greater than 0", apperrors.ErrValidation)
	}

	bills, err := s.billRepo.FindOutstandingBillsByIDs(ctx, req.SelectedUnpaidBillIDs)
	if err != nil {
		return nil, err
	}
	if len(bills) == 0 {
		return nil, fmt.Errorf("%w: no valid outstanding bills found for settlement", apperrors.ErrNotFound)
	}

	settled, remaining := domain.DistributePayment(bills, req.AmountPaid)
	now := time.Now().UTC()
	for i := range settled {
		settled[i].PaymentMethod = req.PaymentMethod
		if req.TransactionID != "" {
			settled[i].TransactionID = req.TransactionID
		}
		settled[i].LastUpdatedAt = now
		if err := s.billRepo.UpdateBillPayment(ctx, settled[i]); err != nil {
			s.LogError(ctx, err, "Failed to update settled bill", slog.String("bill_id", settled[i].BillID))
			return nil, err
		}
	}

	if _, err := s.creditSvc.ResyncOutstandingCredit(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Outstanding bills settled",
		slog.Int64("customer_id", req.CustomerID),
		slog.Int("bill_count", len(settled)),
		slog.String("remaining_payment", remaining.String()))

	return &dto.SettleOutstandingResponse{
		UpdatedBills:     dto.ToBillResponses(settled),
		RemainingPayment: remaining,
	}, nil
}

func (s *billingService) ListUnpaidBills(ctx context.Context, customerID int64) ([]domain.Bill, error) {
	return s.billRepo.FindUnpaidBillsByCustomer(ctx, customerID)
}

// preflightStock resolves each line item against the catalog and verifies
// availability in base units. Errors name the offending product and report
// the available quantity converted back to the requested display unit.
func (s *billingService) preflightStock(ctx context.Context, items []dto.BillItemRequest) ([]resolvedItem, error) {
	resolved := make([]resolvedItem, 0, len(items))

	for _, item := range items {
		product, err := s.productRepo.FindProductByName(ctx, item.Name)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: product %s not found", apperrors.ErrNotFound, item.Name)
			}
			return nil, err
		}

		available := decimal.Zero
		entry, err := s.stockRepo.FindStockByProductCode(ctx, product.ProductCode)
		switch {
		case err == nil:
			available = entry.AvailableQuantity
		case errors.Is(err, apperrors.ErrNotFound):
			// no ledger entry yet means nothing has been uploaded
		default:
			return nil, err
		}

		requested := units.ToBaseUnits(item.Quantity, item.Unit, *product)
		if requested.GreaterThan(available) {
			availableDisplay := units.ToDisplayUnits(available, item.Unit, *product)
			return nil, fmt.Errorf("%w: only %s %s available for %s",
				apperrors.ErrInsufficientStock, availableDisplay.StringFixed(2), item.Unit, item.Name)
		}

		resolved = append(resolved, resolvedItem{item: item, product: *product, baseQty: requested})
	}

	return resolved, nil
}

// settleSelected distributes a payment pool across the caller-selected
// outstanding bills, oldest first. Bills are re-fetched and re-checked for a
// positive balance at settlement time.
func (s *billingService) settleSelected(ctx context.Context, billIDs []string, amount decimal.Decimal, method, transactionID string) ([]domain.Bill, decimal.Decimal, error) {
	if len(billIDs) == 0 || !amount.IsPositive() {
		return nil, amount, nil
	}

	bills, err := s.billRepo.FindOutstandingBillsByIDs(ctx, billIDs)
	if err != nil {
		return nil, decimal.Zero, err
	}

	settled, remaining := domain.DistributePayment(bills, amount)
	now := time.Now().UTC()
	for i := range settled {
		settled[i].PaymentMethod = method
		if transactionID != "" {
			settled[i].TransactionID = transactionID
		}
		settled[i].LastUpdatedAt = now
		if err := s.billRepo.UpdateBillPayment(ctx, settled[i]); err != nil {
			return nil, decimal.Zero, err
		}
	}

	return settled, remaining, nil
}

func toDomainItems(items []dto.BillItemRequest) []domain.BillItem {
	out := make([]domain.BillItem, len(items))
	for i, item := range items {
		out[i] = domain.BillItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			GST:      item.GST,
			MRP:      item.MRP,
			Discount: item.Discount,
		}
	}
	return out
}
