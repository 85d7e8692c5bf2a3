// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/internal/store"
	"github.com/ozerovd/go-sale-keeper/models"
)

// salesService is the concrete implementation of SalesService.
type salesService struct {
	saleRepository store.SaleRepository
	validate       *validator.Validate
	logger         *logger.Logger
}

func NewSalesService(saleRepository store.SaleRepository, logger *logger.Logger) SalesService {
	return &salesService{
		saleRepository: saleRepository,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		logger:         logger,
	}
}

// SubmitSale commits a sale submitted by a terminal.
//
// The client ref doubles as the idempotency key: when the repository reports
// that the ref was committed before, the original sale is looked up and
// acknowledged with Duplicate set — a resubmission after a lost
// acknowledgment must look exactly like a fresh success to the terminal.
//
// Returns the acknowledgment or:
//   - ErrInvalidDataProvided if the request fails struct validation.
//   - store.ErrInsufficientStock / store.ErrProductNotFound when an item
//     cannot be fulfilled; the terminal treats these as a rejection.
//   - A wrapped storage error for anything else.
func (s *salesService) SubmitSale(ctx context.Context, cashierID int64, req models.SubmitSaleRequest) (models.SaleAck, error) {
	log := logger.FromContext(ctx)

	if err := s.validate.Struct(req); err != nil {
		log.Err(err).Str("clientRef", req.ClientRef).Msg("invalid sale submission")
		return models.SaleAck{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	sale := buildSale(cashierID, req)

	created, err := s.saleRepository.CreateSale(ctx, sale)
	if errors.Is(err, store.ErrDuplicateClientRef) {
		existing, findErr := s.saleRepository.FindSaleByClientRef(ctx, req.ClientRef)
		if findErr != nil {
			log.Err(findErr).Str("clientRef", req.ClientRef).Msg("duplicate sale lookup failed")
			return models.SaleAck{}, fmt.Errorf("duplicate sale lookup failed: %w", findErr)
		}

		log.Info().
			Str("clientRef", req.ClientRef).
			Int64("serverID", existing.ID).
			Msg("sale resubmission acknowledged")
		return models.SaleAck{ServerID: existing.ID, ClientRef: existing.ClientRef, Duplicate: true}, nil
	}
	if err != nil {
		log.Err(err).Str("clientRef", req.ClientRef).Msg("sale creation ended with error")
		return models.SaleAck{}, fmt.Errorf("sale creation ended with error: %w", err)
	}

	return models.SaleAck{ServerID: created.ID, ClientRef: created.ClientRef}, nil
}

// AddPayment records one payment against an already committed sale.
//
// The payment ref is the per-payment idempotency key; a replayed submission
// answers with the original payment id and Duplicate set.
func (s *salesService) AddPayment(ctx context.Context, clientRef string, req models.SubmitPaymentRequest) (models.PaymentAck, error) {
	log := logger.FromContext(ctx)

	if err := s.validate.Struct(req); err != nil {
		log.Err(err).Str("clientRef", clientRef).Msg("invalid payment submission")
		return models.PaymentAck{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	payment := models.PaymentRecord{
		Method:          req.Payment.Method,
		Amount:          req.Payment.Amount,
		ReferenceNumber: req.Payment.ReferenceNumber,
	}

	paymentID, duplicate, err := s.saleRepository.AddPayment(ctx, clientRef, req.PaymentRef, payment)
	if err != nil {
		log.Err(err).Str("clientRef", clientRef).Str("paymentRef", req.PaymentRef).Msg("payment recording ended with error")
		return models.PaymentAck{}, fmt.Errorf("payment recording ended with error: %w", err)
	}

	return models.PaymentAck{PaymentID: paymentID, Duplicate: duplicate}, nil
}

// ListSales returns a filtered sale listing together with its aggregate
// summary.
func (s *salesService) ListSales(ctx context.Context, filter models.SaleFilter) (models.SaleListResponse, error) {
	log := logger.FromContext(ctx)

	sales, summary, err := s.saleRepository.ListSales(ctx, filter)
	if err != nil {
		log.Err(err).Msg("sale listing ended with error")
		return models.SaleListResponse{}, fmt.Errorf("sale listing ended with error: %w", err)
	}

	return models.SaleListResponse{Sales: sales, Summary: summary}, nil
}

// buildSale maps a wire submission onto the server-side sale record,
// computing the totals from the frozen item prices.
func buildSale(cashierID int64, req models.SubmitSaleRequest) models.Sale {
	sale := models.Sale{
		ClientRef:      req.ClientRef,
		CashierID:      cashierID,
		Status:         models.SaleStatusCompleted,
		CreatedAtLocal: req.CreatedAtLocal,
		TotalAmount:    decimal.Zero,
		PaidAmount:     decimal.Zero,
	}

	for _, item := range req.Items {
		saleItem := models.SaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			BatchID:   item.BatchID,
		}
		sale.Items = append(sale.Items, saleItem)
		sale.TotalAmount = sale.TotalAmount.Add(saleItem.Subtotal())
	}

	for _, p := range req.Payments {
		sale.Payments = append(sale.Payments, models.PaymentRecord{
			Method:          p.Method,
			Amount:          p.Amount,
			ReferenceNumber: p.ReferenceNumber,
		})
		sale.PaidAmount = sale.PaidAmount.Add(p.Amount)
	}

	return sale
}
