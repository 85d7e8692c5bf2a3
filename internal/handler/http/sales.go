// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/internal/utils"
	"github.com/ozerovd/go-sale-keeper/models"
)

// submitSale accepts a sale coming off a terminal's sync queue.
//
// A resubmission of an already committed client ref is NOT an error: the
// original sale is acknowledged with the duplicate flag set and HTTP 200, so
// a terminal that lost the first acknowledgment can finish its sync run.
func (h *Handler) submitSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	cashierID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no operator id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.SubmitSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	ack, err := h.services.SalesService.SubmitSale(ctx, cashierID, req)
	if err != nil {
		log.Err(err).Str("clientRef", req.ClientRef).Msg("sale submission failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, ack, http.StatusOK)
}

// addPayment records one payment against the sale identified by its client
// ref. Replayed payment refs answer with the original payment id and the
// duplicate flag set.
func (h *Handler) addPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	clientRef := chi.URLParam(r, "ref")

	var req models.SubmitPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	ack, err := h.services.SalesService.AddPayment(ctx, clientRef, req)
	if err != nil {
		log.Err(err).Str("clientRef", clientRef).Msg("payment submission failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, ack, http.StatusOK)
}

// listSales serves the admin-facing filtered sale listing.
func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := saleFilterFromQuery(r)
	if err != nil {
		log.Err(err).Msg("invalid sale filter")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.services.SalesService.ListSales(ctx, filter)
	if err != nil {
		log.Err(err).Msg("sale listing failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// saleFilterFromQuery parses the listing filter from the request query.
// Timestamps use RFC 3339.
func saleFilterFromQuery(r *http.Request) (models.SaleFilter, error) {
	q := r.URL.Query()

	filter := models.SaleFilter{
		Status:    q.Get("status"),
		ClientRef: q.Get("client_ref"),
	}

	if raw := q.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.SaleFilter{}, err
		}
		filter.From = &from
	}

	if raw := q.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.SaleFilter{}, err
		}
		filter.To = &to
	}

	var err error
	if filter.Limit, err = intQueryParam(q.Get("limit")); err != nil {
		return models.SaleFilter{}, err
	}
	if filter.Offset, err = intQueryParam(q.Get("offset")); err != nil {
		return models.SaleFilter{}, err
	}

	return filter, nil
}

func intQueryParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
