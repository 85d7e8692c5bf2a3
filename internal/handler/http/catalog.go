package http

import (
	"net/http"

	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/internal/utils"
)

// listProducts serves one page of the product catalog for the terminals'
// cache refresh.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	limit, offset, err := pageFromQuery(r)
	if err != nil {
		log.Err(err).Msg("invalid pagination params")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.services.CatalogService.ListProducts(ctx, limit, offset)
	if err != nil {
		log.Err(err).Msg("product listing failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// listClients serves one page of the client directory.
func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	limit, offset, err := pageFromQuery(r)
	if err != nil {
		log.Err(err).Msg("invalid pagination params")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.services.CatalogService.ListClients(ctx, limit, offset)
	if err != nil {
		log.Err(err).Msg("client listing failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func pageFromQuery(r *http.Request) (limit, offset int, err error) {
	q := r.URL.Query()

	if limit, err = intQueryParam(q.Get("limit")); err != nil {
		return 0, 0, err
	}
	if offset, err = intQueryParam(q.Get("offset")); err != nil {
		return 0, 0, err
	}

	return limit, offset, nil
}
