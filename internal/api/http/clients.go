package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/clientdesk/internal/api/domain"
	"github.com/aussiebroadwan/clientdesk/internal/api/service"
	"github.com/aussiebroadwan/clientdesk/pkg/clientsdk"
	"github.com/aussiebroadwan/clientdesk/pkg/httpx"
	"github.com/aussiebroadwan/clientdesk/pkg/slogx"
)

// maxBodyBytes bounds a create request body.
const maxBodyBytes = 64 << 10

// ClientsHandler serves the /api/clients endpoints.
type ClientsHandler struct {
	ClientService *service.ClientService
}

func toWire(c domain.Client) clientsdk.Client {
	return clientsdk.Client{
		SharedKey: c.SharedKey,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
	}
}

// HandleList handles GET /api/clients/getClients
//
//	@Summary		List Clients
//	@Description	Returns every client in creation order. There is no pagination.
//	@Tags			Clients
//	@Produce		json
//	@Success		200	{array}		clientsdk.Client
//	@Failure		500	{object}	clientsdk.ErrorResponse	"respondeCode 99"
//	@Router			/api/clients/getClients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clients, err := h.ClientService.ListClients(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list clients", "error", err)
		httpx.WriteResponse(w, http.StatusInternalServerError, clientsdk.CodeServerError, "Failed to list clients")
		return
	}

	out := make([]clientsdk.Client, len(clients))
	for i, c := range clients {
		out[i] = toWire(c)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleSearch handles GET /api/clients/searchClient/{sharedKey}
//
//	@Summary		Find Client
//	@Description	Exact, case-sensitive lookup by shared key.
//	@Tags			Clients
//	@Produce		json
//	@Param			sharedKey	path		string	true	"Shared key"
//	@Success		200			{object}	clientsdk.Client
//	@Failure		404			{object}	clientsdk.ErrorResponse	"respondeCode 03"
//	@Failure		500			{object}	clientsdk.ErrorResponse	"respondeCode 99"
//	@Router			/api/clients/searchClient/{sharedKey} [get].
func (h *ClientsHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sharedKey := r.PathValue("sharedKey")

	client, err := h.ClientService.GetClient(ctx, sharedKey)
	switch {
	case errors.Is(err, service.ErrClientNotFound):
		httpx.WriteResponse(w, http.StatusNotFound, clientsdk.CodeNotFound, "Client not found")
		return
	case err != nil:
		slogx.FromContext(ctx).Error("failed to search client", "shared_key", sharedKey, "error", err)
		httpx.WriteResponse(w, http.StatusInternalServerError, clientsdk.CodeServerError, "Failed to search client")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWire(client))
}

// HandleCreate handles POST /api/clients/createClient
//
//	@Summary		Create Client
//	@Description	Creates a client. A taken shared key answers 400 with respondeCode 01.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clientsdk.Client				true	"Client record"
//	@Success		201		{object}	clientsdk.CreateClientResponse	"respondeCode 00"
//	@Failure		400		{object}	clientsdk.ErrorResponse			"respondeCode 01 (duplicate) or 02 (invalid)"
//	@Failure		429		{object}	clientsdk.ErrorResponse			"respondeCode 04"
//	@Failure		500		{object}	clientsdk.ErrorResponse			"respondeCode 99"
//	@Router			/api/clients/createClient [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req clientsdk.Client
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		httpx.WriteResponse(w, http.StatusBadRequest, clientsdk.CodeInvalidRequest, "Invalid JSON in request body")
		return
	}

	ctx := slogx.With(r.Context(), "shared_key", req.SharedKey)
	log := slogx.FromContext(ctx)

	_, err := h.ClientService.CreateClient(ctx, service.CreateClientInput{
		SharedKey: req.SharedKey,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	switch {
	case errors.Is(err, service.ErrClientExists):
		httpx.WriteResponse(w, http.StatusBadRequest, clientsdk.CodeAlreadyExists, clientsdk.MessageDuplicateKey)
		return
	case errors.Is(err, service.ErrInvalidClient):
		httpx.WriteResponse(w, http.StatusBadRequest, clientsdk.CodeInvalidRequest, err.Error())
		return
	case err != nil:
		log.Error("failed to create client", "error", err)
		httpx.WriteResponse(w, http.StatusInternalServerError, clientsdk.CodeServerError, "Failed to create client")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, clientsdk.CreateClientResponse{
		Message: "Client created",
		Data:    &clientsdk.ResponseData{RespondeCode: clientsdk.CodeOK},
	})
}
