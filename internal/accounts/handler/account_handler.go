package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/juliavi/reaction/shared/cqrs"
	"github.com/juliavi/reaction/shared/middleware"
	"github.com/juliavi/reaction/shared/models"
)

// AccountCommander defines the write-side operations used by AccountHandler.
type AccountCommander interface {
	RemovePermissions(ctx context.Context, cmd cqrs.RemovePermissionsCommand) (*models.AccountView, error)
	AddPermissions(ctx context.Context, cmd cqrs.AddPermissionsCommand) (*models.AccountView, error)
}

// AccountQuerier defines the read-side operations used by AccountHandler.
type AccountQuerier interface {
	GetAccount(ctx context.Context, q cqrs.GetAccountQuery) (*models.AccountView, error)
	ListAccountsByShop(ctx context.Context, q cqrs.ListAccountsByShopQuery) ([]models.AccountView, error)
	ListGroupMembers(ctx context.Context, q cqrs.ListGroupMembersQuery) (*models.GroupMembersView, error)
}

// AccountHandler handles account permission-group HTTP requests.
type AccountHandler struct {
	commands AccountCommander
	queries  AccountQuerier
}

func NewAccountHandler(commands AccountCommander, queries AccountQuerier) *AccountHandler {
	return &AccountHandler{commands: commands, queries: queries}
}

// UpdatePermissionsRequest is the body for both the add and remove endpoints.
// Groups may be empty (a harmless no-op mutation) but every listed element
// must be a non-empty group ID.
type UpdatePermissionsRequest struct {
	UserID string   `json:"userId" validate:"required"`
	ShopID string   `json:"shopId" validate:"required"`
	Groups []string `json:"groups" validate:"dive,min=1"`
}

type AccountResponse struct {
	Account *models.AccountView `json:"account"`
}

type ListAccountsResponse struct {
	Accounts []models.AccountView `json:"accounts"`
}

func (h *AccountHandler) RemovePermissions(c *gin.Context) {
	accountID := c.Param("accountId")
	actor, _ := middleware.GetActor(c)

	var req UpdatePermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	view, err := h.commands.RemovePermissions(c.Request.Context(), cqrs.RemovePermissionsCommand{
		AccountID: accountID,
		UserID:    req.UserID,
		ShopID:    req.ShopID,
		Groups:    req.Groups,
		Actor:     actor,
	})
	if err != nil {
		respondWithCommandError(c, err, "Failed to remove account permissions")
		return
	}

	c.JSON(http.StatusOK, AccountResponse{Account: view})
}

func (h *AccountHandler) AddPermissions(c *gin.Context) {
	accountID := c.Param("accountId")
	actor, _ := middleware.GetActor(c)

	var req UpdatePermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	view, err := h.commands.AddPermissions(c.Request.Context(), cqrs.AddPermissionsCommand{
		AccountID: accountID,
		UserID:    req.UserID,
		ShopID:    req.ShopID,
		Groups:    req.Groups,
		Actor:     actor,
	})
	if err != nil {
		respondWithCommandError(c, err, "Failed to add account permissions")
		return
	}

	c.JSON(http.StatusOK, AccountResponse{Account: view})
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	accountID := c.Param("accountId")

	view, err := h.queries.GetAccount(c.Request.Context(), cqrs.GetAccountQuery{AccountID: accountID})
	if err != nil {
		if errors.Is(err, cqrs.ErrNotFound) {
			middleware.RespondWithError(c, http.StatusNotFound, "Account not found")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to get account")
		return
	}

	c.JSON(http.StatusOK, AccountResponse{Account: view})
}

func (h *AccountHandler) ListAccounts(c *gin.Context) {
	shopID := c.Query("shopId")
	if shopID == "" {
		middleware.RespondWithError(c, http.StatusBadRequest, "shopId query parameter required")
		return
	}

	views, err := h.queries.ListAccountsByShop(c.Request.Context(), cqrs.ListAccountsByShopQuery{ShopID: shopID})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, ListAccountsResponse{Accounts: views})
}

func (h *AccountHandler) ListGroupMembers(c *gin.Context) {
	groupID := c.Param("groupId")

	view, err := h.queries.ListGroupMembers(c.Request.Context(), cqrs.ListGroupMembersQuery{GroupID: groupID})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list group members")
		return
	}

	c.JSON(http.StatusOK, view)
}

// respondWithCommandError maps the command error taxonomy to HTTP statuses.
// ErrUpdateFailed intentionally surfaces as a generic 500 so storage
// internals don't leak to API clients.
func respondWithCommandError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, cqrs.ErrInvalidInput):
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request data")
	case errors.Is(err, cqrs.ErrNotFound):
		middleware.RespondWithError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, cqrs.ErrForbidden):
		middleware.RespondWithError(c, http.StatusForbidden, "You are not allowed to modify this account's permissions")
	default:
		middleware.RespondWithError(c, http.StatusInternalServerError, fallback)
	}
}
