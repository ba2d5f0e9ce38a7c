package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qwhomes/proposal-service/internal/adapter/http/dto/request"
	"github.com/qwhomes/proposal-service/internal/adapter/http/dto/response"
	"github.com/qwhomes/proposal-service/internal/domain/entities"
	"github.com/qwhomes/proposal-service/internal/usecase"
	"github.com/qwhomes/proposal-service/pkg"
)

var (
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
	errInvalidProposalID      = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_ID", "Invalid proposal id", http.StatusBadRequest)
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ProposalHandler handles HTTP requests for the proposal engine.

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProposal(proposal))
}

func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	id, ok := proposalID(c)
	if !ok {
		return
	}
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.Update(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func (h *ProposalHandler) GetProposal(c *gin.Context) {
	id, ok := proposalID(c)
	if !ok {
		return
	}
	proposal, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func (h *ProposalHandler) ListProposals(c *gin.Context) {
	var query request.ProposalListRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_STATUS_FILTER", "Unknown proposal status", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	proposals, total, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ProposalPage(proposals, filter.Page, filter.Size, total))
}

func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	id, ok := proposalID(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProposalHandler) FinalizeProposal(c *gin.Context) {
	h.transition(c, h.usecase.Finalize)
}

func (h *ProposalHandler) ApproveProposal(c *gin.Context) {
	h.transition(c, h.usecase.Approve)
}

func (h *ProposalHandler) transition(c *gin.Context, move func(ctx context.Context, id int64) (entities.Proposal, error)) {
	id, ok := proposalID(c)
	if !ok {
		return
	}
	proposal, err := move(c.Request.Context(), id)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func (h *ProposalHandler) ExportProposalPDF(c *gin.Context) {
	h.export(c, entities.FileFormatPDF, contentTypePDF)
}

func (h *ProposalHandler) ExportProposalExcel(c *gin.Context) {
	h.export(c, entities.FileFormatExcel, contentTypeXLSX)
}

func (h *ProposalHandler) export(c *gin.Context, format entities.FileFormat, contentType string) {
	id, ok := proposalID(c)
	if !ok {
		return
	}
	res, err := h.usecase.Export(c.Request.Context(), id, format)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+res.FileName+`"`)
	c.Data(http.StatusOK, contentType, res.Data)
}

func (h *ProposalHandler) GetProposalMetadata(c *gin.Context) {
	dashboard, err := h.usecase.Metadata(c.Request.Context())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(dashboard))
}

func (h *ProposalHandler) ExportProposalRegister(c *gin.Context) {
	data, err := h.usecase.ExportRegister(c.Request.Context())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="proposals.xlsx"`)
	c.Data(http.StatusOK, contentTypeXLSX, data)
}

func proposalID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidProposalID.HTTPStatus, errInvalidProposalID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapProposalError(err error) *pkg.AppError {
	var (
		invalidTransition *entities.InvalidTransitionError
		notEditable       *entities.NotEditableError
	)
	switch {
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrApartmentTypeNotFound):
		return pkg.NewDomainErrorSimple("APARTMENT_TYPE_NOT_FOUND", "Apartment type not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidProposalName),
		errors.Is(err, usecase.ErrNoLineItems),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrDuplicateLineItem),
		errors.Is(err, usecase.ErrInvalidDiscount):
		return pkg.NewDomainError("INVALID_PROPOSAL_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.As(err, &invalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", invalidTransition.Error(), err, http.StatusBadRequest)
	case errors.As(err, &notEditable):
		return pkg.NewDomainError("PROPOSAL_NOT_EDITABLE", notEditable.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "Proposal was modified concurrently, re-read and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrRenderFailed), errors.Is(err, usecase.ErrRendererNotConfigured):
		return pkg.NewDomainError("EXPORT_FAILED", "Failed to export proposal", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
