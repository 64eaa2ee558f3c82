package handlers

import (
	"errors"
	"net/http"

	request "catering_xpto/internal/adapter/http/dto/request"
	response "catering_xpto/internal/adapter/http/dto/response"
	"catering_xpto/internal/usecase"
	"catering_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// VersionHandler handles HTTP requests for estimate snapshots.

type VersionHandler struct {
	usecase usecase.IVersionUseCase
}

func NewVersionHandler(uc usecase.IVersionUseCase) *VersionHandler {
	return &VersionHandler{usecase: uc}
}

func (h *VersionHandler) CreateVersion(c *gin.Context) {
	// Notes are optional, so an empty body is accepted.
	var payload request.CreateVersionRequest
	_ = c.ShouldBindJSON(&payload)

	version, err := h.usecase.CreateVersion(c.Request.Context(), c.Param("invoice_id"), payload.Notes)
	if err != nil {
		appErr := mapVersionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVersion(version))
}

func (h *VersionHandler) ListVersions(c *gin.Context) {
	versions, err := h.usecase.ListVersions(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapVersionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVersions(versions))
}

// CompareVersions diffs two snapshots of the same invoice. The versions are
// selected with the from and to query parameters.
func (h *VersionHandler) CompareVersions(c *gin.Context) {
	fromID := c.Query("from")
	toID := c.Query("to")
	if fromID == "" || toID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Both from and to version ids are required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	diff, err := h.usecase.Compare(c.Request.Context(), c.Param("invoice_id"), fromID, toID)
	if err != nil {
		appErr := mapVersionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVersionDiff(diff))
}

func (h *VersionHandler) ArchiveVersion(c *gin.Context) {
	version, err := h.usecase.Archive(c.Request.Context(), c.Param("invoice_id"), c.Param("version_id"))
	if err != nil {
		appErr := mapVersionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVersion(version))
}

func mapVersionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidVersionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVersionNotFound), errors.Is(err, usecase.ErrVersionWrongInvoice):
		return pkg.NewDomainErrorSimple("VERSION_NOT_FOUND", "Estimate version not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
