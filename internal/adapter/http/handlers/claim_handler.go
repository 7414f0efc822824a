package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"contract_monthly_claim/internal/adapter/http/dto/request"
	"contract_monthly_claim/internal/adapter/http/dto/response"
	"contract_monthly_claim/internal/adapter/http/middleware"
	"contract_monthly_claim/internal/domain/entities"
	"contract_monthly_claim/internal/usecase"
	"contract_monthly_claim/pkg"

	"github.com/gin-gonic/gin"
)

// MaxSubmissionBody caps the whole multipart body. It is well above the
// document limit so an oversized file still reaches the validator and comes
// back as a field error.
const MaxSubmissionBody = 16 << 20

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidClaimID = pkg.NewDomainErrorSimple("INVALID_CLAIM_ID", "Claim id must be a positive integer", http.StatusBadRequest)
	errClaimNotFound  = pkg.NewDomainErrorSimple("CLAIM_NOT_FOUND", "Claim not found", http.StatusNotFound)
	errValidation     = pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Claim validation failed", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
)

// ClaimHandler serves the claim workflow: lecturers submit, approvers decide,
// staff edit, everybody reads.
type ClaimHandler struct {
	claims  usecase.IClaimUseCase
	queries usecase.IClaimQueryUseCase
}

func NewClaimHandler(claims usecase.IClaimUseCase, queries usecase.IClaimQueryUseCase) *ClaimHandler {
	return &ClaimHandler{claims: claims, queries: queries}
}

// SubmitClaim godoc
// @Summary      Submit a monthly claim
// @Description  Multipart form. Lecturer name and hourly rate are taken from the caller's profile.
// @Tags         claims
// @Accept       multipart/form-data
// @Produce      json
// @Param        programme     formData  string  true   "Programme name"
// @Param        month         formData  string  true   "Claim month (YYYY-MM)"
// @Param        hours_worked  formData  string  true   "Hours worked (max 180)"
// @Param        notes         formData  string  false  "Notes"
// @Param        document      formData  file    false  "Supporting document (.pdf, .docx, .xlsx; max 5 MB)"
// @Success      201  {object}  response.ClaimResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /claims [post]
func (h *ClaimHandler) SubmitClaim(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxSubmissionBody)

	var form request.ClaimSubmissionForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("[claim][handler] submit invalid form caller=%s err=%v", caller.Username, err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	doc, err := readDocument(c)
	if err != nil {
		log.Printf("[claim][handler] submit unreadable document caller=%s err=%v", caller.Username, err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	created, err := h.claims.SubmitClaim(c.Request.Context(), caller, form.ToSubmission(doc))
	if err != nil {
		log.Printf("[claim][handler] submit failed caller=%s err=%v", caller.Username, err)
		writeClaimError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromClaim(created))
}

// PrefillSubmission godoc
// @Summary  Values for a fresh claim form
// @Tags     claims
// @Produce  json
// @Success  200  {object}  response.SubmissionPrefillResponse
// @Security Bearer
// @Router   /claims/prefill [get]
func (h *ClaimHandler) PrefillSubmission(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	prefill, err := h.claims.PrefillSubmission(c.Request.Context(), caller)
	if err != nil {
		writeClaimError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPrefill(prefill))
}

// ListClaims godoc
// @Summary      All claims in storage order
// @Description  Lecturers only see their own claims.
// @Tags         claims
// @Produce      json
// @Success      200  {array}  response.ClaimResponse
// @Security     Bearer
// @Router       /claims [get]
func (h *ClaimHandler) ListClaims(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	h.list(c, func() ([]entities.Claim, error) {
		claims, err := h.queries.GetClaims(c.Request.Context())
		if err != nil || caller.IsStaff() {
			return claims, err
		}
		own := make([]entities.Claim, 0, len(claims))
		for _, claim := range claims {
			if claim.SubmittedBy == caller.Username {
				own = append(own, claim)
			}
		}
		return own, nil
	})
}

// ListPendingClaims godoc
// @Summary  Claims waiting for a decision
// @Tags     claims
// @Produce  json
// @Success  200  {array}  response.ClaimResponse
// @Security Bearer
// @Router   /claims/pending [get]
func (h *ClaimHandler) ListPendingClaims(c *gin.Context) {
	h.list(c, func() ([]entities.Claim, error) { return h.queries.GetPendingClaims(c.Request.Context()) })
}

// ListApprovedClaims godoc
// @Summary  Approved claims
// @Tags     claims
// @Produce  json
// @Success  200  {array}  response.ClaimResponse
// @Security Bearer
// @Router   /claims/approved [get]
func (h *ClaimHandler) ListApprovedClaims(c *gin.Context) {
	h.list(c, func() ([]entities.Claim, error) { return h.queries.GetApprovedClaims(c.Request.Context()) })
}

// ListMyClaims godoc
// @Summary  The caller's own claims, most recent first
// @Tags     claims
// @Produce  json
// @Success  200  {array}  response.ClaimResponse
// @Security Bearer
// @Router   /claims/mine [get]
func (h *ClaimHandler) ListMyClaims(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	h.list(c, func() ([]entities.Claim, error) {
		return h.queries.GetClaimsByLecturer(c.Request.Context(), caller.Username)
	})
}

// GetClaim godoc
// @Summary  One claim by id
// @Tags     claims
// @Produce  json
// @Param    id   path      int  true  "Claim id"
// @Success  200  {object}  response.ClaimResponse
// @Failure  403  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /claims/{id} [get]
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := claimIDOrAbort(c)
	if !ok {
		return
	}
	claim, found, err := h.queries.GetClaimByID(c.Request.Context(), id)
	if err != nil {
		writeClaimError(c, err)
		return
	}
	if !found {
		c.JSON(errClaimNotFound.HTTPStatus, errClaimNotFound.ToHTTPError())
		return
	}
	if !caller.IsStaff() && claim.SubmittedBy != caller.Username {
		writeClaimError(c, usecase.ErrForbidden)
		return
	}
	c.JSON(http.StatusOK, response.FromClaim(claim))
}

// UpdateClaim godoc
// @Summary      Edit a claim
// @Description  The amount is always recomputed from hours and rate.
// @Tags         claims
// @Accept       json
// @Produce      json
// @Param        id    path      int                          true  "Claim id"
// @Param        body  body      request.ClaimUpdateRequest   true  "Claim fields"
// @Success      200   {object}  response.ClaimResponse
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /claims/{id} [put]
func (h *ClaimHandler) UpdateClaim(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := claimIDOrAbort(c)
	if !ok {
		return
	}

	var payload request.ClaimUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	upd, err := payload.ToUpdate()
	if err != nil {
		appErr := errValidation.WithDetails([]usecase.FieldError{{Field: "status", Message: err.Error()}})
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.claims.UpdateClaim(c.Request.Context(), caller, id, upd)
	if err != nil {
		log.Printf("[claim][handler] update failed claim_id=%d caller=%s err=%v", id, caller.Username, err)
		writeClaimError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClaim(updated))
}

// DeleteClaim godoc
// @Summary  Delete a claim and its document
// @Tags     claims
// @Param    id  path  int  true  "Claim id"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /claims/{id} [delete]
func (h *ClaimHandler) DeleteClaim(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := claimIDOrAbort(c)
	if !ok {
		return
	}

	deleted, err := h.claims.DeleteClaim(c.Request.Context(), caller, id)
	if err != nil {
		writeClaimError(c, err)
		return
	}
	if !deleted {
		c.JSON(errClaimNotFound.HTTPStatus, errClaimNotFound.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ApproveClaim godoc
// @Summary  Approve a pending claim
// @Tags     claims
// @Produce  json
// @Param    id   path      int  true  "Claim id"
// @Success  200  {object}  response.ClaimResponse
// @Failure  409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /claims/{id}/approve [patch]
func (h *ClaimHandler) ApproveClaim(c *gin.Context) {
	h.decide(c, h.claims.ApproveClaim)
}

// RejectClaim godoc
// @Summary  Reject a pending claim
// @Tags     claims
// @Produce  json
// @Param    id   path      int  true  "Claim id"
// @Success  200  {object}  response.ClaimResponse
// @Failure  409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /claims/{id}/reject [patch]
func (h *ClaimHandler) RejectClaim(c *gin.Context) {
	h.decide(c, h.claims.RejectClaim)
}

// DownloadDocument godoc
// @Summary  Download a claim's decrypted document
// @Tags     claims
// @Produce  application/octet-stream
// @Param    id  path  int  true  "Claim id"
// @Success  200
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /claims/{id}/document [get]
func (h *ClaimHandler) DownloadDocument(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := claimIDOrAbort(c)
	if !ok {
		return
	}

	doc, err := h.queries.OpenClaimDocument(c.Request.Context(), caller, id)
	if err != nil {
		log.Printf("[vault][handler] open failed claim_id=%d caller=%s err=%v", id, caller.Username, err)
		writeClaimError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+doc.Reference+`"`)
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}

func (h *ClaimHandler) decide(
	c *gin.Context,
	decide func(ctx context.Context, caller entities.Caller, id int64) (entities.Claim, error),
) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := claimIDOrAbort(c)
	if !ok {
		return
	}

	claim, err := decide(c.Request.Context(), caller, id)
	if err != nil {
		log.Printf("[claim][handler] decision failed claim_id=%d caller=%s err=%v", id, caller.Username, err)
		writeClaimError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClaim(claim))
}

func (h *ClaimHandler) list(c *gin.Context, load func() ([]entities.Claim, error)) {
	claims, err := load()
	if err != nil {
		writeClaimError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClaims(claims))
}

func readDocument(c *gin.Context) (*entities.DocumentUpload, error) {
	fh, err := c.FormFile("document")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Read one byte past the limit; the declared size still reports the full
	// length to the validator.
	content, err := io.ReadAll(io.LimitReader(f, usecase.MaxDocumentSize+1))
	if err != nil {
		return nil, err
	}
	return &entities.DocumentUpload{Filename: fh.Filename, Content: content, DeclaredSize: fh.Size}, nil
}

func callerOrAbort(c *gin.Context) (entities.Caller, bool) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
	}
	return caller, ok
}

func claimIDOrAbort(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidClaimID.HTTPStatus, errInvalidClaimID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func writeClaimError(c *gin.Context, err error) {
	appErr := mapClaimError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapClaimError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return errValidation.WithDetails(verr.Fields)
	case errors.Is(err, usecase.ErrInvalidClaimID):
		return errInvalidClaimID
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller role not allowed for this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrClaimNotFound):
		return errClaimNotFound
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubmitterNotFound):
		return pkg.NewDomainErrorSimple("SUBMITTER_PROFILE_NOT_FOUND", "No lecturer profile for this user", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Claim status cannot change this way", http.StatusConflict)
	case errors.Is(err, usecase.ErrClaimConflict):
		return pkg.NewDomainErrorSimple("CLAIM_VERSION_CONFLICT", "Claim was modified by someone else; reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrDocumentCrypto):
		return pkg.NewDomainError("DOCUMENT_UNREADABLE", "Document could not be decrypted", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
