package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bikya/bikya-backend/internal/handler/http/dto"
	usecasecontract "github.com/bikya/bikya-backend/internal/usecase/contract"
)

type DocumentHandler struct {
	documentUsecase usecasecontract.IDocumentUseCase
}

func NewDocumentHandler(documentUsecase usecasecontract.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{documentUsecase: documentUsecase}
}

// Upload stores an identity document image and queues it for review.
func (h *DocumentHandler) Upload(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		return
	}

	var req dto.UploadDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	image, err := c.FormFile("image")
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "image file is required")
		return
	}

	doc, err := h.documentUsecase.Upload(c.Request.Context(), actor, req.Type, req.Side, image)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToDocumentResponse(doc))
}

// GetDocument retrieves a document visible to the actor.
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		return
	}

	doc, err := h.documentUsecase.GetDocumentByID(c.Request.Context(), actor, c.Param("documentID"))
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToDocumentResponse(doc))
}

// GetMyDocuments lists the actor's own uploads, newest first.
func (h *DocumentHandler) GetMyDocuments(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		return
	}

	docs, err := h.documentUsecase.GetMyDocuments(c.Request.Context(), actor)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, gin.H{"documents": dto.ToDocumentResponses(docs)})
}

// GetPendingDocuments lists the review queue. Owner only.
func (h *DocumentHandler) GetPendingDocuments(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		return
	}

	docs, err := h.documentUsecase.GetPendingDocuments(c.Request.Context(), actor, parseInt64Query(c, "limit", 50))
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, gin.H{"documents": dto.ToDocumentResponses(docs)})
}

// Review approves or rejects a pending document. Owner only.
func (h *DocumentHandler) Review(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		return
	}

	var req dto.ReviewDocumentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	doc, err := h.documentUsecase.Review(c.Request.Context(), actor, c.Param("documentID"), req.Approve, req.Reason)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToDocumentResponse(doc))
}
