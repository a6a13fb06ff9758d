package v1

import (
	"net/http"

	"leap-forms-backend/internal/delivery/http/response"
	"leap-forms-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC     domain.ContactUsecase
	exposeDetails bool
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, exposeDetails bool, limit ...gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC:     contactUC,
		exposeDetails: exposeDetails,
	}

	public.POST("/send-contact", append(limit, handler.SendContact)...)
}

// SendContact godoc
// @Summary      Submit Contact Form
// @Description  Validate a contact inquiry and email it to the firm with Reply-To set to the submitter.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        locale   query     string                  false  "Message locale (en, zh-HK)"
// @Param        contact  body      domain.ContactEnvelope  true   "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /send-contact [post]
func (h *ContactHandler) SendContact(c *gin.Context) {
	var req domain.ContactEnvelope
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		submissionError(c, err, h.exposeDetails)
		return
	}

	response.Success(c, http.StatusOK, "Contact form sent successfully", nil)
}
