package v1

import (
	"net/http"

	"leap-forms-backend/internal/delivery/http/response"
	"leap-forms-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteUC       domain.QuoteUsecase
	exposeDetails bool
}

// QuoteResult is the data payload of quote responses
type QuoteResult struct {
	FeeEstimates *domain.FeeEstimate `json:"feeEstimates"`
}

// NewQuoteHandler registers the quote routes; limit guards the route that sends email
func NewQuoteHandler(public *gin.RouterGroup, quoteUC domain.QuoteUsecase, exposeDetails bool, limit ...gin.HandlerFunc) {
	handler := &QuoteHandler{
		quoteUC:       quoteUC,
		exposeDetails: exposeDetails,
	}

	public.POST("/send-quote", append(limit, handler.SendQuote)...)
	public.POST("/estimate-quote", handler.EstimateQuote)
}

// SendQuote godoc
// @Summary      Submit Quote Request
// @Description  Validate a quote request, recompute the fee estimate and email the request to the firm.
// @Tags         quote
// @Accept       json
// @Produce      json
// @Param        locale  query     string                false  "Message locale (en, zh-HK)"
// @Param        quote   body      domain.QuoteEnvelope  true   "Quote Form Data"
// @Success      200     {object}  response.Response{data=QuoteResult}
// @Failure      400     {object}  response.Response
// @Failure      429     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Failure      503     {object}  response.Response
// @Router       /send-quote [post]
func (h *QuoteHandler) SendQuote(c *gin.Context) {
	var req domain.QuoteEnvelope
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	est, err := h.quoteUC.SendQuoteRequest(c.Request.Context(), &req)
	if err != nil {
		submissionError(c, err, h.exposeDetails)
		return
	}

	response.Success(c, http.StatusOK, "Quote request sent successfully", QuoteResult{FeeEstimates: est})
}

// EstimateQuote godoc
// @Summary      Estimate Fees
// @Description  Validate a quote and return the indicative fee brackets without sending email.
// @Tags         quote
// @Accept       json
// @Produce      json
// @Param        locale  query     string                  false  "Message locale (en, zh-HK)"
// @Param        quote   body      domain.QuoteSubmission  true   "Quote Form Data"
// @Success      200     {object}  response.Response{data=QuoteResult}
// @Failure      400     {object}  response.Response
// @Router       /estimate-quote [post]
func (h *QuoteHandler) EstimateQuote(c *gin.Context) {
	var req domain.QuoteSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	est, err := h.quoteUC.EstimateQuote(c.Request.Context(), &req)
	if err != nil {
		submissionError(c, err, h.exposeDetails)
		return
	}

	response.Success(c, http.StatusOK, "Fee estimate calculated", QuoteResult{FeeEstimates: est})
}
