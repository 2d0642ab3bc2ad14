package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"dealScout/business/ranking"
	"dealScout/domain"
	"dealScout/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RankingHandler struct {
		validate       *validator.Validate
		rankingService RankingQueryService
		topK           int
		timeout        time.Duration
	}

	RankingQueryService interface {
		RankByQuery(ctx context.Context, query string, k int) (domain.RankingResult, error)
		StrategyName() string
	}

	ChatRequest struct {
		Message string `json:"message"`
	}

	ChatOffer struct {
		Name      string            `json:"name"`
		Platform  string            `json:"platform"`
		Price     string            `json:"price"`
		Rating    any               `json:"rating"`
		Score     float64           `json:"score"`
		IsTrusted bool              `json:"is_trusted"`
		Specs     map[string]string `json:"specs"`
	}

	ChatResponse struct {
		Bot         string      `json:"bot"`
		Products    []ChatOffer `json:"products"`
		Image       string      `json:"image,omitempty"`
		Description string      `json:"description,omitempty"`
	}

	DealsQuery struct {
		Q string `query:"q" validate:"required"`
		K int    `query:"k"`
	}
)

func NewRankingHandler(rankingService RankingQueryService, topK int) *RankingHandler {
	return &RankingHandler{
		validate:       validator.New(),
		rankingService: rankingService,
		topK:           topK,
		timeout:        10 * time.Second,
	}
}

// Chat mirrors the conversational storefront flow: free text in, top
// deals plus a bot line out. Misses are part of the conversation, so
// not-found and no-offers answer 200 with a distinct message.
func (h *RankingHandler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if req.Message == "" {
		return c.JSON(http.StatusOK, ChatResponse{
			Bot:      "Please type a product name to search",
			Products: []ChatOffer{},
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.rankingService.RankByQuery(ctx, req.Message, h.topK)
	if err != nil {
		switch {
		case errors.Is(err, ranking.ErrProductNotFound):
			return c.JSON(http.StatusOK, ChatResponse{
				Bot:      fmt.Sprintf("Sorry, I couldn't find '%s' in our catalog.", req.Message),
				Products: []ChatOffer{},
			})
		case errors.Is(err, ranking.ErrNoOffers):
			return c.JSON(http.StatusOK, ChatResponse{
				Bot:      fmt.Sprintf("No offers found for '%s' right now.", req.Message),
				Products: []ChatOffer{},
			})
		default:
			logger.Error("Failed to rank offers", err)
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
		}
	}

	offers := make([]ChatOffer, 0, len(result.Offers))
	for _, row := range result.Offers {
		offers = append(offers, formatOffer(row))
	}

	return c.JSON(http.StatusOK, ChatResponse{
		Bot:         fmt.Sprintf("Here are the top %d deals I found for %s:", len(offers), result.ProductName),
		Products:    offers,
		Image:       result.BaseImageURL,
		Description: result.Description,
	})
}

// Deals is the raw API twin of Chat: scored rows, explicit status codes.
func (h *RankingHandler) Deals(c echo.Context) error {
	var q DealsQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if q.K <= 0 {
		q.K = h.topK
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.rankingService.RankByQuery(ctx, q.Q, q.K)
	if err != nil {
		switch {
		case errors.Is(err, ranking.ErrProductNotFound):
			return c.JSON(http.StatusNotFound, ResponseError{Message: "product not found"})
		case errors.Is(err, ranking.ErrNoOffers):
			return c.JSON(http.StatusNotFound, ResponseError{Message: "no offers for product"})
		default:
			logger.Error("Failed to rank offers", err)
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
		}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

func formatOffer(row domain.ScoredRow) ChatOffer {
	price := "N/A"
	if row.Price != nil {
		price = "₹" + groupDigits(int64(*row.Price))
	}

	var rating any = "N/A"
	if row.Rating != nil {
		rating = float64(int(*row.Rating*10+0.5)) / 10
	}

	seller := row.SellerName
	if seller == "" {
		seller = "Unknown Seller"
	}

	trusted := row.IsTrustedSeller != nil && *row.IsTrustedSeller

	return ChatOffer{
		Name:      row.ProductName,
		Platform:  seller,
		Price:     price,
		Rating:    rating,
		Score:     float64(int(row.Score*1000+0.5)) / 1000,
		IsTrusted: trusted,
		Specs:     row.Specifications,
	}
}

// groupDigits renders 1234567 as "1,234,567".
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}

	out := make([]byte, 0, len(s)+len(s)/3)
	for i, ch := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, ch)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}
