package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dealScout/business/ranking"
	"dealScout/domain"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRankingService struct {
	result domain.RankingResult
	err    error
}

func (s *stubRankingService) RankByQuery(context.Context, string, int) (domain.RankingResult, error) {
	return s.result, s.err
}

func (*stubRankingService) StrategyName() string { return "fallback" }

func f64(v float64) *float64 { return &v }

func rankedResult() domain.RankingResult {
	trusted := true
	return domain.RankingResult{
		ProductName:  "Acme Phone X",
		Description:  "A phone",
		BaseImageURL: "https://img.example/acme.png",
		Strategy:     "fallback",
		Offers: []domain.ScoredRow{
			{
				FeatureRow: domain.FeatureRow{
					ProductName:     "Acme Phone X",
					SellerName:      "ShopA",
					Price:           f64(79999),
					Rating:          f64(4.256),
					IsTrustedSeller: &trusted,
					Specifications:  map[string]string{"RAM": "8 GB"},
				},
				Score: 0.45678,
			},
		},
	}
}

func postChat(t *testing.T, svc RankingQueryService, body string) (*httptest.ResponseRecorder, ChatResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewRankingHandler(svc, 3)
	require.NoError(t, h.Chat(c))

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestChatFormatsOffers(t *testing.T) {
	rec, resp := postChat(t, &stubRankingService{result: rankedResult()}, `{"message":"acme phone"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Here are the top 1 deals I found for Acme Phone X:", resp.Bot)
	require.Len(t, resp.Products, 1)

	offer := resp.Products[0]
	assert.Equal(t, "ShopA", offer.Platform)
	assert.Equal(t, "₹79,999", offer.Price)
	assert.Equal(t, 4.3, offer.Rating)
	assert.Equal(t, 0.457, offer.Score)
	assert.True(t, offer.IsTrusted)
	assert.Equal(t, "8 GB", offer.Specs["RAM"])
}

func TestChatMissesAnswer200(t *testing.T) {
	rec, resp := postChat(t, &stubRankingService{err: ranking.ErrProductNotFound}, `{"message":"xyz"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, resp.Bot, "couldn't find 'xyz'")
	assert.Empty(t, resp.Products)

	rec, resp = postChat(t, &stubRankingService{err: ranking.ErrNoOffers}, `{"message":"ghost"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, resp.Bot, "No offers found")
}

func TestChatEmptyMessagePrompts(t *testing.T) {
	rec, resp := postChat(t, &stubRankingService{}, `{"message":""}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Please type a product name to search", resp.Bot)
}

func TestDealsStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"ok", nil, http.StatusOK},
		{"not found", ranking.ErrProductNotFound, http.StatusNotFound},
		{"no offers", ranking.ErrNoOffers, http.StatusNotFound},
		{"backend error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/deals?q=acme", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h := NewRankingHandler(&stubRankingService{result: rankedResult(), err: tt.err}, 3)
			require.NoError(t, h.Deals(c))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestDealsRequiresQuery(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/deals", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewRankingHandler(&stubRankingService{}, 3)
	require.NoError(t, h.Deals(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{79999, "79,999"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, groupDigits(tt.in))
	}
}
