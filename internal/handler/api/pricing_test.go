//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"price-in-time/internal/handler/api"
	resdto "price-in-time/internal/handler/dto/response"
	"price-in-time/internal/pkg/errs"
	"price-in-time/internal/usecase/queries"
	"price-in-time/tests/common/httptest"
	"price-in-time/tests/common/testutil"
	queriesmock "price-in-time/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockPricing *queriesmock.MockPricingQueries
	mockOrders  *queriesmock.MockOrderQueries
	handler     *api.PricingHandler
}

func (s *PricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPricing = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.mockOrders = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewPricingHandler(s.mockPricing, s.mockOrders)

	s.router.GET("/skus/:sku/price", s.handler.ResolvePrice)
	s.router.POST("/orders/quote", s.handler.QuoteOrder)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

// ================================================================================
// TestResolvePrice
// ================================================================================

func (s *PricingHandlerTestSuite) TestResolvePrice() {
	url := "/skus/SKU-1/price?product_type=flower&base_number=10.00&base_currency=USD"

	s.Run("success: returns 200 with overridden price", func() {
		slotID := "aaaa0000aaaa0000aaaa"
		view := &queries.PriceView{
			Number:       "7.50",
			CurrencyCode: "USD",
			Overridden:   true,
			SlotID:       &slotID,
			ResolvedAt:   "10:30:00",
		}
		s.mockPricing.EXPECT().ResolvePrice(gomock.Any(), queries.ResolvePriceRequest{
			SKU:          "SKU-1",
			ProductType:  "flower",
			BaseNumber:   "10.00",
			BaseCurrency: "USD",
		}).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var resp resdto.PriceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("SKU-1", resp.SKU)
		s.Equal("7.50", resp.Number)
		s.True(resp.Overridden)
		s.Require().NotNil(resp.SlotID)
		s.Equal(slotID, *resp.SlotID)
	})

	s.Run("success: returns 200 with base price when nothing covers", func() {
		view := &queries.PriceView{Number: "10.00", CurrencyCode: "USD", ResolvedAt: "03:00:00"}
		s.mockPricing.EXPECT().ResolvePrice(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var resp resdto.PriceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.False(resp.Overridden)
		s.Nil(resp.SlotID)
	})

	s.Run("error: returns 400 when query params are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/skus/SKU-1/price?product_type=flower", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "required")
	})

	s.Run("error: returns 400 for malformed base price", func() {
		s.mockPricing.EXPECT().ResolvePrice(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("bad amount"), errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid base price")
	})
}

// ================================================================================
// TestQuoteOrder
// ================================================================================

func (s *PricingHandlerTestSuite) TestQuoteOrder() {
	url := "/orders/quote"

	validBody := func() map[string]any {
		return map[string]any{
			"order_id": uuid.NewString(),
			"items": []map[string]any{
				{"sku": "SKU-1", "product_type": "flower"},
			},
			"shipment": map[string]any{"number": "5.00", "currency_code": "USD"},
		}
	}

	s.Run("success: returns 200 with free-shipping adjustment", func() {
		slotID := "bbbb1111bbbb1111bbbb"
		view := &queries.OrderQuoteView{
			FreeShipping: true,
			SlotID:       &slotID,
			Adjustment: &queries.AdjustmentView{
				Type:         queries.FreeShippingAdjustmentType,
				Label:        queries.FreeShippingAdjustmentLabel,
				Number:       "-5.00",
				CurrencyCode: "USD",
			},
			ResolvedAt: "14:00:00",
		}
		s.mockOrders.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody(), "")

		var resp resdto.OrderQuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.FreeShipping)
		s.Require().NotNil(resp.Adjustment)
		s.Equal("price_in_time__free_shipping", resp.Adjustment.Type)
		s.Equal("Free shipping bonus", resp.Adjustment.Label)
		s.Equal("-5.00", resp.Adjustment.Number)
	})

	s.Run("success: returns 200 without waiver", func() {
		view := &queries.OrderQuoteView{ResolvedAt: "03:00:00"}
		s.mockOrders.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody(), "")

		var resp resdto.OrderQuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.False(resp.FreeShipping)
		s.Nil(resp.Adjustment)
	})

	// Binding validation
	invalid := []testCaseSlots{
		{name: "missing field: order_id", mutate: testutil.Field("order_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: items", mutate: testutil.Field("items", nil), expectCode: http.StatusBadRequest},
		{name: "empty items", mutate: testutil.Field("items", []map[string]any{}), expectCode: http.StatusBadRequest},
		{name: "shipment currency wrong length", mutate: func(m map[string]any) {
			m["shipment"].(map[string]any)["currency_code"] = "US"
		}, expectCode: http.StatusBadRequest},
	}

	for _, tc := range invalid {
		s.Run(tc.name, func() {
			reqBody := validBody()
			tc.mutate(reqBody)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	s.Run("error: returns 400 for malformed shipment amount", func() {
		s.mockOrders.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("bad amount"), errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid shipment amount")
	})
}
