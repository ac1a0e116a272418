package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"epp-portal/internal/auth"
	"epp-portal/internal/basket"
	"epp-portal/internal/catalog"
	"epp-portal/internal/handlers"
	"epp-portal/internal/routes"
)

// stubTransport records the last delivery instead of sending email.
type stubTransport struct {
	err     error
	orderID string
	subject string
	text    string
	html    string
}

func (s *stubTransport) Deliver(orderID, subject, text, html string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.orderID = orderID
	s.subject = subject
	s.text = text
	s.html = html
	return "receipt-" + orderID, nil
}

func newTestRouter(t *testing.T, transport *stubTransport) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return routes.SetupRouter(&handlers.Handlers{
		Catalog:        catalog.Default,
		Basket:         basket.New(catalog.Default),
		Transport:      transport,
		PortalPassword: "open-sesame",
	})
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func sessionToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken()
	require.NoError(t, err)
	return token
}

func validOrderBody() map[string]interface{} {
	return map[string]interface{}{
		"basket": []map[string]interface{}{
			{
				"category": "iPhone",
				"model":    "iPhone 16e",
				"specs":    "iPhone 16e",
				"color":    "Black",
				"storage":  "256GB",
			},
		},
		"delivery": map[string]interface{}{
			"method":        "pickup",
			"storeLocation": "covent-garden",
			"contact": map[string]interface{}{
				"email": "sam@example.com",
				"phone": "07700900123",
			},
		},
		"checkCompleted": true,
	}
}

func TestLogin(t *testing.T) {
	router := newTestRouter(t, &stubTransport{})

	rec := doJSON(router, http.MethodPost, "/v1/auth/epp", "", map[string]string{"password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(router, http.MethodPost, "/v1/auth/epp", "", map[string]string{"password": "open-sesame"})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	assert.NoError(t, auth.ValidateToken(token))

	// Login also sets the session cookie.
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "auth-token", cookies[0].Name)
}

func TestOrderingFlowRequiresSession(t *testing.T) {
	router := newTestRouter(t, &stubTransport{})

	rec := doJSON(router, http.MethodGet, "/v1/epp/basket", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(router, http.MethodPost, "/v1/epp/order", "garbage-token", validOrderBody())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	router := newTestRouter(t, &stubTransport{})

	rec := doJSON(router, http.MethodGet, "/v1/catalog/categories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "iPhone")

	rec = doJSON(router, http.MethodGet, "/v1/catalog/iPhone/models", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "iPhone 16e")

	rec = doJSON(router, http.MethodGet, "/v1/catalog/Toaster/models", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(router, http.MethodGet, "/v1/catalog/iPhone/models/iPhone%2016e/options?spec=iPhone%2016e", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "256GB")
}

func TestQuotePrice(t *testing.T) {
	router := newTestRouter(t, &stubTransport{})

	rec := doJSON(router, http.MethodPost, "/v1/catalog/price", "", map[string]interface{}{
		"category": "iPhone",
		"model":    "iPhone 16e",
		"specs":    "iPhone 16e",
		"storage":  "256GB",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, float64(699), body["total"])
	assert.InDelta(t, 118.83, body["discount"], 0.001)
	assert.InDelta(t, 580.17, body["finalPrice"], 0.001)
}

func TestBasketFlow(t *testing.T) {
	router := newTestRouter(t, &stubTransport{})
	token := sessionToken(t)

	rec := doJSON(router, http.MethodPost, "/v1/epp/basket/items", token, map[string]interface{}{
		"category": "iPhone",
		"model":    "iPhone 16e",
		"specs":    "iPhone 16e",
		"color":    "Black",
		"storage":  "256GB",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decode(t, rec)
	item, _ := body["item"].(map[string]interface{})
	require.NotNil(t, item)
	itemID, _ := item["id"].(string)
	require.NotEmpty(t, itemID)
	assert.Equal(t, float64(699), item["estimatedPrice"])

	rec = doJSON(router, http.MethodGet, "/v1/epp/basket", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, float64(1), body["totalItems"])
	assert.Equal(t, float64(699), body["estimated"])

	rec = doJSON(router, http.MethodDelete, "/v1/epp/basket/items/"+itemID, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodDelete, "/v1/epp/basket/items/"+itemID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddBasketItemRejectsInvalid(t *testing.T) {
	router := newTestRouter(t, &stubTransport{})
	token := sessionToken(t)

	rec := doJSON(router, http.MethodPost, "/v1/epp/basket/items", token, map[string]interface{}{
		"category": "iPhone",
		"model":    "iPhone 16e",
		"specs":    "iPhone 16e",
		"color":    "Ultramarine",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "details")
}

func TestSubmitOrder(t *testing.T) {
	transport := &stubTransport{}
	router := newTestRouter(t, transport)
	token := sessionToken(t)

	rec := doJSON(router, http.MethodPost, "/v1/epp/order", token, validOrderBody())
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	orderID, _ := body["orderId"].(string)
	assert.True(t, strings.HasPrefix(orderID, "EPP-"))
	assert.Equal(t, "receipt-"+orderID, body["receiptId"])

	assert.Equal(t, orderID, transport.orderID)
	assert.Contains(t, transport.subject, "sam@example.com")
	assert.Contains(t, transport.text, "iPhone 16e")
	assert.Contains(t, transport.html, "Order Summary")
}

func TestSubmitOrderClearsBasket(t *testing.T) {
	router := newTestRouter(t, &stubTransport{})
	token := sessionToken(t)

	rec := doJSON(router, http.MethodPost, "/v1/epp/basket/items", token, map[string]interface{}{
		"category": "iPhone",
		"model":    "iPhone 16e",
		"specs":    "iPhone 16e",
		"color":    "Black",
		"storage":  "256GB",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(router, http.MethodPost, "/v1/epp/order", token, validOrderBody())
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodGet, "/v1/epp/basket", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decode(t, rec)["totalItems"])
}

func TestSubmitOrderRejectsInvalid(t *testing.T) {
	router := newTestRouter(t, &stubTransport{})
	token := sessionToken(t)

	order := validOrderBody()
	order["checkCompleted"] = false
	rec := doJSON(router, http.MethodPost, "/v1/epp/order", token, order)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid order data")
	assert.Contains(t, rec.Body.String(), "checkCompleted")

	// Basket items are re-checked against the catalog on submission.
	order = validOrderBody()
	order["basket"].([]map[string]interface{})[0]["color"] = "Ultramarine"
	rec = doJSON(router, http.MethodPost, "/v1/epp/order", token, order)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "basket[0].color")
}

func TestSubmitOrderTransportFailure(t *testing.T) {
	router := newTestRouter(t, &stubTransport{err: errors.New("provider down")})
	token := sessionToken(t)

	rec := doJSON(router, http.MethodPost, "/v1/epp/order", token, validOrderBody())
	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to process order")
}
