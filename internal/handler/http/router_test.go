package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"log/slog"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed101Noor/Ecommerce-Task/internal/domain"
	"github.com/Ahmed101Noor/Ecommerce-Task/internal/event"
	"github.com/Ahmed101Noor/Ecommerce-Task/internal/repository/memory"
	redisrepo "github.com/Ahmed101Noor/Ecommerce-Task/internal/repository/redis"
	"github.com/Ahmed101Noor/Ecommerce-Task/internal/service"
	"github.com/Ahmed101Noor/Ecommerce-Task/pkg/health"
	pkgkafka "github.com/Ahmed101Noor/Ecommerce-Task/pkg/kafka"
)

// testEnvelope mirrors the response envelope with a raw data payload so each
// test can decode into its own shape.
type testEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Error *errorResponse  `json:"error"`
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestRouter wires the full route tree against in-memory registries and a
// miniredis cart store, seeded with a small catalog and three customers.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := testLogger()
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig([]string{"localhost:19092"}), logger)
	t.Cleanup(func() { kafkaProducer.Close() })
	producer := event.NewProducer(kafkaProducer, logger)

	products := memory.NewProductRepository()
	customers := memory.NewCustomerRepository()
	carts := redisrepo.NewCartRepository(client, 24*time.Hour)

	ctx := context.Background()
	tomorrow := time.Now().UTC().AddDate(0, 0, 1)
	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	require.NoError(t, products.Add(ctx, domain.NewExpirableProduct("Cheese", 10000, 5, tomorrow, true, 400)))
	require.NoError(t, products.Add(ctx, domain.NewNonExpirableProduct("TV", 500000, 3, true, 10000)))
	require.NoError(t, products.Add(ctx, domain.NewExpirableProduct("Milk", 8000, 3, yesterday, true, 1000)))
	require.NoError(t, customers.Add(ctx, domain.NewCustomer("Ali", 100000)))
	require.NoError(t, customers.Add(ctx, domain.NewCustomer("John", 5000)))

	productService := service.NewProductService(products, logger)
	customerService := service.NewCustomerService(customers, logger)
	cartService := service.NewCartService(carts, products, producer, logger)
	checkoutService := service.NewCheckoutService(products, customers, carts, service.NewShippingService(), producer, logger, 3000)

	healthHandler := health.NewHandler()

	return NewRouter(productService, customerService, cartService, checkoutService, healthHandler, logger, nil)
}

func doJSON(t *testing.T, router http.Handler, method, path, customerID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if customerID != "" {
		req.Header.Set("X-Customer-ID", customerID)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

// --- Products ---

func TestProductAPI_Create(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/products", "", CreateProductRequest{
		Name:        "Biscuits",
		Kind:        "expirable",
		PriceCents:  15000,
		Quantity:    2,
		Shippable:   true,
		WeightGrams: 700,
		ExpiryDate:  "2030-06-01",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	require.Nil(t, env.Error)

	var product domain.Product
	require.NoError(t, json.Unmarshal(env.Data, &product))
	assert.Equal(t, "Biscuits", product.Name)
	assert.Equal(t, int64(15000), product.PriceCents)
}

func TestProductAPI_Create_Duplicate(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/products", "", CreateProductRequest{
		Name:       "TV",
		Kind:       "non_expirable",
		PriceCents: 500000,
		Quantity:   1,
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestProductAPI_Create_ValidationError(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/products", "", CreateProductRequest{
		Name: "Nameless kind",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestProductAPI_Get_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/products/Ghost", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestProductAPI_List(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/products", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)

	var products []domain.Product
	require.NoError(t, json.Unmarshal(env.Data, &products))
	require.Len(t, products, 3)
	assert.Equal(t, "Cheese", products[0].Name)
}

// --- Customers ---

func TestCustomerAPI_CreateAndCredit(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/customers", "", CreateCustomerRequest{
		Name:         "Sarah",
		BalanceCents: 20000,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/customers/Sarah/credit", "", CreditRequest{AmountCents: 5000})
	assert.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	var customer domain.Customer
	require.NoError(t, json.Unmarshal(env.Data, &customer))
	assert.Equal(t, int64(25000), customer.BalanceCents)
}

// --- Cart ---

func TestCartAPI_RequiresCustomerHeader(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/cart", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestCartAPI_AddAndGet(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", "Ali", AddItemRequest{
		ProductName: "Cheese",
		Quantity:    2,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/cart", "Ali", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	var cart domain.Cart
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "Cheese", cart.Lines[0].ProductName)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestCartAPI_AddExpiredProduct(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", "Ali", AddItemRequest{
		ProductName: "Milk",
		Quantity:    1,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "EXPIRED_PRODUCT", env.Error.Code)
}

func TestCartAPI_AddExceedingStock(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", "Ali", AddItemRequest{
		ProductName: "TV",
		Quantity:    4,
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "OUT_OF_STOCK", env.Error.Code)
}

func TestCartAPI_RemoveItem(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", "Ali", AddItemRequest{
		ProductName: "Cheese",
		Quantity:    1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/cart/items/Cheese", "Ali", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	var cart domain.Cart
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Empty(t, cart.Lines)
}

// --- Checkout ---

func TestCheckoutAPI_Success(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", "Ali", AddItemRequest{
		ProductName: "Cheese",
		Quantity:    2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/checkout", "Ali", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	var receipt domain.Receipt
	require.NoError(t, json.Unmarshal(env.Data, &receipt))
	assert.Equal(t, int64(20000), receipt.SubtotalCents)
	assert.Equal(t, int64(3000), receipt.ShippingFeeCents)
	assert.Equal(t, int64(23000), receipt.TotalCents)
	assert.Equal(t, int64(77000), receipt.BalanceCents)
	require.NotNil(t, receipt.Manifest)
	assert.Equal(t, 800, receipt.Manifest.TotalWeightGrams)

	// Cart is cleared after a successful checkout.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/cart", "Ali", nil)
	env = decodeEnvelope(t, rec)
	var cart domain.Cart
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Empty(t, cart.Lines)
}

func TestCheckoutAPI_EmptyCart(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/checkout", "Ali", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "EMPTY_CART", env.Error.Code)
}

func TestCheckoutAPI_InsufficientBalance(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", "John", AddItemRequest{
		ProductName: "TV",
		Quantity:    1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/checkout", "John", nil)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INSUFFICIENT_BALANCE", env.Error.Code)
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
