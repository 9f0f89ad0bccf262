package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"example.com/travelagency/internal/admin"
	"example.com/travelagency/internal/database"
	"example.com/travelagency/internal/models"
	"example.com/travelagency/internal/repository"
	"example.com/travelagency/internal/service"
)

func setupRouter(t *testing.T) (*gin.Engine, repository.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	wrapped := database.Wrap(db)
	require.NoError(t, database.AutoMigrate(wrapped))

	log := logrus.New()
	log.SetOutput(io.Discard)

	repo := repository.NewRepository(wrapped)
	svc := service.NewService(service.ServiceConfig{Repo: repo, Logger: log})
	registry := admin.NewRegistry(repo, svc)

	lookup, err := admin.ResolvePrincipal("employee", repo)
	require.NoError(t, err)

	r := gin.New()
	SetupRoutes(r, svc, registry, lookup, log)
	return r, repo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func passportPayload() map[string]any {
	return map[string]any{
		"series":         4412,
		"number":         123456,
		"issued_at":      "2020-01-10T00:00:00Z",
		"expires_at":     "2030-01-10T00:00:00Z",
		"place_of_issue": "Minsk",
		"type":           "foreign",
	}
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decodeBody(t, w)["status"])
}

func TestPassportLifecycle(t *testing.T) {
	r, _ := setupRouter(t)

	// Create
	w := doJSON(t, r, http.MethodPost, "/api/v1/passport", passportPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	id := uint(created["id"].(float64))
	require.NotZero(t, id)

	// List
	w = doJSON(t, r, http.MethodGet, "/api/v1/passport", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	// Retrieve
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/passport/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(123456), decodeBody(t, w)["number"])

	// Partial update keeps unrelated fields
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/passport/%d", id), map[string]any{"number": 654321})
	require.Equal(t, http.StatusOK, w.Code)
	patched := decodeBody(t, w)
	assert.Equal(t, float64(654321), patched["number"])
	assert.Equal(t, "Minsk", patched["place_of_issue"])

	// Full replace
	replacement := passportPayload()
	replacement["place_of_issue"] = "Grodno"
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/v1/passport/%d", id), replacement)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Grodno", decodeBody(t, w)["place_of_issue"])

	// Delete
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/passport/%d", id), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/passport/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePassportRejectsUnknownKind(t *testing.T) {
	r, _ := setupRouter(t)

	payload := passportPayload()
	payload["type"] = "diplomatic"

	w := doJSON(t, r, http.MethodPost, "/api/v1/passport", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "type", decodeBody(t, w)["field"])
}

func TestPartialUpdateMissingRecord(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/v1/passport/42", map[string]any{"number": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientLifecycle(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/passport", passportPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	passportID := decodeBody(t, w)["id"].(float64)

	w = doJSON(t, r, http.MethodPost, "/api/v1/client", map[string]any{
		"full_name":            "Ivanov Ivan Ivanovich",
		"date_of_birth":        "1990-05-20T00:00:00Z",
		"place_of_birth":       "Minsk",
		"domestic_passport_id": passportID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	clientID := created["id"].(float64)
	assert.Equal(t, "common", created["status"])
	assert.Equal(t, "male", created["gender"])

	// Promote the client
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/client/%v", clientID), map[string]any{"status": "vip"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "vip", decodeBody(t, w)["status"])

	// Deleting the passport removes its holder
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/passport/%v", passportID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/client/%v", clientID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateClientUnknownPassportRef(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/client", map[string]any{
		"full_name":            "Ivanov Ivan Ivanovich",
		"date_of_birth":        "1990-05-20T00:00:00Z",
		"place_of_birth":       "Minsk",
		"domestic_passport_id": 999,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "domestic_passport_id", decodeBody(t, w)["field"])
}

func createStaff(t *testing.T, repo repository.Repository, superuser bool, username string) {
	t.Helper()

	var e *models.Employee
	var err error
	if superuser {
		e, err = models.NewSuperuser(username, "Anna", "Petrova", "Sergeevna", "topsecret")
	} else {
		e, err = models.NewEmployee(username, "Ivan", "Ivanov", "Ivanovich", "topsecret")
	}
	require.NoError(t, err)
	require.NoError(t, repo.CreateEmployee(context.Background(), e))
}

func doAdmin(t *testing.T, r *gin.Engine, method, path, username, password string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if username != "" {
		req.SetBasicAuth(username, password)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminRequiresCredentials(t *testing.T) {
	r, _ := setupRouter(t)

	w := doAdmin(t, r, http.MethodGet, "/admin/country", "", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRejectsBadPassword(t *testing.T) {
	r, repo := setupRouter(t)
	createStaff(t, repo, true, "boss")

	w := doAdmin(t, r, http.MethodGet, "/admin/country", "boss", "wrong", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRejectsPlainEmployee(t *testing.T) {
	r, repo := setupRouter(t)
	createStaff(t, repo, false, "clerk")

	w := doAdmin(t, r, http.MethodGet, "/admin/country", "clerk", "topsecret", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminEntityManagement(t *testing.T) {
	r, repo := setupRouter(t)
	createStaff(t, repo, true, "boss")

	// Entity directory
	w := doAdmin(t, r, http.MethodGet, "/admin", "boss", "topsecret", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var directory map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &directory))
	assert.Len(t, directory["entities"], 15)
	assert.Contains(t, directory["entities"], "voucher")

	// Create and list a country
	w = doAdmin(t, r, http.MethodPost, "/admin/country", "boss", "topsecret", map[string]any{"name": "Egypt"})
	require.Equal(t, http.StatusCreated, w.Code)
	countryID := decodeBody(t, w)["id"].(float64)

	w = doAdmin(t, r, http.MethodGet, "/admin/country", "boss", "topsecret", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var countries []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &countries))
	assert.Len(t, countries, 1)

	// Rename it
	w = doAdmin(t, r, http.MethodPatch, fmt.Sprintf("/admin/country/%v", countryID), "boss", "topsecret",
		map[string]any{"name": "Morocco"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Morocco", decodeBody(t, w)["name"])

	// Remove it
	w = doAdmin(t, r, http.MethodDelete, fmt.Sprintf("/admin/country/%v", countryID), "boss", "topsecret", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAdminUnknownEntity(t *testing.T) {
	r, repo := setupRouter(t)
	createStaff(t, repo, true, "boss")

	w := doAdmin(t, r, http.MethodGet, "/admin/starship", "boss", "topsecret", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminCurrencyImmutable(t *testing.T) {
	r, repo := setupRouter(t)
	createStaff(t, repo, true, "boss")

	w := doAdmin(t, r, http.MethodPost, "/admin/currency", "boss", "topsecret",
		map[string]any{"code": "USD", "rate": 3.2})
	require.Equal(t, http.StatusCreated, w.Code)
	currencyID := decodeBody(t, w)["id"].(float64)

	w = doAdmin(t, r, http.MethodPut, fmt.Sprintf("/admin/currency/%v", currencyID), "boss", "topsecret",
		map[string]any{"code": "USD", "rate": 3.4})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The stored quote is untouched
	w = doAdmin(t, r, http.MethodGet, fmt.Sprintf("/admin/currency/%v", currencyID), "boss", "topsecret", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3.2, decodeBody(t, w)["rate"])
}

func TestAdminEmployeeCreateHashesPassword(t *testing.T) {
	r, repo := setupRouter(t)
	createStaff(t, repo, true, "boss")

	w := doAdmin(t, r, http.MethodPost, "/admin/employee", "boss", "topsecret", map[string]any{
		"username":    "agent",
		"first_name":  "Ivan",
		"last_name":   "Ivanov",
		"middle_name": "Ivanovich",
		"password":    "secret",
		"role":        "manager",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	assert.Equal(t, "agent", created["username"])
	assert.NotContains(t, w.Body.String(), "secret")

	stored, err := repo.FindEmployeeByUsername(context.Background(), "agent")
	require.NoError(t, err)
	assert.True(t, stored.VerifyCredential("secret"))
}

// seedPayment persists the whole booking chain down to an unsettled
// payment and returns it.
func seedPayment(t *testing.T, repo repository.Repository) *models.Payment {
	t.Helper()
	ctx := context.Background()

	passport := &models.Passport{
		Series:       4412,
		Number:       700001,
		IssuedAt:     time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC),
		ExpiresAt:    time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC),
		PlaceOfIssue: "Minsk",
		Kind:         models.PassportForeign,
	}
	require.NoError(t, repo.CreatePassport(ctx, passport))

	client := &models.Client{
		FullName:           "Ivanov Ivan Ivanovich",
		Gender:             models.GenderMale,
		DateOfBirth:        time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		PlaceOfBirth:       "Minsk",
		Status:             models.ClientCommon,
		DomesticPassportID: passport.ID,
	}
	require.NoError(t, repo.CreateClient(ctx, client))

	employee, err := models.NewEmployee("agent", "Anna", "Petrova", "Sergeevna", "secret")
	require.NoError(t, err)
	require.NoError(t, repo.CreateEmployee(ctx, employee))

	country := &models.Country{Name: "Egypt"}
	require.NoError(t, repo.CreateCountry(ctx, country))

	city := &models.City{Name: "Hurghada", CountryID: country.ID}
	require.NoError(t, repo.CreateCity(ctx, city))

	hotel := &models.Hotel{
		Name:     "Sea Breeze",
		Category: models.HotelFourStar,
		Address:  "Corniche road 5",
		CityID:   city.ID,
	}
	require.NoError(t, repo.CreateHotel(ctx, hotel))

	room := &models.Room{Name: "204", Beds: 2, MaxGuests: 3, HotelID: hotel.ID}
	require.NoError(t, repo.CreateRoom(ctx, room))

	route := &models.Route{
		StartDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC),
		CityID:    city.ID,
		HotelID:   hotel.ID,
		RoomID:    room.ID,
	}
	require.NoError(t, repo.CreateRoute(ctx, route))

	tour := &models.Tour{CountryID: country.ID}
	require.NoError(t, repo.CreateTour(ctx, tour, []uint{route.ID}))

	agreement := &models.PreAgreement{
		StartDate:  route.StartDate,
		EndDate:    route.EndDate,
		ClientID:   client.ID,
		EmployeeID: employee.ID,
	}
	require.NoError(t, repo.CreatePreAgreement(ctx, agreement, []uint{city.ID}))

	currency := &models.Currency{Code: "USD", Rate: 3.2}
	require.NoError(t, repo.CreateCurrency(ctx, currency))

	contract := &models.Contract{
		StartDate:      agreement.StartDate,
		EndDate:        agreement.EndDate,
		Amount:         1500,
		CurrencyID:     currency.ID,
		TourID:         tour.ID,
		PreAgreementID: agreement.ID,
		EmployeeID:     employee.ID,
	}
	require.NoError(t, repo.CreateContract(ctx, contract, []uint{client.ID}))

	payment := &models.Payment{
		ExpiresAt:  time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		AmountBase: 4800,
		EmployeeID: employee.ID,
		ContractID: contract.ID,
	}
	require.NoError(t, repo.CreatePayment(ctx, payment))

	return payment
}

func TestAdminPaymentSettlementAndVoucher(t *testing.T) {
	r, repo := setupRouter(t)
	createStaff(t, repo, true, "boss")
	payment := seedPayment(t, repo)

	// A voucher cannot be issued while the payment is open
	w := doAdmin(t, r, http.MethodPost, fmt.Sprintf("/admin/payment/%d/voucher", payment.ID), "boss", "topsecret",
		map[string]any{"transport": "bus"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "payment_id", decodeBody(t, w)["field"])

	// Settle it
	w = doAdmin(t, r, http.MethodPost, fmt.Sprintf("/admin/payment/%d/settle", payment.ID), "boss", "topsecret", nil)
	require.Equal(t, http.StatusOK, w.Code)
	settled := decodeBody(t, w)
	assert.Equal(t, true, settled["paid"])
	assert.NotEmpty(t, settled["paid_at"])

	// Now the voucher goes through with generated travel documents
	w = doAdmin(t, r, http.MethodPost, fmt.Sprintf("/admin/payment/%d/voucher", payment.ID), "boss", "topsecret",
		map[string]any{"transfer_included": true, "transport": "bus"})
	require.Equal(t, http.StatusCreated, w.Code)
	voucher := decodeBody(t, w)
	assert.Equal(t, "bus", voucher["transport"])
	assert.Equal(t, true, voucher["transfer_included"])
	assert.NotEmpty(t, voucher["travel_docs"])
}

func TestAdminVoucherRejectsUnknownTransport(t *testing.T) {
	r, repo := setupRouter(t)
	createStaff(t, repo, true, "boss")
	payment := seedPayment(t, repo)

	w := doAdmin(t, r, http.MethodPost, fmt.Sprintf("/admin/payment/%d/settle", payment.ID), "boss", "topsecret", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doAdmin(t, r, http.MethodPost, fmt.Sprintf("/admin/payment/%d/voucher", payment.ID), "boss", "topsecret",
		map[string]any{"transport": "train"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "transport", decodeBody(t, w)["field"])
}

func TestAdminSettlementOnWrongEntity(t *testing.T) {
	r, repo := setupRouter(t)
	createStaff(t, repo, true, "boss")

	w := doAdmin(t, r, http.MethodPost, "/admin/tour/1/settle", "boss", "topsecret", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminSettlementRequiresCredentials(t *testing.T) {
	r, _ := setupRouter(t)

	w := doAdmin(t, r, http.MethodPost, "/admin/payment/1/settle", "", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminEmployeeMissingMiddleName(t *testing.T) {
	r, repo := setupRouter(t)
	createStaff(t, repo, true, "boss")

	w := doAdmin(t, r, http.MethodPost, "/admin/employee", "boss", "topsecret", map[string]any{
		"username":   "agent",
		"first_name": "Ivan",
		"last_name":  "Ivanov",
		"password":   "secret",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "middlename", decodeBody(t, w)["field"])
}
