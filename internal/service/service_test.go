package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"example.com/travelagency/internal/models"
	"example.com/travelagency/internal/repository"
	"example.com/travelagency/internal/serializers"
)

// MockRepository stubs the data layer. Only the methods a test arms
// with expectations may be called; anything else panics through the
// embedded interface.
type MockRepository struct {
	mock.Mock
	repository.Repository
}

func (m *MockRepository) CreateClient(ctx context.Context, client *models.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockRepository) FindClientByID(ctx context.Context, id uint) (*models.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockRepository) SaveClient(ctx context.Context, client *models.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockRepository) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockRepository) FindPaymentByID(ctx context.Context, id uint) (*models.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockRepository) SavePayment(ctx context.Context, payment *models.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockRepository) CreateVoucher(ctx context.Context, voucher *models.Voucher) error {
	args := m.Called(ctx, voucher)
	return args.Error(0)
}

func (m *MockRepository) CreatePassport(ctx context.Context, passport *models.Passport) error {
	args := m.Called(ctx, passport)
	return args.Error(0)
}

func testService(repo repository.Repository) Service {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewService(ServiceConfig{Repo: repo, Logger: log})
}

func strPtr(s string) *string        { return &s }
func intPtr(i int) *int              { return &i }
func uintPtr(u uint) *uint           { return &u }
func timePtr(t time.Time) *time.Time { return &t }

func TestCreateClientStopsOnValidation(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := testService(mockRepo)

	// Required field missing, the repository must never be touched
	in := &serializers.ClientSerializer{FullName: strPtr("Ivanov Ivan Ivanovich")}
	_, err := svc.CreateClient(context.Background(), in)

	require.Error(t, err)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	mockRepo.AssertNotCalled(t, "CreateClient", mock.Anything, mock.Anything)
}

func TestCreateClientPersists(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("CreateClient", mock.Anything, mock.AnythingOfType("*models.Client")).Return(nil)
	svc := testService(mockRepo)

	in := &serializers.ClientSerializer{
		FullName:           strPtr("Ivanov Ivan Ivanovich"),
		DateOfBirth:        timePtr(time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)),
		PlaceOfBirth:       strPtr("Minsk"),
		DomesticPassportID: uintPtr(1),
	}
	out, err := svc.CreateClient(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "Ivanov Ivan Ivanovich", *out.FullName)
	assert.Equal(t, "common", *out.Status)
	mockRepo.AssertExpectations(t)
}

func TestUpdateClientAppliesPartialInput(t *testing.T) {
	mockRepo := new(MockRepository)
	existing := &models.Client{
		Model:              models.Model{ID: 8},
		FullName:           "Ivanov Ivan Ivanovich",
		Gender:             models.GenderMale,
		Status:             models.ClientCommon,
		DomesticPassportID: 1,
	}
	mockRepo.On("FindClientByID", mock.Anything, uint(8)).Return(existing, nil)
	mockRepo.On("SaveClient", mock.Anything, mock.AnythingOfType("*models.Client")).Return(nil)
	svc := testService(mockRepo)

	out, err := svc.UpdateClient(context.Background(), 8, &serializers.ClientSerializer{Status: strPtr("vip")})

	require.NoError(t, err)
	assert.Equal(t, "vip", *out.Status)
	assert.Equal(t, "Ivanov Ivan Ivanovich", *out.FullName)
	mockRepo.AssertExpectations(t)
}

func TestUpdateClientRejectsBadChoice(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := testService(mockRepo)

	_, err := svc.UpdateClient(context.Background(), 8, &serializers.ClientSerializer{Status: strPtr("gold")})

	require.Error(t, err)
	mockRepo.AssertNotCalled(t, "FindClientByID", mock.Anything, mock.Anything)
}

func TestGetClientPropagatesNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("FindClientByID", mock.Anything, uint(99)).Return(nil, repository.ErrNotFound)
	svc := testService(mockRepo)

	_, err := svc.GetClient(context.Background(), 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateSuperuser(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("CreateEmployee", mock.Anything, mock.AnythingOfType("*models.Employee")).Return(nil)
	svc := testService(mockRepo)

	e, err := svc.CreateSuperuser(context.Background(), "boss", "Anna", "Petrova", "Sergeevna", "topsecret")

	require.NoError(t, err)
	assert.True(t, e.IsSuperuser)
	assert.True(t, e.VerifyCredential("topsecret"))
	mockRepo.AssertExpectations(t)
}

func TestCreateSuperuserValidation(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := testService(mockRepo)

	_, err := svc.CreateSuperuser(context.Background(), "boss", "Anna", "Petrova", "", "topsecret")

	require.Error(t, err)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "middlename", vErr.Field)
	mockRepo.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything)
}

func TestSettlePayment(t *testing.T) {
	mockRepo := new(MockRepository)
	payment := &models.Payment{
		Model:      models.Model{ID: 3},
		AmountBase: 4800,
		ContractID: 1,
	}
	mockRepo.On("FindPaymentByID", mock.Anything, uint(3)).Return(payment, nil)
	mockRepo.On("SavePayment", mock.Anything, mock.AnythingOfType("*models.Payment")).Return(nil)
	svc := testService(mockRepo)

	out, err := svc.SettlePayment(context.Background(), 3)

	require.NoError(t, err)
	assert.True(t, *out.Paid)
	require.NotNil(t, out.PaidAt)
	assert.WithinDuration(t, time.Now(), *out.PaidAt, time.Minute)
	mockRepo.AssertExpectations(t)
}

func TestIssueVoucherRequiresSettledPayment(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("FindPaymentByID", mock.Anything, uint(3)).Return(&models.Payment{Model: models.Model{ID: 3}}, nil)
	svc := testService(mockRepo)

	_, err := svc.IssueVoucher(context.Background(), 3, true, models.TransportBus)

	require.Error(t, err)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "payment_id", vErr.Field)
	mockRepo.AssertNotCalled(t, "CreateVoucher", mock.Anything, mock.Anything)
}

func TestIssueVoucherGeneratesTravelDocs(t *testing.T) {
	mockRepo := new(MockRepository)
	now := time.Now()
	mockRepo.On("FindPaymentByID", mock.Anything, uint(3)).
		Return(&models.Payment{Model: models.Model{ID: 3}, Paid: true, PaidAt: &now}, nil)
	mockRepo.On("CreateVoucher", mock.Anything, mock.AnythingOfType("*models.Voucher")).Return(nil)
	svc := testService(mockRepo)

	out, err := svc.IssueVoucher(context.Background(), 3, true, models.TransportCar)

	require.NoError(t, err)
	assert.NotEmpty(t, *out.TravelDocs)
	assert.Equal(t, "car", *out.Transport)
	assert.Equal(t, uint(3), *out.PaymentID)
	mockRepo.AssertExpectations(t)
}

func TestIssueVoucherRejectsUnknownTransport(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := testService(mockRepo)

	_, err := svc.IssueVoucher(context.Background(), 3, false, models.TransportType("train"))

	require.Error(t, err)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "transport", vErr.Field)
	mockRepo.AssertNotCalled(t, "FindPaymentByID", mock.Anything, mock.Anything)
}

func TestIssueVoucherDefaultsTransportToNone(t *testing.T) {
	mockRepo := new(MockRepository)
	now := time.Now()
	mockRepo.On("FindPaymentByID", mock.Anything, uint(3)).
		Return(&models.Payment{Model: models.Model{ID: 3}, Paid: true, PaidAt: &now}, nil)
	mockRepo.On("CreateVoucher", mock.Anything, mock.AnythingOfType("*models.Voucher")).Return(nil)
	svc := testService(mockRepo)

	out, err := svc.IssueVoucher(context.Background(), 3, false, "")

	require.NoError(t, err)
	assert.Equal(t, "none", *out.Transport)
	mockRepo.AssertExpectations(t)
}

func TestCreatePassportRepositoryFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("CreatePassport", mock.Anything, mock.AnythingOfType("*models.Passport")).
		Return(errors.New("connection reset"))
	svc := testService(mockRepo)

	in := &serializers.PassportSerializer{
		Series:       intPtr(4412),
		Number:       intPtr(123456),
		IssuedAt:     timePtr(time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC)),
		ExpiresAt:    timePtr(time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC)),
		PlaceOfIssue: strPtr("Minsk"),
		Kind:         strPtr("foreign"),
	}
	_, err := svc.CreatePassport(context.Background(), in)
	assert.EqualError(t, err, "connection reset")
}
