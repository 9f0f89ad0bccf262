// Package service holds the business operations exposed to the public
// API and the command line. Handlers stay thin; validation, model
// construction and persistence are coordinated here.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"example.com/travelagency/internal/models"
	"example.com/travelagency/internal/repository"
	"example.com/travelagency/internal/serializers"
)

type Service interface {
	// Client records
	ListClients(ctx context.Context) ([]serializers.ClientSerializer, error)
	GetClient(ctx context.Context, id uint) (serializers.ClientSerializer, error)
	CreateClient(ctx context.Context, in *serializers.ClientSerializer) (serializers.ClientSerializer, error)
	ReplaceClient(ctx context.Context, id uint, in *serializers.ClientSerializer) (serializers.ClientSerializer, error)
	UpdateClient(ctx context.Context, id uint, in *serializers.ClientSerializer) (serializers.ClientSerializer, error)
	DeleteClient(ctx context.Context, id uint) error

	// Passport records
	ListPassports(ctx context.Context) ([]serializers.PassportSerializer, error)
	GetPassport(ctx context.Context, id uint) (serializers.PassportSerializer, error)
	CreatePassport(ctx context.Context, in *serializers.PassportSerializer) (serializers.PassportSerializer, error)
	ReplacePassport(ctx context.Context, id uint, in *serializers.PassportSerializer) (serializers.PassportSerializer, error)
	UpdatePassport(ctx context.Context, id uint, in *serializers.PassportSerializer) (serializers.PassportSerializer, error)
	DeletePassport(ctx context.Context, id uint) error

	// Staff management
	CreateEmployee(ctx context.Context, in *serializers.EmployeeSerializer) (serializers.EmployeeSerializer, error)
	CreateSuperuser(ctx context.Context, username, firstName, lastName, middleName, password string) (*models.Employee, error)

	// Settlement
	SettlePayment(ctx context.Context, id uint) (serializers.PaymentSerializer, error)
	IssueVoucher(ctx context.Context, paymentID uint, transferIncluded bool, transport models.TransportType) (serializers.VoucherSerializer, error)
}

type ServiceConfig struct {
	Repo   repository.Repository
	Logger *logrus.Logger
}

type service struct {
	repo repository.Repository
	log  *logrus.Logger
}

func NewService(cfg ServiceConfig) Service {
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &service{repo: cfg.Repo, log: log}
}

func (s *service) ListClients(ctx context.Context) ([]serializers.ClientSerializer, error) {
	clients, err := s.repo.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]serializers.ClientSerializer, 0, len(clients))
	for _, client := range clients {
		out = append(out, serializers.ClientResponse(client))
	}
	return out, nil
}

func (s *service) GetClient(ctx context.Context, id uint) (serializers.ClientSerializer, error) {
	client, err := s.repo.FindClientByID(ctx, id)
	if err != nil {
		return serializers.ClientSerializer{}, err
	}
	return serializers.ClientResponse(client), nil
}

func (s *service) CreateClient(ctx context.Context, in *serializers.ClientSerializer) (serializers.ClientSerializer, error) {
	if err := in.Validate(); err != nil {
		return serializers.ClientSerializer{}, err
	}
	client := in.Model()
	if err := s.repo.CreateClient(ctx, client); err != nil {
		return serializers.ClientSerializer{}, err
	}
	s.log.WithFields(logrus.Fields{"client_id": client.ID}).Info("client created")
	return serializers.ClientResponse(client), nil
}

func (s *service) ReplaceClient(ctx context.Context, id uint, in *serializers.ClientSerializer) (serializers.ClientSerializer, error) {
	if err := in.Validate(); err != nil {
		return serializers.ClientSerializer{}, err
	}
	return s.updateClient(ctx, id, in)
}

func (s *service) UpdateClient(ctx context.Context, id uint, in *serializers.ClientSerializer) (serializers.ClientSerializer, error) {
	if err := in.ValidatePartial(); err != nil {
		return serializers.ClientSerializer{}, err
	}
	return s.updateClient(ctx, id, in)
}

func (s *service) updateClient(ctx context.Context, id uint, in *serializers.ClientSerializer) (serializers.ClientSerializer, error) {
	client, err := s.repo.FindClientByID(ctx, id)
	if err != nil {
		return serializers.ClientSerializer{}, err
	}
	in.Apply(client)
	if err := s.repo.SaveClient(ctx, client); err != nil {
		return serializers.ClientSerializer{}, err
	}
	s.log.WithFields(logrus.Fields{"client_id": client.ID}).Info("client updated")
	return serializers.ClientResponse(client), nil
}

func (s *service) DeleteClient(ctx context.Context, id uint) error {
	if err := s.repo.DeleteClient(ctx, id); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"client_id": id}).Info("client deleted")
	return nil
}

func (s *service) ListPassports(ctx context.Context) ([]serializers.PassportSerializer, error) {
	passports, err := s.repo.ListPassports(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]serializers.PassportSerializer, 0, len(passports))
	for _, passport := range passports {
		out = append(out, serializers.PassportResponse(passport))
	}
	return out, nil
}

func (s *service) GetPassport(ctx context.Context, id uint) (serializers.PassportSerializer, error) {
	passport, err := s.repo.FindPassportByID(ctx, id)
	if err != nil {
		return serializers.PassportSerializer{}, err
	}
	return serializers.PassportResponse(passport), nil
}

func (s *service) CreatePassport(ctx context.Context, in *serializers.PassportSerializer) (serializers.PassportSerializer, error) {
	if err := in.Validate(); err != nil {
		return serializers.PassportSerializer{}, err
	}
	passport := in.Model()
	if err := s.repo.CreatePassport(ctx, passport); err != nil {
		return serializers.PassportSerializer{}, err
	}
	s.log.WithFields(logrus.Fields{"passport_id": passport.ID}).Info("passport created")
	return serializers.PassportResponse(passport), nil
}

func (s *service) ReplacePassport(ctx context.Context, id uint, in *serializers.PassportSerializer) (serializers.PassportSerializer, error) {
	if err := in.Validate(); err != nil {
		return serializers.PassportSerializer{}, err
	}
	return s.updatePassport(ctx, id, in)
}

func (s *service) UpdatePassport(ctx context.Context, id uint, in *serializers.PassportSerializer) (serializers.PassportSerializer, error) {
	if err := in.ValidatePartial(); err != nil {
		return serializers.PassportSerializer{}, err
	}
	return s.updatePassport(ctx, id, in)
}

func (s *service) updatePassport(ctx context.Context, id uint, in *serializers.PassportSerializer) (serializers.PassportSerializer, error) {
	passport, err := s.repo.FindPassportByID(ctx, id)
	if err != nil {
		return serializers.PassportSerializer{}, err
	}
	in.Apply(passport)
	if err := s.repo.SavePassport(ctx, passport); err != nil {
		return serializers.PassportSerializer{}, err
	}
	s.log.WithFields(logrus.Fields{"passport_id": passport.ID}).Info("passport updated")
	return serializers.PassportResponse(passport), nil
}

func (s *service) DeletePassport(ctx context.Context, id uint) error {
	if err := s.repo.DeletePassport(ctx, id); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"passport_id": id}).Info("passport deleted")
	return nil
}

func (s *service) CreateEmployee(ctx context.Context, in *serializers.EmployeeSerializer) (serializers.EmployeeSerializer, error) {
	if err := in.Validate(); err != nil {
		return serializers.EmployeeSerializer{}, err
	}
	employee, err := in.Model()
	if err != nil {
		return serializers.EmployeeSerializer{}, err
	}
	if err := s.repo.CreateEmployee(ctx, employee); err != nil {
		return serializers.EmployeeSerializer{}, err
	}
	s.log.WithFields(logrus.Fields{
		"employee_id": employee.ID,
		"username":    employee.Username,
	}).Info("employee created")
	return serializers.EmployeeResponse(employee), nil
}

func (s *service) CreateSuperuser(ctx context.Context, username, firstName, lastName, middleName, password string) (*models.Employee, error) {
	employee, err := models.NewSuperuser(username, firstName, lastName, middleName, password)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateEmployee(ctx, employee); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"employee_id": employee.ID,
		"username":    employee.Username,
	}).Info("superuser created")
	return employee, nil
}

// SettlePayment marks a payment as paid and stamps the settlement time
func (s *service) SettlePayment(ctx context.Context, id uint) (serializers.PaymentSerializer, error) {
	payment, err := s.repo.FindPaymentByID(ctx, id)
	if err != nil {
		return serializers.PaymentSerializer{}, err
	}
	now := time.Now().UTC()
	payment.Paid = true
	payment.PaidAt = &now
	if err := s.repo.SavePayment(ctx, payment); err != nil {
		return serializers.PaymentSerializer{}, err
	}
	s.log.WithFields(logrus.Fields{"payment_id": payment.ID}).Info("payment settled")
	return serializers.PaymentResponse(payment), nil
}

// IssueVoucher creates a voucher against a settled payment. The travel
// document bundle gets a generated reference.
func (s *service) IssueVoucher(ctx context.Context, paymentID uint, transferIncluded bool, transport models.TransportType) (serializers.VoucherSerializer, error) {
	if transport == "" {
		transport = models.TransportNone
	}
	if !transport.Valid() {
		return serializers.VoucherSerializer{}, models.NewValidationError("transport", "value is not a valid choice")
	}
	payment, err := s.repo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return serializers.VoucherSerializer{}, err
	}
	if !payment.Paid {
		return serializers.VoucherSerializer{}, models.NewValidationError("payment_id", "payment has not been settled")
	}
	voucher := &models.Voucher{
		TransferIncluded: transferIncluded,
		TravelDocs:       uuid.NewString(),
		Transport:        transport,
		PaymentID:        payment.ID,
	}
	if err := s.repo.CreateVoucher(ctx, voucher); err != nil {
		return serializers.VoucherSerializer{}, err
	}
	s.log.WithFields(logrus.Fields{
		"voucher_id": voucher.ID,
		"payment_id": payment.ID,
	}).Info("voucher issued")
	return serializers.VoucherResponse(voucher), nil
}
