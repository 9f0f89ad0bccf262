package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"example.com/travelagency/internal/database"
	"example.com/travelagency/internal/models"

	"gorm.io/gorm"
)

// Repository provides data access methods. Deletion policy lives here:
// ownership edges cascade, shared reference data (currency, employee,
// tour under contract) is protected while referenced.
type Repository interface {
	// Transaction support
	WithTransaction(ctx context.Context, fn func(ctx context.Context, txRepo Repository) error) error

	// Passport operations
	CreatePassport(ctx context.Context, passport *models.Passport) error
	SavePassport(ctx context.Context, passport *models.Passport) error
	FindPassportByID(ctx context.Context, id uint) (*models.Passport, error)
	ListPassports(ctx context.Context) ([]*models.Passport, error)
	DeletePassport(ctx context.Context, id uint) error

	// Client operations
	CreateClient(ctx context.Context, client *models.Client) error
	SaveClient(ctx context.Context, client *models.Client) error
	FindClientByID(ctx context.Context, id uint) (*models.Client, error)
	ListClients(ctx context.Context) ([]*models.Client, error)
	DeleteClient(ctx context.Context, id uint) error

	// Organization operations
	CreateOrganization(ctx context.Context, org *models.Organization) error
	SaveOrganization(ctx context.Context, org *models.Organization) error
	FindOrganizationByID(ctx context.Context, id uint) (*models.Organization, error)
	ListOrganizations(ctx context.Context) ([]*models.Organization, error)
	DeleteOrganization(ctx context.Context, id uint) error

	// Employee operations
	CreateEmployee(ctx context.Context, employee *models.Employee) error
	SaveEmployee(ctx context.Context, employee *models.Employee) error
	FindEmployeeByID(ctx context.Context, id uint) (*models.Employee, error)
	FindEmployeeByUsername(ctx context.Context, username string) (*models.Employee, error)
	ListEmployees(ctx context.Context) ([]*models.Employee, error)
	DeleteEmployee(ctx context.Context, id uint) error

	// Country operations
	CreateCountry(ctx context.Context, country *models.Country) error
	SaveCountry(ctx context.Context, country *models.Country) error
	FindCountryByID(ctx context.Context, id uint) (*models.Country, error)
	ListCountries(ctx context.Context) ([]*models.Country, error)
	DeleteCountry(ctx context.Context, id uint) error

	// City operations
	CreateCity(ctx context.Context, city *models.City) error
	SaveCity(ctx context.Context, city *models.City) error
	FindCityByID(ctx context.Context, id uint) (*models.City, error)
	ListCities(ctx context.Context) ([]*models.City, error)
	DeleteCity(ctx context.Context, id uint) error

	// Currency operations. Quotes are immutable: there is no save method.
	CreateCurrency(ctx context.Context, currency *models.Currency) error
	FindCurrencyByID(ctx context.Context, id uint) (*models.Currency, error)
	ListCurrencies(ctx context.Context) ([]*models.Currency, error)
	DeleteCurrency(ctx context.Context, id uint) error

	// Hotel operations
	CreateHotel(ctx context.Context, hotel *models.Hotel) error
	SaveHotel(ctx context.Context, hotel *models.Hotel) error
	FindHotelByID(ctx context.Context, id uint) (*models.Hotel, error)
	ListHotels(ctx context.Context) ([]*models.Hotel, error)
	DeleteHotel(ctx context.Context, id uint) error

	// Room operations
	CreateRoom(ctx context.Context, room *models.Room) error
	SaveRoom(ctx context.Context, room *models.Room) error
	FindRoomByID(ctx context.Context, id uint) (*models.Room, error)
	ListRooms(ctx context.Context) ([]*models.Room, error)
	DeleteRoom(ctx context.Context, id uint) error

	// Route operations
	CreateRoute(ctx context.Context, route *models.Route) error
	SaveRoute(ctx context.Context, route *models.Route) error
	FindRouteByID(ctx context.Context, id uint) (*models.Route, error)
	ListRoutes(ctx context.Context) ([]*models.Route, error)
	DeleteRoute(ctx context.Context, id uint) error

	// Tour operations
	CreateTour(ctx context.Context, tour *models.Tour, routeIDs []uint) error
	SaveTour(ctx context.Context, tour *models.Tour, routeIDs []uint) error
	FindTourByID(ctx context.Context, id uint) (*models.Tour, error)
	ListTours(ctx context.Context) ([]*models.Tour, error)
	DeleteTour(ctx context.Context, id uint) error

	// PreAgreement operations
	CreatePreAgreement(ctx context.Context, pa *models.PreAgreement, cityIDs []uint) error
	SavePreAgreement(ctx context.Context, pa *models.PreAgreement, cityIDs []uint) error
	FindPreAgreementByID(ctx context.Context, id uint) (*models.PreAgreement, error)
	ListPreAgreements(ctx context.Context) ([]*models.PreAgreement, error)
	DeletePreAgreement(ctx context.Context, id uint) error

	// Contract operations
	CreateContract(ctx context.Context, contract *models.Contract, touristIDs []uint) error
	SaveContract(ctx context.Context, contract *models.Contract, touristIDs []uint) error
	FindContractByID(ctx context.Context, id uint) (*models.Contract, error)
	ListContracts(ctx context.Context) ([]*models.Contract, error)
	DeleteContract(ctx context.Context, id uint) error

	// Payment operations
	CreatePayment(ctx context.Context, payment *models.Payment) error
	SavePayment(ctx context.Context, payment *models.Payment) error
	FindPaymentByID(ctx context.Context, id uint) (*models.Payment, error)
	ListPayments(ctx context.Context) ([]*models.Payment, error)
	DeletePayment(ctx context.Context, id uint) error

	// Voucher operations
	CreateVoucher(ctx context.Context, voucher *models.Voucher) error
	SaveVoucher(ctx context.Context, voucher *models.Voucher) error
	FindVoucherByID(ctx context.Context, id uint) (*models.Voucher, error)
	ListVouchers(ctx context.Context) ([]*models.Voucher, error)
	DeleteVoucher(ctx context.Context, id uint) error
}

// repo is an implementation of the Repository interface
type repo struct {
	db database.DB
}

// Helper type for transaction support
type dbWrapper struct {
	db *gorm.DB
}

func (w *dbWrapper) DB() (*gorm.DB, error) {
	return w.db, nil
}

func (w *dbWrapper) Close() error {
	return nil
}

// NewRepository creates a new repository instance
func NewRepository(db database.DB) Repository {
	return &repo{
		db: db,
	}
}

// WithTransaction executes the given function within a database transaction
func (r *repo) WithTransaction(ctx context.Context, fn func(ctx context.Context, txRepo Repository) error) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	return gormDB.Transaction(func(tx *gorm.DB) error {
		txRepo := &repo{
			db: &dbWrapper{db: tx},
		}
		return fn(ctx, txRepo)
	})
}

// mapError translates driver and gorm errors into repository errors
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	msg := err.Error()
	if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %s", ErrDuplicate, msg)
	}
	return err
}

// ensureExists validates a foreign-key reference before a write so the
// caller gets a validation error naming the offending field instead of a
// bare constraint failure from the driver.
func ensureExists(tx *gorm.DB, model interface{}, id uint, field string) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return models.NewValidationError(field, "referenced record does not exist")
	}
	return nil
}

// ensureAllExist validates a list of foreign-key references
func ensureAllExist(tx *gorm.DB, model interface{}, ids []uint, field string) error {
	for _, id := range ids {
		if err := ensureExists(tx, model, id, field); err != nil {
			return err
		}
	}
	return nil
}

// deleteTx runs a cascading delete inside a transaction. A blocked
// delete rolls the whole transaction back, leaving no partial state.
func (r *repo) deleteTx(model interface{}, id uint, fn func(tx *gorm.DB, id uint) error) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	return gormDB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return fn(tx, id)
	})
}
