package repository

import (
	"context"

	"example.com/travelagency/internal/models"

	"gorm.io/gorm"
)

// Organization operations implementation

func (r *repo) CreateOrganization(ctx context.Context, org *models.Organization) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	return mapError(gormDB.Create(org).Error)
}

func (r *repo) SaveOrganization(ctx context.Context, org *models.Organization) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	return mapError(gormDB.Save(org).Error)
}

func (r *repo) FindOrganizationByID(ctx context.Context, id uint) (*models.Organization, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var org models.Organization
	if err := gormDB.First(&org, id).Error; err != nil {
		return nil, mapError(err)
	}

	return &org, nil
}

func (r *repo) ListOrganizations(ctx context.Context) ([]*models.Organization, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var orgs []*models.Organization
	if err := gormDB.Find(&orgs).Error; err != nil {
		return nil, err
	}

	return orgs, nil
}

// DeleteOrganization cascades to employees; it aborts when any of them
// is still referenced by an agreement, contract or payment.
func (r *repo) DeleteOrganization(ctx context.Context, id uint) error {
	return r.deleteTx(&models.Organization{}, id, deleteOrganizationTx)
}

// Employee operations implementation

func (r *repo) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	if employee.OrganizationID != nil {
		if err := ensureExists(gormDB, &models.Organization{}, *employee.OrganizationID, "organization_id"); err != nil {
			return err
		}
	}

	return mapError(gormDB.Create(employee).Error)
}

func (r *repo) SaveEmployee(ctx context.Context, employee *models.Employee) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	if employee.OrganizationID != nil {
		if err := ensureExists(gormDB, &models.Organization{}, *employee.OrganizationID, "organization_id"); err != nil {
			return err
		}
	}

	return mapError(gormDB.Save(employee).Error)
}

func (r *repo) FindEmployeeByID(ctx context.Context, id uint) (*models.Employee, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var employee models.Employee
	if err := gormDB.Preload("Organization").First(&employee, id).Error; err != nil {
		return nil, mapError(err)
	}

	return &employee, nil
}

func (r *repo) FindEmployeeByUsername(ctx context.Context, username string) (*models.Employee, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var employee models.Employee
	if err := gormDB.Where("username = ?", username).First(&employee).Error; err != nil {
		return nil, mapError(err)
	}

	return &employee, nil
}

func (r *repo) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var employees []*models.Employee
	if err := gormDB.Find(&employees).Error; err != nil {
		return nil, err
	}

	return employees, nil
}

// DeleteEmployee is blocked while any pre-agreement, contract or payment
// references the employee.
func (r *repo) DeleteEmployee(ctx context.Context, id uint) error {
	return r.deleteTx(&models.Employee{}, id, deleteEmployeeTx)
}

// Country operations implementation

func (r *repo) CreateCountry(ctx context.Context, country *models.Country) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	return mapError(gormDB.Create(country).Error)
}

func (r *repo) SaveCountry(ctx context.Context, country *models.Country) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	return mapError(gormDB.Save(country).Error)
}

func (r *repo) FindCountryByID(ctx context.Context, id uint) (*models.Country, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var country models.Country
	if err := gormDB.First(&country, id).Error; err != nil {
		return nil, mapError(err)
	}

	return &country, nil
}

func (r *repo) ListCountries(ctx context.Context) ([]*models.Country, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var countries []*models.Country
	if err := gormDB.Find(&countries).Error; err != nil {
		return nil, err
	}

	return countries, nil
}

func (r *repo) DeleteCountry(ctx context.Context, id uint) error {
	return r.deleteTx(&models.Country{}, id, deleteCountryTx)
}

// City operations implementation

func (r *repo) CreateCity(ctx context.Context, city *models.City) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	if err := ensureExists(gormDB, &models.Country{}, city.CountryID, "country_id"); err != nil {
		return err
	}

	return mapError(gormDB.Create(city).Error)
}

func (r *repo) SaveCity(ctx context.Context, city *models.City) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	if err := ensureExists(gormDB, &models.Country{}, city.CountryID, "country_id"); err != nil {
		return err
	}

	return mapError(gormDB.Save(city).Error)
}

func (r *repo) FindCityByID(ctx context.Context, id uint) (*models.City, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var city models.City
	if err := gormDB.Preload("Country").First(&city, id).Error; err != nil {
		return nil, mapError(err)
	}

	return &city, nil
}

func (r *repo) ListCities(ctx context.Context) ([]*models.City, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var cities []*models.City
	if err := gormDB.Find(&cities).Error; err != nil {
		return nil, err
	}

	return cities, nil
}

func (r *repo) DeleteCity(ctx context.Context, id uint) error {
	return r.deleteTx(&models.City{}, id, deleteCityTx)
}

// Currency operations implementation. Quotes are historical snapshots:
// created and deleted, never updated.

func (r *repo) CreateCurrency(ctx context.Context, currency *models.Currency) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	return mapError(gormDB.Create(currency).Error)
}

func (r *repo) FindCurrencyByID(ctx context.Context, id uint) (*models.Currency, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var currency models.Currency
	if err := gormDB.First(&currency, id).Error; err != nil {
		return nil, mapError(err)
	}

	return &currency, nil
}

func (r *repo) ListCurrencies(ctx context.Context) ([]*models.Currency, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var currencies []*models.Currency
	if err := gormDB.Find(&currencies).Error; err != nil {
		return nil, err
	}

	return currencies, nil
}

// DeleteCurrency is blocked while any contract quotes the currency
func (r *repo) DeleteCurrency(ctx context.Context, id uint) error {
	return r.deleteTx(&models.Currency{}, id, func(tx *gorm.DB, id uint) error {
		if err := ensureNotReferenced(tx, &models.Contract{}, "currency_id", id, "currency", "contract"); err != nil {
			return err
		}
		return tx.Delete(&models.Currency{}, id).Error
	})
}

// Hotel operations implementation

func (r *repo) CreateHotel(ctx context.Context, hotel *models.Hotel) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	if err := ensureExists(gormDB, &models.City{}, hotel.CityID, "city_id"); err != nil {
		return err
	}

	return mapError(gormDB.Create(hotel).Error)
}

func (r *repo) SaveHotel(ctx context.Context, hotel *models.Hotel) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	if err := ensureExists(gormDB, &models.City{}, hotel.CityID, "city_id"); err != nil {
		return err
	}

	return mapError(gormDB.Save(hotel).Error)
}

func (r *repo) FindHotelByID(ctx context.Context, id uint) (*models.Hotel, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var hotel models.Hotel
	if err := gormDB.Preload("City").First(&hotel, id).Error; err != nil {
		return nil, mapError(err)
	}

	return &hotel, nil
}

func (r *repo) ListHotels(ctx context.Context) ([]*models.Hotel, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var hotels []*models.Hotel
	if err := gormDB.Find(&hotels).Error; err != nil {
		return nil, err
	}

	return hotels, nil
}

func (r *repo) DeleteHotel(ctx context.Context, id uint) error {
	return r.deleteTx(&models.Hotel{}, id, deleteHotelTx)
}

// Room operations implementation

func (r *repo) CreateRoom(ctx context.Context, room *models.Room) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	if err := ensureExists(gormDB, &models.Hotel{}, room.HotelID, "hotel_id"); err != nil {
		return err
	}

	return mapError(gormDB.Create(room).Error)
}

func (r *repo) SaveRoom(ctx context.Context, room *models.Room) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	if err := ensureExists(gormDB, &models.Hotel{}, room.HotelID, "hotel_id"); err != nil {
		return err
	}

	return mapError(gormDB.Save(room).Error)
}

func (r *repo) FindRoomByID(ctx context.Context, id uint) (*models.Room, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var room models.Room
	if err := gormDB.Preload("Hotel").First(&room, id).Error; err != nil {
		return nil, mapError(err)
	}

	return &room, nil
}

func (r *repo) ListRooms(ctx context.Context) ([]*models.Room, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var rooms []*models.Room
	if err := gormDB.Find(&rooms).Error; err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *repo) DeleteRoom(ctx context.Context, id uint) error {
	return r.deleteTx(&models.Room{}, id, deleteRoomTx)
}
