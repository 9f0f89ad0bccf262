package repository

import (
	"context"

	"example.com/travelagency/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Stub builders for many-to-many replacement. Stubs carry primary keys
// only, so existing rows are never touched, only the join table.
func clientStubs(ids []uint) []models.Client {
	stubs := make([]models.Client, 0, len(ids))
	for _, id := range ids {
		stubs = append(stubs, models.Client{Model: models.Model{ID: id}})
	}
	return stubs
}

func cityStubs(ids []uint) []models.City {
	stubs := make([]models.City, 0, len(ids))
	for _, id := range ids {
		stubs = append(stubs, models.City{Model: models.Model{ID: id}})
	}
	return stubs
}

func routeStubs(ids []uint) []models.Route {
	stubs := make([]models.Route, 0, len(ids))
	for _, id := range ids {
		stubs = append(stubs, models.Route{Model: models.Model{ID: id}})
	}
	return stubs
}

// PreAgreement operations implementation

func (r *repo) validatePreAgreementRefs(tx *gorm.DB, pa *models.PreAgreement, cityIDs []uint) error {
	if err := ensureExists(tx, &models.Client{}, pa.ClientID, "client_id"); err != nil {
		return err
	}
	if err := ensureExists(tx, &models.Employee{}, pa.EmployeeID, "employee_id"); err != nil {
		return err
	}
	return ensureAllExist(tx, &models.City{}, cityIDs, "cities")
}

func (r *repo) CreatePreAgreement(ctx context.Context, pa *models.PreAgreement, cityIDs []uint) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	return gormDB.Transaction(func(tx *gorm.DB) error {
		if err := r.validatePreAgreementRefs(tx, pa, cityIDs); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(pa).Error; err != nil {
			return mapError(err)
		}
		return tx.Model(pa).Association("Cities").Replace(cityStubs(cityIDs))
	})
}

func (r *repo) SavePreAgreement(ctx context.Context, pa *models.PreAgreement, cityIDs []uint) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	return gormDB.Transaction(func(tx *gorm.DB) error {
		if err := r.validatePreAgreementRefs(tx, pa, cityIDs); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(pa).Error; err != nil {
			return mapError(err)
		}
		return tx.Model(pa).Association("Cities").Replace(cityStubs(cityIDs))
	})
}

func (r *repo) FindPreAgreementByID(ctx context.Context, id uint) (*models.PreAgreement, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var pa models.PreAgreement
	if err := gormDB.Preload("Cities").First(&pa, id).Error; err != nil {
		return nil, mapError(err)
	}

	return &pa, nil
}

func (r *repo) ListPreAgreements(ctx context.Context) ([]*models.PreAgreement, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var pas []*models.PreAgreement
	if err := gormDB.Preload("Cities").Find(&pas).Error; err != nil {
		return nil, err
	}

	return pas, nil
}

func (r *repo) DeletePreAgreement(ctx context.Context, id uint) error {
	return r.deleteTx(&models.PreAgreement{}, id, deletePreAgreementTx)
}

// Route operations implementation

func (r *repo) validateRouteRefs(tx *gorm.DB, route *models.Route) error {
	if err := ensureExists(tx, &models.City{}, route.CityID, "city_id"); err != nil {
		return err
	}
	if err := ensureExists(tx, &models.Hotel{}, route.HotelID, "hotel_id"); err != nil {
		return err
	}
	return ensureExists(tx, &models.Room{}, route.RoomID, "room_id")
}

func (r *repo) CreateRoute(ctx context.Context, route *models.Route) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	if err := r.validateRouteRefs(gormDB, route); err != nil {
		return err
	}

	return mapError(gormDB.Create(route).Error)
}

func (r *repo) SaveRoute(ctx context.Context, route *models.Route) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	if err := r.validateRouteRefs(gormDB, route); err != nil {
		return err
	}

	return mapError(gormDB.Save(route).Error)
}

func (r *repo) FindRouteByID(ctx context.Context, id uint) (*models.Route, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var route models.Route
	if err := gormDB.Preload("City").Preload("Hotel").Preload("Room").
		First(&route, id).Error; err != nil {
		return nil, mapError(err)
	}

	return &route, nil
}

func (r *repo) ListRoutes(ctx context.Context) ([]*models.Route, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var routes []*models.Route
	if err := gormDB.Find(&routes).Error; err != nil {
		return nil, err
	}

	return routes, nil
}

func (r *repo) DeleteRoute(ctx context.Context, id uint) error {
	return r.deleteTx(&models.Route{}, id, deleteRouteTx)
}

// Tour operations implementation

func (r *repo) CreateTour(ctx context.Context, tour *models.Tour, routeIDs []uint) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	return gormDB.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Country{}, tour.CountryID, "country_id"); err != nil {
			return err
		}
		if err := ensureAllExist(tx, &models.Route{}, routeIDs, "routes"); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(tour).Error; err != nil {
			return mapError(err)
		}
		return tx.Model(tour).Association("Routes").Replace(routeStubs(routeIDs))
	})
}

func (r *repo) SaveTour(ctx context.Context, tour *models.Tour, routeIDs []uint) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	return gormDB.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Country{}, tour.CountryID, "country_id"); err != nil {
			return err
		}
		if err := ensureAllExist(tx, &models.Route{}, routeIDs, "routes"); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(tour).Error; err != nil {
			return mapError(err)
		}
		return tx.Model(tour).Association("Routes").Replace(routeStubs(routeIDs))
	})
}

func (r *repo) FindTourByID(ctx context.Context, id uint) (*models.Tour, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var tour models.Tour
	if err := gormDB.Preload("Routes").First(&tour, id).Error; err != nil {
		return nil, mapError(err)
	}

	return &tour, nil
}

func (r *repo) ListTours(ctx context.Context) ([]*models.Tour, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var tours []*models.Tour
	if err := gormDB.Preload("Routes").Find(&tours).Error; err != nil {
		return nil, err
	}

	return tours, nil
}

// DeleteTour is blocked while a contract is bound to the tour
func (r *repo) DeleteTour(ctx context.Context, id uint) error {
	return r.deleteTx(&models.Tour{}, id, deleteTourTx)
}

// Contract operations implementation

func (r *repo) validateContractRefs(tx *gorm.DB, contract *models.Contract, touristIDs []uint) error {
	if err := ensureExists(tx, &models.Currency{}, contract.CurrencyID, "currency_id"); err != nil {
		return err
	}
	if err := ensureExists(tx, &models.Tour{}, contract.TourID, "tour_id"); err != nil {
		return err
	}
	if err := ensureExists(tx, &models.PreAgreement{}, contract.PreAgreementID, "pre_agreement_id"); err != nil {
		return err
	}
	if err := ensureExists(tx, &models.Employee{}, contract.EmployeeID, "employee_id"); err != nil {
		return err
	}
	return ensureAllExist(tx, &models.Client{}, touristIDs, "tourists")
}

func (r *repo) CreateContract(ctx context.Context, contract *models.Contract, touristIDs []uint) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	return gormDB.Transaction(func(tx *gorm.DB) error {
		if err := r.validateContractRefs(tx, contract, touristIDs); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(contract).Error; err != nil {
			return mapError(err)
		}
		return tx.Model(contract).Association("Tourists").Replace(clientStubs(touristIDs))
	})
}

func (r *repo) SaveContract(ctx context.Context, contract *models.Contract, touristIDs []uint) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	return gormDB.Transaction(func(tx *gorm.DB) error {
		if err := r.validateContractRefs(tx, contract, touristIDs); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(contract).Error; err != nil {
			return mapError(err)
		}
		return tx.Model(contract).Association("Tourists").Replace(clientStubs(touristIDs))
	})
}

func (r *repo) FindContractByID(ctx context.Context, id uint) (*models.Contract, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var contract models.Contract
	if err := gormDB.Preload("Tourists").First(&contract, id).Error; err != nil {
		return nil, mapError(err)
	}

	return &contract, nil
}

func (r *repo) ListContracts(ctx context.Context) ([]*models.Contract, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var contracts []*models.Contract
	if err := gormDB.Preload("Tourists").Find(&contracts).Error; err != nil {
		return nil, err
	}

	return contracts, nil
}

func (r *repo) DeleteContract(ctx context.Context, id uint) error {
	return r.deleteTx(&models.Contract{}, id, deleteContractTx)
}

// Payment operations implementation

func (r *repo) validatePaymentRefs(tx *gorm.DB, payment *models.Payment) error {
	if err := ensureExists(tx, &models.Employee{}, payment.EmployeeID, "employee_id"); err != nil {
		return err
	}
	return ensureExists(tx, &models.Contract{}, payment.ContractID, "contract_id")
}

func (r *repo) CreatePayment(ctx context.Context, payment *models.Payment) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	if err := r.validatePaymentRefs(gormDB, payment); err != nil {
		return err
	}

	return mapError(gormDB.Create(payment).Error)
}

func (r *repo) SavePayment(ctx context.Context, payment *models.Payment) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	if err := r.validatePaymentRefs(gormDB, payment); err != nil {
		return err
	}

	return mapError(gormDB.Save(payment).Error)
}

func (r *repo) FindPaymentByID(ctx context.Context, id uint) (*models.Payment, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var payment models.Payment
	if err := gormDB.First(&payment, id).Error; err != nil {
		return nil, mapError(err)
	}

	return &payment, nil
}

func (r *repo) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var payments []*models.Payment
	if err := gormDB.Find(&payments).Error; err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *repo) DeletePayment(ctx context.Context, id uint) error {
	return r.deleteTx(&models.Payment{}, id, deletePaymentTx)
}

// Voucher operations implementation

func (r *repo) CreateVoucher(ctx context.Context, voucher *models.Voucher) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	if err := ensureExists(gormDB, &models.Payment{}, voucher.PaymentID, "payment_id"); err != nil {
		return err
	}

	return mapError(gormDB.Create(voucher).Error)
}

func (r *repo) SaveVoucher(ctx context.Context, voucher *models.Voucher) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	if err := ensureExists(gormDB, &models.Payment{}, voucher.PaymentID, "payment_id"); err != nil {
		return err
	}

	return mapError(gormDB.Save(voucher).Error)
}

func (r *repo) FindVoucherByID(ctx context.Context, id uint) (*models.Voucher, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var voucher models.Voucher
	if err := gormDB.First(&voucher, id).Error; err != nil {
		return nil, mapError(err)
	}

	return &voucher, nil
}

func (r *repo) ListVouchers(ctx context.Context) ([]*models.Voucher, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var vouchers []*models.Voucher
	if err := gormDB.Find(&vouchers).Error; err != nil {
		return nil, err
	}

	return vouchers, nil
}

func (r *repo) DeleteVoucher(ctx context.Context, id uint) error {
	return r.deleteTx(&models.Voucher{}, id, func(tx *gorm.DB, id uint) error {
		return tx.Delete(&models.Voucher{}, id).Error
	})
}
