package repository

import (
	"context"

	"example.com/travelagency/internal/models"
)

// Passport operations implementation

func (r *repo) CreatePassport(ctx context.Context, passport *models.Passport) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	return mapError(gormDB.Create(passport).Error)
}

func (r *repo) SavePassport(ctx context.Context, passport *models.Passport) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	return mapError(gormDB.Save(passport).Error)
}

func (r *repo) FindPassportByID(ctx context.Context, id uint) (*models.Passport, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var passport models.Passport
	if err := gormDB.First(&passport, id).Error; err != nil {
		return nil, mapError(err)
	}

	return &passport, nil
}

func (r *repo) ListPassports(ctx context.Context) ([]*models.Passport, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var passports []*models.Passport
	if err := gormDB.Find(&passports).Error; err != nil {
		return nil, err
	}

	return passports, nil
}

// DeletePassport cascades: clients holding the passport in either slot
// are removed together with their dependent records.
func (r *repo) DeletePassport(ctx context.Context, id uint) error {
	return r.deleteTx(&models.Passport{}, id, deletePassportTx)
}

// Client operations implementation

func (r *repo) CreateClient(ctx context.Context, client *models.Client) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	if err := ensureExists(gormDB, &models.Passport{}, client.DomesticPassportID, "domestic_passport_id"); err != nil {
		return err
	}
	if client.InternationalPassportID != nil {
		if err := ensureExists(gormDB, &models.Passport{}, *client.InternationalPassportID, "international_passport_id"); err != nil {
			return err
		}
	}

	return mapError(gormDB.Create(client).Error)
}

func (r *repo) SaveClient(ctx context.Context, client *models.Client) error {
	gormDB, err := r.db.DB()
	if err != nil {
		return err
	}

	if err := ensureExists(gormDB, &models.Passport{}, client.DomesticPassportID, "domestic_passport_id"); err != nil {
		return err
	}
	if client.InternationalPassportID != nil {
		if err := ensureExists(gormDB, &models.Passport{}, *client.InternationalPassportID, "international_passport_id"); err != nil {
			return err
		}
	}

	return mapError(gormDB.Save(client).Error)
}

func (r *repo) FindClientByID(ctx context.Context, id uint) (*models.Client, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var client models.Client
	if err := gormDB.Preload("DomesticPassport").Preload("InternationalPassport").
		First(&client, id).Error; err != nil {
		return nil, mapError(err)
	}

	return &client, nil
}

func (r *repo) ListClients(ctx context.Context) ([]*models.Client, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var clients []*models.Client
	if err := gormDB.Find(&clients).Error; err != nil {
		return nil, err
	}

	return clients, nil
}

func (r *repo) DeleteClient(ctx context.Context, id uint) error {
	return r.deleteTx(&models.Client{}, id, deleteClientTx)
}
