package repository

import (
	"fmt"

	"example.com/travelagency/internal/models"

	"gorm.io/gorm"
)

// Transaction-scoped delete helpers. Each helper removes one row and
// everything that exists only to support it, and fails with ErrProtected
// when a blocking reference would be orphaned. Callers are expected to
// run these inside a transaction so a blocked delete leaves no partial
// state.

func deletePassportTx(tx *gorm.DB, id uint) error {
	var clients []models.Client
	if err := tx.Where("domestic_passport_id = ? OR international_passport_id = ?", id, id).
		Find(&clients).Error; err != nil {
		return err
	}
	for _, c := range clients {
		if err := deleteClientTx(tx, c.ID); err != nil {
			return err
		}
	}
	return tx.Delete(&models.Passport{}, id).Error
}

func deleteClientTx(tx *gorm.DB, id uint) error {
	var agreements []models.PreAgreement
	if err := tx.Where("client_id = ?", id).Find(&agreements).Error; err != nil {
		return err
	}
	for _, pa := range agreements {
		if err := deletePreAgreementTx(tx, pa.ID); err != nil {
			return err
		}
	}
	if err := tx.Exec("DELETE FROM contract_tourists WHERE client_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Client{}, id).Error
}

func deletePreAgreementTx(tx *gorm.DB, id uint) error {
	var contracts []models.Contract
	if err := tx.Where("pre_agreement_id = ?", id).Find(&contracts).Error; err != nil {
		return err
	}
	for _, c := range contracts {
		if err := deleteContractTx(tx, c.ID); err != nil {
			return err
		}
	}
	if err := tx.Exec("DELETE FROM pre_agreement_cities WHERE pre_agreement_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&models.PreAgreement{}, id).Error
}

func deleteContractTx(tx *gorm.DB, id uint) error {
	var payments []models.Payment
	if err := tx.Where("contract_id = ?", id).Find(&payments).Error; err != nil {
		return err
	}
	for _, p := range payments {
		if err := deletePaymentTx(tx, p.ID); err != nil {
			return err
		}
	}
	if err := tx.Exec("DELETE FROM contract_tourists WHERE contract_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Contract{}, id).Error
}

func deletePaymentTx(tx *gorm.DB, id uint) error {
	if err := tx.Where("payment_id = ?", id).Delete(&models.Voucher{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Payment{}, id).Error
}

func deleteEmployeeTx(tx *gorm.DB, id uint) error {
	if err := ensureNotReferenced(tx, &models.PreAgreement{}, "employee_id", id, "employee", "pre-agreement"); err != nil {
		return err
	}
	if err := ensureNotReferenced(tx, &models.Contract{}, "employee_id", id, "employee", "contract"); err != nil {
		return err
	}
	if err := ensureNotReferenced(tx, &models.Payment{}, "employee_id", id, "employee", "payment"); err != nil {
		return err
	}
	return tx.Delete(&models.Employee{}, id).Error
}

func deleteTourTx(tx *gorm.DB, id uint) error {
	if err := ensureNotReferenced(tx, &models.Contract{}, "tour_id", id, "tour", "contract"); err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM tour_routes WHERE tour_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Tour{}, id).Error
}

func deleteRouteTx(tx *gorm.DB, id uint) error {
	if err := tx.Exec("DELETE FROM tour_routes WHERE route_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Route{}, id).Error
}

func deleteRoomTx(tx *gorm.DB, id uint) error {
	var routes []models.Route
	if err := tx.Where("room_id = ?", id).Find(&routes).Error; err != nil {
		return err
	}
	for _, rt := range routes {
		if err := deleteRouteTx(tx, rt.ID); err != nil {
			return err
		}
	}
	return tx.Delete(&models.Room{}, id).Error
}

func deleteHotelTx(tx *gorm.DB, id uint) error {
	var rooms []models.Room
	if err := tx.Where("hotel_id = ?", id).Find(&rooms).Error; err != nil {
		return err
	}
	for _, rm := range rooms {
		if err := deleteRoomTx(tx, rm.ID); err != nil {
			return err
		}
	}
	var routes []models.Route
	if err := tx.Where("hotel_id = ?", id).Find(&routes).Error; err != nil {
		return err
	}
	for _, rt := range routes {
		if err := deleteRouteTx(tx, rt.ID); err != nil {
			return err
		}
	}
	return tx.Delete(&models.Hotel{}, id).Error
}

func deleteCityTx(tx *gorm.DB, id uint) error {
	var hotels []models.Hotel
	if err := tx.Where("city_id = ?", id).Find(&hotels).Error; err != nil {
		return err
	}
	for _, h := range hotels {
		if err := deleteHotelTx(tx, h.ID); err != nil {
			return err
		}
	}
	var routes []models.Route
	if err := tx.Where("city_id = ?", id).Find(&routes).Error; err != nil {
		return err
	}
	for _, rt := range routes {
		if err := deleteRouteTx(tx, rt.ID); err != nil {
			return err
		}
	}
	if err := tx.Exec("DELETE FROM pre_agreement_cities WHERE city_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&models.City{}, id).Error
}

func deleteCountryTx(tx *gorm.DB, id uint) error {
	var cities []models.City
	if err := tx.Where("country_id = ?", id).Find(&cities).Error; err != nil {
		return err
	}
	for _, c := range cities {
		if err := deleteCityTx(tx, c.ID); err != nil {
			return err
		}
	}
	var tours []models.Tour
	if err := tx.Where("country_id = ?", id).Find(&tours).Error; err != nil {
		return err
	}
	for _, t := range tours {
		if err := deleteTourTx(tx, t.ID); err != nil {
			return err
		}
	}
	return tx.Delete(&models.Country{}, id).Error
}

func deleteOrganizationTx(tx *gorm.DB, id uint) error {
	var employees []models.Employee
	if err := tx.Where("organization_id = ?", id).Find(&employees).Error; err != nil {
		return err
	}
	for _, e := range employees {
		if err := deleteEmployeeTx(tx, e.ID); err != nil {
			return err
		}
	}
	return tx.Delete(&models.Organization{}, id).Error
}

// ensureNotReferenced fails with ErrProtected when any dependent row
// still references the target
func ensureNotReferenced(tx *gorm.DB, dependent interface{}, column string, id uint, entity, dependentName string) error {
	var count int64
	if err := tx.Model(dependent).Where(fmt.Sprintf("%s = ?", column), id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %s is referenced by a %s", ErrProtected, entity, dependentName)
	}
	return nil
}
