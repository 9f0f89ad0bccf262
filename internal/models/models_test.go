package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassportKind(t *testing.T) {
	assert.True(t, PassportForeign.Valid())
	assert.True(t, PassportDomestic.Valid())
	assert.False(t, PassportKind("diplomatic").Valid())
	assert.False(t, PassportKind("").Valid())

	assert.Equal(t, "Foreign-travel passport", PassportForeign.Label())
	assert.Equal(t, "Domestic passport", PassportDomestic.Label())
}

func TestClientStatus(t *testing.T) {
	for _, s := range []ClientStatus{ClientCommon, ClientVIP, ClientPremium} {
		assert.True(t, s.Valid())
	}
	assert.False(t, ClientStatus("gold").Valid())
	assert.Equal(t, "VIP", ClientVIP.Label())
}

func TestHotelCategory(t *testing.T) {
	for _, c := range []HotelCategory{HotelOneStar, HotelTwoStar, HotelThreeStar, HotelFourStar, HotelFiveStar, HotelApartments} {
		assert.True(t, c.Valid())
	}
	assert.False(t, HotelCategory("6-star").Valid())
	assert.Equal(t, "Apartments", HotelApartments.Label())
}

func TestTransportType(t *testing.T) {
	assert.True(t, TransportNone.Valid())
	assert.True(t, TransportCar.Valid())
	assert.True(t, TransportBus.Valid())
	assert.False(t, TransportType("train").Valid())
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("middlename", "must not be empty")
	assert.Equal(t, "middlename: must not be empty", err.Error())
}
