package models

import (
	"time"

	"gorm.io/gorm"
)

// Model is the base model with common fields for all database entities
type Model struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PassportKind is an enum for passport types
type PassportKind string

const (
	// PassportForeign represents a foreign-travel passport
	PassportForeign PassportKind = "foreign"
	// PassportDomestic represents a domestic passport
	PassportDomestic PassportKind = "domestic"
)

// Valid reports whether the value belongs to the closed choice set
func (k PassportKind) Valid() bool {
	return k == PassportForeign || k == PassportDomestic
}

// Label returns the human-readable label for the code
func (k PassportKind) Label() string {
	switch k {
	case PassportForeign:
		return "Foreign-travel passport"
	case PassportDomestic:
		return "Domestic passport"
	}
	return string(k)
}

// Gender is an enum for client gender
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

func (g Gender) Valid() bool {
	return g == GenderFemale || g == GenderMale
}

func (g Gender) Label() string {
	switch g {
	case GenderFemale:
		return "Female"
	case GenderMale:
		return "Male"
	}
	return string(g)
}

// ClientStatus is an enum for client service tiers
type ClientStatus string

const (
	ClientCommon  ClientStatus = "common"
	ClientVIP     ClientStatus = "vip"
	ClientPremium ClientStatus = "premium"
)

func (s ClientStatus) Valid() bool {
	return s == ClientCommon || s == ClientVIP || s == ClientPremium
}

func (s ClientStatus) Label() string {
	switch s {
	case ClientCommon:
		return "Common"
	case ClientVIP:
		return "VIP"
	case ClientPremium:
		return "Premium"
	}
	return string(s)
}

// HotelCategory is an enum for hotel classification
type HotelCategory string

const (
	HotelOneStar    HotelCategory = "1-star"
	HotelTwoStar    HotelCategory = "2-star"
	HotelThreeStar  HotelCategory = "3-star"
	HotelFourStar   HotelCategory = "4-star"
	HotelFiveStar   HotelCategory = "5-star"
	HotelApartments HotelCategory = "apartments"
)

func (c HotelCategory) Valid() bool {
	switch c {
	case HotelOneStar, HotelTwoStar, HotelThreeStar, HotelFourStar, HotelFiveStar, HotelApartments:
		return true
	}
	return false
}

func (c HotelCategory) Label() string {
	switch c {
	case HotelOneStar:
		return "One star"
	case HotelTwoStar:
		return "Two stars"
	case HotelThreeStar:
		return "Three stars"
	case HotelFourStar:
		return "Four stars"
	case HotelFiveStar:
		return "Five stars"
	case HotelApartments:
		return "Apartments"
	}
	return string(c)
}

// TransportType is an enum for voucher transfer transport
type TransportType string

const (
	TransportNone TransportType = "none"
	TransportCar  TransportType = "car"
	TransportBus  TransportType = "bus"
)

func (t TransportType) Valid() bool {
	return t == TransportNone || t == TransportCar || t == TransportBus
}

func (t TransportType) Label() string {
	switch t {
	case TransportNone:
		return "No transfer"
	case TransportCar:
		return "Car"
	case TransportBus:
		return "Bus"
	}
	return string(t)
}

// Passport model represents an identity document held by a client
type Passport struct {
	Model
	Series       int          `json:"series" gorm:"Column:series"`
	Number       int          `json:"number" gorm:"Column:number"`
	IssuedAt     time.Time    `json:"issued_at" gorm:"Column:issued_at"`
	ExpiresAt    time.Time    `json:"expires_at" gorm:"Column:expires_at"`
	PlaceOfIssue string       `json:"place_of_issue" gorm:"Column:place_of_issue"`
	Kind         PassportKind `json:"type" gorm:"Column:kind"`
}

// Client model represents a travel agency customer
type Client struct {
	Model
	FullName                string       `json:"full_name" gorm:"Column:full_name"`
	Gender                  Gender       `json:"gender" gorm:"Column:gender"`
	DateOfBirth             time.Time    `json:"date_of_birth" gorm:"Column:date_of_birth"`
	PlaceOfBirth            string       `json:"place_of_birth" gorm:"Column:place_of_birth"`
	Status                  ClientStatus `json:"status" gorm:"Column:status"`
	DomesticPassport        *Passport    `json:"-" gorm:"foreignKey:DomesticPassportID"`
	DomesticPassportID      uint         `json:"domestic_passport_id" gorm:"Column:domestic_passport_id;uniqueIndex"`
	InternationalPassport   *Passport    `json:"-" gorm:"foreignKey:InternationalPassportID"`
	InternationalPassportID *uint        `json:"international_passport_id" gorm:"Column:international_passport_id;uniqueIndex"`
}

// Organization model represents a partner or employing organization
type Organization struct {
	Model
	Name    string `json:"name" gorm:"Column:name"`
	Address string `json:"address" gorm:"Column:address"`
	Phone   string `json:"phone" gorm:"Column:phone"`
}

// Country model represents a destination country
type Country struct {
	Model
	Name string `json:"name" gorm:"Column:name;uniqueIndex"`
}

// City model represents a city within a country
type City struct {
	Model
	Name      string   `json:"name" gorm:"Column:name"`
	Country   *Country `json:"-" gorm:"foreignKey:CountryID"`
	CountryID uint     `json:"country_id" gorm:"Column:country_id"`
}

// PreAgreement model represents a preliminary client commitment
// preceding a binding contract
type PreAgreement struct {
	Model
	StartDate  time.Time `json:"start_date" gorm:"Column:start_date"`
	EndDate    time.Time `json:"end_date" gorm:"Column:end_date"`
	Cities     []City    `json:"-" gorm:"many2many:pre_agreement_cities"`
	Client     *Client   `json:"-" gorm:"foreignKey:ClientID"`
	ClientID   uint      `json:"client_id" gorm:"Column:client_id"`
	Employee   *Employee `json:"-" gorm:"foreignKey:EmployeeID"`
	EmployeeID uint      `json:"employee_id" gorm:"Column:employee_id"`
}

// Currency model is an immutable exchange-rate quote. One row per quoted
// date; rows are never updated after creation.
type Currency struct {
	Model
	Code string    `json:"code" gorm:"Column:code"`
	Rate float64   `json:"rate" gorm:"Column:rate"`
	Date time.Time `json:"date" gorm:"Column:date"`
}

// BeforeCreate stamps the quote date at creation time
func (c *Currency) BeforeCreate(tx *gorm.DB) error {
	if c.Date.IsZero() {
		c.Date = time.Now()
	}
	return nil
}

// Hotel model represents accommodation in a city
type Hotel struct {
	Model
	Name     string        `json:"name" gorm:"Column:name"`
	Category HotelCategory `json:"category" gorm:"Column:category"`
	Address  string        `json:"address" gorm:"Column:address"`
	City     *City         `json:"-" gorm:"foreignKey:CityID"`
	CityID   uint          `json:"city_id" gorm:"Column:city_id"`
}

// Room model represents a bookable room within a hotel
type Room struct {
	Model
	Name         string `json:"name" gorm:"Column:name"`
	Beds         int    `json:"beds" gorm:"Column:beds;default:1"`
	MaxGuests    int    `json:"max_guests" gorm:"Column:max_guests;default:1"`
	Balcony      bool   `json:"balcony" gorm:"Column:balcony"`
	FoodIncluded bool   `json:"food_included" gorm:"Column:food_included"`
	Occupied     bool   `json:"occupied" gorm:"Column:occupied"`
	Hotel        *Hotel `json:"-" gorm:"foreignKey:HotelID"`
	HotelID      uint   `json:"hotel_id" gorm:"Column:hotel_id"`
}

// Route model represents a dated stay at one city/hotel/room.
// Rooms may be referenced by any number of overlapping routes; there is
// deliberately no availability checking at this level.
type Route struct {
	Model
	StartDate time.Time `json:"start_date" gorm:"Column:start_date"`
	EndDate   time.Time `json:"end_date" gorm:"Column:end_date"`
	City      *City     `json:"-" gorm:"foreignKey:CityID"`
	CityID    uint      `json:"city_id" gorm:"Column:city_id"`
	Hotel     *Hotel    `json:"-" gorm:"foreignKey:HotelID"`
	HotelID   uint      `json:"hotel_id" gorm:"Column:hotel_id"`
	Room      *Room     `json:"-" gorm:"foreignKey:RoomID"`
	RoomID    uint      `json:"room_id" gorm:"Column:room_id"`
}

// Tour model aggregates routes within a destination country
type Tour struct {
	Model
	Country   *Country `json:"-" gorm:"foreignKey:CountryID"`
	CountryID uint     `json:"country_id" gorm:"Column:country_id"`
	Routes    []Route  `json:"-" gorm:"many2many:tour_routes"`
}

// Contract model is the binding agreement aggregating a tour, a
// pre-agreement and the travelling clients. A tour and a pre-agreement
// can each back at most one contract.
type Contract struct {
	Model
	StartDate      time.Time     `json:"start_date" gorm:"Column:start_date"`
	EndDate        time.Time     `json:"end_date" gorm:"Column:end_date"`
	Amount         float64       `json:"amount" gorm:"Column:amount"`
	Currency       *Currency     `json:"-" gorm:"foreignKey:CurrencyID"`
	CurrencyID     uint          `json:"currency_id" gorm:"Column:currency_id"`
	Tourists       []Client      `json:"-" gorm:"many2many:contract_tourists"`
	Tour           *Tour         `json:"-" gorm:"foreignKey:TourID"`
	TourID         uint          `json:"tour_id" gorm:"Column:tour_id;uniqueIndex"`
	PreAgreement   *PreAgreement `json:"-" gorm:"foreignKey:PreAgreementID"`
	PreAgreementID uint          `json:"pre_agreement_id" gorm:"Column:pre_agreement_id;uniqueIndex"`
	Employee       *Employee     `json:"-" gorm:"foreignKey:EmployeeID"`
	EmployeeID     uint          `json:"employee_id" gorm:"Column:employee_id"`
}

// Payment model tracks settlement of a contract in the base currency
type Payment struct {
	Model
	ExpiresAt  time.Time  `json:"expires_at" gorm:"Column:expires_at"`
	PaidAt     *time.Time `json:"paid_at" gorm:"Column:paid_at"`
	Paid       bool       `json:"paid" gorm:"Column:paid"`
	AmountBase float64    `json:"amount_base" gorm:"Column:amount_base"`
	Employee   *Employee  `json:"-" gorm:"foreignKey:EmployeeID"`
	EmployeeID uint       `json:"employee_id" gorm:"Column:employee_id"`
	Contract   *Contract  `json:"-" gorm:"foreignKey:ContractID"`
	ContractID uint       `json:"contract_id" gorm:"Column:contract_id;uniqueIndex"`
}

// Voucher model is the terminal travel document issued once the
// contract's payment is settled
type Voucher struct {
	Model
	TransferIncluded bool          `json:"transfer_included" gorm:"Column:transfer_included"`
	TravelDocs       string        `json:"travel_docs" gorm:"Column:travel_docs"`
	Transport        TransportType `json:"transport" gorm:"Column:transport"`
	Payment          *Payment      `json:"-" gorm:"foreignKey:PaymentID"`
	PaymentID        uint          `json:"payment_id" gorm:"Column:payment_id;uniqueIndex"`
}
