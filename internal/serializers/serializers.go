// Package serializers is the transfer layer: one serializer per entity,
// a structural mirror of the entity's fields. Related entities appear as
// identifiers, never as expanded objects. Each serializer validates
// required fields and choice constraints before a model is constructed
// or updated; partial validation checks only the fields that were
// provided.
package serializers

import (
	"time"

	"example.com/travelagency/internal/models"
)

// PassportSerializer mirrors models.Passport. The type field is a
// constrained choice drawn from the passport kind enumeration.
type PassportSerializer struct {
	ID           uint       `json:"id,omitempty"`
	Series       *int       `json:"series"`
	Number       *int       `json:"number"`
	IssuedAt     *time.Time `json:"issued_at"`
	ExpiresAt    *time.Time `json:"expires_at"`
	PlaceOfIssue *string    `json:"place_of_issue"`
	Kind         *string    `json:"type"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

func (s *PassportSerializer) Validate() error {
	if s.Series == nil {
		return models.NewValidationError("series", "this field is required")
	}
	if s.Number == nil {
		return models.NewValidationError("number", "this field is required")
	}
	if s.IssuedAt == nil {
		return models.NewValidationError("issued_at", "this field is required")
	}
	if s.ExpiresAt == nil {
		return models.NewValidationError("expires_at", "this field is required")
	}
	if s.PlaceOfIssue == nil || *s.PlaceOfIssue == "" {
		return models.NewValidationError("place_of_issue", "this field is required")
	}
	if s.Kind == nil {
		return models.NewValidationError("type", "this field is required")
	}
	return s.ValidatePartial()
}

func (s *PassportSerializer) ValidatePartial() error {
	if s.Kind != nil && !models.PassportKind(*s.Kind).Valid() {
		return models.NewValidationError("type", "value is not a valid choice")
	}
	return nil
}

// Model constructs a new passport from the serializer
func (s *PassportSerializer) Model() *models.Passport {
	p := &models.Passport{Kind: models.PassportForeign}
	s.Apply(p)
	return p
}

// Apply copies the provided fields onto an existing passport
func (s *PassportSerializer) Apply(p *models.Passport) {
	if s.Series != nil {
		p.Series = *s.Series
	}
	if s.Number != nil {
		p.Number = *s.Number
	}
	if s.IssuedAt != nil {
		p.IssuedAt = *s.IssuedAt
	}
	if s.ExpiresAt != nil {
		p.ExpiresAt = *s.ExpiresAt
	}
	if s.PlaceOfIssue != nil {
		p.PlaceOfIssue = *s.PlaceOfIssue
	}
	if s.Kind != nil {
		p.Kind = models.PassportKind(*s.Kind)
	}
}

// PassportResponse fills the serializer from a stored passport
func PassportResponse(p *models.Passport) PassportSerializer {
	kind := string(p.Kind)
	return PassportSerializer{
		ID:           p.ID,
		Series:       &p.Series,
		Number:       &p.Number,
		IssuedAt:     &p.IssuedAt,
		ExpiresAt:    &p.ExpiresAt,
		PlaceOfIssue: &p.PlaceOfIssue,
		Kind:         &kind,
		CreatedAt:    &p.CreatedAt,
		UpdatedAt:    &p.UpdatedAt,
	}
}

// ClientSerializer mirrors models.Client. Passports are referenced by
// identifier; the domestic passport is mandatory, the international one
// optional.
type ClientSerializer struct {
	ID                      uint       `json:"id,omitempty"`
	FullName                *string    `json:"full_name"`
	Gender                  *string    `json:"gender"`
	DateOfBirth             *time.Time `json:"date_of_birth"`
	PlaceOfBirth            *string    `json:"place_of_birth"`
	Status                  *string    `json:"status"`
	DomesticPassportID      *uint      `json:"domestic_passport_id"`
	InternationalPassportID *uint      `json:"international_passport_id"`
	CreatedAt               *time.Time `json:"created_at,omitempty"`
	UpdatedAt               *time.Time `json:"updated_at,omitempty"`
}

func (s *ClientSerializer) Validate() error {
	if s.FullName == nil || *s.FullName == "" {
		return models.NewValidationError("full_name", "this field is required")
	}
	if s.DateOfBirth == nil {
		return models.NewValidationError("date_of_birth", "this field is required")
	}
	if s.PlaceOfBirth == nil || *s.PlaceOfBirth == "" {
		return models.NewValidationError("place_of_birth", "this field is required")
	}
	if s.DomesticPassportID == nil {
		return models.NewValidationError("domestic_passport_id", "this field is required")
	}
	return s.ValidatePartial()
}

func (s *ClientSerializer) ValidatePartial() error {
	if s.Gender != nil && !models.Gender(*s.Gender).Valid() {
		return models.NewValidationError("gender", "value is not a valid choice")
	}
	if s.Status != nil && !models.ClientStatus(*s.Status).Valid() {
		return models.NewValidationError("status", "value is not a valid choice")
	}
	return nil
}

func (s *ClientSerializer) Model() *models.Client {
	c := &models.Client{
		Gender: models.GenderMale,
		Status: models.ClientCommon,
	}
	s.Apply(c)
	return c
}

func (s *ClientSerializer) Apply(c *models.Client) {
	if s.FullName != nil {
		c.FullName = *s.FullName
	}
	if s.Gender != nil {
		c.Gender = models.Gender(*s.Gender)
	}
	if s.DateOfBirth != nil {
		c.DateOfBirth = *s.DateOfBirth
	}
	if s.PlaceOfBirth != nil {
		c.PlaceOfBirth = *s.PlaceOfBirth
	}
	if s.Status != nil {
		c.Status = models.ClientStatus(*s.Status)
	}
	if s.DomesticPassportID != nil {
		c.DomesticPassportID = *s.DomesticPassportID
	}
	if s.InternationalPassportID != nil {
		c.InternationalPassportID = s.InternationalPassportID
	}
}

func ClientResponse(c *models.Client) ClientSerializer {
	gender := string(c.Gender)
	status := string(c.Status)
	return ClientSerializer{
		ID:                      c.ID,
		FullName:                &c.FullName,
		Gender:                  &gender,
		DateOfBirth:             &c.DateOfBirth,
		PlaceOfBirth:            &c.PlaceOfBirth,
		Status:                  &status,
		DomesticPassportID:      &c.DomesticPassportID,
		InternationalPassportID: c.InternationalPassportID,
		CreatedAt:               &c.CreatedAt,
		UpdatedAt:               &c.UpdatedAt,
	}
}

// OrganizationSerializer mirrors models.Organization
type OrganizationSerializer struct {
	ID        uint       `json:"id,omitempty"`
	Name      *string    `json:"name"`
	Address   *string    `json:"address"`
	Phone     *string    `json:"phone"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (s *OrganizationSerializer) Validate() error {
	if s.Name == nil || *s.Name == "" {
		return models.NewValidationError("name", "this field is required")
	}
	if s.Address == nil || *s.Address == "" {
		return models.NewValidationError("address", "this field is required")
	}
	if s.Phone == nil || *s.Phone == "" {
		return models.NewValidationError("phone", "this field is required")
	}
	return nil
}

func (s *OrganizationSerializer) Model() *models.Organization {
	o := &models.Organization{}
	s.Apply(o)
	return o
}

func (s *OrganizationSerializer) Apply(o *models.Organization) {
	if s.Name != nil {
		o.Name = *s.Name
	}
	if s.Address != nil {
		o.Address = *s.Address
	}
	if s.Phone != nil {
		o.Phone = *s.Phone
	}
}

func OrganizationResponse(o *models.Organization) OrganizationSerializer {
	return OrganizationSerializer{
		ID:        o.ID,
		Name:      &o.Name,
		Address:   &o.Address,
		Phone:     &o.Phone,
		CreatedAt: &o.CreatedAt,
		UpdatedAt: &o.UpdatedAt,
	}
}

// EmployeeSerializer mirrors models.Employee. The password is
// write-only; the stored hash is never serialized.
type EmployeeSerializer struct {
	ID             uint       `json:"id,omitempty"`
	Username       *string    `json:"username"`
	FirstName      *string    `json:"first_name"`
	LastName       *string    `json:"last_name"`
	MiddleName     *string    `json:"middle_name"`
	Password       *string    `json:"password,omitempty"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	Role           *string    `json:"role"`
	OrganizationID *uint      `json:"organization_id"`
	Photo          *string    `json:"photo"`
	IsActive       *bool      `json:"is_active"`
	IsStaff        *bool      `json:"is_staff"`
	IsAdmin        *bool      `json:"is_admin"`
	IsSuperuser    *bool      `json:"is_superuser"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

func (s *EmployeeSerializer) Validate() error {
	if s.Username == nil || *s.Username == "" {
		return models.NewValidationError("username", "this field is required")
	}
	if s.FirstName == nil || *s.FirstName == "" {
		return models.NewValidationError("firstname", "this field is required")
	}
	if s.LastName == nil || *s.LastName == "" {
		return models.NewValidationError("lastname", "this field is required")
	}
	if s.MiddleName == nil || *s.MiddleName == "" {
		return models.NewValidationError("middlename", "this field is required")
	}
	if s.Password == nil || *s.Password == "" {
		return models.NewValidationError("password", "this field is required")
	}
	return nil
}

// Model constructs a new employee through the factory so the identity
// invariants and password hashing are enforced in one place.
func (s *EmployeeSerializer) Model() (*models.Employee, error) {
	var username, firstName, lastName, middleName, password string
	if s.Username != nil {
		username = *s.Username
	}
	if s.FirstName != nil {
		firstName = *s.FirstName
	}
	if s.LastName != nil {
		lastName = *s.LastName
	}
	if s.MiddleName != nil {
		middleName = *s.MiddleName
	}
	if s.Password != nil {
		password = *s.Password
	}

	e, err := models.NewEmployee(username, firstName, lastName, middleName, password)
	if err != nil {
		return nil, err
	}
	s.applyOptional(e)
	return e, nil
}

// Apply copies provided fields onto an existing employee. A provided
// password is re-hashed.
func (s *EmployeeSerializer) Apply(e *models.Employee) error {
	if s.Username != nil {
		e.Username = *s.Username
	}
	if s.FirstName != nil {
		e.FirstName = *s.FirstName
	}
	if s.LastName != nil {
		e.LastName = *s.LastName
	}
	if s.MiddleName != nil {
		e.MiddleName = *s.MiddleName
	}
	if s.Password != nil {
		if err := e.SetPassword(*s.Password); err != nil {
			return err
		}
	}
	s.applyOptional(e)
	return nil
}

func (s *EmployeeSerializer) applyOptional(e *models.Employee) {
	if s.DateOfBirth != nil {
		e.DateOfBirth = s.DateOfBirth
	}
	if s.Role != nil {
		e.Role = *s.Role
	}
	if s.OrganizationID != nil {
		e.OrganizationID = s.OrganizationID
	}
	if s.Photo != nil {
		e.Photo = *s.Photo
	}
	if s.IsActive != nil {
		e.IsActive = *s.IsActive
	}
	if s.IsStaff != nil {
		e.IsStaff = *s.IsStaff
	}
	if s.IsAdmin != nil {
		e.IsAdmin = *s.IsAdmin
	}
	if s.IsSuperuser != nil {
		e.IsSuperuser = *s.IsSuperuser
	}
}

func EmployeeResponse(e *models.Employee) EmployeeSerializer {
	return EmployeeSerializer{
		ID:             e.ID,
		Username:       &e.Username,
		FirstName:      &e.FirstName,
		LastName:       &e.LastName,
		MiddleName:     &e.MiddleName,
		DateOfBirth:    e.DateOfBirth,
		Role:           &e.Role,
		OrganizationID: e.OrganizationID,
		Photo:          &e.Photo,
		IsActive:       &e.IsActive,
		IsStaff:        &e.IsStaff,
		IsAdmin:        &e.IsAdmin,
		IsSuperuser:    &e.IsSuperuser,
		CreatedAt:      &e.CreatedAt,
		UpdatedAt:      &e.UpdatedAt,
	}
}

// CountrySerializer mirrors models.Country
type CountrySerializer struct {
	ID        uint       `json:"id,omitempty"`
	Name      *string    `json:"name"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (s *CountrySerializer) Validate() error {
	if s.Name == nil || *s.Name == "" {
		return models.NewValidationError("name", "this field is required")
	}
	return nil
}

func (s *CountrySerializer) Model() *models.Country {
	c := &models.Country{}
	s.Apply(c)
	return c
}

func (s *CountrySerializer) Apply(c *models.Country) {
	if s.Name != nil {
		c.Name = *s.Name
	}
}

func CountryResponse(c *models.Country) CountrySerializer {
	return CountrySerializer{
		ID:        c.ID,
		Name:      &c.Name,
		CreatedAt: &c.CreatedAt,
		UpdatedAt: &c.UpdatedAt,
	}
}

// CitySerializer mirrors models.City
type CitySerializer struct {
	ID        uint       `json:"id,omitempty"`
	Name      *string    `json:"name"`
	CountryID *uint      `json:"country_id"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (s *CitySerializer) Validate() error {
	if s.Name == nil || *s.Name == "" {
		return models.NewValidationError("name", "this field is required")
	}
	if s.CountryID == nil {
		return models.NewValidationError("country_id", "this field is required")
	}
	return nil
}

func (s *CitySerializer) Model() *models.City {
	c := &models.City{}
	s.Apply(c)
	return c
}

func (s *CitySerializer) Apply(c *models.City) {
	if s.Name != nil {
		c.Name = *s.Name
	}
	if s.CountryID != nil {
		c.CountryID = *s.CountryID
	}
}

func CityResponse(c *models.City) CitySerializer {
	return CitySerializer{
		ID:        c.ID,
		Name:      &c.Name,
		CountryID: &c.CountryID,
		CreatedAt: &c.CreatedAt,
		UpdatedAt: &c.UpdatedAt,
	}
}

// PreAgreementSerializer mirrors models.PreAgreement. Cities to visit
// are a list of city identifiers.
type PreAgreementSerializer struct {
	ID         uint       `json:"id,omitempty"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	Cities     []uint     `json:"cities"`
	ClientID   *uint      `json:"client_id"`
	EmployeeID *uint      `json:"employee_id"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

func (s *PreAgreementSerializer) Validate() error {
	if s.StartDate == nil {
		return models.NewValidationError("start_date", "this field is required")
	}
	if s.EndDate == nil {
		return models.NewValidationError("end_date", "this field is required")
	}
	if s.ClientID == nil {
		return models.NewValidationError("client_id", "this field is required")
	}
	if s.EmployeeID == nil {
		return models.NewValidationError("employee_id", "this field is required")
	}
	return nil
}

func (s *PreAgreementSerializer) Model() *models.PreAgreement {
	pa := &models.PreAgreement{}
	s.Apply(pa)
	return pa
}

func (s *PreAgreementSerializer) Apply(pa *models.PreAgreement) {
	if s.StartDate != nil {
		pa.StartDate = *s.StartDate
	}
	if s.EndDate != nil {
		pa.EndDate = *s.EndDate
	}
	if s.ClientID != nil {
		pa.ClientID = *s.ClientID
	}
	if s.EmployeeID != nil {
		pa.EmployeeID = *s.EmployeeID
	}
}

// CityIDs returns the city references provided in the payload
func (s *PreAgreementSerializer) CityIDs() []uint {
	return s.Cities
}

func PreAgreementResponse(pa *models.PreAgreement) PreAgreementSerializer {
	cities := make([]uint, 0, len(pa.Cities))
	for _, c := range pa.Cities {
		cities = append(cities, c.ID)
	}
	return PreAgreementSerializer{
		ID:         pa.ID,
		StartDate:  &pa.StartDate,
		EndDate:    &pa.EndDate,
		Cities:     cities,
		ClientID:   &pa.ClientID,
		EmployeeID: &pa.EmployeeID,
		CreatedAt:  &pa.CreatedAt,
		UpdatedAt:  &pa.UpdatedAt,
	}
}

// CurrencySerializer mirrors models.Currency. The quote date is
// read-only; it is stamped when the row is created.
type CurrencySerializer struct {
	ID        uint       `json:"id,omitempty"`
	Code      *string    `json:"code"`
	Rate      *float64   `json:"rate"`
	Date      *time.Time `json:"date,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (s *CurrencySerializer) Validate() error {
	if s.Code == nil || *s.Code == "" {
		return models.NewValidationError("code", "this field is required")
	}
	if s.Rate == nil {
		return models.NewValidationError("rate", "this field is required")
	}
	return nil
}

func (s *CurrencySerializer) Model() *models.Currency {
	c := &models.Currency{}
	if s.Code != nil {
		c.Code = *s.Code
	}
	if s.Rate != nil {
		c.Rate = *s.Rate
	}
	return c
}

func CurrencyResponse(c *models.Currency) CurrencySerializer {
	return CurrencySerializer{
		ID:        c.ID,
		Code:      &c.Code,
		Rate:      &c.Rate,
		Date:      &c.Date,
		CreatedAt: &c.CreatedAt,
		UpdatedAt: &c.UpdatedAt,
	}
}

// HotelSerializer mirrors models.Hotel
type HotelSerializer struct {
	ID        uint       `json:"id,omitempty"`
	Name      *string    `json:"name"`
	Category  *string    `json:"category"`
	Address   *string    `json:"address"`
	CityID    *uint      `json:"city_id"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (s *HotelSerializer) Validate() error {
	if s.Name == nil || *s.Name == "" {
		return models.NewValidationError("name", "this field is required")
	}
	if s.Address == nil || *s.Address == "" {
		return models.NewValidationError("address", "this field is required")
	}
	if s.CityID == nil {
		return models.NewValidationError("city_id", "this field is required")
	}
	return s.ValidatePartial()
}

func (s *HotelSerializer) ValidatePartial() error {
	if s.Category != nil && !models.HotelCategory(*s.Category).Valid() {
		return models.NewValidationError("category", "value is not a valid choice")
	}
	return nil
}

func (s *HotelSerializer) Model() *models.Hotel {
	h := &models.Hotel{Category: models.HotelFourStar}
	s.Apply(h)
	return h
}

func (s *HotelSerializer) Apply(h *models.Hotel) {
	if s.Name != nil {
		h.Name = *s.Name
	}
	if s.Category != nil {
		h.Category = models.HotelCategory(*s.Category)
	}
	if s.Address != nil {
		h.Address = *s.Address
	}
	if s.CityID != nil {
		h.CityID = *s.CityID
	}
}

func HotelResponse(h *models.Hotel) HotelSerializer {
	category := string(h.Category)
	return HotelSerializer{
		ID:        h.ID,
		Name:      &h.Name,
		Category:  &category,
		Address:   &h.Address,
		CityID:    &h.CityID,
		CreatedAt: &h.CreatedAt,
		UpdatedAt: &h.UpdatedAt,
	}
}

// RoomSerializer mirrors models.Room
type RoomSerializer struct {
	ID           uint       `json:"id,omitempty"`
	Name         *string    `json:"name"`
	Beds         *int       `json:"beds"`
	MaxGuests    *int       `json:"max_guests"`
	Balcony      *bool      `json:"balcony"`
	FoodIncluded *bool      `json:"food_included"`
	Occupied     *bool      `json:"occupied"`
	HotelID      *uint      `json:"hotel_id"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

func (s *RoomSerializer) Validate() error {
	if s.Name == nil || *s.Name == "" {
		return models.NewValidationError("name", "this field is required")
	}
	if s.HotelID == nil {
		return models.NewValidationError("hotel_id", "this field is required")
	}
	return nil
}

func (s *RoomSerializer) Model() *models.Room {
	r := &models.Room{Beds: 1, MaxGuests: 1}
	s.Apply(r)
	return r
}

func (s *RoomSerializer) Apply(r *models.Room) {
	if s.Name != nil {
		r.Name = *s.Name
	}
	if s.Beds != nil {
		r.Beds = *s.Beds
	}
	if s.MaxGuests != nil {
		r.MaxGuests = *s.MaxGuests
	}
	if s.Balcony != nil {
		r.Balcony = *s.Balcony
	}
	if s.FoodIncluded != nil {
		r.FoodIncluded = *s.FoodIncluded
	}
	if s.Occupied != nil {
		r.Occupied = *s.Occupied
	}
	if s.HotelID != nil {
		r.HotelID = *s.HotelID
	}
}

func RoomResponse(r *models.Room) RoomSerializer {
	return RoomSerializer{
		ID:           r.ID,
		Name:         &r.Name,
		Beds:         &r.Beds,
		MaxGuests:    &r.MaxGuests,
		Balcony:      &r.Balcony,
		FoodIncluded: &r.FoodIncluded,
		Occupied:     &r.Occupied,
		HotelID:      &r.HotelID,
		CreatedAt:    &r.CreatedAt,
		UpdatedAt:    &r.UpdatedAt,
	}
}

// RouteSerializer mirrors models.Route
type RouteSerializer struct {
	ID        uint       `json:"id,omitempty"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	CityID    *uint      `json:"city_id"`
	HotelID   *uint      `json:"hotel_id"`
	RoomID    *uint      `json:"room_id"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (s *RouteSerializer) Validate() error {
	if s.StartDate == nil {
		return models.NewValidationError("start_date", "this field is required")
	}
	if s.EndDate == nil {
		return models.NewValidationError("end_date", "this field is required")
	}
	if s.CityID == nil {
		return models.NewValidationError("city_id", "this field is required")
	}
	if s.HotelID == nil {
		return models.NewValidationError("hotel_id", "this field is required")
	}
	if s.RoomID == nil {
		return models.NewValidationError("room_id", "this field is required")
	}
	return nil
}

func (s *RouteSerializer) Model() *models.Route {
	r := &models.Route{}
	s.Apply(r)
	return r
}

func (s *RouteSerializer) Apply(r *models.Route) {
	if s.StartDate != nil {
		r.StartDate = *s.StartDate
	}
	if s.EndDate != nil {
		r.EndDate = *s.EndDate
	}
	if s.CityID != nil {
		r.CityID = *s.CityID
	}
	if s.HotelID != nil {
		r.HotelID = *s.HotelID
	}
	if s.RoomID != nil {
		r.RoomID = *s.RoomID
	}
}

func RouteResponse(r *models.Route) RouteSerializer {
	return RouteSerializer{
		ID:        r.ID,
		StartDate: &r.StartDate,
		EndDate:   &r.EndDate,
		CityID:    &r.CityID,
		HotelID:   &r.HotelID,
		RoomID:    &r.RoomID,
		CreatedAt: &r.CreatedAt,
		UpdatedAt: &r.UpdatedAt,
	}
}

// TourSerializer mirrors models.Tour. Routes are identifiers.
type TourSerializer struct {
	ID        uint       `json:"id,omitempty"`
	CountryID *uint      `json:"country_id"`
	Routes    []uint     `json:"routes"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (s *TourSerializer) Validate() error {
	if s.CountryID == nil {
		return models.NewValidationError("country_id", "this field is required")
	}
	return nil
}

func (s *TourSerializer) Model() *models.Tour {
	t := &models.Tour{}
	s.Apply(t)
	return t
}

func (s *TourSerializer) Apply(t *models.Tour) {
	if s.CountryID != nil {
		t.CountryID = *s.CountryID
	}
}

func (s *TourSerializer) RouteIDs() []uint {
	return s.Routes
}

func TourResponse(t *models.Tour) TourSerializer {
	routes := make([]uint, 0, len(t.Routes))
	for _, r := range t.Routes {
		routes = append(routes, r.ID)
	}
	return TourSerializer{
		ID:        t.ID,
		CountryID: &t.CountryID,
		Routes:    routes,
		CreatedAt: &t.CreatedAt,
		UpdatedAt: &t.UpdatedAt,
	}
}

// ContractSerializer mirrors models.Contract. Tourists are client
// identifiers.
type ContractSerializer struct {
	ID             uint       `json:"id,omitempty"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Amount         *float64   `json:"amount"`
	CurrencyID     *uint      `json:"currency_id"`
	Tourists       []uint     `json:"tourists"`
	TourID         *uint      `json:"tour_id"`
	PreAgreementID *uint      `json:"pre_agreement_id"`
	EmployeeID     *uint      `json:"employee_id"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

func (s *ContractSerializer) Validate() error {
	if s.StartDate == nil {
		return models.NewValidationError("start_date", "this field is required")
	}
	if s.EndDate == nil {
		return models.NewValidationError("end_date", "this field is required")
	}
	if s.Amount == nil {
		return models.NewValidationError("amount", "this field is required")
	}
	if s.CurrencyID == nil {
		return models.NewValidationError("currency_id", "this field is required")
	}
	if s.TourID == nil {
		return models.NewValidationError("tour_id", "this field is required")
	}
	if s.PreAgreementID == nil {
		return models.NewValidationError("pre_agreement_id", "this field is required")
	}
	if s.EmployeeID == nil {
		return models.NewValidationError("employee_id", "this field is required")
	}
	return nil
}

func (s *ContractSerializer) Model() *models.Contract {
	c := &models.Contract{}
	s.Apply(c)
	return c
}

func (s *ContractSerializer) Apply(c *models.Contract) {
	if s.StartDate != nil {
		c.StartDate = *s.StartDate
	}
	if s.EndDate != nil {
		c.EndDate = *s.EndDate
	}
	if s.Amount != nil {
		c.Amount = *s.Amount
	}
	if s.CurrencyID != nil {
		c.CurrencyID = *s.CurrencyID
	}
	if s.TourID != nil {
		c.TourID = *s.TourID
	}
	if s.PreAgreementID != nil {
		c.PreAgreementID = *s.PreAgreementID
	}
	if s.EmployeeID != nil {
		c.EmployeeID = *s.EmployeeID
	}
}

func (s *ContractSerializer) TouristIDs() []uint {
	return s.Tourists
}

func ContractResponse(c *models.Contract) ContractSerializer {
	tourists := make([]uint, 0, len(c.Tourists))
	for _, t := range c.Tourists {
		tourists = append(tourists, t.ID)
	}
	return ContractSerializer{
		ID:             c.ID,
		StartDate:      &c.StartDate,
		EndDate:        &c.EndDate,
		Amount:         &c.Amount,
		CurrencyID:     &c.CurrencyID,
		Tourists:       tourists,
		TourID:         &c.TourID,
		PreAgreementID: &c.PreAgreementID,
		EmployeeID:     &c.EmployeeID,
		CreatedAt:      &c.CreatedAt,
		UpdatedAt:      &c.UpdatedAt,
	}
}

// PaymentSerializer mirrors models.Payment
type PaymentSerializer struct {
	ID         uint       `json:"id,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at"`
	PaidAt     *time.Time `json:"paid_at"`
	Paid       *bool      `json:"paid"`
	AmountBase *float64   `json:"amount_base"`
	EmployeeID *uint      `json:"employee_id"`
	ContractID *uint      `json:"contract_id"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

func (s *PaymentSerializer) Validate() error {
	if s.ExpiresAt == nil {
		return models.NewValidationError("expires_at", "this field is required")
	}
	if s.AmountBase == nil {
		return models.NewValidationError("amount_base", "this field is required")
	}
	if s.EmployeeID == nil {
		return models.NewValidationError("employee_id", "this field is required")
	}
	if s.ContractID == nil {
		return models.NewValidationError("contract_id", "this field is required")
	}
	return nil
}

func (s *PaymentSerializer) Model() *models.Payment {
	p := &models.Payment{}
	s.Apply(p)
	return p
}

func (s *PaymentSerializer) Apply(p *models.Payment) {
	if s.ExpiresAt != nil {
		p.ExpiresAt = *s.ExpiresAt
	}
	if s.PaidAt != nil {
		p.PaidAt = s.PaidAt
	}
	if s.Paid != nil {
		p.Paid = *s.Paid
	}
	if s.AmountBase != nil {
		p.AmountBase = *s.AmountBase
	}
	if s.EmployeeID != nil {
		p.EmployeeID = *s.EmployeeID
	}
	if s.ContractID != nil {
		p.ContractID = *s.ContractID
	}
}

func PaymentResponse(p *models.Payment) PaymentSerializer {
	return PaymentSerializer{
		ID:         p.ID,
		ExpiresAt:  &p.ExpiresAt,
		PaidAt:     p.PaidAt,
		Paid:       &p.Paid,
		AmountBase: &p.AmountBase,
		EmployeeID: &p.EmployeeID,
		ContractID: &p.ContractID,
		CreatedAt:  &p.CreatedAt,
		UpdatedAt:  &p.UpdatedAt,
	}
}

// VoucherSerializer mirrors models.Voucher
type VoucherSerializer struct {
	ID               uint       `json:"id,omitempty"`
	TransferIncluded *bool      `json:"transfer_included"`
	TravelDocs       *string    `json:"travel_docs"`
	Transport        *string    `json:"transport"`
	PaymentID        *uint      `json:"payment_id"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

func (s *VoucherSerializer) Validate() error {
	if s.PaymentID == nil {
		return models.NewValidationError("payment_id", "this field is required")
	}
	return s.ValidatePartial()
}

func (s *VoucherSerializer) ValidatePartial() error {
	if s.Transport != nil && !models.TransportType(*s.Transport).Valid() {
		return models.NewValidationError("transport", "value is not a valid choice")
	}
	return nil
}

func (s *VoucherSerializer) Model() *models.Voucher {
	v := &models.Voucher{Transport: models.TransportNone}
	s.Apply(v)
	return v
}

func (s *VoucherSerializer) Apply(v *models.Voucher) {
	if s.TransferIncluded != nil {
		v.TransferIncluded = *s.TransferIncluded
	}
	if s.TravelDocs != nil {
		v.TravelDocs = *s.TravelDocs
	}
	if s.Transport != nil {
		v.Transport = models.TransportType(*s.Transport)
	}
	if s.PaymentID != nil {
		v.PaymentID = *s.PaymentID
	}
}

func VoucherResponse(v *models.Voucher) VoucherSerializer {
	transport := string(v.Transport)
	return VoucherSerializer{
		ID:               v.ID,
		TransferIncluded: &v.TransferIncluded,
		TravelDocs:       &v.TravelDocs,
		Transport:        &transport,
		PaymentID:        &v.PaymentID,
		CreatedAt:        &v.CreatedAt,
		UpdatedAt:        &v.UpdatedAt,
	}
}
