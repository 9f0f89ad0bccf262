// Package admin exposes every entity for back-office management. Each
// entity registers a Resource under its name; the HTTP layer dispatches
// on the name without knowing the concrete types.
package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"example.com/travelagency/internal/models"
	"example.com/travelagency/internal/repository"
	"example.com/travelagency/internal/serializers"
	"example.com/travelagency/internal/service"
)

// Resource is the uniform management surface for a single entity.
type Resource struct {
	Name   string
	List   func(ctx context.Context) (any, error)
	Get    func(ctx context.Context, id uint) (any, error)
	Create func(ctx context.Context, data []byte) (any, error)
	Update func(ctx context.Context, id uint, data []byte, partial bool) (any, error)
	Delete func(ctx context.Context, id uint) error
}

// Registry holds the resources keyed by their URL name.
type Registry struct {
	resources map[string]*Resource
}

func (r *Registry) Lookup(name string) (*Resource, bool) {
	res, ok := r.resources[name]
	return res, ok
}

// Names returns the registered entity names in stable order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.resources))
	for name := range r.resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) register(res *Resource) {
	r.resources[res.Name] = res
}

func decode(data []byte, into any) error {
	if err := json.Unmarshal(data, into); err != nil {
		return models.NewValidationError("body", "malformed request payload")
	}
	return nil
}

// NewRegistry wires a resource for every entity in the system. Employee
// creation goes through the service layer so the factory validation and
// hashing run exactly as they do for the CLI.
func NewRegistry(repo repository.Repository, svc service.Service) *Registry {
	r := &Registry{resources: make(map[string]*Resource)}

	r.register(passportResource(repo))
	r.register(clientResource(repo))
	r.register(organizationResource(repo))
	r.register(employeeResource(repo, svc))
	r.register(countryResource(repo))
	r.register(cityResource(repo))
	r.register(preAgreementResource(repo))
	r.register(currencyResource(repo))
	r.register(hotelResource(repo))
	r.register(roomResource(repo))
	r.register(routeResource(repo))
	r.register(tourResource(repo))
	r.register(contractResource(repo))
	r.register(paymentResource(repo))
	r.register(voucherResource(repo))

	return r
}

// ResolvePrincipal maps the configured user model name to a lookup over
// the backing store. An unknown name is a startup error, not a request
// error.
func ResolvePrincipal(userModel string, repo repository.Repository) (func(ctx context.Context, username string) (models.Principal, error), error) {
	switch userModel {
	case "employee":
		return func(ctx context.Context, username string) (models.Principal, error) {
			return repo.FindEmployeeByUsername(ctx, username)
		}, nil
	default:
		return nil, fmt.Errorf("unknown auth user model %q", userModel)
	}
}

func passportResource(repo repository.Repository) *Resource {
	return &Resource{
		Name: "passport",
		List: func(ctx context.Context) (any, error) {
			items, err := repo.ListPassports(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]serializers.PassportSerializer, 0, len(items))
			for _, item := range items {
				out = append(out, serializers.PassportResponse(item))
			}
			return out, nil
		},
		Get: func(ctx context.Context, id uint) (any, error) {
			item, err := repo.FindPassportByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return serializers.PassportResponse(item), nil
		},
		Create: func(ctx context.Context, data []byte) (any, error) {
			var in serializers.PassportSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if err := in.Validate(); err != nil {
				return nil, err
			}
			item := in.Model()
			if err := repo.CreatePassport(ctx, item); err != nil {
				return nil, err
			}
			return serializers.PassportResponse(item), nil
		},
		Update: func(ctx context.Context, id uint, data []byte, partial bool) (any, error) {
			var in serializers.PassportSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if partial {
				if err := in.ValidatePartial(); err != nil {
					return nil, err
				}
			} else if err := in.Validate(); err != nil {
				return nil, err
			}
			item, err := repo.FindPassportByID(ctx, id)
			if err != nil {
				return nil, err
			}
			in.Apply(item)
			if err := repo.SavePassport(ctx, item); err != nil {
				return nil, err
			}
			return serializers.PassportResponse(item), nil
		},
		Delete: repo.DeletePassport,
	}
}

func clientResource(repo repository.Repository) *Resource {
	return &Resource{
		Name: "client",
		List: func(ctx context.Context) (any, error) {
			items, err := repo.ListClients(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]serializers.ClientSerializer, 0, len(items))
			for _, item := range items {
				out = append(out, serializers.ClientResponse(item))
			}
			return out, nil
		},
		Get: func(ctx context.Context, id uint) (any, error) {
			item, err := repo.FindClientByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return serializers.ClientResponse(item), nil
		},
		Create: func(ctx context.Context, data []byte) (any, error) {
			var in serializers.ClientSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if err := in.Validate(); err != nil {
				return nil, err
			}
			item := in.Model()
			if err := repo.CreateClient(ctx, item); err != nil {
				return nil, err
			}
			return serializers.ClientResponse(item), nil
		},
		Update: func(ctx context.Context, id uint, data []byte, partial bool) (any, error) {
			var in serializers.ClientSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if partial {
				if err := in.ValidatePartial(); err != nil {
					return nil, err
				}
			} else if err := in.Validate(); err != nil {
				return nil, err
			}
			item, err := repo.FindClientByID(ctx, id)
			if err != nil {
				return nil, err
			}
			in.Apply(item)
			if err := repo.SaveClient(ctx, item); err != nil {
				return nil, err
			}
			return serializers.ClientResponse(item), nil
		},
		Delete: repo.DeleteClient,
	}
}

func organizationResource(repo repository.Repository) *Resource {
	return &Resource{
		Name: "organization",
		List: func(ctx context.Context) (any, error) {
			items, err := repo.ListOrganizations(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]serializers.OrganizationSerializer, 0, len(items))
			for _, item := range items {
				out = append(out, serializers.OrganizationResponse(item))
			}
			return out, nil
		},
		Get: func(ctx context.Context, id uint) (any, error) {
			item, err := repo.FindOrganizationByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return serializers.OrganizationResponse(item), nil
		},
		Create: func(ctx context.Context, data []byte) (any, error) {
			var in serializers.OrganizationSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if err := in.Validate(); err != nil {
				return nil, err
			}
			item := in.Model()
			if err := repo.CreateOrganization(ctx, item); err != nil {
				return nil, err
			}
			return serializers.OrganizationResponse(item), nil
		},
		Update: func(ctx context.Context, id uint, data []byte, partial bool) (any, error) {
			var in serializers.OrganizationSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if !partial {
				if err := in.Validate(); err != nil {
					return nil, err
				}
			}
			item, err := repo.FindOrganizationByID(ctx, id)
			if err != nil {
				return nil, err
			}
			in.Apply(item)
			if err := repo.SaveOrganization(ctx, item); err != nil {
				return nil, err
			}
			return serializers.OrganizationResponse(item), nil
		},
		Delete: repo.DeleteOrganization,
	}
}

func employeeResource(repo repository.Repository, svc service.Service) *Resource {
	return &Resource{
		Name: "employee",
		List: func(ctx context.Context) (any, error) {
			items, err := repo.ListEmployees(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]serializers.EmployeeSerializer, 0, len(items))
			for _, item := range items {
				out = append(out, serializers.EmployeeResponse(item))
			}
			return out, nil
		},
		Get: func(ctx context.Context, id uint) (any, error) {
			item, err := repo.FindEmployeeByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return serializers.EmployeeResponse(item), nil
		},
		Create: func(ctx context.Context, data []byte) (any, error) {
			var in serializers.EmployeeSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			return svc.CreateEmployee(ctx, &in)
		},
		Update: func(ctx context.Context, id uint, data []byte, partial bool) (any, error) {
			var in serializers.EmployeeSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if !partial {
				if err := in.Validate(); err != nil {
					return nil, err
				}
			}
			item, err := repo.FindEmployeeByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if err := in.Apply(item); err != nil {
				return nil, err
			}
			if err := repo.SaveEmployee(ctx, item); err != nil {
				return nil, err
			}
			return serializers.EmployeeResponse(item), nil
		},
		Delete: repo.DeleteEmployee,
	}
}

func countryResource(repo repository.Repository) *Resource {
	return &Resource{
		Name: "country",
		List: func(ctx context.Context) (any, error) {
			items, err := repo.ListCountries(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]serializers.CountrySerializer, 0, len(items))
			for _, item := range items {
				out = append(out, serializers.CountryResponse(item))
			}
			return out, nil
		},
		Get: func(ctx context.Context, id uint) (any, error) {
			item, err := repo.FindCountryByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return serializers.CountryResponse(item), nil
		},
		Create: func(ctx context.Context, data []byte) (any, error) {
			var in serializers.CountrySerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if err := in.Validate(); err != nil {
				return nil, err
			}
			item := in.Model()
			if err := repo.CreateCountry(ctx, item); err != nil {
				return nil, err
			}
			return serializers.CountryResponse(item), nil
		},
		Update: func(ctx context.Context, id uint, data []byte, partial bool) (any, error) {
			var in serializers.CountrySerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if !partial {
				if err := in.Validate(); err != nil {
					return nil, err
				}
			}
			item, err := repo.FindCountryByID(ctx, id)
			if err != nil {
				return nil, err
			}
			in.Apply(item)
			if err := repo.SaveCountry(ctx, item); err != nil {
				return nil, err
			}
			return serializers.CountryResponse(item), nil
		},
		Delete: repo.DeleteCountry,
	}
}

func cityResource(repo repository.Repository) *Resource {
	return &Resource{
		Name: "city",
		List: func(ctx context.Context) (any, error) {
			items, err := repo.ListCities(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]serializers.CitySerializer, 0, len(items))
			for _, item := range items {
				out = append(out, serializers.CityResponse(item))
			}
			return out, nil
		},
		Get: func(ctx context.Context, id uint) (any, error) {
			item, err := repo.FindCityByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return serializers.CityResponse(item), nil
		},
		Create: func(ctx context.Context, data []byte) (any, error) {
			var in serializers.CitySerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if err := in.Validate(); err != nil {
				return nil, err
			}
			item := in.Model()
			if err := repo.CreateCity(ctx, item); err != nil {
				return nil, err
			}
			return serializers.CityResponse(item), nil
		},
		Update: func(ctx context.Context, id uint, data []byte, partial bool) (any, error) {
			var in serializers.CitySerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if !partial {
				if err := in.Validate(); err != nil {
					return nil, err
				}
			}
			item, err := repo.FindCityByID(ctx, id)
			if err != nil {
				return nil, err
			}
			in.Apply(item)
			if err := repo.SaveCity(ctx, item); err != nil {
				return nil, err
			}
			return serializers.CityResponse(item), nil
		},
		Delete: repo.DeleteCity,
	}
}

func preAgreementResource(repo repository.Repository) *Resource {
	return &Resource{
		Name: "preagreement",
		List: func(ctx context.Context) (any, error) {
			items, err := repo.ListPreAgreements(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]serializers.PreAgreementSerializer, 0, len(items))
			for _, item := range items {
				out = append(out, serializers.PreAgreementResponse(item))
			}
			return out, nil
		},
		Get: func(ctx context.Context, id uint) (any, error) {
			item, err := repo.FindPreAgreementByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return serializers.PreAgreementResponse(item), nil
		},
		Create: func(ctx context.Context, data []byte) (any, error) {
			var in serializers.PreAgreementSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if err := in.Validate(); err != nil {
				return nil, err
			}
			item := in.Model()
			if err := repo.CreatePreAgreement(ctx, item, in.CityIDs()); err != nil {
				return nil, err
			}
			return serializers.PreAgreementResponse(item), nil
		},
		Update: func(ctx context.Context, id uint, data []byte, partial bool) (any, error) {
			var in serializers.PreAgreementSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if !partial {
				if err := in.Validate(); err != nil {
					return nil, err
				}
			}
			item, err := repo.FindPreAgreementByID(ctx, id)
			if err != nil {
				return nil, err
			}
			in.Apply(item)
			cityIDs := in.CityIDs()
			if partial && in.Cities == nil {
				cityIDs = nil
				for _, c := range item.Cities {
					cityIDs = append(cityIDs, c.ID)
				}
			}
			if err := repo.SavePreAgreement(ctx, item, cityIDs); err != nil {
				return nil, err
			}
			return serializers.PreAgreementResponse(item), nil
		},
		Delete: repo.DeletePreAgreement,
	}
}

func currencyResource(repo repository.Repository) *Resource {
	return &Resource{
		Name: "currency",
		List: func(ctx context.Context) (any, error) {
			items, err := repo.ListCurrencies(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]serializers.CurrencySerializer, 0, len(items))
			for _, item := range items {
				out = append(out, serializers.CurrencyResponse(item))
			}
			return out, nil
		},
		Get: func(ctx context.Context, id uint) (any, error) {
			item, err := repo.FindCurrencyByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return serializers.CurrencyResponse(item), nil
		},
		Create: func(ctx context.Context, data []byte) (any, error) {
			var in serializers.CurrencySerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if err := in.Validate(); err != nil {
				return nil, err
			}
			item := in.Model()
			if err := repo.CreateCurrency(ctx, item); err != nil {
				return nil, err
			}
			return serializers.CurrencyResponse(item), nil
		},
		// Quotes are immutable; a new rate means a new row.
		Update: func(ctx context.Context, id uint, data []byte, partial bool) (any, error) {
			return nil, models.NewValidationError("currency", "currency quotes are immutable, create a new quote instead")
		},
		Delete: repo.DeleteCurrency,
	}
}

func hotelResource(repo repository.Repository) *Resource {
	return &Resource{
		Name: "hotel",
		List: func(ctx context.Context) (any, error) {
			items, err := repo.ListHotels(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]serializers.HotelSerializer, 0, len(items))
			for _, item := range items {
				out = append(out, serializers.HotelResponse(item))
			}
			return out, nil
		},
		Get: func(ctx context.Context, id uint) (any, error) {
			item, err := repo.FindHotelByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return serializers.HotelResponse(item), nil
		},
		Create: func(ctx context.Context, data []byte) (any, error) {
			var in serializers.HotelSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if err := in.Validate(); err != nil {
				return nil, err
			}
			item := in.Model()
			if err := repo.CreateHotel(ctx, item); err != nil {
				return nil, err
			}
			return serializers.HotelResponse(item), nil
		},
		Update: func(ctx context.Context, id uint, data []byte, partial bool) (any, error) {
			var in serializers.HotelSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if partial {
				if err := in.ValidatePartial(); err != nil {
					return nil, err
				}
			} else if err := in.Validate(); err != nil {
				return nil, err
			}
			item, err := repo.FindHotelByID(ctx, id)
			if err != nil {
				return nil, err
			}
			in.Apply(item)
			if err := repo.SaveHotel(ctx, item); err != nil {
				return nil, err
			}
			return serializers.HotelResponse(item), nil
		},
		Delete: repo.DeleteHotel,
	}
}

func roomResource(repo repository.Repository) *Resource {
	return &Resource{
		Name: "room",
		List: func(ctx context.Context) (any, error) {
			items, err := repo.ListRooms(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]serializers.RoomSerializer, 0, len(items))
			for _, item := range items {
				out = append(out, serializers.RoomResponse(item))
			}
			return out, nil
		},
		Get: func(ctx context.Context, id uint) (any, error) {
			item, err := repo.FindRoomByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return serializers.RoomResponse(item), nil
		},
		Create: func(ctx context.Context, data []byte) (any, error) {
			var in serializers.RoomSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if err := in.Validate(); err != nil {
				return nil, err
			}
			item := in.Model()
			if err := repo.CreateRoom(ctx, item); err != nil {
				return nil, err
			}
			return serializers.RoomResponse(item), nil
		},
		Update: func(ctx context.Context, id uint, data []byte, partial bool) (any, error) {
			var in serializers.RoomSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if !partial {
				if err := in.Validate(); err != nil {
					return nil, err
				}
			}
			item, err := repo.FindRoomByID(ctx, id)
			if err != nil {
				return nil, err
			}
			in.Apply(item)
			if err := repo.SaveRoom(ctx, item); err != nil {
				return nil, err
			}
			return serializers.RoomResponse(item), nil
		},
		Delete: repo.DeleteRoom,
	}
}

func routeResource(repo repository.Repository) *Resource {
	return &Resource{
		Name: "route",
		List: func(ctx context.Context) (any, error) {
			items, err := repo.ListRoutes(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]serializers.RouteSerializer, 0, len(items))
			for _, item := range items {
				out = append(out, serializers.RouteResponse(item))
			}
			return out, nil
		},
		Get: func(ctx context.Context, id uint) (any, error) {
			item, err := repo.FindRouteByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return serializers.RouteResponse(item), nil
		},
		Create: func(ctx context.Context, data []byte) (any, error) {
			var in serializers.RouteSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if err := in.Validate(); err != nil {
				return nil, err
			}
			item := in.Model()
			if err := repo.CreateRoute(ctx, item); err != nil {
				return nil, err
			}
			return serializers.RouteResponse(item), nil
		},
		Update: func(ctx context.Context, id uint, data []byte, partial bool) (any, error) {
			var in serializers.RouteSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if !partial {
				if err := in.Validate(); err != nil {
					return nil, err
				}
			}
			item, err := repo.FindRouteByID(ctx, id)
			if err != nil {
				return nil, err
			}
			in.Apply(item)
			if err := repo.SaveRoute(ctx, item); err != nil {
				return nil, err
			}
			return serializers.RouteResponse(item), nil
		},
		Delete: repo.DeleteRoute,
	}
}

func tourResource(repo repository.Repository) *Resource {
	return &Resource{
		Name: "tour",
		List: func(ctx context.Context) (any, error) {
			items, err := repo.ListTours(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]serializers.TourSerializer, 0, len(items))
			for _, item := range items {
				out = append(out, serializers.TourResponse(item))
			}
			return out, nil
		},
		Get: func(ctx context.Context, id uint) (any, error) {
			item, err := repo.FindTourByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return serializers.TourResponse(item), nil
		},
		Create: func(ctx context.Context, data []byte) (any, error) {
			var in serializers.TourSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if err := in.Validate(); err != nil {
				return nil, err
			}
			item := in.Model()
			if err := repo.CreateTour(ctx, item, in.RouteIDs()); err != nil {
				return nil, err
			}
			return serializers.TourResponse(item), nil
		},
		Update: func(ctx context.Context, id uint, data []byte, partial bool) (any, error) {
			var in serializers.TourSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if !partial {
				if err := in.Validate(); err != nil {
					return nil, err
				}
			}
			item, err := repo.FindTourByID(ctx, id)
			if err != nil {
				return nil, err
			}
			in.Apply(item)
			routeIDs := in.RouteIDs()
			if partial && in.Routes == nil {
				routeIDs = nil
				for _, rt := range item.Routes {
					routeIDs = append(routeIDs, rt.ID)
				}
			}
			if err := repo.SaveTour(ctx, item, routeIDs); err != nil {
				return nil, err
			}
			return serializers.TourResponse(item), nil
		},
		Delete: repo.DeleteTour,
	}
}

func contractResource(repo repository.Repository) *Resource {
	return &Resource{
		Name: "contract",
		List: func(ctx context.Context) (any, error) {
			items, err := repo.ListContracts(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]serializers.ContractSerializer, 0, len(items))
			for _, item := range items {
				out = append(out, serializers.ContractResponse(item))
			}
			return out, nil
		},
		Get: func(ctx context.Context, id uint) (any, error) {
			item, err := repo.FindContractByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return serializers.ContractResponse(item), nil
		},
		Create: func(ctx context.Context, data []byte) (any, error) {
			var in serializers.ContractSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if err := in.Validate(); err != nil {
				return nil, err
			}
			item := in.Model()
			if err := repo.CreateContract(ctx, item, in.TouristIDs()); err != nil {
				return nil, err
			}
			return serializers.ContractResponse(item), nil
		},
		Update: func(ctx context.Context, id uint, data []byte, partial bool) (any, error) {
			var in serializers.ContractSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if !partial {
				if err := in.Validate(); err != nil {
					return nil, err
				}
			}
			item, err := repo.FindContractByID(ctx, id)
			if err != nil {
				return nil, err
			}
			in.Apply(item)
			touristIDs := in.TouristIDs()
			if partial && in.Tourists == nil {
				touristIDs = nil
				for _, t := range item.Tourists {
					touristIDs = append(touristIDs, t.ID)
				}
			}
			if err := repo.SaveContract(ctx, item, touristIDs); err != nil {
				return nil, err
			}
			return serializers.ContractResponse(item), nil
		},
		Delete: repo.DeleteContract,
	}
}

func paymentResource(repo repository.Repository) *Resource {
	return &Resource{
		Name: "payment",
		List: func(ctx context.Context) (any, error) {
			items, err := repo.ListPayments(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]serializers.PaymentSerializer, 0, len(items))
			for _, item := range items {
				out = append(out, serializers.PaymentResponse(item))
			}
			return out, nil
		},
		Get: func(ctx context.Context, id uint) (any, error) {
			item, err := repo.FindPaymentByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return serializers.PaymentResponse(item), nil
		},
		Create: func(ctx context.Context, data []byte) (any, error) {
			var in serializers.PaymentSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if err := in.Validate(); err != nil {
				return nil, err
			}
			item := in.Model()
			if err := repo.CreatePayment(ctx, item); err != nil {
				return nil, err
			}
			return serializers.PaymentResponse(item), nil
		},
		Update: func(ctx context.Context, id uint, data []byte, partial bool) (any, error) {
			var in serializers.PaymentSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if !partial {
				if err := in.Validate(); err != nil {
					return nil, err
				}
			}
			item, err := repo.FindPaymentByID(ctx, id)
			if err != nil {
				return nil, err
			}
			in.Apply(item)
			if err := repo.SavePayment(ctx, item); err != nil {
				return nil, err
			}
			return serializers.PaymentResponse(item), nil
		},
		Delete: repo.DeletePayment,
	}
}

func voucherResource(repo repository.Repository) *Resource {
	return &Resource{
		Name: "voucher",
		List: func(ctx context.Context) (any, error) {
			items, err := repo.ListVouchers(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]serializers.VoucherSerializer, 0, len(items))
			for _, item := range items {
				out = append(out, serializers.VoucherResponse(item))
			}
			return out, nil
		},
		Get: func(ctx context.Context, id uint) (any, error) {
			item, err := repo.FindVoucherByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return serializers.VoucherResponse(item), nil
		},
		Create: func(ctx context.Context, data []byte) (any, error) {
			var in serializers.VoucherSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if err := in.Validate(); err != nil {
				return nil, err
			}
			item := in.Model()
			if err := repo.CreateVoucher(ctx, item); err != nil {
				return nil, err
			}
			return serializers.VoucherResponse(item), nil
		},
		Update: func(ctx context.Context, id uint, data []byte, partial bool) (any, error) {
			var in serializers.VoucherSerializer
			if err := decode(data, &in); err != nil {
				return nil, err
			}
			if partial {
				if err := in.ValidatePartial(); err != nil {
					return nil, err
				}
			} else if err := in.Validate(); err != nil {
				return nil, err
			}
			item, err := repo.FindVoucherByID(ctx, id)
			if err != nil {
				return nil, err
			}
			in.Apply(item)
			if err := repo.SaveVoucher(ctx, item); err != nil {
				return nil, err
			}
			return serializers.VoucherResponse(item), nil
		},
		Delete: repo.DeleteVoucher,
	}
}
