package models

// Identity roles embedded in access tokens.
const (
	RoleOwner    = "owner"
	RoleCustomer = "customer"
)

// Owner/Customer account statuses.
const (
	IdentityStatusActive   = "active"
	IdentityStatusInactive = "inactive"
)

// Customer types.
const (
	CustomerTypeGuest    = "guest"
	CustomerTypeCustomer = "customer"
)

// Property lifecycle statuses. PropertyStatusDelete is a soft-delete marker:
// the row stays, but it is terminal — no transition leads out of it.
const (
	PropertyStatusActive   = "active"
	PropertyStatusInactive = "inactive"
	PropertyStatusDelete   = "delete"
)

// Listing types.
const (
	ListingTypeSale = "sale"
	ListingTypeRent = "rent"
)

// Fixed enumerations served by the static-data endpoint and used for
// request validation.
var (
	TopCities = []string{
		"Mumbai",
		"Delhi",
		"Bengaluru",
		"Hyderabad",
		"Chennai",
		"Kolkata",
		"Pune",
		"Ahmedabad",
		"Surat",
		"Jaipur",
	}

	PropertyTypes = []string{
		"apartment",
		"pg",
		"plots",
		"flats",
		"house",
	}

	ListingTypes = []string{ListingTypeSale, ListingTypeRent}

	PropertyStatuses = []string{PropertyStatusActive, PropertyStatusInactive, PropertyStatusDelete}
)
