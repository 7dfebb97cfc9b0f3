package dto

// Active filter values: "" or "true" = active only, "false" = inactive only, "all" = both.
const (
	ActiveOnly   = "true"
	InactiveOnly = "false"
	ActiveAll    = "all"
)

type ActiveFilter struct {
	Active string `form:"active" validate:"omitempty,oneof=true false all"`
}

type LocationFilter struct {
	VendorID uint   `form:"vendor_id"`
	Active   string `form:"active" validate:"omitempty,oneof=true false all"`
}

// DependentFilter lists VendorProducts or FreightRoutes.
type DependentFilter struct {
	VendorLocationID uint   `form:"vendor_location_id"`
	Active           string `form:"active" validate:"omitempty,oneof=true false all"`
}

type WorkdayFilter struct {
	DriverID uint   `form:"driver_id"`
	From     string `form:"from" validate:"omitempty,datetime=2006-01-02"`
	To       string `form:"to"   validate:"omitempty,datetime=2006-01-02"`
}

type HaulFilter struct {
	WorkdayID uint `form:"workday_id"`
}

type ContactFilter struct {
	VendorID uint `form:"vendor_id"`
}
