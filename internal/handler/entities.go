package handler

import (
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/service"
)

type (
	VendorsHandler         = CRUDHandler[dto.CreateVendorRequest, dto.UpdateVendorRequest, dto.ActiveFilter, dto.VendorResponse]
	VendorLocationsHandler = CRUDHandler[dto.CreateVendorLocationRequest, dto.UpdateVendorLocationRequest, dto.LocationFilter, dto.VendorLocationResponse]
	VendorProductsHandler  = CRUDHandler[dto.CreateVendorProductRequest, dto.UpdateVendorProductRequest, dto.DependentFilter, dto.VendorProductResponse]
	FreightRoutesHandler   = CRUDHandler[dto.CreateFreightRouteRequest, dto.UpdateFreightRouteRequest, dto.DependentFilter, dto.FreightRouteResponse]
	DriversHandler         = CRUDHandler[dto.CreateDriverRequest, dto.UpdateDriverRequest, dto.ActiveFilter, dto.DriverResponse]
	WorkdaysHandler        = CRUDHandler[dto.CreateWorkdayRequest, dto.UpdateWorkdayRequest, dto.WorkdayFilter, dto.WorkdayResponse]
	HaulsHandler           = CRUDHandler[dto.CreateHaulRequest, dto.UpdateHaulRequest, dto.HaulFilter, dto.HaulResponse]
	NoticesHandler         = CRUDHandler[dto.CreateNoticeRequest, dto.UpdateNoticeRequest, dto.ActiveFilter, dto.NoticeResponse]
	ContactsHandler        = CRUDHandler[dto.CreateContactRequest, dto.UpdateContactRequest, dto.ContactFilter, dto.ContactResponse]
)

func NewVendorsHandler(svc service.VendorService) *VendorsHandler {
	return &VendorsHandler{svc: svc}
}

func NewVendorLocationsHandler(svc service.VendorLocationService) *VendorLocationsHandler {
	return &VendorLocationsHandler{svc: svc}
}

func NewVendorProductsHandler(svc service.VendorProductService) *VendorProductsHandler {
	return &VendorProductsHandler{svc: svc}
}

func NewFreightRoutesHandler(svc service.FreightRouteService) *FreightRoutesHandler {
	return &FreightRoutesHandler{svc: svc}
}

func NewDriversHandler(svc service.DriverService) *DriversHandler {
	return &DriversHandler{svc: svc}
}

func NewWorkdaysHandler(svc service.WorkdayService) *WorkdaysHandler {
	return &WorkdaysHandler{svc: svc}
}

func NewHaulsHandler(svc service.HaulService) *HaulsHandler {
	return &HaulsHandler{svc: svc}
}

func NewNoticesHandler(svc service.NoticeService) *NoticesHandler {
	return &NoticesHandler{svc: svc}
}

func NewContactsHandler(svc service.ContactService) *ContactsHandler {
	return &ContactsHandler{svc: svc}
}
