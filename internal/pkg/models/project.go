package models

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"
)

// ProjectStatus represents the lifecycle state of a ride booking
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// Valid reports whether s is a known project status
func (s ProjectStatus) Valid() bool {
	return s == ProjectStatusActive || s == ProjectStatusCompleted
}

// ProjectPaymentStatus tells whether the client already paid for the ride
type ProjectPaymentStatus string

const (
	ProjectPaymentPaid   ProjectPaymentStatus = "paid"
	ProjectPaymentCharge ProjectPaymentStatus = "charge"
)

// Valid reports whether s is a known project payment status
func (s ProjectPaymentStatus) Valid() bool {
	return s == ProjectPaymentPaid || s == ProjectPaymentCharge
}

const (
	// NotSpecified marks an optional reference the user left empty
	NotSpecified = "not_specified"

	// DateLayout is the calendar date format of Project.Date
	DateLayout = "2006-01-02"
	// TimeLayout is the wall-clock format of Project.Time
	TimeLayout = "15:04"

	maxBookingID = 1_000_000_000
)

// Project is a single ride booking
type Project struct {
	ID              string               `json:"id"`
	Company         string               `json:"company"`
	Status          ProjectStatus        `json:"status"`
	Description     string               `json:"description"`
	Driver          string               `json:"driver"`
	Date            string               `json:"date"`
	Time            string               `json:"time"`
	Passengers      int                  `json:"passengers"`
	PickupLocation  string               `json:"pickupLocation"`
	DropoffLocation string               `json:"dropoffLocation"`
	CarType         string               `json:"carType"`
	Price           float64              `json:"price"`
	DriverFee       *float64             `json:"driverFee,omitempty"`
	ClientName      string               `json:"clientName"`
	ClientPhone     string               `json:"clientPhone"`
	PaymentStatus   ProjectPaymentStatus `json:"paymentStatus"`
	BookingID       string               `json:"bookingId,omitempty"`
}

// ScheduledAt combines the project's date and time in loc
func (p Project) ScheduledAt(loc *time.Location) (time.Time, error) {
	return ParseSchedule(p.Date, p.Time, loc)
}

// ParseSchedule parses a calendar date and a wall-clock time in loc.
// Seconds are accepted since SQL time columns render them.
func ParseSchedule(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range []string{TimeLayout, "15:04:05"} {
		t, err := time.ParseInLocation(DateLayout+" "+layout, date+" "+clock, loc)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid schedule %q %q", date, clock)
}

// DriverAmount is the amount shown to the driver: the driver fee when set
// and positive, otherwise the full price.
func DriverAmount(p Project) float64 {
	if p.DriverFee != nil && *p.DriverFee > 0 {
		return *p.DriverFee
	}
	return p.Price
}

// NewBookingID returns a random numeric booking reference of at most 9 digits
func NewBookingID() string {
	return strconv.Itoa(rand.IntN(maxBookingID))
}

// ProjectPatch carries the fields of a partial project update.
// The booking id is not patchable.
type ProjectPatch struct {
	Company         *string               `json:"company,omitempty"`
	Status          *ProjectStatus        `json:"status,omitempty"`
	Description     *string               `json:"description,omitempty"`
	Driver          *string               `json:"driver,omitempty"`
	Date            *string               `json:"date,omitempty"`
	Time            *string               `json:"time,omitempty"`
	Passengers      *int                  `json:"passengers,omitempty"`
	PickupLocation  *string               `json:"pickupLocation,omitempty"`
	DropoffLocation *string               `json:"dropoffLocation,omitempty"`
	CarType         *string               `json:"carType,omitempty"`
	Price           *float64              `json:"price,omitempty"`
	DriverFee       *float64              `json:"driverFee,omitempty"`
	ClientName      *string               `json:"clientName,omitempty"`
	ClientPhone     *string               `json:"clientPhone,omitempty"`
	PaymentStatus   *ProjectPaymentStatus `json:"paymentStatus,omitempty"`
}

// Completes reports whether the patch moves the project to completed
func (p ProjectPatch) Completes() bool {
	return p.Status != nil && *p.Status == ProjectStatusCompleted
}

// Apply returns pr with the patched fields overwritten
func (p ProjectPatch) Apply(pr Project) Project {
	if p.Company != nil {
		pr.Company = *p.Company
	}
	if p.Status != nil {
		pr.Status = *p.Status
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.Driver != nil {
		pr.Driver = *p.Driver
	}
	if p.Date != nil {
		pr.Date = *p.Date
	}
	if p.Time != nil {
		pr.Time = *p.Time
	}
	if p.Passengers != nil {
		pr.Passengers = *p.Passengers
	}
	if p.PickupLocation != nil {
		pr.PickupLocation = *p.PickupLocation
	}
	if p.DropoffLocation != nil {
		pr.DropoffLocation = *p.DropoffLocation
	}
	if p.CarType != nil {
		pr.CarType = *p.CarType
	}
	if p.Price != nil {
		pr.Price = *p.Price
	}
	if p.DriverFee != nil {
		v := *p.DriverFee
		pr.DriverFee = &v
	}
	if p.ClientName != nil {
		pr.ClientName = *p.ClientName
	}
	if p.ClientPhone != nil {
		pr.ClientPhone = *p.ClientPhone
	}
	if p.PaymentStatus != nil {
		pr.PaymentStatus = *p.PaymentStatus
	}
	return pr
}

// ProjectView is a project with its references resolved for display
type ProjectView struct {
	Project
	CompanyName  string  `json:"companyName"`
	DriverName   string  `json:"driverName"`
	CarTypeName  string  `json:"carTypeName"`
	DriverAmount float64 `json:"driverAmount"`
}

// Display fallbacks for references that no longer resolve
const (
	UnknownName  = "Unknown"
	StandardName = "Standard"
)

// ResolveProjectViews resolves company, driver and car type names of projects.
// Dangling references fall back to Unknown, or Standard for car types.
func ResolveProjectViews(projects []Project, companies []Company, drivers []Driver, carTypes []CarType) []ProjectView {
	companyNames := make(map[string]string, len(companies))
	for _, c := range companies {
		companyNames[c.ID] = c.Name
	}
	driverNames := make(map[string]string, len(drivers))
	for _, d := range drivers {
		driverNames[d.ID] = d.Name
	}
	carTypeNames := make(map[string]string, len(carTypes))
	for _, ct := range carTypes {
		carTypeNames[ct.ID] = ct.Name
	}

	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		v := ProjectView{
			Project:      p,
			CompanyName:  UnknownName,
			DriverName:   UnknownName,
			CarTypeName:  StandardName,
			DriverAmount: DriverAmount(p),
		}
		if name, ok := companyNames[p.Company]; ok {
			v.CompanyName = name
		}
		if name, ok := driverNames[p.Driver]; ok {
			v.DriverName = name
		}
		if name, ok := carTypeNames[p.CarType]; ok {
			v.CarTypeName = name
		}
		views = append(views, v)
	}
	return views
}
