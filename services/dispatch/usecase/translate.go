package usecase

import (
	"fmt"
	"time"

	"github.com/piresc/nebengjek-dispatch/internal/pkg/models"
	"github.com/spf13/cast"
)

// Store column names that differ from the model field names
const (
	colID              = "id"
	colCompanyID       = "company_id"
	colDriverID        = "driver_id"
	colCarTypeID       = "car_type_id"
	colPickupLocation  = "pickup_location"
	colDropoffLocation = "dropoff_location"
	colDriverFee       = "driver_fee"
	colClientName      = "client_name"
	colClientPhone     = "client_phone"
	colPaymentStatus   = "payment_status"
	colBookingID       = "booking_id"
	colTotalEarnings   = "total_earnings"
	colCreatedAt       = "created_at"
	colCompletedAt     = "completed_at"
)

// timestamp layouts seen from the REST API and the SQL drivers
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// decoder reads typed columns from a record and keeps the first failure
type decoder struct {
	row models.Record
	err error
}

func (d *decoder) value(key string) (interface{}, bool) {
	v, ok := d.row[key]
	if !ok || v == nil {
		return nil, false
	}
	if b, isBytes := v.([]byte); isBytes {
		return string(b), true
	}
	return v, true
}

func (d *decoder) fail(key string, err error) {
	if d.err == nil {
		d.err = fmt.Errorf("column %s: %w", key, err)
	}
}

func (d *decoder) str(key string) string {
	v, ok := d.value(key)
	if !ok {
		return ""
	}
	if t, isTime := v.(time.Time); isTime {
		return t.Format(models.DateLayout)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		d.fail(key, err)
	}
	return s
}

func (d *decoder) optStr(key string) *string {
	if _, ok := d.value(key); !ok {
		return nil
	}
	s := d.str(key)
	return &s
}

func (d *decoder) float(key string) float64 {
	v, ok := d.value(key)
	if !ok {
		return 0
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		d.fail(key, err)
	}
	return f
}

func (d *decoder) optFloat(key string) *float64 {
	if _, ok := d.value(key); !ok {
		return nil
	}
	f := d.float(key)
	return &f
}

func (d *decoder) int(key string) int {
	v, ok := d.value(key)
	if !ok {
		return 0
	}
	if f, isFloat := v.(float64); isFloat {
		return int(f)
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		d.fail(key, err)
	}
	return n
}

func (d *decoder) time(key string) time.Time {
	v, ok := d.value(key)
	if !ok {
		return time.Time{}
	}
	if s, isString := v.(string); isString {
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	}
	t, err := cast.ToTimeE(v)
	if err != nil {
		d.fail(key, err)
	}
	return t
}

func (d *decoder) optTime(key string) *time.Time {
	if _, ok := d.value(key); !ok {
		return nil
	}
	t := d.time(key)
	return &t
}

func withID(r models.Record, id string) models.Record {
	if id != "" {
		r[colID] = id
	}
	return r
}

func optional[T any](v *T) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func companyToRecord(c models.Company) models.Record {
	return withID(models.Record{
		"name":    c.Name,
		"address": c.Address,
		"phone":   c.Phone,
	}, c.ID)
}

func recordToCompany(r models.Record) (models.Company, error) {
	d := &decoder{row: r}
	c := models.Company{
		ID:      d.str(colID),
		Name:    d.str("name"),
		Address: d.str("address"),
		Phone:   d.str("phone"),
	}
	return c, d.err
}

func companyPatchToRecord(p models.CompanyPatch) models.Record {
	r := models.Record{}
	if p.Name != nil {
		r["name"] = *p.Name
	}
	if p.Address != nil {
		r["address"] = *p.Address
	}
	if p.Phone != nil {
		r["phone"] = *p.Phone
	}
	return r
}

func driverToRecord(dr models.Driver) models.Record {
	return withID(models.Record{
		"name":           dr.Name,
		"phone":          dr.Phone,
		"license":        dr.License,
		"status":         string(dr.Status),
		colTotalEarnings: optional(dr.TotalEarnings),
		"pin":            optional(dr.PIN),
	}, dr.ID)
}

func recordToDriver(r models.Record) (models.Driver, error) {
	d := &decoder{row: r}
	dr := models.Driver{
		ID:            d.str(colID),
		Name:          d.str("name"),
		Phone:         d.str("phone"),
		License:       d.str("license"),
		Status:        models.DriverStatus(d.str("status")),
		TotalEarnings: d.optFloat(colTotalEarnings),
		PIN:           d.optStr("pin"),
	}
	return dr, d.err
}

func driverPatchToRecord(p models.DriverPatch) models.Record {
	r := models.Record{}
	if p.Name != nil {
		r["name"] = *p.Name
	}
	if p.Phone != nil {
		r["phone"] = *p.Phone
	}
	if p.License != nil {
		r["license"] = *p.License
	}
	if p.Status != nil {
		r["status"] = string(*p.Status)
	}
	if p.TotalEarnings != nil {
		r[colTotalEarnings] = *p.TotalEarnings
	}
	if p.PIN != nil {
		r["pin"] = *p.PIN
	}
	return r
}

func carTypeToRecord(ct models.CarType) models.Record {
	return withID(models.Record{
		"name":        ct.Name,
		"passengers":  ct.Passengers,
		"luggage":     ct.Luggage,
		"description": ct.Description,
	}, ct.ID)
}

func recordToCarType(r models.Record) (models.CarType, error) {
	d := &decoder{row: r}
	ct := models.CarType{
		ID:          d.str(colID),
		Name:        d.str("name"),
		Passengers:  d.int("passengers"),
		Luggage:     d.int("luggage"),
		Description: d.str("description"),
	}
	return ct, d.err
}

func carTypePatchToRecord(p models.CarTypePatch) models.Record {
	r := models.Record{}
	if p.Name != nil {
		r["name"] = *p.Name
	}
	if p.Passengers != nil {
		r["passengers"] = *p.Passengers
	}
	if p.Luggage != nil {
		r["luggage"] = *p.Luggage
	}
	if p.Description != nil {
		r["description"] = *p.Description
	}
	return r
}

func projectToRecord(p models.Project) models.Record {
	return withID(models.Record{
		colCompanyID:       p.Company,
		"status":           string(p.Status),
		"description":      p.Description,
		colDriverID:        p.Driver,
		"date":             p.Date,
		"time":             p.Time,
		"passengers":       p.Passengers,
		colPickupLocation:  p.PickupLocation,
		colDropoffLocation: p.DropoffLocation,
		colCarTypeID:       p.CarType,
		"price":            p.Price,
		colDriverFee:       optional(p.DriverFee),
		colClientName:      p.ClientName,
		colClientPhone:     p.ClientPhone,
		colPaymentStatus:   string(p.PaymentStatus),
		colBookingID:       p.BookingID,
	}, p.ID)
}

func recordToProject(r models.Record) (models.Project, error) {
	d := &decoder{row: r}
	p := models.Project{
		ID:              d.str(colID),
		Company:         d.str(colCompanyID),
		Status:          models.ProjectStatus(d.str("status")),
		Description:     d.str("description"),
		Driver:          d.str(colDriverID),
		Date:            d.str("date"),
		Time:            d.str("time"),
		Passengers:      d.int("passengers"),
		PickupLocation:  d.str(colPickupLocation),
		DropoffLocation: d.str(colDropoffLocation),
		CarType:         d.str(colCarTypeID),
		Price:           d.float("price"),
		DriverFee:       d.optFloat(colDriverFee),
		ClientName:      d.str(colClientName),
		ClientPhone:     d.str(colClientPhone),
		PaymentStatus:   models.ProjectPaymentStatus(d.str(colPaymentStatus)),
		BookingID:       d.str(colBookingID),
	}
	return p, d.err
}

func projectPatchToRecord(p models.ProjectPatch) models.Record {
	r := models.Record{}
	if p.Company != nil {
		r[colCompanyID] = *p.Company
	}
	if p.Status != nil {
		r["status"] = string(*p.Status)
	}
	if p.Description != nil {
		r["description"] = *p.Description
	}
	if p.Driver != nil {
		r[colDriverID] = *p.Driver
	}
	if p.Date != nil {
		r["date"] = *p.Date
	}
	if p.Time != nil {
		r["time"] = *p.Time
	}
	if p.Passengers != nil {
		r["passengers"] = *p.Passengers
	}
	if p.PickupLocation != nil {
		r[colPickupLocation] = *p.PickupLocation
	}
	if p.DropoffLocation != nil {
		r[colDropoffLocation] = *p.DropoffLocation
	}
	if p.CarType != nil {
		r[colCarTypeID] = *p.CarType
	}
	if p.Price != nil {
		r["price"] = *p.Price
	}
	if p.DriverFee != nil {
		r[colDriverFee] = *p.DriverFee
	}
	if p.ClientName != nil {
		r[colClientName] = *p.ClientName
	}
	if p.ClientPhone != nil {
		r[colClientPhone] = *p.ClientPhone
	}
	if p.PaymentStatus != nil {
		r[colPaymentStatus] = string(*p.PaymentStatus)
	}
	return r
}

func paymentToRecord(p models.Payment) models.Record {
	return withID(models.Record{
		colDriverID:    p.DriverID,
		"amount":       p.Amount,
		"date":         p.Date,
		"status":       string(p.Status),
		"description":  p.Description,
		colCreatedAt:   p.CreatedAt,
		colCompletedAt: optional(p.CompletedAt),
	}, p.ID)
}

func recordToPayment(r models.Record) (models.Payment, error) {
	d := &decoder{row: r}
	p := models.Payment{
		ID:          d.str(colID),
		DriverID:    d.str(colDriverID),
		Amount:      d.float("amount"),
		Date:        d.str("date"),
		Status:      models.PaymentStatus(d.str("status")),
		Description: d.str("description"),
		CreatedAt:   d.time(colCreatedAt),
		CompletedAt: d.optTime(colCompletedAt),
	}
	return p, d.err
}

func paymentPatchToRecord(p models.PaymentPatch) models.Record {
	r := models.Record{}
	if p.DriverID != nil {
		r[colDriverID] = *p.DriverID
	}
	if p.Amount != nil {
		r["amount"] = *p.Amount
	}
	if p.Date != nil {
		r["date"] = *p.Date
	}
	if p.Status != nil {
		r["status"] = string(*p.Status)
	}
	if p.Description != nil {
		r["description"] = *p.Description
	}
	if p.CompletedAt != nil {
		r[colCompletedAt] = *p.CompletedAt
	}
	return r
}
