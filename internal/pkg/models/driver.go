package models

// DriverStatus represents the availability of a driver
type DriverStatus string

const (
	DriverStatusAvailable DriverStatus = "available"
	DriverStatusBusy      DriverStatus = "busy"
	DriverStatusOffline   DriverStatus = "offline"
)

// DefaultDriverPIN is used when a driver has no PIN of their own
const DefaultDriverPIN = "1234"

// Valid reports whether s is a known driver status
func (s DriverStatus) Valid() bool {
	switch s {
	case DriverStatusAvailable, DriverStatusBusy, DriverStatusOffline:
		return true
	}
	return false
}

// Driver represents a driver; License doubles as the driver's login identifier
type Driver struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Phone         string       `json:"phone"`
	License       string       `json:"license"`
	Status        DriverStatus `json:"status"`
	TotalEarnings *float64     `json:"total_earnings,omitempty"`
	PIN           *string      `json:"pin,omitempty"`
}

// ResolvePIN returns the driver's PIN or the fallback PIN when none is set
func ResolvePIN(d Driver) string {
	if d.PIN == nil || *d.PIN == "" {
		return DefaultDriverPIN
	}
	return *d.PIN
}

// Earnings returns the cached total earnings, zero when unknown
func (d Driver) Earnings() float64 {
	if d.TotalEarnings == nil {
		return 0
	}
	return *d.TotalEarnings
}

// DriverPatch carries the fields of a partial driver update
type DriverPatch struct {
	Name          *string       `json:"name,omitempty"`
	Phone         *string       `json:"phone,omitempty"`
	License       *string       `json:"license,omitempty"`
	Status        *DriverStatus `json:"status,omitempty"`
	TotalEarnings *float64      `json:"total_earnings,omitempty"`
	PIN           *string       `json:"pin,omitempty"`
}

// Apply returns d with the patched fields overwritten
func (p DriverPatch) Apply(d Driver) Driver {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Phone != nil {
		d.Phone = *p.Phone
	}
	if p.License != nil {
		d.License = *p.License
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.TotalEarnings != nil {
		v := *p.TotalEarnings
		d.TotalEarnings = &v
	}
	if p.PIN != nil {
		v := *p.PIN
		d.PIN = &v
	}
	return d
}
