package models

// Company is a client company that books rides
type Company struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// CompanyPatch carries the fields of a partial company update
type CompanyPatch struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// Apply returns c with the patched fields overwritten
func (p CompanyPatch) Apply(c Company) Company {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	return c
}

// CarType is a vehicle class offered for rides
type CarType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Passengers  int    `json:"passengers"`
	Luggage     int    `json:"luggage"`
	Description string `json:"description"`
}

// CarTypePatch carries the fields of a partial car type update
type CarTypePatch struct {
	Name        *string `json:"name,omitempty"`
	Passengers  *int    `json:"passengers,omitempty"`
	Luggage     *int    `json:"luggage,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Apply returns ct with the patched fields overwritten
func (p CarTypePatch) Apply(ct CarType) CarType {
	if p.Name != nil {
		ct.Name = *p.Name
	}
	if p.Passengers != nil {
		ct.Passengers = *p.Passengers
	}
	if p.Luggage != nil {
		ct.Luggage = *p.Luggage
	}
	if p.Description != nil {
		ct.Description = *p.Description
	}
	return ct
}
