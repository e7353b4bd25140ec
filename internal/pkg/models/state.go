package models

// Record is a single row as seen by the remote store, keyed by column name
type Record map[string]interface{}

// Table names of the remote store
const (
	TableCompanies = "companies"
	TableDrivers   = "drivers"
	TableCarTypes  = "car_types"
	TableProjects  = "projects"
	TablePayments  = "payments"
)

// ProviderState is the observable status of a data provider
type ProviderState struct {
	UserID  string `json:"user_id,omitempty"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
	Loaded  bool   `json:"loaded"`
	// Revision increases on every change to the held collections
	Revision uint64 `json:"revision"`
}

// Snapshot is a read-only copy of everything a data provider holds
type Snapshot struct {
	ProviderState
	Companies []Company `json:"companies"`
	Drivers   []Driver  `json:"drivers"`
	CarTypes  []CarType `json:"car_types"`
	Projects  []Project `json:"projects"`
	Payments  []Payment `json:"payments"`
}

// Summary aggregates a snapshot for the revenue dashboard
type Summary struct {
	ActiveProjects    int     `json:"active_projects"`
	CompletedProjects int     `json:"completed_projects"`
	TotalRevenue      float64 `json:"total_revenue"`
	PaidRevenue       float64 `json:"paid_revenue"`
	ChargeRevenue     float64 `json:"charge_revenue"`
	PendingPayouts    float64 `json:"pending_payouts"`
	PaidPayouts       float64 `json:"paid_payouts"`
	DriverEarnings    float64 `json:"driver_earnings"`
}

// Summarize computes the dashboard totals of s
func Summarize(s Snapshot) Summary {
	var sum Summary
	for _, p := range s.Projects {
		switch p.Status {
		case ProjectStatusActive:
			sum.ActiveProjects++
		case ProjectStatusCompleted:
			sum.CompletedProjects++
		}
		sum.TotalRevenue += p.Price
		if p.PaymentStatus == ProjectPaymentPaid {
			sum.PaidRevenue += p.Price
		} else {
			sum.ChargeRevenue += p.Price
		}
	}
	for _, pm := range s.Payments {
		if pm.Status == PaymentStatusPaid {
			sum.PaidPayouts += pm.Amount
		} else {
			sum.PendingPayouts += pm.Amount
		}
	}
	for _, d := range s.Drivers {
		sum.DriverEarnings += d.Earnings()
	}
	return sum
}
