package settings

import (
	"time"
)

// WorkHours is the organization's nominal working window, for display on the
// pay summary. It does not constrain check-in times.
type WorkHours struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Timezone string `json:"timezone"`
}

// Settings is the process-wide system configuration: fetched once, cached,
// and reloaded only on an explicit refresh or after an admin update.
type Settings struct {
	AppName   string          `json:"app_name"`
	Modules   map[string]bool `json:"modules"`
	WorkHours WorkHours       `json:"work_hours"`
	PayPeriod string          `json:"pay_period"`
}

// Keys of the system_settings table.
const (
	KeyAppName   = "app_name"
	KeyModules   = "modules"
	KeyWorkHours = "work_hours"
	KeyPayPeriod = "pay_period"
)

// Defaults returns the settings used when a key has never been stored.
func Defaults() Settings {
	return Settings{
		AppName: "My City Radius",
		Modules: map[string]bool{
			"dashboard": true, "checkin": true, "attendance": true, "pay": true,
			"employees": true, "pay_rates": true, "admin_attendance": true, "payroll": true,
			"reports": true, "activity_log": true, "settings": true,
		},
		WorkHours: WorkHours{Start: "08:00", End: "17:00", Timezone: "America/Phoenix"},
		PayPeriod: "biweekly",
	}
}

type Row struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}
