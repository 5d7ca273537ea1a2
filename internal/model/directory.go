package model

// Doctor describes an entry in the static hospital directory.
type Doctor struct {
	Name          string  `json:"name"`
	Rating        float64 `json:"rating"`
	Qualification string  `json:"qualification"`
	Experience    string  `json:"experience"`
}

// Department groups the doctors available under one specialty.
type Department struct {
	Name    string   `json:"name"`
	Doctors []Doctor `json:"doctors"`
}

// Hospital is one site in the booking directory.
type Hospital struct {
	Name        string       `json:"name"`
	Departments []Department `json:"departments"`
}

// FeeTable lists service fees per department for one hospital.
// Fees are display strings, taken verbatim from the tariff sheet.
type FeeTable struct {
	Hospital    string                       `json:"hospital"`
	Departments map[string]map[string]string `json:"departments"`
}

// MedicalShop is a nearby pharmacy with its distance from the hospital.
type MedicalShop struct {
	Name       string  `json:"name"`
	DistanceKM float64 `json:"distance_km"`
}

// DaySlots lists the bookable times for one calendar day.
type DaySlots struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}
