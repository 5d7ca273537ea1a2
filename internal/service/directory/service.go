// Package directory serves the static hospital, fee and pharmacy
// listings. The data is constant configuration, not derived from the
// store; booking requests are validated against it.
package directory

import (
	"time"

	"github.com/medqueue/hospital-api/internal/model"
	apperrors "github.com/medqueue/hospital-api/pkg/errors"
)

var hospitals = []model.Hospital{
	{
		Name: "City Hospital",
		Departments: []model.Department{
			{
				Name: "Cardiology",
				Doctors: []model.Doctor{
					{Name: "Dr. A. Sharma", Rating: 4.8, Qualification: "MD, DM (Cardiology)", Experience: "15 years"},
					{Name: "Dr. B. Verma", Rating: 4.6, Qualification: "MD, DNB (Cardiology)", Experience: "10 years"},
				},
			},
			{
				Name: "Neurology",
				Doctors: []model.Doctor{
					{Name: "Dr. C. Mehta", Rating: 4.7, Qualification: "MD, DM (Neurology)", Experience: "12 years"},
					{Name: "Dr. D. Nair", Rating: 4.5, Qualification: "MD, DNB (Neurology)", Experience: "9 years"},
				},
			},
		},
	},
	{
		Name: "Green Valley Clinic",
		Departments: []model.Department{
			{
				Name: "Orthopedics",
				Doctors: []model.Doctor{
					{Name: "Dr. E. Singh", Rating: 4.9, Qualification: "MS (Ortho), DNB (Ortho)", Experience: "18 years"},
					{Name: "Dr. F. Gupta", Rating: 4.6, Qualification: "MS (Ortho)", Experience: "11 years"},
				},
			},
			{
				Name: "Dermatology",
				Doctors: []model.Doctor{
					{Name: "Dr. O. Roy", Rating: 4.8, Qualification: "MD (Dermatology)", Experience: "11 years"},
					{Name: "Dr. P. Shah", Rating: 4.5, Qualification: "DDVL, MD (Dermatology)", Experience: "7 years"},
				},
			},
		},
	},
}

var feeTables = map[string]map[string]map[string]string{
	"City Hospital": {
		"Cardiology": {"Consultation": "₹500", "ECG": "₹1200"},
		"Neurology":  {"Consultation": "₹600", "MRI": "₹3000"},
		"Pediatrics": {"Consultation": "₹400"},
	},
	"Green Valley Clinic": {
		"Orthopedics": {"Consultation": "₹450", "X-Ray": "₹800"},
		"Dermatology": {"Consultation": "₹350"},
		"Radiology":   {"CT Scan": "₹2500"},
	},
	"Sunrise Medical Center": {
		"Oncology":  {"Consultation": "₹700", "Chemotherapy": "₹5000"},
		"Emergency": {"Emergency Care": "₹1000"},
		"Radiology": {"MRI": "₹3200"},
	},
}

var medicalShops = []model.MedicalShop{
	{Name: "HealthPlus Pharmacy", DistanceKM: 2.1},
	{Name: "CityCare Medicals", DistanceKM: 3.5},
	{Name: "Wellness Drugstore", DistanceKM: 1.8},
	{Name: "MediQuick", DistanceKM: 4.0},
}

// slotTimes are the fixed bookable times per day.
var slotTimes = []string{"09:00 AM", "01:00 PM", "05:00 PM"}

const slotDays = 7

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Hospitals returns the full booking directory.
func (s *Service) Hospitals() []model.Hospital {
	return hospitals
}

// HasDoctor reports whether the (hospital, department, doctor) triple
// exists in the directory. Doctors are identified by display name.
func (s *Service) HasDoctor(hospital, department, doctor string) bool {
	for _, h := range hospitals {
		if h.Name != hospital {
			continue
		}
		for _, d := range h.Departments {
			if d.Name != department {
				continue
			}
			for _, doc := range d.Doctors {
				if doc.Name == doctor {
					return true
				}
			}
		}
	}
	return false
}

// Fees returns the tariff sheet for one hospital.
func (s *Service) Fees(hospital string) (*model.FeeTable, error) {
	departments, ok := feeTables[hospital]
	if !ok {
		return nil, apperrors.NotFound("hospital", nil)
	}
	return &model.FeeTable{Hospital: hospital, Departments: departments}, nil
}

// Shops lists nearby pharmacies.
func (s *Service) Shops() []model.MedicalShop {
	return medicalShops
}

// Slots lists the bookable times for the next seven days starting
// today.
func (s *Service) Slots() []model.DaySlots {
	return slotsFrom(time.Now())
}

func slotsFrom(start time.Time) []model.DaySlots {
	slots := make([]model.DaySlots, 0, slotDays)
	for i := 0; i < slotDays; i++ {
		day := start.AddDate(0, 0, i)
		slots = append(slots, model.DaySlots{
			Date:  day.Format("2006-01-02"),
			Times: slotTimes,
		})
	}
	return slots
}
