package directory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/medqueue/hospital-api/pkg/errors"
)

func TestHospitalsListing(t *testing.T) {
	svc := NewService()

	hs := svc.Hospitals()
	require.Len(t, hs, 2)
	assert.Equal(t, "City Hospital", hs[0].Name)
	assert.Equal(t, "Green Valley Clinic", hs[1].Name)

	for _, h := range hs {
		require.NotEmpty(t, h.Departments)
		for _, d := range h.Departments {
			assert.NotEmpty(t, d.Doctors, "department %s has no doctors", d.Name)
		}
	}
}

func TestHasDoctor(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name       string
		hospital   string
		department string
		doctor     string
		want       bool
	}{
		{"known triple", "City Hospital", "Cardiology", "Dr. A. Sharma", true},
		{"doctor in other department", "City Hospital", "Neurology", "Dr. A. Sharma", false},
		{"doctor in other hospital", "Green Valley Clinic", "Cardiology", "Dr. A. Sharma", false},
		{"unknown hospital", "Sunrise Medical Center", "Oncology", "Dr. A. Sharma", false},
		{"unknown doctor", "City Hospital", "Cardiology", "Dr. Nobody", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.HasDoctor(tt.hospital, tt.department, tt.doctor))
		})
	}
}

func TestFees(t *testing.T) {
	svc := NewService()

	fees, err := svc.Fees("City Hospital")
	require.NoError(t, err)
	assert.Equal(t, "City Hospital", fees.Hospital)
	assert.Equal(t, "₹500", fees.Departments["Cardiology"]["Consultation"])

	// The fee sheet covers hospitals the booking directory does not.
	_, err = svc.Fees("Sunrise Medical Center")
	assert.NoError(t, err)

	_, err = svc.Fees("No Such Hospital")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestShops(t *testing.T) {
	svc := NewService()

	shops := svc.Shops()
	require.Len(t, shops, 4)
	assert.Equal(t, "HealthPlus Pharmacy", shops[0].Name)
	assert.InDelta(t, 2.1, shops[0].DistanceKM, 0.001)
}

func TestSlotsCoverSevenDays(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

	slots := slotsFrom(start)
	require.Len(t, slots, 7)

	assert.Equal(t, "2026-03-01", slots[0].Date)
	assert.Equal(t, "2026-03-07", slots[6].Date)
	for _, day := range slots {
		assert.Equal(t, []string{"09:00 AM", "01:00 PM", "05:00 PM"}, day.Times)
	}
}
