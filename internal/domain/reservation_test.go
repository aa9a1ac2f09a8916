package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/creekriver/campground/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReservation_Nights(t *testing.T) {
	r := domain.Reservation{
		Checkin:  date(2024, time.July, 1),
		Checkout: date(2024, time.July, 4),
	}
	assert.Equal(t, 3, r.Nights())

	r.Checkout = date(2024, time.July, 2)
	assert.Equal(t, 1, r.Nights())
}

// Half-open semantics: [checkin, checkout) — the checkout day itself is free,
// so back-to-back stays on the same campsite are allowed.
func TestReservation_Overlaps(t *testing.T) {
	r := domain.Reservation{
		Checkin:  date(2024, time.July, 1),
		Checkout: date(2024, time.July, 4),
	}

	tests := []struct {
		name     string
		checkin  time.Time
		checkout time.Time
		want     bool
	}{
		{"inside", date(2024, time.July, 2), date(2024, time.July, 3), true},
		{"straddles start", date(2024, time.June, 30), date(2024, time.July, 2), true},
		{"straddles end", date(2024, time.July, 3), date(2024, time.July, 5), true},
		{"covers", date(2024, time.June, 30), date(2024, time.July, 5), true},
		{"identical", date(2024, time.July, 1), date(2024, time.July, 4), true},
		{"before", date(2024, time.June, 25), date(2024, time.June, 30), false},
		{"after", date(2024, time.July, 10), date(2024, time.July, 12), false},
		{"back-to-back after", date(2024, time.July, 4), date(2024, time.July, 6), false},
		{"back-to-back before", date(2024, time.June, 28), date(2024, time.July, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Overlaps(tt.checkin, tt.checkout))
		})
	}
}

func TestCampsiteType_Validate(t *testing.T) {
	valid := domain.CampsiteType{Name: "Tent", FeePerNight: 1599, MaxReservationDays: 7}
	assert.NoError(t, valid.Validate())

	noFee := valid
	noFee.FeePerNight = 0
	assert.ErrorIs(t, noFee.Validate(), domain.ErrValidation)

	noDays := valid
	noDays.MaxReservationDays = 0
	assert.ErrorIs(t, noDays.Validate(), domain.ErrValidation)

	noName := valid
	noName.Name = ""
	assert.ErrorIs(t, noName.Validate(), domain.ErrValidation)
}

func TestCampsite_Validate(t *testing.T) {
	valid := domain.Campsite{CampsiteTypeID: [16]byte{1}, Nickname: "Barred Owl"}
	assert.NoError(t, valid.Validate())

	blank := valid
	blank.Nickname = "   "
	assert.ErrorIs(t, blank.Validate(), domain.ErrValidation)

	noType := valid
	noType.CampsiteTypeID = [16]byte{}
	assert.ErrorIs(t, noType.Validate(), domain.ErrValidation)
}
