// Package seed loads the campground's reference data into an empty database.
// It replaces the hard-coded fixture rows the park previously shipped with:
// the same types, sites, and the sample booking, inserted through the normal
// repo layer so every row passes the same validation as live traffic.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/creekriver/campground/internal/domain"
	"github.com/creekriver/campground/internal/repo"
)

// campsiteTypes is the reference pricing table. Fees are decimal strings to
// keep the source of truth readable; they parse into cents at load time.
var campsiteTypes = []struct {
	name    string
	fee     string
	maxDays int
}{
	{"Tent", "15.99", 7},
	{"RV", "26.50", 14},
	{"Primitive", "10.00", 3},
	{"Cabins", "12.00", 7},
}

// campsites maps each seeded site to its type by name.
var campsites = []struct {
	typeName string
	nickname string
	imageURL string
}{
	{"Tent", "Barred Owl", "https://tnstateparks.com/assets/images/content-images/campgrounds/249/colsp-area2-site73.jpg"},
	{"RV", "Chickasaw", "https://tnstateparks.com/assets/images/hero-images/chickasaw.jpg"},
	{"Primitive", "Fall Creek Falls", "https://tnstateparks.com/assets/images/hero-images/fall-creek-falls.jpg"},
	{"Cabins", "Natchez Trace", "https://tnstateparks.com/assets/images/content-images/campgrounds/5030/natchez-trace_camping-cabin3__lazy_xs.jpg"},
	{"Tent", "Bledsoe Creek", "https://tnstateparks.com/assets/images/content-images/campgrounds/248/bc-camping__lazy_xs.jpg"},
}

// Run seeds the reference data once. It is idempotent: when campsite types
// already exist the whole routine is skipped, so restarting the server never
// duplicates rows.
func Run(
	ctx context.Context,
	types repo.CampsiteTypeRepo,
	sites repo.CampsiteRepo,
	users repo.UserProfileRepo,
	reservations repo.ReservationRepo,
) error {
	existing, err := types.List(ctx)
	if err != nil {
		return fmt.Errorf("seed.Run: check existing types: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("seed skipped, reference data already present", "campsite_types", len(existing))
		return nil
	}

	typeByName := make(map[string]domain.CampsiteType, len(campsiteTypes))
	for _, ct := range campsiteTypes {
		fee, err := domain.ParseCents(ct.fee)
		if err != nil {
			return fmt.Errorf("seed.Run: fee for %s: %w", ct.name, err)
		}
		t := domain.CampsiteType{Name: ct.name, FeePerNight: fee, MaxReservationDays: ct.maxDays}
		if err := t.Validate(); err != nil {
			return fmt.Errorf("seed.Run: type %s: %w", ct.name, err)
		}
		created, err := types.Create(ctx, t)
		if err != nil {
			return fmt.Errorf("seed.Run: create type %s: %w", ct.name, err)
		}
		typeByName[ct.name] = created
	}

	siteByNickname := make(map[string]domain.Campsite, len(campsites))
	for _, cs := range campsites {
		site := domain.Campsite{
			CampsiteTypeID: typeByName[cs.typeName].ID,
			Nickname:       cs.nickname,
			ImageURL:       cs.imageURL,
		}
		if err := site.Validate(); err != nil {
			return fmt.Errorf("seed.Run: campsite %s: %w", cs.nickname, err)
		}
		created, err := sites.Create(ctx, site)
		if err != nil {
			return fmt.Errorf("seed.Run: create campsite %s: %w", cs.nickname, err)
		}
		siteByNickname[cs.nickname] = created
	}

	user, err := users.Create(ctx, domain.UserProfile{
		FirstName: "Taylor",
		LastName:  "Seager",
		Email:     "tseager@aol.com",
	})
	if err != nil {
		return fmt.Errorf("seed.Run: create user: %w", err)
	}

	// Sample booking: three nights at the Primitive site, priced at its
	// seeded fee. Dates stay on the historical reference values.
	checkin := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	checkout := time.Date(2024, time.June, 13, 0, 0, 0, 0, time.UTC)
	res := domain.Reservation{
		CampsiteID:    siteByNickname["Fall Creek Falls"].ID,
		UserProfileID: user.ID,
		Checkin:       checkin,
		Checkout:      checkout,
	}
	res.TotalCost = typeByName["Primitive"].FeePerNight.Times(res.Nights())

	if _, err := reservations.Create(ctx, res); err != nil {
		return fmt.Errorf("seed.Run: create reservation: %w", err)
	}

	slog.Info("seed complete",
		"campsite_types", len(campsiteTypes),
		"campsites", len(campsites),
	)
	return nil
}
