package cart

import (
	"context"
	"time"

	"github.com/vipinrawat0001/closet-carousel-commerce/model"
	"github.com/vipinrawat0001/closet-carousel-commerce/service/availability"
	"github.com/vipinrawat0001/closet-carousel-commerce/service/rentalcalc"
)

// AddRent validates a rental request and puts it on the rent ledger.
// Rentals are one unit per line: re-adding an existing (product, size)
// pair overwrites every field of the existing line except its id, which
// reads as "change my rental parameters", not "rent two units". The
// asymmetry with AddBuy is intentional.
// The clamped flag is set when the requested duration exceeded the
// product ceiling, so callers can raise the maximum-period notice.
func (m *Manager) AddRent(ctx context.Context, s *Session, p *model.Product, size model.Size, days int, start time.Time) (line model.RentLine, clamped bool, err error) {
	if !availability.ForMode(p, model.ModeRent) {
		return model.RentLine{}, false, makeErr(ErrNotAvailable)
	}
	if size == "" {
		return model.RentLine{}, false, makeErr(ErrSizeRequired)
	}
	if days < 1 {
		return model.RentLine{}, false, makeErr(ErrBadDuration)
	}
	if availability.StockFor(p.Inventory, size, model.ModeRent) < 1 {
		return model.RentLine{}, false, makeErr(ErrNoStock)
	}
	if err := rentalcalc.ValidateStart(start, m.now()); err != nil {
		return model.RentLine{}, false, makeErr(ErrPastStart)
	}

	days, clamped = rentalcalc.ClampDuration(days, p.RentalMaxDays)

	line = model.RentLine{
		ID:           m.newID(),
		ProductID:    p.ID,
		Name:         p.Name,
		Size:         size,
		DailyRate:    p.RentalPriceDaily,
		Deposit:      p.RentalDeposit,
		DurationDays: days,
		StartDate:    rentalcalc.Day(start),
		EndDate:      rentalcalc.EndDate(start, days),
		TotalPrice:   rentalcalc.Cost(p.RentalPriceDaily, days, p.RentalDeposit),
		Image:        p.PrimaryImage(),
	}

	replaced := false
	for i := range s.Rent {
		if s.Rent[i].ProductID == line.ProductID && s.Rent[i].Size == line.Size {
			line.ID = s.Rent[i].ID
			s.Rent[i] = line
			replaced = true
			break
		}
	}
	if !replaced {
		s.Rent = append(s.Rent, line)
	}

	if err := m.store.SaveRent(ctx, s.ID, s.Rent); err != nil {
		return model.RentLine{}, false, err
	}
	return line, clamped, nil
}

// RemoveRent deletes the line with the given id; absent ids are a no-op.
func (m *Manager) RemoveRent(ctx context.Context, s *Session, lineID string) error {
	kept := s.Rent[:0]
	for _, l := range s.Rent {
		if l.ID != lineID {
			kept = append(kept, l)
		}
	}
	s.Rent = kept
	return m.store.SaveRent(ctx, s.ID, s.Rent)
}

// UpdateRentDuration rewrites the period of a rental line. A duration of
// zero or less behaves as RemoveRent. Past-date validation belongs to the
// caller and only applies when the start is actually being moved; the
// stored total snapshot is left alone, renderers derive the live charge
// from rate and duration.
func (m *Manager) UpdateRentDuration(ctx context.Context, s *Session, lineID string, days int, start time.Time) error {
	if days <= 0 {
		return m.RemoveRent(ctx, s, lineID)
	}
	for i := range s.Rent {
		if s.Rent[i].ID == lineID {
			s.Rent[i].DurationDays = days
			s.Rent[i].StartDate = rentalcalc.Day(start)
			s.Rent[i].EndDate = rentalcalc.EndDate(start, days)
			break
		}
	}
	return m.store.SaveRent(ctx, s.ID, s.Rent)
}

// ClearRent empties the rent ledger.
func (m *Manager) ClearRent(ctx context.Context, s *Session) error {
	s.Rent = nil
	return m.store.SaveRent(ctx, s.ID, nil)
}
