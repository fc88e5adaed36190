package holiday

import (
	"context"
	"testing"
	"time"

	"github.com/dharunlider/erp-shift-backend-go/internal/domain/holiday"
	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/daterange"
	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHolidayRepo struct {
	holidays map[string]holiday.Holiday
}

func newFakeHolidayRepo() *fakeHolidayRepo {
	return &fakeHolidayRepo{holidays: make(map[string]holiday.Holiday)}
}

func (f *fakeHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	for _, existing := range f.holidays {
		if existing.Date.Equal(h.Date) {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
	}
	h.ID = "h-" + daterange.Format(h.Date)
	h.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h.UpdatedAt = h.CreatedAt
	f.holidays[h.ID] = h
	return h, nil
}

func (f *fakeHolidayRepo) GetByRange(_ context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if !h.Date.Before(from) && !h.Date.After(to) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) List(_ context.Context) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeHolidayRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.holidays[id]; !ok {
		return holiday.ErrHolidayNotFound
	}
	delete(f.holidays, id)
	return nil
}

func TestCreateHoliday(t *testing.T) {
	svc := NewHolidayService(newFakeHolidayRepo())

	resp, err := svc.CreateHoliday(context.Background(), holiday.CreateHolidayRequest{
		Date: "2024-08-15",
		Name: "Independence Day",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-08-15", resp.Date)
	assert.Equal(t, "Independence Day", resp.Name)
	assert.NotEmpty(t, resp.ID)
}

func TestCreateHoliday_DuplicateDate(t *testing.T) {
	svc := NewHolidayService(newFakeHolidayRepo())

	req := holiday.CreateHolidayRequest{Date: "2024-08-15", Name: "Independence Day"}
	_, err := svc.CreateHoliday(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CreateHoliday(context.Background(), req)
	assert.ErrorIs(t, err, holiday.ErrHolidayExists)
}

func TestCreateHoliday_Validation(t *testing.T) {
	svc := NewHolidayService(newFakeHolidayRepo())

	_, err := svc.CreateHoliday(context.Background(), holiday.CreateHolidayRequest{
		Date: "15-08-2024",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	m := verrs.ToMap()
	assert.Contains(t, m, "date")
	assert.Contains(t, m, "name")
}

func TestDeleteHoliday(t *testing.T) {
	repo := newFakeHolidayRepo()
	svc := NewHolidayService(repo)

	created, err := svc.CreateHoliday(context.Background(), holiday.CreateHolidayRequest{
		Date: "2024-12-25",
		Name: "Christmas",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteHoliday(context.Background(), created.ID))
	assert.ErrorIs(t, svc.DeleteHoliday(context.Background(), created.ID), holiday.ErrHolidayNotFound)
}
