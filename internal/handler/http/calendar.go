package http

import (
	"net/http"

	"github.com/dharunlider/erp-shift-backend-go/internal/domain/calendar"
	"github.com/dharunlider/erp-shift-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CalendarHandler interface {
	GetStaffCalendar(w http.ResponseWriter, r *http.Request)
	ResolveShift(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendar.Service
}

func NewCalendarHandler(calendarService calendar.Service) CalendarHandler {
	return &calendarHandlerImpl{
		calendarService: calendarService,
	}
}

func (h *calendarHandlerImpl) GetStaffCalendar(w http.ResponseWriter, r *http.Request) {
	req := calendar.CalendarRequest{
		StaffID:  chi.URLParam(r, "id"),
		FromDate: r.URL.Query().Get("from"),
		ToDate:   r.URL.Query().Get("to"),
	}

	result, err := h.calendarService.GetStaffCalendar(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *calendarHandlerImpl) ResolveShift(w http.ResponseWriter, r *http.Request) {
	req := calendar.ShiftResolutionRequest{
		StaffID: chi.URLParam(r, "id"),
		Date:    r.URL.Query().Get("date"),
	}

	result, err := h.calendarService.ResolveShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
