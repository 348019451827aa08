package models

import (
	"time"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
)

// AppointmentResponse запись в представлении часового пояса барбершопа
type AppointmentResponse struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customer_name"`
	PhoneNumber  string `json:"phone_number"`
	Service      int    `json:"service"`
	ServiceName  string `json:"service_name"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	UserID       string `json:"user_id"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// CanceledAppointmentResponse запись из журнала отмен
type CanceledAppointmentResponse struct {
	ID              int64  `json:"id"`
	OriginalID      int64  `json:"original_id"`
	CustomerName    string `json:"customer_name"`
	PhoneNumber     string `json:"phone_number"`
	Service         int    `json:"service"`
	ServiceName     string `json:"service_name"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	UserID          string `json:"user_id"`
	CanceledByAdmin bool   `json:"canceled_by_admin"`
	CanceledAt      string `json:"canceled_at"`
}

// ScheduleResponse расписание за период вместе с журналом отмен
type ScheduleResponse struct {
	Appointments []AppointmentResponse         `json:"appointments"`
	Canceled     []CanceledAppointmentResponse `json:"canceled"`
}

// FromDomainAppointment конвертирует доменную запись, приводя время к loc
func FromDomainAppointment(a *domain.Appointment, loc *time.Location) AppointmentResponse {
	startLocal := a.StartTime.In(loc)
	return AppointmentResponse{
		ID:           a.ID,
		CustomerName: a.CustomerName,
		PhoneNumber:  a.CustomerPhone,
		Service:      int(a.Service),
		ServiceName:  domain.ServiceName(a.Service),
		Date:         startLocal.Format(domain.DateFormat),
		Time:         startLocal.Format(domain.TimeFormat),
		UserID:       a.OwnerUserID,
	}
}

// FromDomainAppointmentList конвертирует список доменных записей
func FromDomainAppointmentList(list []*domain.Appointment, loc *time.Location) AppointmentListResponse {
	out := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromDomainAppointment(a, loc))
	}
	return AppointmentListResponse{Appointments: out}
}

// FromDomainCanceled конвертирует запись журнала отмен
func FromDomainCanceled(c *domain.CanceledAppointment, loc *time.Location) CanceledAppointmentResponse {
	startLocal := c.StartTime.In(loc)
	return CanceledAppointmentResponse{
		ID:              c.ID,
		OriginalID:      c.OriginalID,
		CustomerName:    c.CustomerName,
		PhoneNumber:     c.CustomerPhone,
		Service:         int(c.Service),
		ServiceName:     domain.ServiceName(c.Service),
		Date:            startLocal.Format(domain.DateFormat),
		Time:            startLocal.Format(domain.TimeFormat),
		UserID:          c.OwnerUserID,
		CanceledByAdmin: c.CanceledByAdmin,
		CanceledAt:      c.CanceledAt.In(loc).Format(time.RFC3339),
	}
}
