package models

import (
	"time"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
)

// AnnouncementResponse объявление для страницы бронирования
type AnnouncementResponse struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	StartsAt  string `json:"starts_at"`
	EndsAt    string `json:"ends_at"`
	CreatedAt string `json:"created_at"`
}

// AnnouncementListResponse список объявлений
type AnnouncementListResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
}

// FromDomainAnnouncement конвертирует доменное объявление, приводя время к loc
func FromDomainAnnouncement(a *domain.Announcement, loc *time.Location) AnnouncementResponse {
	return AnnouncementResponse{
		ID:        a.ID,
		Message:   a.Message,
		StartsAt:  a.StartsAt.In(loc).Format(time.RFC3339),
		EndsAt:    a.EndsAt.In(loc).Format(time.RFC3339),
		CreatedAt: a.CreatedAt.In(loc).Format(time.RFC3339),
	}
}

// FromDomainAnnouncementList конвертирует список доменных объявлений
func FromDomainAnnouncementList(list []*domain.Announcement, loc *time.Location) AnnouncementListResponse {
	out := make([]AnnouncementResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromDomainAnnouncement(a, loc))
	}
	return AnnouncementListResponse{Announcements: out}
}
