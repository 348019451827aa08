package domain

// ServiceType identifies one of the shop's services. The set is small and
// fixed; values are the identifiers the booking UI has always used.
type ServiceType int

const (
	ServiceShave       ServiceType = 0 // Brijanje
	ServiceBuzzCut     ServiceType = 1 // Šišanje do kože
	ServiceHaircut     ServiceType = 2 // Šišanje
	ServiceFade        ServiceType = 3 // Fade
	ServiceHeadShave   ServiceType = 4 // Brijanje glave
	ServiceCutAndShave ServiceType = 5 // Šišanje + Brijanje
	ServiceFadeShave   ServiceType = 6 // Fade + Brijanje
)

// serviceDurations duration of each service in minutes
var serviceDurations = map[ServiceType]int{
	ServiceShave:       10,
	ServiceBuzzCut:     10,
	ServiceHaircut:     15,
	ServiceFade:        20,
	ServiceHeadShave:   15,
	ServiceCutAndShave: 30,
	ServiceFadeShave:   30,
}

// serviceNames display name of each service
var serviceNames = map[ServiceType]string{
	ServiceShave:       "Brijanje",
	ServiceBuzzCut:     "Šišanje do kože",
	ServiceHaircut:     "Šišanje",
	ServiceFade:        "Fade",
	ServiceHeadShave:   "Brijanje glave",
	ServiceCutAndShave: "Šišanje + Brijanje",
	ServiceFadeShave:   "Fade + Brijanje",
}

// ServiceDuration returns the duration of a service in minutes.
// Total: an unknown identifier falls back to DefaultServiceDurationMinutes,
// so stored rows referencing a retired service id still render a sane interval.
func ServiceDuration(s ServiceType) int {
	if d, ok := serviceDurations[s]; ok {
		return d
	}
	return DefaultServiceDurationMinutes
}

// ServiceName returns the display name of a service.
// Total: an unknown identifier falls back to UnknownServiceName.
func ServiceName(s ServiceType) string {
	if n, ok := serviceNames[s]; ok {
		return n
	}
	return UnknownServiceName
}

// KnownService returns true if the identifier belongs to the catalog.
// New reservations must reference a known service; the duration fallback
// exists only for reading rows that already made it into storage.
func KnownService(s ServiceType) bool {
	_, ok := serviceDurations[s]
	return ok
}
