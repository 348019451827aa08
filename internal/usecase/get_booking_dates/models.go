package get_booking_dates

// Request модель запроса доступных дат
type Request struct {
	UserID string // ID пользователя (для проверки лимита записей)
}

// Response список дат, открытых для бронирования
type Response struct {
	// Dates даты в формате "2006-01-02" в порядке возрастания,
	// без воскресений и заблокированных дат
	Dates []string

	// QuotaReached признак того, что пользователь исчерпал лимит
	// активных записей и новую создать не сможет
	QuotaReached bool
}
