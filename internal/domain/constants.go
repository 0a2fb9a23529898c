package domain

// Default configuration values
const (
	DefaultSlotCapacity = 5 // Суммарное число гостей на один слот (date, time)
)

// Business validation constants
const (
	MinPartySize             = 1
	MaxNameLength            = 255
	MaxEmailLength           = 255
	MaxSpecialRequestsLength = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы броней, занимающих места в слоте.
// Используются при подсчете занятых мест.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// ValidStatuses все допустимые статусы брони
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}
