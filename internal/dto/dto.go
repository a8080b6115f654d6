package dto

type CreateCountdownRequest struct {
	Timestamp      *int64  `json:"timestamp,omitempty" validate:"omitempty,min=0"`
	DateTime       string  `json:"dateTime,omitempty" validate:"omitempty,datetime=2006-01-02 15:04"`
	TimezoneOffset *int    `json:"timezoneOffset" validate:"required,min=-720,max=840"`
	Title          *string `json:"title,omitempty"`
}

type CreateCountdownResponse struct {
	Token          string `json:"token"`
	URL            string `json:"url"`
	Timestamp      int64  `json:"timestamp"`
	TimezoneOffset int    `json:"timezoneOffset"`
	Title          string `json:"title,omitempty"`
}

type TimeData struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
	Total   int64 `json:"total"`
}

type GetCountdownResponse struct {
	Token          string    `json:"token"`
	TargetDateTime string    `json:"targetDateTime"`
	Timestamp      int64     `json:"timestamp"`
	TimezoneOffset int       `json:"timezoneOffset"`
	OffsetLabel    string    `json:"offsetLabel"`
	Timezone       string    `json:"timezone"`
	ZoneAbbrev     string    `json:"timezoneAbbreviation"`
	Title          string    `json:"title,omitempty"`
	IsExpired      bool      `json:"isExpired"`
	TimeLeft       TimeData  `json:"timeLeft"`
	TimePassed     *TimeData `json:"timePassed,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
	Code    int    `json:"code,omitempty"`
}
