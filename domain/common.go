package domain

const (
	DateLayout        = "2006-01-02"
	DisplayDateLayout = "Jan 02, 2006"
)

var MessageFailedBodyRequest = "failed to parse request body"
