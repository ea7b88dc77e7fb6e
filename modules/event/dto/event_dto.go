package dto

type ReminderPayload struct {
	Method        string `json:"method" validate:"required,oneof=email push"`
	MinutesBefore int    `json:"minutesBefore" validate:"required,min=5,max=43200"`
}

type EventRequest struct {
	Title    string           `json:"title" validate:"required"`
	Start    string           `json:"start" validate:"required"`
	End      string           `json:"end" validate:"required"`
	Notes    string           `json:"notes" validate:"required"`
	Tag      string           `json:"tag" validate:"required"`
	Reminder *ReminderPayload `json:"reminder" validate:"omitempty"`
}

type EventResponse struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Start    string           `json:"start"`
	End      string           `json:"end"`
	Notes    string           `json:"notes"`
	Tag      string           `json:"tag"`
	Reminder *ReminderPayload `json:"reminder,omitempty"`
}
