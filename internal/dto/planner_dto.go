package dto

const (
	SlotStudy   = "study"
	SlotBusy    = "busy"
	SlotBreak   = "break"
	SlotLeisure = "leisure"
)

type TimeSlot struct {
	Time     string `json:"time" example:"09:00 - 11:00"`
	Activity string `json:"activity"`
	Type     string `json:"type" enums:"study,busy,break,leisure"`
}

type DaySchedule struct {
	Day   string     `json:"day" example:"Monday"`
	Slots []TimeSlot `json:"slots"`
}

type Timetable struct {
	Schedule []DaySchedule `json:"schedule"`
}

type TimetableResponse struct {
	Success   bool      `json:"success" example:"true"`
	Timetable Timetable `json:"timetable"`
}
