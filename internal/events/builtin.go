package events

import "github.com/cwarden/monthcal/internal/calendar"

// builtin is the demo data set shown when no event file is configured.
var builtin = []Record{
	{ID: "1", Title: "Team Meeting", Date: "2025-10-05", Time: "10:00", Duration: 60, Color: "#3b82f6"},
	{ID: "2", Title: "Project Deadline", Date: "2025-10-05", Time: "10:30", Duration: 30, Color: "#ef4444"},
	{ID: "3", Title: "Design Review", Date: "2025-10-10", Time: "14:00", Duration: 90, Color: "#8b5cf6"},
	{ID: "4", Title: "Client Call", Date: "2025-10-15", Time: "11:00", Duration: 45, Color: "#10b981"},
	{ID: "5", Title: "Workshop", Date: "2025-10-15", Time: "11:30", Duration: 120, Color: "#f59e0b"},
	{ID: "6", Title: "Code Review", Date: "2025-10-20", Time: "15:00", Duration: 60, Color: "#06b6d4"},
	{ID: "7", Title: "Sprint Planning", Date: "2025-10-25", Time: "09:00", Duration: 120, Color: "#ec4899"},
	{ID: "8", Title: "Lunch Meeting", Date: "2025-10-28", Time: "12:00", Duration: 60, Color: "#14b8a6"},
}

// Builtin returns a fresh copy of the demo events.
func Builtin() []calendar.Event {
	out, err := convert(builtin)
	if err != nil {
		panic("events: invalid builtin record: " + err.Error())
	}
	return out
}
