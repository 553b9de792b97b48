package helper

// TimeSlots are the bookable times of day, lunch then dinner service.
var TimeSlots = []string{
	"11:00", "11:30",
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30", "15:00", "15:30",
	"17:00", "17:30", "18:00", "18:30", "19:00", "19:30", "20:00", "20:30", "21:00",
}

func IsTimeSlot(t string) bool {
	for _, slot := range TimeSlots {
		if slot == t {
			return true
		}
	}
	return false
}

// AvailableSlots returns TimeSlots minus booked, keeping slot order.
func AvailableSlots(booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}
	available := make([]string, 0, len(TimeSlots))
	for _, slot := range TimeSlots {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}
	return available
}

// FitsCapacity reports whether requested more guests fit next to booked ones. A nil
// capacity means the event is unlimited.
func FitsCapacity(capacity *int, booked, requested int) bool {
	if capacity == nil {
		return true
	}
	return booked+requested <= *capacity
}
