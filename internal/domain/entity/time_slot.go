package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period is a part of the day in which appointments are offered
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

var ErrInvalidSlotToken = errors.New("invalid time slot token")

// TimeSlot is a selectable appointment time. Token encodes period and hour,
// for example "afternoon-14".
type TimeSlot struct {
	Token    string `json:"token"`
	Period   Period `json:"period"`
	Hour     int    `json:"hour"`
	Label    string `json:"label"`
	Priority bool   `json:"priority"`
	Disabled bool   `json:"disabled"`
}

type periodHours struct {
	period   Period
	standard []int
	edges    [2]int // priority slots inserted before and after the standard hours
}

var periodSchedule = []periodHours{
	{period: PeriodMorning, standard: []int{9, 10, 11}, edges: [2]int{8, 12}},
	{period: PeriodAfternoon, standard: []int{14, 15, 16}, edges: [2]int{13, 17}},
	{period: PeriodEvening, standard: []int{19, 20}, edges: [2]int{18, 21}},
}

// SlotToken formats the token of a period/hour pair
func SlotToken(p Period, hour int) string {
	return fmt.Sprintf("%s-%d", p, hour)
}

// ParseSlotToken splits a token into its period and hour
func ParseSlotToken(token string) (Period, int, error) {
	idx := strings.LastIndex(token, "-")
	if idx <= 0 || idx == len(token)-1 {
		return "", 0, ErrInvalidSlotToken
	}

	period := Period(token[:idx])
	switch period {
	case PeriodMorning, PeriodAfternoon, PeriodEvening:
	default:
		return "", 0, ErrInvalidSlotToken
	}

	hour, err := strconv.Atoi(token[idx+1:])
	if err != nil || hour < 0 || hour > 23 {
		return "", 0, ErrInvalidSlotToken
	}
	return period, hour, nil
}

// GenerateSlots builds the slot list for date. Priority slots are added at
// the edges of every period when priority is set. If date is the same
// calendar day as now, every slot whose hour has started is disabled.
func GenerateSlots(date, now time.Time, priority bool) []TimeSlot {
	isToday := sameDay(date, now)

	var slots []TimeSlot
	for _, ph := range periodSchedule {
		hours := make([]hourFlag, 0, len(ph.standard)+2)
		if priority {
			hours = append(hours, hourFlag{hour: ph.edges[0], priority: true})
		}
		for _, h := range ph.standard {
			hours = append(hours, hourFlag{hour: h})
		}
		if priority {
			hours = append(hours, hourFlag{hour: ph.edges[1], priority: true})
		}

		for _, hf := range hours {
			slots = append(slots, TimeSlot{
				Token:    SlotToken(ph.period, hf.hour),
				Period:   ph.period,
				Hour:     hf.hour,
				Label:    hourLabel(hf.hour, hf.priority),
				Priority: hf.priority,
				Disabled: isToday && now.Hour() >= hf.hour,
			})
		}
	}
	return slots
}

// FindSlot returns the generated slot matching token, if any
func FindSlot(slots []TimeSlot, token string) (TimeSlot, bool) {
	for _, slot := range slots {
		if slot.Token == token {
			return slot, true
		}
	}
	return TimeSlot{}, false
}

// SlotTimeLabel returns the clock time of a slot token, e.g. "2:00 PM".
// Malformed tokens are returned as they are.
func SlotTimeLabel(token string) string {
	_, hour, err := ParseSlotToken(token)
	if err != nil {
		return token
	}
	return hourLabel(hour, false)
}

type hourFlag struct {
	hour     int
	priority bool
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

func hourLabel(hour int, priority bool) string {
	label := time.Date(2000, 1, 1, hour, 0, 0, 0, time.UTC).Format("3:04 PM")
	if priority {
		label += " (Priority)"
	}
	return label
}
