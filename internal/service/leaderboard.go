package service

import (
	"math/rand"
	"sort"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
)

// LeaderboardEntry is one fake participant row.
type LeaderboardEntry struct {
	Name           string
	Emoji          string
	Day            int
	TasksCompleted int
	Streak         int
	WaterML        int
	Steps          int
	Online         bool
}

var mockParticipants = []struct {
	Name  string
	Emoji string
}{
	{"Анна", "👩"},
	{"Мария", "👩‍🦰"},
	{"Елена", "👩‍🦱"},
	{"Ольга", "👱‍♀️"},
	{"Наталья", "👩‍🦳"},
	{"Светлана", "🧑"},
	{"Ирина", "👩"},
	{"Татьяна", "👩‍🦰"},
	{"Юлия", "👩‍🦱"},
	{"Екатерина", "👱‍♀️"},
	{"Дмитрий", "👨"},
	{"Александр", "👨‍🦱"},
	{"Сергей", "🧔"},
	{"Андрей", "👨‍🦰"},
	{"Максим", "👱"},
}

// LeaderboardService generates the mock social leaderboard. The data is
// random, regenerated on every call and never persisted: there is no real
// backend behind it, only a display stub.
type LeaderboardService struct {
	rand *rand.Rand
}

func NewLeaderboardService(src rand.Source) *LeaderboardService {
	return &LeaderboardService{rand: rand.New(src)}
}

// Generate produces fake participants clustered around the caller's current
// day (offset -2..+2, clamped to the course range), sorted by tasks done.
func (s *LeaderboardService) Generate(currentDay int) []LeaderboardEntry {
	if currentDay < 1 {
		currentDay = 1
	}

	entries := make([]LeaderboardEntry, 0, len(mockParticipants))
	for _, p := range mockParticipants {
		day := currentDay + s.rand.Intn(5) - 2
		if day < 1 {
			day = 1
		}
		if day > entities.CourseLengthDays {
			day = entities.CourseLengthDays
		}

		entries = append(entries, LeaderboardEntry{
			Name:           p.Name,
			Emoji:          p.Emoji,
			Day:            day,
			TasksCompleted: s.rand.Intn(10) + 5,
			Streak:         s.rand.Intn(day) + 1,
			WaterML:        s.rand.Intn(4000) + 1000,
			Steps:          s.rand.Intn(20000) + 5000,
			Online:         s.rand.Intn(2) == 0,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TasksCompleted > entries[j].TasksCompleted
	})

	return entries
}

// SameDay filters entries that are on the given day.
func (s *LeaderboardService) SameDay(entries []LeaderboardEntry, day int) []LeaderboardEntry {
	var out []LeaderboardEntry
	for _, e := range entries {
		if e.Day == day {
			out = append(out, e)
		}
	}
	return out
}
