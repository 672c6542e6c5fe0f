// Package services: services/attendance_service.go
package services

import (
	"gym-admin/logger"
	"gym-admin/models"
)

// AttendanceServiceInterface is what the attendance controller depends on.
type AttendanceServiceInterface interface {
	ForDate(date string) (map[string]bool, error)
	Save(date string, records map[string]bool) error
	MemberHistory(id string) ([]string, error)
	DailySummary(date string) (models.DailyAttendance, error)
	Recent(days int) ([]models.DailyAttendance, error)
}

// AttendanceService keeps the two representations of attendance in step: the
// date-indexed attendance log and each member's own attendance date set.
type AttendanceService struct {
	storage FileStorageInterface
}

// NewAttendanceService creates an AttendanceService on top of the given
// storage.
func NewAttendanceService(storage FileStorageInterface) *AttendanceService {
	return &AttendanceService{storage: storage}
}

// ForDate returns the raw memberID-to-present map for one date. A date with
// no record yields an empty map.
func (s *AttendanceService) ForDate(date string) (map[string]bool, error) {
	s.storage.Lock()
	defer s.storage.Unlock()

	log, err := s.storage.ReadAttendance()
	if err != nil {
		return nil, err
	}
	if day, ok := log[date]; ok {
		return day, nil
	}
	return map[string]bool{}, nil
}

// Save overwrites one date's attendance record and synchronizes the listed
// members' attendance sets: present adds the date (idempotently), absent
// removes it. Both collections are written inside one critical section so the
// two views cannot diverge through interleaved requests.
func (s *AttendanceService) Save(date string, records map[string]bool) error {
	s.storage.Lock()
	defer s.storage.Unlock()

	log, err := s.storage.ReadAttendance()
	if err != nil {
		return err
	}
	log[date] = records

	members, err := s.storage.ReadMembers()
	if err != nil {
		return err
	}
	for i := range members {
		present, listed := records[members[i].ID]
		if !listed {
			continue
		}
		if present && !members[i].HasAttended(date) {
			members[i].Attendance = append(members[i].Attendance, date)
		} else if !present {
			members[i].Attendance = removeDate(members[i].Attendance, date)
		}
	}

	if err := s.storage.WriteAttendance(log); err != nil {
		return err
	}
	if err := s.storage.WriteMembers(members); err != nil {
		return err
	}
	logger.Info.Printf("Save: recorded attendance for %s (%d entries)", date, len(records))
	return nil
}

// removeDate drops one date from a member's attendance set, preserving order.
func removeDate(dates []string, date string) []string {
	for i, d := range dates {
		if d == date {
			return append(dates[:i], dates[i+1:]...)
		}
	}
	return dates
}

// MemberHistory returns the dates one member attended.
func (s *AttendanceService) MemberHistory(id string) ([]string, error) {
	s.storage.Lock()
	defer s.storage.Unlock()

	members, err := s.storage.ReadMembers()
	if err != nil {
		return nil, err
	}
	idx := findMember(members, id)
	if idx < 0 {
		return nil, ErrMemberNotFound
	}
	if members[idx].Attendance == nil {
		return []string{}, nil
	}
	return members[idx].Attendance, nil
}

// DailySummary builds the present/absent breakdown for one date. Members not
// listed in the day's record count as absent.
func (s *AttendanceService) DailySummary(date string) (models.DailyAttendance, error) {
	s.storage.Lock()
	defer s.storage.Unlock()

	log, err := s.storage.ReadAttendance()
	if err != nil {
		return models.DailyAttendance{}, err
	}
	members, err := s.storage.ReadMembers()
	if err != nil {
		return models.DailyAttendance{}, err
	}
	return summarizeDay(date, log[date], members), nil
}

// Recent returns daily summaries for today and the preceding days-1 days,
// most recent first.
func (s *AttendanceService) Recent(days int) ([]models.DailyAttendance, error) {
	s.storage.Lock()
	defer s.storage.Unlock()

	log, err := s.storage.ReadAttendance()
	if err != nil {
		return nil, err
	}
	members, err := s.storage.ReadMembers()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.DailyAttendance, 0, days)
	for i := 0; i < days; i++ {
		date := nowFunc().AddDate(0, 0, -i).Format(dateFormat)
		summaries = append(summaries, summarizeDay(date, log[date], members))
	}
	return summaries, nil
}

// summarizeDay splits the member roster into present and absent for one
// date's attendance map.
func summarizeDay(date string, day map[string]bool, members []models.Member) models.DailyAttendance {
	summary := models.DailyAttendance{
		Date:           date,
		PresentMembers: []models.MemberInfo{},
		AbsentMembers:  []models.MemberInfo{},
		TotalMembers:   len(members),
	}
	for _, m := range members {
		info := models.MemberInfo{ID: m.ID, Name: m.Name, Photo: m.Photo}
		if day[m.ID] {
			summary.PresentMembers = append(summary.PresentMembers, info)
		} else {
			summary.AbsentMembers = append(summary.AbsentMembers, info)
		}
	}
	summary.PresentCount = len(summary.PresentMembers)
	summary.AbsentCount = len(summary.AbsentMembers)
	return summary
}
