package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"lifeboard-service/internal/period"
)

func ts(d int, hour int) time.Time {
	return time.Date(2024, 3, d, hour, 0, 0, 0, time.UTC)
}

func completedSession(userID string, startedAt time.Time) Session {
	done := startedAt.Add(time.Hour)
	return Session{ID: uuid.New(), UserID: userID, StartedAt: startedAt, CompletedAt: &done}
}

func TestWindowRollup_VolumeIsRepsTimesLoad(t *testing.T) {
	w := period.MonthOf(ts(15, 0))
	s := completedSession("user_1", ts(10, 9))
	sets := []Set{
		{SessionID: s.ID, Exercise: "squat", Reps: 5, LoadKg: 100},
		{SessionID: s.ID, Exercise: "squat", Reps: 3, LoadKg: 110},
	}

	stats := WindowRollup(w, []Session{s}, sets)
	if stats.VolumeKg != 5*100+3*110 {
		t.Fatalf("expected volume 830, got %v", stats.VolumeKg)
	}
	if stats.SessionCount != 1 {
		t.Fatalf("expected 1 session, got %d", stats.SessionCount)
	}
}

func TestWindowRollup_ExcludesOtherMonths(t *testing.T) {
	w := period.MonthOf(ts(15, 0))
	inMonth := completedSession("user_1", ts(10, 9))
	outMonth := completedSession("user_1", time.Date(2024, 2, 28, 9, 0, 0, 0, time.UTC))
	sets := []Set{
		{SessionID: inMonth.ID, Exercise: "bench", Reps: 5, LoadKg: 80},
		{SessionID: outMonth.ID, Exercise: "bench", Reps: 5, LoadKg: 200},
	}

	stats := WindowRollup(w, []Session{inMonth, outMonth}, sets)
	if stats.VolumeKg != 400 {
		t.Fatalf("sets outside the month must not count, got %v", stats.VolumeKg)
	}
}

func TestWindowRollup_ExcludesIncompleteSessions(t *testing.T) {
	w := period.MonthOf(ts(15, 0))
	open := Session{ID: uuid.New(), UserID: "user_1", StartedAt: ts(10, 9)}
	sets := []Set{{SessionID: open.ID, Exercise: "bench", Reps: 5, LoadKg: 80}}

	stats := WindowRollup(w, []Session{open}, sets)
	if stats.VolumeKg != 0 || stats.SessionCount != 0 {
		t.Fatalf("incomplete sessions must not count, got %+v", stats)
	}
}

func TestWindowRollup_PRCount(t *testing.T) {
	w := period.MonthOf(ts(15, 0))
	s := completedSession("user_1", ts(10, 9))
	// chronological: 100 (record), 95, 110 (record), 110 (tie, no record)
	sets := []Set{
		{SessionID: s.ID, Exercise: "squat", Reps: 5, LoadKg: 100},
		{SessionID: s.ID, Exercise: "squat", Reps: 5, LoadKg: 95},
		{SessionID: s.ID, Exercise: "squat", Reps: 1, LoadKg: 110},
		{SessionID: s.ID, Exercise: "squat", Reps: 1, LoadKg: 110},
	}

	stats := WindowRollup(w, []Session{s}, sets)
	if stats.PRCount != 2 {
		t.Fatalf("expected 2 records, got %d", stats.PRCount)
	}
}

func TestWindowRollup_Empty(t *testing.T) {
	w := period.MonthOf(ts(15, 0))

	stats := WindowRollup(w, nil, nil)
	if stats != (MonthlyStats{}) {
		t.Fatalf("empty month must be all zeros, got %+v", stats)
	}
}
