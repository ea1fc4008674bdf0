package usecase

import (
	"context"
	"gifttracker/domain"
	"testing"
	"time"
)

func TestBuildReminderComputesAgeAndDays(t *testing.T) {
	kid := &domain.Kid{ID: "k1", Name: "Alice", Birthday: "2015-06-15"}
	today := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	reminder := buildReminder(kid, today)

	if reminder.KidID != "k1" || reminder.KidName != "Alice" || reminder.Birthday != "2015-06-15" {
		t.Fatalf("identity fields mismatch: %+v", reminder)
	}
	if reminder.Age != 10 {
		t.Fatalf("age = %d, want 10", reminder.Age)
	}
	if reminder.DaysUntil != 156 {
		t.Fatalf("days_until = %d, want 156", reminder.DaysUntil)
	}
}

func TestBuildReminderUnparseableBirthdayFallsBackToSentinels(t *testing.T) {
	kid := &domain.Kid{ID: "k1", Name: "Alice", Birthday: "garbage"}
	today := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	reminder := buildReminder(kid, today)

	if reminder.Age != 0 {
		t.Fatalf("age = %d, want sentinel 0", reminder.Age)
	}
	if reminder.DaysUntil != domain.DaysUntilUnknown {
		t.Fatalf("days_until = %d, want sentinel %d", reminder.DaysUntil, domain.DaysUntilUnknown)
	}
}

func TestGetRemindersSortedWithStableSentinelOrder(t *testing.T) {
	now := time.Now().UTC()
	kidRepo := &fakeKidRepo{kids: []domain.Kid{
		{ID: "bad-1", Name: "First Broken", Birthday: "not-a-date"},
		{ID: "far", Name: "Far", Birthday: now.AddDate(-3, 0, 0).AddDate(0, 0, 30).Format(domain.BirthdayLayout)},
		{ID: "bad-2", Name: "Second Broken", Birthday: "also broken"},
		{ID: "soon", Name: "Soon", Birthday: now.AddDate(-3, 0, 0).Format(domain.BirthdayLayout)},
	}}

	uc := NewReminderUseCase(kidRepo, time.Second)
	reminders, err := uc.GetReminders(context.Background())
	if err != nil {
		t.Fatalf("GetReminders failed: %v", err)
	}
	if len(*reminders) != 4 {
		t.Fatalf("expected 4 reminders, got %d", len(*reminders))
	}

	for i := 1; i < len(*reminders); i++ {
		if (*reminders)[i-1].DaysUntil > (*reminders)[i].DaysUntil {
			t.Fatalf("reminders not sorted by days_until: %+v", *reminders)
		}
	}

	// The two unparseable birthdays share the sentinel and must keep
	// their original relative order at the end of the list.
	last, secondLast := (*reminders)[3], (*reminders)[2]
	if secondLast.KidID != "bad-1" || last.KidID != "bad-2" {
		t.Fatalf("sentinel entries out of order: %s, %s", secondLast.KidID, last.KidID)
	}
	if last.DaysUntil != domain.DaysUntilUnknown || secondLast.DaysUntil != domain.DaysUntilUnknown {
		t.Fatal("sentinel entries missing the far-future value")
	}
	if last.Age != 0 || secondLast.Age != 0 {
		t.Fatal("sentinel entries must report age 0")
	}

	if (*reminders)[0].KidID != "soon" {
		t.Fatalf("expected the nearest birthday first, got %s", (*reminders)[0].KidID)
	}
}
