package usecase

import (
	"context"
	"gifttracker/domain"
	"sort"
	"time"
)

type reminderUseCase struct {
	kidRepo domain.KidRepo
	TimeOut time.Duration
}

func NewReminderUseCase(kidRepo domain.KidRepo, to time.Duration) domain.ReminderUseCase {
	return &reminderUseCase{
		kidRepo: kidRepo,
		TimeOut: to,
	}
}

// GetReminders projects every kid into an upcoming-birthday view,
// sorted by days until the next birthday. One unparseable birthday must
// never take the listing down: such entries get age 0 and the
// far-future sentinel, which sorts them to the end.
func (ru *reminderUseCase) GetReminders(ctx context.Context) (*[]domain.Reminder, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	kids, err := ru.kidRepo.GetAllKids(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC()

	reminders := make([]domain.Reminder, 0, len(*kids))
	for _, kid := range *kids {
		reminders = append(reminders, buildReminder(&kid, today))
	}

	// Stable, so kids sharing a sentinel keep their store order.
	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].DaysUntil < reminders[j].DaysUntil
	})

	return &reminders, nil
}

func buildReminder(kid *domain.Kid, today time.Time) domain.Reminder {
	reminder := domain.Reminder{
		KidID:    kid.ID,
		KidName:  kid.Name,
		Birthday: kid.Birthday,
	}

	birthday, err := domain.ParseBirthday(kid.Birthday)
	if err != nil {
		reminder.Age = 0
		reminder.DaysUntil = domain.DaysUntilUnknown
		return reminder
	}

	reminder.Age = birthday.AgeOn(today)
	reminder.DaysUntil = birthday.DaysUntilFrom(today)
	return reminder
}
