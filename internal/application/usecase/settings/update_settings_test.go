package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
)

type fakeSettingsRepo struct {
	stored map[uuid.UUID]*entity.UserSettings
	saves  int
}

func (r *fakeSettingsRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	if s, ok := r.stored[userID]; ok {
		return s, nil
	}
	return entity.NewUserSettings(userID), nil
}

func (r *fakeSettingsRepo) Save(_ context.Context, s *entity.UserSettings) error {
	r.stored[s.UserID] = s
	r.saves++
	return nil
}

func (r *fakeSettingsRepo) FindNotifiable(context.Context) ([]*entity.UserSettings, error) {
	out := make([]*entity.UserSettings, 0, len(r.stored))
	for _, s := range r.stored {
		out = append(out, s)
	}
	return out, nil
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestUpdateSettings(t *testing.T) {
	t.Run("partial update keeps defaults for omitted fields", func(t *testing.T) {
		repo := &fakeSettingsRepo{stored: map[uuid.UUID]*entity.UserSettings{}}
		uc := NewUpdateSettingsUseCase(repo)
		userID := uuid.New()

		output, err := uc.Execute(context.Background(), UpdateSettingsInput{
			UserID:       userID,
			ReminderTime: strPtr("21:30"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Settings.ReminderTime != "21:30" {
			t.Errorf("expected reminder time 21:30, got %s", output.Settings.ReminderTime)
		}
		if !output.Settings.NotificationsEnabled {
			t.Error("expected notifications to stay enabled")
		}
		if output.Settings.Timezone != "UTC" {
			t.Errorf("expected timezone to stay UTC, got %s", output.Settings.Timezone)
		}
		if repo.saves != 1 {
			t.Errorf("expected 1 save, got %d", repo.saves)
		}
	})

	t.Run("update all fields", func(t *testing.T) {
		repo := &fakeSettingsRepo{stored: map[uuid.UUID]*entity.UserSettings{}}
		uc := NewUpdateSettingsUseCase(repo)
		userID := uuid.New()

		output, err := uc.Execute(context.Background(), UpdateSettingsInput{
			UserID:               userID,
			NotificationsEnabled: boolPtr(false),
			ReminderTime:         strPtr("06:15"),
			WeeklyReportEnabled:  boolPtr(false),
			Timezone:             strPtr("America/Sao_Paulo"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Settings.NotificationsEnabled {
			t.Error("expected notifications disabled")
		}
		if output.Settings.WeeklyReportEnabled {
			t.Error("expected weekly report disabled")
		}
		if output.Settings.Timezone != "America/Sao_Paulo" {
			t.Errorf("expected timezone America/Sao_Paulo, got %s", output.Settings.Timezone)
		}

		stored, ok := repo.stored[userID]
		if !ok {
			t.Fatal("expected settings to be saved")
		}
		if stored.ReminderTime != "06:15" {
			t.Errorf("expected stored reminder time 06:15, got %s", stored.ReminderTime)
		}
	})

	t.Run("invalid reminder time", func(t *testing.T) {
		repo := &fakeSettingsRepo{stored: map[uuid.UUID]*entity.UserSettings{}}
		uc := NewUpdateSettingsUseCase(repo)

		for _, bad := range []string{"25:99", "9:00", "0900", "later"} {
			_, err := uc.Execute(context.Background(), UpdateSettingsInput{
				UserID:       uuid.New(),
				ReminderTime: strPtr(bad),
			})
			if err == nil {
				t.Fatalf("expected error for reminder time %q", bad)
			}

			var settingsErr *domainerror.SettingsError
			if !errors.As(err, &settingsErr) {
				t.Fatalf("expected SettingsError, got %T", err)
			}
			if settingsErr.Code != domainerror.ErrCodeInvalidReminderTime {
				t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidReminderTime, settingsErr.Code)
			}
		}
		if repo.saves != 0 {
			t.Errorf("expected no saves, got %d", repo.saves)
		}
	})

	t.Run("unknown timezone", func(t *testing.T) {
		repo := &fakeSettingsRepo{stored: map[uuid.UUID]*entity.UserSettings{}}
		uc := NewUpdateSettingsUseCase(repo)

		_, err := uc.Execute(context.Background(), UpdateSettingsInput{
			UserID:   uuid.New(),
			Timezone: strPtr("Mars/Olympus_Mons"),
		})
		if err == nil {
			t.Fatal("expected error for unknown timezone")
		}

		var settingsErr *domainerror.SettingsError
		if !errors.As(err, &settingsErr) {
			t.Fatalf("expected SettingsError, got %T", err)
		}
		if settingsErr.Code != domainerror.ErrCodeInvalidTimezone {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidTimezone, settingsErr.Code)
		}
	})

	t.Run("second update reuses the stored record", func(t *testing.T) {
		repo := &fakeSettingsRepo{stored: map[uuid.UUID]*entity.UserSettings{}}
		uc := NewUpdateSettingsUseCase(repo)
		userID := uuid.New()

		if _, err := uc.Execute(context.Background(), UpdateSettingsInput{
			UserID:       userID,
			ReminderTime: strPtr("07:00"),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output, err := uc.Execute(context.Background(), UpdateSettingsInput{
			UserID:   userID,
			Timezone: strPtr("Europe/Lisbon"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Settings.ReminderTime != "07:00" {
			t.Errorf("expected earlier reminder time to survive, got %s", output.Settings.ReminderTime)
		}
		if output.Settings.Timezone != "Europe/Lisbon" {
			t.Errorf("expected timezone Europe/Lisbon, got %s", output.Settings.Timezone)
		}
	})
}
