package jobs

import (
	"context"

	"rentamaq-backend/internal/domain"
	"rentamaq-backend/internal/logger"
)

// ActivateDueContracts moves approved contracts whose start date has been
// reached into the active state.
func (jr *JobRunner) ActivateDueContracts() {
	jr.runWithRecovery("ActivateDueContracts", func() {
		ctx := context.Background()
		today := jr.now().Format("2006-01-02")

		contracts, err := jr.store.ContractRepository.ListDueForActivation(ctx, today)
		if err != nil {
			logger.Error("Failed to list contracts due for activation", "error", err)
			return
		}

		activated := 0
		for _, c := range contracts {
			if err := jr.store.ContractRepository.UpdateStatus(ctx, c.ID, domain.ContractStatusActive); err != nil {
				logger.Error("Failed to activate contract", "numero", c.Number, "error", err)
				continue
			}
			activated++
		}
		logger.Info("Activated due contracts", "as_of", today, "activated", activated)
	})
}

// SendReturnReminders emails clients of active contracts whose estimated
// return date falls within the configured window.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()
		from := jr.now().Format("2006-01-02")
		to := jr.now().AddDate(0, 0, jr.config.Scheduler.ReturnReminderDays).Format("2006-01-02")

		contracts, err := jr.store.ContractRepository.ListEndingBetween(ctx, from, to)
		if err != nil {
			logger.Error("Failed to list ending contracts", "error", err)
			return
		}

		sent := 0
		for _, c := range contracts {
			client, err := jr.store.ClientRepository.GetByID(ctx, c.ClientID)
			if err != nil || client.Email == "" {
				continue
			}
			if err := jr.email.SendReturnReminder(ctx, client.Email, client.Name, c.Number, c.EndDate); err != nil {
				logger.Error("Failed to send return reminder", "numero", c.Number, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Sent return reminders", "window_from", from, "window_to", to, "sent", sent)
	})
}
