package tasks

import (
	"encoding/json"
	"time"

	"moveboard/config"

	"github.com/hibiken/asynq"
)

const TypeFollowUpReminder = "reminder:followup"

// FollowUpPayload identifies the lead whose follow-up window elapsed.
type FollowUpPayload struct {
	LeadID string `json:"leadId"`
}

// NewFollowUpTask builds a follow-up reminder task firing after delay.
func NewFollowUpTask(leadID string, delay time.Duration) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(FollowUpPayload{LeadID: leadID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeFollowUpReminder, b)
	opts := []asynq.Option{asynq.ProcessIn(delay)}

	return task, opts, nil
}

// ReminderClient enqueues follow-up reminders on the shared Redis queue. It
// satisfies the lead service's FollowUpScheduler.
type ReminderClient struct {
	client *asynq.Client
}

// NewReminderClient connects an enqueue client to the reminder queue.
func NewReminderClient() *ReminderClient {
	return &ReminderClient{client: asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})}
}

// ScheduleFollowUp queues a reminder for the lead after the given delay.
func (c *ReminderClient) ScheduleFollowUp(leadID string, delay time.Duration) error {
	task, opts, err := NewFollowUpTask(leadID, delay)
	if err != nil {
		return err
	}
	_, err = c.client.Enqueue(task, opts...)
	return err
}

// Close releases the underlying queue connection.
func (c *ReminderClient) Close() error {
	return c.client.Close()
}
