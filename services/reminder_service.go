package services

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ReminderService runs the daily overdue-invoice sweep.
type ReminderService struct {
	db       *gorm.DB
	invoices *InvoiceService
}

func NewReminderService(db *gorm.DB, invoices *InvoiceService) *ReminderService {
	return &ReminderService{db: db, invoices: invoices}
}

// StartScheduler sends reminders every day at 9 AM. The returned cron can be
// stopped on shutdown.
func (s *ReminderService) StartScheduler() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("0 9 * * *", s.SendOverdueReminders); err != nil {
		log.Printf("warning: failed to schedule overdue sweep: %v", err)
		return c
	}
	c.Start()
	log.Println("Reminder scheduler started")
	return c
}

// SendOverdueReminders notifies guests of every sent invoice whose due date
// has passed. Failures on one invoice do not stop the sweep.
func (s *ReminderService) SendOverdueReminders() {
	log.Println("Starting overdue invoice sweep...")

	overdue, err := s.invoices.GetOverdue()
	if err != nil {
		log.Printf("Failed to fetch overdue invoices: %v", err)
		return
	}

	sent := 0
	for _, inv := range overdue {
		if _, err := s.invoices.SendReminder(inv.ID); err != nil {
			log.Printf("Failed to send reminder for %s: %v", inv.InvoiceNumber, err)
			continue
		}
		sent++
	}

	log.Printf("Overdue sweep completed: %d invoices, %d reminders sent", len(overdue), sent)
}
