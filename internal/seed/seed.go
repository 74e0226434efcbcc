// Package seed holds the demo records the dashboard starts with.
package seed

import (
	"context"
	"fmt"

	"dealdesk/internal/models"
	"dealdesk/internal/repositories"
)

func Deals() []models.Deal {
	return []models.Deal{
		{ID: "1", Name: "Website Redesign", Company: "Acme Corp", Value: 12500, Stage: models.StageLead,
			ExpectedCloseDate: models.MustDate("2023-12-30"), Contact: "John Smith", CreatedAt: models.MustDate("2023-10-15")},
		{ID: "2", Name: "CRM Implementation", Company: "TechFlow Inc", Value: 45000, Stage: models.StageQualified,
			ExpectedCloseDate: models.MustDate("2023-11-15"), Contact: "Sarah Johnson", CreatedAt: models.MustDate("2023-09-22")},
		{ID: "3", Name: "Annual Maintenance", Company: "Global Logistics", Value: 36000, Stage: models.StageProposal,
			ExpectedCloseDate: models.MustDate("2023-12-05"), Contact: "Mike Chen", CreatedAt: models.MustDate("2023-10-03")},
		{ID: "4", Name: "Mobile App Development", Company: "NexGen Solutions", Value: 85000, Stage: models.StageNegotiation,
			ExpectedCloseDate: models.MustDate("2024-01-30"), Contact: "Lisa Wong", CreatedAt: models.MustDate("2023-08-17")},
		{ID: "5", Name: "Software License Renewal", Company: "DataSense Analytics", Value: 27500, Stage: models.StageClosed,
			ExpectedCloseDate: models.MustDate("2023-11-01"), Contact: "Alex Roberts", CreatedAt: models.MustDate("2023-09-10")},
	}
}

func Contacts() []models.Contact {
	return []models.Contact{
		{ID: "1", FirstName: "John", LastName: "Smith", Email: "john.smith@example.com", Phone: "(555) 123-4567",
			Company: "Acme Corp", Position: "Marketing Director", Category: models.CategoryCustomer, Status: models.ContactActive,
			DateAdded: models.MustDate("2023-10-15"), Notes: "Key decision maker for the website redesign project."},
		{ID: "2", FirstName: "Sarah", LastName: "Johnson", Email: "sarah.j@techflow.com", Phone: "(555) 987-6543",
			Company: "TechFlow Inc", Position: "CTO", Category: models.CategoryLead, Status: models.ContactProspect,
			DateAdded: models.MustDate("2023-11-05"), Notes: "Interested in our enterprise solution."},
		{ID: "3", FirstName: "Michael", LastName: "Chen", Email: "mchen@globallogistics.com", Phone: "(555) 456-7890",
			Company: "Global Logistics", Position: "Operations Manager", Category: models.CategoryCustomer, Status: models.ContactActive,
			DateAdded: models.MustDate("2023-09-22"), Notes: "Regular client - quarterly maintenance contract."},
	}
}

func Tasks() []models.Task {
	contact := func(id int64) *int64 { return &id }
	return []models.Task{
		{Title: "Call potential client", Description: "Schedule a call with ABC Corp to discuss new partnership",
			Status: models.StatusPending, Priority: models.PriorityHigh, DueDate: models.MustDate("2023-06-15"),
			AssignedTo: "John Doe", ContactID: contact(101)},
		{Title: "Prepare quarterly report", Description: "Create Q2 sales report for management meeting",
			Status: models.StatusInProgress, Priority: models.PriorityMedium, DueDate: models.MustDate("2023-06-20"),
			AssignedTo: "Sarah Johnson", ContactID: contact(102)},
		{Title: "Update client database", Description: "Add new leads from the trade show to CRM",
			Status: models.StatusCompleted, Priority: models.PriorityLow, DueDate: models.MustDate("2023-06-10"),
			AssignedTo: "Mark Wilson", ContactID: contact(103)},
		{Title: "Send follow-up emails", Description: "Follow up with leads from last month's campaign",
			Status: models.StatusPending, Priority: models.PriorityHigh, DueDate: models.MustDate("2023-06-18"),
			AssignedTo: "Emily Brown", ContactID: contact(104)},
		{Title: "Renew software subscriptions", Description: "Review and renew monthly SaaS subscriptions",
			Status: models.StatusInProgress, Priority: models.PriorityMedium, DueDate: models.MustDate("2023-06-25"),
			AssignedTo: "John Doe", ContactID: contact(101)},
	}
}

// Load fills empty repositories with the demo records. Task ids come out 1..5.
func Load(ctx context.Context, deals *repositories.DealRepository, contacts *repositories.ContactRepository, tasks repositories.TaskRepository) error {
	for _, d := range Deals() {
		if err := deals.Create(&d); err != nil {
			return fmt.Errorf("seed deals: %w", err)
		}
	}
	for _, c := range Contacts() {
		if err := contacts.Create(&c); err != nil {
			return fmt.Errorf("seed contacts: %w", err)
		}
	}
	for _, t := range Tasks() {
		if err := tasks.Store(ctx, &t); err != nil {
			return fmt.Errorf("seed tasks: %w", err)
		}
	}
	return nil
}
