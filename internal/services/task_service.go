// internal/services/task_service.go
package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"dealdesk/internal/models"
	"dealdesk/internal/repositories"
)

// TaskService defines the interface for task-related business logic.
type TaskService interface {
	Create(ctx context.Context, in models.TaskInput) (*models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	GetAll(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	Update(ctx context.Context, id int64, in models.TaskInput) (*models.Task, error)
	Delete(ctx context.Context, id int64) error

	// ToggleStatus flips completed <-> pending; any other status becomes completed.
	ToggleStatus(ctx context.Context, id int64) (*models.Task, error)
}

type taskService struct {
	repo repositories.TaskRepository
}

// NewTaskService creates a new instance of TaskService.
func NewTaskService(repo repositories.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

func (s *taskService) Create(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	task := &models.Task{
		Status:   models.StatusPending,
		Priority: models.PriorityMedium,
	}
	empty := ""
	if in.Title == nil {
		in.Title = &empty
	}
	if in.DueDate == nil {
		in.DueDate = &empty
	}
	if in.AssignedTo == nil {
		in.AssignedTo = &empty
	}
	if err := applyTaskInput(task, in); err != nil {
		return nil, err
	}
	if err := s.repo.Store(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, &NotFoundError{Kind: "task", ID: strconv.FormatInt(id, 10)}
	}
	return task, nil
}

func (s *taskService) GetAll(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	needle := strings.ToLower(filter.Search)
	tasks, err := s.repo.FindAll(ctx, func(t *models.Task) bool {
		if filter.Status != "" && filter.Status != "all" && t.Status != filter.Status {
			return false
		}
		if filter.Priority != "" && filter.Priority != "all" && t.Priority != filter.Priority {
			return false
		}
		if needle == "" {
			return true
		}
		return containsFold(t.Title, needle) || containsFold(t.Description, needle) || containsFold(t.AssignedTo, needle)
	})
	if err != nil {
		return nil, err
	}
	sortTasks(tasks, filter.SortKey, filter.Direction)
	return tasks, nil
}

func (s *taskService) Update(ctx context.Context, id int64, in models.TaskInput) (*models.Task, error) {
	task, err := s.repo.Update(ctx, id, func(t *models.Task) error {
		return applyTaskInput(t, in)
	})
	if err != nil {
		return nil, notFoundOr("task", strconv.FormatInt(id, 10), err)
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	return notFoundOr("task", strconv.FormatInt(id, 10), s.repo.Delete(ctx, id))
}

func (s *taskService) ToggleStatus(ctx context.Context, id int64) (*models.Task, error) {
	task, err := s.repo.Update(ctx, id, func(t *models.Task) error {
		if t.Status == models.StatusCompleted {
			t.Status = models.StatusPending
		} else {
			t.Status = models.StatusCompleted
		}
		return nil
	})
	if err != nil {
		return nil, notFoundOr("task", strconv.FormatInt(id, 10), err)
	}
	return task, nil
}

func applyTaskInput(t *models.Task, in models.TaskInput) error {
	v := &ValidationError{}
	if in.Title != nil {
		t.Title = requiredText(v, "title", in.Title)
	}
	copyText(&t.Description, in.Description)
	if in.AssignedTo != nil {
		t.AssignedTo = requiredText(v, "assignedTo", in.AssignedTo)
	}
	if in.DueDate != nil {
		if raw := requiredText(v, "dueDate", in.DueDate); raw != "" {
			t.DueDate = parseDateField(v, "dueDate", raw)
		}
	}
	if in.Status != nil {
		if !isAllowedTaskStatus(*in.Status) {
			v.add("status", fmt.Sprintf("status %q is not allowed", *in.Status))
		} else {
			t.Status = *in.Status
		}
	}
	if in.Priority != nil {
		if taskPriorityRank(*in.Priority) < 0 {
			v.add("priority", fmt.Sprintf("priority %q is not allowed", *in.Priority))
		} else {
			t.Priority = *in.Priority
		}
	}
	if in.ContactID != nil {
		id := *in.ContactID
		t.ContactID = &id
	}
	return v.orNil()
}

// ---- helpers ----
func isAllowedTaskStatus(s models.TaskStatus) bool {
	return taskStatusRank(s) >= 0
}

func taskStatusRank(s models.TaskStatus) int {
	switch s {
	case models.StatusPending:
		return 0
	case models.StatusInProgress:
		return 1
	case models.StatusCompleted:
		return 2
	}
	return -1
}

func taskPriorityRank(p models.TaskPriority) int {
	switch p {
	case models.PriorityLow:
		return 0
	case models.PriorityMedium:
		return 1
	case models.PriorityHigh:
		return 2
	}
	return -1
}

// sortTasks orders in place; unknown keys fall back to dueDate, unknown directions to asc.
func sortTasks(tasks []models.Task, key, direction string) {
	var compare func(a, b *models.Task) int
	switch key {
	case "title":
		compare = func(a, b *models.Task) int { return strings.Compare(a.Title, b.Title) }
	case "assignedTo":
		compare = func(a, b *models.Task) int { return strings.Compare(a.AssignedTo, b.AssignedTo) }
	case "priority":
		compare = func(a, b *models.Task) int { return taskPriorityRank(a.Priority) - taskPriorityRank(b.Priority) }
	case "status":
		compare = func(a, b *models.Task) int { return taskStatusRank(a.Status) - taskStatusRank(b.Status) }
	default:
		compare = func(a, b *models.Task) int { return a.DueDate.Compare(b.DueDate.Time) }
	}
	desc := direction == "desc"
	sort.SliceStable(tasks, func(i, j int) bool {
		c := compare(&tasks[i], &tasks[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
}
