package usecases

import (
	"context"
	"fmt"
	"html"
	"strings"

	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
	"justice-airdrop.backend/internal/domain/repositories"
)

// TaskUsecase manages the task catalog
type TaskUsecase struct {
	taskRepo      repositories.TaskRepository
	dispatcher    Dispatcher
	reviewChannel string
}

// NewTaskUsecase creates a new task usecase
func NewTaskUsecase(taskRepo repositories.TaskRepository, dispatcher Dispatcher, reviewChannel string) *TaskUsecase {
	return &TaskUsecase{
		taskRepo:      taskRepo,
		dispatcher:    dispatcher,
		reviewChannel: reviewChannel,
	}
}

// ListActive returns the tasks users can currently submit proof for
func (u *TaskUsecase) ListActive(ctx context.Context) ([]*entities.Task, error) {
	return u.taskRepo.ListActive(ctx)
}

// AddTask creates an active task and announces it on the review channel.
// The returned flag reports whether the announcement was queued.
func (u *TaskUsecase) AddTask(ctx context.Context, input *entities.CreateTaskInput) (*entities.Task, bool, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, false, domainerrors.BadRequest("Missing task title")
	}
	if input.Reward.IsNegative() {
		return nil, false, domainerrors.BadRequest("Reward must not be negative")
	}

	task := &entities.Task{
		Title:  title,
		Reward: input.Reward,
		Active: true,
	}
	if s := strings.TrimSpace(input.Instruction); s != "" {
		task.Instruction.SetValid(s)
	}
	if s := strings.TrimSpace(input.Link); s != "" {
		task.Link.SetValid(s)
	}

	if err := u.taskRepo.Create(ctx, task); err != nil {
		return nil, false, err
	}

	notified := false
	if u.reviewChannel != "" && u.dispatcher != nil {
		notified = u.dispatcher.Enqueue(entities.OutboundMessage{
			ChatID: u.reviewChannel,
			Text:   taskAnnouncement(task),
		})
	}
	return task, notified, nil
}

func taskAnnouncement(task *entities.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New task #%d: %s\nReward: %s", task.ID, html.EscapeString(task.Title), task.Reward.String())
	if task.Instruction.Valid {
		fmt.Fprintf(&b, "\n%s", html.EscapeString(task.Instruction.String))
	}
	if task.Link.Valid {
		fmt.Fprintf(&b, "\n%s", html.EscapeString(task.Link.String))
	}
	return b.String()
}
