package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
	"justice-airdrop.backend/internal/interfaces/http/response"
	"justice-airdrop.backend/internal/usecases"
)

type taskService interface {
	ListActive(ctx context.Context) ([]*entities.Task, error)
	AddTask(ctx context.Context, input *entities.CreateTaskInput) (*entities.Task, bool, error)
}

type submitService interface {
	Submit(ctx context.Context, user *entities.User, input *entities.SubmitInput) (*entities.SubmitResponse, error)
	ListMine(ctx context.Context, userID uint) ([]*entities.Submission, error)
}

// TaskHandler handles the task catalog and proof submissions
type TaskHandler struct {
	taskUsecase       taskService
	submissionUsecase submitService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskUsecase *usecases.TaskUsecase, submissionUsecase *usecases.SubmissionUsecase) *TaskHandler {
	return &TaskHandler{taskUsecase: taskUsecase, submissionUsecase: submissionUsecase}
}

// ListTasks lists active tasks
// GET /api/v1/tasks/list
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskUsecase.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if tasks == nil {
		tasks = []*entities.Task{}
	}
	response.Success(c, http.StatusOK, gin.H{"tasks": tasks})
}

// Submit stores a proof for a task
// POST /api/v1/tasks/submit (multipart: task_id, proof_text, file)
func (h *TaskHandler) Submit(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var taskID uint64
	if raw := strings.TrimSpace(c.PostForm("task_id")); raw != "" {
		taskID, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid task_id"))
			return
		}
	}

	file, closeFile, err := formAttachment(c, "file")
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeFile()

	result, err := h.submissionUsecase.Submit(c.Request.Context(), user, &entities.SubmitInput{
		TaskID:    uint(taskID),
		ProofText: c.PostForm("proof_text"),
		File:      file,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// MySubmissions lists the caller's submissions
// GET /api/v1/tasks/my_submissions
func (h *TaskHandler) MySubmissions(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.submissionUsecase.ListMine(c.Request.Context(), user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []*entities.Submission{}
	}
	response.Success(c, http.StatusOK, gin.H{"submissions": items})
}

// AddTask creates a task and announces it to the review channel
// POST /api/v1/admin/add_task
func (h *TaskHandler) AddTask(c *gin.Context) {
	var input entities.CreateTaskInput
	if !bindJSON(c, &input) {
		response.Error(c, domainerrors.BadRequest("Invalid task payload"))
		return
	}

	task, notified, err := h.taskUsecase.AddTask(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"ok":                      true,
		"task_id":                 task.ID,
		"notified_review_channel": notified,
	})
}
