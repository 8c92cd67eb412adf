package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http/dto"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http/mapper"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http/middleware"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http/session"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http/validation"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/domain"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/ports"
	"github.com/NelsonHennessiAyodeji/altschool-todo/pkg/messages"
)

type TaskHandler struct {
	taskService ports.TaskService
	sessions    *session.Manager
}

func NewTaskHandler(taskService ports.TaskService, sessions *session.Manager) *TaskHandler {
	return &TaskHandler{taskService: taskService, sessions: sessions}
}

func (h *TaskHandler) List(c *gin.Context) {
	lang := middleware.GetLang(c)
	sess, _ := session.Current(c)
	filter := c.Query("status")

	tasks, err := h.taskService.List(c.Request.Context(), sess.UserID, filter)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.String("owner_id", sess.UserID), zap.Error(err))
		c.HTML(http.StatusInternalServerError, "tasks.html", gin.H{
			"Title":         "My Tasks",
			"Username":      sess.Username,
			"Tasks":         []dto.TaskItem{},
			"CurrentFilter": "all",
			"Flashes":       []domain.Flash{{Kind: domain.FlashError, Message: messages.Get(messages.MsgFailListTasks, lang, nil)}},
		})
		return
	}

	currentFilter := filter
	if filter != string(domain.TaskStatusPending) && filter != string(domain.TaskStatusCompleted) {
		currentFilter = "all"
	}

	c.HTML(http.StatusOK, "tasks.html", gin.H{
		"Title":         "My Tasks",
		"Username":      sess.Username,
		"Tasks":         mapper.ToTaskItems(tasks),
		"CurrentFilter": currentFilter,
		"Flashes":       h.sessions.PopFlashes(c),
	})
}

func (h *TaskHandler) ShowNew(c *gin.Context) {
	sess, _ := session.Current(c)
	c.HTML(http.StatusOK, "task_new.html", gin.H{
		"Title":    "Create New Task",
		"Username": sess.Username,
		"Flashes":  h.sessions.PopFlashes(c),
	})
}

func (h *TaskHandler) Create(c *gin.Context) {
	lang := middleware.GetLang(c)
	sess, _ := session.Current(c)

	var form dto.TaskForm
	if err := c.ShouldBind(&form); err != nil {
		h.redirectWithFlash(c, "/tasks/new", domain.FlashError, messages.Get(messages.MsgGenericError, lang, nil))
		return
	}

	input, verr := validation.ValidateTask(form)
	if verr != nil {
		h.redirectWithFlash(c, "/tasks/new", domain.FlashError, verr.Message)
		return
	}

	if _, err := h.taskService.Create(c.Request.Context(), sess.UserID, input); err != nil {
		zap.L().Error("failed to create task", zap.String("owner_id", sess.UserID), zap.Error(err))
		h.redirectWithFlash(c, "/tasks/new", domain.FlashError, messages.Get(messages.MsgGenericError, lang, nil))
		return
	}

	h.redirectWithFlash(c, "/tasks", domain.FlashSuccess, messages.Get(messages.MsgTaskCreated, lang, nil))
}

func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	lang := middleware.GetLang(c)
	sess, _ := session.Current(c)
	taskID := c.Param("id")
	status := domain.TaskStatus(c.PostForm("status"))

	err := h.taskService.SetStatus(c.Request.Context(), sess.UserID, taskID, status)
	switch {
	case err == nil:
		h.redirectWithFlash(c, "/tasks", domain.FlashSuccess,
			messages.Get(messages.MsgTaskMarked, lang, map[string]any{"Status": string(status)}))
	case errors.Is(err, domain.ErrTaskNotFound):
		h.redirectWithFlash(c, "/tasks", domain.FlashError, messages.Get(messages.MsgTaskNotFound, lang, nil))
	case errors.Is(err, domain.ErrInvalidStatus):
		h.redirectWithFlash(c, "/tasks", domain.FlashError, messages.Get(messages.MsgInvalidStatus, lang, nil))
	default:
		zap.L().Error("failed to update task status", zap.String("task_id", taskID), zap.Error(err))
		h.redirectWithFlash(c, "/tasks", domain.FlashError, messages.Get(messages.MsgGenericError, lang, nil))
	}
}

func (h *TaskHandler) Delete(c *gin.Context) {
	lang := middleware.GetLang(c)
	sess, _ := session.Current(c)
	taskID := c.Param("id")

	err := h.taskService.SoftDelete(c.Request.Context(), sess.UserID, taskID)
	switch {
	case err == nil:
		h.redirectWithFlash(c, "/tasks", domain.FlashSuccess, messages.Get(messages.MsgTaskDeleted, lang, nil))
	case errors.Is(err, domain.ErrTaskNotFound):
		h.redirectWithFlash(c, "/tasks", domain.FlashError, messages.Get(messages.MsgTaskNotFound, lang, nil))
	default:
		zap.L().Error("failed to delete task", zap.String("task_id", taskID), zap.Error(err))
		h.redirectWithFlash(c, "/tasks", domain.FlashError, messages.Get(messages.MsgGenericError, lang, nil))
	}
}

// Export returns the caller's non-deleted tasks as JSON. It replaces the
// old HTML app's debug route with a properly authenticated data endpoint.
func (h *TaskHandler) Export(c *gin.Context) {
	lang := middleware.GetLang(c)
	sess, _ := session.Current(c)

	tasks, err := h.taskService.List(c.Request.Context(), sess.UserID, "")
	if err != nil {
		zap.L().Error("failed to export tasks", zap.String("owner_id", sess.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, messages.CreateError(http.StatusInternalServerError, messages.MsgFailListTasks, lang))
		return
	}

	c.JSON(http.StatusOK, dto.TaskExport{
		UserID: sess.UserID,
		Tasks:  mapper.ToTaskItems(tasks),
	})
}

func (h *TaskHandler) redirectWithFlash(c *gin.Context, location string, kind domain.FlashKind, message string) {
	h.sessions.Flash(c, kind, message)
	c.Redirect(http.StatusSeeOther, location)
}
