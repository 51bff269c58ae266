package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"todolist/internal/adapter/http/mapper"
	"todolist/internal/adapter/http/middleware"
	"todolist/internal/adapter/http/validation"
	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
	"todolist/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	// Unknown sort values leave the default newest-first order.
	query := domain.ListTasksQuery{Sort: domain.SortCriterion(c.Query("sort"))}
	if raw, ok := c.GetQuery("category"); ok && raw != "" {
		category, valid := domain.ParseCategory(raw)
		if !valid {
			verr := &domain.ValidationError{}
			verr.Add(domain.FieldCategory, domain.ReasonInvalidValue)
			respondError(c, lang, verr, apierrors.MsgFailListTodos)
			return
		}
		query.Category = &category
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), query)
	if err != nil {
		respondError(c, lang, err, apierrors.MsgFailListTodos)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItems(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, lang, err, apierrors.MsgFailGetTodo, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	raw, ok := bindObject(c, lang, apierrors.MsgInvalidTodoPayload)
	if !ok {
		return
	}
	input, err := validation.BuildCreateTaskInput(raw)
	if err != nil {
		respondError(c, lang, err, apierrors.MsgFailCreateTodo)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		respondError(c, lang, err, apierrors.MsgFailCreateTodo)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTodoItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	raw, ok := bindObject(c, lang, apierrors.MsgInvalidTodoPayload)
	if !ok {
		return
	}
	input, err := validation.BuildUpdateTaskInput(raw)
	if err != nil {
		respondError(c, lang, err, apierrors.MsgFailUpdateTodo)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input)
	if err != nil {
		respondError(c, lang, err, apierrors.MsgFailUpdateTodo, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	deleted, err := h.taskService.DeleteTask(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, lang, err, apierrors.MsgFailDeleteTodo, zap.Uint64("task_id", taskID))
		return
	}
	if !deleted {
		respondError(c, lang, domain.ErrTaskNotFound, apierrors.MsgFailDeleteTodo)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) ToggleTaskCompletion(c *gin.Context) {
	lang := middleware.GetLang(c)
	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.ToggleTaskCompletion(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, lang, err, apierrors.MsgFailToggleTodo, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(task))
}

// parseTaskID accepts positive ids up to MaxInt64, the range SQL drivers can
// bind.
func parseTaskID(c *gin.Context, lang string) (uint64, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil || taskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoID, lang),
		)
		return 0, false
	}
	return taskID, true
}

// bindObject decodes the body as a JSON object, keeping each value raw so
// validation can tell absent, null and mistyped fields apart.
func bindObject(c *gin.Context, lang, msgKey string) (map[string]json.RawMessage, bool) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil || raw == nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, msgKey, lang),
		)
		return nil, false
	}
	return raw, true
}
