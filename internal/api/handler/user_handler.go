package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nify/user-portal/internal/api/metrics"
	"github.com/nify/user-portal/internal/api/middleware"
	"github.com/nify/user-portal/internal/core/domain"
	"github.com/nify/user-portal/internal/core/ports"
)

// UserHandler exposes the public registration endpoint and the admin-only
// user management CRUD.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// --- Request types ---

type createUserRequest struct {
	Nickname string `json:"nickname" validate:"required"`
	Whatsapp string `json:"whatsapp"`
	RealName string `json:"realName"`
}

// updateUserRequest uses pointers so that an omitted JSON key stays nil and
// the matching field is left untouched, while an explicit blank clears it.
type updateUserRequest struct {
	Nickname *string `json:"nickname"`
	Whatsapp *string `json:"whatsapp"`
	RealName *string `json:"realName"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}

// Register handles public self-registration.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Registration details"
// @Success      200   {object}  ports.UserProjection
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(c.Request().Context(), ports.CreateUserInput{
		Nickname: req.Nickname,
		Whatsapp: req.Whatsapp,
		RealName: req.RealName,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNicknameTaken) {
			metrics.NicknameConflictsTotal.Inc()
		}
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues("register").Inc()
	return c.JSON(http.StatusOK, user)
}

// List returns every user record, newest first.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   ports.UserProjection
// @Failure      401  {object}  map[string]string
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns a single user record by id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  ports.UserProjection
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Create handles admin-issued user creation. Same rules as Register.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  ports.UserProjection
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Nickname: req.Nickname,
		Whatsapp: req.Whatsapp,
		RealName: req.RealName,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNicknameTaken) {
			metrics.NicknameConflictsTotal.Inc()
		}
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues("admin").Inc()
	return c.JSON(http.StatusCreated, user)
}

// Update applies a partial update to a user record.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  ports.UserProjection
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Nickname: req.Nickname,
		Whatsapp: req.Whatsapp,
		RealName: req.RealName,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNicknameTaken) {
			metrics.NicknameConflictsTotal.Inc()
		}
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete removes a user record. The authenticated admin's own record is
// refused, as is the seeded bootstrap admin.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  okResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	callerID, _ := c.Get(middleware.CtxAdminID).(string)

	deleted, err := h.service.Delete(c.Request().Context(), c.Param("id"), callerID)
	if err != nil {
		return err
	}

	// A no-op delete of an absent id still answers ok but is not a removal.
	if deleted {
		metrics.UsersDeletedTotal.Inc()
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}
