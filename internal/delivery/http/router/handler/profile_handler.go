package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"locator/config"
	"locator/internal/delivery/http/response"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/service"
	"locator/internal/errors"
	"locator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	format12h = "12h"
	format24h = "24h"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	SettingsUC  usecase.SettingsUsecase
	FieldUC     usecase.FieldUsecase
	HoursUC     usecase.HoursUsecase
	OpenStateUC usecase.OpenStateUsecase
	ProfileUC   usecase.ProfileUsecase
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// ProfileHandler serves the read-only resolution endpoints.
type ProfileHandler struct {
	settingsUC  usecase.SettingsUsecase
	fieldUC     usecase.FieldUsecase
	hoursUC     usecase.HoursUsecase
	openStateUC usecase.OpenStateUsecase
	profileUC   usecase.ProfileUsecase
	clock       service.Clock
	startOfWeek entity.Weekday
	logger      *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	startOfWeek := entity.Monday
	if params.Config != nil && params.Config.Profile != nil {
		if day, ok := entity.ParseWeekday(params.Config.Profile.StartOfWeek); ok {
			startOfWeek = day
		}
	}

	return &ProfileHandler{
		settingsUC:  params.SettingsUC,
		fieldUC:     params.FieldUC,
		hoursUC:     params.HoursUC,
		openStateUC: params.OpenStateUC,
		profileUC:   params.ProfileUC,
		clock:       params.Clock,
		startOfWeek: startOfWeek,
		logger:      params.Logger,
	}
}

// FieldsRequest selects business fields of a subject. No field means all known fields.
type FieldsRequest struct {
	ID     string   `param:"id" validate:"required"`
	Draft  string   `query:"draft"`
	Fields []string `query:"field" validate:"omitempty,dive,required"`
}

// DayRequest selects one day's opening window.
type DayRequest struct {
	ID     string `param:"id" validate:"required"`
	Draft  string `query:"draft"`
	Day    string `param:"day" validate:"required"`
	Format string `query:"format" validate:"omitempty,oneof=12h 24h"`
}

// WeekRequest selects the whole week.
type WeekRequest struct {
	ID          string `param:"id" validate:"required"`
	Draft       string `query:"draft"`
	Format      string `query:"format" validate:"omitempty,oneof=12h 24h"`
	StartOfWeek string `query:"startOfWeek" validate:"omitempty,weekday"`
}

// InstantRequest selects a subject evaluated at an optional instant.
type InstantRequest struct {
	ID    string `param:"id" validate:"required"`
	Draft string `query:"draft"`
	At    string `query:"at"`
}

// BatchOpenRequest asks for the open state of several locations at once. No ids
// means every location.
type BatchOpenRequest struct {
	IDs []string `json:"ids" validate:"omitempty,max=500,dive,required"`
	At  string   `json:"at"`
}

// GetSettings returns the global mode toggles.
func (h *ProfileHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsUC.LoadSettings(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings, "Settings retrieved successfully")
}

// GetFields resolves business fields of a subject.
func (h *ProfileHandler) GetFields(c echo.Context) error {
	var req FieldsRequest
	if err := bind(c, &req); err != nil {
		return h.handleAppError(c, err)
	}

	settings, err := h.settingsUC.LoadSettings(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	fields := entity.KnownFields()
	if len(req.Fields) > 0 {
		fields = make([]entity.Field, 0, len(req.Fields))
		for _, f := range req.Fields {
			fields = append(fields, entity.Field(strings.TrimSpace(f)))
		}
	}

	values := h.fieldUC.ResolveFields(c.Request().Context(), settings, subjectOf(req.ID, req.Draft), fields)

	return response.Success(c, http.StatusOK, values, "Fields resolved successfully")
}

// GetDay resolves one day's opening window.
func (h *ProfileHandler) GetDay(c echo.Context) error {
	var req DayRequest
	if err := bind(c, &req); err != nil {
		return h.handleAppError(c, err)
	}

	day, ok := entity.ParseWeekday(req.Day)
	if !ok {
		return h.handleAppError(c, domainerrors.ErrInvalidWeekday.WithDetails(req.Day))
	}

	settings, err := h.settingsUC.LoadSettings(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	resolved, err := h.hoursUC.ResolveDay(c.Request().Context(), settings, day, subjectOf(req.ID, req.Draft), use24h(req.Format, settings))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, resolved, "Opening hours resolved successfully")
}

// GetWeek resolves the whole week.
func (h *ProfileHandler) GetWeek(c echo.Context) error {
	var req WeekRequest
	if err := bind(c, &req); err != nil {
		return h.handleAppError(c, err)
	}

	startOfWeek := h.startOfWeek
	if day, ok := entity.ParseWeekday(req.StartOfWeek); ok {
		startOfWeek = day
	}

	settings, err := h.settingsUC.LoadSettings(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	week, err := h.hoursUC.ResolveWeek(c.Request().Context(), settings, subjectOf(req.ID, req.Draft), use24h(req.Format, settings), startOfWeek)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, week, "Opening hours resolved successfully")
}

// GetOpenState evaluates whether a subject is open.
func (h *ProfileHandler) GetOpenState(c echo.Context) error {
	var req InstantRequest
	if err := bind(c, &req); err != nil {
		return h.handleAppError(c, err)
	}

	at, err := h.instant(req.At)
	if err != nil {
		return h.handleAppError(c, err)
	}

	settings, err := h.settingsUC.LoadSettings(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	state := h.openStateUC.IsOpen(c.Request().Context(), settings, subjectOf(req.ID, req.Draft), at)

	return response.Success(c, http.StatusOK, map[string]any{
		"is_open":      state,
		"evaluated_at": at,
	}, "Open state evaluated successfully")
}

// BatchOpenState evaluates several locations at one instant.
func (h *ProfileHandler) BatchOpenState(c echo.Context) error {
	var req BatchOpenRequest
	if err := bind(c, &req); err != nil {
		return h.handleAppError(c, err)
	}

	at, err := h.instant(req.At)
	if err != nil {
		return h.handleAppError(c, err)
	}

	settings, err := h.settingsUC.LoadSettings(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	states := h.openStateUC.IsOpenBatch(c.Request().Context(), settings, req.IDs, at)

	return response.Success(c, http.StatusOK, map[string]any{
		"is_open":      states,
		"evaluated_at": at,
	}, "Open states evaluated successfully")
}

// GetProfile returns the fully resolved profile of a subject.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	var req InstantRequest
	if err := bind(c, &req); err != nil {
		return h.handleAppError(c, err)
	}

	at, err := h.instant(req.At)
	if err != nil {
		return h.handleAppError(c, err)
	}

	settings, err := h.settingsUC.LoadSettings(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	profile, err := h.profileUC.EffectiveProfile(c.Request().Context(), settings, subjectOf(req.ID, req.Draft), at)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile resolved successfully")
}

func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}

	return c.Validate(req)
}

// instant parses an RFC 3339 timestamp, defaulting to the clock's now.
func (h *ProfileHandler) instant(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return h.clock.Now(), nil
	}

	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, domainerrors.ErrInvalidInstant.WithDetails(raw)
	}

	return at, nil
}

func (h *ProfileHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

func subjectOf(id, draft string) entity.Subject {
	subject := entity.SubjectFor(id)
	subject.DraftID = strings.TrimSpace(draft)

	return subject
}

// use24h picks the display format, falling back to the stored preference.
func use24h(format string, settings entity.Settings) bool {
	switch format {
	case format24h:
		return true
	case format12h:
		return false
	default:
		return settings.Use24HourFormat
	}
}
