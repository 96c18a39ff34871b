package handlers

import (
	"context"
	"errors"
	"net/http"

	request "cfr_notifier/internal/adapter/http/dto/request"
	response "cfr_notifier/internal/adapter/http/dto/response"
	"cfr_notifier/internal/usecase"
	"cfr_notifier/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidConfirmationPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing appointmentId or type", http.StatusBadRequest)
)

// NotificationHandler serves the appointment notification workflows.
type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// SendConfirmation godoc
// @Summary      Send an appointment confirmation or status update
// @Description  Delivers by email and email-to-SMS, then records the outcome on the appointment.
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SendConfirmationRequest  true  "Appointment and notification type"
// @Success      200      {object}  response.ConfirmationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /api/send-confirmation [post]
func (h *NotificationHandler) SendConfirmation(c *gin.Context) {
	var payload request.SendConfirmationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfirmationPayload.HTTPStatus, errInvalidConfirmationPayload.ToHTTPError())
		return
	}

	// The run keeps going if the caller disconnects so bookkeeping is never
	// left half-written.
	ctx := context.WithoutCancel(c.Request.Context())

	result, err := h.usecase.SendConfirmation(ctx, payload.ResolveAppointmentID(), payload.ResolveType())
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConfirmationResult(result))
}

// SendReminders godoc
// @Summary      Run the reminder sweep
// @Description  Sends reminders for every enabled appointment starting within the reminder window.
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  response.RemindersResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /api/send-reminders [post]
func (h *NotificationHandler) SendReminders(c *gin.Context) {
	result, err := h.usecase.SendReminders(context.WithoutCancel(c.Request.Context()))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReminderSweep(result))
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAppointmentID):
		return errInvalidConfirmationPayload
	case errors.Is(err, usecase.ErrInvalidNotificationType):
		return pkg.NewDomainErrorSimple("INVALID_NOTIFICATION_TYPE", "Invalid notification type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoContactInfo):
		return pkg.NewDomainErrorSimple("NO_CONTACT_INFO", "No contact info available", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", err.Error(), err, http.StatusInternalServerError)
	}
}
