package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "cfr_notifier/internal/adapter/http/dto/request"
	response "cfr_notifier/internal/adapter/http/dto/response"
	"cfr_notifier/internal/usecase"
	"cfr_notifier/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errMissingEmailFields = pkg.NewDomainErrorSimple("MISSING_FIELDS", "Missing fields", http.StatusBadRequest)
	errMissingSMSFields   = pkg.NewDomainErrorSimple("MISSING_FIELDS", "Missing required fields (phoneNumber, carrier, message)", http.StatusBadRequest)
	errEmailSendFailed    = pkg.NewDomainErrorSimple("SEND_FAILED", "Failed to send email", http.StatusInternalServerError)
	errSMSSendFailed      = pkg.NewDomainErrorSimple("SEND_FAILED", "Failed to send SMS", http.StatusInternalServerError)
)

// MessagingHandler exposes the raw email and SMS relays.
type MessagingHandler struct {
	usecase usecase.IMessagingUseCase
}

func NewMessagingHandler(uc usecase.IMessagingUseCase) *MessagingHandler {
	return &MessagingHandler{usecase: uc}
}

// SendEmail godoc
// @Summary      Relay a free-form email
// @Tags         messaging
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SendEmailRequest  true  "Email"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /api/send-email [post]
func (h *MessagingHandler) SendEmail(c *gin.Context) {
	var payload request.SendEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errMissingEmailFields.HTTPStatus, errMissingEmailFields.ToHTTPError())
		return
	}

	err := h.usecase.SendEmail(c.Request.Context(), payload.Recipient, payload.Subject, payload.Body)
	if err != nil {
		appErr := h.mapMessagingError(err, errMissingEmailFields, errEmailSendFailed)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Success: true, Message: "Email sent successfully"})
}

// SendSMS godoc
// @Summary      Relay a text through an email-to-SMS gateway
// @Tags         messaging
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SendSMSRequest  true  "SMS"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /api/send-sms [post]
func (h *MessagingHandler) SendSMS(c *gin.Context) {
	var payload request.SendSMSRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errMissingSMSFields.HTTPStatus, errMissingSMSFields.ToHTTPError())
		return
	}

	err := h.usecase.SendSMS(c.Request.Context(), payload.PhoneNumber, payload.Carrier, payload.Message)
	if err != nil {
		appErr := h.mapMessagingError(err, errMissingSMSFields, errSMSSendFailed)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Success: true, Message: "SMS sent successfully"})
}

func (h *MessagingHandler) mapMessagingError(err error, missing, failed *pkg.AppError) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingFields):
		return missing
	case errors.Is(err, usecase.ErrUnsupportedCarrier):
		return pkg.NewDomainError(
			"UNSUPPORTED_CARRIER",
			"Unsupported carrier. Supported carriers: "+strings.Join(h.usecase.SupportedCarriers(), ", "),
			err,
			http.StatusBadRequest,
		)
	case errors.Is(err, usecase.ErrDeliveryFailed):
		return failed
	default:
		return pkg.NewDomainError(failed.Code, failed.Message, err, http.StatusInternalServerError)
	}
}
