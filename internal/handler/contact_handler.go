package handler

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/abdarrahmanayyaz/portfolio-api/internal/mail"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/pkg/response"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/ratelimit"
)

const (
	minNameChars    = 2
	minMessageChars = 10
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const contactThanks = "Thank you for your message! I'll get back to you soon."

type ContactHandler struct {
	sender  mail.ISender
	limiter *ratelimit.Limiter
	from    string
	to      string
	now     func() time.Time
}

func NewContactHandler(sender mail.ISender, limiter *ratelimit.Limiter, from, to string) *ContactHandler {
	return &ContactHandler{
		sender:  sender,
		limiter: limiter,
		from:    from,
		to:      to,
		now:     time.Now,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	// Company is a honeypot field; real visitors never fill it.
	Company string `json:"company"`
}

func (h *ContactHandler) Submit(c *gin.Context) {
	logger := logutil.GetLogger(c.Request.Context())

	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// Bots that fill the hidden field get a success they can't distinguish
	// from the real one, and nothing is sent.
	if strings.TrimSpace(req.Company) != "" {
		logger.Warn("honeypot tripped", zap.String("ip", c.ClientIP()))
		response.Success(c, http.StatusOK, gin.H{"message": contactThanks})
		return
	}

	if !h.limiter.Allow(contactRateKey(req.Email, c.ClientIP())) {
		response.RateLimited(c, http.StatusTooManyRequests, "Too many messages, please try again later.")
		return
	}

	if fields := validateContact(&req); len(fields) > 0 {
		response.FieldErrors(c, http.StatusBadRequest, "validation failed", fields)
		return
	}

	if h.sender == nil {
		logger.Error("contact form submitted but mail sender is not configured")
		response.Error(c, http.StatusInternalServerError, "contact form is not configured")
		return
	}

	msg := mail.BuildContactMessage(h.from, h.to, mail.ContactFields{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}, h.now())

	emailID, err := h.sender.Send(c.Request.Context(), msg)
	if err != nil {
		logger.Error("contact mail delivery failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "failed to send message")
		return
	}
	logger.Info("contact mail sent", zap.String("email_id", emailID))
	response.Success(c, http.StatusOK, gin.H{"message": contactThanks, "emailId": emailID})
}

// contactRateKey prefers the submitted email so one sender can't spread
// submissions across networks; bare requests fall back to IP.
func contactRateKey(email, ip string) string {
	if e := strings.TrimSpace(strings.ToLower(email)); e != "" {
		return e
	}
	if ip != "" {
		return ip
	}
	return "anonymous"
}

func validateContact(req *contactRequest) map[string]string {
	fields := make(map[string]string)
	if len(strings.TrimSpace(req.Name)) < minNameChars {
		fields["name"] = "Name must be at least 2 characters"
	}
	if !emailRegex.MatchString(strings.TrimSpace(req.Email)) {
		fields["email"] = "A valid email address is required"
	}
	if len(strings.TrimSpace(req.Message)) < minMessageChars {
		fields["message"] = "Message must be at least 10 characters"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
