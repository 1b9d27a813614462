package validator

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"portfolio-api/internal/interface/api/rest/dto/auth"
	"portfolio-api/internal/interface/api/rest/dto/chat"
	"portfolio-api/internal/interface/api/rest/dto/message"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe

	maxNameLen       = 200
	maxSubjectLen    = 300
	maxMessageLen    = 5000
	maxChatLen       = 2000
	maxMarkReadBatch = 500
)

var ErrInvalidID = errors.New("invalid id")

func ValidatePage(page string) (int, error) {
	if page == "" {
		return 1, nil
	}
	p, err := strconv.Atoi(page)
	if err != nil || p < 1 {
		return 0, errors.New("invalid page")
	}
	return p, nil
}

// ParseID parses a positive numeric path parameter.
func ParseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	email := strings.ToLower(strings.TrimSpace(r.Email))
	password := r.Password

	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8-72 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateMessage(r message.Request) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(r.Name)
	email := strings.TrimSpace(r.Email)
	subject := strings.TrimSpace(r.Subject)
	body := strings.TrimSpace(r.Message)

	if name == "" {
		errs["name"] = "name is required"
	} else if utf8.RuneCountInString(name) > maxNameLen {
		errs["name"] = "name must be at most 200 characters"
	}

	if email == "" {
		errs["email"] = "email is required"
	} else if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		errs["email"] = "invalid email format"
	}

	if utf8.RuneCountInString(subject) > maxSubjectLen {
		errs["subject"] = "subject must be at most 300 characters"
	}

	if body == "" {
		errs["message"] = "message is required"
	} else if utf8.RuneCountInString(body) > maxMessageLen {
		errs["message"] = "message must be at most 5000 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateMarkRead(r message.MarkReadRequest) map[string]string {
	errs := make(map[string]string)

	switch {
	case len(r.IDs) == 0:
		errs["ids"] = "ids are required"
	case len(r.IDs) > maxMarkReadBatch:
		errs["ids"] = "at most 500 ids per request"
	}
	for _, id := range r.IDs {
		if id == 0 {
			errs["ids"] = "ids must be positive"
			break
		}
	}

	if r.IsRead == nil {
		errs["is_read"] = "is_read is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateChat(r chat.Request) map[string]string {
	errs := make(map[string]string)

	msg := strings.TrimSpace(r.Message)
	if msg == "" {
		errs["message"] = "message is required"
	} else if utf8.RuneCountInString(msg) > maxChatLen {
		errs["message"] = "message must be at most 2000 characters"
	}

	if len(r.SessionID) > 100 {
		errs["session_id"] = "session_id is too long"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
