package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	apperrors "qrattendance/errors"
	"qrattendance/services/logger"
	"qrattendance/services/notification"
	"qrattendance/validator"
)

type RegistrationResult struct {
	Name   string
	LogURL string
	QRCode string // data URI of the PNG
}

type RegistrationService struct {
	store    Store
	logger   logger.Logger
	notifier notification.Service
}

type RegistrationServiceOptions struct {
	Store    Store
	Logger   logger.Logger
	Notifier notification.Service
}

func NewRegistrationService(opts RegistrationServiceOptions) *RegistrationService {
	if opts.Logger == nil {
		opts.Logger = logger.Discard{}
	}
	if opts.Notifier == nil {
		opts.Notifier = notification.Noop{}
	}
	return &RegistrationService{
		store:    opts.Store,
		logger:   opts.Logger,
		notifier: opts.Notifier,
	}
}

// LogURL is the personal logging endpoint encoded in a user's QR code.
func LogURL(siteRoot, name string) string {
	return strings.TrimSuffix(siteRoot, "/") + "/log/" + url.PathEscape(name)
}

// Register appends name to the name column and returns its QR code. The
// uniqueness check and the append are separate calls, so two concurrent
// registrations of the same name can both succeed.
func (s *RegistrationService) Register(ctx context.Context, rawName, siteRoot string) (*RegistrationResult, error) {
	if err := validator.ValidateName(rawName); err != nil {
		return nil, err
	}
	name := validator.NormalizeName(rawName)

	names, err := s.store.NameColumn(ctx)
	if err != nil {
		return nil, err
	}
	if indexOf(names, name) > 0 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeUserExists,
			fmt.Sprintf("User \"%s\" already exists.", name), apperrors.ErrUserAlreadyExists)
	}

	if err := s.store.AppendName(ctx, name); err != nil {
		return nil, err
	}
	s.logger.Info("registered user %q", name)

	link := LogURL(siteRoot, name)
	qr, err := QRCodeDataURI(link)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.Publish(notification.Event{
		Type:     notification.EventUserRegistered,
		Username: name,
		At:       time.Now(),
	}); err != nil {
		s.logger.Error("publish registration of %q: %v", name, err)
	}

	return &RegistrationResult{Name: name, LogURL: link, QRCode: qr}, nil
}
