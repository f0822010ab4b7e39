package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"qrattendance/constants"
	"qrattendance/services/logger"
	"qrattendance/services/notification"
)

type LogStatus int

const (
	LogStatusNotFound LogStatus = iota
	LogStatusAlreadyLogged
	LogStatusLogged
)

// LogResult is the outcome of one visit to a user's logging endpoint.
type LogResult struct {
	Username    string
	Status      LogStatus
	Date        string
	Time        string // time recorded in the cell, existing or new
	Suggestions []string
}

func (r *LogResult) Title() string {
	switch r.Status {
	case LogStatusNotFound:
		return "Not Found"
	case LogStatusAlreadyLogged:
		return "Already Logged"
	default:
		return "Logged"
	}
}

func (r *LogResult) Message() string {
	switch r.Status {
	case LogStatusNotFound:
		return fmt.Sprintf("User \"%s\" was not found.", r.Username)
	case LogStatusAlreadyLogged:
		return fmt.Sprintf("%s has already been logged at %s", r.Username, r.Time)
	default:
		return fmt.Sprintf("%s has been logged successfully", r.Username)
	}
}

func (r *LogResult) Category() string {
	switch r.Status {
	case LogStatusNotFound:
		return constants.CategoryError
	case LogStatusAlreadyLogged:
		return constants.CategoryInfo
	default:
		return constants.CategorySuccess
	}
}

type AttendanceService struct {
	store    Store
	location *time.Location
	now      func() time.Time
	logger   logger.Logger
	notifier notification.Service
}

type AttendanceServiceOptions struct {
	Store    Store
	Location *time.Location // defaults to UTC
	Now      func() time.Time
	Logger   logger.Logger
	Notifier notification.Service
}

func NewAttendanceService(opts AttendanceServiceOptions) *AttendanceService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard{}
	}
	if opts.Notifier == nil {
		opts.Notifier = notification.Noop{}
	}
	return &AttendanceService{
		store:    opts.Store,
		location: opts.Location,
		now:      opts.Now,
		logger:   opts.Logger,
		notifier: opts.Notifier,
	}
}

func (s *AttendanceService) Location() *time.Location {
	return s.location
}

// Log records the current time for username in today's column unless a
// time is already there. An unknown username is reported, not created.
func (s *AttendanceService) Log(ctx context.Context, username string) (*LogResult, error) {
	now := s.now().In(s.location)
	result := &LogResult{
		Username: username,
		Date:     now.Format(constants.DateLayout),
	}

	col, err := s.dateColumn(ctx, result.Date)
	if err != nil {
		return nil, err
	}

	names, err := s.store.NameColumn(ctx)
	if err != nil {
		return nil, err
	}
	row := nameRow(names, username)
	if row == 0 {
		result.Status = LogStatusNotFound
		result.Suggestions = SuggestNames(username, names[min(1, len(names)):])
		s.logger.Info("log attempt for unknown user %q", username)
		return result, nil
	}

	existing, err := s.store.ReadCell(ctx, row, col)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(existing) != "" {
		result.Status = LogStatusAlreadyLogged
		result.Time = existing
		return result, nil
	}

	result.Time = now.Format(constants.TimeLayout)
	if err := s.store.WriteCell(ctx, row, col, result.Time); err != nil {
		return nil, err
	}
	result.Status = LogStatusLogged
	s.logger.Info("logged %q at %s %s (%s)", username, result.Date, result.Time, CellRef(row, col))

	if err := s.notifier.Publish(notification.Event{
		Type:     notification.EventAttendanceLogged,
		Username: username,
		Date:     result.Date,
		Time:     result.Time,
		At:       now,
	}); err != nil {
		s.logger.Error("publish attendance of %q: %v", username, err)
	}
	return result, nil
}

// PrepareToday makes sure today's date column exists.
func (s *AttendanceService) PrepareToday(ctx context.Context) (int, error) {
	return s.dateColumn(ctx, s.now().In(s.location).Format(constants.DateLayout))
}

func (s *AttendanceService) dateColumn(ctx context.Context, date string) (int, error) {
	headers, err := s.store.Headers(ctx)
	if err != nil {
		return 0, err
	}
	if col := indexOf(headers, date); col > 0 {
		return col, nil
	}
	col, err := s.store.EnsureDateColumn(ctx, date)
	if err != nil {
		return 0, err
	}
	s.logger.Info("created date column %s for %s", ColumnLetter(col), date)
	return col, nil
}
