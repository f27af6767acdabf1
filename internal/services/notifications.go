package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/luna/internal/calendar"
	"github.com/terraincognita07/luna/internal/logger"
	"github.com/terraincognita07/luna/internal/models"
)

const (
	ReminderKindPeriod        = "period"
	ReminderKindOvulation     = "ovulation"
	ReminderKindSymptomPrompt = "symptom_prompt"

	maxTrackedReminders = 500
)

type Reminder struct {
	Kind    string        `json:"kind"`
	Day     calendar.Date `json:"day"`
	Message string        `json:"message"`
}

func (reminder Reminder) Key() string {
	return reminder.Kind + ":" + reminder.Day.String()
}

type Notifier interface {
	Notify(ctx context.Context, message string) error
}

type ReminderService struct {
	periods  StatsPeriodReader
	days     StatsDayReader
	settings StatsSettingsReader
	notifier Notifier
	location *time.Location
	leadDays int
	now      func() time.Time

	mu   sync.Mutex
	sent map[string]calendar.Date
}

func NewReminderService(periods StatsPeriodReader, days StatsDayReader, settings StatsSettingsReader, notifier Notifier, location *time.Location, leadDays int) *ReminderService {
	if location == nil {
		location = time.UTC
	}
	return &ReminderService{
		periods:  periods,
		days:     days,
		settings: settings,
		notifier: notifier,
		location: location,
		leadDays: leadDays,
		now:      time.Now,
		sent:     make(map[string]calendar.Date),
	}
}

// Start schedules Run on spec until ctx is cancelled.
func (service *ReminderService) Start(ctx context.Context, spec string) error {
	scheduler := cron.New(cron.WithLocation(service.location))
	if _, err := scheduler.AddFunc(spec, func() { service.Run(ctx) }); err != nil {
		return fmt.Errorf("schedule reminders: %w", err)
	}
	scheduler.Start()

	go func() {
		<-ctx.Done()
		<-scheduler.Stop().Done()
	}()
	return nil
}

// Run delivers every reminder due today that was not delivered yet.
func (service *ReminderService) Run(ctx context.Context) int {
	today := calendar.In(service.now(), service.location)
	reminders, err := service.DueReminders(today)
	if err != nil {
		logger.Log.WithError(err).Error("reminders: load data failed")
		return 0
	}

	delivered := 0
	for _, reminder := range reminders {
		if !service.markSent(reminder) {
			continue
		}
		if err := service.notifier.Notify(ctx, reminder.Message); err != nil {
			service.unmarkSent(reminder)
			logger.Log.WithError(err).WithField("kind", reminder.Kind).Warn("reminders: delivery failed")
			continue
		}
		delivered++
	}
	return delivered
}

func (service *ReminderService) DueReminders(today calendar.Date) ([]Reminder, error) {
	periods, err := service.periods.ListPeriods()
	if err != nil {
		return nil, err
	}
	entries, err := service.days.ListEntries()
	if err != nil {
		return nil, err
	}
	settings, err := service.settings.Load()
	if err != nil {
		return nil, err
	}
	return BuildDueReminders(today, periods, entries, settings, service.leadDays), nil
}

func BuildDueReminders(today calendar.Date, periods []models.Period, entries []models.DayEntry, settings models.Settings, leadDays int) []Reminder {
	config := CycleConfigFromSettings(settings)
	reminders := make([]Reminder, 0, 3)

	if settings.PeriodReminders {
		if prediction, ok := NextPeriodPrediction(periods, config); ok {
			switch daysUntil := prediction.Date.DaysSince(today); {
			case daysUntil == 0:
				reminders = append(reminders, Reminder{
					Kind:    ReminderKindPeriod,
					Day:     today,
					Message: fmt.Sprintf("Luna reminder: your period is expected today (%s).", formatReminderDate(prediction.Date)),
				})
			case daysUntil == leadDays:
				reminders = append(reminders, Reminder{
					Kind:    ReminderKindPeriod,
					Day:     today,
					Message: fmt.Sprintf("Luna reminder: your next period is expected in %d day(s) on %s.", leadDays, formatReminderDate(prediction.Date)),
				})
			}
		}
	}

	if settings.OvulationAlerts {
		if prediction, ok := NextOvulationPrediction(periods, config); ok {
			switch prediction.Date.DaysSince(today) {
			case 0:
				reminders = append(reminders, Reminder{
					Kind:    ReminderKindOvulation,
					Day:     today,
					Message: "Luna reminder: ovulation is predicted for today.",
				})
			case 1:
				reminders = append(reminders, Reminder{
					Kind:    ReminderKindOvulation,
					Day:     today,
					Message: fmt.Sprintf("Luna reminder: ovulation is predicted for tomorrow (%s).", formatReminderDate(prediction.Date)),
				})
			}
		}
	}

	if settings.SymptomPrompts && !hasLoggedDay(today, entries) {
		reminders = append(reminders, Reminder{
			Kind:    ReminderKindSymptomPrompt,
			Day:     today,
			Message: "Luna reminder: how are you feeling today? Log your symptoms and mood.",
		})
	}
	return reminders
}

func hasLoggedDay(day calendar.Date, entries []models.DayEntry) bool {
	for _, entry := range entries {
		if entry.Day == day && !entry.IsEmpty() {
			return true
		}
	}
	return false
}

func formatReminderDate(day calendar.Date) string {
	return day.Time().Format("Jan 2")
}

func (service *ReminderService) markSent(reminder Reminder) bool {
	service.mu.Lock()
	defer service.mu.Unlock()

	key := reminder.Key()
	if _, ok := service.sent[key]; ok {
		return false
	}
	if len(service.sent) >= maxTrackedReminders {
		service.sent = make(map[string]calendar.Date)
	}
	service.sent[key] = reminder.Day
	return true
}

func (service *ReminderService) unmarkSent(reminder Reminder) {
	service.mu.Lock()
	defer service.mu.Unlock()
	delete(service.sent, reminder.Key())
}

// LogNotifier writes reminders to the application log.
type LogNotifier struct {
	log *logrus.Logger
}

func NewLogNotifier(log *logrus.Logger) *LogNotifier {
	if log == nil {
		log = logger.Log
	}
	return &LogNotifier{log: log}
}

func (notifier *LogNotifier) Notify(_ context.Context, message string) error {
	notifier.log.WithField("channel", "log").Info(message)
	return nil
}

// TelegramNotifier posts reminders to a chat through the Bot API.
type TelegramNotifier struct {
	client   *retryablehttp.Client
	endpoint string
	chatID   string
}

func NewTelegramNotifier(botToken string, chatID string) *TelegramNotifier {
	return NewTelegramNotifierWithEndpoint(fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", botToken), chatID)
}

func NewTelegramNotifierWithEndpoint(endpoint string, chatID string) *TelegramNotifier {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 4 * time.Second
	client.HTTPClient.Timeout = 8 * time.Second
	client.Logger = logger.Log

	return &TelegramNotifier{
		client:   client,
		endpoint: endpoint,
		chatID:   chatID,
	}
}

func (notifier *TelegramNotifier) Notify(ctx context.Context, message string) error {
	values := url.Values{}
	values.Set("chat_id", notifier.chatID)
	values.Set("text", message)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, notifier.endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := notifier.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
