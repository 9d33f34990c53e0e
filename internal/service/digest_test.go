package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"foodrisk/internal/config"
	"foodrisk/internal/domain"
	"foodrisk/internal/service/mocks"
)

type DigestServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	subscriptions *mocks.MockSubscriptionStore
	facts         *mocks.MockFactStore
	deliveries    *mocks.MockDeliveryStore
	txManager     *mocks.MockTransactionManager
	dispatcher    *mocks.MockDispatcher

	service *DigestService
	cfg     config.DigestConfig
	logger  *slog.Logger

	today time.Time
	now   time.Time
	ids   int
}

func (s *DigestServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.subscriptions = mocks.NewMockSubscriptionStore(s.ctrl)
	s.facts = mocks.NewMockFactStore(s.ctrl)
	s.deliveries = mocks.NewMockDeliveryStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.dispatcher = mocks.NewMockDispatcher(s.ctrl)

	s.cfg = config.DigestConfig{MaxAlerts: 50}
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	// Monday 4 March 2024
	s.today = time.Date(2024, 3, 4, 7, 0, 0, 0, time.UTC)
	s.now = s.today.Add(5 * time.Minute)
	s.ids = 0

	s.service = s.newService()
}

func (s *DigestServiceTestSuite) newService() *DigestService {
	svc := NewDigestService(s.subscriptions, s.facts, s.deliveries, s.txManager, s.dispatcher, nil, s.logger, s.cfg)
	svc.now = func() time.Time { return s.now }
	svc.newID = func() string {
		s.ids++
		return fmt.Sprintf("d-%d", s.ids)
	}
	return svc
}

func (s *DigestServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDigestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DigestServiceTestSuite))
}

func (s *DigestServiceTestSuite) expectTransaction() {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func (s *DigestServiceTestSuite) dailyWindow() (time.Time, time.Time) {
	return time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
}

func windowFacts() []domain.AlertFact {
	return []domain.AlertFact{
		{ID: "F1", RawID: "R1", Hazard: "Salmonella", OriginCountry: "Turkey", ProductCategory: "Poultry", RiskLevel: domain.RiskSerious},
		{ID: "F2", RawID: "R1", Hazard: "Listeria", OriginCountry: "Unknown", ProductCategory: "Poultry"},
		{ID: "F3", RawID: "R2", Hazard: "Lead", OriginCountry: "China", ProductCategory: "Food Contact Materials"},
		{ID: "F4", RawID: "R2", Hazard: "Cadmium", OriginCountry: "China", ProductCategory: "Food Contact Materials"},
	}
}

func daily(id string) domain.Subscription {
	return domain.Subscription{ID: id, UserID: "u-" + id, Email: id + "@example.com", Frequency: domain.FrequencyDaily, IsActive: true}
}

func (s *DigestServiceTestSuite) TestRun_DailyDigestWithFilters() {
	ctx := context.Background()
	sub := daily("s1")
	from, to := s.dailyWindow()

	s.subscriptions.EXPECT().ListActive(ctx).Return([]domain.Subscription{sub}, nil)
	s.facts.EXPECT().ListByAlertDate(ctx, from, to).Return(windowFacts(), nil)
	s.subscriptions.EXPECT().FilterRules(ctx, "s1").Return([]domain.FilterRule{
		{FilterID: "f1", RuleType: domain.RuleHazard, RuleValue: "salmonella"},
		{FilterID: "f1", RuleType: domain.RuleCountry, RuleValue: "Turkey"},
	}, nil)
	s.deliveries.EXPECT().DeliveredFactIDs(ctx, "s1").Return(map[string]struct{}{}, nil)

	s.expectTransaction()
	s.deliveries.EXPECT().Create(ctx, &domain.Delivery{
		ID: "d-1", SubscriptionID: "s1", Status: domain.DeliveryPending, CreatedAt: s.now,
	}).Return(nil)
	s.deliveries.EXPECT().AddItems(ctx, "d-1", []string{"F1", "F2"}).Return(nil)

	var sent *domain.DigestMessage
	s.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *domain.DigestMessage) error {
			sent = msg
			return nil
		})
	s.deliveries.EXPECT().UpdateStatus(ctx, "d-1", domain.DeliverySent, &s.now).Return(nil)
	s.subscriptions.EXPECT().MarkDigested(ctx, "s1", s.now).Return(nil)

	stats, err := s.service.Run(ctx, s.today)

	s.Require().NoError(err)
	s.Equal(1, stats.Processed)
	s.Equal(1, stats.Due)
	s.Equal(1, stats.Sent)
	s.Require().Len(stats.Outcomes, 1)
	s.Equal("d-1", stats.Outcomes[0].DeliveryID)
	s.Equal(1, stats.Outcomes[0].Alerts)

	s.Require().NotNil(sent)
	s.Equal(domain.MessageDigest, sent.Kind)
	s.Equal("d-1", sent.DeliveryID)
	s.Equal("s1@example.com", sent.Email)
	s.Equal("u-s1", sent.UserID)
	s.Equal("Daily Digest: 1 Food Safety Alert", sent.Subject)
	s.Equal(from, sent.WindowFrom)
	s.Equal(to, sent.WindowTo)
	s.Require().Len(sent.Alerts, 1)
	s.Equal([]string{"Salmonella", "Listeria"}, sent.Alerts[0].Hazards)
	s.Equal([]string{"Turkey"}, sent.Alerts[0].Countries)
	s.Equal("Turkey", sent.Alerts[0].CountriesLabel)
	s.Equal("Serious", sent.Alerts[0].RiskLabel)
}

func (s *DigestServiceTestSuite) TestRun_NotDueTouchesNothing() {
	ctx := context.Background()
	tuesday := s.today.AddDate(0, 0, 1)

	s.subscriptions.EXPECT().ListActive(ctx).Return([]domain.Subscription{
		{ID: "w1", Email: "w1@example.com", Frequency: domain.FrequencyWeekly},
		{ID: "m1", Email: "m1@example.com", Frequency: domain.FrequencyMonthly},
	}, nil)

	stats, err := s.service.Run(ctx, tuesday)

	s.Require().NoError(err)
	s.Equal(2, stats.Processed)
	s.Equal(0, stats.Due)
	s.False(stats.Outcomes[0].Due)
	s.False(stats.Outcomes[1].Due)
}

func (s *DigestServiceTestSuite) TestRun_ExcludesFullyDeliveredAlerts() {
	ctx := context.Background()

	s.subscriptions.EXPECT().ListActive(ctx).Return([]domain.Subscription{daily("s1")}, nil)
	s.facts.EXPECT().ListByAlertDate(ctx, gomock.Any(), gomock.Any()).Return(windowFacts(), nil)
	s.subscriptions.EXPECT().FilterRules(ctx, "s1").Return(nil, nil)
	s.deliveries.EXPECT().DeliveredFactIDs(ctx, "s1").Return(map[string]struct{}{"F1": {}, "F2": {}, "F3": {}}, nil)

	s.expectTransaction()
	s.deliveries.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	s.deliveries.EXPECT().AddItems(ctx, "d-1", []string{"F3", "F4"}).Return(nil)
	s.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *domain.DigestMessage) error {
			s.Require().Len(msg.Alerts, 1)
			s.Equal("R2", msg.Alerts[0].RawID)
			return nil
		})
	s.deliveries.EXPECT().UpdateStatus(ctx, "d-1", domain.DeliverySent, gomock.Any()).Return(nil)
	s.subscriptions.EXPECT().MarkDigested(ctx, "s1", gomock.Any()).Return(nil)

	stats, err := s.service.Run(ctx, s.today)

	s.Require().NoError(err)
	s.Equal(1, stats.Sent)
}

func (s *DigestServiceTestSuite) TestRun_DailyAllClear() {
	ctx := context.Background()

	s.subscriptions.EXPECT().ListActive(ctx).Return([]domain.Subscription{daily("s1")}, nil)
	s.facts.EXPECT().ListByAlertDate(ctx, gomock.Any(), gomock.Any()).Return(windowFacts(), nil)
	s.subscriptions.EXPECT().FilterRules(ctx, "s1").Return([]domain.FilterRule{
		{RuleType: domain.RuleHazard, RuleValue: "Norovirus"},
	}, nil)
	s.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *domain.DigestMessage) error {
			s.Equal(domain.MessageAllClear, msg.Kind)
			s.Empty(msg.DeliveryID)
			s.Empty(msg.Alerts)
			s.Equal("Daily Digest: No New Food Safety Alerts", msg.Subject)
			return nil
		})
	s.subscriptions.EXPECT().MarkDigested(ctx, "s1", s.now).Return(nil)

	stats, err := s.service.Run(ctx, s.today)

	s.Require().NoError(err)
	s.Equal(1, stats.AllClear)
	s.Equal(0, stats.Sent)
	s.True(stats.Outcomes[0].AllClear)
	s.Empty(stats.Outcomes[0].DeliveryID)
}

func (s *DigestServiceTestSuite) TestRun_WeeklyWithNothingNewSendsNothing() {
	ctx := context.Background()
	sub := domain.Subscription{ID: "w1", Email: "w1@example.com", Frequency: domain.FrequencyWeekly}

	s.subscriptions.EXPECT().ListActive(ctx).Return([]domain.Subscription{sub}, nil)
	s.facts.EXPECT().ListByAlertDate(ctx,
		time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
	).Return(windowFacts(), nil)
	s.subscriptions.EXPECT().FilterRules(ctx, "w1").Return(nil, nil)
	s.deliveries.EXPECT().DeliveredFactIDs(ctx, "w1").Return(map[string]struct{}{"F1": {}, "F2": {}, "F3": {}, "F4": {}}, nil)

	stats, err := s.service.Run(ctx, s.today)

	s.Require().NoError(err)
	s.Equal(1, stats.Due)
	s.Equal(1, stats.Empty)
	s.Equal(0, stats.AllClear)
}

func (s *DigestServiceTestSuite) TestRun_DispatchFailureKeepsItems() {
	ctx := context.Background()

	s.subscriptions.EXPECT().ListActive(ctx).Return([]domain.Subscription{daily("s1")}, nil)
	s.facts.EXPECT().ListByAlertDate(ctx, gomock.Any(), gomock.Any()).Return(windowFacts(), nil)
	s.subscriptions.EXPECT().FilterRules(ctx, "s1").Return(nil, nil)
	s.deliveries.EXPECT().DeliveredFactIDs(ctx, "s1").Return(nil, nil)

	s.expectTransaction()
	s.deliveries.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	s.deliveries.EXPECT().AddItems(ctx, "d-1", []string{"F1", "F2", "F3", "F4"}).Return(nil)
	s.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).Return(errors.New("channel closed"))
	s.deliveries.EXPECT().UpdateStatus(ctx, "d-1", domain.DeliveryFailed, (*time.Time)(nil)).Return(nil)

	stats, err := s.service.Run(ctx, s.today)

	s.Require().NoError(err)
	s.Equal(1, stats.Failed)
	s.Equal(0, stats.Sent)
	outcome := stats.Outcomes[0]
	s.Equal(domain.DeliveryFailed, outcome.Status)
	s.Equal("d-1", outcome.DeliveryID)
	s.Require().Error(outcome.Err)
	s.Contains(outcome.Err.Error(), "dispatch digest")
}

func (s *DigestServiceTestSuite) TestRun_TransactionFailureSkipsDispatch() {
	ctx := context.Background()

	s.subscriptions.EXPECT().ListActive(ctx).Return([]domain.Subscription{daily("s1"), daily("s2")}, nil)
	s.facts.EXPECT().ListByAlertDate(ctx, gomock.Any(), gomock.Any()).Return(windowFacts(), nil)
	s.subscriptions.EXPECT().FilterRules(ctx, gomock.Any()).Return(nil, nil).Times(2)
	s.deliveries.EXPECT().DeliveredFactIDs(ctx, gomock.Any()).Return(nil, nil).Times(2)

	s.expectTransaction()
	s.deliveries.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("unique violation"))

	s.expectTransaction()
	s.deliveries.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	s.deliveries.EXPECT().AddItems(ctx, "d-2", gomock.Any()).Return(nil)
	s.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).Return(nil)
	s.deliveries.EXPECT().UpdateStatus(ctx, "d-2", domain.DeliverySent, gomock.Any()).Return(nil)
	s.subscriptions.EXPECT().MarkDigested(ctx, "s2", gomock.Any()).Return(nil)

	stats, err := s.service.Run(ctx, s.today)

	s.Require().NoError(err)
	s.Equal(2, stats.Processed)
	s.Equal(1, stats.Failed)
	s.Equal(1, stats.Sent)
	s.Contains(stats.Outcomes[0].Err.Error(), "create delivery")
}

func (s *DigestServiceTestSuite) TestRun_MaxAlertsCapsDigest() {
	ctx := context.Background()
	s.cfg.MaxAlerts = 1
	s.service = s.newService()

	s.subscriptions.EXPECT().ListActive(ctx).Return([]domain.Subscription{daily("s1")}, nil)
	s.facts.EXPECT().ListByAlertDate(ctx, gomock.Any(), gomock.Any()).Return(windowFacts(), nil)
	s.subscriptions.EXPECT().FilterRules(ctx, "s1").Return(nil, nil)
	s.deliveries.EXPECT().DeliveredFactIDs(ctx, "s1").Return(nil, nil)

	s.expectTransaction()
	s.deliveries.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	s.deliveries.EXPECT().AddItems(ctx, "d-1", []string{"F1", "F2"}).Return(nil)
	s.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).Return(nil)
	s.deliveries.EXPECT().UpdateStatus(ctx, "d-1", domain.DeliverySent, gomock.Any()).Return(nil)
	s.subscriptions.EXPECT().MarkDigested(ctx, "s1", gomock.Any()).Return(nil)

	stats, err := s.service.Run(ctx, s.today)

	s.Require().NoError(err)
	s.Equal(1, stats.Outcomes[0].Alerts)
}

func (s *DigestServiceTestSuite) TestRun_MissingEmailIsReported() {
	ctx := context.Background()
	sub := daily("s1")
	sub.Email = ""

	s.subscriptions.EXPECT().ListActive(ctx).Return([]domain.Subscription{sub}, nil)

	stats, err := s.service.Run(ctx, s.today)

	s.Require().NoError(err)
	s.Equal(1, stats.Failed)
	s.ErrorIs(stats.Outcomes[0].Err, errNoEmail)
}

func (s *DigestServiceTestSuite) TestRun_ListActiveError() {
	ctx := context.Background()
	s.subscriptions.EXPECT().ListActive(ctx).Return(nil, errors.New("connection refused"))

	stats, err := s.service.Run(ctx, s.today)

	s.Require().Error(err)
	s.Nil(stats)
	s.Contains(err.Error(), "list subscriptions")
}

func (s *DigestServiceTestSuite) TestRun_WindowLoadError() {
	ctx := context.Background()

	s.subscriptions.EXPECT().ListActive(ctx).Return([]domain.Subscription{daily("s1")}, nil)
	s.facts.EXPECT().ListByAlertDate(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	stats, err := s.service.Run(ctx, s.today)

	s.Require().NoError(err)
	s.Equal(1, stats.Failed)
	s.Contains(stats.Outcomes[0].Err.Error(), "list facts")
}

func TestSubject(t *testing.T) {
	tests := []struct {
		kind domain.MessageKind
		freq domain.Frequency
		n    int
		want string
	}{
		{domain.MessageDigest, domain.FrequencyWeekly, 3, "Weekly Digest: 3 Food Safety Alerts"},
		{domain.MessageDigest, domain.FrequencyMonthly, 1, "Monthly Digest: 1 Food Safety Alert"},
		{domain.MessageAllClear, domain.FrequencyDaily, 0, "Daily Digest: No New Food Safety Alerts"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, subject(tt.kind, tt.freq, tt.n))
	}
}
