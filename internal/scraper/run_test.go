package scraper_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouseagents/room-finder/internal/alert"
	"github.com/mouseagents/room-finder/internal/catalog"
	"github.com/mouseagents/room-finder/internal/scraper"
)

// --------------------------------------------------------------------------
// Fakes
// --------------------------------------------------------------------------

type tracking struct {
	checkedAt  time.Time
	notifiedAt *time.Time
}

type fakeStore struct {
	alerts  []alert.Alert
	listErr error

	mu      sync.Mutex
	tracked map[uuid.UUID]tracking
}

func newFakeStore(alerts ...alert.Alert) *fakeStore {
	return &fakeStore{alerts: alerts, tracked: make(map[uuid.UUID]tracking)}
}

func (s *fakeStore) ListActive(ctx context.Context) ([]alert.Alert, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.alerts, nil
}

func (s *fakeStore) UpdateTracking(ctx context.Context, id uuid.UUID, checkedAt time.Time, notifiedAt *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracked[id] = tracking{checkedAt: checkedAt, notifiedAt: notifiedAt}
	return nil
}

type fakeFetcher struct {
	offers map[scraper.Query][]scraper.RoomOffer
	errOn  map[scraper.Query]error

	mu    sync.Mutex
	calls []scraper.Query
}

func (f *fakeFetcher) Fetch(ctx context.Context, q scraper.Query) ([]scraper.RoomOffer, error) {
	f.mu.Lock()
	f.calls = append(f.calls, q)
	f.mu.Unlock()
	if err := f.errOn[q]; err != nil {
		return nil, err
	}
	return f.offers[q], nil
}

type fakeNotifier struct {
	err error

	mu   sync.Mutex
	sent map[uuid.UUID][]scraper.Match
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sent: make(map[uuid.UUID][]scraper.Match)}
}

func (n *fakeNotifier) Send(ctx context.Context, a *alert.Alert, matches []scraper.Match) error {
	if n.err != nil {
		return n.err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent[a.ID] = matches
	return nil
}

func newTestRunner(store *fakeStore, fetcher *fakeFetcher, notifier *fakeNotifier) *scraper.Runner {
	return scraper.NewRunner(store, fetcher, notifier, scraper.RunnerConfig{Workers: 2}, nil)
}

// --------------------------------------------------------------------------
// Tests
// --------------------------------------------------------------------------

func TestRunNotifiesAndTracks(t *testing.T) {
	a := makeAlert("boardwalk-inn", "Water View", day(2025, time.November, 1), day(2025, time.November, 5))
	store := newFakeStore(a)
	q := scraper.Query{
		ResortSlug: "boardwalk-inn", CheckIn: "2025-11-01", CheckOut: "2025-11-05",
		DiscountCode: catalog.StandardCode,
	}
	fetcher := &fakeFetcher{offers: map[scraper.Query][]scraper.RoomOffer{
		q: {{Code: "IC", Price: intPtr(350), DiscountCode: catalog.StandardCode}},
	}}
	notifier := newFakeNotifier()

	result, err := newTestRunner(store, fetcher, notifier).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.AlertsProcessed)
	assert.Equal(t, 1, result.QueriesPlanned)
	assert.Equal(t, 1, result.QueriesIssued)
	assert.Equal(t, 0, result.QueriesFailed)
	assert.Equal(t, 1, result.MatchesFound)
	assert.Equal(t, 1, result.NotificationsSent)
	assert.Empty(t, result.Errors)

	require.Contains(t, notifier.sent, a.ID)
	assert.Equal(t, "Water View", notifier.sent[a.ID][0].RoomCategory)

	rec, ok := store.tracked[a.ID]
	require.True(t, ok)
	require.NotNil(t, rec.notifiedAt)
	assert.Equal(t, rec.checkedAt, *rec.notifiedAt)
}

func TestRunNoMatchesStillTracks(t *testing.T) {
	a := makeAlert("boardwalk-inn", "Water View", day(2025, time.November, 1), day(2025, time.November, 5))
	store := newFakeStore(a)
	fetcher := &fakeFetcher{} // no offers at all
	notifier := newFakeNotifier()

	result, err := newTestRunner(store, fetcher, notifier).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, result.NotificationsSent)
	assert.Empty(t, notifier.sent)

	rec, ok := store.tracked[a.ID]
	require.True(t, ok)
	assert.Nil(t, rec.notifiedAt)
}

func TestRunCooldownSuppressesNotification(t *testing.T) {
	a := makeAlert("boardwalk-inn", "Water View", day(2025, time.November, 1), day(2025, time.November, 5))
	lastSent := time.Now().UTC().Add(-30 * time.Minute)
	a.LastNotificationSent = &lastSent
	store := newFakeStore(a)
	q := scraper.Query{
		ResortSlug: "boardwalk-inn", CheckIn: "2025-11-01", CheckOut: "2025-11-05",
		DiscountCode: catalog.StandardCode,
	}
	fetcher := &fakeFetcher{offers: map[scraper.Query][]scraper.RoomOffer{
		q: {{Code: "IC", Price: intPtr(350), DiscountCode: catalog.StandardCode}},
	}}
	notifier := newFakeNotifier()

	result, err := newTestRunner(store, fetcher, notifier).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.MatchesFound)
	assert.Equal(t, 0, result.NotificationsSent)
	assert.Empty(t, notifier.sent)

	// last_checked_at advances, last_notification_sent does not.
	rec := store.tracked[a.ID]
	assert.Nil(t, rec.notifiedAt)
}

func TestRunSendFailureLeavesAlertEligible(t *testing.T) {
	a := makeAlert("boardwalk-inn", "Water View", day(2025, time.November, 1), day(2025, time.November, 5))
	store := newFakeStore(a)
	q := scraper.Query{
		ResortSlug: "boardwalk-inn", CheckIn: "2025-11-01", CheckOut: "2025-11-05",
		DiscountCode: catalog.StandardCode,
	}
	fetcher := &fakeFetcher{offers: map[scraper.Query][]scraper.RoomOffer{
		q: {{Code: "IC", Price: intPtr(350), DiscountCode: catalog.StandardCode}},
	}}
	notifier := newFakeNotifier()
	notifier.err = errors.New("smtp down")

	result, err := newTestRunner(store, fetcher, notifier).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, result.NotificationsSent)
	assert.NotEmpty(t, result.Errors)

	rec := store.tracked[a.ID]
	assert.Nil(t, rec.notifiedAt)
}

func TestRunQueryFailureScopedToItsAlerts(t *testing.T) {
	a := makeAlert("boardwalk-inn", "Water View", day(2025, time.November, 1), day(2025, time.November, 5))
	b := makeAlert("beach-club-resort", "Water View", day(2025, time.November, 1), day(2025, time.November, 5))
	store := newFakeStore(a, b)

	qa := scraper.Query{
		ResortSlug: "boardwalk-inn", CheckIn: "2025-11-01", CheckOut: "2025-11-05",
		DiscountCode: catalog.StandardCode,
	}
	qb := scraper.Query{
		ResortSlug: "beach-club-resort", CheckIn: "2025-11-01", CheckOut: "2025-11-05",
		DiscountCode: catalog.StandardCode,
	}
	fetcher := &fakeFetcher{
		offers: map[scraper.Query][]scraper.RoomOffer{
			qb: {{Code: "WD", Price: intPtr(500), DiscountCode: catalog.StandardCode}},
		},
		errOn: map[scraper.Query]error{qa: errors.New("upstream 500")},
	}
	notifier := newFakeNotifier()

	result, err := newTestRunner(store, fetcher, notifier).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, result.QueriesIssued)
	assert.Equal(t, 1, result.QueriesFailed)
	assert.Equal(t, 1, result.NotificationsSent)
	assert.NotContains(t, notifier.sent, a.ID)
	assert.Contains(t, notifier.sent, b.ID)

	// Both alerts still get their checked timestamp.
	assert.Len(t, store.tracked, 2)
}

func TestRunFetchesEachQueryOnce(t *testing.T) {
	a := makeAlert("boardwalk-inn", "Water View", day(2025, time.November, 1), day(2025, time.November, 5))
	b := makeAlert("boardwalk-inn", "Resort View", day(2025, time.November, 1), day(2025, time.November, 5))
	store := newFakeStore(a, b)
	q := scraper.Query{
		ResortSlug: "boardwalk-inn", CheckIn: "2025-11-01", CheckOut: "2025-11-05",
		DiscountCode: catalog.StandardCode,
	}
	fetcher := &fakeFetcher{offers: map[scraper.Query][]scraper.RoomOffer{
		q: {
			{Code: "IC", Price: intPtr(350), DiscountCode: catalog.StandardCode},
			{Code: "IL", Price: intPtr(280), DiscountCode: catalog.StandardCode},
		},
	}}
	notifier := newFakeNotifier()

	result, err := newTestRunner(store, fetcher, notifier).Run(context.Background())

	require.NoError(t, err)
	assert.Len(t, fetcher.calls, 1)
	assert.Equal(t, 2, result.NotificationsSent)
	assert.Contains(t, notifier.sent, a.ID)
	assert.Contains(t, notifier.sent, b.ID)
}

func TestRunDLRAlertsShareOneFetch(t *testing.T) {
	// Two DLR alerts with different selected codes and availability types
	// drive exactly one upstream fetch; the discounted alert matches off the
	// offer tags in that single response.
	a := makeAlert("grand-californian-hotel", "Standard View", day(2025, time.November, 1), day(2025, time.November, 5))
	a.SelectedDiscountCodes = []string{"11299"}
	b := makeAlert("grand-californian-hotel", "Standard View", day(2025, time.November, 1), day(2025, time.November, 5))
	b.AvailabilityType = alert.AvailabilityDiscounted
	b.SelectedDiscountCodes = []string{"11302"}
	store := newFakeStore(a, b)

	q := scraper.Query{
		ResortSlug: "grand-californian-hotel", CheckIn: "2025-11-01", CheckOut: "2025-11-05",
		DiscountCode: catalog.StandardCode,
	}
	fetcher := &fakeFetcher{offers: map[scraper.Query][]scraper.RoomOffer{
		q: {
			{Code: "13874720", Price: intPtr(650), DiscountCode: catalog.StandardCode},
			{Code: "13874720", Price: intPtr(600), DiscountCode: "11299", OfferName: "Southern California Offer"},
		},
	}}
	notifier := newFakeNotifier()

	result, err := newTestRunner(store, fetcher, notifier).Run(context.Background())

	require.NoError(t, err)
	assert.Len(t, fetcher.calls, 1)
	assert.Equal(t, 2, result.NotificationsSent)
	require.Contains(t, notifier.sent, b.ID)
	assert.True(t, notifier.sent[b.ID][0].Discounted())
}

func TestRunStoreErrorAborts(t *testing.T) {
	store := newFakeStore()
	store.listErr = errors.New("connection refused")

	_, err := newTestRunner(store, &fakeFetcher{}, newFakeNotifier()).Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load active alerts")
}

func TestRunNoActiveAlerts(t *testing.T) {
	store := newFakeStore()
	fetcher := &fakeFetcher{}

	result, err := newTestRunner(store, fetcher, newFakeNotifier()).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, result.AlertsProcessed)
	assert.Empty(t, fetcher.calls)
}
