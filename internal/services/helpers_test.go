package services

import (
	"context"

	"github.com/mlearn/backend/internal/catalog"
	"github.com/mlearn/backend/internal/models"
	"github.com/mlearn/backend/internal/payment"
)

// memStateStore is an in-memory StateStore with injectable errors
type memStateStore struct {
	values  map[string]string
	deleted []string

	getErr error
	setErr error
	delErr error
}

func newMemStateStore() *memStateStore {
	return &memStateStore{values: map[string]string{}}
}

func (m *memStateStore) Get(ctx context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *memStateStore) Set(ctx context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *memStateStore) Delete(ctx context.Context, key string) error {
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.values, key)
	m.deleted = append(m.deleted, key)
	return nil
}

// mockGateway is a mock implementation of payment.Gateway
type mockGateway struct {
	err     error
	charges []payment.Options
}

func (m *mockGateway) Charge(ctx context.Context, opts payment.Options) error {
	m.charges = append(m.charges, opts)
	if m.err != nil {
		return m.err
	}
	if opts.OnSuccess != nil {
		opts.OnSuccess(payment.Confirmation{PaymentID: "pay_test"})
	}
	return nil
}

// mockSubscriptionReader is a mock implementation of SubscriptionReader
type mockSubscriptionReader struct {
	active   *models.ActiveSubscription
	discount float64
}

func (m *mockSubscriptionReader) Active(ctx context.Context) *models.ActiveSubscription {
	return m.active
}

func (m *mockSubscriptionReader) CourseDiscount(ctx context.Context) float64 {
	return m.discount
}

// mockDiscountStore is a mock implementation of DiscountStore
type mockDiscountStore struct {
	unlocked    bool
	unlockCalls int
}

func (m *mockDiscountStore) Unlocked(ctx context.Context) bool {
	return m.unlocked
}

func (m *mockDiscountStore) Unlock(ctx context.Context) {
	m.unlocked = true
	m.unlockCalls++
}

func testCatalog() *catalog.Catalog {
	courses := []models.Course{
		{
			ID:         1,
			Title:      "UI Design Masterclass",
			Instructor: "Alice Sommer",
			Price:      100,
			Curriculum: []models.CurriculumModule{
				{
					Module: "Foundations",
					Lessons: []models.Lesson{
						{Title: "Color Theory", Duration: "12:00"},
						{Title: "Typography", Duration: "15:30"},
					},
				},
				{
					Module: "Practice",
					Lessons: []models.Lesson{
						{Title: "Wireframing", Duration: "20:00"},
						{Title: "Prototyping", Duration: "18:45"},
					},
				},
			},
		},
		{
			ID:         2,
			Title:      "Intro to Go",
			Instructor: "Bob Keller",
			Price:      50,
			Curriculum: []models.CurriculumModule{
				{
					Module: "Basics",
					Lessons: []models.Lesson{
						{Title: "Hello World", Duration: "08:00"},
						{Title: "Types", Duration: "14:00"},
						{Title: "Functions", Duration: "16:00"},
					},
				},
			},
		},
		{
			ID:         3,
			Title:      "Empty Shell",
			Instructor: "Nobody",
			Price:      10,
		},
	}

	plans := []models.PricingPlan{
		{Name: "Free", Price: "0", CtaText: "Get Started"},
		{Name: "Basic", Price: "19", CtaText: "Choose Basic"},
		{Name: "Gold", Price: "49", CtaText: "Choose Gold", IsPopular: true, CourseDiscount: 0.8},
		{Name: "Diamond", Price: "Contact Us", CtaText: "Contact Sales", CourseDiscount: 0.8},
	}

	return catalog.NewWithData(courses, plans)
}
