package messaging

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/zeelandhospital/api/internal/platform/apperr"
)

// mockRepo keeps messages in insertion order and sorts thread results
// by creation time with a stable sort, mirroring the pg ordering
// (created_at ASC, seq ASC).
type mockRepo struct {
	mu    sync.Mutex
	items []*Message
	clock time.Time
}

func newMockRepo() *mockRepo {
	return &mockRepo{clock: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (m *mockRepo) Create(_ context.Context, msg *Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg.ID = uuid.New()
	m.clock = m.clock.Add(time.Second)
	msg.CreatedAt = m.clock
	msg.UpdatedAt = m.clock
	m.items = append(m.items, msg)
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range m.items {
		if msg.ID == id {
			copied := *msg
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("message %s not found", id)
}

func (m *mockRepo) Update(_ context.Context, updated *Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range m.items {
		if msg.ID == updated.ID {
			msg.Body = updated.Body
			m.clock = m.clock.Add(time.Second)
			msg.UpdatedAt = m.clock
			updated.CreatedAt = msg.CreatedAt
			updated.UpdatedAt = msg.UpdatedAt
			return nil
		}
	}
	return apperr.NotFound("message %s not found", updated.ID)
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, msg := range m.items {
		if msg.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("message %s not found", id)
}

func (m *mockRepo) ListByParticipant(_ context.Context, participantID string) ([]*Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*Message
	for _, msg := range m.items {
		if msg.From == participantID || msg.To == participantID {
			copied := *msg
			result = append(result, &copied)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func newTestService() *Service {
	return NewService(newMockRepo())
}

func TestSend_Validation(t *testing.T) {
	svc := newTestService()
	cases := []struct{ from, to, body string }{
		{"", "B", "hi"},
		{"A", "", "hi"},
		{"A", "B", ""},
	}
	for i, c := range cases {
		_, err := svc.Send(context.Background(), c.from, c.to, c.body)
		if !apperr.Is(err, apperr.KindValidation) {
			t.Errorf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestSend_RoundTrip(t *testing.T) {
	svc := newTestService()
	sent, err := svc.Send(context.Background(), "A", "B", "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent.CreatedAt.IsZero() {
		t.Error("expected creation timestamp")
	}

	thread, err := svc.Thread(context.Background(), "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(thread) != 1 {
		t.Fatalf("expected 1 message, got %d", len(thread))
	}
	if thread[0].Body != "hi" {
		t.Errorf("expected body hi, got %q", thread[0].Body)
	}
}

func TestThread_CompletenessAndOrder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	m1, _ := svc.Send(ctx, "A", "B", "first")
	m2, _ := svc.Send(ctx, "B", "A", "second")
	m3, _ := svc.Send(ctx, "A", "C", "third")

	threadA, err := svc.Thread(ctx, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(threadA) != 3 {
		t.Fatalf("expected 3 messages for A, got %d", len(threadA))
	}
	for i, want := range []uuid.UUID{m1.ID, m2.ID, m3.ID} {
		if threadA[i].ID != want {
			t.Errorf("thread[%d]: wrong message order", i)
		}
	}
	for i := 1; i < len(threadA); i++ {
		if threadA[i].CreatedAt.Before(threadA[i-1].CreatedAt) {
			t.Error("thread is not ordered ascending by creation time")
		}
	}

	threadB, err := svc.Thread(ctx, "B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(threadB) != 2 {
		t.Fatalf("expected 2 messages for B, got %d", len(threadB))
	}

	threadC, err := svc.Thread(ctx, "C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(threadC) != 1 || threadC[0].ID != m3.ID {
		t.Errorf("expected only the third message for C")
	}
}

func TestThread_EmptyParticipant(t *testing.T) {
	svc := newTestService()
	_, err := svc.Thread(context.Background(), "")
	if !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestUpdate_ReplacesBodyKeepsCreatedAt(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	sent, err := svc.Send(ctx, "A", "B", "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	createdAt := sent.CreatedAt

	updated, err := svc.Update(ctx, sent.ID, "bye")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Body != "bye" {
		t.Errorf("expected updated body bye, got %q", updated.Body)
	}
	if !updated.CreatedAt.Equal(createdAt) {
		t.Error("update mutated the creation timestamp")
	}

	thread, _ := svc.Thread(ctx, "A")
	if len(thread) != 1 || thread[0].Body != "bye" {
		t.Error("thread does not show the updated body")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService()
	_, err := svc.Update(context.Background(), uuid.New(), "bye")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestDelete_ThenThreadAndRepeat(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	sent, err := svc.Send(ctx, "A", "B", "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Delete(ctx, sent.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	thread, _ := svc.Thread(ctx, "A")
	for _, m := range thread {
		if m.ID == sent.ID {
			t.Error("deleted message still present in thread")
		}
	}

	err = svc.Delete(ctx, sent.ID)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("expected not-found on repeated delete, got %v", err)
	}
}
