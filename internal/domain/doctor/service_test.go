package doctor

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/zeelandhospital/api/internal/platform/apperr"
)

type mockRepo struct {
	mu    sync.Mutex
	items []*Doctor
}

func newMockRepo() *mockRepo {
	return &mockRepo{}
}

func (m *mockRepo) Create(_ context.Context, d *Doctor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.items {
		if existing.Email == d.Email {
			return apperr.Conflict("doctor already registered")
		}
	}
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	m.items = append(m.items, d)
	return nil
}

func (m *mockRepo) FindByEmail(_ context.Context, email string) (*Doctor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.items {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, apperr.NotFound("no doctor with email %q", email)
}

func (m *mockRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.items {
		if d.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func newTestService() *Service {
	return NewService(newMockRepo(), bcrypt.MinCost)
}

func validRequest() RegisterRequest {
	return RegisterRequest{
		Name:     "Dr. Bakker",
		Email:    "bakker@hospital.example",
		Password: "pw1",
	}
}

func TestRegister_StoresHashNotPassword(t *testing.T) {
	svc := newTestService()
	d, err := svc.Register(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.PasswordHash == "pw1" {
		t.Fatal("password stored as submitted instead of hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(d.PasswordHash), []byte("pw1")) != nil {
		t.Error("stored hash does not verify against the submitted password")
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newTestService()
	cases := []RegisterRequest{
		{Email: "a@b.c", Password: "pw"},
		{Name: "Dr. A", Password: "pw"},
		{Name: "Dr. A", Email: "a@b.c"},
	}
	for i, req := range cases {
		_, err := svc.Register(context.Background(), req)
		if !apperr.Is(err, apperr.KindValidation) {
			t.Errorf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Register(context.Background(), validRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dup := validRequest()
	dup.Name = "Dr. Other"
	_, err := svc.Register(context.Background(), dup)
	if !apperr.Is(err, apperr.KindConflict) {
		t.Errorf("expected conflict on duplicate email, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Register(context.Background(), validRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	email, err := svc.Login(context.Background(), "bakker@hospital.example", "pw1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if email != "bakker@hospital.example" {
		t.Errorf("expected doctor email back, got %q", email)
	}
}

func TestLogin_FailuresAreUndifferentiated(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Register(context.Background(), validRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, wrongPW := svc.Login(context.Background(), "bakker@hospital.example", "wrong")
	_, unknown := svc.Login(context.Background(), "nobody@hospital.example", "pw1")

	if !apperr.Is(wrongPW, apperr.KindAuth) {
		t.Errorf("wrong password: expected auth error, got %v", wrongPW)
	}
	if !apperr.Is(unknown, apperr.KindAuth) {
		t.Errorf("unknown email: expected auth error, got %v", unknown)
	}
	if apperr.KindOf(wrongPW) != apperr.KindOf(unknown) {
		t.Error("failure kinds differ between wrong password and unknown email")
	}
}

func TestRegister_Concurrent_OneWinner(t *testing.T) {
	svc := newTestService()

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(context.Background(), validRequest())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	successes, conflicts := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			successes++
		case apperr.Is(err, apperr.KindConflict):
			conflicts++
		default:
			t.Errorf("unexpected error kind: %v", err)
		}
	}
	if successes != 1 || conflicts != 1 {
		t.Errorf("expected exactly 1 success and 1 conflict, got %d and %d", successes, conflicts)
	}
}
