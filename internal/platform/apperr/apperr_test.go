package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{Validation("name is required"), KindValidation},
		{Conflict("email already registered"), KindConflict},
		{Auth("invalid credentials"), KindAuth},
		{NotFound("message %s not found", "abc"), KindNotFound},
		{Storage(errors.New("conn refused"), "insert patient"), KindStorage},
		{errors.New("plain"), KindUnknown},
		{nil, KindUnknown},
	}
	for _, c := range cases {
		if got := KindOf(c.err); got != c.want {
			t.Errorf("KindOf(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("register patient: %w", Conflict("patient_id taken"))
	if !Is(err, KindConflict) {
		t.Errorf("expected wrapped conflict to keep its kind, got %v", KindOf(err))
	}
}

func TestStorage_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Storage(cause, "list patients")
	if !errors.Is(err, cause) {
		t.Error("expected Storage error to unwrap to its cause")
	}
}

func TestHTTPError_StatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("missing field"), http.StatusBadRequest},
		{Conflict("duplicate"), http.StatusBadRequest},
		{Auth("bad password"), http.StatusUnauthorized},
		{NotFound("gone"), http.StatusNotFound},
		{Storage(errors.New("down"), "query"), http.StatusInternalServerError},
		{errors.New("unclassified"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		he := HTTPError(c.err)
		if he.Code != c.want {
			t.Errorf("HTTPError(%v).Code = %d, want %d", c.err, he.Code, c.want)
		}
	}
}

func TestHTTPError_HidesStorageDetail(t *testing.T) {
	he := HTTPError(Storage(errors.New("pq: password authentication failed"), "insert"))
	if msg, _ := he.Message.(string); msg != "server error" {
		t.Errorf("storage error body leaked detail: %q", msg)
	}
}

func TestHTTPError_AuthBodyIsGeneric(t *testing.T) {
	he := HTTPError(Auth("no patient with identifier %q", "P100"))
	if msg, _ := he.Message.(string); msg != "invalid credentials" {
		t.Errorf("auth error body leaked detail: %q", msg)
	}
}
