package bind

import (
	"net/http/httptest"
	"testing"

	perr "folio/internal/platform/errors"
)

type listInput struct {
	Username string `query:"username" validate:"omitempty,min=1"`
	PerPage  int    `query:"per_page"`
	Range    string `query:"range" validate:"omitempty,oneof=last_7_days last_30_days"`
}

func TestQueryBindsFields(t *testing.T) {
	r := httptest.NewRequest("GET", "/?username=ben&per_page=4", nil)
	in, err := Query[listInput](r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Username != "ben" || in.PerPage != 4 {
		t.Fatalf("bound = %+v", in)
	}
}

func TestQueryLenientNumbers(t *testing.T) {
	// a non numeric per_page should bind zero, not fail, so the handler's
	// clamp logic applies the default
	r := httptest.NewRequest("GET", "/?per_page=abc", nil)
	in, err := Query[listInput](r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.PerPage != 0 {
		t.Fatalf("per_page = %d, want 0", in.PerPage)
	}
}

func TestQueryBindsNegativeNumbers(t *testing.T) {
	// negative values bind as-is, flooring them is the handler's clamp job
	r := httptest.NewRequest("GET", "/?per_page=-1", nil)
	in, err := Query[listInput](r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.PerPage != -1 {
		t.Fatalf("per_page = %d, want -1", in.PerPage)
	}
}

func TestQueryMissingParamsLeaveZero(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	in, err := Query[listInput](r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Username != "" || in.PerPage != 0 {
		t.Fatalf("bound = %+v, want zero values", in)
	}
}

func TestQueryValidatesEnum(t *testing.T) {
	r := httptest.NewRequest("GET", "/?range=yesterday", nil)
	_, err := Query[listInput](r)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("code = %d, want validation", perr.CodeOf(err))
	}
	if e, ok := perr.As(err); !ok || e.Field() != "range" {
		t.Fatalf("field = %v, want range", err)
	}
}
