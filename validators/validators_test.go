package validators

import (
	"errors"
	"strings"
	"testing"
)

func TestEmailValidator(t *testing.T) {
	cases := []struct {
		email string
		want  error
	}{
		{"", ErrEmailEmpty},
		{"not-an-email", ErrEmailInvalid},
		{"missing@domain@twice", ErrEmailInvalid},
		{strings.Repeat("a", 250) + "@x.io", ErrEmailTooLong},
		{"someone@example.com", nil},
		{"with+tag@example.co.uk", nil},
	}

	for _, c := range cases {
		if got := EmailValidator(c.email); !errors.Is(got, c.want) {
			t.Errorf("EmailValidator(%q) = %v, want %v", c.email, got, c.want)
		}
	}
}

func TestPasswordValidator(t *testing.T) {
	cases := []struct {
		password string
		want     error
	}{
		{"", ErrPasswordEmpty},
		{"short", ErrPasswordTooShort},
		{"1234567", ErrPasswordTooShort},
		{strings.Repeat("p", 73), ErrPasswordTooLong},
		{"12345678", nil},
		{strings.Repeat("p", 72), nil},
	}

	for _, c := range cases {
		if got := PasswordValidator(c.password); !errors.Is(got, c.want) {
			t.Errorf("PasswordValidator(%q) = %v, want %v", c.password, got, c.want)
		}
	}
}

func TestTitleValidator(t *testing.T) {
	if err := TitleValidator(""); !errors.Is(err, ErrTitleEmpty) {
		t.Errorf("empty title = %v, want %v", err, ErrTitleEmpty)
	}
	if err := TitleValidator("   "); !errors.Is(err, ErrTitleEmpty) {
		t.Errorf("blank title = %v, want %v", err, ErrTitleEmpty)
	}
	if err := TitleValidator(strings.Repeat("t", 256)); !errors.Is(err, ErrTitleTooLong) {
		t.Errorf("long title = %v, want %v", err, ErrTitleTooLong)
	}
	if err := TitleValidator("Ship it"); err != nil {
		t.Errorf("valid title rejected: %v", err)
	}
}

func TestStatusValidator(t *testing.T) {
	for _, s := range []string{"active", "completed", "paused"} {
		if err := StatusValidator(s); err != nil {
			t.Errorf("StatusValidator(%q) = %v, want nil", s, err)
		}
	}

	for _, s := range []string{"", "done", "Active"} {
		if err := StatusValidator(s); !errors.Is(err, ErrStatusInvalid) {
			t.Errorf("StatusValidator(%q) = %v, want %v", s, err, ErrStatusInvalid)
		}
	}
}

func TestPriorityValidator(t *testing.T) {
	for p := 0; p <= 3; p++ {
		if err := PriorityValidator(p); err != nil {
			t.Errorf("PriorityValidator(%d) = %v, want nil", p, err)
		}
	}

	for _, p := range []int{-1, 4, 100} {
		if err := PriorityValidator(p); !errors.Is(err, ErrPriorityInvalid) {
			t.Errorf("PriorityValidator(%d) = %v, want %v", p, err, ErrPriorityInvalid)
		}
	}
}
