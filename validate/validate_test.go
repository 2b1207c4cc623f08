package validate

import "testing"

func TestEmailShape(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"admin@gmail.com", true},
		{"a@b.c", true},
		{"first.last@sub.domain.org", true},
		{"", false},
		{"plainaddress", false},
		{"@gmail.com", false},
		{"user@", false},
		{"user@gmail", false},
		{"user@.com", false},
		{"user@gmail.", false},
		{"two@@gmail.com", false},
		{"sp ace@gmail.com", false},
	}
	for _, c := range cases {
		if got := EmailShape(c.in); got != c.want {
			t.Errorf("EmailShape(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestAllowedDomain(t *testing.T) {
	p := Policy{AllowedDomainSuffix: "@gmail.com", MinPasswordLength: 6}

	cases := []struct {
		in   string
		want bool
	}{
		{"admin@gmail.com", true},
		{"Admin@GMAIL.COM", true},
		{"user@Gmail.Com", true},
		{"user@yahoo.com", false},
		{"user@gmail.com.evil.org", false},
		{"user@notgmail.org", false},
		{"", false},
	}
	for _, c := range cases {
		if got := p.AllowedDomain(c.in); got != c.want {
			t.Errorf("AllowedDomain(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPasswordAcceptable(t *testing.T) {
	p := Policy{AllowedDomainSuffix: "@gmail.com", MinPasswordLength: 6}

	for _, pw := range []string{"", "a", "12345"} {
		if p.PasswordAcceptable(pw) {
			t.Errorf("PasswordAcceptable(%q) = true, want false", pw)
		}
	}
	for _, pw := range []string{"123456", "admin123", "correct-horse"} {
		if !p.PasswordAcceptable(pw) {
			t.Errorf("PasswordAcceptable(%q) = false, want true", pw)
		}
	}
}
