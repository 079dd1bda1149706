package validate

import "testing"

func TestRUT(t *testing.T) {
	valid := []string{"12.345.678-5", "12345678-5", "11.111.111-1", "66.666.666-6", "76.543.210-3"}
	for _, s := range valid {
		if _, ok := RUT(s); !ok {
			t.Errorf("RUT(%q) should be valid", s)
		}
	}
	invalid := []string{"", "12.345.678-4", "12.345.678", "abc", "12.345.678-X", "1-9-9"}
	for _, s := range invalid {
		if _, ok := RUT(s); ok {
			t.Errorf("RUT(%q) should be invalid", s)
		}
	}
}

func TestRUTCheckDigitK(t *testing.T) {
	// 20.347.878-K: body sums to a verification digit of 10, written K
	if _, ok := RUT("20.347.878-K"); !ok {
		t.Error("K verification digit should validate")
	}
	if _, ok := RUT("20.347.878-k"); !ok {
		t.Error("lowercase k should validate")
	}
}

func TestEmail(t *testing.T) {
	if _, ok := Email("contacto@elsur.cl"); !ok {
		t.Error("valid email rejected")
	}
	for _, s := range []string{"", "no-at-sign", "a@b", "x@y."} {
		if _, ok := Email(s); ok {
			t.Errorf("Email(%q) should be invalid", s)
		}
	}
}

func TestQty(t *testing.T) {
	cases := map[string]int{"": 1, "abc": 1, "0": 1, "-4": 1, "3": 3, " 7 ": 7}
	for in, want := range cases {
		if got := Qty(in); got != want {
			t.Errorf("Qty(%q)=%d want %d", in, got, want)
		}
	}
}

func TestDate(t *testing.T) {
	if _, ok := Date("2026-09-02"); !ok {
		t.Error("valid date rejected")
	}
	if _, ok := Date("02-09-2026"); ok {
		t.Error("reversed date accepted")
	}
}

func TestPassword(t *testing.T) {
	if !Password("Passw0rd!") {
		t.Error("valid password rejected")
	}
	for _, s := range []string{"nouppercase1!", "NOLOWERCASE1!", "NoDigits!!", "NoSymbols11", "x2!A"} {
		if Password(s) {
			t.Errorf("Password(%q) should be invalid", s)
		}
	}
}

func TestID(t *testing.T) {
	if _, ok := ID("arroz-1kg"); !ok {
		t.Error("valid id rejected")
	}
	if _, ok := ID("has spaces"); ok {
		t.Error("id with spaces accepted")
	}
}
