package utils

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("ACADEMY_TEST_STR", "set")
	if got := GetEnv("ACADEMY_TEST_STR", "default", nil); got != "set" {
		t.Fatalf("got %q", got)
	}
	if got := GetEnv("ACADEMY_TEST_STR_UNSET", "default", nil); got != "default" {
		t.Fatalf("got %q", got)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("ACADEMY_TEST_INT", "42")
	if got := GetEnvAsInt("ACADEMY_TEST_INT", 7, nil); got != 42 {
		t.Fatalf("got %d", got)
	}
	t.Setenv("ACADEMY_TEST_INT", "not-a-number")
	if got := GetEnvAsInt("ACADEMY_TEST_INT", 7, nil); got != 7 {
		t.Fatalf("got %d", got)
	}
	if got := GetEnvAsInt("ACADEMY_TEST_INT_UNSET", 7, nil); got != 7 {
		t.Fatalf("got %d", got)
	}
}

func TestRequireEnv(t *testing.T) {
	t.Setenv("ACADEMY_TEST_SECRET", "s3cret")
	val, err := RequireEnv("ACADEMY_TEST_SECRET", nil)
	if err != nil || val != "s3cret" {
		t.Fatalf("got %q, %v", val, err)
	}
	if _, err := RequireEnv("ACADEMY_TEST_SECRET_UNSET", nil); err == nil {
		t.Fatal("missing secret did not error")
	}
	t.Setenv("ACADEMY_TEST_SECRET", "")
	if _, err := RequireEnv("ACADEMY_TEST_SECRET", nil); err == nil {
		t.Fatal("empty secret did not error")
	}
}
