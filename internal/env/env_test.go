package env

import "testing"

func TestGetEnvString(t *testing.T) {
	const key = "DEBEZIUM_CONSUMER_ENV_TEST"

	if got := GetEnvString(key, "fallback"); got != "fallback" {
		t.Errorf("unset: got %q, want fallback", got)
	}

	t.Setenv(key, "broker:9093")
	if got := GetEnvString(key, "fallback"); got != "broker:9093" {
		t.Errorf("set: got %q, want broker:9093", got)
	}

	t.Setenv(key, "")
	if got := GetEnvString(key, "fallback"); got != "" {
		t.Errorf("empty: got %q, want empty string", got)
	}
}
