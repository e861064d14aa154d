package store

import (
	"encoding/json"
	"testing"

	"pocketledger/internal/testutil"
)

func TestPutSetting(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		s, _ := newTestStore(t)

		_, err := s.PutSetting("currency", json.RawMessage(`"EUR"`))
		testutil.AssertNoError(t, err)

		got, err := s.GetSetting("currency")
		testutil.AssertNoError(t, err)
		if string(got.Value) != `"EUR"` {
			t.Errorf("expected %q, got %q", `"EUR"`, string(got.Value))
		}
	})

	t.Run("overwrites_existing_key", func(t *testing.T) {
		s, _ := newTestStore(t)

		_, err := s.PutSetting("theme", json.RawMessage(`"light"`))
		testutil.AssertNoError(t, err)
		_, err = s.PutSetting("theme", json.RawMessage(`"dark"`))
		testutil.AssertNoError(t, err)

		got, err := s.GetSetting("theme")
		testutil.AssertNoError(t, err)
		if string(got.Value) != `"dark"` {
			t.Errorf("expected the later value to win, got %q", string(got.Value))
		}

		all, err := s.ListSettings()
		testutil.AssertNoError(t, err)
		if len(all) != 1 {
			t.Errorf("expected a single record for the key, got %d", len(all))
		}
	})

	t.Run("accepts_structured_values", func(t *testing.T) {
		s, _ := newTestStore(t)

		value := json.RawMessage(`{"monthly_limit":"1500.00","alerts":true}`)
		_, err := s.PutSetting("budget", value)
		testutil.AssertNoError(t, err)

		got, err := s.GetSetting("budget")
		testutil.AssertNoError(t, err)

		var decoded struct {
			MonthlyLimit string `json:"monthly_limit"`
			Alerts       bool   `json:"alerts"`
		}
		testutil.AssertNoError(t, json.Unmarshal(got.Value, &decoded))
		if decoded.MonthlyLimit != "1500.00" || !decoded.Alerts {
			t.Errorf("unexpected decoded value: %+v", decoded)
		}
	})

	t.Run("rejects_empty_key", func(t *testing.T) {
		s, _ := newTestStore(t)

		_, err := s.PutSetting("", json.RawMessage(`1`))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects_malformed_json", func(t *testing.T) {
		s, _ := newTestStore(t)

		_, err := s.PutSetting("broken", json.RawMessage(`{not json`))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetSetting(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		s, _ := newTestStore(t)

		_, err := s.GetSetting("missing")
		testutil.AssertAppError(t, err, "SETTING_NOT_FOUND")
	})
}

func TestListSettings(t *testing.T) {
	t.Run("ordered_by_key", func(t *testing.T) {
		s, _ := newTestStore(t)
		for _, key := range []string{"zebra", "alpha", "middle"} {
			_, err := s.PutSetting(key, json.RawMessage(`true`))
			testutil.AssertNoError(t, err)
		}

		out, err := s.ListSettings()
		testutil.AssertNoError(t, err)

		if len(out) != 3 {
			t.Fatalf("expected 3 settings, got %d", len(out))
		}
		if out[0].Key != "alpha" || out[2].Key != "zebra" {
			t.Errorf("expected key order, got %q, %q, %q", out[0].Key, out[1].Key, out[2].Key)
		}
	})
}

func TestDeleteSetting(t *testing.T) {
	t.Run("removes_record", func(t *testing.T) {
		s, _ := newTestStore(t)

		_, err := s.PutSetting("currency", json.RawMessage(`"USD"`))
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, s.DeleteSetting("currency"))

		_, err = s.GetSetting("currency")
		testutil.AssertAppError(t, err, "SETTING_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		s, _ := newTestStore(t)
		testutil.AssertAppError(t, s.DeleteSetting("missing"), "SETTING_NOT_FOUND")
	})
}
