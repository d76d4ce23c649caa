package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		var s sample
		if err := Unmarshal([]byte("name: test\ncount: 3\n"), &s); err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}
		if s.Name != "test" || s.Count != 3 {
			t.Errorf("got %+v", s)
		}
	})

	t.Run("unknown fields tolerated", func(t *testing.T) {
		t.Parallel()

		var s sample
		if err := Unmarshal([]byte("name: test\nextra: true\n"), &s); err != nil {
			t.Errorf("Unmarshal: %v", err)
		}
	})

	t.Run("empty data", func(t *testing.T) {
		t.Parallel()

		var s sample
		if err := Unmarshal(nil, &s); !errors.Is(err, ErrNilData) {
			t.Errorf("err = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()

		if err := Unmarshal([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
			t.Errorf("err = %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		t.Parallel()

		var s sample
		data := []byte("name: " + strings.Repeat("a", MaxInputSize))
		if err := Unmarshal(data, &s); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("err = %v, want ErrInputTooLarge", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		var s sample
		if err := Unmarshal([]byte("name: [unclosed"), &s); err == nil {
			t.Error("expected error for malformed yaml")
		}
	})
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		var s sample
		if err := UnmarshalStrict([]byte("name: test\n"), &s); err != nil {
			t.Fatalf("UnmarshalStrict: %v", err)
		}
		if s.Name != "test" {
			t.Errorf("got %+v", s)
		}
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		t.Parallel()

		var s sample
		if err := UnmarshalStrict([]byte("name: test\ntypo: true\n"), &s); err == nil {
			t.Error("expected error for unknown field")
		}
	})
}
