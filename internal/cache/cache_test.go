package cache

import (
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	c := New()
	c.Set("k", "v", time.Minute)

	if got := c.Get("k"); got != "v" {
		t.Errorf("Get = %v, want v", got)
	}
	if got := c.Get("absent"); got != nil {
		t.Errorf("Get(absent) = %v, want nil", got)
	}
}

func TestExpiry(t *testing.T) {
	c := New()
	c.Set("k", "v", -time.Second)

	if got := c.Get("k"); got != nil {
		t.Errorf("expired entry returned %v", got)
	}
}

func TestDeleteAndClear(t *testing.T) {
	c := New()
	c.SetSlow("a", 1)
	c.SetStatic("b", 2)

	c.Delete("a")
	if c.Get("a") != nil {
		t.Error("deleted entry still present")
	}

	c.Clear()
	if c.Get("b") != nil {
		t.Error("cleared entry still present")
	}
}
