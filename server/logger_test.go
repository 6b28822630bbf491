package server

import (
	"sync"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestLogger_ConcurrentSet(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })
	l := zaptest.NewLogger(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				SetLogger(l)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if Logger() == nil {
					t.Error("Logger returned nil")
					return
				}
			}
		}()
	}
	wg.Wait()

	if Logger() != l {
		t.Fatal("Logger should return the configured logger")
	}
	SetLogger(nil)
	if Logger() == nil || Logger() == l {
		t.Fatal("SetLogger(nil) should restore the no-op logger")
	}
}
