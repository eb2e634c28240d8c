package helper

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

type collector struct {
	mu   sync.Mutex
	errs []string
}

func (c *collector) ReportError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = append(c.errs, err.Error())
}

func TestBackgroundTask(t *testing.T) {
	defer goleak.VerifyNone(t)

	var wg sync.WaitGroup
	reporter := &collector{}
	h := New("http://localhost:4444", &wg, reporter)

	h.BackgroundTask(func() error { return nil })
	h.BackgroundTask(func() error { return errors.New("publish failed") })
	h.BackgroundTask(func() error { panic("boom") })

	wg.Wait()

	assert.ElementsMatch(t, []string{"publish failed", "boom"}, reporter.errs)
	assert.Equal(t, map[string]any{"BaseURL": "http://localhost:4444"}, h.NewEmailData())
}
