package helper

import (
	"fmt"
	"sync"
)

// ErrorReporter receives errors and panics raised by background tasks.
type ErrorReporter interface {
	ReportError(err error)
}

type HelperRepository struct {
	baseUrl  string
	WG       *sync.WaitGroup
	reporter ErrorReporter
}

func New(baseUrl string, wg *sync.WaitGroup, reporter ErrorReporter) *HelperRepository {
	return &HelperRepository{
		baseUrl:  baseUrl,
		WG:       wg,
		reporter: reporter,
	}
}

// SetReporter wires the reporter after construction; the error handler
// itself depends on the helper.
func (h *HelperRepository) SetReporter(reporter ErrorReporter) {
	h.reporter = reporter
}

func (h *HelperRepository) NewEmailData() map[string]any {
	data := map[string]any{
		"BaseURL": h.baseUrl,
	}

	return data
}

// BackgroundTask runs fn on its own goroutine. Shutdown waits on WG for
// tasks still in flight.
func (h *HelperRepository) BackgroundTask(fn func() error) {
	h.WG.Add(1)

	go func() {
		defer h.WG.Done()

		defer func() {
			err := recover()
			if err != nil {
				h.report(fmt.Errorf("%s", err))
			}
		}()

		err := fn()
		if err != nil {
			h.report(err)
		}
	}()
}

func (h *HelperRepository) report(err error) {
	if h.reporter != nil {
		h.reporter.ReportError(err)
	}
}
