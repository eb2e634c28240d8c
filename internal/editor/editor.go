package editor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/cradoe/biodata/internal/models"
	"github.com/cradoe/biodata/internal/repository"
	"github.com/cradoe/biodata/internal/validator"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUnknownSurface = errors.New("unknown edit surface")

	// ErrSubmit is the only error a failed save reports to the caller; the
	// per-domain causes are logged.
	ErrSubmit = errors.New("failed to save changes, please try again")
)

// ValidationError carries per-field messages keyed "<domain>.<index>.<field>".
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "invalid submission: " + strings.Join(keys, ", ")
}

// Notifier is told which entity types of an owner were rewritten.
type Notifier interface {
	RecordsChanged(ctx context.Context, ownerID string, entities []models.EntityType)
}

type View struct {
	Surface Surface                   `json:"surface"`
	Mode    Mode                      `json:"mode"`
	Domains map[models.EntityType]any `json:"domains"`
}

// DomainRows is the new content of one list.
type DomainRows struct {
	Entity models.EntityType
	Rows   []models.Row
}

type Submission struct {
	Surface Surface
	Domains []DomainRows
}

type Editor struct {
	store    Store
	notifier Notifier
	logger   *slog.Logger
}

func New(store Store, notifier Notifier, logger *slog.Logger) *Editor {
	return &Editor{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Load reads every list of the surface concurrently. The initial mode is
// editing when all of them are empty.
func (e *Editor) Load(ctx context.Context, s Surface, ownerID string) (*View, error) {
	ds, ok := surfaces[s]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSurface, s)
	}

	lists := make([]any, len(ds))
	counts := make([]int, len(ds))

	g, gctx := errgroup.WithContext(ctx)
	for i, d := range ds {
		g.Go(func() error {
			rows, n, err := d.load(gctx, e.store, ownerID)
			if err != nil {
				return fmt.Errorf("load %s: %w", d.entity, err)
			}
			lists[i], counts[i] = rows, n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	view := &View{
		Surface: s,
		Mode:    ModeEditing,
		Domains: make(map[models.EntityType]any, len(ds)),
	}
	for i, d := range ds {
		view.Domains[d.entity] = lists[i]
		if counts[i] > 0 {
			view.Mode = ModeViewing
		}
	}
	return view, nil
}

// Decode turns a JSON body keyed by entity type into a submission. Domains
// missing from the body are left untouched; null or [] clears a domain.
func Decode(s Surface, body map[string]json.RawMessage) (Submission, error) {
	ds, ok := surfaces[s]
	if !ok {
		return Submission{}, fmt.Errorf("%w: %q", ErrUnknownSurface, s)
	}

	known := make(map[string]bool, len(ds))
	sub := Submission{Surface: s}
	for _, d := range ds {
		known[string(d.entity)] = true

		raw, present := body[string(d.entity)]
		if !present {
			continue
		}
		rows, err := d.decode(raw)
		if err != nil {
			return Submission{}, err
		}
		sub.Domains = append(sub.Domains, DomainRows{Entity: d.entity, Rows: rows})
	}

	for key := range body {
		if !known[key] {
			return Submission{}, fmt.Errorf("%q is not part of the %s surface", key, s)
		}
	}
	return sub, nil
}

// Validate checks every row against the required fields of its table.
func Validate(sub Submission) validator.Validator {
	var v validator.Validator

	for _, d := range sub.Domains {
		table, err := repository.Lookup(d.Entity)
		if err != nil {
			v.AddFieldError(string(d.Entity), "unknown record type")
			continue
		}

		for i, row := range d.Rows {
			prefix := fmt.Sprintf("%s.%d.", d.Entity, i)
			values := row.Values()

			for _, field := range table.Required {
				idx := columnIndex(table.Columns, field)
				if idx < 0 || idx >= len(values) {
					continue
				}
				v.CheckField(present(values[idx]), prefix+field, "This field is required")
			}

			if child, ok := row.(models.ChildInformation); ok {
				checkChild(&v, prefix, child)
			}
		}
	}
	return v
}

func checkChild(v *validator.Validator, prefix string, child models.ChildInformation) {
	if validator.NotBlank(child.MaritalStatus) {
		v.CheckField(validator.PermittedValue(child.MaritalStatus, models.MaritalStatuses...),
			prefix+"marital_status", "Must be one of: "+strings.Join(models.MaritalStatuses, ", "))
	}
	if child.Age != nil {
		v.CheckField(*child.Age >= 0, prefix+"age", "Must not be negative")
	}
}

func columnIndex(columns []string, name string) int {
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	return -1
}

func present(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return validator.NotBlank(v)
	case *string:
		return v != nil && validator.NotBlank(*v)
	case *int:
		return v != nil
	case *models.Date:
		return v != nil
	default:
		return true
	}
}

// Submit validates sub and then replaces each of its domains concurrently, one
// transaction per domain. Domains are independent: a failure leaves the
// others committed and is reported as ErrSubmit.
func (e *Editor) Submit(ctx context.Context, ownerID string, sub Submission) error {
	if v := Validate(sub); v.HasErrors() {
		return &ValidationError{Fields: v.FieldErrors}
	}
	if len(sub.Domains) == 0 {
		return nil
	}

	var (
		mu      sync.Mutex
		written []models.EntityType
		g       errgroup.Group
	)
	for _, d := range sub.Domains {
		g.Go(func() error {
			if err := e.store.ReplaceList(ctx, d.Entity, ownerID, d.Rows); err != nil {
				e.logger.Error("replace list failed", "entity", d.Entity, "owner", ownerID, "error", err)
				return err
			}
			mu.Lock()
			written = append(written, d.Entity)
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()

	if len(written) > 0 && e.notifier != nil {
		e.notifier.RecordsChanged(ctx, ownerID, inSurfaceOrder(sub, written))
	}

	if err != nil {
		return ErrSubmit
	}
	return nil
}

func inSurfaceOrder(sub Submission, written []models.EntityType) []models.EntityType {
	done := make(map[models.EntityType]bool, len(written))
	for _, w := range written {
		done[w] = true
	}

	out := make([]models.EntityType, 0, len(written))
	for _, d := range sub.Domains {
		if done[d.Entity] {
			out = append(out, d.Entity)
		}
	}
	return out
}
