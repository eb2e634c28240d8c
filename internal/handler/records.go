package handler

import (
	"context"
	"fmt"
	"net/http"

	ctxutil "github.com/cradoe/biodata/internal/context"
	"github.com/cradoe/biodata/internal/errHandler"
	"github.com/cradoe/biodata/internal/file"
	"github.com/cradoe/biodata/internal/models"
	"github.com/cradoe/biodata/internal/repository"
	"github.com/cradoe/biodata/internal/request"
	"github.com/cradoe/biodata/internal/response"
	"github.com/cradoe/biodata/internal/validator"
)

const requiredMessage = "This field is required"

// RecordHandler serves the singular records: profile, office, general and
// marital information, plus the profile photo and the biography views.
type RecordHandler struct {
	Records    repository.RecordRepository
	Notifier   ChangeNotifier
	Uploader   file.Uploader
	ErrHandler *errHandler.ErrorHandler
}

func NewRecordHandler(handler *RecordHandler) *RecordHandler {
	return &RecordHandler{
		Records:    handler.Records,
		Notifier:   handler.Notifier,
		Uploader:   handler.Uploader,
		ErrHandler: handler.ErrHandler,
	}
}

// readOne returns nil when the owner has not saved the record yet.
func readOne[T any](ctx context.Context, records repository.RecordRepository, entity models.EntityType, ownerID string) (*T, error) {
	var dest T
	found, err := records.GetOne(ctx, entity, ownerID, &dest)
	if err != nil || !found {
		return nil, err
	}
	return &dest, nil
}

func (h *RecordHandler) readMarital(ctx context.Context, ownerID string) (*models.MaritalInformation, error) {
	info, err := readOne[models.MaritalInformation](ctx, h.Records, models.EntityMaritalInfo, ownerID)
	if err != nil || info == nil {
		return info, err
	}

	info.Spouses, err = h.Records.Spouses(ctx, info.ID)
	if err != nil {
		return nil, err
	}
	if info.Spouses == nil {
		info.Spouses = []models.Spouse{}
	}
	return info, nil
}

func getRecord[T any](h *RecordHandler, entity models.EntityType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
		defer cancel()

		record, err := readOne[T](ctx, h.Records, entity, ctxutil.ContextGetOwnerID(r))
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
			return
		}

		err = response.JSONOkResponse(w, record, "", nil)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
		}
	}
}

// putRecord decodes, validates and upserts one singular record, then answers
// with the stored version.
func putRecord[T models.Row](h *RecordHandler, entity models.EntityType, validate func(*validator.Validator, *T)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input T
		if err := request.DecodeJSON(w, r, &input); err != nil {
			h.ErrHandler.BadRequest(w, r, err)
			return
		}

		v := validator.Validator{}
		if validate != nil {
			validate(&v, &input)
		}
		if v.HasErrors() {
			h.ErrHandler.FailedValidation(w, r, v.FieldErrors)
			return
		}

		ownerID := ctxutil.ContextGetOwnerID(r)

		ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
		defer cancel()

		if _, err := h.Records.Upsert(ctx, entity, ownerID, input); err != nil {
			h.ErrHandler.ReportServerError(r, fmt.Errorf("save %s: %w", entity, err))
			h.ErrHandler.SubmitFailed(w, r, "failed to save changes, please try again")
			return
		}
		notify(ctx, h.Notifier, ownerID, entity)

		record, err := readOne[T](ctx, h.Records, entity, ownerID)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
			return
		}

		err = response.JSONOkResponse(w, record, "Changes saved", nil)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
		}
	}
}

func validateProfile(v *validator.Validator, p *models.Profile) {
	v.CheckField(validator.NotBlank(p.FullName), "full_name", requiredMessage)
	if p.Email != "" {
		v.CheckField(validator.IsEmail(p.Email), "email", "Must be a valid email address")
	}
}

func (h *RecordHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	getRecord[models.Profile](h, models.EntityProfile)(w, r)
}

func (h *RecordHandler) HandlePutProfile(w http.ResponseWriter, r *http.Request) {
	putRecord(h, models.EntityProfile, validateProfile)(w, r)
}

func (h *RecordHandler) HandleGetOffice(w http.ResponseWriter, r *http.Request) {
	getRecord[models.OfficeInformation](h, models.EntityOfficeInfo)(w, r)
}

func (h *RecordHandler) HandlePutOffice(w http.ResponseWriter, r *http.Request) {
	putRecord[models.OfficeInformation](h, models.EntityOfficeInfo, nil)(w, r)
}

func (h *RecordHandler) HandleGetGeneral(w http.ResponseWriter, r *http.Request) {
	getRecord[models.GeneralInformation](h, models.EntityGeneralInfo)(w, r)
}

func (h *RecordHandler) HandlePutGeneral(w http.ResponseWriter, r *http.Request) {
	putRecord[models.GeneralInformation](h, models.EntityGeneralInfo, nil)(w, r)
}

func (h *RecordHandler) HandleGetMarital(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()

	info, err := h.readMarital(ctx, ctxutil.ContextGetOwnerID(r))
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	err = response.JSONOkResponse(w, info, "", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

// HandlePutMarital saves the marital status together with the full spouse
// list; spouses missing from the body are removed.
func (h *RecordHandler) HandlePutMarital(w http.ResponseWriter, r *http.Request) {
	var input models.MaritalInformation
	if err := request.DecodeJSON(w, r, &input); err != nil {
		h.ErrHandler.BadRequest(w, r, err)
		return
	}

	v := validator.Validator{}
	v.CheckField(validator.NotBlank(input.MaritalStatus), "marital_status", requiredMessage)
	if input.MaritalStatus != "" {
		v.CheckField(validator.PermittedValue(input.MaritalStatus, models.MaritalStatuses...), "marital_status", "Unknown marital status")
	}
	for i, spouse := range input.Spouses {
		v.CheckField(validator.NotBlank(spouse.Name), fmt.Sprintf("spouses.%d.name", i), requiredMessage)
	}
	if v.HasErrors() {
		h.ErrHandler.FailedValidation(w, r, v.FieldErrors)
		return
	}

	ownerID := ctxutil.ContextGetOwnerID(r)

	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()

	if _, err := h.Records.UpsertMarital(ctx, ownerID, &input); err != nil {
		h.ErrHandler.ReportServerError(r, fmt.Errorf("save marital information: %w", err))
		h.ErrHandler.SubmitFailed(w, r, "failed to save changes, please try again")
		return
	}
	notify(ctx, h.Notifier, ownerID, models.EntityMaritalInfo)

	info, err := h.readMarital(ctx, ownerID)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	err = response.JSONOkResponse(w, info, "Changes saved", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}
