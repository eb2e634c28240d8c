package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cradoe/biodata/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

// RecordRepository reads and writes the personnel records of a single owner.
// Every method resolves its table through the registry, so adding an entity
// type only needs a registry entry and a model.
type RecordRepository interface {
	Stamps(ctx context.Context, entity models.EntityType, ownerID string) ([]models.RecordStamp, error)
	CountUpdatedSince(ctx context.Context, entity models.EntityType, ownerID string, since time.Time) (int, error)

	GetOne(ctx context.Context, entity models.EntityType, ownerID string, dest any) (bool, error)
	List(ctx context.Context, entity models.EntityType, ownerID string, dest any) error
	Spouses(ctx context.Context, maritalID string) ([]models.Spouse, error)
	Snapshot(ctx context.Context, ownerID string) (*models.Snapshot, error)

	ReplaceList(ctx context.Context, entity models.EntityType, ownerID string, rows []models.Row) error
	Upsert(ctx context.Context, entity models.EntityType, ownerID string, row models.Row) (string, error)
	UpsertMarital(ctx context.Context, ownerID string, info *models.MaritalInformation) (string, error)
	SetPhotoURL(ctx context.Context, ownerID, url string) error
}

type RecordRepositoryImpl struct {
	db      *sqlx.DB
	builder sq.StatementBuilderType
	now     func() time.Time
}

func NewRecordRepository(db *sqlx.DB) RecordRepository {
	return &RecordRepositoryImpl{
		db:      db,
		builder: builderFor(db),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// timestamp is truncated to the precision Postgres keeps so that values read
// back compare equal to the ones written.
func (repo *RecordRepositoryImpl) timestamp() time.Time {
	return repo.now().Truncate(time.Microsecond)
}

func (repo *RecordRepositoryImpl) Stamps(ctx context.Context, entity models.EntityType, ownerID string) ([]models.RecordStamp, error) {
	t, err := Lookup(entity)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query, args, err := repo.builder.
		Select("id", "created_at", "updated_at").
		From(t.Name).
		Where(sq.Eq{t.OwnerColumn: ownerID}).
		OrderBy(t.orderBy()...).
		ToSql()
	if err != nil {
		return nil, err
	}

	var stamps []models.RecordStamp
	if err := sqlx.SelectContext(ctx, repo.db, &stamps, query, args...); err != nil {
		return nil, fmt.Errorf("select %s stamps: %w", t.Name, err)
	}

	return stamps, nil
}

// CountUpdatedSince counts the owner's rows whose updated_at is strictly after since.
// Rows that were never updated carry updated_at = created_at and are counted the
// same way.
func (repo *RecordRepositoryImpl) CountUpdatedSince(ctx context.Context, entity models.EntityType, ownerID string, since time.Time) (int, error) {
	t, err := Lookup(entity)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query, args, err := repo.builder.
		Select("COUNT(*)").
		From(t.Name).
		Where(sq.Eq{t.OwnerColumn: ownerID}).
		Where(sq.Gt{"updated_at": since.UTC()}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := sqlx.GetContext(ctx, repo.db, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count %s: %w", t.Name, err)
	}

	return count, nil
}

func (repo *RecordRepositoryImpl) GetOne(ctx context.Context, entity models.EntityType, ownerID string, dest any) (bool, error) {
	t, err := Lookup(entity)
	if err != nil {
		return false, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query, args, err := repo.builder.
		Select(t.selectColumns()...).
		From(t.Name).
		Where(sq.Eq{t.OwnerColumn: ownerID}).
		OrderBy(t.orderBy()...).
		Limit(1).
		ToSql()
	if err != nil {
		return false, err
	}

	err = sqlx.GetContext(ctx, repo.db, dest, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("select %s: %w", t.Name, err)
	}

	return true, nil
}

func (repo *RecordRepositoryImpl) List(ctx context.Context, entity models.EntityType, ownerID string, dest any) error {
	t, err := Lookup(entity)
	if err != nil {
		return err
	}
	return repo.selectRows(ctx, t, ownerID, dest)
}

func (repo *RecordRepositoryImpl) Spouses(ctx context.Context, maritalID string) ([]models.Spouse, error) {
	var spouses []models.Spouse
	if err := repo.selectRows(ctx, spouseTable, maritalID, &spouses); err != nil {
		return nil, err
	}
	return spouses, nil
}

func (repo *RecordRepositoryImpl) selectRows(ctx context.Context, t Table, ownerID string, dest any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query, args, err := repo.builder.
		Select(t.selectColumns()...).
		From(t.Name).
		Where(sq.Eq{t.OwnerColumn: ownerID}).
		OrderBy(t.orderBy()...).
		ToSql()
	if err != nil {
		return err
	}

	if err := sqlx.SelectContext(ctx, repo.db, dest, query, args...); err != nil {
		return fmt.Errorf("select %s: %w", t.Name, err)
	}

	return nil
}

// Snapshot reads every record the owner has. The reads run concurrently and the
// first failure cancels the rest.
func (repo *RecordRepositoryImpl) Snapshot(ctx context.Context, ownerID string) (*models.Snapshot, error) {
	var (
		snap    models.Snapshot
		profile models.Profile
		office  models.OfficeInformation
		general models.GeneralInformation
		marital models.MaritalInformation
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		found, err := repo.GetOne(ctx, models.EntityProfile, ownerID, &profile)
		if found {
			snap.Profile = &profile
		}
		return err
	})
	g.Go(func() error {
		found, err := repo.GetOne(ctx, models.EntityOfficeInfo, ownerID, &office)
		if found {
			snap.Office = &office
		}
		return err
	})
	g.Go(func() error {
		found, err := repo.GetOne(ctx, models.EntityGeneralInfo, ownerID, &general)
		if found {
			snap.General = &general
		}
		return err
	})
	g.Go(func() error {
		found, err := repo.GetOne(ctx, models.EntityMaritalInfo, ownerID, &marital)
		if err != nil || !found {
			return err
		}
		marital.Spouses, err = repo.Spouses(ctx, marital.ID)
		if err != nil {
			return err
		}
		snap.Marital = &marital
		return nil
	})

	g.Go(func() error { return repo.List(ctx, models.EntityChildrenInfo, ownerID, &snap.Children) })
	g.Go(func() error { return repo.List(ctx, models.EntityEducation, ownerID, &snap.Education) })
	g.Go(func() error { return repo.List(ctx, models.EntityDomesticTraining, ownerID, &snap.DomesticTrainings) })
	g.Go(func() error { return repo.List(ctx, models.EntityForeignTraining, ownerID, &snap.ForeignTrainings) })
	g.Go(func() error { return repo.List(ctx, models.EntityForeignTravel, ownerID, &snap.ForeignTravels) })
	g.Go(func() error { return repo.List(ctx, models.EntityForeignPosting, ownerID, &snap.ForeignPostings) })
	g.Go(func() error { return repo.List(ctx, models.EntityLienDeputation, ownerID, &snap.LienDeputations) })

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &snap, nil
}

// ReplaceList deletes every row the owner has in the entity's table and inserts
// rows in their place, inside one transaction. An empty rows clears the domain.
func (repo *RecordRepositoryImpl) ReplaceList(ctx context.Context, entity models.EntityType, ownerID string, rows []models.Row) error {
	t, err := Lookup(entity)
	if err != nil {
		return err
	}
	if !t.IsList() {
		return fmt.Errorf("%w: %s", ErrNotList, entity)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := repo.timestamp()

	return runInTx(ctx, repo.db, func(tx *sqlx.Tx) error {
		return repo.replaceRows(ctx, tx, t, ownerID, rows, now)
	})
}

func (repo *RecordRepositoryImpl) replaceRows(ctx context.Context, q sqlx.ExtContext, t Table, ownerID string, rows []models.Row, now time.Time) error {
	query, args, err := repo.builder.
		Delete(t.Name).
		Where(sq.Eq{t.OwnerColumn: ownerID}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete %s: %w", t.Name, err)
	}

	if len(rows) == 0 {
		return nil
	}

	insert := repo.builder.Insert(t.Name).Columns(t.insertColumns()...)
	for i, row := range rows {
		// rows keep their submitted order through created_at
		stamp := now.Add(time.Duration(i) * time.Microsecond)

		values, err := t.insertValues(uuid.NewString(), ownerID, row, stamp)
		if err != nil {
			return err
		}
		insert = insert.Values(values...)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return err
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert %s: %w", t.Name, err)
	}

	return nil
}

// Upsert creates the owner's singular record on first save and updates it in
// place afterwards. It returns the row id.
func (repo *RecordRepositoryImpl) Upsert(ctx context.Context, entity models.EntityType, ownerID string, row models.Row) (string, error) {
	t, err := Lookup(entity)
	if err != nil {
		return "", err
	}
	if t.IsList() {
		return "", fmt.Errorf("%w: %s", ErrNotSingular, entity)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := repo.timestamp()

	var id string
	err = runInTx(ctx, repo.db, func(tx *sqlx.Tx) error {
		var err error
		id, err = repo.upsertRow(ctx, tx, t, ownerID, row, now)
		return err
	})

	return id, err
}

// UpsertMarital saves the marital record and replaces its spouses in the same transaction.
func (repo *RecordRepositoryImpl) UpsertMarital(ctx context.Context, ownerID string, info *models.MaritalInformation) (string, error) {
	t, err := Lookup(models.EntityMaritalInfo)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := repo.timestamp()

	spouses := make([]models.Row, len(info.Spouses))
	for i := range info.Spouses {
		spouses[i] = info.Spouses[i]
	}

	var id string
	err = runInTx(ctx, repo.db, func(tx *sqlx.Tx) error {
		var err error
		id, err = repo.upsertRow(ctx, tx, t, ownerID, info, now)
		if err != nil {
			return err
		}
		return repo.replaceRows(ctx, tx, spouseTable, id, spouses, now)
	})

	return id, err
}

func (repo *RecordRepositoryImpl) upsertRow(ctx context.Context, q sqlx.ExtContext, t Table, ownerID string, row models.Row, now time.Time) (string, error) {
	values := row.Values()
	if len(values) != len(t.Columns) {
		return "", fmt.Errorf("%s: got %d values for %d columns", t.Name, len(values), len(t.Columns))
	}

	query, args, err := repo.builder.
		Select("id").
		From(t.Name).
		Where(sq.Eq{t.OwnerColumn: ownerID}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", err
	}

	var id string
	err = sqlx.GetContext(ctx, q, &id, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		id = uuid.NewString()
		if t.OwnerColumn == "id" {
			id = ownerID
		}

		insertValues, err := t.insertValues(id, ownerID, row, now)
		if err != nil {
			return "", err
		}

		query, args, err := repo.builder.
			Insert(t.Name).
			Columns(t.insertColumns()...).
			Values(insertValues...).
			ToSql()
		if err != nil {
			return "", err
		}

		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return "", fmt.Errorf("insert %s: %w", t.Name, err)
		}
		return id, nil
	}
	if err != nil {
		return "", fmt.Errorf("select %s: %w", t.Name, err)
	}

	update := repo.builder.Update(t.Name).Where(sq.Eq{"id": id})
	for i, col := range t.Columns {
		update = update.Set(col, values[i])
	}
	update = update.Set("updated_at", now)

	query, args, err = update.ToSql()
	if err != nil {
		return "", err
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return "", fmt.Errorf("update %s: %w", t.Name, err)
	}

	return id, nil
}

// SetPhotoURL stores the uploaded photo on the owner's profile, creating an
// otherwise empty profile when none exists yet.
func (repo *RecordRepositoryImpl) SetPhotoURL(ctx context.Context, ownerID, url string) error {
	t, err := Lookup(models.EntityProfile)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := repo.timestamp()

	return runInTx(ctx, repo.db, func(tx *sqlx.Tx) error {
		query, args, err := repo.builder.
			Update(t.Name).
			Set("photo_url", url).
			Set("updated_at", now).
			Where(sq.Eq{t.OwnerColumn: ownerID}).
			ToSql()
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("update %s photo: %w", t.Name, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected > 0 {
			return nil
		}

		query, args, err = repo.builder.
			Insert(t.Name).
			Columns("id", "photo_url", "created_at", "updated_at").
			Values(ownerID, url, now, now).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert %s: %w", t.Name, err)
		}
		return nil
	})
}
