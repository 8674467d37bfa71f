package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dantalabs/leadscout/internal/entity"
)

func TestInsertBatch_SkipsExistingAndBatchDuplicates(t *testing.T) {
	companyID := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	var insertedNames []string

	tx := &stubTx{
		queryFunc: func(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
			if !strings.Contains(query, "SELECT full_name") {
				return nil, errors.New("unexpected query")
			}
			return &sliceRows{values: []string{"Nguyen Van A"}}, nil
		},
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			insertedNames = append(insertedNames, args[1].(string))
			return &stubRow{scan: func(dest ...any) error {
				*dest[0].(*uuid.UUID) = uuid.New()
				*dest[1].(*time.Time) = time.Now()
				return nil
			}}
		},
	}
	repo := &PGXContactsRepository{pool: &stubPool{
		beginTxFunc: func(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
			return tx, nil
		},
	}}

	batch := []entity.Contact{
		{FullName: "Nguyen Van A", Position: "CEO", Seniority: entity.SeniorityCLevel},
		{FullName: "  Tran Thi B ", Position: "Director", Seniority: entity.SeniorityDirector},
		{FullName: "Tran Thi B", Position: "Director", Seniority: entity.SeniorityDirector},
		{FullName: "   ", Position: "Manager", Seniority: entity.SeniorityManager},
	}

	stored, err := repo.InsertBatch(context.Background(), companyID, batch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected exactly one inserted contact, got %d", len(stored))
	}
	if len(insertedNames) != 1 || insertedNames[0] != "Tran Thi B" {
		t.Fatalf("expected trimmed new name only, got %v", insertedNames)
	}
	if stored[0].CompanyID != companyID {
		t.Fatalf("expected company id stamped on contact")
	}
	if stored[0].Status != entity.ContactStatusNew {
		t.Fatalf("expected NEW default status, got %s", stored[0].Status)
	}
	if !tx.committed {
		t.Fatalf("expected transaction commit")
	}
}

func TestInsertBatch_EmptyBatchWritesNothing(t *testing.T) {
	repo := &PGXContactsRepository{}
	stored, err := repo.InsertBatch(context.Background(), uuid.New(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored != nil {
		t.Fatalf("expected no writes for empty batch")
	}
}

func TestMarkContacted_Success(t *testing.T) {
	var gotArgs []any
	repo := &PGXContactsRepository{pool: &stubPool{
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			gotArgs = args
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
	}}

	id := uuid.New()
	if err := repo.MarkContacted(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gotArgs) != 3 || gotArgs[0] != "CONTACTED" || gotArgs[2] != "NEW" {
		t.Fatalf("unexpected update args: %v", gotArgs)
	}
}

func TestMarkContacted_NotFound(t *testing.T) {
	repo := &PGXContactsRepository{pool: &stubPool{
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 0"), nil
		},
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: func(dest ...any) error { return pgx.ErrNoRows }}
		},
	}}

	err := repo.MarkContacted(context.Background(), uuid.New())
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestMarkContacted_AlreadyContacted(t *testing.T) {
	repo := &PGXContactsRepository{pool: &stubPool{
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 0"), nil
		},
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: func(dest ...any) error {
				*dest[0].(*string) = "CONTACTED"
				return nil
			}}
		},
	}}

	err := repo.MarkContacted(context.Background(), uuid.New())
	if !errors.Is(err, ErrContactAlreadyContacted) {
		t.Fatalf("expected ErrContactAlreadyContacted, got %v", err)
	}
}
