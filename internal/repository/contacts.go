package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dantalabs/leadscout/internal/entity"
)

// ContactsRepository describes persistence operations for contacts.
type ContactsRepository interface {
	InsertBatch(ctx context.Context, companyID uuid.UUID, contacts []entity.Contact) ([]entity.Contact, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Contact, error)
	MarkContacted(ctx context.Context, id uuid.UUID) error
}

var (
	// ErrContactNotFound indicates there is no contact row for the given id.
	ErrContactNotFound = errors.New("contact not found")
	// ErrContactAlreadyContacted signals the NEW -> CONTACTED transition was
	// attempted on a contact that already left the NEW state.
	ErrContactAlreadyContacted = errors.New("contact already contacted")
)

// PGXContactsRepository implements ContactsRepository using pgx.
type PGXContactsRepository struct {
	pool pgxPool
}

// NewPGXContactsRepository wires a pgx backed repository.
func NewPGXContactsRepository(pool *pgxpool.Pool) *PGXContactsRepository {
	return &PGXContactsRepository{pool: pool}
}

const insertContactSQL = `
        INSERT INTO contacts (
            company_id,
            full_name,
            position,
            seniority,
            language,
            years_in_company,
            linkedin_url,
            twitter_url,
            facebook_url,
            email,
            is_primary_decision_maker,
            status
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at;
    `

// InsertBatch persists one enrichment batch inside a transaction. Contacts
// whose trimmed full name already exists for the company are skipped, so
// running enrichment twice never duplicates rows.
func (r *PGXContactsRepository) InsertBatch(ctx context.Context, companyID uuid.UUID, contacts []entity.Contact) ([]entity.Contact, error) {
	if len(contacts) == 0 {
		return nil, nil
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("start insert tx: %w", err)
	}
	defer tx.Rollback(ctx)

	existing, err := existingContactNames(ctx, tx, companyID)
	if err != nil {
		return nil, err
	}

	var stored []entity.Contact
	for _, contact := range contacts {
		name := strings.TrimSpace(contact.FullName)
		if name == "" {
			continue
		}
		if _, seen := existing[name]; seen {
			continue
		}
		existing[name] = struct{}{}

		contact.CompanyID = companyID
		contact.FullName = name
		if contact.Status == "" {
			contact.Status = entity.ContactStatusNew
		}

		row := tx.QueryRow(ctx, insertContactSQL,
			companyID,
			contact.FullName,
			contact.Position,
			string(contact.Seniority),
			contact.Language,
			contact.YearsInCompany,
			contact.LinkedInURL,
			contact.TwitterURL,
			contact.FacebookURL,
			contact.Email,
			contact.IsPrimaryDecisionMaker,
			string(contact.Status),
		)
		if err := row.Scan(&contact.ID, &contact.CreatedAt); err != nil {
			return nil, fmt.Errorf("insert contact %q: %w", contact.FullName, err)
		}
		stored = append(stored, contact)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit insert tx: %w", err)
	}

	return stored, nil
}

func existingContactNames(ctx context.Context, tx pgx.Tx, companyID uuid.UUID) (map[string]struct{}, error) {
	rows, err := tx.Query(ctx, `SELECT full_name FROM contacts WHERE company_id = $1`, companyID)
	if err != nil {
		return nil, fmt.Errorf("load existing contacts: %w", err)
	}
	defer rows.Close()

	names := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan contact name: %w", err)
		}
		names[strings.TrimSpace(name)] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact names: %w", err)
	}
	return names, nil
}

const contactColumns = `
            id,
            company_id,
            full_name,
            position,
            seniority,
            language,
            years_in_company,
            linkedin_url,
            twitter_url,
            facebook_url,
            email,
            is_primary_decision_maker,
            status,
            created_at
    `

// ListByCompany returns all contacts for a company, primary decision makers first.
func (r *PGXContactsRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Contact, error) {
	query := "SELECT " + contactColumns + ` FROM contacts
        WHERE company_id = $1
        ORDER BY is_primary_decision_maker DESC, full_name ASC`

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	return scanContacts(rows)
}

// MarkContacted advances the contact's outreach status from NEW to CONTACTED.
// The transition is forward-only and applied at most once.
func (r *PGXContactsRepository) MarkContacted(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE contacts SET status = $1 WHERE id = $2 AND status = $3`,
		string(entity.ContactStatusContacted), id, string(entity.ContactStatusNew),
	)
	if err != nil {
		return fmt.Errorf("update contact status: %w", err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}

	var status string
	err = r.pool.QueryRow(ctx, `SELECT status FROM contacts WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrContactNotFound
		}
		return fmt.Errorf("fetch contact status: %w", err)
	}
	return ErrContactAlreadyContacted
}

func scanContacts(rows pgx.Rows) ([]entity.Contact, error) {
	var contacts []entity.Contact
	for rows.Next() {
		var (
			c           entity.Contact
			seniority   string
			linkedinURL sql.NullString
			twitterURL  sql.NullString
			facebookURL sql.NullString
			email       sql.NullString
			status      string
		)

		err := rows.Scan(
			&c.ID,
			&c.CompanyID,
			&c.FullName,
			&c.Position,
			&seniority,
			&c.Language,
			&c.YearsInCompany,
			&linkedinURL,
			&twitterURL,
			&facebookURL,
			&email,
			&c.IsPrimaryDecisionMaker,
			&status,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}

		c.Seniority = entity.Seniority(seniority)
		c.LinkedInURL = nullStringToPtr(linkedinURL)
		c.TwitterURL = nullStringToPtr(twitterURL)
		c.FacebookURL = nullStringToPtr(facebookURL)
		c.Email = nullStringToPtr(email)
		c.Status = entity.ContactStatus(status)

		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return contacts, nil
}
