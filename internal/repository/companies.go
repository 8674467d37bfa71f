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

	"github.com/dantalabs/leadscout/internal/dto"
	"github.com/dantalabs/leadscout/internal/entity"
)

// CompaniesRepository describes persistence operations for companies.
type CompaniesRepository interface {
	InsertBatch(ctx context.Context, companies []entity.Company) ([]entity.Company, error)
	List(ctx context.Context, filter dto.ListFilter) ([]entity.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)
}

// ErrCompanyNotFound indicates there is no company row for the given id.
var ErrCompanyNotFound = errors.New("company not found")

// PGXCompaniesRepository implements CompaniesRepository using pgx.
type PGXCompaniesRepository struct {
	pool pgxPool
}

// NewPGXCompaniesRepository wires a pgx backed repository.
func NewPGXCompaniesRepository(pool *pgxpool.Pool) *PGXCompaniesRepository {
	return &PGXCompaniesRepository{pool: pool}
}

var _ pgxPool = (*pgxpool.Pool)(nil)

const insertCompanySQL = `
        INSERT INTO companies (
            name,
            website_url,
            google_maps_url,
            industry,
            address,
            phone,
            has_ssl,
            pagespeed_score,
            is_wordpress,
            crm_system,
            company_type,
            employee_count,
            revenue_range,
            status,
            disqualify_reason,
            search_keyword
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING id, created_at;
    `

// InsertBatch persists one scan batch in a single transaction and returns the
// stored records with their generated identifiers.
func (r *PGXCompaniesRepository) InsertBatch(ctx context.Context, companies []entity.Company) ([]entity.Company, error) {
	if len(companies) == 0 {
		return nil, nil
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("start insert tx: %w", err)
	}
	defer tx.Rollback(ctx)

	stored := make([]entity.Company, 0, len(companies))
	for _, company := range companies {
		row := tx.QueryRow(ctx, insertCompanySQL,
			company.Name,
			company.WebsiteURL,
			company.GoogleMapsURL,
			company.Industry,
			company.Address,
			company.Phone,
			company.HasSSL,
			company.PageSpeedScore,
			company.IsWordPress,
			company.CRMSystem,
			company.CompanyType,
			company.EmployeeCount,
			company.RevenueRange,
			string(company.Status),
			company.DisqualifyReason,
			company.SearchKeyword,
		)
		if err := row.Scan(&company.ID, &company.CreatedAt); err != nil {
			return nil, fmt.Errorf("insert company %q: %w", company.Name, err)
		}
		stored = append(stored, company)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit insert tx: %w", err)
	}

	return stored, nil
}

const companyColumns = `
            id,
            name,
            website_url,
            google_maps_url,
            industry,
            address,
            phone,
            has_ssl,
            pagespeed_score,
            is_wordpress,
            crm_system,
            company_type,
            employee_count,
            revenue_range,
            status,
            disqualify_reason,
            search_keyword,
            created_at
    `

// List retrieves companies matching the provided filter, newest first.
func (r *PGXCompaniesRepository) List(ctx context.Context, filter dto.ListFilter) ([]entity.Company, error) {
	baseQuery := strings.Builder{}
	baseQuery.WriteString("SELECT " + companyColumns + " FROM companies")

	var (
		clauses []string
		args    []any
		idx     = 1
	)

	if filter.Q != "" {
		pattern := fmt.Sprintf("%%%s%%", filter.Q)
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR industry ILIKE $%d)", idx, idx+1))
		args = append(args, pattern, pattern)
		idx += 2
	}
	if filter.Status != "" {
		clauses = append(clauses, fmt.Sprintf("status = UPPER($%d)", idx))
		args = append(args, filter.Status)
		idx++
	}
	if filter.Keyword != "" {
		clauses = append(clauses, fmt.Sprintf("LOWER(search_keyword) = LOWER($%d)", idx))
		args = append(args, filter.Keyword)
		idx++
	}

	if len(clauses) > 0 {
		baseQuery.WriteString(" WHERE ")
		baseQuery.WriteString(strings.Join(clauses, " AND "))
	}

	baseQuery.WriteString(" ORDER BY created_at DESC, name ASC")

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	offset := (page - 1) * perPage
	baseQuery.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", idx, idx+1))
	args = append(args, perPage, offset)

	rows, err := r.pool.Query(ctx, baseQuery.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	return scanCompanies(rows)
}

// GetByID fetches a single company.
func (r *PGXCompaniesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+companyColumns+" FROM companies WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("fetch company: %w", err)
	}
	defer rows.Close()

	companies, err := scanCompanies(rows)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, ErrCompanyNotFound
	}
	return &companies[0], nil
}

func scanCompanies(rows pgx.Rows) ([]entity.Company, error) {
	var companies []entity.Company
	for rows.Next() {
		var (
			c                entity.Company
			websiteURL       sql.NullString
			googleMapsURL    sql.NullString
			address          sql.NullString
			phone            sql.NullString
			pageSpeed        sql.NullInt64
			crmSystem        sql.NullString
			status           string
			disqualifyReason sql.NullString
			searchKeyword    sql.NullString
		)

		err := rows.Scan(
			&c.ID,
			&c.Name,
			&websiteURL,
			&googleMapsURL,
			&c.Industry,
			&address,
			&phone,
			&c.HasSSL,
			&pageSpeed,
			&c.IsWordPress,
			&crmSystem,
			&c.CompanyType,
			&c.EmployeeCount,
			&c.RevenueRange,
			&status,
			&disqualifyReason,
			&searchKeyword,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}

		c.WebsiteURL = nullStringToPtr(websiteURL)
		c.GoogleMapsURL = nullStringToPtr(googleMapsURL)
		c.Address = nullStringToPtr(address)
		c.Phone = nullStringToPtr(phone)
		if pageSpeed.Valid {
			score := int(pageSpeed.Int64)
			c.PageSpeedScore = &score
		}
		c.CRMSystem = nullStringToPtr(crmSystem)
		c.Status = entity.CompanyStatus(status)
		c.DisqualifyReason = nullStringToPtr(disqualifyReason)
		c.SearchKeyword = nullStringToPtr(searchKeyword)

		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate companies: %w", err)
	}
	return companies, nil
}

func nullStringToPtr(value sql.NullString) *string {
	if value.Valid {
		val := value.String
		return &val
	}
	return nil
}
