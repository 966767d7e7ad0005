package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/akmandhania/jobscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ jobscrape.PostingStore = (*PostingStore)(nil)

// PostingStore implements jobscrape.PostingStore using SQLite.
type PostingStore struct {
	db *DB
}

// NewPostingStore creates a new PostingStore.
func NewPostingStore(db *DB) *PostingStore {
	return &PostingStore{db: db}
}

// CreatePosting stores p under a fresh ID and returns the ID. A missing
// content hash or extraction time is filled in on the stored row only.
func (s *PostingStore) CreatePosting(ctx context.Context, p *jobscrape.JobPosting) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	id := uuid.New().String()
	hash := p.ContentHash
	if hash == "" {
		hash = jobscrape.ComputeHash(p.Description)
	}
	extractedAt := p.ExtractedAt
	if extractedAt.IsZero() {
		extractedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO postings (id, url, title, company, location, salary, description, source, content_hash, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, p.URL, p.Title, p.Company, p.Location, p.Salary, p.Description, string(p.Source),
		hash, formatTime(extractedAt))
	if err != nil {
		return "", err
	}
	return id, nil
}

// FindPostings retrieves postings matching the filter, newest first.
func (s *PostingStore) FindPostings(ctx context.Context, filter jobscrape.PostingFilter) ([]*jobscrape.JobPosting, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, company, location, salary, description, source, content_hash, extracted_at FROM postings WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, string(*filter.Source))
	}

	query.WriteString(" ORDER BY extracted_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var postings []*jobscrape.JobPosting
	for rows.Next() {
		var p jobscrape.JobPosting
		var source, extractedAt string

		if err := rows.Scan(&p.ID, &p.URL, &p.Title, &p.Company, &p.Location, &p.Salary,
			&p.Description, &source, &p.ContentHash, &extractedAt); err != nil {
			return nil, err
		}
		p.Source = jobscrape.Site(source)

		if p.ExtractedAt, err = parseTime(extractedAt, "extracted_at"); err != nil {
			return nil, err
		}

		postings = append(postings, &p)
	}

	return postings, rows.Err()
}
