package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/readstash/readstash/models"
)

// InsertArticle stores an article and its derived fields, returning the
// new article ID.
func (db *DB) InsertArticle(a *models.Article) (int64, error) {
	autoTags, err := json.Marshal(a.AutoTags)
	if err != nil {
		return 0, fmt.Errorf("failed to encode auto tags: %w", err)
	}
	takeaways, err := json.Marshal(a.Takeaways)
	if err != nil {
		return 0, fmt.Errorf("failed to encode takeaways: %w", err)
	}
	topKeywords, err := json.Marshal(a.TopKeywords)
	if err != nil {
		return 0, fmt.Errorf("failed to encode top keywords: %w", err)
	}

	status := a.Status
	if status == "" {
		status = "unread"
	}

	result, err := db.Exec(`
		INSERT INTO articles (
			title, source, filetype, status,
			plaintext, markdown, summary,
			auto_tags, takeaways, top_keywords,
			language, language_confidence, word_count, read_minutes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Title, a.Source, a.Filetype, status,
		a.Plaintext, a.Markdown, a.Summary,
		string(autoTags), string(takeaways), string(topKeywords),
		a.Language, a.LanguageConfidence, a.Read.Words, a.Read.Minutes,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert article: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get article ID: %w", err)
	}
	return id, nil
}

// GetArticle loads one article by ID. A missing ID returns sql.ErrNoRows
// wrapped with context.
func (db *DB) GetArticle(id int64) (*models.Article, error) {
	row := db.QueryRow(`
		SELECT article_id, title, source, filetype, status,
		       plaintext, markdown, summary,
		       auto_tags, takeaways, top_keywords,
		       language, language_confidence, word_count, read_minutes,
		       created_at
		FROM articles WHERE article_id = ?`, id)

	article, err := scanArticle(row)
	if err != nil {
		return nil, fmt.Errorf("failed to load article %d: %w", id, err)
	}
	return article, nil
}

// ListArticles returns every stored article, oldest first. This is the
// corpus the related-article finder runs over.
func (db *DB) ListArticles() ([]*models.Article, error) {
	rows, err := db.Query(`
		SELECT article_id, title, source, filetype, status,
		       plaintext, markdown, summary,
		       auto_tags, takeaways, top_keywords,
		       language, language_confidence, word_count, read_minutes,
		       created_at
		FROM articles ORDER BY article_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// UpdateStatus moves an article through unread/reading/read.
func (db *DB) UpdateStatus(id int64, status string) error {
	result, err := db.Exec(`
		UPDATE articles SET status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE article_id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("article %d not found", id)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(s scanner) (*models.Article, error) {
	var a models.Article
	var markdown, summary, language sql.NullString
	var autoTags, takeaways, topKeywords sql.NullString
	var langConfidence sql.NullFloat64
	var createdAt sql.NullString

	err := s.Scan(
		&a.ID, &a.Title, &a.Source, &a.Filetype, &a.Status,
		&a.Plaintext, &markdown, &summary,
		&autoTags, &takeaways, &topKeywords,
		&language, &langConfidence, &a.Read.Words, &a.Read.Minutes,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if createdAt.Valid {
		// SQLite stores CURRENT_TIMESTAMP as UTC text
		if ts, parseErr := time.Parse("2006-01-02 15:04:05", createdAt.String); parseErr == nil {
			a.CreatedAt = ts
		}
	}

	a.Markdown = markdown.String
	a.Summary = summary.String
	a.Language = language.String
	a.LanguageConfidence = langConfidence.Float64

	if autoTags.Valid && autoTags.String != "" {
		if err := json.Unmarshal([]byte(autoTags.String), &a.AutoTags); err != nil {
			return nil, fmt.Errorf("corrupt auto_tags JSON: %w", err)
		}
	}
	if takeaways.Valid && takeaways.String != "" {
		if err := json.Unmarshal([]byte(takeaways.String), &a.Takeaways); err != nil {
			return nil, fmt.Errorf("corrupt takeaways JSON: %w", err)
		}
	}
	if topKeywords.Valid && topKeywords.String != "" {
		if err := json.Unmarshal([]byte(topKeywords.String), &a.TopKeywords); err != nil {
			return nil, fmt.Errorf("corrupt top_keywords JSON: %w", err)
		}
	}

	return &a, nil
}
