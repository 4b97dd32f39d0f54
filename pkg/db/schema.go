package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Articles table: one row per saved article plus its derived fields
CREATE TABLE IF NOT EXISTS articles (
    article_id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    source TEXT NOT NULL,              -- original URL or file name
    filetype TEXT NOT NULL,            -- url, html, pdf, text
    status TEXT DEFAULT 'unread',      -- unread, reading, read

    plaintext TEXT NOT NULL,
    markdown TEXT,                     -- clean content HTML
    summary TEXT,

    auto_tags TEXT,                    -- JSON array of tag strings
    takeaways TEXT,                    -- JSON object: category -> sentences
    top_keywords TEXT,                 -- JSON array of "word:count" strings

    language TEXT,
    language_confidence REAL,
    word_count INTEGER DEFAULT 0,
    read_minutes INTEGER DEFAULT 0,

    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_articles_source ON articles(source);
CREATE INDEX IF NOT EXISTS idx_articles_filetype ON articles(filetype);
CREATE INDEX IF NOT EXISTS idx_articles_status ON articles(status);
CREATE INDEX IF NOT EXISTS idx_articles_language ON articles(language);
`
