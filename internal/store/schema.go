package store

const schema = `
CREATE TABLE IF NOT EXISTS intent_records (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    recorded_at TIMESTAMP NOT NULL,
    profile TEXT NOT NULL,
    cleanup_on_activation BOOLEAN NOT NULL,
    upgrade_on_activation BOOLEAN NOT NULL
);

CREATE TABLE IF NOT EXISTS intent_items (
    record_id INTEGER NOT NULL,
    kind TEXT NOT NULL,
    name TEXT NOT NULL,
    mas_id INTEGER,
    PRIMARY KEY (record_id, kind, name),
    FOREIGN KEY (record_id) REFERENCES intent_records(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_intent_items_record ON intent_items(record_id);
`
