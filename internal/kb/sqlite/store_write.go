package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"kb-app/internal/kb"
)

// AddContent runs the add flow as independent statements, no transaction.
// A failure partway through leaves the rows already inserted in place; the
// step recorded on the returned *kb.AddError tells callers how far it got.
func (s *Store) AddContent(ctx context.Context, entry kb.Entry) error {
	known, err := s.topicExists(ctx, entry.Topic)
	if err != nil {
		return &kb.AddError{Step: kb.StepTopic, Err: err}
	}
	if !known {
		if _, err := s.db.ExecContext(
			ctx,
			`INSERT INTO topic (topic_name) VALUES (?)`,
			entry.Topic,
		); err != nil {
			return &kb.AddError{Step: kb.StepTopic, Err: err}
		}
	}

	// Re-fetch covers both the pre-existing and just-inserted cases.
	var topicID int64
	if err := s.db.QueryRowContext(
		ctx,
		`SELECT topic_id FROM topic WHERE topic_name = ?`,
		entry.Topic,
	).Scan(&topicID); err != nil {
		return &kb.AddError{Step: kb.StepTopic, Err: err}
	}

	// sub_topic_name is unique across all topics, so a name already used
	// under any other topic fails here.
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO sub_topic (sub_topic_name, topic_id) VALUES (?, ?)`,
		entry.Subtopic,
		topicID,
	); err != nil {
		return &kb.AddError{Step: kb.StepSubtopic, Err: err}
	}

	// The content row resolves its subtopic by name, not by the id inserted
	// above. With globally unique subtopic names the two agree; the nested
	// lookup is kept as-is because changing it changes which row wins if the
	// uniqueness constraint ever relaxes.
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO content (content_text, sub_topic_id)
		 VALUES (?, (SELECT sub_topic_id FROM sub_topic WHERE sub_topic_name = ?))`,
		entry.Content,
		entry.Subtopic,
	); err != nil {
		return &kb.AddError{Step: kb.StepContent, Err: err}
	}

	return nil
}

func (s *Store) topicExists(ctx context.Context, topic string) (bool, error) {
	var id int64
	err := s.db.QueryRowContext(
		ctx,
		`SELECT topic_id FROM topic WHERE topic_name = ?`,
		topic,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
