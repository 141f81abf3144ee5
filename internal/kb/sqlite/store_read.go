package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"sort"

	"kb-app/internal/kb"
)

func (s *Store) TopicIndex(ctx context.Context) (kb.TopicIndex, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT topic_name, sub_topic_name
		 FROM topic
		 LEFT JOIN sub_topic ON topic.topic_id = sub_topic.topic_id`,
	)
	if err != nil {
		return kb.TopicIndex{}, err
	}
	defer rows.Close()

	subtopics := make(map[string][]string)
	for rows.Next() {
		var (
			topic    string
			subtopic sql.NullString
		)
		if err := rows.Scan(&topic, &subtopic); err != nil {
			return kb.TopicIndex{}, err
		}

		if _, ok := subtopics[topic]; !ok {
			subtopics[topic] = []string{}
		}
		// NULL subtopic means the topic has no subtopics yet; the topic still
		// gets its (empty) entry above.
		if subtopic.Valid {
			subtopics[topic] = append(subtopics[topic], subtopic.String)
		}
	}
	if err := rows.Err(); err != nil {
		return kb.TopicIndex{}, err
	}

	topics := make([]string, 0, len(subtopics))
	for topic := range subtopics {
		topics = append(topics, topic)
	}
	// Topics sort ascending; per-topic subtopic lists keep insertion order.
	sort.Strings(topics)

	return kb.TopicIndex{Topics: topics, Subtopics: subtopics}, nil
}

func (s *Store) SubtopicsForTopic(ctx context.Context, topic string) ([]string, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT sub_topic_name
		 FROM sub_topic
		 INNER JOIN topic ON sub_topic.topic_id = topic.topic_id
		 WHERE topic.topic_name = ?`,
		topic,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *Store) ContentText(ctx context.Context, topic, subtopic string) (string, error) {
	var text string
	err := s.db.QueryRowContext(
		ctx,
		`SELECT content_text
		 FROM content
		 INNER JOIN sub_topic ON content.sub_topic_id = sub_topic.sub_topic_id
		 INNER JOIN topic ON sub_topic.topic_id = topic.topic_id
		 WHERE topic.topic_name = ? AND sub_topic.sub_topic_name = ?`,
		topic,
		subtopic,
	).Scan(&text)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", kb.ErrContentNotFound
		}
		return "", err
	}
	return text, nil
}

func (s *Store) TopicNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT topic_name FROM topic`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
