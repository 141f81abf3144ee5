package kb

// TopicIndex is the data behind the index page: topic names in ascending
// order plus each topic's subtopics in insertion order. A topic with no
// subtopics has an entry in Subtopics with an empty slice, so templates can
// range over Topics without nil checks.
type TopicIndex struct {
	Topics    []string
	Subtopics map[string][]string
}

// Entry is a single submission as received from the add form.
type Entry struct {
	Topic    string
	Subtopic string
	Content  string
}
