package webui

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"kb-app/internal/kb"
)

func (a *API) HandleIndex(w http.ResponseWriter, r *http.Request) {
	store, err := a.openStore()
	if err != nil {
		a.serverError(w, "open database", err)
		return
	}
	defer store.Close()

	index, err := store.TopicIndex(r.Context())
	if err != nil {
		a.serverError(w, "fetch topics and subtopics", err)
		return
	}

	a.render(w, http.StatusOK, "index.html", map[string]any{
		"topics":    index.Topics,
		"subtopics": index.Subtopics,
	})
}

func (a *API) HandleTopic(w http.ResponseWriter, r *http.Request) {
	topic := mux.Vars(r)["topic"]

	store, err := a.openStore()
	if err != nil {
		a.serverError(w, "open database", err)
		return
	}
	defer store.Close()

	subtopics, err := store.SubtopicsForTopic(r.Context(), topic)
	if err != nil {
		a.serverError(w, "fetch subtopics", err)
		return
	}

	a.render(w, http.StatusOK, "topic_page.html", map[string]any{
		"topic":     topic,
		"subtopics": subtopics,
	})
}

func (a *API) HandleContent(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	topic := vars["topic"]
	subtopic := vars["subtopic"]

	store, err := a.openStore()
	if err != nil {
		a.serverError(w, "open database", err)
		return
	}
	defer store.Close()

	text, err := store.ContentText(r.Context(), topic, subtopic)
	if err != nil {
		if !errors.Is(err, kb.ErrContentNotFound) {
			a.serverError(w, "fetch content", err)
			return
		}
		// Missing content renders as page text, not as a 404. Longstanding
		// behavior the browse flow depends on.
		text = "Content not found"
	}

	rendered, err := a.md.Render(text)
	if err != nil {
		a.serverError(w, "render markdown", err)
		return
	}

	a.render(w, http.StatusOK, "content.html", map[string]any{
		"content": template.HTML(rendered),
	})
}

// HandleAdd accepts the form submission. Status mapping is deliberate and
// asymmetric: a missing topic and a failed content insert both answer 200 with
// the message as body, while topic/subtopic insert failures answer 500.
func (a *API) HandleAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writePlain(w, http.StatusBadRequest, "invalid form submission")
		return
	}

	entry := kb.Entry{
		Topic:    r.PostFormValue("topic"),
		Subtopic: r.PostFormValue("subtopic"),
		Content:  r.PostFormValue("content"),
	}

	if entry.Topic == "" {
		writePlain(w, http.StatusOK, "Topic is required")
		return
	}

	store, err := a.openStore()
	if err != nil {
		a.serverError(w, "open database", err)
		return
	}
	defer store.Close()

	if err := store.AddContent(r.Context(), entry); err != nil {
		a.logger.Error("add content failed", zap.String("topic", entry.Topic), zap.String("subtopic", entry.Subtopic), zap.Error(err))

		var addErr *kb.AddError
		if errors.As(err, &addErr) {
			switch addErr.Step {
			case kb.StepTopic:
				writePlain(w, http.StatusInternalServerError, fmt.Sprintf("Failed to add topic: %v", addErr.Err))
			case kb.StepSubtopic:
				writePlain(w, http.StatusInternalServerError, fmt.Sprintf("Failed to add subtopic: %v", addErr.Err))
			case kb.StepContent:
				writePlain(w, http.StatusOK, fmt.Sprintf("Failed to add content: %v", addErr.Err))
			default:
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
			return
		}

		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writePlain(w, http.StatusOK, "Data added successfully!")
}

func (a *API) HandleAddForm(w http.ResponseWriter, r *http.Request) {
	store, err := a.openStore()
	if err != nil {
		a.serverError(w, "open database", err)
		return
	}
	defer store.Close()

	topics, err := store.TopicNames(r.Context())
	if err != nil {
		a.serverError(w, "fetch topics", err)
		return
	}

	a.render(w, http.StatusOK, "addrow.html", map[string]any{
		"topics": topics,
	})
}

func (a *API) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	a.render(w, http.StatusNotFound, "404.html", map[string]any{
		"message": "Page not found",
	})
}

func (a *API) render(w http.ResponseWriter, statusCode int, name string, data any) {
	if err := a.views.Render(w, statusCode, name, data); err != nil {
		a.serverError(w, "render template", err)
	}
}

// serverError logs the detail and answers a bare 500; failure detail never
// reaches the client.
func (a *API) serverError(w http.ResponseWriter, action string, err error) {
	a.logger.Error(action, zap.Error(err))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func writePlain(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(body))
}
