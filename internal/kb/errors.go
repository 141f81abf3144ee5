package kb

import (
	"errors"
	"fmt"
)

// ErrContentNotFound means no content row matched a topic/subtopic pair.
var ErrContentNotFound = errors.New("content not found")

// AddStep identifies which statement of the add-content flow failed. The web
// layer maps steps to response statuses, so the distinction is part of the
// store's contract, not an implementation detail.
type AddStep string

const (
	StepTopic    AddStep = "topic"
	StepSubtopic AddStep = "subtopic"
	StepContent  AddStep = "content"
)

// AddError wraps a failure from one step of AddContent. Earlier steps may
// already have committed by the time a later step fails; callers see the
// partial state, which is intentional (no transaction wraps the flow).
type AddError struct {
	Step AddStep
	Err  error
}

func (e *AddError) Error() string {
	return fmt.Sprintf("add %s: %v", e.Step, e.Err)
}

func (e *AddError) Unwrap() error {
	return e.Err
}
